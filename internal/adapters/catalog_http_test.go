package adapters

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modtagger/internal/types"
)

func newTestCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, value any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(value)
	}
	grass := types.ModRecord{ID: "42", Name: "Better Grass", Version: "2.0.0", VersionScheme: "semver"}
	mux.HandleFunc("GET /mods/42", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, grass)
	})
	mux.HandleFunc("GET /mods/42/files", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, []types.FileRecord{
			{ID: "1001", Filename: "bettergrass-main.zip", Name: "Main", Version: "2.0"},
			{ID: "1002", Filename: "bettergrass-hd.zip", Name: "HD", Version: "2.0-HD"},
		})
	})
	mux.HandleFunc("GET /mods", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") == "Better Grass" && r.URL.Query().Get("strict") == "true" {
			writeJSON(w, []types.ModRecord{grass})
			return
		}
		writeJSON(w, []types.ModRecord{})
	})
	mux.HandleFunc("GET /files/bettergrass-hd.zip", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, types.FileRecord{ID: "1002", Filename: "bettergrass-hd.zip", Name: "HD", Version: "2.0-HD"})
	})
	mux.HandleFunc("GET /files/bettergrass-hd.zip/mod", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, grass)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestCatalogHTTPAdapter_Lookups(t *testing.T) {
	server := newTestCatalogServer(t)
	adapter := NewCatalogHTTPAdapter(server.URL+"/", "", 5, 1, 1)

	info, found, err := adapter.GetModInfo(t.Context(), "42")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Better Grass", info.ModName)
	assert.Equal(t, types.VersionKindMachine, info.Version.Kind())

	_, found, err = adapter.GetModInfo(t.Context(), "99")
	require.NoError(t, err)
	assert.False(t, found)

	info, found, err = adapter.GetModInfoForFile(t.Context(), "mods/BetterGrass-HD.zip")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "42", info.ID)

	file, found, err := adapter.GetFileInfoForFile(t.Context(), "bettergrass-hd.zip")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "2.0-HD", file.HumanReadableVersion)

	files, err := adapter.GetModFileInfo(t.Context(), "42")
	require.NoError(t, err)
	assert.Len(t, files, 2)

	strict, err := adapter.FindMods(t.Context(), "Better Grass", true)
	require.NoError(t, err)
	assert.Len(t, strict, 1)

	loose, err := adapter.FindMods(t.Context(), "Better Grass", false)
	require.NoError(t, err)
	assert.Empty(t, loose)
}

func TestCatalogHTTPAdapter_EmptyFilenameIsMiss(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)
	adapter := NewCatalogHTTPAdapter(server.URL, "", 5, 1, 1)

	_, found, err := adapter.GetFileInfoForFile(t.Context(), "  ")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, int32(0), hits.Load())
}

func TestCatalogHTTPAdapter_RetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"id":"42","name":"Better Grass"}`))
	}))
	t.Cleanup(server.Close)
	adapter := NewCatalogHTTPAdapter(server.URL, "", 5, 3, 1)

	info, found, err := adapter.GetModInfo(t.Context(), "42")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Better Grass", info.ModName)
	assert.Equal(t, int32(3), hits.Load())
}

func TestCatalogHTTPAdapter_Failures(t *testing.T) {
	t.Run("server error after retries", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		t.Cleanup(server.Close)
		adapter := NewCatalogHTTPAdapter(server.URL, "", 5, 2, 1)

		_, err := adapter.FindMods(t.Context(), "grass", true)
		require.Error(t, err)
		assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("client error is not retried", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		}))
		t.Cleanup(server.Close)
		adapter := NewCatalogHTTPAdapter(server.URL, "", 5, 3, 1)

		_, _, err := adapter.GetModInfo(t.Context(), "42")
		require.Error(t, err)
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("malformed response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		t.Cleanup(server.Close)
		adapter := NewCatalogHTTPAdapter(server.URL, "", 5, 1, 1)

		_, err := adapter.GetModFileInfo(t.Context(), "42")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid catalog response")
	})
}

func TestCatalogHTTPAdapter_SendsAPIKey(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)
	adapter := NewCatalogHTTPAdapter(server.URL, "secret", 5, 1, 1)

	_, found, err := adapter.GetModInfo(t.Context(), "42")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "Bearer secret", auth)
}

func TestNewCatalogAdapter(t *testing.T) {
	catalog, err := NewCatalogAdapter("https://catalog.example.com", CatalogOptions{})
	require.NoError(t, err)
	assert.IsType(t, CatalogHTTPAdapter{}, catalog)

	catalog, err = NewCatalogAdapter("fixtures/catalog.yaml", CatalogOptions{})
	require.NoError(t, err)
	assert.IsType(t, &CatalogFileAdapter{}, catalog)

	_, err = NewCatalogAdapter("  ", CatalogOptions{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
