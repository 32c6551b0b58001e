package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"modtagger/internal/ports"
	"modtagger/internal/shared"
	"modtagger/internal/types"
)

// CatalogHTTPAdapter queries a remote catalog over its JSON API:
//
//	GET /mods/{id}                 mod record
//	GET /mods?name={name}&strict=  list of mod records
//	GET /mods/{id}/files           list of file records
//	GET /files/{filename}          file record
//	GET /files/{filename}/mod      mod record owning the file
//
// A 404 is a miss. Transport errors, 429 and 5xx responses are retried.
type CatalogHTTPAdapter struct {
	Endpoint   string
	APIKey     string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
	client     *http.Client
}

const defaultCatalogRetries = 3
const defaultCatalogRetryDelay = 200 * time.Millisecond
const defaultCatalogTimeout = 30 * time.Second
const maxCatalogRetryDelay = 2 * time.Second

func NewCatalogHTTPAdapter(endpoint string, apiKey string, timeoutSec int, retries int, retryDelayMs int) CatalogHTTPAdapter {
	timeout := normalizeCatalogTimeout(timeoutSec)
	return CatalogHTTPAdapter{
		Endpoint:   strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		APIKey:     apiKey,
		Timeout:    timeout,
		Retries:    normalizeCatalogRetries(retries),
		RetryDelay: normalizeCatalogRetryDelay(retryDelayMs),
		client:     &http.Client{Timeout: timeout},
	}
}

func (a CatalogHTTPAdapter) GetModInfo(ctx context.Context, id string) (types.ModInfo, bool, error) {
	return a.getMod(ctx, "/mods/"+url.PathEscape(strings.TrimSpace(id)))
}

func (a CatalogHTTPAdapter) GetModInfoForFile(ctx context.Context, filename string) (types.ModInfo, bool, error) {
	key := shared.NormalizeFilename(filename)
	if key == "" {
		return types.ModInfo{}, false, nil
	}
	return a.getMod(ctx, "/files/"+url.PathEscape(key)+"/mod")
}

func (a CatalogHTTPAdapter) FindMods(ctx context.Context, name string, strict bool) ([]types.ModInfo, error) {
	query := url.Values{}
	query.Set("name", name)
	query.Set("strict", strconv.FormatBool(strict))
	var records []types.ModRecord
	if _, err := a.getJSON(ctx, "/mods?"+query.Encode(), &records); err != nil {
		return nil, err
	}
	mods := make([]types.ModInfo, 0, len(records))
	for _, record := range records {
		info, err := modInfoFromRecord(record)
		if err != nil {
			return nil, err
		}
		mods = append(mods, info)
	}
	return mods, nil
}

func (a CatalogHTTPAdapter) GetFileInfoForFile(ctx context.Context, filename string) (types.ModFileInfo, bool, error) {
	key := shared.NormalizeFilename(filename)
	if key == "" {
		return types.ModFileInfo{}, false, nil
	}
	var record types.FileRecord
	found, err := a.getJSON(ctx, "/files/"+url.PathEscape(key), &record)
	if err != nil || !found {
		return types.ModFileInfo{}, false, err
	}
	return fileInfoFromRecord(record), true, nil
}

func (a CatalogHTTPAdapter) GetModFileInfo(ctx context.Context, modID string) ([]types.ModFileInfo, error) {
	var records []types.FileRecord
	if _, err := a.getJSON(ctx, "/mods/"+url.PathEscape(strings.TrimSpace(modID))+"/files", &records); err != nil {
		return nil, err
	}
	files := make([]types.ModFileInfo, 0, len(records))
	for _, record := range records {
		files = append(files, fileInfoFromRecord(record))
	}
	return files, nil
}

func (a CatalogHTTPAdapter) getMod(ctx context.Context, path string) (types.ModInfo, bool, error) {
	var record types.ModRecord
	found, err := a.getJSON(ctx, path, &record)
	if err != nil || !found {
		return types.ModInfo{}, false, err
	}
	info, err := modInfoFromRecord(record)
	if err != nil {
		return types.ModInfo{}, false, err
	}
	return info, true, nil
}

func (a CatalogHTTPAdapter) getJSON(ctx context.Context, path string, out any) (bool, error) {
	if a.Endpoint == "" {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog endpoint is empty")
	}
	var lastErr error
	for attempt := 0; attempt < a.Retries; attempt++ {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		found, retry, err := a.getJSONOnce(ctx, a.Endpoint+path, out)
		if err == nil {
			return found, nil
		}
		lastErr = err
		if !retry || attempt == a.Retries-1 {
			return false, err
		}
		log.Ctx(ctx).Debug().Str("path", path).Int("attempt", attempt+1).Err(err).Msg("retrying catalog request")
		time.Sleep(a.catalogRetryDelay(attempt))
	}
	if lastErr == nil {
		lastErr = errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("catalog request failed")
	}
	return false, lastErr
}

func (a CatalogHTTPAdapter) getJSONOnce(ctx context.Context, requestURL string, out any) (found bool, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return false, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create catalog request").
			WithCause(err)
	}
	req.Header.Set("Accept", "application/json")
	if strings.TrimSpace(a.APIKey) != "" {
		req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(a.APIKey))
	}
	resp, err := a.httpClient().Do(req)
	if err != nil {
		return false, true, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("catalog request failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusNotFound {
		return false, false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		retry := resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests
		cause := shared.HTTPStatusError(resp.StatusCode, requestURL)
		if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
			cause = shared.HTTPStatusErrorWithBody(resp.StatusCode, requestURL, trimmed)
		}
		return false, retry, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("catalog request failed").
			WithCause(cause)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return false, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("invalid catalog response").
			WithCause(err)
	}
	return true, false, nil
}

func (a CatalogHTTPAdapter) httpClient() *http.Client {
	if a.client != nil {
		return a.client
	}
	return &http.Client{Timeout: a.Timeout}
}

func (a CatalogHTTPAdapter) catalogRetryDelay(attempt int) time.Duration {
	delay := a.RetryDelay * time.Duration(1<<attempt)
	if delay > maxCatalogRetryDelay {
		delay = maxCatalogRetryDelay
	}
	jitter := time.Duration(time.Now().UnixNano() % int64(delay/2+1))
	return delay + jitter
}

func normalizeCatalogTimeout(value int) time.Duration {
	timeout := time.Duration(value) * time.Second
	if timeout <= 0 {
		return defaultCatalogTimeout
	}
	return timeout
}

func normalizeCatalogRetries(value int) int {
	if value <= 0 {
		return defaultCatalogRetries
	}
	return value
}

func normalizeCatalogRetryDelay(value int) time.Duration {
	delay := time.Duration(value) * time.Millisecond
	if delay <= 0 {
		return defaultCatalogRetryDelay
	}
	return delay
}

var _ ports.ModRepositoryPort = CatalogHTTPAdapter{}
