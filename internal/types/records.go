package types

// ModRecord is the serialized form of ModInfo shared by the catalog file,
// the HTTP catalog and the installed mod store. An empty VersionScheme marks
// Version as human readable.
type ModRecord struct {
	ID            string `yaml:"id" json:"id" toml:"id"`
	Name          string `yaml:"name" json:"name" toml:"name"`
	Version       string `yaml:"version,omitempty" json:"version,omitempty" toml:"version,omitempty"`
	VersionScheme string `yaml:"version_scheme,omitempty" json:"version_scheme,omitempty" toml:"version_scheme,omitempty"`
	Author        string `yaml:"author,omitempty" json:"author,omitempty" toml:"author,omitempty"`
	Description   string `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
	Website       string `yaml:"website,omitempty" json:"website,omitempty" toml:"website,omitempty"`
	CategoryID    string `yaml:"category_id,omitempty" json:"category_id,omitempty" toml:"category_id,omitempty"`
}

type FileRecord struct {
	ID       string `yaml:"id" json:"id" toml:"id"`
	Filename string `yaml:"filename" json:"filename" toml:"filename"`
	Name     string `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty"`
	Version  string `yaml:"version,omitempty" json:"version,omitempty" toml:"version,omitempty"`
}

type CatalogMod struct {
	ModRecord `yaml:",inline"`
	Files     []FileRecord `yaml:"files,omitempty" json:"files,omitempty" toml:"files,omitempty"`
}

// CatalogFile is the top-level structure of a catalog.yaml or catalog.toml
// file.
type CatalogFile struct {
	Mods []CatalogMod `yaml:"mods" toml:"mods"`
}

type StoreEntry struct {
	Filename  string `yaml:"filename"`
	ModRecord `yaml:",inline"`
}

// ModStoreFile is the top-level structure of the installed mod store.
type ModStoreFile struct {
	Mods []StoreEntry `yaml:"mods"`
}
