package l10n

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// ExportFormat is the JSON structure for catalog export/import, used to
// round-trip the catalog through external translators.
type ExportFormat struct {
	Version    string        `json:"version"`
	ExportedAt string        `json:"exported_at"`
	SourceLang Lang          `json:"source_lang"`
	Entries    []ExportEntry `json:"entries"`
}

// ExportEntry is a single catalog key with its translations.
type ExportEntry struct {
	Key          string          `json:"key"`
	Translations map[Lang]string `json:"translations"`
}

// ExportCatalog writes the catalog to w in JSON format, keys sorted.
func ExportCatalog(w io.Writer, c Catalog) error {
	export := ExportFormat{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		SourceLang: SourceLang,
		Entries:    make([]ExportEntry, 0, len(c)),
	}
	for _, key := range c.Keys() {
		entry := ExportEntry{Key: key, Translations: make(map[Lang]string, len(c[key]))}
		for lang, value := range c[key] {
			entry.Translations[lang] = value
		}
		export.Entries = append(export.Entries, entry)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ImportCatalog reads a catalog export from r. Entries with an empty key
// are rejected; unknown languages are kept so a newer export still loads.
func ImportCatalog(r io.Reader) (Catalog, error) {
	var export ExportFormat
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, &ImportError{Message: "decoding JSON", Cause: err}
	}

	catalog := make(Catalog, len(export.Entries))
	for i, entry := range export.Entries {
		if entry.Key == "" {
			return nil, &ImportError{Message: fmt.Sprintf("entry %d has an empty key", i)}
		}
		translations := make(Translations, len(entry.Translations))
		for lang, value := range entry.Translations {
			translations[lang] = value
		}
		catalog[entry.Key] = translations
	}
	return catalog, nil
}
