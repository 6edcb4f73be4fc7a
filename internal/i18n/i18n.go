// Package i18n provides the localized string catalogs the core needs when
// rendering assistant replies. Catalogs are embedded at compile time and
// handed to components as an explicit Translator dependency.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed catalogs/*.json
var catalogFiles embed.FS

// Translator resolves localized strings for a single language.
type Translator interface {
	// T returns the string for key, or the key itself when missing.
	T(key string) string
	// Lang returns the catalog language code ("en", "zh").
	Lang() string
}

// Catalog is a Translator backed by an embedded key/value table.
type Catalog struct {
	lang    string
	strings map[string]string
}

// Load reads the embedded catalog for the given language code.
func Load(lang string) (*Catalog, error) {
	data, err := catalogFiles.ReadFile(fmt.Sprintf("catalogs/%s.json", lang))
	if err != nil {
		return nil, fmt.Errorf("no catalog for language %q: %w", lang, err)
	}

	strings := make(map[string]string)
	if err := json.Unmarshal(data, &strings); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", lang, err)
	}

	return &Catalog{lang: lang, strings: strings}, nil
}

// MustLoad loads a catalog, panicking on failure. Use for the compiled-in
// languages at initialization time.
func MustLoad(lang string) *Catalog {
	c, err := Load(lang)
	if err != nil {
		panic(fmt.Sprintf("failed to load i18n catalog: %v", err))
	}
	return c
}

// T returns the localized string for key, falling back to the key itself.
func (c *Catalog) T(key string) string {
	if s, ok := c.strings[key]; ok {
		return s
	}
	return key
}

// Lang returns the catalog language code.
func (c *Catalog) Lang() string {
	return c.lang
}
