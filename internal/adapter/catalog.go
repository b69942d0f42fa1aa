package adapter

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	m "argue.dev/pkg/argue/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// ErrUnknownExample is returned when a catalog lookup finds no entry.
var ErrUnknownExample = errors.New("unknown example")

// Catalog serves the built-in worked examples.
type Catalog interface {
	Entries() []m.CatalogEntry
	Lookup(name string) (m.CatalogEntry, error)
}

type catalog struct {
	entries []m.CatalogEntry
	byName  map[string]int
}

// NewCatalog parses the embedded catalog.
func NewCatalog() (Catalog, error) {
	return parseCatalog(catalogYAML)
}

func parseCatalog(data []byte) (*catalog, error) {
	var entries []m.CatalogEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}

	c := &catalog{
		entries: entries,
		byName:  make(map[string]int, len(entries)),
	}

	for i, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}

		if _, dup := c.byName[entry.Name]; dup {
			return nil, fmt.Errorf("duplicate catalog entry %q", entry.Name)
		}

		for sem := range entry.Expected {
			if _, err := m.ParseSemantics(string(sem)); err != nil {
				return nil, fmt.Errorf("catalog entry %q: %w", entry.Name, err)
			}
		}

		c.byName[entry.Name] = i
	}

	slog.Debug("loaded catalog", "entries", len(entries))

	return c, nil
}

// Entries returns the examples in catalog order.
func (c *catalog) Entries() []m.CatalogEntry {
	return slices.Clone(c.entries)
}

func (c *catalog) Lookup(name string) (m.CatalogEntry, error) {
	i, ok := c.byName[name]
	if !ok {
		return m.CatalogEntry{}, fmt.Errorf("%w: %q", ErrUnknownExample, name)
	}

	return c.entries[i], nil
}
