// Package catalog holds the named storage locations and pallets the optimizer
// can be run against.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

// Catalog is an immutable set of locations and pallets keyed by name.
type Catalog struct {
	locations map[string]model.Location
	pallets   map[string]model.Pallet
}

// file is the on-disk YAML layout.
type file struct {
	Locations []model.Location `yaml:"locations"`
	Pallets   []model.Pallet   `yaml:"pallets"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. It is built once and shared.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(defaultLocations(), defaultPallets())
		if err != nil {
			panic(fmt.Sprintf("catalog: invalid built-in defaults: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// New validates the entries and builds a catalog. Names must be unique per kind.
func New(locations []model.Location, pallets []model.Pallet) (*Catalog, error) {
	c := &Catalog{
		locations: make(map[string]model.Location, len(locations)),
		pallets:   make(map[string]model.Pallet, len(pallets)),
	}

	var errs []error
	for _, loc := range locations {
		loc.Name = strings.TrimSpace(loc.Name)
		if err := loc.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := c.locations[loc.Name]; dup {
			errs = append(errs, fmt.Errorf("duplicate location %q", loc.Name))
			continue
		}
		c.locations[loc.Name] = loc
	}
	for _, p := range pallets {
		p.Name = strings.TrimSpace(p.Name)
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := c.pallets[p.Name]; dup {
			errs = append(errs, fmt.Errorf("duplicate pallet %q", p.Name))
			continue
		}
		c.pallets[p.Name] = p
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(f.Locations) == 0 || len(f.Pallets) == 0 {
		return nil, errors.New("catalog needs at least one location and one pallet")
	}
	return New(f.Locations, f.Pallets)
}

// LoadFile reads a YAML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Location looks up a location by exact name, falling back to a case-insensitive match.
func (c *Catalog) Location(name string) (model.Location, bool) {
	name = strings.TrimSpace(name)
	if loc, ok := c.locations[name]; ok {
		return loc, true
	}
	for key, loc := range c.locations {
		if strings.EqualFold(key, name) {
			return loc, true
		}
	}
	return model.Location{}, false
}

// Pallet looks up a pallet by exact name, falling back to a case-insensitive match.
func (c *Catalog) Pallet(name string) (model.Pallet, bool) {
	name = strings.TrimSpace(name)
	if p, ok := c.pallets[name]; ok {
		return p, true
	}
	for key, p := range c.pallets {
		if strings.EqualFold(key, name) {
			return p, true
		}
	}
	return model.Pallet{}, false
}

// Locations returns a copy of all locations sorted by name.
func (c *Catalog) Locations() []model.Location {
	out := make([]model.Location, 0, len(c.locations))
	for _, loc := range c.locations {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Pallets returns a copy of all pallets sorted by name.
func (c *Catalog) Pallets() []model.Pallet {
	out := make([]model.Pallet, 0, len(c.pallets))
	for _, p := range c.pallets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Marshal encodes the catalog as YAML, sorted by name.
func (c *Catalog) Marshal() ([]byte, error) {
	return yaml.Marshal(file{Locations: c.Locations(), Pallets: c.Pallets()})
}
