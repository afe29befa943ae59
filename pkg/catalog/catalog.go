// Package catalog defines the canonical versioned catalog document:
// weapons, gadgets, specializations, cross-item meta facts, and the
// append-only provenance trail. The document is a value: merges never
// mutate a catalog in place, they produce a new one.
package catalog

import (
	"encoding/json"

	"github.com/agentstation/utc"

	"github.com/gh6st66/metaloadout.gg/pkg/errors"
	"github.com/gh6st66/metaloadout.gg/pkg/provenance"
)

// Category names one of the catalog's entity collections.
type Category string

// Entity categories.
const (
	CategoryWeapons         Category = "weapons"
	CategoryGadgets         Category = "gadgets"
	CategorySpecializations Category = "specializations"
)

// Categories returns all entity categories in document order.
func Categories() []Category {
	return []Category{CategoryWeapons, CategoryGadgets, CategorySpecializations}
}

// String returns the string representation of a Category.
func (c Category) String() string {
	return string(c)
}

// Catalog is the canonical document of all known weapons, gadgets,
// specializations, and meta facts. Entity collections are ordered and
// unique by ID; Provenance is append-only, one entry per merge ever
// applied.
type Catalog struct {
	Version         string             `json:"version" yaml:"version"`
	UpdatedAt       utc.Time           `json:"updated_at" yaml:"updated_at"`
	Weapons         []Entity           `json:"weapons" yaml:"weapons"`
	Gadgets         []Entity           `json:"gadgets" yaml:"gadgets"`
	Specializations []Entity           `json:"specializations" yaml:"specializations"`
	Meta            MetaFacts          `json:"meta" yaml:"meta"`
	Provenance      []provenance.Entry `json:"_provenance" yaml:"_provenance"`
}

// New creates an empty catalog at DefaultVersion.
func New() *Catalog {
	return NewWithVersion(DefaultVersion)
}

// NewWithVersion creates an empty catalog at the given version string.
// The version is not validated here; the reconciler validates it on
// every merge.
func NewWithVersion(version string) *Catalog {
	return &Catalog{
		Version:         version,
		Weapons:         []Entity{},
		Gadgets:         []Entity{},
		Specializations: []Entity{},
		Meta: MetaFacts{
			Synergy:  []string{},
			Counters: []string{},
		},
		Provenance: []provenance.Entry{},
	}
}

// Entities returns the entity collection for the given category.
func (c *Catalog) Entities(cat Category) []Entity {
	switch cat {
	case CategoryWeapons:
		return c.Weapons
	case CategoryGadgets:
		return c.Gadgets
	case CategorySpecializations:
		return c.Specializations
	}
	return nil
}

// SetEntities replaces the entity collection for the given category.
func (c *Catalog) SetEntities(cat Category, entities []Entity) {
	switch cat {
	case CategoryWeapons:
		c.Weapons = entities
	case CategoryGadgets:
		c.Gadgets = entities
	case CategorySpecializations:
		c.Specializations = entities
	}
}

// Find returns the entity with the given ID in the given category.
func (c *Catalog) Find(cat Category, id string) (*Entity, error) {
	entities := c.Entities(cat)
	for i := range entities {
		if entities[i].ID == id {
			return &entities[i], nil
		}
	}
	return nil, errors.NewNotFoundError(cat.String(), id)
}

// MarshalJSON renders the catalog per the document schema, with all
// collections present even when empty.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	type alias Catalog
	out := alias(*c)
	if out.Weapons == nil {
		out.Weapons = []Entity{}
	}
	if out.Gadgets == nil {
		out.Gadgets = []Entity{}
	}
	if out.Specializations == nil {
		out.Specializations = []Entity{}
	}
	if out.Meta.Synergy == nil {
		out.Meta.Synergy = []string{}
	}
	if out.Meta.Counters == nil {
		out.Meta.Counters = []string{}
	}
	if out.Provenance == nil {
		out.Provenance = []provenance.Entry{}
	}
	return json.Marshal(out)
}
