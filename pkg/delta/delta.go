// Package delta defines the extracted-facts input to the catalog engine
// and the normalizer that shapes it for merging. A delta carries only
// new or additional facts, never a full catalog.
package delta

import "github.com/gh6st66/metaloadout.gg/pkg/catalog"

// RawEntity is one entity-shaped record as emitted by the transcript
// extractor. Tags and notes may contain duplicates; class may be null.
type RawEntity struct {
	ID    string   `json:"id"`
	Class *string  `json:"class,omitempty"`
	Tags  []string `json:"tags"`
	Notes []string `json:"notes"`
}

// RawMeta carries cross-item observations from the extractor.
type RawMeta struct {
	Synergy  []string `json:"synergy,omitempty"`
	Counters []string `json:"counters,omitempty"`
}

// Raw is the delta as received from the transcript extractor, before
// normalization. All fields are optional.
type Raw struct {
	Weapons         []RawEntity `json:"weapons,omitempty"`
	Gadgets         []RawEntity `json:"gadgets,omitempty"`
	Specializations []RawEntity `json:"specializations,omitempty"`
	Meta            RawMeta     `json:"meta,omitempty"`
}

// Entities returns the raw entity list for the given category.
func (r *Raw) Entities(cat catalog.Category) []RawEntity {
	switch cat {
	case catalog.CategoryWeapons:
		return r.Weapons
	case catalog.CategoryGadgets:
		return r.Gadgets
	case catalog.CategorySpecializations:
		return r.Specializations
	}
	return nil
}

// Delta is the merge-ready representation: every collection present
// (possibly empty) and internally deduplicated. Only the reconciler
// should consume it.
type Delta struct {
	Weapons         []catalog.Entity
	Gadgets         []catalog.Entity
	Specializations []catalog.Entity
	Meta            catalog.MetaFacts
}

// Entities returns the normalized entity list for the given category.
func (d *Delta) Entities(cat catalog.Category) []catalog.Entity {
	switch cat {
	case catalog.CategoryWeapons:
		return d.Weapons
	case catalog.CategoryGadgets:
		return d.Gadgets
	case catalog.CategorySpecializations:
		return d.Specializations
	}
	return nil
}

// Empty reports whether the delta carries no facts at all.
func (d *Delta) Empty() bool {
	return len(d.Weapons) == 0 && len(d.Gadgets) == 0 && len(d.Specializations) == 0 &&
		len(d.Meta.Synergy) == 0 && len(d.Meta.Counters) == 0
}
