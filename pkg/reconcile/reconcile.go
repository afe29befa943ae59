// Package reconcile implements the catalog merge algorithm: folding one
// normalized delta into the current catalog to produce a new catalog
// snapshot, a bumped version, and an appended provenance entry.
//
// The reconciler is a pure transition function. It never mutates the
// input catalog, never partially applies a delta, and assumes it is the
// sole writer for the duration of one call; serializing concurrent
// merges is the caller's responsibility.
package reconcile

import (
	"github.com/gh6st66/metaloadout.gg/pkg/catalog"
	"github.com/gh6st66/metaloadout.gg/pkg/delta"
	"github.com/gh6st66/metaloadout.gg/pkg/errors"
	"github.com/gh6st66/metaloadout.gg/pkg/provenance"
)

// Reconciler folds normalized deltas into catalog snapshots.
type Reconciler struct{}

// New creates a Reconciler.
func New() *Reconciler {
	return &Reconciler{}
}

// Merge folds d into cur and returns the new catalog. On any error the
// original catalog is returned unchanged with no provenance appended.
//
// Per category, entities present only in the catalog are carried
// forward in their original order; entities present only in the delta
// are appended in delta order; entities present in both keep the
// existing scalar fields (the incoming class is taken only when the
// base has none) and union their tags and notes. Meta synergy and
// counter sets are unioned the same way. The patch version component
// increments by exactly one.
func (r *Reconciler) Merge(cur *catalog.Catalog, d *delta.Delta, desc provenance.Descriptor) (*catalog.Catalog, error) {
	if cur == nil {
		return nil, errors.NewMergeError(desc.Source, "", "current catalog is nil", nil)
	}
	if d == nil {
		return cur, errors.NewMergeError(desc.Source, "", "delta is nil", nil)
	}

	version, err := catalog.ParseVersion(cur.Version)
	if err != nil {
		return cur, errors.NewMergeError(desc.Source, "", "catalog version is malformed", err)
	}

	next := cur.DeepCopy()
	entry := provenance.Entry{
		Source:    desc.Source,
		Timestamp: desc.Timestamp,
	}

	for _, cat := range catalog.Categories() {
		merged, summary, tagsAdded, notesAdded := mergeEntities(next.Entities(cat), d.Entities(cat))
		next.SetEntities(cat, merged)
		entry.TagsAdded += tagsAdded
		entry.NotesAdded += notesAdded

		switch cat {
		case catalog.CategoryWeapons:
			entry.Weapons = summary
		case catalog.CategoryGadgets:
			entry.Gadgets = summary
		case catalog.CategorySpecializations:
			entry.Specializations = summary
		}
	}

	var added int
	next.Meta.Synergy, added = unionStrings(next.Meta.Synergy, d.Meta.Synergy)
	entry.NotesAdded += added
	next.Meta.Counters, added = unionStrings(next.Meta.Counters, d.Meta.Counters)
	entry.NotesAdded += added

	next.Version = version.BumpPatch().String()
	next.UpdatedAt = desc.Timestamp
	next.Provenance = append(next.Provenance, entry)

	return next, nil
}

// mergeEntities folds incoming into existing: carried-forward entities
// keep their original order, genuinely new ones are appended in delta
// order. Output order is deterministic.
func mergeEntities(existing, incoming []catalog.Entity) ([]catalog.Entity, provenance.Summary, int, int) {
	var summary provenance.Summary
	var tagsAdded, notesAdded int

	incomingByID := make(map[string]catalog.Entity, len(incoming))
	for _, e := range incoming {
		incomingByID[e.ID] = e
	}

	merged := make([]catalog.Entity, 0, len(existing)+len(incoming))
	for _, base := range existing {
		inc, found := incomingByID[base.ID]
		if !found {
			merged = append(merged, base)
			continue
		}

		changed := false
		// Existing scalar data is never overwritten by incoming data;
		// the incoming class only fills a gap.
		if base.Class == nil && inc.Class != nil {
			class := *inc.Class
			base.Class = &class
			changed = true
		}

		var added int
		base.Tags, added = unionStrings(base.Tags, inc.Tags)
		tagsAdded += added
		changed = changed || added > 0

		base.Notes, added = unionStrings(base.Notes, inc.Notes)
		notesAdded += added
		changed = changed || added > 0

		if changed {
			summary.Updated++
		}
		merged = append(merged, base)
	}

	seen := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		seen[e.ID] = struct{}{}
	}
	for _, inc := range incoming {
		if _, exists := seen[inc.ID]; exists {
			continue
		}
		seen[inc.ID] = struct{}{}
		merged = append(merged, catalog.DeepCopyEntity(inc))
		summary.Added++
		tagsAdded += len(inc.Tags)
		notesAdded += len(inc.Notes)
	}

	return merged, summary, tagsAdded, notesAdded
}

// unionStrings appends the incoming values not already in base,
// preserving base order first and incoming order after. Returns the
// union and how many values were added.
func unionStrings(base, incoming []string) ([]string, int) {
	if len(incoming) == 0 {
		return base, 0
	}

	seen := make(map[string]struct{}, len(base))
	for _, s := range base {
		seen[s] = struct{}{}
	}

	added := 0
	for _, s := range incoming {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		base = append(base, s)
		added++
	}
	return base, added
}
