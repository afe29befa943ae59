// Package provenance provides the audit trail for catalog ingestion.
// Every successful merge appends exactly one Entry to the catalog,
// recording where the delta came from and what it changed.
package provenance

import (
	"fmt"
	"strings"

	"github.com/agentstation/utc"
)

// Descriptor identifies one ingestion event. It is supplied by the
// caller alongside the delta: the reconciler never invents timestamps.
type Descriptor struct {
	Source    string   // e.g. a transcript identifier
	Timestamp utc.Time // when the delta was ingested
}

// Summary counts what one merge did to a single entity category.
type Summary struct {
	Added   int `json:"added"`   // entities newly inserted
	Updated int `json:"updated"` // existing entities that received new tags or notes
}

// Changed reports whether the category saw any change.
func (s Summary) Changed() bool {
	return s.Added > 0 || s.Updated > 0
}

// Entry is the audit record of one ingestion event. It is immutable
// once appended to a catalog; the reconciler never rewrites or
// reorders existing entries.
type Entry struct {
	Source          string   `json:"source"`
	Timestamp       utc.Time `json:"timestamp"`
	Weapons         Summary  `json:"weapons"`
	Gadgets         Summary  `json:"gadgets"`
	Specializations Summary  `json:"specializations"`
	TagsAdded       int      `json:"tags_added"`
	NotesAdded      int      `json:"notes_added"`
}

// Changed reports whether the merge behind this entry altered the
// catalog at all (beyond the version bump and the entry itself).
func (e *Entry) Changed() bool {
	return e.Weapons.Changed() || e.Gadgets.Changed() || e.Specializations.Changed() ||
		e.TagsAdded > 0 || e.NotesAdded > 0
}

// String returns a human-readable one-line summary of the entry.
func (e *Entry) String() string {
	if !e.Changed() {
		return fmt.Sprintf("%s: no changes", e.Source)
	}

	var parts []string
	for _, cat := range []struct {
		name    string
		summary Summary
	}{
		{"weapons", e.Weapons},
		{"gadgets", e.Gadgets},
		{"specializations", e.Specializations},
	} {
		if cat.summary.Changed() {
			parts = append(parts, fmt.Sprintf("%s +%d/~%d", cat.name, cat.summary.Added, cat.summary.Updated))
		}
	}
	if e.TagsAdded > 0 {
		parts = append(parts, fmt.Sprintf("%d tags", e.TagsAdded))
	}
	if e.NotesAdded > 0 {
		parts = append(parts, fmt.Sprintf("%d notes", e.NotesAdded))
	}

	return fmt.Sprintf("%s: %s", e.Source, strings.Join(parts, ", "))
}
