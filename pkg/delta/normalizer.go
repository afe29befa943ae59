package delta

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gh6st66/metaloadout.gg/pkg/catalog"
	"github.com/gh6st66/metaloadout.gg/pkg/errors"
)

// MaxNoteLength is the longest note the engine accepts. Over-length
// notes are rejected, never truncated.
const MaxNoteLength = 240

// Normalizer validates a raw delta and shapes it into the merge-ready
// representation. It is a pure function of its input: the same raw
// delta always normalizes to the same Delta.
type Normalizer struct {
	validTag func(string) bool
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithRegistry enables tag validation against a registry. A tag the
// predicate rejects fails the whole delta with a validation error.
func WithRegistry(valid func(string) bool) Option {
	return func(n *Normalizer) {
		n.validTag = valid
	}
}

// NewNormalizer creates a Normalizer with options. Registry validation
// is off by default: the extractor's vocabulary is trusted.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize shapes raw into a Delta: per-entity tags and notes collapse
// into duplicate-free sets, tags are lower-cased defensively, missing
// collections become empty. Any malformed record rejects the whole
// delta; there is no partial acceptance.
func (n *Normalizer) Normalize(raw *Raw) (*Delta, error) {
	if raw == nil {
		return nil, errors.NewValidationError("delta", nil, "delta is nil")
	}

	out := &Delta{
		Weapons:         []catalog.Entity{},
		Gadgets:         []catalog.Entity{},
		Specializations: []catalog.Entity{},
		Meta: catalog.MetaFacts{
			Synergy:  []string{},
			Counters: []string{},
		},
	}

	for _, cat := range catalog.Categories() {
		entities := make([]catalog.Entity, 0, len(raw.Entities(cat)))
		byID := make(map[string]int, len(raw.Entities(cat)))
		for i, rec := range raw.Entities(cat) {
			entity, err := n.normalizeEntity(cat, i, rec)
			if err != nil {
				return nil, err
			}
			// Records sharing an id collapse into one entity keyed by
			// identity; the first record's scalar fields win.
			if at, dup := byID[entity.ID]; dup {
				entities[at].Tags, _ = unionStrings(entities[at].Tags, entity.Tags)
				entities[at].Notes, _ = unionStrings(entities[at].Notes, entity.Notes)
				if entities[at].Class == nil {
					entities[at].Class = entity.Class
				}
				continue
			}
			byID[entity.ID] = len(entities)
			entities = append(entities, entity)
		}
		setEntities(out, cat, entities)
	}

	var err error
	if out.Meta.Synergy, err = n.normalizeNotes("meta.synergy", raw.Meta.Synergy); err != nil {
		return nil, err
	}
	if out.Meta.Counters, err = n.normalizeNotes("meta.counters", raw.Meta.Counters); err != nil {
		return nil, err
	}

	return out, nil
}

// Normalize is a convenience wrapper using a default Normalizer.
func Normalize(raw *Raw) (*Delta, error) {
	return NewNormalizer().Normalize(raw)
}

func (n *Normalizer) normalizeEntity(cat catalog.Category, index int, rec RawEntity) (catalog.Entity, error) {
	field := fmt.Sprintf("%s[%d]", cat, index)

	if rec.ID == "" {
		return catalog.Entity{}, errors.NewValidationError(field+".id", nil, "entity is missing its id")
	}

	entity := catalog.Entity{
		ID:    rec.ID,
		Tags:  []string{},
		Notes: []string{},
	}

	if rec.Class != nil && *rec.Class != "" {
		class := catalog.Class(*rec.Class)
		entity.Class = &class
	}

	// Casers carry internal state, so one per call rather than a package var.
	lower := cases.Lower(language.Und)

	seen := make(map[string]struct{}, len(rec.Tags))
	for _, tag := range rec.Tags {
		tag = lower.String(tag)
		if n.validTag != nil && !n.validTag(tag) {
			return catalog.Entity{}, errors.NewValidationError(field+".tags", tag, "tag is not in the registry")
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		entity.Tags = append(entity.Tags, tag)
	}

	notes, err := n.normalizeNotes(field+".notes", rec.Notes)
	if err != nil {
		return catalog.Entity{}, err
	}
	entity.Notes = notes

	return entity, nil
}

// normalizeNotes deduplicates by exact string equality, preserving the
// first occurrence, and rejects over-length notes.
func (n *Normalizer) normalizeNotes(field string, notes []string) ([]string, error) {
	out := make([]string, 0, len(notes))
	seen := make(map[string]struct{}, len(notes))
	for _, note := range notes {
		if len([]rune(note)) > MaxNoteLength {
			return nil, errors.NewValidationError(field, note,
				fmt.Sprintf("note exceeds %d characters", MaxNoteLength))
		}
		if _, dup := seen[note]; dup {
			continue
		}
		seen[note] = struct{}{}
		out = append(out, note)
	}
	return out, nil
}

// unionStrings appends incoming values not already present, keeping
// first-occurrence order. Returns the union and the number added.
func unionStrings(base, incoming []string) ([]string, int) {
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

func setEntities(d *Delta, cat catalog.Category, entities []catalog.Entity) {
	switch cat {
	case catalog.CategoryWeapons:
		d.Weapons = entities
	case catalog.CategoryGadgets:
		d.Gadgets = entities
	case catalog.CategorySpecializations:
		d.Specializations = entities
	}
}
