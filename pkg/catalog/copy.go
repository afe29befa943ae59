package catalog

import "github.com/gh6st66/metaloadout.gg/pkg/provenance"

// DeepCopy creates a deep copy of the catalog. Merges operate on the
// copy so the input catalog is never mutated.
func (c *Catalog) DeepCopy() *Catalog {
	if c == nil {
		return nil
	}

	out := *c
	out.Weapons = DeepCopyEntities(c.Weapons)
	out.Gadgets = DeepCopyEntities(c.Gadgets)
	out.Specializations = DeepCopyEntities(c.Specializations)
	out.Meta = MetaFacts{
		Synergy:  copyStrings(c.Meta.Synergy),
		Counters: copyStrings(c.Meta.Counters),
	}
	out.Provenance = append([]provenance.Entry{}, c.Provenance...)
	return &out
}

// DeepCopyEntities creates a deep copy of an entity collection.
// Returns nil if the input is nil.
func DeepCopyEntities(entities []Entity) []Entity {
	if entities == nil {
		return nil
	}

	result := make([]Entity, len(entities))
	for i := range entities {
		result[i] = DeepCopyEntity(entities[i])
	}
	return result
}

// DeepCopyEntity creates a deep copy of an Entity including its
// tags and notes slices.
func DeepCopyEntity(e Entity) Entity {
	entityCopy := e
	if e.Class != nil {
		class := *e.Class
		entityCopy.Class = &class
	}
	entityCopy.Tags = copyStrings(e.Tags)
	entityCopy.Notes = copyStrings(e.Notes)
	return entityCopy
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}
