package catalog

// Class identifies which contestant class an entity is restricted to.
type Class string

// Contestant classes.
const (
	ClassLight  Class = "light"
	ClassMedium Class = "medium"
	ClassHeavy  Class = "heavy"

	// ClassAll marks an entity usable by every class.
	ClassAll Class = "all"
)

// String returns the string representation of a Class.
func (c Class) String() string {
	return string(c)
}

// Entity represents one weapon, gadget, or specialization. Its ID is
// the identity key for merging; Tags and Notes are duplicate-free,
// order-preserving sets.
type Entity struct {
	ID    string   `json:"id" yaml:"id"`
	Class *Class   `json:"class,omitempty" yaml:"class,omitempty"`
	Tags  []string `json:"tags" yaml:"tags"`
	Notes []string `json:"notes" yaml:"notes"`
}

// HasTag reports whether the entity carries the given tag.
func (e *Entity) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MetaFacts holds catalog-wide cross-item knowledge: free-text synergy
// and counter-play observations, each a duplicate-free set.
type MetaFacts struct {
	Synergy  []string `json:"synergy" yaml:"synergy"`
	Counters []string `json:"counters" yaml:"counters"`
}
