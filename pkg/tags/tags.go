// Package tags defines the closed vocabulary of catalog tags.
// The transcript extractor is expected to emit only tags from this
// registry; the delta normalizer can optionally validate against it.
package tags

// Tag represents a category or playstyle tag for catalog entities.
type Tag string

// String returns the string representation of a Tag.
func (t Tag) String() string {
	return string(t)
}

// Catalog tags for categorizing weapons, gadgets, and specializations.
const (
	// Weapon archetypes.
	TagShotgun Tag = "shotgun" // Pump and auto shotguns
	TagSMG     Tag = "smg"     // Submachine guns
	TagRifle   Tag = "rifle"   // Assault and battle rifles
	TagSniper  Tag = "sniper"  // Scoped long-range rifles
	TagPistol  Tag = "pistol"  // Sidearms
	TagMelee   Tag = "melee"   // Swords, hammers, daggers
	TagLMG     Tag = "lmg"     // Light machine guns

	// Engagement range.
	TagCloseRange  Tag = "close-range"
	TagMidRange    Tag = "mid-range"
	TagLongRange   Tag = "long-range"
	TagAreaDenial  Tag = "area-denial"
	TagAreaDamage  Tag = "area-damage"
	TagSingleShot  Tag = "single-shot"
	TagHighBurst   Tag = "high-burst"
	TagSustainedDP Tag = "sustained-dps"

	// Utility roles.
	TagMobility     Tag = "mobility"
	TagDefense      Tag = "defense"
	TagHealing      Tag = "healing"
	TagRecon        Tag = "recon"
	TagDeployable   Tag = "deployable"
	TagThrowable    Tag = "throwable"
	TagDestruction  Tag = "destruction"
	TagCrowdControl Tag = "crowd-control"
	TagStealth      Tag = "stealth"
	TagSupport      Tag = "support"
	TagAntiGadget   Tag = "anti-gadget"
	TagObjective    Tag = "objective"
)

// registry is the set of all allowed tags.
var registry = map[Tag]struct{}{
	TagShotgun:      {},
	TagSMG:          {},
	TagRifle:        {},
	TagSniper:       {},
	TagPistol:       {},
	TagMelee:        {},
	TagLMG:          {},
	TagCloseRange:   {},
	TagMidRange:     {},
	TagLongRange:    {},
	TagAreaDenial:   {},
	TagAreaDamage:   {},
	TagSingleShot:   {},
	TagHighBurst:    {},
	TagSustainedDP:  {},
	TagMobility:     {},
	TagDefense:      {},
	TagHealing:      {},
	TagRecon:        {},
	TagDeployable:   {},
	TagThrowable:    {},
	TagDestruction:  {},
	TagCrowdControl: {},
	TagStealth:      {},
	TagSupport:      {},
	TagAntiGadget:   {},
	TagObjective:    {},
}

// Valid reports whether tag belongs to the registry vocabulary.
func Valid(tag string) bool {
	_, ok := registry[Tag(tag)]
	return ok
}

// All returns every tag in the registry. The order is not stable.
func All() []Tag {
	all := make([]Tag, 0, len(registry))
	for t := range registry {
		all = append(all, t)
	}
	return all
}
