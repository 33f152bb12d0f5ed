// Package osrs implements the gear catalogue entities
package osrs

// CombatBonuses holds the combat stat line of an item.
// NOTE: This is a data-only struct. All scoring and combat math is done by
// the engine (internal/engine), not here.
type CombatBonuses struct {
	AttackStab   int `json:"attack_stab"`
	AttackSlash  int `json:"attack_slash"`
	AttackCrush  int `json:"attack_crush"`
	AttackMagic  int `json:"attack_magic"`
	AttackRanged int `json:"attack_ranged"`

	MeleeStrength      int `json:"melee_strength"`
	RangedStrength     int `json:"ranged_strength"`
	MagicDamagePercent int `json:"magic_damage_percent"`
	Prayer             int `json:"prayer"`

	DefenceStab   int `json:"defence_stab"`
	DefenceSlash  int `json:"defence_slash"`
	DefenceCrush  int `json:"defence_crush"`
	DefenceMagic  int `json:"defence_magic"`
	DefenceRanged int `json:"defence_ranged"`
}

// AttackBonus returns the attack bonus for a melee attack type
func (b CombatBonuses) AttackBonus(attackType AttackType) int {
	switch attackType {
	case AttackStab:
		return b.AttackStab
	case AttackSlash:
		return b.AttackSlash
	case AttackCrush:
		return b.AttackCrush
	default:
		return 0
	}
}

// DefenceTotal returns the sum of the five defence bonuses
func (b CombatBonuses) DefenceTotal() int {
	return b.DefenceStab + b.DefenceSlash + b.DefenceCrush + b.DefenceMagic + b.DefenceRanged
}

// Requirements holds the levels and unlocks needed to equip an item.
// A zero level means no requirement for that skill.
type Requirements struct {
	Levels      map[Skill]int `json:"levels,omitempty"`
	Quest       string        `json:"quest,omitempty"`
	Achievement string        `json:"achievement,omitempty"`
}

// Item is an immutable catalogue entry. The catalogue owns items; the
// engine only ever reads them.
type Item struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Slot      Slot   `json:"slot"`
	Tradeable bool   `json:"tradeable"`
	TwoHanded bool   `json:"two_handed"`

	// AttackSpeedTicks is only meaningful for weapons. Zero means unknown.
	AttackSpeedTicks int `json:"attack_speed_ticks,omitempty"`

	Bonuses      CombatBonuses `json:"bonuses"`
	Requirements Requirements  `json:"requirements"`

	// Price in GP. Untradeable items carry a zero price.
	Price int `json:"price"`

	// ContentTags restricts the item to named content (e.g. a raid).
	// An item with no tags is usable everywhere.
	ContentTags []string `json:"content_tags,omitempty"`

	// TickManipulationRequired marks items that only reach their listed
	// output with tick manipulation.
	TickManipulationRequired bool `json:"tick_manipulation_required,omitempty"`

	// IronmanRestricted marks items a boss-data source has flagged as
	// unobtainable for ironman accounts. The engine applies the flag as
	// given and never derives it.
	IronmanRestricted bool `json:"ironman_restricted,omitempty"`

	// VariantOf back-references the base item for cosmetic or charged
	// variants. Zero means the item is itself a base item.
	VariantOf int64 `json:"variant_of,omitempty"`
}

// HasContentTag reports whether the item carries the given tag
func (i *Item) HasContentTag(tag string) bool {
	for _, t := range i.ContentTags {
		if t == tag {
			return true
		}
	}
	return false
}

// RequiredLevel returns the level requirement for a skill, or zero
func (i *Item) RequiredLevel(skill Skill) int {
	if i.Requirements.Levels == nil {
		return 0
	}
	return i.Requirements.Levels[skill]
}
