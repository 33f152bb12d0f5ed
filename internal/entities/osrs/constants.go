package osrs

// CombatStyle identifies which offensive stat line is scored
type CombatStyle string

// Combat styles
const (
	StyleMelee  CombatStyle = "melee"
	StyleRanged CombatStyle = "ranged"
	StyleMagic  CombatStyle = "magic"
)

// CombatStyles lists every supported combat style in a stable order
var CombatStyles = []CombatStyle{StyleMelee, StyleRanged, StyleMagic}

// AttackType selects the attack-bonus column scored for melee
type AttackType string

// Melee attack types
const (
	AttackStab  AttackType = "stab"
	AttackSlash AttackType = "slash"
	AttackCrush AttackType = "crush"
)

// MeleeAttackTypes lists the valid melee attack types
var MeleeAttackTypes = []AttackType{AttackStab, AttackSlash, AttackCrush}

// Stance modifies the effective level used in combat calculations
type Stance string

// Combat stances. Aggressive grants +3 to the effective level,
// controlled +1, everything else +0.
const (
	StanceNone       Stance = ""
	StanceAccurate   Stance = "accurate"
	StanceAggressive Stance = "aggressive"
	StanceControlled Stance = "controlled"
	StanceDefensive  Stance = "defensive"
)

// StanceBonus returns the effective-level bonus for a stance
func (s Stance) Bonus() int {
	switch s {
	case StanceAggressive:
		return 3
	case StanceControlled:
		return 1
	default:
		return 0
	}
}

// Skill identifies a combat skill with an item level requirement
type Skill string

// Combat skills
const (
	SkillAttack   Skill = "attack"
	SkillStrength Skill = "strength"
	SkillDefence  Skill = "defence"
	SkillRanged   Skill = "ranged"
	SkillMagic    Skill = "magic"
	SkillPrayer   Skill = "prayer"
)

// CombatSkills lists the six skills checked by the eligibility filter
var CombatSkills = []Skill{SkillAttack, SkillStrength, SkillDefence, SkillRanged, SkillMagic, SkillPrayer}
