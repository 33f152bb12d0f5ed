package gear

import (
	"context"

	"github.com/scapelab/gear-api/internal/engine"
	"github.com/scapelab/gear-api/internal/entities/osrs"
	"github.com/scapelab/gear-api/internal/errors"
)

const (
	// Seconds per game tick
	tickSeconds = 0.6

	// Unarmed fallback when no weapon is equipped
	unarmedSpeedTicks = 4

	// Offset added to equipment bonuses in attack and defence rolls
	rollBonusOffset = 64
)

// loadoutBonuses is the aggregate stat line of a completed loadout.
// Missing slots contribute zero, never an error.
type loadoutBonuses struct {
	attackBonus        int
	strengthBonus      int
	magicDamagePercent int
	attackSpeedTicks   int
}

// CalculateDPS computes accuracy, max hit, attack speed and expected
// damage per second for a loadout. Pure function: no I/O, nothing cached.
func (e *gearEngine) CalculateDPS(ctx context.Context, input *engine.CalculateDPSInput) (*engine.CalculateDPSOutput, error) {
	if input == nil || input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}
	if err := validateStyle(input.Style); err != nil {
		return nil, err
	}
	if err := validateAttackType(input.Style, input.AttackType); err != nil {
		return nil, err
	}

	loadout := input.Loadout
	if loadout == nil {
		loadout = osrs.NewLoadout()
	}

	bonuses := aggregateBonuses(input, loadout)

	prayer := input.PrayerMultiplier
	if prayer <= 0 {
		prayer = 1.0
	}

	effStrength := effectiveLevel(strengthLevel(input.Style, input.Stats), prayer, input.Stance)
	effAttack := effectiveLevel(attackLevel(input.Style, input.Stats), prayer, input.Stance)

	maxHit := maxHit(input, bonuses, effStrength)
	accuracy := accuracy(effAttack, bonuses.attackBonus, input.TargetDefenceLevel, input.TargetDefenceBonus)

	dps := accuracy * (float64(maxHit) / 2) / (float64(bonuses.attackSpeedTicks) * tickSeconds)

	return &engine.CalculateDPSOutput{
		Result: engine.DPSResult{
			MaxHit:           maxHit,
			AttackSpeedTicks: bonuses.attackSpeedTicks,
			Accuracy:         accuracy,
			DPS:              dps,
		},
	}, nil
}

// aggregateBonuses sums the style-relevant bonuses across every filled
// slot and picks up the weapon's attack speed
func aggregateBonuses(input *engine.CalculateDPSInput, loadout *osrs.Loadout) loadoutBonuses {
	bonuses := loadoutBonuses{attackSpeedTicks: unarmedSpeedTicks}

	for _, slot := range osrs.CanonicalSlots {
		v := loadout.Get(slot)
		if !v.Filled {
			continue
		}
		item := input.Snapshot.ByID(v.ItemID)
		if item == nil {
			continue
		}

		switch input.Style {
		case osrs.StyleMelee:
			bonuses.attackBonus += item.Bonuses.AttackBonus(input.AttackType)
			bonuses.strengthBonus += item.Bonuses.MeleeStrength
		case osrs.StyleRanged:
			bonuses.attackBonus += item.Bonuses.AttackRanged
			bonuses.strengthBonus += item.Bonuses.RangedStrength
		case osrs.StyleMagic:
			bonuses.attackBonus += item.Bonuses.AttackMagic
			bonuses.magicDamagePercent += item.Bonuses.MagicDamagePercent
		}

		if slot == osrs.SlotWeapon && item.AttackSpeedTicks > 0 {
			bonuses.attackSpeedTicks = item.AttackSpeedTicks
		}
	}

	return bonuses
}

// effectiveLevel applies the prayer multiplier (floored) and the stance
// bonus to a base level
func effectiveLevel(base int, prayerMultiplier float64, stance osrs.Stance) int {
	return int(float64(base)*prayerMultiplier) + stance.Bonus()
}

// strengthLevel picks the skill that scales max hit for a style
func strengthLevel(style osrs.CombatStyle, stats osrs.Stats) int {
	switch style {
	case osrs.StyleRanged:
		return stats.Level(osrs.SkillRanged)
	case osrs.StyleMagic:
		return stats.Level(osrs.SkillMagic)
	default:
		return stats.Level(osrs.SkillStrength)
	}
}

// attackLevel picks the skill that scales accuracy for a style
func attackLevel(style osrs.CombatStyle, stats osrs.Stats) int {
	switch style {
	case osrs.StyleRanged:
		return stats.Level(osrs.SkillRanged)
	case osrs.StyleMagic:
		return stats.Level(osrs.SkillMagic)
	default:
		return stats.Level(osrs.SkillAttack)
	}
}

// maxHit computes the maximum hit. Melee and ranged share the standard
// strength formula; magic scales a base spell hit by the damage percent.
// Integer truncation is part of the numeric contract.
func maxHit(input *engine.CalculateDPSInput, bonuses loadoutBonuses, effStrength int) int {
	if input.Style == osrs.StyleMagic {
		return int(float64(input.BaseSpellMaxHit) * (1 + float64(bonuses.magicDamagePercent)/100))
	}
	return effStrength*(bonuses.strengthBonus+rollBonusOffset)/640 + 1
}

// accuracy compares the attack roll against the defence roll using the
// standard asymmetric formula, clamped to [0,1]
func accuracy(effAttack, attackBonus, targetDefenceLevel, targetDefenceBonus int) float64 {
	if targetDefenceLevel < 1 {
		targetDefenceLevel = 1
	}

	attackRoll := float64(effAttack * (attackBonus + rollBonusOffset))
	defenceRoll := float64(targetDefenceLevel * (targetDefenceBonus + rollBonusOffset))

	var chance float64
	if attackRoll > defenceRoll {
		chance = 1 - (defenceRoll+2)/(2*(attackRoll+1))
	} else {
		chance = attackRoll / (2 * (defenceRoll + 1))
	}

	if chance < 0 {
		return 0
	}
	if chance > 1 {
		return 1
	}
	return chance
}
