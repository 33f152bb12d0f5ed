package engine

import (
	"github.com/scapelab/gear-api/internal/catalogue"
	"github.com/scapelab/gear-api/internal/entities/osrs"
)

// EligibleInput defines the request for filtering eligible items
type EligibleInput struct {
	Snapshot *catalogue.Snapshot
	Slot     osrs.Slot
	Player   *osrs.PlayerContext
}

// EligibleOutput defines the response for filtering eligible items
type EligibleOutput struct {
	Items []*osrs.Item
}

// BestLoadoutInput defines the request for solving the best loadout
type BestLoadoutInput struct {
	Snapshot *catalogue.Snapshot
	Player   *osrs.PlayerContext
}

// BestLoadoutOutput defines the response for solving the best loadout
type BestLoadoutOutput struct {
	Loadout    *osrs.Loadout
	TotalCost  int
	TotalScore float64
}

// UpgradePathInput defines the request for computing upgrade suggestions
type UpgradePathInput struct {
	Snapshot *catalogue.Snapshot
	Current  *osrs.Loadout
	Player   *osrs.PlayerContext
}

// UpgradePathOutput defines the response for computing upgrade suggestions
type UpgradePathOutput struct {
	Suggestions []UpgradeSuggestion
}

// UpgradeSuggestion is one per-slot upgrade, ranked by efficiency.
// Style is only set by Progression, which merges suggestions across styles.
type UpgradeSuggestion struct {
	Slot          osrs.Slot        `json:"slot"`
	Style         osrs.CombatStyle `json:"style,omitempty"`
	CurrentItem   *osrs.Item       `json:"current_item,omitempty"`
	SuggestedItem *osrs.Item       `json:"suggested_item"`
	CostDelta     int              `json:"cost_delta"`
	ScoreDelta    float64          `json:"score_delta"`
	Efficiency    float64          `json:"efficiency"`
}

// CalculateDPSInput defines the request for a DPS calculation.
// PrayerMultiplier defaults to 1.0 and TargetDefenceLevel to 1 when unset.
// BaseSpellMaxHit is only consulted for the magic style.
type CalculateDPSInput struct {
	Snapshot   *catalogue.Snapshot
	Loadout    *osrs.Loadout
	Style      osrs.CombatStyle
	AttackType osrs.AttackType
	Stance     osrs.Stance
	Stats      osrs.Stats

	PrayerMultiplier float64
	BaseSpellMaxHit  int

	TargetDefenceLevel int
	TargetDefenceBonus int
}

// DPSResult is the derived output of a DPS calculation. It is recomputed
// on every request and never cached.
type DPSResult struct {
	MaxHit           int     `json:"max_hit"`
	AttackSpeedTicks int     `json:"attack_speed_ticks"`
	Accuracy         float64 `json:"accuracy"`
	DPS              float64 `json:"dps"`
}

// CalculateDPSOutput defines the response for a DPS calculation
type CalculateDPSOutput struct {
	Result DPSResult
}

// ProgressionInput defines the request for the cross-style progression
// aggregator. Loadouts maps each style to the account's current gear;
// missing styles are treated as empty loadouts. MeleeAttackType defaults
// to slash.
type ProgressionInput struct {
	Snapshot *catalogue.Snapshot
	Loadouts map[osrs.CombatStyle]*osrs.Loadout

	BankValue int
	Stats     osrs.Stats

	QuestsCompleted       map[string]bool
	AchievementsCompleted map[string]bool
	Ironman               bool

	MeleeAttackType     osrs.AttackType
	ExcludedItems       map[string]bool
	MaxTickManipulation bool
}

// ProgressionOutput defines the response for the progression aggregator.
// TotalCost is the cumulative cost of the accepted suggestions, which
// never exceeds BankValue.
type ProgressionOutput struct {
	Suggestions []UpgradeSuggestion
	TotalCost   int
}
