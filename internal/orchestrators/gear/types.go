package gear

import (
	"github.com/scapelab/gear-api/internal/engine"
	"github.com/scapelab/gear-api/internal/entities/osrs"
)

// BestLoadoutInput defines the request for solving a best loadout.
// An empty SnapshotVersion resolves the latest saved snapshot.
type BestLoadoutInput struct {
	SnapshotVersion string              `json:"snapshot_version,omitempty"`
	Player          *osrs.PlayerContext `json:"player"`
}

// BestLoadoutOutput defines the response for solving a best loadout
type BestLoadoutOutput struct {
	SnapshotVersion string        `json:"snapshot_version"`
	Loadout         *osrs.Loadout `json:"loadout"`
	TotalCost       int           `json:"total_cost"`
	TotalScore      float64       `json:"total_score"`
}

// UpgradePathInput defines the request for computing upgrade suggestions
type UpgradePathInput struct {
	SnapshotVersion string              `json:"snapshot_version,omitempty"`
	Current         *osrs.Loadout       `json:"current,omitempty"`
	Player          *osrs.PlayerContext `json:"player"`
}

// UpgradePathOutput defines the response for computing upgrade suggestions
type UpgradePathOutput struct {
	SnapshotVersion string                     `json:"snapshot_version"`
	Suggestions     []engine.UpgradeSuggestion `json:"suggestions"`
}

// CalculateDPSInput defines the request for a DPS calculation
type CalculateDPSInput struct {
	SnapshotVersion string           `json:"snapshot_version,omitempty"`
	Loadout         *osrs.Loadout    `json:"loadout,omitempty"`
	Style           osrs.CombatStyle `json:"style"`
	AttackType      osrs.AttackType  `json:"attack_type,omitempty"`
	Stance          osrs.Stance      `json:"stance,omitempty"`
	Stats           osrs.Stats       `json:"stats"`

	PrayerMultiplier float64 `json:"prayer_multiplier,omitempty"`
	BaseSpellMaxHit  int     `json:"base_spell_max_hit,omitempty"`

	TargetDefenceLevel int `json:"target_defence_level,omitempty"`
	TargetDefenceBonus int `json:"target_defence_bonus,omitempty"`
}

// CalculateDPSOutput defines the response for a DPS calculation
type CalculateDPSOutput struct {
	SnapshotVersion string           `json:"snapshot_version"`
	Result          engine.DPSResult `json:"result"`
}

// ProgressionInput defines the request for the cross-style progression
// aggregator
type ProgressionInput struct {
	SnapshotVersion string                             `json:"snapshot_version,omitempty"`
	Loadouts        map[osrs.CombatStyle]*osrs.Loadout `json:"loadouts,omitempty"`

	BankValue int        `json:"bank_value"`
	Stats     osrs.Stats `json:"stats"`

	QuestsCompleted       map[string]bool `json:"quests_completed,omitempty"`
	AchievementsCompleted map[string]bool `json:"achievements_completed,omitempty"`
	Ironman               bool            `json:"ironman,omitempty"`

	MeleeAttackType     osrs.AttackType `json:"melee_attack_type,omitempty"`
	ExcludedItems       map[string]bool `json:"excluded_items,omitempty"`
	MaxTickManipulation bool            `json:"max_tick_manipulation,omitempty"`
}

// ProgressionOutput defines the response for the progression aggregator
type ProgressionOutput struct {
	SnapshotVersion string                     `json:"snapshot_version"`
	Suggestions     []engine.UpgradeSuggestion `json:"suggestions"`
	TotalCost       int                        `json:"total_cost"`
}

// RefreshSnapshotInput defines the request for refreshing the catalogue
type RefreshSnapshotInput struct {
	// SkipPrices keeps the dump's listed costs instead of overlaying
	// the live price feed.
	SkipPrices bool `json:"skip_prices,omitempty"`
}

// RefreshSnapshotOutput defines the response for refreshing the catalogue
type RefreshSnapshotOutput struct {
	Version   string `json:"version"`
	ItemCount int    `json:"item_count"`
}
