// Package engine defines the gear optimization and combat calculation contracts
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/scapelab/gear-api/internal/engine Engine

import (
	"context"

	"github.com/scapelab/gear-api/internal/entities/osrs"
)

// Engine provides gear selection and combat calculations. Every method is
// a pure function of its inputs: implementations hold no per-request
// state, so calls may run concurrently against shared snapshots.
type Engine interface {
	// Eligible filters a snapshot down to the items a player can use in a slot.
	// An empty result is a valid outcome, not an error.
	Eligible(ctx context.Context, input *EligibleInput) (*EligibleOutput, error)

	// BestLoadout selects one item per slot maximizing total score under the
	// player's budget, with two-handed/shield coupling.
	BestLoadout(ctx context.Context, input *BestLoadoutInput) (*BestLoadoutOutput, error)

	// UpgradePath ranks the best per-slot replacement candidates by
	// score gained per GP spent.
	UpgradePath(ctx context.Context, input *UpgradePathInput) (*UpgradePathOutput, error)

	// CalculateDPS computes accuracy, max hit, attack speed and expected
	// damage per second for a completed loadout.
	CalculateDPS(ctx context.Context, input *CalculateDPSInput) (*CalculateDPSOutput, error)

	// Progression merges per-style upgrade suggestions across an account's
	// bank into one prioritized list.
	Progression(ctx context.Context, input *ProgressionInput) (*ProgressionOutput, error)

	// Utility scoring methods
	Score(item *osrs.Item, style osrs.CombatStyle, attackType osrs.AttackType) float64
	DefensiveScore(item *osrs.Item) float64
}
