package gear

import (
	"context"

	"github.com/scapelab/gear-api/internal/engine"
	"github.com/scapelab/gear-api/internal/entities/osrs"
	"github.com/scapelab/gear-api/internal/errors"
)

// Progression runs the upgrade-path calculator once per combat style,
// tags each suggestion with its style, merges the lists by efficiency and
// then greedily admits suggestions while the cumulative cost fits the
// bank value. A skipped expensive suggestion is not re-packed around: the
// pass never backtracks.
func (e *gearEngine) Progression(ctx context.Context, input *engine.ProgressionInput) (*engine.ProgressionOutput, error) {
	if input == nil || input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}
	if input.BankValue < 0 {
		return nil, errors.OutOfRangef("bank value must not be negative, got %d", input.BankValue).
			WithMeta("reason", "budget_out_of_range")
	}

	meleeAttackType := input.MeleeAttackType
	if meleeAttackType == "" {
		meleeAttackType = osrs.AttackSlash
	}

	var merged []engine.UpgradeSuggestion
	for _, style := range osrs.CombatStyles {
		player := &osrs.PlayerContext{
			Stats:                 input.Stats,
			QuestsCompleted:       input.QuestsCompleted,
			AchievementsCompleted: input.AchievementsCompleted,
			Ironman:               input.Ironman,
			Style:                 style,
			Budget:                input.BankValue,
			ExcludedItems:         input.ExcludedItems,
			MaxTickManipulation:   input.MaxTickManipulation,
		}
		if style == osrs.StyleMelee {
			player.AttackType = meleeAttackType
		}

		current := input.Loadouts[style]
		if current == nil {
			current = osrs.NewLoadout()
		}

		path, err := e.UpgradePath(ctx, &engine.UpgradePathInput{
			Snapshot: input.Snapshot,
			Current:  current,
			Player:   player,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to compute %s upgrade path", style)
		}

		for _, suggestion := range path.Suggestions {
			suggestion.Style = style
			merged = append(merged, suggestion)
		}
	}

	sortSuggestions(merged)

	// Greedy pass over the pre-ranked list under the bank allowance.
	// Selling the replaced piece recoups its price, so a suggestion is
	// charged its positive cost delta.
	var accepted []engine.UpgradeSuggestion
	remaining := input.BankValue
	totalCost := 0
	for _, suggestion := range merged {
		cost := suggestion.CostDelta
		if cost < 0 {
			cost = 0
		}
		if cost > remaining {
			continue
		}
		accepted = append(accepted, suggestion)
		remaining -= cost
		totalCost += cost
	}

	return &engine.ProgressionOutput{
		Suggestions: accepted,
		TotalCost:   totalCost,
	}, nil
}
