package gear

import (
	"context"

	"github.com/scapelab/gear-api/internal/engine"
	"github.com/scapelab/gear-api/internal/entities/osrs"
	"github.com/scapelab/gear-api/internal/errors"
)

// BestLoadout runs the canonical-order per-slot greedy selection under a
// shared running budget. This is deliberately not a multi-slot knapsack:
// slots are independent except for the weapon/shield coupling, and the
// greedy pass is deterministic and explainable to the caller.
func (e *gearEngine) BestLoadout(ctx context.Context, input *engine.BestLoadoutInput) (*engine.BestLoadoutOutput, error) {
	if input == nil || input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}
	if err := validatePlayer(input.Player); err != nil {
		return nil, err
	}

	loadout := osrs.NewLoadout()
	remaining := input.Player.Budget
	totalCost := 0
	totalScore := 0.0
	twoHandedWeapon := false

	for _, slot := range osrs.CanonicalSlots {
		if input.Player.ExcludedSlots[slot] {
			continue
		}
		// A two-handed weapon occupies the shield slot structurally,
		// regardless of remaining budget.
		if slot == osrs.SlotShield && twoHandedWeapon {
			continue
		}

		eligible, err := e.Eligible(ctx, &engine.EligibleInput{
			Snapshot: input.Snapshot,
			Slot:     slot,
			Player:   input.Player,
		})
		if err != nil {
			return nil, err
		}

		candidates := e.scoreCandidates(eligible.Items, input.Player)

		selected := pickAffordable(candidates, remaining)
		if selected == nil {
			// Nothing fits the remaining budget: leave the slot empty
			// and spend nothing. Not an error.
			continue
		}

		loadout.Equip(selected.item)
		remaining -= selected.item.Price
		totalCost += selected.item.Price
		totalScore += selected.score

		if slot == osrs.SlotWeapon && selected.item.TwoHanded {
			twoHandedWeapon = true
		}
	}

	return &engine.BestLoadoutOutput{
		Loadout:    loadout,
		TotalCost:  totalCost,
		TotalScore: totalScore,
	}, nil
}

// pickAffordable returns the highest-ranked candidate whose price fits
// the remaining budget, or nil when none does
func pickAffordable(candidates []scoredCandidate, remaining int) *scoredCandidate {
	for i := range candidates {
		if candidates[i].item.Price <= remaining {
			return &candidates[i]
		}
	}
	return nil
}
