package gear

import (
	"context"
	"sort"

	"github.com/scapelab/gear-api/internal/catalogue"
	"github.com/scapelab/gear-api/internal/engine"
	"github.com/scapelab/gear-api/internal/entities/osrs"
	"github.com/scapelab/gear-api/internal/errors"
)

// UpgradePath computes, for each non-excluded slot, the single best
// affordable replacement with a strictly positive score gain, then ranks
// the suggestions across slots by score gained per GP spent. Candidates
// priced above the player's budget are excluded entirely: an upgrade a
// player cannot afford in one step is not a plan.
func (e *gearEngine) UpgradePath(ctx context.Context, input *engine.UpgradePathInput) (*engine.UpgradePathOutput, error) {
	if input == nil || input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}
	if err := validatePlayer(input.Player); err != nil {
		return nil, err
	}

	current := input.Current
	if current == nil {
		current = osrs.NewLoadout()
	}

	var suggestions []engine.UpgradeSuggestion
	for _, slot := range osrs.CanonicalSlots {
		if input.Player.ExcludedSlots[slot] {
			continue
		}

		suggestion, err := e.bestUpgradeForSlot(ctx, input.Snapshot, current, slot, input.Player)
		if err != nil {
			return nil, err
		}
		if suggestion != nil {
			suggestions = append(suggestions, *suggestion)
		}
	}

	sortSuggestions(suggestions)

	return &engine.UpgradePathOutput{Suggestions: suggestions}, nil
}

// bestUpgradeForSlot finds the candidate with the highest score gain for
// one slot, or nil when no eligible candidate beats the current item. An
// empty slot is treated as current score 0 and cost 0, so any eligible
// item is a valid upgrade.
func (e *gearEngine) bestUpgradeForSlot(
	ctx context.Context,
	snapshot *catalogue.Snapshot,
	current *osrs.Loadout,
	slot osrs.Slot,
	player *osrs.PlayerContext,
) (*engine.UpgradeSuggestion, error) {
	var currentItem *osrs.Item
	currentScore := 0.0
	currentPrice := 0
	if v := current.Get(slot); v.Filled {
		if item := snapshot.ByID(v.ItemID); item != nil {
			currentItem = item
			currentScore = e.Score(item, player.Style, player.AttackType)
			currentPrice = item.Price
		}
	}

	eligible, err := e.Eligible(ctx, &engine.EligibleInput{
		Snapshot: snapshot,
		Slot:     slot,
		Player:   player,
	})
	if err != nil {
		return nil, err
	}

	var best *engine.UpgradeSuggestion
	for _, item := range eligible.Items {
		if item.Price > player.Budget {
			continue
		}
		if currentItem != nil && item.ID == currentItem.ID {
			continue
		}

		scoreDelta := e.Score(item, player.Style, player.AttackType) - currentScore
		if scoreDelta <= 0 {
			continue
		}
		costDelta := item.Price - currentPrice

		candidate := &engine.UpgradeSuggestion{
			Slot:          slot,
			CurrentItem:   currentItem,
			SuggestedItem: item,
			CostDelta:     costDelta,
			ScoreDelta:    scoreDelta,
			Efficiency:    efficiency(scoreDelta, costDelta),
		}

		if best == nil || betterUpgrade(candidate, best) {
			best = candidate
		}
	}

	return best, nil
}

// efficiency is the upgrade ranking key: score gained per GP spent. The
// divisor is clamped to 1 so free or cheaper-than-current upgrades, which
// strictly dominate, rank by their full score gain.
func efficiency(scoreDelta float64, costDelta int) float64 {
	if costDelta < 1 {
		costDelta = 1
	}
	return scoreDelta / float64(costDelta)
}

// betterUpgrade decides whether a beats b as a slot's single suggestion:
// highest score gain first, then lower price, then lower id.
func betterUpgrade(a, b *engine.UpgradeSuggestion) bool {
	if a.ScoreDelta != b.ScoreDelta {
		return a.ScoreDelta > b.ScoreDelta
	}
	if a.SuggestedItem.Price != b.SuggestedItem.Price {
		return a.SuggestedItem.Price < b.SuggestedItem.Price
	}
	return a.SuggestedItem.ID < b.SuggestedItem.ID
}

// sortSuggestions orders suggestions by efficiency descending, then score
// gain descending. This is the priority order presented to the caller.
func sortSuggestions(suggestions []engine.UpgradeSuggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Efficiency != b.Efficiency {
			return a.Efficiency > b.Efficiency
		}
		return a.ScoreDelta > b.ScoreDelta
	})
}
