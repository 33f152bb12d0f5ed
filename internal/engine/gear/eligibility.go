package gear

import (
	"context"

	"github.com/scapelab/gear-api/internal/engine"
	"github.com/scapelab/gear-api/internal/entities/osrs"
	"github.com/scapelab/gear-api/internal/errors"
)

// Eligible filters the snapshot's items for one slot down to those the
// player can actually equip. An empty result is a normal outcome.
func (e *gearEngine) Eligible(ctx context.Context, input *engine.EligibleInput) (*engine.EligibleOutput, error) {
	if input == nil || input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}
	if !osrs.IsValidSlot(input.Slot) {
		return nil, errors.InvalidArgumentf("unknown slot: %q", input.Slot).
			WithMeta("reason", "invalid_slot")
	}
	if err := validatePlayer(input.Player); err != nil {
		return nil, err
	}

	var items []*osrs.Item
	for _, item := range input.Snapshot.BySlot(input.Slot) {
		if usable(item, input.Player) {
			items = append(items, item)
		}
	}

	return &engine.EligibleOutput{Items: items}, nil
}

// usable applies the eligibility rules in short-circuit order. The order
// only matters for efficiency; the result set is order-independent.
func usable(item *osrs.Item, player *osrs.PlayerContext) bool {
	for _, skill := range osrs.CombatSkills {
		if player.Stats.Level(skill) < item.RequiredLevel(skill) {
			return false
		}
	}

	if q := item.Requirements.Quest; q != "" && !player.HasQuest(q) {
		return false
	}
	if a := item.Requirements.Achievement; a != "" && !player.HasAchievement(a) {
		return false
	}

	// Ironman mode does not exclude tradeable items in general search.
	// The restricted flag comes from boss data; the engine only applies it.
	if player.Ironman && item.IronmanRestricted {
		return false
	}

	if player.ExcludedItems[item.Name] {
		return false
	}

	if player.MaxTickManipulation && item.TickManipulationRequired {
		return false
	}

	// Content-restricted items are hidden unless the requested tag matches
	if len(item.ContentTags) > 0 {
		if player.ContentTag == "" || !item.HasContentTag(player.ContentTag) {
			return false
		}
	}

	return true
}
