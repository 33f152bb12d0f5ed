package gear

import (
	"sort"

	"github.com/scapelab/gear-api/internal/entities/osrs"
)

// Score weights. Strength-style bonuses count double because they scale
// max hit; magic damage percent triples because each point is a percent
// of the whole hit. Prayer gets a small sustainability weight.
const (
	attackWeight      = 1.0
	strengthWeight    = 2.0
	magicDamageWeight = 3.0
	prayerWeight      = 0.1
)

// Score maps an item to a scalar offensive effectiveness proxy for the
// given style. Weapon attack speed is deliberately not folded in: speed
// is a property of the loadout, consumed only by the DPS calculator, so
// per-slot scores stay independently comparable and budget-additive.
func (e *gearEngine) Score(item *osrs.Item, style osrs.CombatStyle, attackType osrs.AttackType) float64 {
	if item == nil {
		return 0
	}

	b := item.Bonuses
	switch style {
	case osrs.StyleMelee:
		return float64(b.AttackBonus(attackType))*attackWeight +
			float64(b.MeleeStrength)*strengthWeight +
			float64(b.Prayer)*prayerWeight
	case osrs.StyleRanged:
		return float64(b.AttackRanged)*attackWeight +
			float64(b.RangedStrength)*strengthWeight +
			float64(b.Prayer)*prayerWeight
	case osrs.StyleMagic:
		return float64(b.AttackMagic)*attackWeight +
			float64(b.MagicDamagePercent)*magicDamageWeight +
			float64(b.Prayer)*prayerWeight
	default:
		return 0
	}
}

// DefensiveScore is the symmetric defensive ranking: the five defence
// bonuses plus the prayer weight, with no strength or damage term.
func (e *gearEngine) DefensiveScore(item *osrs.Item) float64 {
	if item == nil {
		return 0
	}
	return float64(item.Bonuses.DefenceTotal()) + float64(item.Bonuses.Prayer)*prayerWeight
}

// scoredCandidate pairs an item with its score for ranking. Ephemeral:
// produced per request, never persisted.
type scoredCandidate struct {
	item  *osrs.Item
	score float64
}

// sortCandidates orders candidates by score descending, breaking ties by
// lower price, then lower id. The ordering is total, so results are
// reproducible.
func sortCandidates(candidates []scoredCandidate) {
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.item.Price != b.item.Price {
			return a.item.Price < b.item.Price
		}
		return a.item.ID < b.item.ID
	})
}

// scoreCandidates scores and ranks a slot's eligible items for a player
func (e *gearEngine) scoreCandidates(items []*osrs.Item, player *osrs.PlayerContext) []scoredCandidate {
	candidates := make([]scoredCandidate, 0, len(items))
	for _, item := range items {
		candidates = append(candidates, scoredCandidate{
			item:  item,
			score: e.Score(item, player.Style, player.AttackType),
		})
	}
	sortCandidates(candidates)
	return candidates
}
