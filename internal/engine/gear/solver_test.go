package gear_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/scapelab/gear-api/internal/catalogue"
	"github.com/scapelab/gear-api/internal/engine"
	"github.com/scapelab/gear-api/internal/engine/gear"
	"github.com/scapelab/gear-api/internal/entities/osrs"
	"github.com/scapelab/gear-api/internal/errors"
	"github.com/scapelab/gear-api/internal/testutils/builders"
)

type SolverTestSuite struct {
	suite.Suite
	engine engine.Engine
	ctx    context.Context
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverTestSuite))
}

func (s *SolverTestSuite) SetupTest() {
	s.engine = gear.New()
	s.ctx = context.Background()
}

func maxedPlayer() *osrs.PlayerContext {
	return &osrs.PlayerContext{
		Stats:      osrs.Stats{Attack: 99, Strength: 99, Defence: 99, Ranged: 99, Magic: 99, Prayer: 99},
		Style:      osrs.StyleMelee,
		AttackType: osrs.AttackSlash,
	}
}

func (s *SolverTestSuite) TestSingleWeaponScenario() {
	// Catalogue with one melee weapon and nothing else eligible
	snap := catalogue.New("test", time.Now(), []osrs.Item{
		builders.NewItemBuilder(1, "Blade of saeldor", osrs.SlotWeapon).
			WithPrice(1_000_000).
			WithMeleeBonuses(0, 80, 0, 82).
			WithAttackSpeed(4).
			Build(),
	})

	player := maxedPlayer()
	player.Budget = 2_000_000

	out, err := s.engine.BestLoadout(s.ctx, &engine.BestLoadoutInput{Snapshot: snap, Player: player})
	s.Require().NoError(err)

	s.Equal(osrs.Occupied(1), out.Loadout.Get(osrs.SlotWeapon))
	s.Equal(1_000_000, out.TotalCost)
	s.InDelta(80+82*2.0, out.TotalScore, 1e-9)

	for _, slot := range osrs.CanonicalSlots {
		if slot == osrs.SlotWeapon {
			continue
		}
		s.False(out.Loadout.Get(slot).Filled, "slot %s should be empty", slot)
	}
}

func (s *SolverTestSuite) TestZeroBudget() {
	snap := catalogue.New("test", time.Now(), []osrs.Item{
		builders.NewItemBuilder(1, "Bronze scimitar", osrs.SlotWeapon).WithPrice(50).WithMeleeBonuses(1, 7, 0, 6).Build(),
	})

	player := maxedPlayer()
	player.Budget = 0

	out, err := s.engine.BestLoadout(s.ctx, &engine.BestLoadoutInput{Snapshot: snap, Player: player})
	s.Require().NoError(err)

	s.Empty(out.Loadout.FilledSlots())
	s.Zero(out.TotalCost)
	s.Zero(out.TotalScore)
}

func (s *SolverTestSuite) TestTotalCostNeverExceedsBudget() {
	snap := catalogue.New("test", time.Now(), []osrs.Item{
		builders.NewItemBuilder(1, "Abyssal whip", osrs.SlotWeapon).WithPrice(1_500_000).WithMeleeBonuses(0, 82, 0, 82).Build(),
		builders.NewItemBuilder(2, "Dragon scimitar", osrs.SlotWeapon).WithPrice(60_000).WithMeleeBonuses(8, 67, -2, 66).Build(),
		builders.NewItemBuilder(3, "Helm of neitiznot", osrs.SlotHead).WithPrice(45_000).WithMeleeBonuses(0, 0, 0, 3).Build(),
		builders.NewItemBuilder(4, "Amulet of torture", osrs.SlotNeck).WithPrice(12_000_000).WithMeleeBonuses(15, 15, 15, 10).Build(),
	})

	for _, budget := range []int{0, 45_000, 100_000, 1_600_000, 50_000_000} {
		player := maxedPlayer()
		player.Budget = budget

		out, err := s.engine.BestLoadout(s.ctx, &engine.BestLoadoutInput{Snapshot: snap, Player: player})
		s.Require().NoError(err)
		s.LessOrEqual(out.TotalCost, budget, "budget %d", budget)
	}
}

func (s *SolverTestSuite) TestTwoHandedWeaponLeavesShieldEmpty() {
	snap := catalogue.New("test", time.Now(), []osrs.Item{
		builders.NewItemBuilder(1, "Armadyl godsword", osrs.SlotWeapon).
			WithPrice(12_000_000).
			WithTwoHanded().
			WithMeleeBonuses(0, 132, 80, 132).
			Build(),
		builders.NewItemBuilder(2, "Dragon defender", osrs.SlotShield).
			WithPrice(0).
			WithMeleeBonuses(25, 24, 23, 6).
			Build(),
	})

	player := maxedPlayer()
	player.Budget = 50_000_000

	out, err := s.engine.BestLoadout(s.ctx, &engine.BestLoadoutInput{Snapshot: snap, Player: player})
	s.Require().NoError(err)

	weapon := out.Loadout.Get(osrs.SlotWeapon)
	s.Require().True(weapon.Filled)
	s.Equal(int64(1), weapon.ItemID)

	// The invariant: a two-handed weapon structurally empties the shield
	// slot even though the defender is free.
	s.False(out.Loadout.Get(osrs.SlotShield).Filled)
	s.Equal(12_000_000, out.TotalCost)
}

func (s *SolverTestSuite) TestOneHandedWeaponKeepsShield() {
	snap := catalogue.New("test", time.Now(), []osrs.Item{
		builders.NewItemBuilder(1, "Abyssal whip", osrs.SlotWeapon).WithPrice(1_500_000).WithMeleeBonuses(0, 82, 0, 82).Build(),
		builders.NewItemBuilder(2, "Dragon defender", osrs.SlotShield).WithPrice(0).WithMeleeBonuses(25, 24, 23, 6).Build(),
	})

	player := maxedPlayer()
	player.Budget = 2_000_000

	out, err := s.engine.BestLoadout(s.ctx, &engine.BestLoadoutInput{Snapshot: snap, Player: player})
	s.Require().NoError(err)

	s.True(out.Loadout.Get(osrs.SlotWeapon).Filled)
	s.True(out.Loadout.Get(osrs.SlotShield).Filled)
}

func (s *SolverTestSuite) TestExcludedSlotsStayEmpty() {
	snap := catalogue.New("test", time.Now(), []osrs.Item{
		builders.NewItemBuilder(1, "Abyssal whip", osrs.SlotWeapon).WithPrice(1_500_000).WithMeleeBonuses(0, 82, 0, 82).Build(),
		builders.NewItemBuilder(2, "Helm of neitiznot", osrs.SlotHead).WithPrice(45_000).WithMeleeBonuses(0, 0, 0, 3).Build(),
	})

	player := maxedPlayer()
	player.Budget = 10_000_000
	player.ExcludedSlots = map[osrs.Slot]bool{osrs.SlotHead: true}

	out, err := s.engine.BestLoadout(s.ctx, &engine.BestLoadoutInput{Snapshot: snap, Player: player})
	s.Require().NoError(err)

	s.False(out.Loadout.Get(osrs.SlotHead).Filled)
	s.Equal(1_500_000, out.TotalCost)
}

func (s *SolverTestSuite) TestSkipsUnaffordableForCheaperCandidate() {
	snap := catalogue.New("test", time.Now(), []osrs.Item{
		builders.NewItemBuilder(1, "Abyssal whip", osrs.SlotWeapon).WithPrice(1_500_000).WithMeleeBonuses(0, 82, 0, 82).Build(),
		builders.NewItemBuilder(2, "Dragon scimitar", osrs.SlotWeapon).WithPrice(60_000).WithMeleeBonuses(8, 67, -2, 66).Build(),
	})

	player := maxedPlayer()
	player.Budget = 100_000

	out, err := s.engine.BestLoadout(s.ctx, &engine.BestLoadoutInput{Snapshot: snap, Player: player})
	s.Require().NoError(err)

	weapon := out.Loadout.Get(osrs.SlotWeapon)
	s.Require().True(weapon.Filled)
	s.Equal(int64(2), weapon.ItemID)
	s.Equal(60_000, out.TotalCost)
}

func (s *SolverTestSuite) TestTieBreakPrefersCheaperThenLowerID() {
	// Identical stat lines, different prices
	snap := catalogue.New("test", time.Now(), []osrs.Item{
		builders.NewItemBuilder(10, "Rune scimitar (guthix)", osrs.SlotWeapon).WithPrice(40_000).WithMeleeBonuses(7, 45, -2, 44).Build(),
		builders.NewItemBuilder(9, "Rune scimitar", osrs.SlotWeapon).WithPrice(15_000).WithMeleeBonuses(7, 45, -2, 44).Build(),
		builders.NewItemBuilder(8, "Rune scimitar (zamorak)", osrs.SlotWeapon).WithPrice(15_000).WithMeleeBonuses(7, 45, -2, 44).Build(),
	})

	player := maxedPlayer()
	player.Budget = 100_000

	out, err := s.engine.BestLoadout(s.ctx, &engine.BestLoadoutInput{Snapshot: snap, Player: player})
	s.Require().NoError(err)

	// Same score: lower price wins, then lower id
	s.Equal(int64(8), out.Loadout.Get(osrs.SlotWeapon).ItemID)
}

func (s *SolverTestSuite) TestNegativeBudget() {
	snap := catalogue.New("test", time.Now(), nil)

	player := maxedPlayer()
	player.Budget = -1

	_, err := s.engine.BestLoadout(s.ctx, &engine.BestLoadoutInput{Snapshot: snap, Player: player})
	s.Require().Error(err)
	s.True(errors.IsOutOfRange(err))
}

func (s *SolverTestSuite) TestInvalidStyle() {
	snap := catalogue.New("test", time.Now(), nil)

	player := maxedPlayer()
	player.Style = osrs.CombatStyle("necromancy")

	_, err := s.engine.BestLoadout(s.ctx, &engine.BestLoadoutInput{Snapshot: snap, Player: player})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SolverTestSuite) TestInvalidExcludedSlot() {
	snap := catalogue.New("test", time.Now(), nil)

	player := maxedPlayer()
	player.ExcludedSlots = map[osrs.Slot]bool{osrs.Slot("tail"): true}

	_, err := s.engine.BestLoadout(s.ctx, &engine.BestLoadoutInput{Snapshot: snap, Player: player})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
