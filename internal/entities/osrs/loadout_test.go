package osrs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scapelab/gear-api/internal/entities/osrs"
)

func TestNewLoadoutAllSlotsEmpty(t *testing.T) {
	loadout := osrs.NewLoadout()

	for _, slot := range osrs.CanonicalSlots {
		assert.False(t, loadout.Get(slot).Filled, "slot %s should start empty", slot)
	}
	assert.Empty(t, loadout.FilledSlots())
	assert.Empty(t, loadout.ItemIDs())
}

func TestEquipTwoHandedClearsShield(t *testing.T) {
	loadout := osrs.NewLoadout()
	loadout.Set(osrs.SlotShield, osrs.Occupied(1187))

	godsword := &osrs.Item{ID: 11802, Name: "Armadyl godsword", Slot: osrs.SlotWeapon, TwoHanded: true}
	loadout.Equip(godsword)

	assert.Equal(t, osrs.Occupied(11802), loadout.Get(osrs.SlotWeapon))
	assert.False(t, loadout.Get(osrs.SlotShield).Filled)
}

func TestEquipOneHandedKeepsShield(t *testing.T) {
	loadout := osrs.NewLoadout()
	loadout.Set(osrs.SlotShield, osrs.Occupied(1187))

	scimitar := &osrs.Item{ID: 4587, Name: "Dragon scimitar", Slot: osrs.SlotWeapon}
	loadout.Equip(scimitar)

	assert.True(t, loadout.Get(osrs.SlotShield).Filled)
	assert.True(t, loadout.Get(osrs.SlotWeapon).Filled)
}

func TestLoadoutJSONRoundTrip(t *testing.T) {
	loadout := osrs.NewLoadout()
	loadout.Set(osrs.SlotWeapon, osrs.Occupied(4151))
	loadout.Set(osrs.SlotHead, osrs.Occupied(10828))

	data, err := json.Marshal(loadout)
	require.NoError(t, err)

	// Every canonical slot must be present with an explicit marker,
	// not dropped for being empty.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, len(osrs.CanonicalSlots))

	var restored osrs.Loadout
	require.NoError(t, json.Unmarshal(data, &restored))

	for _, slot := range osrs.CanonicalSlots {
		assert.Equal(t, loadout.Get(slot), restored.Get(slot), "slot %s", slot)
	}
}

func TestStatsLevelDefaultsToOne(t *testing.T) {
	var stats osrs.Stats
	for _, skill := range osrs.CombatSkills {
		assert.Equal(t, 1, stats.Level(skill))
	}

	stats.Magic = 94
	assert.Equal(t, 94, stats.Level(osrs.SkillMagic))
}

func TestStanceBonus(t *testing.T) {
	assert.Equal(t, 3, osrs.StanceAggressive.Bonus())
	assert.Equal(t, 1, osrs.StanceControlled.Bonus())
	assert.Equal(t, 0, osrs.StanceAccurate.Bonus())
	assert.Equal(t, 0, osrs.StanceNone.Bonus())
}
