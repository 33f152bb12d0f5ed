package catalogue_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scapelab/gear-api/internal/catalogue"
	"github.com/scapelab/gear-api/internal/entities/osrs"
)

func TestSnapshotIndexes(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	items := []osrs.Item{
		{ID: 4151, Name: "Abyssal whip", Slot: osrs.SlotWeapon, Price: 1_500_000},
		{ID: 11802, Name: "Armadyl godsword", Slot: osrs.SlotWeapon, TwoHanded: true, Price: 12_000_000},
		{ID: 10828, Name: "Helm of neitiznot", Slot: osrs.SlotHead, Price: 45_000},
	}

	snap := catalogue.New("snap_1", now, items)

	assert.Equal(t, "snap_1", snap.Version())
	assert.Equal(t, now, snap.CreatedAt())
	assert.Equal(t, 3, snap.Len())

	whip := snap.ByID(4151)
	require.NotNil(t, whip)
	assert.Equal(t, "Abyssal whip", whip.Name)

	assert.Nil(t, snap.ByID(99999))

	weapons := snap.BySlot(osrs.SlotWeapon)
	assert.Len(t, weapons, 2)
	assert.Empty(t, snap.BySlot(osrs.SlotRing))
}

func TestSnapshotCopiesInput(t *testing.T) {
	items := []osrs.Item{{ID: 1, Name: "Bronze dagger", Slot: osrs.SlotWeapon}}
	snap := catalogue.New("snap_2", time.Now(), items)

	items[0].Name = "mutated"

	assert.Equal(t, "Bronze dagger", snap.ByID(1).Name)
}
