package osrs

import (
	"encoding/json"
)

// Slot is one of the 11 equipment positions an item can occupy
type Slot string

// Equipment slots
const (
	SlotHead   Slot = "head"
	SlotCape   Slot = "cape"
	SlotNeck   Slot = "neck"
	SlotAmmo   Slot = "ammo"
	SlotWeapon Slot = "weapon"
	SlotBody   Slot = "body"
	SlotShield Slot = "shield"
	SlotLegs   Slot = "legs"
	SlotHands  Slot = "hands"
	SlotFeet   Slot = "feet"
	SlotRing   Slot = "ring"
)

// CanonicalSlots is the fixed order slots are processed in. The solver
// depends on this ordering being stable.
var CanonicalSlots = []Slot{
	SlotHead, SlotCape, SlotNeck, SlotAmmo, SlotWeapon,
	SlotBody, SlotShield, SlotLegs, SlotHands, SlotFeet, SlotRing,
}

// IsValidSlot reports whether the name is one of the 11 canonical slots
func IsValidSlot(s Slot) bool {
	for _, slot := range CanonicalSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// SlotValue is the tagged per-slot value of a loadout: either empty or
// occupied by exactly one item. An explicit tag instead of a sentinel id
// keeps the two-handed/shield invariant checkable.
type SlotValue struct {
	Filled bool  `json:"filled"`
	ItemID int64 `json:"item_id,omitempty"`
}

// EmptySlot returns the unoccupied slot value
func EmptySlot() SlotValue {
	return SlotValue{}
}

// Occupied returns a slot value holding the given item
func Occupied(itemID int64) SlotValue {
	return SlotValue{Filled: true, ItemID: itemID}
}

// Loadout maps every canonical slot to its value. All 11 slots are always
// present, including explicit empty markers, so a serialized loadout
// round-trips without losing unfilled slots.
type Loadout struct {
	slots map[Slot]SlotValue
}

// NewLoadout creates an all-empty loadout
func NewLoadout() *Loadout {
	slots := make(map[Slot]SlotValue, len(CanonicalSlots))
	for _, s := range CanonicalSlots {
		slots[s] = EmptySlot()
	}
	return &Loadout{slots: slots}
}

// Get returns the value of a slot. Unknown slots read as empty.
func (l *Loadout) Get(slot Slot) SlotValue {
	return l.slots[slot]
}

// Set assigns a slot value. Setting a two-handed weapon is the caller's
// concern; use Equip for the coupled weapon/shield rule.
func (l *Loadout) Set(slot Slot, value SlotValue) {
	l.slots[slot] = value
}

// Clear empties a slot
func (l *Loadout) Clear(slot Slot) {
	l.slots[slot] = EmptySlot()
}

// Equip places an item into its slot. A two-handed weapon also clears
// the shield slot, keeping the occupancy invariant.
func (l *Loadout) Equip(item *Item) {
	l.slots[item.Slot] = Occupied(item.ID)
	if item.Slot == SlotWeapon && item.TwoHanded {
		l.slots[SlotShield] = EmptySlot()
	}
}

// FilledSlots returns the slots holding an item, in canonical order
func (l *Loadout) FilledSlots() []Slot {
	var filled []Slot
	for _, s := range CanonicalSlots {
		if l.slots[s].Filled {
			filled = append(filled, s)
		}
	}
	return filled
}

// ItemIDs returns the equipped item ids, in canonical slot order
func (l *Loadout) ItemIDs() []int64 {
	var ids []int64
	for _, s := range CanonicalSlots {
		if v := l.slots[s]; v.Filled {
			ids = append(ids, v.ItemID)
		}
	}
	return ids
}

// MarshalJSON serializes all 11 slots with explicit empty markers
func (l *Loadout) MarshalJSON() ([]byte, error) {
	out := make(map[Slot]SlotValue, len(CanonicalSlots))
	for _, s := range CanonicalSlots {
		out[s] = l.slots[s]
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores the slot mapping, defaulting missing slots to empty
func (l *Loadout) UnmarshalJSON(data []byte) error {
	var raw map[Slot]SlotValue
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	l.slots = make(map[Slot]SlotValue, len(CanonicalSlots))
	for _, s := range CanonicalSlots {
		l.slots[s] = raw[s]
	}
	return nil
}
