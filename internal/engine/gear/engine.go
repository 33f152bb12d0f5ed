// Package gear implements the optimization engine over catalogue snapshots
package gear

import (
	"github.com/scapelab/gear-api/internal/engine"
	"github.com/scapelab/gear-api/internal/entities/osrs"
	"github.com/scapelab/gear-api/internal/errors"
)

type gearEngine struct{}

// New creates the gear engine. The engine is stateless; one instance can
// serve any number of concurrent requests.
func New() engine.Engine {
	return &gearEngine{}
}

// validateStyle reports an invalid combat style before any computation
func validateStyle(style osrs.CombatStyle) error {
	switch style {
	case osrs.StyleMelee, osrs.StyleRanged, osrs.StyleMagic:
		return nil
	}
	return errors.InvalidArgumentf("unsupported combat style: %q", style).
		WithMeta("reason", "invalid_style")
}

// validateAttackType reports an invalid melee attack type. Non-melee
// styles ignore the attack type entirely.
func validateAttackType(style osrs.CombatStyle, attackType osrs.AttackType) error {
	if style != osrs.StyleMelee {
		return nil
	}
	switch attackType {
	case osrs.AttackStab, osrs.AttackSlash, osrs.AttackCrush:
		return nil
	}
	return errors.InvalidArgumentf("unsupported melee attack type: %q", attackType).
		WithMeta("reason", "invalid_attack_type")
}

// validatePlayer checks the request-scoped context: style, attack type,
// budget range and excluded slot names.
func validatePlayer(player *osrs.PlayerContext) error {
	if player == nil {
		return errors.InvalidArgument("player context is required")
	}
	if err := validateStyle(player.Style); err != nil {
		return err
	}
	if err := validateAttackType(player.Style, player.AttackType); err != nil {
		return err
	}
	if player.Budget < 0 {
		return errors.OutOfRangef("budget must not be negative, got %d", player.Budget).
			WithMeta("reason", "budget_out_of_range")
	}
	for slot := range player.ExcludedSlots {
		if !osrs.IsValidSlot(slot) {
			return errors.InvalidArgumentf("unknown slot in exclusions: %q", slot).
				WithMeta("reason", "invalid_slot")
		}
	}
	return nil
}
