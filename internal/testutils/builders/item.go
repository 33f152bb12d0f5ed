// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/scapelab/gear-api/internal/entities/osrs"
)

// ItemBuilder provides a fluent interface for building test Item instances
type ItemBuilder struct {
	item osrs.Item
}

// NewItemBuilder creates a new builder with minimal defaults
func NewItemBuilder(id int64, name string, slot osrs.Slot) *ItemBuilder {
	return &ItemBuilder{
		item: osrs.Item{
			ID:        id,
			Name:      name,
			Slot:      slot,
			Tradeable: true,
		},
	}
}

// WithPrice sets the GP price
func (b *ItemBuilder) WithPrice(price int) *ItemBuilder {
	b.item.Price = price
	return b
}

// WithTwoHanded marks the item as two-handed
func (b *ItemBuilder) WithTwoHanded() *ItemBuilder {
	b.item.TwoHanded = true
	return b
}

// WithAttackSpeed sets the weapon attack speed in ticks
func (b *ItemBuilder) WithAttackSpeed(ticks int) *ItemBuilder {
	b.item.AttackSpeedTicks = ticks
	return b
}

// WithBonuses sets the full combat bonus line
func (b *ItemBuilder) WithBonuses(bonuses osrs.CombatBonuses) *ItemBuilder {
	b.item.Bonuses = bonuses
	return b
}

// WithMeleeBonuses sets a melee stat line in one call
func (b *ItemBuilder) WithMeleeBonuses(stab, slash, crush, strength int) *ItemBuilder {
	b.item.Bonuses.AttackStab = stab
	b.item.Bonuses.AttackSlash = slash
	b.item.Bonuses.AttackCrush = crush
	b.item.Bonuses.MeleeStrength = strength
	return b
}

// WithRangedBonuses sets a ranged stat line in one call
func (b *ItemBuilder) WithRangedBonuses(attack, strength int) *ItemBuilder {
	b.item.Bonuses.AttackRanged = attack
	b.item.Bonuses.RangedStrength = strength
	return b
}

// WithMagicBonuses sets a magic stat line in one call
func (b *ItemBuilder) WithMagicBonuses(attack, damagePercent int) *ItemBuilder {
	b.item.Bonuses.AttackMagic = attack
	b.item.Bonuses.MagicDamagePercent = damagePercent
	return b
}

// WithPrayer sets the prayer bonus
func (b *ItemBuilder) WithPrayer(prayer int) *ItemBuilder {
	b.item.Bonuses.Prayer = prayer
	return b
}

// WithLevelRequirement adds a skill level requirement
func (b *ItemBuilder) WithLevelRequirement(skill osrs.Skill, level int) *ItemBuilder {
	if b.item.Requirements.Levels == nil {
		b.item.Requirements.Levels = make(map[osrs.Skill]int)
	}
	b.item.Requirements.Levels[skill] = level
	return b
}

// WithQuestRequirement sets the quest requirement
func (b *ItemBuilder) WithQuestRequirement(quest string) *ItemBuilder {
	b.item.Requirements.Quest = quest
	return b
}

// WithAchievementRequirement sets the achievement requirement
func (b *ItemBuilder) WithAchievementRequirement(achievement string) *ItemBuilder {
	b.item.Requirements.Achievement = achievement
	return b
}

// WithContentTags restricts the item to the named content
func (b *ItemBuilder) WithContentTags(tags ...string) *ItemBuilder {
	b.item.ContentTags = tags
	return b
}

// WithTickManipulation marks the item as requiring tick manipulation
func (b *ItemBuilder) WithTickManipulation() *ItemBuilder {
	b.item.TickManipulationRequired = true
	return b
}

// WithIronmanRestricted marks the item as blocked for ironman accounts
func (b *ItemBuilder) WithIronmanRestricted() *ItemBuilder {
	b.item.IronmanRestricted = true
	return b
}

// WithUntradeable marks the item as untradeable
func (b *ItemBuilder) WithUntradeable() *ItemBuilder {
	b.item.Tradeable = false
	return b
}

// Build returns the constructed item
func (b *ItemBuilder) Build() osrs.Item {
	return b.item
}
