package osrs

// Stats holds a player's combat skill levels. Unset levels are treated
// as level 1 by Level.
type Stats struct {
	Attack   int `json:"attack"`
	Strength int `json:"strength"`
	Defence  int `json:"defence"`
	Ranged   int `json:"ranged"`
	Magic    int `json:"magic"`
	Prayer   int `json:"prayer"`
}

// Level returns the level for a skill, defaulting to 1 when unset
func (s Stats) Level(skill Skill) int {
	var level int
	switch skill {
	case SkillAttack:
		level = s.Attack
	case SkillStrength:
		level = s.Strength
	case SkillDefence:
		level = s.Defence
	case SkillRanged:
		level = s.Ranged
	case SkillMagic:
		level = s.Magic
	case SkillPrayer:
		level = s.Prayer
	}
	if level < 1 {
		return 1
	}
	return level
}

// PlayerContext is the request-scoped input for a gear computation. It is
// never persisted; callers build one per request and discard it.
type PlayerContext struct {
	Stats                 Stats           `json:"stats"`
	QuestsCompleted       map[string]bool `json:"quests_completed,omitempty"`
	AchievementsCompleted map[string]bool `json:"achievements_completed,omitempty"`
	Ironman               bool            `json:"ironman,omitempty"`

	Style      CombatStyle `json:"style"`
	AttackType AttackType  `json:"attack_type,omitempty"`

	// Budget in GP. Must be non-negative.
	Budget int `json:"budget"`

	ExcludedSlots map[Slot]bool   `json:"excluded_slots,omitempty"`
	ExcludedItems map[string]bool `json:"excluded_items,omitempty"`

	// ContentTag, when set, admits content-restricted items carrying the
	// tag. Restricted items without the tag stay hidden.
	ContentTag string `json:"content_tag,omitempty"`

	// MaxTickManipulation excludes items that require tick manipulation
	MaxTickManipulation bool `json:"max_tick_manipulation,omitempty"`
}

// HasQuest reports whether the player completed the named quest
func (c *PlayerContext) HasQuest(quest string) bool {
	return c.QuestsCompleted[quest]
}

// HasAchievement reports whether the player completed the named achievement
func (c *PlayerContext) HasAchievement(achievement string) bool {
	return c.AchievementsCompleted[achievement]
}
