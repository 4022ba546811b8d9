package models

// WikiFallbackDifficulty marks a quest synthesised from a wiki page
// rather than read from the bundled dataset.
const WikiFallbackDifficulty = "Unknown (Wiki Fallback)"

// Quest represents a quest record
type Quest struct {
	Name         string            `json:"name"`
	URL          string            `json:"url,omitempty"`
	Description  string            `json:"description"`
	Difficulty   string            `json:"difficulty"`
	Length       string            `json:"length"`
	QuestPoints  int               `json:"questPoints"`
	Requirements QuestRequirements `json:"requirements"`
	Rewards      QuestRewards      `json:"rewards"`
}

// QuestRequirements lists what a player needs before starting a quest
type QuestRequirements struct {
	Skills []SkillRequirement `json:"skills"`
	Quests []string           `json:"quests"`
}

// SkillRequirement is a minimum level in one skill
type SkillRequirement struct {
	Skill     string `json:"skill"`
	Level     int    `json:"level"`
	Boostable bool   `json:"boostable"`
}

// QuestRewards lists what completing a quest grants
type QuestRewards struct {
	Experience []ExperienceReward `json:"experience"`
	Items      []string           `json:"items"`
	Unlocks    []string           `json:"unlocks"`
}

// ExperienceReward is a fixed amount of xp in one skill
type ExperienceReward struct {
	Skill  string `json:"skill"`
	Amount int    `json:"amount"`
}

// QuestRecord is a bundled quest together with the file it was loaded from
type QuestRecord struct {
	Filename string
	Quest    Quest
}

// Normalize fills nil slices so they encode as [] instead of null.
func (q *Quest) Normalize() {
	if q.Requirements.Skills == nil {
		q.Requirements.Skills = []SkillRequirement{}
	}
	if q.Requirements.Quests == nil {
		q.Requirements.Quests = []string{}
	}
	if q.Rewards.Experience == nil {
		q.Rewards.Experience = []ExperienceReward{}
	}
	if q.Rewards.Items == nil {
		q.Rewards.Items = []string{}
	}
	if q.Rewards.Unlocks == nil {
		q.Rewards.Unlocks = []string{}
	}
}
