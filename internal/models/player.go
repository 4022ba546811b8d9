package models

// PlayerStats is a player's hiscore entry
type PlayerStats struct {
	Name string     `json:"name"`
	Mode string     `json:"mode"`
	Main HiscoreSet `json:"main"`
}

// HiscoreSet groups skills and activities, keyed by camel-case name
type HiscoreSet struct {
	Skills     map[string]SkillEntry    `json:"skills"`
	Activities map[string]ActivityEntry `json:"activities"`
}

// SkillEntry is one skill row. Unranked rows carry -1 for rank, level and xp.
type SkillEntry struct {
	Rank  int   `json:"rank"`
	Level int   `json:"level"`
	XP    int64 `json:"xp"`
}

// ActivityEntry is one minigame, clue or boss row
type ActivityEntry struct {
	Rank  int `json:"rank"`
	Score int `json:"score"`
}
