package osrs

import (
	"math"
	"regexp"
	"strings"
)

// Skills lists the skill rows in hiscore order, Overall first.
var Skills = []string{
	"Overall", "Attack", "Defence", "Strength", "Hitpoints", "Ranged",
	"Prayer", "Magic", "Cooking", "Woodcutting", "Fletching", "Fishing",
	"Firemaking", "Crafting", "Smithing", "Mining", "Herblore", "Agility",
	"Thieving", "Slayer", "Farming", "Runecraft", "Hunter", "Construction",
	"Sailing",
}

var skillAliases = map[string]string{
	"total":  "overall",
	"wc":     "woodcutting",
	"rc":     "runecraft",
	"hp":     "hitpoints",
	"con":    "construction",
	"fm":     "firemaking",
	"herb":   "herblore",
	"agil":   "agility",
	"thiev":  "thieving",
	"slay":   "slayer",
	"farm":   "farming",
	"hunt":   "hunter",
	"str":    "strength",
	"att":    "attack",
	"def":    "defence",
	"pray":   "prayer",
	"mage":   "magic",
	"range":  "ranged",
	"cook":   "cooking",
	"fish":   "fishing",
	"fletch": "fletching",
	"smith":  "smithing",
	"mine":   "mining",
	"craft":  "crafting",
}

// FindSkill resolves a skill name or common alias to its display name.
func FindSkill(name string) (string, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return "", false
	}
	if alias, ok := skillAliases[n]; ok {
		n = alias
	}
	for _, s := range Skills {
		if strings.ToLower(s) == n {
			return s, true
		}
	}
	return "", false
}

// SkillKey is the key a skill is stored under in PlayerStats.
func SkillKey(displayName string) string {
	return camelKey(displayName)
}

const maxLevel = 120

var xpTable = buildXPTable()

func buildXPTable() []int64 {
	table := make([]int64, maxLevel+1)
	var points float64
	for level := 1; level < maxLevel; level++ {
		points += math.Floor(float64(level) + 300*math.Pow(2, float64(level)/7))
		table[level+1] = int64(math.Floor(points / 4))
	}
	return table
}

// XPForLevel returns the total experience needed to reach level.
func XPForLevel(level int) int64 {
	if level < 1 {
		return 0
	}
	if level > maxLevel {
		level = maxLevel
	}
	return xpTable[level]
}

// XPToNextLevel returns the experience left until the next level.
// Levels cap at 99, or at 120 once a skill is already 99 (virtual levels).
func XPToNextLevel(level int, xp int64) int64 {
	if level < 1 {
		return 0
	}
	limit := 99
	if level >= 99 {
		limit = maxLevel
	}
	if level >= limit {
		return 0
	}
	if xp < 0 {
		xp = 0
	}
	return max(0, xpTable[level+1]-xp)
}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)

// ValidUsername reports whether name could be an OSRS display name:
// 1 to 12 letters, digits, spaces, underscores or hyphens.
func ValidUsername(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len(trimmed) > 12 {
		return false
	}
	return usernamePattern.MatchString(trimmed)
}
