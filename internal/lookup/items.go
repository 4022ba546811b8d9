// Package lookup holds the name-matching rules used to resolve free-text
// queries against item mappings and bundled quest files.
package lookup

import (
	"sort"
	"strings"

	"github.com/bobbot/osrs-api/internal/models"
)

// DefaultSearchLimit is used when a search limit is missing or invalid.
const DefaultSearchLimit = 10

var itemAliases = map[string]string{
	"tbow":     "twisted bow",
	"shadow":   "tumeken's shadow (uncharged)",
	"scythe":   "scythe of vitur (uncharged)",
	"fang":     "osmumten's fang",
	"bcp":      "bandos chestplate",
	"tassets":  "bandos tassets",
	"dfs":      "dragonfire shield",
	"zcb":      "zaryte crossbow",
	"bp":       "toxic blowpipe (empty)",
	"blowpipe": "toxic blowpipe (empty)",
	"ags":      "armadyl godsword",
	"sgs":      "saradomin godsword",
	"bgs":      "bandos godsword",
	"zgs":      "zamorak godsword",
	"dwh":      "dragon warhammer",
	"claws":    "dragon claws",
	"bond":     "old school bond",
}

// ResolveAlias expands community shorthand such as "tbow". Unknown queries
// are returned unchanged.
func ResolveAlias(query string) string {
	if full, ok := itemAliases[strings.ToLower(strings.TrimSpace(query))]; ok {
		return full
	}
	return query
}

// FindItem returns the first case-insensitive exact name match, or failing
// that the first case-insensitive prefix match, in mapping order.
func FindItem(mapping []models.ItemMapping, query string) (models.ItemMapping, bool) {
	q := strings.ToLower(query)

	for _, item := range mapping {
		if strings.ToLower(item.Name) == q {
			return item, true
		}
	}
	for _, item := range mapping {
		if strings.HasPrefix(strings.ToLower(item.Name), q) {
			return item, true
		}
	}
	return models.ItemMapping{}, false
}

// SearchItems filters mapping by case-insensitive substring, orders the hits
// by name length (ties keep mapping order) and keeps at most limit of them.
func SearchItems(mapping []models.ItemMapping, query string, limit int) []models.ItemMapping {
	if limit < 1 {
		limit = DefaultSearchLimit
	}
	q := strings.ToLower(query)

	results := []models.ItemMapping{}
	for _, item := range mapping {
		if strings.Contains(strings.ToLower(item.Name), q) {
			results = append(results, item)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return len(results[i].Name) < len(results[j].Name)
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
