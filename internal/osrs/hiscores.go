package osrs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/bobbot/osrs-api/internal/models"
)

type hiscoreResponse struct {
	Skills []struct {
		Name  string `json:"name"`
		Rank  int    `json:"rank"`
		Level int    `json:"level"`
		XP    int64  `json:"xp"`
	} `json:"skills"`
	Activities []struct {
		Name  string `json:"name"`
		Rank  int    `json:"rank"`
		Score int    `json:"score"`
	} `json:"activities"`
}

// Stats fetches a player's main-mode hiscores.
// Returns ErrPlayerNotFound when the hiscores answer 404.
func (c *Client) Stats(ctx context.Context, username string) (*models.PlayerStats, error) {
	endpoint := c.hiscoresURL + "/index_lite.json?player=" + url.QueryEscape(username)

	body, err := c.get(ctx, upstreamHiscores, endpoint)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, err)
		}
		return nil, err
	}

	var raw hiscoreResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("hiscores: failed to decode response: %w", err)
	}

	stats := &models.PlayerStats{
		Name: username,
		Mode: "main",
		Main: models.HiscoreSet{
			Skills:     make(map[string]models.SkillEntry, len(raw.Skills)),
			Activities: make(map[string]models.ActivityEntry, len(raw.Activities)),
		},
	}
	for _, s := range raw.Skills {
		stats.Main.Skills[camelKey(s.Name)] = models.SkillEntry{Rank: s.Rank, Level: s.Level, XP: s.XP}
	}
	for _, a := range raw.Activities {
		stats.Main.Activities[camelKey(a.Name)] = models.ActivityEntry{Rank: a.Rank, Score: a.Score}
	}
	return stats, nil
}

// camelKey turns a hiscore row name such as "Clue Scrolls (all)" into "clueScrollsAll".
func camelKey(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	for i, w := range words {
		runes := []rune(w)
		if i == 0 {
			runes[0] = unicode.ToLower(runes[0])
		} else {
			runes[0] = unicode.ToUpper(runes[0])
		}
		b.WriteString(string(runes))
	}
	return b.String()
}
