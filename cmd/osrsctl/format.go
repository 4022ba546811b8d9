package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bobbot/osrs-api/internal/models"
	"github.com/bobbot/osrs-api/internal/osrs"
	"github.com/dustin/go-humanize"
)

func formatStats(w io.Writer, stats *models.PlayerStats) {
	fmt.Fprintf(w, "%s\n", stats.Name)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, skill := range osrs.Skills {
		entry, ok := stats.Main.Skills[osrs.SkillKey(skill)]
		if !ok {
			continue
		}
		level := "unranked"
		if entry.Level >= 1 {
			level = fmt.Sprintf("Level %d", entry.Level)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s XP\n", skill, level, humanize.Comma(entry.XP))
	}
	tw.Flush()
}

func formatSkill(w io.Writer, stats *models.PlayerStats, skill string) error {
	entry, ok := stats.Main.Skills[osrs.SkillKey(skill)]
	if !ok || entry.Level < 1 {
		return fmt.Errorf("%s has no %s ranking", stats.Name, skill)
	}

	fmt.Fprintf(w, "%s: %s\n", stats.Name, skill)
	fmt.Fprintf(w, "Level:      %d\n", entry.Level)
	fmt.Fprintf(w, "Experience: %s XP\n", humanize.Comma(entry.XP))
	if skill != "Overall" {
		if next := osrs.XPToNextLevel(entry.Level, entry.XP); next > 0 {
			fmt.Fprintf(w, "Next level: %s XP\n", humanize.Comma(next))
		}
	}
	return nil
}

func formatPrice(w io.Writer, quote *models.PriceQuote) {
	fmt.Fprintf(w, "%s (id %d)\n", quote.Name, quote.ID)
	if quote.Prices == nil {
		fmt.Fprintln(w, "No recent trades")
		return
	}
	fmt.Fprintf(w, "Buy:  %s\n", formatGP(quote.Prices.High))
	fmt.Fprintf(w, "Sell: %s\n", formatGP(quote.Prices.Low))
}

func formatGP(gp *int64) string {
	if gp == nil {
		return "unknown"
	}
	return humanize.Comma(*gp) + " GP"
}

func formatItems(w io.Writer, items []models.ItemMapping) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No items found")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, item := range items {
		members := ""
		if item.Members {
			members = "members"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", item.ID, item.Name, members)
	}
	tw.Flush()
}

func formatWiki(w io.Writer, summary *models.WikiSummary) {
	fmt.Fprintln(w, summary.Title)
	fmt.Fprintln(w, summary.URL)
	if summary.Summary != nil {
		fmt.Fprintf(w, "\n%s\n", *summary.Summary)
	}
}

func formatGuide(w io.Writer, guide *models.WikiGuide) {
	fmt.Fprintln(w, guide.Title)
	fmt.Fprintln(w, guide.URL)
	if guide.Guide == nil {
		fmt.Fprintln(w, "\nNo guide available")
		return
	}
	fmt.Fprintf(w, "\n%s\n", strings.TrimSpace(*guide.Guide))
}

func formatQuest(w io.Writer, q *models.Quest) {
	fmt.Fprintln(w, q.Name)
	if q.URL != "" {
		fmt.Fprintln(w, q.URL)
	}
	if q.Description != "" {
		fmt.Fprintf(w, "\n%s\n", q.Description)
	}

	fmt.Fprintf(w, "\nDifficulty:   %s\n", q.Difficulty)
	fmt.Fprintf(w, "Length:       %s\n", q.Length)
	fmt.Fprintf(w, "Quest points: %d\n", q.QuestPoints)

	if len(q.Requirements.Skills) > 0 || len(q.Requirements.Quests) > 0 {
		fmt.Fprintln(w, "\nRequirements:")
		for _, s := range q.Requirements.Skills {
			boost := ""
			if s.Boostable {
				boost = " (boostable)"
			}
			fmt.Fprintf(w, "  %d %s%s\n", s.Level, s.Skill, boost)
		}
		for _, name := range q.Requirements.Quests {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}

	if len(q.Rewards.Experience) > 0 || len(q.Rewards.Items) > 0 || len(q.Rewards.Unlocks) > 0 {
		fmt.Fprintln(w, "\nRewards:")
		for _, xp := range q.Rewards.Experience {
			fmt.Fprintf(w, "  %s %s XP\n", humanize.Comma(int64(xp.Amount)), xp.Skill)
		}
		for _, item := range q.Rewards.Items {
			fmt.Fprintf(w, "  %s\n", item)
		}
		for _, unlock := range q.Rewards.Unlocks {
			fmt.Fprintf(w, "  %s\n", unlock)
		}
	}
}

func formatSlayerTasks(w io.Writer, master string, tasks []models.SlayerTask) {
	var totalWeight int
	for _, t := range tasks {
		totalWeight += t.Weight
	}

	fmt.Fprintf(w, "%s: %d tasks\n", master, len(tasks))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Monster\tAmount\tWeight\tChance\tSlayer")
	for _, t := range tasks {
		amount := fmt.Sprintf("%d-%d", t.Amount.Min, t.Amount.Max)
		if t.ExtendedAmount != nil {
			amount += fmt.Sprintf(" (%d-%d)", t.ExtendedAmount.Min, t.ExtendedAmount.Max)
		}
		chance := 0.0
		if totalWeight > 0 {
			chance = float64(t.Weight) / float64(totalWeight) * 100
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f%%\t%d\n", t.Monster, amount, t.Weight, chance, t.SlayerLevel)
	}
	tw.Flush()
}
