package main

import (
	"fmt"
	"strings"

	"github.com/bobbot/osrs-api/internal/osrs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	skillFlag string
	limitFlag int
)

var playerCmd = &cobra.Command{
	Use:   "player <username>",
	Short: "Show a player's hiscore levels",
	Example: `  osrsctl player "Lynx Titan"
  osrsctl player zezima --skill wc`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlayer,
}

var priceCmd = &cobra.Command{
	Use:   "price <item>",
	Short: "Show the latest Grand Exchange price of an item",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quote, err := api.Price(cmd.Context(), joinArgs(args))
		if err != nil {
			return err
		}
		formatPrice(cmd.OutOrStdout(), quote)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tradeable items by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := api.SearchItems(cmd.Context(), joinArgs(args), limitFlag)
		if err != nil {
			return err
		}
		formatItems(cmd.OutOrStdout(), items)
		return nil
	},
}

var wikiCmd = &cobra.Command{
	Use:   "wiki <title>",
	Short: "Show the intro of a wiki page",
	Long: `Show the intro of a wiki page. If the exact title has no page,
the wiki search is used to find the closest one.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := joinArgs(args)
		summary, err := api.Wiki(cmd.Context(), title)
		if err != nil {
			return err
		}
		if summary.Extract == nil {
			logger.Debug("no page for exact title, searching", zap.String("title", title))
			summary, err = api.SearchWiki(cmd.Context(), title)
			if err != nil {
				return err
			}
		}
		formatWiki(cmd.OutOrStdout(), summary)
		return nil
	},
}

var guideCmd = &cobra.Command{
	Use:   "guide <title>",
	Short: "Show the quick guide for a quest or activity",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		guide, err := api.Guide(cmd.Context(), joinArgs(args))
		if err != nil {
			return err
		}
		formatGuide(cmd.OutOrStdout(), guide)
		return nil
	},
}

var questCmd = &cobra.Command{
	Use:   "quest <name>",
	Short: "Show quest requirements and rewards",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quest, err := api.Quest(cmd.Context(), joinArgs(args))
		if err != nil {
			return err
		}
		formatQuest(cmd.OutOrStdout(), quest)
		return nil
	},
}

var slayerCmd = &cobra.Command{
	Use:   "slayer [master]",
	Short: "Show a slayer master's task table, or list the masters",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			masters, err := api.SlayerMasters(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(masters, "\n"))
			return nil
		}

		tasks, err := api.SlayerTasks(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		formatSlayerTasks(cmd.OutOrStdout(), args[0], tasks)
		return nil
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the gateway is up",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := api.Health(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", h.Status, h.Timestamp)
		return nil
	},
}

func runPlayer(cmd *cobra.Command, args []string) error {
	username := joinArgs(args)
	if !osrs.ValidUsername(username) {
		return fmt.Errorf("%q is not a valid OSRS username (1-12 letters, digits, spaces, _ or -)", username)
	}

	var skill string
	if skillFlag != "" {
		var ok bool
		skill, ok = osrs.FindSkill(skillFlag)
		if !ok {
			return fmt.Errorf("unknown skill %q", skillFlag)
		}
	}

	stats, err := api.Player(cmd.Context(), strings.TrimSpace(username))
	if err != nil {
		return err
	}

	if skill == "" {
		formatStats(cmd.OutOrStdout(), stats)
		return nil
	}
	return formatSkill(cmd.OutOrStdout(), stats, skill)
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
