package cli

import (
	"github.com/spf13/cobra"

	"github.com/myteamhq/handball-api/internal/logger"
)

var (
	flagBase    string
	flagVerbose bool
)

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "handball-api",
		Short: "Scrape and serve Korea Handball league data",
		Long: `Scrapes team rosters, match schedules, and standings from the Korea
Handball Federation site and serves them as JSON, plus per-team season
calendars as iCalendar documents.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "info"
			if flagVerbose {
				level = "debug"
			}
			logger.Setup(level)
		},
	}

	cmd.PersistentFlags().StringVar(&flagBase, "base", "", "Source site origin (default: the federation site)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newTeamsCmd())
	cmd.AddCommand(newScheduleCmd())
	cmd.AddCommand(newRankingCmd())
	cmd.AddCommand(newICSCmd())

	return cmd
}
