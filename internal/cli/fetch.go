package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/myteamhq/handball-api/internal/league"
	"github.com/myteamhq/handball-api/internal/scraper"
)

var (
	flagGender string
	flagSeason string
	flagType   string
	flagMonth  string
	flagTeam   string
	flagOutput string
)

func addLeagueFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagGender, "gender", "W", "League gender: W or M")
	cmd.Flags().StringVar(&flagSeason, "season", league.DefaultQuery().Season, "League season, e.g. 2025")
	cmd.Flags().StringVar(&flagType, "type", "1", "Competition type")
}

func leagueQuery() (league.Query, error) {
	gender, err := league.ParseGender(flagGender)
	if err != nil {
		return league.Query{}, err
	}
	return league.Query{Gender: gender, Season: flagSeason, Type: flagType, Month: flagMonth}, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTeamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Fetch the team roster and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			gender, err := league.ParseGender(flagGender)
			if err != nil {
				return err
			}
			resp, err := scraper.New(flagBase).FetchTeams(cmd.Context(), gender)
			if err != nil {
				return fmt.Errorf("fetching teams: %w", err)
			}
			return printJSON(resp)
		},
	}
	cmd.Flags().StringVar(&flagGender, "gender", "W", "League gender: W or M")
	return cmd
}

func newScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Fetch the match schedule and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := leagueQuery()
			if err != nil {
				return err
			}
			resp, err := scraper.New(flagBase).FetchSchedule(cmd.Context(), q)
			if err != nil {
				return fmt.Errorf("fetching schedule: %w", err)
			}
			return printJSON(resp)
		},
	}
	addLeagueFlags(cmd)
	cmd.Flags().StringVar(&flagMonth, "month", "", "Month 1-12, empty for the whole season")
	return cmd
}

func newRankingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Fetch the league standings and print them as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := leagueQuery()
			if err != nil {
				return err
			}
			q.Month = ""
			resp, err := scraper.New(flagBase).FetchRanking(cmd.Context(), q)
			if err != nil {
				return fmt.Errorf("fetching ranking: %w", err)
			}
			return printJSON(resp)
		},
	}
	addLeagueFlags(cmd)
	return cmd
}

func newICSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Build a team's season calendar as an .ics document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagTeam == "" {
				return fmt.Errorf("--team is required")
			}
			q, err := leagueQuery()
			if err != nil {
				return err
			}
			q.Month = ""

			ics, err := scraper.New(flagBase).BuildTeamCalendar(cmd.Context(), q, flagTeam)
			if err != nil {
				return fmt.Errorf("building calendar: %w", err)
			}

			if flagOutput == "" || flagOutput == "-" {
				fmt.Print(ics)
				return nil
			}
			if err := os.WriteFile(flagOutput, []byte(ics), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", flagOutput, err)
			}
			return nil
		},
	}
	addLeagueFlags(cmd)
	cmd.Flags().StringVar(&flagTeam, "team", "", "Team name exactly as rendered on the schedule page (required)")
	cmd.Flags().StringVar(&flagOutput, "output", "-", "Output file, or - for stdout")
	return cmd
}
