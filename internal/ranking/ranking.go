package ranking

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/myteamhq/handball-api/internal/htmlutil"
	"github.com/myteamhq/handball-api/internal/league"
)

// TeamRef names a ranked team.
type TeamRef struct {
	Name    string  `json:"name"`
	LogoURL *string `json:"logoUrl"`
}

// Row is one unified standings row, merged from the page's twin tables.
type Row struct {
	Rank         int      `json:"rank"`
	Team         TeamRef  `json:"team"`
	Played       int      `json:"played"`
	Points       int      `json:"points"`
	Wins         int      `json:"wins"`
	Draws        int      `json:"draws"`
	Losses       int      `json:"losses"`
	GoalsFor     int      `json:"goalsFor"`
	GoalsAgainst int      `json:"goalsAgainst"`
	GoalDiff     int      `json:"goalDiff"`
	Last5        []string `json:"last5"`
}

// Response is the standings envelope served to clients.
type Response struct {
	LeagueGender league.Gender `json:"leagueGender"`
	LeagueSeason string        `json:"leagueSeason"`
	LeagueType   string        `json:"leagueType"`
	URL          string        `json:"url"`
	Items        []Row         `json:"items"`
}

// identityRow is a row of the left (fixed) table: rank plus team cell.
type identityRow struct {
	rank int
	team TeamRef
}

// statsRow is a row of the right (scrolling) table: the numeric columns
// plus the last-5 form badges.
type statsRow struct {
	played, points, wins, draws, losses int
	goalsFor, goalsAgainst, goalDiff    int
	last5                               []string
}

// Parse extracts unified standings rows from ranking page HTML. The page
// renders one logical table split into a fixed identity table and a
// scrolling statistics table; both are parsed independently and merged
// by position.
func Parse(r io.Reader, base string) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	wrap := doc.Find(".table_wrap.record").First()
	left := parseIdentityTable(wrap.Find(".fixed_table.record_team").First(), base)
	right := parseStatsTable(wrap.Find(".scroll_table").First())

	return mergeByPosition(left, right), nil
}

// mergeByPosition zips the identity and statistics rows by index,
// truncated to the shorter side. The join is positional, not keyed: it
// holds only because the source renders the two tables as twin columns
// of one logical table. A length mismatch means the source layout
// changed, so it is logged rather than silently ignored.
func mergeByPosition(left []identityRow, right []statsRow) []Row {
	if len(left) != len(right) {
		log.Warn().
			Int("identity_rows", len(left)).
			Int("stats_rows", len(right)).
			Msg("ranking tables disagree on row count, truncating to the shorter")
	}

	n := len(left)
	if len(right) < n {
		n = len(right)
	}

	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		l, r := left[i], right[i]
		rows = append(rows, Row{
			Rank:         l.rank,
			Team:         l.team,
			Played:       r.played,
			Points:       r.points,
			Wins:         r.wins,
			Draws:        r.draws,
			Losses:       r.losses,
			GoalsFor:     r.goalsFor,
			GoalsAgainst: r.goalsAgainst,
			GoalDiff:     r.goalDiff,
			Last5:        r.last5,
		})
	}
	return rows
}

func parseIdentityTable(sel *goquery.Selection, base string) []identityRow {
	rows := make([]identityRow, 0)
	sel.Find("table.team_rank > tbody > tr").Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		rank, _ := strconv.Atoi(strings.TrimSpace(tds.Eq(0).Text()))

		cell := tds.Eq(1)
		name := ""
		if alt := htmlutil.Text(cell.Find("img").AttrOr("alt", "")); alt != nil {
			name = *alt
		} else if txt := htmlutil.Text(cell.Text()); txt != nil {
			name = *txt
		}
		logo := htmlutil.ResolveURL(base, cell.Find("img").AttrOr("src", ""))

		rows = append(rows, identityRow{rank: rank, team: TeamRef{Name: name, LogoURL: logo}})
	})
	return rows
}

var goalDiffJunk = regexp.MustCompile(`[^0-9-]`)

func parseStatsTable(sel *goquery.Selection) []statsRow {
	rows := make([]statsRow, 0)
	sel.Find("table > tbody > tr").Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		cell := func(i int) int {
			n, _ := strconv.Atoi(strings.TrimSpace(tds.Eq(i).Text()))
			return n
		}

		// The site decorates goal difference with a triangle glyph; strip
		// everything but digits and the minus sign before parsing.
		diffText := goalDiffJunk.ReplaceAllString(strings.TrimSpace(tds.Eq(7).Text()), "")
		goalDiff, _ := strconv.Atoi(diffText)

		rows = append(rows, statsRow{
			played:       cell(0),
			points:       cell(1),
			wins:         cell(2),
			draws:        cell(3),
			losses:       cell(4),
			goalsFor:     cell(5),
			goalsAgainst: cell(6),
			goalDiff:     goalDiff,
			last5:        parseLast5(tr),
		})
	})
	return rows
}

// parseLast5 classifies the recent-form badges of a stats row by their
// CSS class fragment: "w" wins, "l" losses, anything else a draw.
func parseLast5(tr *goquery.Selection) []string {
	results := make([]string, 0, 5)
	tr.Find("td:last-child .match_result").Each(func(_ int, badge *goquery.Selection) {
		cls := badge.AttrOr("class", "")
		switch {
		case strings.Contains(cls, "w"):
			results = append(results, "W")
		case strings.Contains(cls, "l"):
			results = append(results, "L")
		default:
			results = append(results, "D")
		}
	})
	return results
}
