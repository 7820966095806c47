package schedule

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/myteamhq/handball-api/internal/htmlutil"
	"github.com/myteamhq/handball-api/internal/league"
)

// TeamRef names one side of a match. The schedule page exposes no numeric
// team id, so this is lighter than team.Team.
type TeamRef struct {
	Name    string  `json:"name"`
	LogoURL *string `json:"logoUrl"`
}

// LiveLink is a streaming link rendered alongside a match.
type LiveLink struct {
	Label string  `json:"label"`
	URL   *string `json:"url"`
}

// Match is one fixture as rendered on the listing page. ScoreText is the
// literal markup text ("- : -" before the match, "83:79" after); it is
// never parsed into numbers here.
type Match struct {
	Home        TeamRef    `json:"home"`
	Away        TeamRef    `json:"away"`
	ScoreText   *string    `json:"scoreText"`
	Time        *string    `json:"time"`
	Broadcast   []string   `json:"broadcast"`
	LiveLinks   []LiveLink `json:"liveLinks"`
	Venue       *string    `json:"venue"`
	ContainerID *string    `json:"containerId"`
}

// DayBlock groups the matches of one rendered date. DateISO is nil when
// the label does not start with a parseable YYYY.MM.DD date.
type DayBlock struct {
	DateLabel string  `json:"dateLabel"`
	DateISO   *string `json:"dateISO"`
	Matches   []Match `json:"games"`
}

// Response is the schedule envelope served to clients: the page queried,
// the echoed query parameters, and the day-grouped matches.
type Response struct {
	LeagueGender league.Gender `json:"leagueGender"`
	LeagueSeason string        `json:"leagueSeason"`
	LeagueType   string        `json:"leagueType"`
	LeagueMonth  string        `json:"leagueMonth,omitempty"`
	URL          string        `json:"url"`
	Days         []DayBlock    `json:"days"`
}

var dateISOPattern = regexp.MustCompile(`^(\d{4})\.(\d{2})\.(\d{2})`)

// Parse extracts day-grouped matches from listing page HTML. Days that
// end up with zero matches are dropped; missing optional elements never
// fail the parse, they just leave the affected field nil or empty.
func Parse(r io.Reader, base string) ([]DayBlock, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	days := make([]DayBlock, 0)
	doc.Find(".record_list .cont").Each(func(_ int, block *goquery.Selection) {
		dateLabel := strings.TrimSpace(block.Find("p.date").First().Text())
		dateISO := parseDateISO(dateLabel)

		// The ul id (e.g. m1768057200) deep-links into the source page and
		// is propagated to every match of the day.
		var containerID *string
		if id, ok := block.Find("ul.list").Attr("id"); ok {
			containerID = &id
		}

		matches := make([]Match, 0)
		block.Find("ul.list > li").Each(func(_ int, li *goquery.Selection) {
			matches = append(matches, parseMatch(li, base, containerID))
		})

		if len(matches) > 0 {
			days = append(days, DayBlock{DateLabel: dateLabel, DateISO: dateISO, Matches: matches})
		}
	})

	return days, nil
}

// parseDateISO reads a leading "YYYY.MM.DD" off a date label such as
// "2026.01.10 (토)" and returns it as YYYY-MM-DD, or nil when the label
// does not start with a real calendar date.
func parseDateISO(dateLabel string) *string {
	m := dateISOPattern.FindStringSubmatch(dateLabel)
	if m == nil {
		return nil
	}
	iso := m[1] + "-" + m[2] + "-" + m[3]
	if _, err := time.Parse("2006-01-02", iso); err != nil {
		return nil
	}
	return &iso
}

func parseMatch(li *goquery.Selection, base string, containerID *string) Match {
	score := li.Find(".game_score").First()

	m := Match{
		Home:        parseTeamRef(score.Find(".team.home").First(), base),
		Away:        parseTeamRef(score.Find(".team.away").First(), base),
		ScoreText:   htmlutil.Text(score.Find(".score").First().Text()),
		ContainerID: containerID,
	}

	parts := make([]string, 0)
	li.Find(".game_info span").Each(func(_ int, span *goquery.Selection) {
		parts = append(parts, strings.TrimSpace(span.Text()))
	})
	m.Time, m.Broadcast, m.Venue = splitGameInfo(parts)

	m.LiveLinks = parseLiveLinks(li, base)

	return m
}

func parseTeamRef(sel *goquery.Selection, base string) TeamRef {
	return TeamRef{
		Name:    strings.TrimSpace(sel.Find("p.name").First().Text()),
		LogoURL: htmlutil.ResolveURL(base, sel.Find("img").AttrOr("src", "")),
	}
}

// splitGameInfo disambiguates the ordered span texts of a match's info
// region. The site renders time → broadcasters → venue, with the
// broadcaster count variable and broadcasters never appearing without
// both neighbors, so with two or more parts the first is the kickoff
// time and the last the venue. A sole part is taken as the venue: the
// markup gives no structural marker for that case and venue-only rows
// are what the site actually renders.
func splitGameInfo(parts []string) (kickoff *string, broadcast []string, venue *string) {
	broadcast = make([]string, 0)

	switch {
	case len(parts) >= 2:
		kickoff = htmlutil.Text(parts[0])
		venue = htmlutil.Text(parts[len(parts)-1])
		for _, chunk := range parts[1 : len(parts)-1] {
			for _, label := range strings.Split(chunk, ",") {
				if label = strings.TrimSpace(label); label != "" {
					broadcast = append(broadcast, label)
				}
			}
		}
	case len(parts) == 1:
		venue = htmlutil.Text(parts[0])
	}

	return kickoff, broadcast, venue
}

func parseLiveLinks(li *goquery.Selection, base string) []LiveLink {
	links := make([]LiveLink, 0)
	li.Find(".game_info a").Each(func(_ int, a *goquery.Selection) {
		label := strings.TrimSpace(a.Text())
		href := a.AttrOr("href", "")
		if label == "" && href == "" {
			return
		}
		links = append(links, LiveLink{Label: label, URL: htmlutil.ResolveURL(base, href)})
	})
	return links
}
