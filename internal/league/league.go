package league

import (
	"fmt"
	"net/url"
)

// DefaultBaseURL is the origin of the Korea Handball Federation site all
// relative paths resolve against.
const DefaultBaseURL = "https://www.koreahandball.com"

// Gender selects the women's or men's league.
type Gender string

const (
	Women Gender = "W"
	Men   Gender = "M"
)

// ParseGender validates a gender query value. An empty value defaults to
// the women's league, matching the source site's landing behavior.
func ParseGender(s string) (Gender, error) {
	switch s {
	case "", "W":
		return Women, nil
	case "M":
		return Men, nil
	}
	return "", fmt.Errorf("gender must be M or W, got %q", s)
}

// Query names the league page being requested. It replaces the scattered
// default literals the call sites used to carry: every fetch receives an
// explicit record instead.
type Query struct {
	Gender Gender
	Season string
	Type   string // competition type, "1" for the regular league
	Month  string // 1-12 as text, empty for the whole season listing
}

// DefaultQuery returns the query the serving layer falls back to when a
// request omits parameters.
func DefaultQuery() Query {
	return Query{Gender: Women, Season: "2025", Type: "1"}
}

// RosterURL returns the team roster page for a gender.
func RosterURL(base string, gender Gender) string {
	if gender == Men {
		return base + "/introduce/team_men.php"
	}
	return base + "/introduce/team_women.php"
}

// ScheduleURL returns the match listing page for a query. Month is only
// appended when set; the site serves the full season without it.
func ScheduleURL(base string, q Query) string {
	u := base + "/game/schedule_list.php?" + leagueParams(q).Encode()
	return u
}

// RankingURL returns the team ranking page for a query.
func RankingURL(base string, q Query) string {
	p := leagueParams(q)
	p.Del("month")
	return base + "/game/teamranking.php?" + p.Encode()
}

func leagueParams(q Query) url.Values {
	p := url.Values{}
	p.Set("league_gender", string(q.Gender))
	p.Set("league_season", q.Season)
	p.Set("league_type", q.Type)
	if q.Month != "" {
		p.Set("month", q.Month)
	}
	return p
}
