package team

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/myteamhq/handball-api/internal/htmlutil"
	"github.com/myteamhq/handball-api/internal/league"
)

// Team identifies one club on the roster page. TeamNum comes from the
// team_num query parameter embedded in the profile link and is the only
// stable key the site exposes.
type Team struct {
	TeamNum int     `json:"teamNum"`
	Name    string  `json:"name"`
	LogoURL *string `json:"logoUrl"`
	Href    *string `json:"href"`
}

// ListResponse is the roster envelope served to clients: the page that
// was scraped plus the teams found on it, in document order.
type ListResponse struct {
	URL    string        `json:"url"`
	Gender league.Gender `json:"gender"`
	Teams  []Team        `json:"teams"`
}

// Parse extracts the team list from roster page HTML. Anchors without a
// numeric team_num parameter are not team links and are skipped; a team
// with no visible name is kept with an empty name. No de-duplication is
// performed.
func Parse(r io.Reader, base string) ([]Team, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	// Bare "?team_num=..." hrefs resolve against the women's roster page
	// regardless of which roster is being parsed; the men's and women's
	// pages share one query namespace on the source site.
	womensURL := league.RosterURL(base, league.Women)

	teams := make([]Team, 0)
	doc.Find("ul.team_picker li a").Each(func(_ int, a *goquery.Selection) {
		hrefRel, _ := a.Attr("href")

		num, ok := teamNum(hrefRel)
		if !ok {
			return
		}

		var href *string
		if strings.HasPrefix(hrefRel, "?") {
			abs := womensURL + hrefRel
			href = &abs
		} else {
			href = htmlutil.ResolveURL(base, hrefRel)
		}

		name := ""
		if n := htmlutil.Text(a.Find("p.name").First().Text()); n != nil {
			name = *n
		} else if alt := htmlutil.Text(a.Find("img").AttrOr("alt", "")); alt != nil {
			name = *alt
		}

		logo := htmlutil.ResolveURL(base, a.Find("img").AttrOr("src", ""))

		teams = append(teams, Team{TeamNum: num, Name: name, LogoURL: logo, Href: href})
	})

	return teams, nil
}

// teamNum pulls the numeric team_num parameter out of an href's query
// string. The second return is false when the href carries no usable
// number, which marks the anchor as something other than a team link.
func teamNum(href string) (int, bool) {
	_, qs, found := strings.Cut(href, "?")
	if !found {
		return 0, false
	}
	params, err := url.ParseQuery(qs)
	if err != nil {
		return 0, false
	}
	raw := params.Get("team_num")
	if raw == "" {
		return 0, false
	}
	num, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return num, true
}
