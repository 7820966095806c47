package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/myteamhq/handball-api/internal/calendar"
	"github.com/myteamhq/handball-api/internal/league"
	"github.com/myteamhq/handball-api/internal/ranking"
	"github.com/myteamhq/handball-api/internal/schedule"
	"github.com/myteamhq/handball-api/internal/team"
)

const (
	// The source site serves a degraded page to unknown agents, so the
	// fetcher presents a browser-like identity and Korean locale.
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome Safari"
	acceptLanguage = "ko,en;q=0.9"

	timeout = 15 * time.Second
)

// Client fetches pages from the source site and feeds them through the
// extractors. One GET per extractor call, no retries: an upstream
// failure propagates to the caller as a hard stop.
type Client struct {
	http *http.Client
	base string
}

// New creates a Client against the given origin; an empty base selects
// the federation's production site.
func New(base string) *Client {
	if base == "" {
		base = league.DefaultBaseURL
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
		base: base,
	}
}

// FetchTeams scrapes the roster page for a gender.
func (c *Client) FetchTeams(ctx context.Context, gender league.Gender) (*team.ListResponse, error) {
	url := league.RosterURL(c.base, gender)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	teams, err := team.Parse(bytes.NewReader(body), c.base)
	if err != nil {
		return nil, fmt.Errorf("extracting teams from %s: %w", url, err)
	}

	return &team.ListResponse{URL: url, Gender: gender, Teams: teams}, nil
}

// FetchSchedule scrapes the match listing page for a query. The query
// parameters are echoed back in the envelope.
func (c *Client) FetchSchedule(ctx context.Context, q league.Query) (*schedule.Response, error) {
	url := league.ScheduleURL(c.base, q)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	days, err := schedule.Parse(bytes.NewReader(body), c.base)
	if err != nil {
		return nil, fmt.Errorf("extracting schedule from %s: %w", url, err)
	}

	return &schedule.Response{
		LeagueGender: q.Gender,
		LeagueSeason: q.Season,
		LeagueType:   q.Type,
		LeagueMonth:  q.Month,
		URL:          url,
		Days:         days,
	}, nil
}

// FetchRanking scrapes the standings page for a query.
func (c *Client) FetchRanking(ctx context.Context, q league.Query) (*ranking.Response, error) {
	url := league.RankingURL(c.base, q)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	rows, err := ranking.Parse(bytes.NewReader(body), c.base)
	if err != nil {
		return nil, fmt.Errorf("extracting ranking from %s: %w", url, err)
	}

	return &ranking.Response{
		LeagueGender: q.Gender,
		LeagueSeason: q.Season,
		LeagueType:   q.Type,
		URL:          url,
		Items:        rows,
	}, nil
}

// BuildTeamCalendar crawls all twelve months of a season sequentially
// and renders the named team's matches as an iCalendar document. Any
// month failing aborts the whole build; no partial document is returned.
func (c *Client) BuildTeamCalendar(ctx context.Context, q league.Query, teamName string) (string, error) {
	days := make([]schedule.DayBlock, 0)

	for month := 1; month <= 12; month++ {
		mq := q
		mq.Month = strconv.Itoa(month)

		resp, err := c.FetchSchedule(ctx, mq)
		if err != nil {
			return "", fmt.Errorf("fetching month %d: %w", month, err)
		}
		days = append(days, resp.Days...)
	}

	return calendar.BuildSeason(q.Season, teamName, days, time.Now()), nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)

	log.Debug().Str("url", url).Msg("fetching page")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetching %s: unexpected status code %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return body, nil
}
