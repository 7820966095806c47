package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/myteamhq/handball-api/internal/schedule"
)

func str(s string) *string { return &s }

func day(dateLabel, dateISO string, matches ...schedule.Match) schedule.DayBlock {
	d := schedule.DayBlock{DateLabel: dateLabel, Matches: matches}
	if dateISO != "" {
		d.DateISO = &dateISO
	}
	return d
}

func match(home, away string, kickoff, venue *string) schedule.Match {
	return schedule.Match{
		Home:      schedule.TeamRef{Name: home},
		Away:      schedule.TeamRef{Name: away},
		Time:      kickoff,
		Venue:     venue,
		Broadcast: []string{},
		LiveLinks: []schedule.LiveLink{},
	}
}

var generated = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func TestBuildSeason(t *testing.T) {
	days := []schedule.DayBlock{
		day("2026.01.10 (토)", "2026-01-10", match("Team A", "Team B", str("16:15"), str("Gym"))),
	}

	ics := BuildSeason("2025", "Team A", days, generated)

	required := []string{
		"BEGIN:VCALENDAR",
		"PRODID:-//myteam-calendar//KO//",
		"VERSION:2.0",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:2025-2026-01-10-TeamA-TeamB@myteam-calendar",
		"DTSTAMP:20260102T030405Z",
		"DTSTART:20260110T161500",
		"DTEND:20260110T181500",
		"SUMMARY:Team A vs Team B",
		"LOCATION:Gym",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	for _, field := range required {
		if !strings.Contains(ics, field) {
			t.Errorf("ICS missing %q in:\n%s", field, ics)
		}
	}

	if strings.Count(ics, "BEGIN:VEVENT") != 1 {
		t.Errorf("expected exactly one VEVENT")
	}
	if !strings.HasSuffix(ics, "END:VCALENDAR\r\n") {
		t.Error("ICS should use \\r\\n line endings")
	}
	for _, line := range strings.Split(strings.TrimSuffix(ics, "\r\n"), "\r\n") {
		if strings.ContainsAny(line, "\n") {
			t.Errorf("bare newline in line %q", line)
		}
	}
}

func TestBuildSeasonFiltersByExactName(t *testing.T) {
	days := []schedule.DayBlock{
		day("2026.01.10 (토)", "2026-01-10",
			match("Team A", "Team B", str("16:15"), nil),
			match("Team C", "Team D", str("18:00"), nil),
		),
		day("2026.01.11 (일)", "2026-01-11",
			match("Team D", "Team A", nil, nil),
		),
	}

	ics := BuildSeason("2025", "Team A", days, generated)

	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("expected 2 events for Team A, got %d", got)
	}
	if strings.Contains(ics, "Team C vs Team D") {
		t.Error("unrelated match leaked into the calendar")
	}

	// Matching is exact and case-sensitive.
	if got := strings.Count(BuildSeason("2025", "team a", days, generated), "BEGIN:VEVENT"); got != 0 {
		t.Errorf("expected 0 events for lowercased name, got %d", got)
	}
}

func TestBuildSeasonSkipsDaysWithoutDate(t *testing.T) {
	days := []schedule.DayBlock{
		day("추후 공지", "", match("Team A", "Team B", nil, nil)),
	}

	ics := BuildSeason("2025", "Team A", days, generated)
	if strings.Contains(ics, "BEGIN:VEVENT") {
		t.Error("a day without a date should produce no events")
	}
}

func TestBuildSeasonDefaultTimes(t *testing.T) {
	tests := []struct {
		name      string
		kickoff   *string
		wantStart string
		wantEnd   string
	}{
		{"no kickoff", nil, "DTSTART:20260110T120000", "DTEND:20260110T140000"},
		{"malformed hour", str("xx:30"), "DTSTART:20260110T123000", "DTEND:20260110T143000"},
		{"malformed minute", str("16:xx"), "DTSTART:20260110T160000", "DTEND:20260110T180000"},
		{"garbage", str("soon"), "DTSTART:20260110T120000", "DTEND:20260110T140000"},
		{"crosses midnight", str("23:30"), "DTSTART:20260110T233000", "DTEND:20260111T013000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := []schedule.DayBlock{
				day("2026.01.10 (토)", "2026-01-10", match("Team A", "Team B", tt.kickoff, nil)),
			}
			ics := BuildSeason("2025", "Team A", days, generated)
			if !strings.Contains(ics, tt.wantStart) {
				t.Errorf("missing %q in:\n%s", tt.wantStart, ics)
			}
			if !strings.Contains(ics, tt.wantEnd) {
				t.Errorf("missing %q in:\n%s", tt.wantEnd, ics)
			}
		})
	}
}

func TestBuildSeasonOmitsEmptyLocation(t *testing.T) {
	days := []schedule.DayBlock{
		day("2026.01.10 (토)", "2026-01-10", match("Team A", "Team B", str("16:15"), nil)),
	}

	ics := BuildSeason("2025", "Team A", days, generated)
	if strings.Contains(ics, "LOCATION:") {
		t.Error("LOCATION should be omitted when venue is unknown")
	}
}

func TestEventUIDStable(t *testing.T) {
	a := EventUID("2025", "2026-01-10", "서울 시청", "Team B")
	b := EventUID("2025", "2026-01-10", "서울 시청", "Team B")
	if a != b {
		t.Errorf("UID not stable: %q vs %q", a, b)
	}
	if strings.ContainsAny(a, " \t") {
		t.Errorf("UID should collapse whitespace: %q", a)
	}
	if !strings.HasSuffix(a, "@myteam-calendar") {
		t.Errorf("UID missing namespace suffix: %q", a)
	}
}

func TestEventUIDIgnoresKickoffTime(t *testing.T) {
	days := func(kickoff string) []schedule.DayBlock {
		return []schedule.DayBlock{
			day("2026.01.10 (토)", "2026-01-10", match("Team A", "Team B", str(kickoff), nil)),
		}
	}

	uidLine := func(ics string) string {
		for _, line := range strings.Split(ics, "\r\n") {
			if strings.HasPrefix(line, "UID:") {
				return line
			}
		}
		return ""
	}

	early := uidLine(BuildSeason("2025", "Team A", days("14:00"), generated))
	late := uidLine(BuildSeason("2025", "Team A", days("19:00"), generated))
	if early == "" || early != late {
		t.Errorf("UID should not depend on kickoff time: %q vs %q", early, late)
	}
}

func TestBuildSeasonEscapesText(t *testing.T) {
	days := []schedule.DayBlock{
		day("2026.01.10 (토)", "2026-01-10", match("Team A", "Team B", str("16:15"), str("Gym, Hall; B"))),
	}

	ics := BuildSeason("2025", "Team A", days, generated)
	if !strings.Contains(ics, "LOCATION:Gym\\, Hall\\; B") {
		t.Errorf("venue not escaped:\n%s", ics)
	}
}
