package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/myteamhq/handball-api/internal/schedule"
)

const (
	prodID    = "-//myteam-calendar//KO//"
	uidSuffix = "@myteam-calendar"

	// Matches publish no end time; two hours is a presentation convention.
	matchDuration = 2 * time.Hour

	defaultHour   = 12
	defaultMinute = 0
)

// BuildSeason assembles an iCalendar document from a season's worth of
// day-grouped matches, keeping one VEVENT per match the named team plays.
// Matching is by exact team name against home and away; days without a
// parseable date carry no calendar position and are skipped. All events
// share a single generation timestamp, so regenerating an unchanged
// season yields an identical document apart from DTSTAMP.
func BuildSeason(season, teamName string, days []schedule.DayBlock, generated time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("PRODID:" + prodID + "\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	stamp := generated.UTC().Format("20060102T150405Z")

	for _, day := range days {
		if day.DateISO == nil {
			continue
		}
		for _, m := range day.Matches {
			if m.Home.Name != teamName && m.Away.Name != teamName {
				continue
			}
			writeEvent(&ics, season, *day.DateISO, m, stamp)
		}
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeEvent(ics *strings.Builder, season, dateISO string, m schedule.Match, stamp string) {
	start, ok := eventStart(dateISO, m.Time)
	if !ok {
		return
	}
	end := start.Add(matchDuration)

	ics.WriteString("BEGIN:VEVENT\r\n")
	ics.WriteString("UID:" + EventUID(season, dateISO, m.Home.Name, m.Away.Name) + "\r\n")
	ics.WriteString("DTSTAMP:" + stamp + "\r\n")
	ics.WriteString("DTSTART:" + formatLocal(start) + "\r\n")
	ics.WriteString("DTEND:" + formatLocal(end) + "\r\n")
	ics.WriteString(fmt.Sprintf("SUMMARY:%s vs %s\r\n", escapeText(m.Home.Name), escapeText(m.Away.Name)))
	if m.Venue != nil {
		ics.WriteString("LOCATION:" + escapeText(*m.Venue) + "\r\n")
	}
	ics.WriteString("END:VEVENT\r\n")
}

// EventUID derives the stable identity of a match event. The same
// season, date, and pairing always produce the same UID, so repeated
// exports update rather than duplicate calendar entries. Kickoff time is
// deliberately not part of the identity; a doubleheader between the same
// sides on one day would collide, which the source format cannot
// otherwise disambiguate.
func EventUID(season, dateISO, home, away string) string {
	raw := fmt.Sprintf("%s-%s-%s-%s", season, dateISO, home, away)
	return strings.Join(strings.Fields(raw), "") + uidSuffix
}

// eventStart combines a day's ISO date with a kickoff label such as
// "16:15". A missing kickoff and each malformed component default
// independently: hour to 12, minute to 00.
func eventStart(dateISO string, kickoff *string) (time.Time, bool) {
	day, err := time.Parse("2006-01-02", dateISO)
	if err != nil {
		return time.Time{}, false
	}

	hour, minute := defaultHour, defaultMinute
	if kickoff != nil {
		hh, mm, _ := strings.Cut(*kickoff, ":")
		if h, err := strconv.Atoi(strings.TrimSpace(hh)); err == nil && h >= 0 && h <= 23 {
			hour = h
		}
		if m, err := strconv.Atoi(strings.TrimSpace(mm)); err == nil && m >= 0 && m <= 59 {
			minute = m
		}
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC), true
}

// formatLocal renders a floating local datetime, without a zone suffix.
func formatLocal(t time.Time) string {
	return t.Format("20060102T150405")
}

// escapeText escapes special characters per RFC 5545.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
