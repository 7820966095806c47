// Package calendar renders a team's season schedule as an iCalendar
// document.
//
// Input is the day-grouped match data the schedule extractor produces
// across a season; output is a single VCALENDAR with one VEVENT per
// match involving the chosen team. Event identity is deterministic over
// season, date, and pairing, so re-exports stay idempotent.
package calendar
