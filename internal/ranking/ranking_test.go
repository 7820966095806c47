package ranking

import (
	"bytes"
	"os"
	"reflect"
	"testing"

	"github.com/myteamhq/handball-api/internal/league"
)

const base = league.DefaultBaseURL

func loadFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/ranking.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	return data
}

func TestParse(t *testing.T) {
	rows, err := Parse(bytes.NewReader(loadFixture(t)), base)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// Identity table has 8 rows, statistics table 6: the merge truncates
	// to the shorter side and uses identity rows 0-5 only.
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Rank != 1 || first.Team.Name != "서울시청" {
		t.Errorf("rows[0] identity = %d %q", first.Rank, first.Team.Name)
	}
	if first.Team.LogoURL == nil || *first.Team.LogoURL != base+"/upload/team/12.png" {
		t.Errorf("rows[0] logo = %v", first.Team.LogoURL)
	}
	if first.Played != 10 || first.Points != 27 || first.Wins != 9 || first.Draws != 0 || first.Losses != 1 {
		t.Errorf("rows[0] stats = %+v", first)
	}
	if first.GoalsFor != 312 || first.GoalsAgainst != 280 {
		t.Errorf("rows[0] goals = %d:%d", first.GoalsFor, first.GoalsAgainst)
	}
	if !reflect.DeepEqual(first.Last5, []string{"W", "W", "L", "W", "W"}) {
		t.Errorf("rows[0].Last5 = %v", first.Last5)
	}

	// Team cell without an img falls back to the cell text.
	if rows[2].Team.Name != "광주도시공사" {
		t.Errorf("rows[2].Team.Name = %q", rows[2].Team.Name)
	}
	if rows[2].Team.LogoURL != nil {
		t.Errorf("rows[2].Team.LogoURL = %v, want nil", rows[2].Team.LogoURL)
	}

	if rows[5].Rank != 6 {
		t.Errorf("rows[5].Rank = %d, want 6", rows[5].Rank)
	}
}

func TestParseGoalDiffDecorator(t *testing.T) {
	rows, err := Parse(bytes.NewReader(loadFixture(t)), base)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// The source renders goal difference with a triangle glyph; only the
	// digits and the sign survive parsing.
	if rows[0].GoalDiff != 32 {
		t.Errorf("rows[0].GoalDiff = %d, want 32", rows[0].GoalDiff)
	}
	if rows[3].GoalDiff != 5 {
		t.Errorf("rows[3].GoalDiff = %d, want 5", rows[3].GoalDiff)
	}
}

func TestMergeByPosition(t *testing.T) {
	left := []identityRow{
		{rank: 1, team: TeamRef{Name: "A"}},
		{rank: 2, team: TeamRef{Name: "B"}},
		{rank: 3, team: TeamRef{Name: "C"}},
	}
	right := []statsRow{
		{played: 10, points: 20, last5: []string{"W"}},
		{played: 10, points: 15, last5: []string{"L"}},
	}

	rows := mergeByPosition(left, right)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Rank != 1 || rows[0].Team.Name != "A" || rows[0].Points != 20 {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[1].Rank != 2 || rows[1].Team.Name != "B" || rows[1].Points != 15 {
		t.Errorf("rows[1] = %+v", rows[1])
	}

	// Surplus on the stats side truncates the same way.
	rows = mergeByPosition(left[:1], right)
	if len(rows) != 1 || rows[0].Team.Name != "A" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestParseIdempotent(t *testing.T) {
	data := loadFixture(t)

	a, err := Parse(bytes.NewReader(data), base)
	if err != nil {
		t.Fatalf("first Parse failed: %v", err)
	}
	b, err := Parse(bytes.NewReader(data), base)
	if err != nil {
		t.Fatalf("second Parse failed: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("parsing the same HTML twice should yield identical results")
	}
}

func TestParseEmptyPage(t *testing.T) {
	rows, err := Parse(bytes.NewReader([]byte("<html><body></body></html>")), base)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}
