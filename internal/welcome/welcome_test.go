package welcome

import (
	"testing"

	"github.com/myteamhq/handball-api/internal/league"
)

func TestSubmissionValidate(t *testing.T) {
	num := 7
	name := "서울시청"
	valid := Submission{
		UserGender: league.Women,
		AgeGroup:   "20s",
		TeamGender: league.Women,
		TeamNum:    &num,
		TeamName:   &name,
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("valid submission rejected: %v", err)
	}

	// Team fields are optional.
	bare := Submission{UserGender: league.Men, AgeGroup: "30s", TeamGender: league.Women}
	if err := bare.Validate(); err != nil {
		t.Errorf("submission without a team rejected: %v", err)
	}

	tests := []struct {
		name string
		sub  Submission
	}{
		{"bad user gender", Submission{UserGender: "X", AgeGroup: "20s", TeamGender: league.Women}},
		{"empty user gender", Submission{AgeGroup: "20s", TeamGender: league.Women}},
		{"bad team gender", Submission{UserGender: league.Women, AgeGroup: "20s", TeamGender: "F"}},
		{"missing age group", Submission{UserGender: league.Women, TeamGender: league.Women}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.sub.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
