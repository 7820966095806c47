package welcome

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/myteamhq/handball-api/internal/league"
)

// Submission is one user's onboarding answer set: who they are and which
// team they picked. Team fields are nullable because a user may finish
// onboarding without choosing a team.
type Submission struct {
	UserGender  league.Gender `json:"userGender"`
	AgeGroup    string        `json:"ageGroup"`
	TeamGender  league.Gender `json:"teamGender"`
	TeamNum     *int          `json:"teamNum"`
	TeamName    *string       `json:"teamName"`
	TeamLogoURL *string       `json:"teamLogoUrl"`
}

// Validate rejects submissions the store should never see.
func (s Submission) Validate() error {
	if s.UserGender != league.Women && s.UserGender != league.Men {
		return fmt.Errorf("userGender must be M or W, got %q", s.UserGender)
	}
	if s.TeamGender != league.Women && s.TeamGender != league.Men {
		return fmt.Errorf("teamGender must be M or W, got %q", s.TeamGender)
	}
	if s.AgeGroup == "" {
		return fmt.Errorf("ageGroup is required")
	}
	return nil
}

// Store persists submissions to Postgres.
type Store struct {
	db *sql.DB
}

// NewStore opens a Postgres connection pool for the given DSN.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	return &Store{db: db}, nil
}

// EnsureSchema creates the submissions table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS welcome_submissions (
			id SERIAL PRIMARY KEY,
			user_gender TEXT NOT NULL,
			age_group TEXT NOT NULL,
			team_gender TEXT NOT NULL,
			team_num INTEGER,
			team_name TEXT,
			team_logo_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("creating welcome_submissions table: %w", err)
	}
	return nil
}

// Save inserts one submission. Callers validate first.
func (s *Store) Save(ctx context.Context, sub Submission) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO welcome_submissions (
			user_gender, age_group, team_gender, team_num, team_name, team_logo_url
		) VALUES ($1, $2, $3, $4, $5, $6)`,
		sub.UserGender, sub.AgeGroup, sub.TeamGender, sub.TeamNum, sub.TeamName, sub.TeamLogoURL,
	)
	if err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}
	return nil
}

// Ping verifies the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the pool.
func (s *Store) Close() error {
	return s.db.Close()
}
