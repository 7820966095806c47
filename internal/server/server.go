package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/myteamhq/handball-api/internal/cache"
	"github.com/myteamhq/handball-api/internal/league"
	"github.com/myteamhq/handball-api/internal/ranking"
	"github.com/myteamhq/handball-api/internal/schedule"
	"github.com/myteamhq/handball-api/internal/team"
	"github.com/myteamhq/handball-api/internal/welcome"
)

// Fetcher crawls and extracts one source page per call. Implemented by
// scraper.Client; stubbed in tests.
type Fetcher interface {
	FetchTeams(ctx context.Context, gender league.Gender) (*team.ListResponse, error)
	FetchSchedule(ctx context.Context, q league.Query) (*schedule.Response, error)
	FetchRanking(ctx context.Context, q league.Query) (*ranking.Response, error)
	BuildTeamCalendar(ctx context.Context, q league.Query, teamName string) (string, error)
}

// RosterCache holds serialized roster responses. Implemented by
// cache.Cache.
type RosterCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// SubmissionStore persists onboarding submissions. Implemented by
// welcome.Store.
type SubmissionStore interface {
	Save(ctx context.Context, sub welcome.Submission) error
}

// Server wires the fetcher and its collaborators into an HTTP API. The
// cache and store may be nil: a nil cache means every roster request
// crawls live, a nil store turns the welcome endpoint into a 503.
type Server struct {
	fetcher Fetcher
	cache   RosterCache
	store   SubmissionStore
	log     zerolog.Logger
}

// New creates a Server.
func New(fetcher Fetcher, rosterCache RosterCache, store SubmissionStore, logger zerolog.Logger) *Server {
	return &Server{fetcher: fetcher, cache: rosterCache, store: store, log: logger}
}

// Router assembles the chi router with CORS and request logging.
func (s *Server) Router(origins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/teams", s.handleTeams)
		r.Get("/schedule", s.handleSchedule)
		r.Get("/schedule/ics/my-team", s.handleMyTeamICS)
		r.Get("/ranking", s.handleRanking)
		r.Post("/welcome/submissions", s.handleWelcomeSubmission)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	gender, err := league.ParseGender(r.URL.Query().Get("gender"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	key := cache.TeamsKey(gender)

	if s.cache != nil {
		var cached team.ListResponse
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("roster cache read failed")
		} else if hit {
			writeJSON(w, http.StatusOK, &cached)
			return
		}
	}

	resp, err := s.fetcher.FetchTeams(ctx, gender)
	if err != nil {
		s.log.Error().Err(err).Msg("fetching teams failed")
		writeError(w, http.StatusBadGateway, "upstream fetch failed")
		return
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, resp, cache.TeamsTTL); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("roster cache write failed")
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.fetcher.FetchSchedule(r.Context(), q)
	if err != nil {
		s.log.Error().Err(err).Msg("fetching schedule failed")
		writeError(w, http.StatusBadGateway, "upstream fetch failed")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRanking(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	q.Month = ""

	resp, err := s.fetcher.FetchRanking(r.Context(), q)
	if err != nil {
		s.log.Error().Err(err).Msg("fetching ranking failed")
		writeError(w, http.StatusBadGateway, "upstream fetch failed")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMyTeamICS(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	q.Month = ""

	teamName := r.URL.Query().Get("teamName")
	if teamName == "" {
		writeError(w, http.StatusBadRequest, "teamName query parameter is required")
		return
	}

	ics, err := s.fetcher.BuildTeamCalendar(r.Context(), q, teamName)
	if err != nil {
		s.log.Error().Err(err).Str("team", teamName).Msg("season calendar build failed")
		writeError(w, http.StatusBadGateway, "upstream fetch failed")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(ics))
}

func (s *Server) handleWelcomeSubmission(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "submission storage is not configured")
		return
	}

	var sub welcome.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := sub.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.Save(r.Context(), sub); err != nil {
		s.log.Error().Err(err).Msg("saving submission failed")
		writeError(w, http.StatusInternalServerError, "could not save submission")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]bool{"ok": true})
}

// queryFromRequest builds the league query from request parameters,
// falling back to the serving defaults for anything omitted.
func queryFromRequest(r *http.Request) (league.Query, error) {
	q := league.DefaultQuery()

	gender, err := league.ParseGender(r.URL.Query().Get("gender"))
	if err != nil {
		return league.Query{}, err
	}
	q.Gender = gender

	if season := r.URL.Query().Get("season"); season != "" {
		q.Season = season
	}
	if typ := r.URL.Query().Get("type"); typ != "" {
		q.Type = typ
	}
	q.Month = r.URL.Query().Get("month")

	return q, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
