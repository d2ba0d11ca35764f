package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"pokebattle/internal/constants"
	"pokebattle/internal/domain"
	"pokebattle/internal/middleware"
	"pokebattle/internal/pagination"
	"pokebattle/internal/service"
)

// BattleRunner is the orchestration surface the HTTP layer depends on.
// Satisfied by *service.BattleService.
type BattleRunner interface {
	RunBattle(ctx context.Context, attackerName, defenderName string) (*domain.Battle, error)
	ListBattles(ctx context.Context, page, pageSize int) (*service.BattlePage, error)
}

type Server struct {
	battles BattleRunner
	logger  zerolog.Logger
}

func New(battles BattleRunner, logger zerolog.Logger) *Server {
	return &Server{battles: battles, logger: logger}
}

func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID(s.logger))

	r.Get("/healthz", s.handleHealth)
	r.Route("/battles", func(r chi.Router) {
		r.Get("/", s.handleListBattles)
		r.Post("/battle", s.handleCreateBattle)
	})

	return r
}

type battleRequest struct {
	Attacker string `json:"attacker"`
	Defender string `json:"defender"`
}

type battleResponse struct {
	ID       int64                `json:"id"`
	Attacker string               `json:"attacker"`
	Defender string               `json:"defender"`
	Winner   *string              `json:"winner"`
	Metrics  domain.BattleMetrics `json:"metrics"`
}

func (s *Server) handleCreateBattle(w http.ResponseWriter, r *http.Request) {
	var req battleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	battle, err := s.battles.RunBattle(r.Context(), req.Attacker, req.Defender)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			s.writeError(w, http.StatusBadRequest, domain.ErrValidation.Error())
		case domain.IsNotFound(err):
			s.writeError(w, http.StatusNotFound, err.Error())
		default:
			s.logger.Error().Err(err).
				Str("attacker", req.Attacker).
				Str("defender", req.Defender).
				Msg("battle failed")
			s.writeError(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	s.writeJSON(w, http.StatusCreated, battleResponse{
		ID:       battle.ID,
		Attacker: battle.AttackerName,
		Defender: battle.DefenderName,
		Winner:   battle.WinnerName,
		Metrics:  battle.Metrics,
	})
}

type battleListItem struct {
	ID        int64   `json:"id"`
	Attacker  string  `json:"attacker"`
	Defender  string  `json:"defender"`
	Winner    *string `json:"winner"`
	CreatedAt string  `json:"created_at"`
}

// battleListResponse flattens the pagination fields at the top level
// alongside results, matching the historical response shape.
type battleListResponse struct {
	Results []battleListItem `json:"results"`
	pagination.Info
}

func (s *Server) handleListBattles(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", constants.DefaultPage)
	pageSize := queryInt(r, "page_size", constants.DefaultPageSize)

	result, err := s.battles.ListBattles(r.Context(), page, pageSize)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list battles")
		s.writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	items := make([]battleListItem, 0, len(result.Battles))
	for _, b := range result.Battles {
		items = append(items, battleListItem{
			ID:        b.ID,
			Attacker:  b.AttackerName,
			Defender:  b.DefenderName,
			Winner:    b.WinnerName,
			CreatedAt: b.CreatedAt.Format(time.RFC3339),
		})
	}

	s.writeJSON(w, http.StatusOK, battleListResponse{Results: items, Info: result.Info})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, map[string]string{"detail": detail})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
