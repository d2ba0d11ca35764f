package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"pokebattle/internal/constants"
	"pokebattle/internal/domain"
	"pokebattle/internal/pagination"
	"pokebattle/internal/repository"
)

type BattleService struct {
	sync    *SyncService
	scorer  *Scorer
	battles *repository.BattleRepository
	logger  zerolog.Logger
}

func NewBattleService(sync *SyncService, scorer *Scorer, battles *repository.BattleRepository, logger zerolog.Logger) *BattleService {
	return &BattleService{sync: sync, scorer: scorer, battles: battles, logger: logger}
}

// RunBattle synchronizes both sides, scores them and persists one battle
// record. The two syncs run concurrently; they touch disjoint rows and each
// commits its own transaction, so a failed side never leaves a partial
// battle record behind — the battle row is only written after both finish.
func (s *BattleService) RunBattle(ctx context.Context, attackerName, defenderName string) (*domain.Battle, error) {
	if strings.TrimSpace(attackerName) == "" || strings.TrimSpace(defenderName) == "" {
		return nil, domain.ErrValidation
	}

	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	var attacker, defender *domain.Pokemon
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		attacker, err = s.sync.Sync(gctx, attackerName)
		return err
	})
	g.Go(func() error {
		var err error
		defender, err = s.sync.Sync(gctx, defenderName)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	winner, metrics, err := s.scorer.ComputeBattle(ctx, attacker, defender)
	if err != nil {
		return nil, fmt.Errorf("failed to compute battle: %w", err)
	}

	battle := &domain.Battle{
		AttackerID:       attacker.ID,
		DefenderID:       defender.ID,
		AttackerName:     attacker.Name,
		DefenderName:     defender.Name,
		AlgorithmVersion: metrics.AlgorithmVersion,
		Metrics:          metrics,
	}
	if winner != nil {
		battle.WinnerID = &winner.ID
		battle.WinnerName = &winner.Name
	}

	created, err := s.battles.Create(ctx, battle)
	if err != nil {
		return nil, err
	}

	winnerName := "draw"
	if created.WinnerName != nil {
		winnerName = *created.WinnerName
	}
	s.logger.Info().
		Int64("battle_id", created.ID).
		Str("attacker", created.AttackerName).
		Str("defender", created.DefenderName).
		Str("winner", winnerName).
		Msg("battle created")

	return created, nil
}

type BattlePage struct {
	Battles []domain.Battle
	Info    pagination.Info
}

// ListBattles returns a newest-first page of battle records.
func (s *BattleService) ListBattles(ctx context.Context, page, pageSize int) (*BattlePage, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	total, err := s.battles.Count(ctx)
	if err != nil {
		return nil, err
	}

	info := pagination.New(page, pageSize, total)

	battles, err := s.battles.List(ctx, info.Limit(), info.Offset())
	if err != nil {
		return nil, err
	}

	return &BattlePage{Battles: battles, Info: info}, nil
}
