package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"pokebattle/internal/db"
	"pokebattle/internal/domain"
)

type BattleRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewBattleRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *BattleRepository {
	return &BattleRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// Create persists one immutable battle record. The insert is a single
// statement, so a failure leaves nothing behind.
func (r *BattleRepository) Create(ctx context.Context, battle *domain.Battle) (*domain.Battle, error) {
	metrics, err := json.Marshal(battle.Metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal battle metrics: %w", err)
	}

	row, err := r.queries.CreateBattle(ctx, db.CreateBattleParams{
		AttackerID:       battle.AttackerID,
		DefenderID:       battle.DefenderID,
		WinnerID:         toNullInt64(battle.WinnerID),
		AlgorithmVersion: battle.AlgorithmVersion,
		RawMetrics:       string(metrics),
		CreatedAt:        time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create battle: %w", err)
	}

	created := *battle
	created.ID = row.ID
	created.CreatedAt = row.CreatedAt
	return &created, nil
}

// List returns the battle page ordered newest-first, with participant names
// resolved.
func (r *BattleRepository) List(ctx context.Context, limit, offset int) ([]domain.Battle, error) {
	rows, err := r.queries.ListBattles(ctx, db.ListBattlesParams{
		Limit:  int64(limit),
		Offset: int64(offset),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list battles: %w", err)
	}

	battles := make([]domain.Battle, 0, len(rows))
	for _, row := range rows {
		battle := domain.Battle{
			ID:               row.ID,
			AttackerID:       row.AttackerID,
			DefenderID:       row.DefenderID,
			WinnerID:         fromNullInt64(row.WinnerID),
			AttackerName:     row.AttackerName,
			DefenderName:     row.DefenderName,
			AlgorithmVersion: row.AlgorithmVersion,
			CreatedAt:        row.CreatedAt,
		}
		if row.WinnerName.Valid {
			name := row.WinnerName.String
			battle.WinnerName = &name
		}
		if err := json.Unmarshal([]byte(row.RawMetrics), &battle.Metrics); err != nil {
			r.logger.Warn().Err(err).Int64("battle_id", row.ID).Msg("failed to unmarshal battle metrics")
		}
		battles = append(battles, battle)
	}
	return battles, nil
}

func (r *BattleRepository) Count(ctx context.Context) (int, error) {
	count, err := r.queries.CountBattles(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count battles: %w", err)
	}
	return int(count), nil
}
