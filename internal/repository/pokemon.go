package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"pokebattle/internal/db"
	"pokebattle/internal/domain"
)

type PokemonRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewPokemonRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *PokemonRepository {
	return &PokemonRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// Replace upserts the pokemon row and reconciles its stats, types and
// abilities against p inside one transaction: names present are upserted,
// stored names absent from p are deleted. Either everything commits or
// nothing does.
func (r *PokemonRepository) Replace(ctx context.Context, p *domain.Pokemon) (*domain.Pokemon, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	now := time.Now()
	row, err := qtx.UpsertPokemon(ctx, db.UpsertPokemonParams{
		Name:           p.Name,
		PokeapiID:      toNullInt64(p.PokeAPIID),
		BaseExperience: toNullInt64(p.BaseExperience),
		Height:         toNullInt64(p.Height),
		Weight:         toNullInt64(p.Weight),
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert pokemon %s: %w", p.Name, err)
	}

	wantStats := make(map[string]bool, len(p.Stats))
	for _, s := range p.Stats {
		wantStats[s.Name] = true
		err := qtx.UpsertPokemonStat(ctx, db.UpsertPokemonStatParams{
			PokemonID: row.ID,
			Name:      s.Name,
			BaseStat:  int64(s.BaseStat),
			StatUrl:   s.StatURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to upsert stat %s: %w", s.Name, err)
		}
	}

	wantTypes := make(map[string]bool, len(p.Types))
	for _, t := range p.Types {
		wantTypes[t.Name] = true
		err := qtx.CreatePokemonType(ctx, db.CreatePokemonTypeParams{PokemonID: row.ID, Name: t.Name})
		if err != nil {
			return nil, fmt.Errorf("failed to create type %s: %w", t.Name, err)
		}
	}

	wantAbilities := make(map[string]bool, len(p.Abilities))
	for _, a := range p.Abilities {
		wantAbilities[a.Name] = true
		err := qtx.CreatePokemonAbility(ctx, db.CreatePokemonAbilityParams{PokemonID: row.ID, Name: a.Name})
		if err != nil {
			return nil, fmt.Errorf("failed to create ability %s: %w", a.Name, err)
		}
	}

	if err := r.deleteStale(ctx, qtx, row.ID, wantStats, wantTypes, wantAbilities); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit pokemon replace: %w", err)
	}

	return r.load(ctx, row)
}

// GetByName looks up a pokemon by name, case-insensitively, with all
// relations loaded.
func (r *PokemonRepository) GetByName(ctx context.Context, name string) (*domain.Pokemon, error) {
	row, err := r.queries.GetPokemonByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return r.load(ctx, row)
}

func (r *PokemonRepository) deleteStale(ctx context.Context, qtx *db.Queries, pokemonID int64, stats, types, abilities map[string]bool) error {
	existingStats, err := qtx.ListPokemonStats(ctx, pokemonID)
	if err != nil {
		return fmt.Errorf("failed to list stats: %w", err)
	}
	for _, s := range existingStats {
		if !stats[s.Name] {
			if err := qtx.DeletePokemonStat(ctx, db.DeletePokemonStatParams{PokemonID: pokemonID, Name: s.Name}); err != nil {
				return fmt.Errorf("failed to delete stale stat %s: %w", s.Name, err)
			}
		}
	}

	existingTypes, err := qtx.ListPokemonTypes(ctx, pokemonID)
	if err != nil {
		return fmt.Errorf("failed to list types: %w", err)
	}
	for _, t := range existingTypes {
		if !types[t.Name] {
			if err := qtx.DeletePokemonType(ctx, db.DeletePokemonTypeParams{PokemonID: pokemonID, Name: t.Name}); err != nil {
				return fmt.Errorf("failed to delete stale type %s: %w", t.Name, err)
			}
		}
	}

	existingAbilities, err := qtx.ListPokemonAbilities(ctx, pokemonID)
	if err != nil {
		return fmt.Errorf("failed to list abilities: %w", err)
	}
	for _, a := range existingAbilities {
		if !abilities[a.Name] {
			if err := qtx.DeletePokemonAbility(ctx, db.DeletePokemonAbilityParams{PokemonID: pokemonID, Name: a.Name}); err != nil {
				return fmt.Errorf("failed to delete stale ability %s: %w", a.Name, err)
			}
		}
	}

	return nil
}

func (r *PokemonRepository) load(ctx context.Context, row db.Pokemon) (*domain.Pokemon, error) {
	p := &domain.Pokemon{
		ID:             row.ID,
		Name:           row.Name,
		PokeAPIID:      fromNullInt64(row.PokeapiID),
		BaseExperience: fromNullInt64(row.BaseExperience),
		Height:         fromNullInt64(row.Height),
		Weight:         fromNullInt64(row.Weight),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}

	stats, err := r.queries.ListPokemonStats(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stats: %w", err)
	}
	for _, s := range stats {
		p.Stats = append(p.Stats, domain.PokemonStat{
			PokemonID: s.PokemonID,
			Name:      s.Name,
			BaseStat:  int(s.BaseStat),
			StatURL:   s.StatUrl,
		})
	}

	types, err := r.queries.ListPokemonTypes(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list types: %w", err)
	}
	for _, t := range types {
		p.Types = append(p.Types, domain.PokemonType{PokemonID: t.PokemonID, Name: t.Name})
	}

	abilities, err := r.queries.ListPokemonAbilities(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list abilities: %w", err)
	}
	for _, a := range abilities {
		p.Abilities = append(p.Abilities, domain.PokemonAbility{PokemonID: a.PokemonID, Name: a.Name})
	}

	return p, nil
}

func toNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func fromNullInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}
