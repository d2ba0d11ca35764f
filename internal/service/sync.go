package service

import (
	"context"

	"github.com/rs/zerolog"

	"pokebattle/internal/api"
	"pokebattle/internal/domain"
	"pokebattle/internal/repository"
)

// PokeAPI is the remote-data surface the services depend on. Satisfied by
// *api.PokeAPIClient.
type PokeAPI interface {
	FetchPokemon(ctx context.Context, name string) (*api.PokemonSnapshot, error)
	GetStatChange(ctx context.Context, statURL string) (int, error)
}

type SyncService struct {
	client PokeAPI
	repo   *repository.PokemonRepository
	logger zerolog.Logger
}

func NewSyncService(client PokeAPI, repo *repository.PokemonRepository, logger zerolog.Logger) *SyncService {
	return &SyncService{client: client, repo: repo, logger: logger}
}

// Sync fetches the latest snapshot for name and reconciles it into the store,
// replacing stats, types and abilities wholesale. A NotFound from the remote
// source propagates unchanged.
func (s *SyncService) Sync(ctx context.Context, name string) (*domain.Pokemon, error) {
	snapshot, err := s.client.FetchPokemon(ctx, name)
	if err != nil {
		return nil, err
	}

	// The stored row is keyed by the name casing the API returned, not the
	// caller's input casing.
	id := snapshot.ID
	p := &domain.Pokemon{
		Name:           snapshot.Name,
		PokeAPIID:      &id,
		BaseExperience: snapshot.BaseExperience,
		Height:         snapshot.Height,
		Weight:         snapshot.Weight,
	}
	for statName, value := range snapshot.Stats {
		p.Stats = append(p.Stats, domain.PokemonStat{
			Name:     statName,
			BaseStat: value,
			StatURL:  snapshot.StatURLs[statName],
		})
	}
	for _, typeName := range snapshot.Types {
		p.Types = append(p.Types, domain.PokemonType{Name: typeName})
	}
	for _, abilityName := range snapshot.Abilities {
		p.Abilities = append(p.Abilities, domain.PokemonAbility{Name: abilityName})
	}

	stored, err := s.repo.Replace(ctx, p)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("name", stored.Name).
		Int64("pokemon_id", stored.ID).
		Int("stats", len(stored.Stats)).
		Int("types", len(stored.Types)).
		Int("abilities", len(stored.Abilities)).
		Msg("pokemon synchronized")

	return stored, nil
}
