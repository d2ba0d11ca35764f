package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokebattle/internal/api"
	"pokebattle/internal/domain"
)

// fakePokeAPI resolves stat changes from a fixed table and never touches the
// network.
type fakePokeAPI struct {
	changes map[string]int
}

func (f *fakePokeAPI) FetchPokemon(ctx context.Context, name string) (*api.PokemonSnapshot, error) {
	return nil, &domain.NotFoundError{Name: name}
}

func (f *fakePokeAPI) GetStatChange(ctx context.Context, statURL string) (int, error) {
	return f.changes[statURL], nil
}

func statsPokemon(name string, baseExperience int64, typeCount int, stats map[string]int) *domain.Pokemon {
	p := &domain.Pokemon{Name: name, BaseExperience: &baseExperience}
	for statName, value := range stats {
		p.Stats = append(p.Stats, domain.PokemonStat{Name: statName, BaseStat: value})
	}
	for i := 0; i < typeCount; i++ {
		p.Types = append(p.Types, domain.PokemonType{Name: string(rune('a' + i))})
	}
	return p
}

func newTestScorer(changes map[string]int) *Scorer {
	return NewScorer(DefaultScoringConfig(), &fakePokeAPI{changes: changes}, zerolog.Nop())
}

func TestComputeBattlePikachuVsBulbasaur(t *testing.T) {
	scorer := newTestScorer(nil)

	pikachu := statsPokemon("pikachu", 100, 1, map[string]int{
		"attack": 55, "special-attack": 50, "speed": 90,
		"defense": 40, "special-defense": 50, "hp": 35,
	})
	bulbasaur := statsPokemon("bulbasaur", 64, 1, map[string]int{
		"attack": 49, "special-attack": 65, "speed": 45,
		"defense": 49, "special-defense": 65, "hp": 45,
	})

	winner, metrics, err := scorer.ComputeBattle(context.Background(), pikachu, bulbasaur)
	require.NoError(t, err)

	require.NotNil(t, winner)
	assert.Equal(t, "pikachu", winner.Name)
	assert.InDelta(t, 216.0, metrics.AttackerScore, 1e-9)
	assert.InDelta(t, 178.5, metrics.DefenderScore, 1e-9)
	assert.Empty(t, metrics.AttackerStatChanges)
	assert.Empty(t, metrics.DefenderStatChanges)
	assert.Equal(t, "v1", metrics.AlgorithmVersion)
}

func TestComputeBattleTieIsSymmetric(t *testing.T) {
	scorer := newTestScorer(nil)

	flat := map[string]int{
		"attack": 50, "special-attack": 50, "speed": 50,
		"defense": 50, "special-defense": 50, "hp": 50,
	}
	a := statsPokemon("a", 80, 1, flat)
	b := statsPokemon("b", 80, 1, flat)

	winner, metrics, err := scorer.ComputeBattle(context.Background(), a, b)
	require.NoError(t, err)
	assert.Nil(t, winner)
	assert.InDelta(t, metrics.AttackerScore, metrics.DefenderScore, 1e-6)

	winner, _, err = scorer.ComputeBattle(context.Background(), b, a)
	require.NoError(t, err)
	assert.Nil(t, winner)
}

func TestScorePokemonNoModifiersKeepsBaseStats(t *testing.T) {
	scorer := newTestScorer(nil)

	p := statsPokemon("snorlax", 0, 1, map[string]int{"attack": 110, "hp": 160})
	score, changes, err := scorer.ScorePokemon(context.Background(), p, DefaultScoringConfig().AttackerWeights, 1)
	require.NoError(t, err)

	assert.Empty(t, changes)
	assert.InDelta(t, 110*1.2, score, 1e-9)
}

func TestApplyStatChangesTruncatesTowardZero(t *testing.T) {
	scorer := newTestScorer(map[string]int{
		"url-attack": 2,  // 55 * 1.5 = 82.5 -> 82
		"url-speed":  -1, // 90 * 0.75 = 67.5 -> 67
	})

	p := &domain.Pokemon{
		Name: "pikachu",
		Stats: []domain.PokemonStat{
			{Name: "attack", BaseStat: 55, StatURL: "url-attack"},
			{Name: "speed", BaseStat: 90, StatURL: "url-speed"},
			{Name: "hp", BaseStat: 35, StatURL: ""},
		},
	}

	score, changes, err := scorer.ScorePokemon(context.Background(), p, DefaultScoringConfig().AttackerWeights, 0)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"attack": 27, "speed": -23}, changes)
	// 82*1.2 + 67*1.0, no special-attack, no types, no base experience
	assert.InDelta(t, 82*1.2+67, score, 1e-9)
}

func TestApplyStatChangesUsesLinearFactorNotStageTable(t *testing.T) {
	// A stage table would map +6 to x4; the linear factor gives 1 + 6*0.25.
	scorer := newTestScorer(map[string]int{"url": 6})

	p := &domain.Pokemon{
		Name:  "mewtwo",
		Stats: []domain.PokemonStat{{Name: "attack", BaseStat: 100, StatURL: "url"}},
	}

	_, changes, err := scorer.ScorePokemon(context.Background(), p, map[string]float64{"attack": 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"attack": 150}, changes)
}

func TestTypeBonusMonotonic(t *testing.T) {
	scorer := newTestScorer(nil)
	stats := map[string]int{"attack": 50}

	var previous float64
	for typeCount := 1; typeCount <= 4; typeCount++ {
		p := statsPokemon("p", 0, typeCount, stats)
		score, _, err := scorer.ScorePokemon(context.Background(), p, DefaultScoringConfig().AttackerWeights, 2)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, previous)
		previous = score
	}
}

func TestTypeBonusNeverNegative(t *testing.T) {
	scorer := newTestScorer(nil)
	stats := map[string]int{"attack": 50}

	outnumbered := statsPokemon("p", 0, 1, stats)
	equal := statsPokemon("p", 0, 1, stats)

	scoreOutnumbered, _, err := scorer.ScorePokemon(context.Background(), outnumbered, DefaultScoringConfig().AttackerWeights, 3)
	require.NoError(t, err)
	scoreEqual, _, err := scorer.ScorePokemon(context.Background(), equal, DefaultScoringConfig().AttackerWeights, 1)
	require.NoError(t, err)

	assert.Equal(t, scoreEqual, scoreOutnumbered)
}

func TestScorePokemonMissingWeightedStatContributesZero(t *testing.T) {
	scorer := newTestScorer(nil)

	p := statsPokemon("magikarp", 0, 0, map[string]int{"splash": 999})
	score, _, err := scorer.ScorePokemon(context.Background(), p, DefaultScoringConfig().AttackerWeights, 0)
	require.NoError(t, err)
	assert.Zero(t, score)
}
