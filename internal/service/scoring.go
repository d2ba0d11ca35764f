package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"pokebattle/internal/domain"
)

// ScoringConfig holds the scoring constants. It is passed at construction
// and never mutated, so tests can run the scorer with overridden weights.
type ScoringConfig struct {
	AttackerWeights          map[string]float64
	DefenderWeights          map[string]float64
	TypeCountBonus           float64
	BaseExperienceMultiplier float64
	StatChangeFactor         float64
	AlgorithmVersion         string
}

func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		AttackerWeights: map[string]float64{
			"attack":         1.2,
			"special-attack": 1.1,
			"speed":          1.0,
		},
		DefenderWeights: map[string]float64{
			"defense":         1.2,
			"special-defense": 1.1,
			"hp":              1.0,
		},
		TypeCountBonus:           5,
		BaseExperienceMultiplier: 0.05,
		StatChangeFactor:         0.25,
		AlgorithmVersion:         "v1",
	}
}

type Scorer struct {
	cfg    ScoringConfig
	client PokeAPI
	logger zerolog.Logger
}

func NewScorer(cfg ScoringConfig, client PokeAPI, logger zerolog.Logger) *Scorer {
	return &Scorer{cfg: cfg, client: client, logger: logger}
}

// applyStatChanges recomputes each stat that has a stat URL resolving to a
// non-zero change as int(base * (1 + change*factor)). Truncation toward zero
// is deliberate: it affects score parity in edge cases.
func (s *Scorer) applyStatChanges(ctx context.Context, p *domain.Pokemon, baseStats map[string]int) (map[string]int, error) {
	modified := make(map[string]int, len(baseStats))
	for name, value := range baseStats {
		modified[name] = value
	}

	for _, stat := range p.Stats {
		if stat.StatURL == "" {
			continue
		}
		change, err := s.client.GetStatChange(ctx, stat.StatURL)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve stat change for %s: %w", stat.Name, err)
		}
		if change == 0 {
			continue
		}
		multiplier := 1.0 + float64(change)*s.cfg.StatChangeFactor
		modified[stat.Name] = int(float64(baseStats[stat.Name]) * multiplier)
	}

	return modified, nil
}

// ScorePokemon computes one side's score: weighted effective stats, plus a
// bonus for having strictly more types than the opponent, plus a base
// experience bonus. The returned changes map holds effective-minus-base
// deltas for metrics only.
func (s *Scorer) ScorePokemon(ctx context.Context, p *domain.Pokemon, weights map[string]float64, opponentTypeCount int) (float64, map[string]int, error) {
	baseStats := p.BaseStats()
	modified, err := s.applyStatChanges(ctx, p, baseStats)
	if err != nil {
		return 0, nil, err
	}

	var score float64
	for statName, weight := range weights {
		score += float64(modified[statName]) * weight
	}

	if extra := len(p.Types) - opponentTypeCount; extra > 0 {
		score += float64(extra) * s.cfg.TypeCountBonus
	}

	if p.BaseExperience != nil {
		score += float64(*p.BaseExperience) * s.cfg.BaseExperienceMultiplier
	}

	changes := make(map[string]int)
	for name, value := range modified {
		if value != baseStats[name] {
			changes[name] = value - baseStats[name]
		}
	}

	return score, changes, nil
}

// ComputeBattle scores both sides and declares a winner, or nil on a tie.
// The winner, when non-nil, is always one of the two arguments.
func (s *Scorer) ComputeBattle(ctx context.Context, attacker, defender *domain.Pokemon) (*domain.Pokemon, domain.BattleMetrics, error) {
	attackerScore, attackerChanges, err := s.ScorePokemon(ctx, attacker, s.cfg.AttackerWeights, len(defender.Types))
	if err != nil {
		return nil, domain.BattleMetrics{}, err
	}
	defenderScore, defenderChanges, err := s.ScorePokemon(ctx, defender, s.cfg.DefenderWeights, len(attacker.Types))
	if err != nil {
		return nil, domain.BattleMetrics{}, err
	}

	metrics := domain.BattleMetrics{
		AttackerScore:       attackerScore,
		DefenderScore:       defenderScore,
		AttackerStatChanges: attackerChanges,
		DefenderStatChanges: defenderChanges,
		AlgorithmVersion:    s.cfg.AlgorithmVersion,
	}

	s.logger.Debug().
		Str("attacker", attacker.Name).
		Str("defender", defender.Name).
		Float64("attacker_score", attackerScore).
		Float64("defender_score", defenderScore).
		Msg("battle scored")

	if math.Abs(attackerScore-defenderScore) < 1e-6 {
		return nil, metrics, nil
	}
	if attackerScore > defenderScore {
		return attacker, metrics, nil
	}
	return defender, metrics, nil
}
