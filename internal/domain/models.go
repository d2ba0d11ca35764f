package domain

import (
	"time"
)

type Pokemon struct {
	ID             int64
	Name           string
	PokeAPIID      *int64
	BaseExperience *int64
	Height         *int64
	Weight         *int64
	Stats          []PokemonStat
	Types          []PokemonType
	Abilities      []PokemonAbility
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BaseStats returns the stat-name -> base-value view consumed by scoring.
func (p *Pokemon) BaseStats() map[string]int {
	stats := make(map[string]int, len(p.Stats))
	for _, s := range p.Stats {
		stats[s.Name] = s.BaseStat
	}
	return stats
}

type PokemonStat struct {
	PokemonID int64
	Name      string
	BaseStat  int
	StatURL   string // stat detail resource, empty when the API gave none
}

type PokemonType struct {
	PokemonID int64
	Name      string
}

type PokemonAbility struct {
	PokemonID int64
	Name      string
}

type Battle struct {
	ID               int64
	AttackerID       int64
	DefenderID       int64
	WinnerID         *int64 // nil encodes a draw
	AttackerName     string
	DefenderName     string
	WinnerName       *string
	AlgorithmVersion string
	Metrics          BattleMetrics
	CreatedAt        time.Time
}

// BattleMetrics is the persisted raw_metrics payload and the API-visible
// metrics field. Key names are a compatibility contract.
type BattleMetrics struct {
	AttackerScore       float64        `json:"attacker_score"`
	DefenderScore       float64        `json:"defender_score"`
	AttackerStatChanges map[string]int `json:"attacker_stat_changes"`
	DefenderStatChanges map[string]int `json:"defender_stat_changes"`
	AlgorithmVersion    string         `json:"algorithm_version"`
}
