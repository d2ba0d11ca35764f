package fx

import (
	"database/sql"

	"go.uber.org/fx"

	"pokebattle/internal/api"
	"pokebattle/internal/cache"
	"pokebattle/internal/config"
	"pokebattle/internal/constants"
	"pokebattle/internal/database"
	"pokebattle/internal/db"
	"pokebattle/internal/logger"
	"pokebattle/internal/repository"
	"pokebattle/internal/server"
	"pokebattle/internal/service"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

func ProvideCache(cfg *config.Config) cache.Cache {
	return cache.NewMemory(constants.CacheSize, cfg.CacheTTL)
}

func ProvidePokeAPI(client *api.PokeAPIClient) service.PokeAPI {
	return client
}

func ProvideBattleRunner(svc *service.BattleService) server.BattleRunner {
	return svc
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewPokemonRepository),
	fx.Provide(repository.NewBattleRepository),
	// api client
	fx.Provide(ProvideCache),
	fx.Provide(api.NewPokeAPIClient),
	fx.Provide(ProvidePokeAPI),
	// svc
	fx.Provide(service.DefaultScoringConfig),
	fx.Provide(service.NewSyncService),
	fx.Provide(service.NewScorer),
	fx.Provide(service.NewBattleService),
	// server
	fx.Provide(ProvideBattleRunner),
	fx.Provide(server.New),
)
