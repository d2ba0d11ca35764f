package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"pokebattle/internal/constants"
)

type Config struct {
	PokeAPIBase string
	DBPath      string
	ServerPort  string
	LogLevel    string
	CacheTTL    time.Duration
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		PokeAPIBase: getEnv("POKEAPI_BASE", "https://pokeapi.co/api/v2"),
		DBPath:      getEnv("DB_PATH", "pokebattle.db"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CacheTTL:    constants.DefaultCacheTTL,
	}

	if raw := os.Getenv("CACHE_TTL_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			logger.Warn().Str("value", raw).Msg("invalid CACHE_TTL_SECONDS, using default")
		} else {
			cfg.CacheTTL = time.Duration(seconds) * time.Second
		}
	}

	logger.Info().
		Str("pokeapi_base", cfg.PokeAPIBase).
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
