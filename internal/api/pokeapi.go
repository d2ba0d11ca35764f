package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"

	"pokebattle/internal/cache"
	"pokebattle/internal/config"
	"pokebattle/internal/constants"
	"pokebattle/internal/domain"
)

// PokemonSnapshot is the typed view of one PokeAPI pokemon fetch. It is
// transient: built fresh from every fetch or cache hit, never persisted.
type PokemonSnapshot struct {
	ID             int64
	Name           string
	BaseExperience *int64
	Height         *int64
	Weight         *int64
	Stats          map[string]int
	StatURLs       map[string]string
	Types          []string
	Abilities      []string
}

type PokeAPIClient struct {
	baseURL string
	cache   cache.Cache
	client  *fasthttp.Client
	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter
	logger  zerolog.Logger
}

func NewPokeAPIClient(cfg *config.Config, payloadCache cache.Cache, logger zerolog.Logger) *PokeAPIClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "pokeapi",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return &PokeAPIClient{
		baseURL: strings.TrimRight(cfg.PokeAPIBase, "/"),
		cache:   payloadCache,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		breaker: breaker,
		limiter: rate.NewLimiter(rate.Limit(constants.APIRequestsPerSecond), constants.APIRequestBurst),
		logger:  logger,
	}
}

// FetchPokemon returns the snapshot for name, serving the raw payload from
// cache when present. A non-200 response means the pokemon does not exist.
func (c *PokeAPIClient) FetchPokemon(ctx context.Context, name string) (*PokemonSnapshot, error) {
	lowered := strings.ToLower(name)
	key := "pokeapi:" + lowered

	if raw, ok := c.cache.Get(key); ok {
		c.logger.Debug().Str("name", lowered).Msg("pokemon payload served from cache")
		return parseSnapshot(raw)
	}

	status, body, err := c.get(ctx, fmt.Sprintf("%s/pokemon/%s", c.baseURL, lowered))
	if err != nil {
		return nil, err
	}
	if status != fasthttp.StatusOK {
		return nil, &domain.NotFoundError{Name: name}
	}

	c.cache.Set(key, body)
	return parseSnapshot(body)
}

// FetchStatDetails returns the raw stat detail payload for statURL. A non-200
// response yields an empty payload and no error: missing stat details are a
// normal condition, not a fault.
func (c *PokeAPIClient) FetchStatDetails(ctx context.Context, statURL string) ([]byte, error) {
	key := "pokeapi:stat:" + statURL

	if raw, ok := c.cache.Get(key); ok {
		return raw, nil
	}

	status, body, err := c.get(ctx, statURL)
	if err != nil {
		return nil, err
	}
	if status != fasthttp.StatusOK {
		c.logger.Debug().Str("url", statURL).Int("status", status).Msg("no stat details available")
		return nil, nil
	}

	c.cache.Set(key, body)
	return body, nil
}

// GetStatChange resolves the signed stat change for statURL from its
// affecting moves. Increase moves take precedence over decrease moves; the
// magnitude comes from the first entry of whichever list is chosen.
func (c *PokeAPIClient) GetStatChange(ctx context.Context, statURL string) (int, error) {
	raw, err := c.FetchStatDetails(ctx, statURL)
	if err != nil {
		return 0, err
	}
	if len(raw) == 0 {
		return 0, nil
	}

	var detail statDetailPayload
	if err := json.Unmarshal(raw, &detail); err != nil {
		return 0, fmt.Errorf("failed to parse stat details: %w", err)
	}

	if len(detail.AffectingMoves.Increase) > 0 {
		return detail.AffectingMoves.Increase[0].Change, nil
	}
	if len(detail.AffectingMoves.Decrease) > 0 {
		return -detail.AffectingMoves.Decrease[0].Change, nil
	}
	return 0, nil
}

type fetchResult struct {
	status int
	body   []byte
}

func (c *PokeAPIClient) get(ctx context.Context, url string) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, err
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()
		defer fasthttp.ReleaseRequest(req)
		defer fasthttp.ReleaseResponse(resp)

		req.SetRequestURI(url)
		req.Header.SetMethod(fasthttp.MethodGet)

		deadline, ok := ctx.Deadline()
		if !ok {
			deadline = time.Now().Add(constants.ExternalAPITimeout)
		}
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}

		// Non-200 statuses are valid answers (unknown pokemon, missing stat
		// details), so only transport failures count against the breaker.
		body := make([]byte, len(resp.Body()))
		copy(body, resp.Body())
		return fetchResult{status: resp.StatusCode(), body: body}, nil
	})
	if err != nil {
		return 0, nil, fmt.Errorf("pokeapi request failed: %w", err)
	}

	res := result.(fetchResult)
	return res.status, res.body, nil
}

type pokemonPayload struct {
	ID             *int64 `json:"id"`
	Name           string `json:"name"`
	BaseExperience *int64 `json:"base_experience"`
	Height         *int64 `json:"height"`
	Weight         *int64 `json:"weight"`
	Stats          []struct {
		BaseStat int `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"stat"`
	} `json:"stats"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability struct {
			Name string `json:"name"`
		} `json:"ability"`
	} `json:"abilities"`
}

type statDetailPayload struct {
	AffectingMoves struct {
		Increase []moveStatChange `json:"increase"`
		Decrease []moveStatChange `json:"decrease"`
	} `json:"affecting_moves"`
}

type moveStatChange struct {
	Change int `json:"change"`
}

func parseSnapshot(raw []byte) (*PokemonSnapshot, error) {
	var payload pokemonPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse pokemon payload: %w", err)
	}
	if payload.ID == nil || payload.Name == "" {
		return nil, fmt.Errorf("pokemon payload missing required fields")
	}

	snapshot := &PokemonSnapshot{
		ID:             *payload.ID,
		Name:           payload.Name,
		BaseExperience: payload.BaseExperience,
		Height:         payload.Height,
		Weight:         payload.Weight,
		Stats:          make(map[string]int, len(payload.Stats)),
		StatURLs:       make(map[string]string, len(payload.Stats)),
	}
	for _, s := range payload.Stats {
		snapshot.Stats[s.Stat.Name] = s.BaseStat
		snapshot.StatURLs[s.Stat.Name] = s.Stat.URL
	}
	for _, t := range payload.Types {
		snapshot.Types = append(snapshot.Types, t.Type.Name)
	}
	for _, a := range payload.Abilities {
		snapshot.Abilities = append(snapshot.Abilities, a.Ability.Name)
	}
	return snapshot, nil
}
