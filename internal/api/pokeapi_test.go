package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokebattle/internal/cache"
	"pokebattle/internal/config"
	"pokebattle/internal/domain"
)

func newTestClient(baseURL string) *PokeAPIClient {
	cfg := &config.Config{PokeAPIBase: baseURL, CacheTTL: time.Minute}
	return NewPokeAPIClient(cfg, cache.NewMemory(64, time.Minute), zerolog.Nop())
}

func pokemonBody(id int64, name string, statURL string) []byte {
	payload := map[string]any{
		"id":              id,
		"name":            name,
		"base_experience": 100,
		"height":          4,
		"weight":          60,
		"stats": []map[string]any{
			{"base_stat": 55, "stat": map[string]string{"name": "attack", "url": statURL}},
			{"base_stat": 90, "stat": map[string]string{"name": "speed", "url": ""}},
		},
		"types":     []map[string]any{{"type": map[string]string{"name": "electric"}}},
		"abilities": []map[string]any{{"ability": map[string]string{"name": "static"}}},
	}
	body, _ := json.Marshal(payload)
	return body
}

func TestFetchPokemon(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/pokemon/pikachu", r.URL.Path)
		w.Write(pokemonBody(25, "pikachu", ""))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	snapshot, err := client.FetchPokemon(context.Background(), "Pikachu")
	require.NoError(t, err)
	assert.Equal(t, int64(25), snapshot.ID)
	assert.Equal(t, "pikachu", snapshot.Name)
	require.NotNil(t, snapshot.BaseExperience)
	assert.Equal(t, int64(100), *snapshot.BaseExperience)
	assert.Equal(t, map[string]int{"attack": 55, "speed": 90}, snapshot.Stats)
	assert.Equal(t, []string{"electric"}, snapshot.Types)
	assert.Equal(t, []string{"static"}, snapshot.Abilities)

	// second fetch of any casing of the same name is served from cache
	_, err = client.FetchPokemon(context.Background(), "PIKACHU")
	require.NoError(t, err)
	assert.Equal(t, int64(1), calls.Load())
}

func TestFetchPokemonNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.FetchPokemon(context.Background(), "missingno")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Contains(t, err.Error(), "missingno")
}

func TestFetchPokemonMissingRequiredFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "pikachu"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.FetchPokemon(context.Background(), "pikachu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required fields")
}

func TestFetchStatDetailsAbsence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	// missing stat details are not an error
	raw, err := client.FetchStatDetails(context.Background(), srv.URL+"/stat/attack")
	require.NoError(t, err)
	assert.Empty(t, raw)

	change, err := client.GetStatChange(context.Background(), srv.URL+"/stat/attack")
	require.NoError(t, err)
	assert.Equal(t, 0, change)
}

func TestGetStatChange(t *testing.T) {
	tests := []struct {
		name     string
		increase []int
		decrease []int
		want     int
	}{
		{name: "increase wins over decrease", increase: []int{2, 1}, decrease: []int{3}, want: 2},
		{name: "decrease is negated", decrease: []int{3, 1}, want: -3},
		{name: "no affecting moves", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write(statDetailBody(tt.increase, tt.decrease))
			}))
			defer srv.Close()

			client := newTestClient(srv.URL)

			change, err := client.GetStatChange(context.Background(), srv.URL+"/stat/attack")
			require.NoError(t, err)
			assert.Equal(t, tt.want, change)
		})
	}
}

func TestGetStatChangeCached(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write(statDetailBody([]int{1}, nil))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	url := srv.URL + "/stat/attack"

	for i := 0; i < 3; i++ {
		change, err := client.GetStatChange(context.Background(), url)
		require.NoError(t, err)
		assert.Equal(t, 1, change)
	}
	assert.Equal(t, int64(1), calls.Load())
}

func TestFetchPokemonTransportError(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")

	_, err := client.FetchPokemon(context.Background(), "pikachu")
	require.Error(t, err)
	assert.False(t, domain.IsNotFound(err))
	assert.True(t, strings.Contains(err.Error(), "pokeapi request failed"))
}

func statDetailBody(increase, decrease []int) []byte {
	moves := func(changes []int) string {
		parts := make([]string, len(changes))
		for i, c := range changes {
			parts[i] = fmt.Sprintf(`{"change": %d, "move": {"name": "move-%d"}}`, c, i)
		}
		return "[" + strings.Join(parts, ",") + "]"
	}
	return []byte(fmt.Sprintf(
		`{"affecting_moves": {"increase": %s, "decrease": %s}}`,
		moves(increase), moves(decrease),
	))
}
