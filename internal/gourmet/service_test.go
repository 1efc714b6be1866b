package gourmet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchscout/internal/clients/gourmetapi"
	"searchscout/internal/clients/ollama"
	"searchscout/internal/common/logger"
	"searchscout/internal/gourmet/intent"
	"searchscout/internal/gourmet/search"
)

func newTestService(t *testing.T, shops []map[string]interface{}) *Service {
	log := logger.NewTestLogger(t)

	ollamaServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response": "条件が読み取れませんでした。",
			"done":     true,
		})
	}))
	t.Cleanup(ollamaServer.Close)

	gourmetServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/genre/v1") || strings.HasPrefix(r.URL.Path, "/small_area/v1") {
			json.NewEncoder(w).Encode(map[string]interface{}{"results": map[string]interface{}{}})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": map[string]interface{}{"shop": shops},
		})
	}))
	t.Cleanup(gourmetServer.Close)

	ollamaClient := ollama.NewClient(ollama.Config{
		BaseURL: ollamaServer.URL, Model: "gpt-oss-20b", Timeout: 5 * time.Second,
		Temperature: 0.3, MaxTokens: 500,
	}, nil, log)
	gourmetClient := gourmetapi.NewClient(gourmetapi.Config{
		BaseURL: gourmetServer.URL, APIKey: "test", Timeout: 5 * time.Second,
	}, nil, log)

	interp, err := intent.NewInterpreter(ollamaClient, log)
	require.NoError(t, err)

	return NewService(
		intent.NewExtractor(log),
		interp,
		search.NewAggregator(gourmetClient, nil, search.Config{
			MaxRestaurants: 15, MasterTTL: time.Hour,
		}, log),
		search.NewPadder(log),
		Config{PaddingMinimum: 5, MaxRestaurants: 15},
		log,
	)
}

func TestSearchPadsWhenLiveResultsAreSparse(t *testing.T) {
	svc := newTestService(t, []map[string]interface{}{{
		"id":      "J001",
		"name":    "トラットリア・テスト",
		"address": "東京都新宿区新宿3-1-1",
		"genre":   map[string]string{"name": "イタリアン"},
	}})

	result := svc.Search(context.Background(), "新宿でイタリアン")

	assert.Equal(t, StatusCandidatesFound, result.Status)
	assert.Equal(t, intent.QueryTypeCompound, result.SearchParams.QueryType)
	require.Greater(t, len(result.Restaurants), 1)
	assert.Equal(t, "hp_J001", result.Restaurants[0].ID)
	assert.Equal(t, "curated", result.Restaurants[1].Source)
}

func TestSearchCapsResultCount(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.Search(context.Background(), "どこかいい店を教えて")

	assert.LessOrEqual(t, len(result.Restaurants), 15)
}

func TestSearchReportsNoResultsForUnmatchedConstraints(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.Search(context.Background(), "カレーの店")

	assert.Equal(t, StatusNoResults, result.Status)
	assert.Empty(t, result.Restaurants)
}
