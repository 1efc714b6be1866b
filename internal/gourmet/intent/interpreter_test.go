package intent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchscout/internal/clients/ollama"
	"searchscout/internal/common/logger"
)

func newTestInterpreter(t *testing.T, handler http.HandlerFunc) *Interpreter {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := ollama.NewClient(ollama.Config{
		BaseURL:     server.URL,
		Model:       "gpt-oss-20b",
		Timeout:     5 * time.Second,
		Temperature: 0.3,
		MaxTokens:   500,
	}, nil, logger.NewTestLogger(t))

	interp, err := NewInterpreter(client, logger.NewTestLogger(t))
	require.NoError(t, err)
	return interp
}

func TestInterpretParsesWellFormedOutput(t *testing.T) {
	interp := newTestInterpreter(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response": `{"location": "新宿", "cuisine": "イタリアン", "category": null, "budget": "low", "party_size": 4, "time_preference": "dinner"}`,
			"done":     true,
		})
	})

	result := interp.Interpret(context.Background(), "新宿あたりで安くイタリアンを4人で夜に")

	assert.Equal(t, "新宿", result.Location)
	assert.Equal(t, "イタリアン", result.Cuisine)
	assert.Empty(t, result.Category)
	assert.Equal(t, BudgetLow, result.Budget)
	assert.Equal(t, 4, result.PartySize)
	assert.Equal(t, TimeDinner, result.TimePreference)
}

func TestInterpretToleratesSurroundingCommentary(t *testing.T) {
	interp := newTestInterpreter(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response": "抽出結果は以下です。\n{\"location\": \"銀座\", \"cuisine\": null}\nよろしくお願いします。",
			"done":     true,
		})
	})

	result := interp.Interpret(context.Background(), "銀座のどこか")

	assert.Equal(t, "銀座", result.Location)
	assert.Empty(t, result.Cuisine)
}

func TestInterpretNormalizesLiteralNullStrings(t *testing.T) {
	interp := newTestInterpreter(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response": `{"location": "null", "cuisine": "寿司", "budget": "null"}`,
			"done":     true,
		})
	})

	result := interp.Interpret(context.Background(), "寿司")

	assert.Empty(t, result.Location)
	assert.Equal(t, "寿司", result.Cuisine)
	assert.Empty(t, result.Budget)
}

func TestInterpretStringPartySize(t *testing.T) {
	interp := newTestInterpreter(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response": `{"cuisine": "焼肉", "party_size": "6"}`,
			"done":     true,
		})
	})

	result := interp.Interpret(context.Background(), "6人で焼肉")

	assert.Equal(t, 6, result.PartySize)
}

func TestInterpretServerErrorYieldsEmptyIntent(t *testing.T) {
	interp := newTestInterpreter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	result := interp.Interpret(context.Background(), "どこかいい店")

	assert.True(t, result.Empty())
}

func TestInterpretGarbageOutputYieldsEmptyIntent(t *testing.T) {
	interp := newTestInterpreter(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response": "すみません、条件が読み取れませんでした。",
			"done":     true,
		})
	})

	result := interp.Interpret(context.Background(), "どこかいい店")

	assert.True(t, result.Empty())
}
