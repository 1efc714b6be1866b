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

func newTestInterpreter(t *testing.T, handler http.HandlerFunc) (*Interpreter, *httptest.Server) {
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
	return interp, server
}

func TestInterpretParsesWellFormedOutput(t *testing.T) {
	interp, _ := newTestInterpreter(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response": `{"title": "雪国", "author": "川端康成", "isbn": null, "category": "novel"}`,
			"done":     true,
		})
	})

	result := interp.Interpret(context.Background(), "雪国みたいな本")

	assert.Equal(t, "雪国", result.Title)
	assert.Equal(t, "川端康成", result.Author)
	assert.Empty(t, result.ISBN)
	assert.Equal(t, "novel", result.Category)
}

func TestInterpretToleratesSurroundingCommentary(t *testing.T) {
	interp, _ := newTestInterpreter(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response": "はい、抽出しました。\n{\"title\": \"雪国\", \"author\": null}\n以上です。",
			"done":     true,
		})
	})

	result := interp.Interpret(context.Background(), "雪国")

	assert.Equal(t, "雪国", result.Title)
	assert.Empty(t, result.Author)
}

func TestInterpretNormalizesLiteralNullStrings(t *testing.T) {
	interp, _ := newTestInterpreter(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response": `{"title": "null", "author": "null", "isbn": "null", "category": "tech"}`,
			"done":     true,
		})
	})

	result := interp.Interpret(context.Background(), "何かの技術書")

	assert.Empty(t, result.Title)
	assert.Empty(t, result.Author)
	assert.Empty(t, result.ISBN)
	assert.Equal(t, "tech", result.Category)
}

func TestInterpretFallsBackToRawQueryOnServerError(t *testing.T) {
	interp, _ := newTestInterpreter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	result := interp.Interpret(context.Background(), "謎の検索クエリ")

	assert.Equal(t, "謎の検索クエリ", result.Title)
	assert.Empty(t, result.Author)
}

func TestInterpretFallsBackToRawQueryOnGarbageOutput(t *testing.T) {
	interp, _ := newTestInterpreter(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response": "すみません、わかりませんでした。",
			"done":     true,
		})
	})

	result := interp.Interpret(context.Background(), "謎の検索クエリ")

	assert.Equal(t, "謎の検索クエリ", result.Title)
}

func TestInterpretShortQueryGarbageYieldsEmptyIntent(t *testing.T) {
	interp, _ := newTestInterpreter(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response": "no json here",
			"done":     true,
		})
	})

	result := interp.Interpret(context.Background(), "ab")

	assert.True(t, result.Empty())
}

func TestIntentEmpty(t *testing.T) {
	assert.True(t, Intent{}.Empty())
	assert.False(t, Intent{Author: "村上春樹"}.Empty())
	assert.False(t, Intent{Category: "tech"}.Empty())
}
