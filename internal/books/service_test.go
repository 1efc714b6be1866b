package books

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

	"searchscout/internal/books/intent"
	"searchscout/internal/books/search"
	"searchscout/internal/clients/googlebooks"
	"searchscout/internal/clients/ollama"
	"searchscout/internal/clients/openbd"
	"searchscout/internal/common/logger"
)

const knownISBN = "9784101001548"

func newTestService(t *testing.T, ollamaResponse string, volumes map[string]interface{}) *Service {
	log := logger.NewTestLogger(t)

	ollamaServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"response": ollamaResponse, "done": true})
	}))
	t.Cleanup(ollamaServer.Close)

	booksServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(volumes)
	}))
	t.Cleanup(booksServer.Close)

	catalogServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Query().Get("isbn"), knownISBN) {
			json.NewEncoder(w).Encode([]interface{}{nil})
			return
		}
		json.NewEncoder(w).Encode([]map[string]interface{}{{
			"summary": map[string]string{
				"isbn":      knownISBN,
				"title":     "ノルウェイの森",
				"author":    "村上春樹／著",
				"publisher": "新潮社",
			},
		}})
	}))
	t.Cleanup(catalogServer.Close)

	ollamaClient := ollama.NewClient(ollama.Config{
		BaseURL: ollamaServer.URL, Model: "gpt-oss-20b", Timeout: 5 * time.Second,
		Temperature: 0.3, MaxTokens: 500,
	}, nil, log)
	booksClient := googlebooks.NewClient(googlebooks.Config{BaseURL: booksServer.URL, Timeout: 5 * time.Second}, nil, log)
	catalogClient := openbd.NewClient(openbd.Config{BaseURL: catalogServer.URL, Timeout: 5 * time.Second}, nil, log)

	interp, err := intent.NewInterpreter(ollamaClient, log)
	require.NoError(t, err)

	return NewService(
		intent.NewExtractor(log),
		interp,
		search.NewAggregator(booksClient, catalogClient, nil, search.Config{
			MaxCandidates: 20, AccumulateThreshold: 15, SecondaryThreshold: 10,
			MaxConcurrentLookups: 3, CacheTTL: time.Minute,
		}, log),
		search.NewPadder(log),
		catalogClient,
		Config{PaddingThreshold: 10, MaxCandidates: 20},
		log,
	)
}

func emptyVolumes() map[string]interface{} {
	return map[string]interface{}{"totalItems": 0, "items": []interface{}{}}
}

func TestSearchConfirmsISBNFromInterpreter(t *testing.T) {
	svc := newTestService(t, `{"title": null, "author": null, "isbn": "`+knownISBN+`", "category": null}`, emptyVolumes())

	result := svc.Search(context.Background(), "このISBNの本を探して")

	assert.Equal(t, StatusISBNConfirmed, result.Status)
	assert.Equal(t, knownISBN, result.ISBN)
	require.NotNil(t, result.BookInfo)
	assert.Equal(t, "ノルウェイの森", result.BookInfo.Title)
	assert.Empty(t, result.Candidates)
}

func TestSearchPadsSparseResults(t *testing.T) {
	svc := newTestService(t, "unused", emptyVolumes())

	result := svc.Search(context.Background(), "村上春樹")

	assert.Equal(t, StatusCandidatesFound, result.Status)
	require.NotEmpty(t, result.Candidates)
	for _, c := range result.Candidates {
		assert.Contains(t, c.Author, "村上春樹")
	}
}

func TestSearchReportsNoResults(t *testing.T) {
	svc := newTestService(t, "すみません、わかりませんでした。", emptyVolumes())

	result := svc.Search(context.Background(), "zzzz qqqq")

	assert.Equal(t, StatusNoResults, result.Status)
	assert.Empty(t, result.Candidates)
	assert.Equal(t, "zzzz qqqq", result.ExtractedInfo.Title)
}

func TestBookInfoReturnsNilForUnknownISBN(t *testing.T) {
	svc := newTestService(t, "unused", emptyVolumes())

	assert.Nil(t, svc.BookInfo(context.Background(), "9780000000000"))
	require.NotNil(t, svc.BookInfo(context.Background(), knownISBN))
}
