package googlebooks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"searchscout/internal/common/logger"
	"searchscout/internal/common/observability"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *sdkmetric.ManualReader) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	reader := sdkmetric.NewManualReader()
	obs := observability.NewWithReader("searchscout-test", reader)
	client := NewClient(Config{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, obs, logger.NewTestLogger(t))
	return client, reader
}

func upstreamOutcomes(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	counts := make(map[string]int64)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != "upstream.calls" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				source, _ := dp.Attributes.Value(attribute.Key("source"))
				outcome, _ := dp.Attributes.Value(attribute.Key("outcome"))
				counts[source.AsString()+"/"+outcome.AsString()] = dp.Value
			}
		}
	}
	return counts
}

func TestSearchRecordsSuccessfulUpstreamCall(t *testing.T) {
	client, reader := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"totalItems":1,"items":[{"volumeInfo":{"title":"ノルウェイの森","authors":["村上春樹"]}}]}`))
	})

	volumes, err := client.Search(context.Background(), "ノルウェイの森", 10)
	require.NoError(t, err)
	require.Len(t, volumes, 1)
	assert.Equal(t, "ノルウェイの森", volumes[0].Title)

	counts := upstreamOutcomes(t, reader)
	assert.Equal(t, int64(1), counts["book_search/success"])
	assert.Zero(t, counts["book_search/error"])
}

func TestSearchRecordsFailedUpstreamCall(t *testing.T) {
	client, reader := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Search(context.Background(), "ノルウェイの森", 10)
	require.Error(t, err)

	counts := upstreamOutcomes(t, reader)
	assert.Equal(t, int64(1), counts["book_search/error"])
	assert.Zero(t, counts["book_search/success"])
}

func TestSearchWithNilObservability(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"totalItems":0}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, nil, logger.NewTestLogger(t))

	volumes, err := client.Search(context.Background(), "zzzz", 10)
	require.NoError(t, err)
	assert.Empty(t, volumes)
}
