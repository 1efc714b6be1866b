package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchscout/internal/clients/rakuten"
	"searchscout/internal/common/logger"
)

type stubSource struct {
	name  string
	quote *Quote
	err   error
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Quote(context.Context, string) (*Quote, error) {
	return s.quote, s.err
}

func TestCompareFlagsAllCheapestTies(t *testing.T) {
	c := NewComparator([]Source{
		stubSource{name: "a", quote: &Quote{Site: "a", TotalPrice: 1000}},
		stubSource{name: "b", quote: &Quote{Site: "b", TotalPrice: 1000}},
		stubSource{name: "c", quote: &Quote{Site: "c", TotalPrice: 1500}},
	}, logger.NewTestLogger(t))

	quotes := c.Compare(context.Background(), "9784062764742")

	require.Len(t, quotes, 3)
	assert.True(t, quotes[0].IsCheapest)
	assert.True(t, quotes[1].IsCheapest)
	assert.False(t, quotes[2].IsCheapest)
}

func TestCompareOmitsFailingAndEmptySources(t *testing.T) {
	c := NewComparator([]Source{
		stubSource{name: "a", err: errors.New("network down")},
		stubSource{name: "b", quote: nil},
		stubSource{name: "c", quote: &Quote{Site: "c", TotalPrice: 800}},
	}, logger.NewTestLogger(t))

	quotes := c.Compare(context.Background(), "9784062764742")

	require.Len(t, quotes, 1)
	assert.Equal(t, "c", quotes[0].Site)
	assert.True(t, quotes[0].IsCheapest)
}

func TestComparePreservesSourceOrder(t *testing.T) {
	c := NewComparator([]Source{
		stubSource{name: "first", quote: &Quote{Site: "first", TotalPrice: 2000}},
		stubSource{name: "second", quote: &Quote{Site: "second", TotalPrice: 1800}},
		stubSource{name: "third", quote: &Quote{Site: "third", TotalPrice: 2200}},
	}, logger.NewTestLogger(t))

	quotes := c.Compare(context.Background(), "001")

	require.Len(t, quotes, 3)
	assert.Equal(t, "first", quotes[0].Site)
	assert.Equal(t, "second", quotes[1].Site)
	assert.Equal(t, "third", quotes[2].Site)
}

func TestBookComparatorIsDeterministicPerISBN(t *testing.T) {
	c := NewBookComparator(nil, logger.NewTestLogger(t))

	first := c.Compare(context.Background(), "9784062764742")
	second := c.Compare(context.Background(), "9784062764742")

	assert.Equal(t, first, second)
	assert.Len(t, first, 8)
	for _, q := range first {
		assert.Equal(t, q.Price+q.Shipping, q.TotalPrice)
		assert.NotEmpty(t, q.URL)
		assert.NotEmpty(t, q.Condition)
	}
}

func TestGourmetComparatorCoversAllSources(t *testing.T) {
	c := NewGourmetComparator(logger.NewTestLogger(t))

	quotes := c.Compare(context.Background(), "gourmet_J001234567")

	require.Len(t, quotes, 4)
	cheapestCount := 0
	for _, q := range quotes {
		if q.IsCheapest {
			cheapestCount++
		}
	}
	assert.GreaterOrEqual(t, cheapestCount, 1)
}

func TestLiveSourceDegradesToSimulatedOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	live := rakuten.NewClient(rakuten.Config{
		BaseURL:       server.URL,
		ApplicationID: "test-app-id",
		Timeout:       2 * time.Second,
	}, nil, logger.NewTestLogger(t))

	c := NewBookComparator(live, logger.NewTestLogger(t))
	quotes := c.Compare(context.Background(), "9784062764742")

	require.Len(t, quotes, 8)
	found := false
	for _, q := range quotes {
		if q.Site == "楽天ブックス" {
			found = true
			assert.Greater(t, q.Price, 0)
		}
	}
	assert.True(t, found)
}

func TestLiveSourceUsesRealOffer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"Items": []map[string]interface{}{
				{"Item": map[string]interface{}{
					"itemPrice":    4500,
					"postageFlag":  1,
					"availability": "1",
					"itemUrl":      "https://books.rakuten.co.jp/rb/1234567/",
				}},
			},
		})
	}))
	t.Cleanup(server.Close)

	live := rakuten.NewClient(rakuten.Config{
		BaseURL:       server.URL,
		ApplicationID: "test-app-id",
		Timeout:       2 * time.Second,
	}, nil, logger.NewTestLogger(t))

	c := NewBookComparator(live, logger.NewTestLogger(t))
	quotes := c.Compare(context.Background(), "9784062764742")

	for _, q := range quotes {
		if q.Site == "楽天ブックス" {
			assert.Equal(t, 4500, q.Price)
			assert.Equal(t, 0, q.Shipping)
			assert.Equal(t, 4500, q.TotalPrice)
			assert.True(t, q.InStock)
			assert.Equal(t, "https://books.rakuten.co.jp/rb/1234567/", q.URL)
		}
	}
}

func TestSeedDerivation(t *testing.T) {
	assert.Equal(t, 764742, seed("9784062764742"))
	assert.Equal(t, 123456, seed("no-digits-here"))
	assert.Equal(t, 1234, seed("J001234"))
}
