package shop

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	models "elastica/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogHandler serves /api/get_productsCt over an in-memory slice with
// the same filter, sort and pagination semantics as the real endpoint.
func catalogHandler(catalog []models.Product) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/get_productsCt" {
			http.NotFound(w, r)
			return
		}

		var q Filters
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		// Lets the stale-response test hold one request open.
		if q.Search == "slow" {
			select {
			case <-time.After(300 * time.Millisecond):
			case <-r.Context().Done():
				return
			}
		}

		matched := []models.Product{}
		for _, p := range catalog {
			if q.CategoryID != "" && q.CategoryID != "all" && p.CategoryID != q.CategoryID {
				continue
			}
			matched = append(matched, p)
		}

		switch q.SortBy {
		case "priceLowToHigh":
			sort.SliceStable(matched, func(i, j int) bool { return matched[i].FinalPrice < matched[j].FinalPrice })
		case "priceHighToLow":
			sort.SliceStable(matched, func(i, j int) bool { return matched[i].FinalPrice > matched[j].FinalPrice })
		}

		total := int64(len(matched))
		if q.Limit <= 0 {
			q.Limit = 12
		}
		start := q.Skip
		if start > total {
			start = total
		}
		end := start + q.Limit
		if end > total {
			end = total
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"code":    200,
			"message": "Success",
			"data": map[string]interface{}{
				"products": matched[start:end],
				"hasMore":  q.Skip+q.Limit < total,
			},
		})
	}
}

func catalogServer(t *testing.T, catalog []models.Product) *httptest.Server {
	t.Helper()
	return httptest.NewServer(catalogHandler(catalog))
}

func testProduct(pid string, categoryID string, mrp float64, discount float64) models.Product {
	return models.Product{
		P_id:       pid,
		Name:       "Product " + pid,
		CategoryID: categoryID,
		Mrp:        mrp,
		Discount:   discount,
		FinalPrice: models.FinalPrice(mrp, discount),
	}
}

func TestSessionSortsByFinalPrice(t *testing.T) {
	catalog := []models.Product{
		testProduct("P1", "C1", 100, 10), // finalPrice 90
		testProduct("P2", "C1", 50, 0),   // finalPrice 50
	}
	srv := catalogServer(t, catalog)
	defer srv.Close()

	s := NewSession(srv.URL)
	require.NoError(t, s.SetCategory("C1"))
	require.NoError(t, s.SetSort("priceLowToHigh"))

	products := s.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "P2", products[0].P_id)
	assert.Equal(t, "P1", products[1].P_id)
	assert.False(t, s.HasMore())
}

func TestLoadMoreAppendsWithoutDuplicates(t *testing.T) {
	catalog := []models.Product{}
	for i := 0; i < 30; i++ {
		catalog = append(catalog, testProduct(fmt.Sprintf("P%02d", i), "C1", float64(100+i), 0))
	}
	srv := catalogServer(t, catalog)
	defer srv.Close()

	s := NewSession(srv.URL)
	require.NoError(t, s.SetCategory("all"))
	assert.Len(t, s.Products(), 12)
	assert.True(t, s.HasMore())

	require.NoError(t, s.LoadMore())
	assert.Len(t, s.Products(), 24)
	assert.True(t, s.HasMore())

	require.NoError(t, s.LoadMore())
	products := s.Products()
	assert.Len(t, products, 30)
	assert.False(t, s.HasMore())

	seen := map[string]bool{}
	for _, p := range products {
		assert.False(t, seen[p.P_id], "duplicate product %s in buffer", p.P_id)
		seen[p.P_id] = true
	}
}

func TestFilterChangeResetsSkipAndReplacesBuffer(t *testing.T) {
	catalog := []models.Product{}
	for i := 0; i < 30; i++ {
		catalog = append(catalog, testProduct(fmt.Sprintf("P%02d", i), "C1", float64(100+i), 0))
	}
	srv := catalogServer(t, catalog)
	defer srv.Close()

	s := NewSession(srv.URL)
	require.NoError(t, s.SetCategory("all"))
	require.NoError(t, s.LoadMore())
	assert.Len(t, s.Products(), 24)

	require.NoError(t, s.SetSort("priceHighToLow"))
	assert.Len(t, s.Products(), 12, "filter change must replace, not append")
	assert.Equal(t, int64(0), s.Filters().Skip)
	assert.Equal(t, "P29", s.Products()[0].P_id)
}

func TestSetCategoryResetsAllFilters(t *testing.T) {
	srv := catalogServer(t, []models.Product{testProduct("P1", "C2", 100, 0)})
	defer srv.Close()

	s := NewSession(srv.URL)
	require.NoError(t, s.SetSort("priceLowToHigh"))
	require.NoError(t, s.SetPriceRange(f64(10), f64(500)))

	require.NoError(t, s.SetCategory("C2"))
	filters := s.Filters()
	assert.Equal(t, "C2", filters.CategoryID)
	assert.Empty(t, filters.SortBy)
	assert.Nil(t, filters.MinPrice)
	assert.Nil(t, filters.MaxPrice)
	assert.Equal(t, int64(0), filters.Skip)
	require.Len(t, s.Products(), 1)
}

func TestSupersededResponseNeverOverwritesBuffer(t *testing.T) {
	catalog := []models.Product{
		testProduct("P1", "C1", 100, 0),
		testProduct("P2", "C1", 200, 0),
	}
	srv := catalogServer(t, catalog)
	defer srv.Close()

	s := NewSession(srv.URL)

	slowDone := make(chan error, 1)
	go func() {
		slowDone <- s.SetSearch("slow")
	}()

	// Let the slow request get in flight, then supersede it.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, s.SetSearch(""))

	err := <-slowDone
	assert.ErrorIs(t, err, ErrSuperseded)

	// The buffer belongs to the newer request.
	assert.Len(t, s.Products(), 2)
	assert.Equal(t, "", s.Filters().Search)
}

func TestLoadMoreRollsBackSkipOnFailure(t *testing.T) {
	catalog := []models.Product{}
	for i := 0; i < 30; i++ {
		catalog = append(catalog, testProduct(fmt.Sprintf("P%02d", i), "C1", float64(100+i), 0))
	}
	handler := catalogHandler(catalog)

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 2 {
			http.Error(w, "backend unavailable", http.StatusInternalServerError)
			return
		}
		handler(w, r)
	}))
	defer srv.Close()

	s := NewSession(srv.URL)
	require.NoError(t, s.SetCategory("all"))
	require.Len(t, s.Products(), 12)

	err := s.LoadMore()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSuperseded)
	assert.Equal(t, int64(0), s.Filters().Skip, "failed page must not advance skip")
	assert.Len(t, s.Products(), 12)

	// The retry picks up the page the failed attempt would have skipped.
	require.NoError(t, s.LoadMore())
	products := s.Products()
	require.Len(t, products, 24)
	assert.Equal(t, "P12", products[12].P_id)
}

func f64(v float64) *float64 { return &v }
