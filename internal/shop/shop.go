// Package shop is the storefront's shop-page state machine: the current
// filter selection, the product buffer and the hasMore flag, fed by the
// catalog query endpoint. Changing a filter replaces the buffer; "load
// more" appends the next page. Every fetch carries a sequence number and
// cancels the one before it, so a slow superseded response can never
// overwrite newer results.
package shop

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"

	models "elastica/internal/models"
	httpClient "elastica/internal/utility/http"
)

// ErrSuperseded is returned when a newer fetch replaced this one while
// it was in flight. The caller's state already reflects the newer
// request; there is nothing to do.
var ErrSuperseded = errors.New("shop: request superseded by a newer one")

const defaultPageSize int64 = 12

// Filters mirrors the catalog query payload.
type Filters struct {
	CategoryID  string   `json:"categoryId"`
	Search      string   `json:"search"`
	MinPrice    *float64 `json:"minPrice"`
	MaxPrice    *float64 `json:"maxPrice"`
	MinDiscount *float64 `json:"minDiscount"`
	MaxDiscount *float64 `json:"maxDiscount"`
	SortBy      string   `json:"sortBy"`
	Skip        int64    `json:"skip"`
	Limit       int64    `json:"limit"`
}

func defaultFilters(categoryID string) Filters {
	return Filters{
		CategoryID: categoryID,
		Limit:      defaultPageSize,
	}
}

type page struct {
	Products []models.Product `json:"products"`
	HasMore  bool             `json:"hasMore"`
}

type queryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    page   `json:"data"`
}

type Session struct {
	baseURL string
	client  *httpClient.Client

	mu      sync.Mutex
	filters Filters
	buffer  []models.Product
	hasMore bool
	seq     uint64
	cancel  context.CancelFunc
}

func NewSession(baseURL string) *Session {
	return &Session{
		baseURL: baseURL,
		client:  httpClient.NewHttpClient(),
		filters: defaultFilters("all"),
	}
}

// Products returns a copy of the current result buffer.
func (s *Session) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.buffer))
	copy(out, s.buffer)
	return out
}

func (s *Session) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}

func (s *Session) Filters() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SetCategory mirrors a URL category change: every filter resets to its
// default and the buffer is refetched from the top.
func (s *Session) SetCategory(categoryID string) error {
	s.mu.Lock()
	s.filters = defaultFilters(categoryID)
	s.mu.Unlock()
	return s.refresh(true)
}

func (s *Session) SetSearch(search string) error {
	s.mu.Lock()
	s.filters.Search = search
	s.filters.Skip = 0
	s.mu.Unlock()
	return s.refresh(true)
}

func (s *Session) SetSort(sortBy string) error {
	s.mu.Lock()
	s.filters.SortBy = sortBy
	s.filters.Skip = 0
	s.mu.Unlock()
	return s.refresh(true)
}

func (s *Session) SetPriceRange(min, max *float64) error {
	s.mu.Lock()
	s.filters.MinPrice = min
	s.filters.MaxPrice = max
	s.filters.Skip = 0
	s.mu.Unlock()
	return s.refresh(true)
}

func (s *Session) SetDiscountRange(min, max *float64) error {
	s.mu.Lock()
	s.filters.MinDiscount = min
	s.filters.MaxDiscount = max
	s.filters.Skip = 0
	s.mu.Unlock()
	return s.refresh(true)
}

// LoadMore fetches the next page and appends it to the buffer. On a
// failed fetch the skip rolls back, so retrying never drops a page.
func (s *Session) LoadMore() error {
	s.mu.Lock()
	prevSkip := s.filters.Skip
	s.filters.Skip += s.filters.Limit
	s.mu.Unlock()
	return s.refreshWith(false, func() { s.filters.Skip = prevSkip })
}

// Refresh refetches the current page without touching the filters.
func (s *Session) Refresh() error {
	return s.refresh(true)
}

func (s *Session) refresh(replace bool) error {
	return s.refreshWith(replace, nil)
}

// onErr runs under the session lock when the fetch fails and no newer
// request has taken over, undoing any filter change made for this fetch.
func (s *Session) refreshWith(replace bool, onErr func()) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.seq++
	seq := s.seq
	query := s.filters
	s.mu.Unlock()

	result, err := s.fetch(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	// A newer request took over while this one was in flight; its
	// response owns the buffer now.
	if seq != s.seq {
		return ErrSuperseded
	}
	if err != nil {
		if onErr != nil {
			onErr()
		}
		return err
	}

	if replace {
		s.buffer = result.Products
	} else {
		s.buffer = append(s.buffer, result.Products...)
	}
	s.hasMore = result.HasMore
	return nil
}

func (s *Session) fetch(ctx context.Context, query Filters) (page, error) {
	payload, err := json.Marshal(query)
	if err != nil {
		return page{}, err
	}

	body, err := s.client.PostContext(ctx, s.baseURL+"/api/get_productsCt", bytes.NewReader(payload))
	if err != nil {
		return page{}, err
	}

	var resp queryResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return page{}, err
	}
	if !resp.Success {
		return page{}, errors.New(resp.Message)
	}
	return resp.Data, nil
}
