package http

import (
	"context"
	"errors"
	"io"
	"net/http"
)

type Client struct {
	client         *http.Client
	defaultHeaders map[string]string
}

func NewHttpClient() *Client {
	return &Client{
		client: &http.Client{},
		defaultHeaders: map[string]string{
			"Content-Type": "application/json",
			"accept":       "application/json",
		},
	}
}

func (hc *Client) applyDefaultHeaders(req *http.Request) {
	for key, value := range hc.defaultHeaders {
		// Only set default header if it's not already set
		if req.Header.Get(key) == "" {
			req.Header.Set(key, value)
		}
	}
}

type RequestOption func(*http.Request)

func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(key, value) // We use Set() to overwrite existing headers
	}
}

func (hc *Client) Get(url string, opts ...RequestOption) (string, error) {
	return hc.do(context.Background(), "GET", url, nil, opts...)
}

func (hc *Client) Post(url string, body io.Reader, opts ...RequestOption) (string, error) {
	return hc.do(context.Background(), "POST", url, body, opts...)
}

// PostContext is Post with caller-controlled cancellation; the shop
// client uses it to abandon superseded fetches.
func (hc *Client) PostContext(ctx context.Context, url string, body io.Reader, opts ...RequestOption) (string, error) {
	return hc.do(ctx, "POST", url, body, opts...)
}

func (hc *Client) do(ctx context.Context, method string, url string, body io.Reader, opts ...RequestOption) (string, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return "", err
	}

	hc.applyDefaultHeaders(req)

	for _, opt := range opts {
		opt(req)
	}

	resp, err := hc.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", errors.New(resp.Status)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(respBody), nil
}
