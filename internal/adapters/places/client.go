// Package places talks to the Places text-search API and exposes it as
// attraction sources.
package places

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trip_planner/internal/adapters/webclient"
	"trip_planner/internal/domain"
)

const searchPath = "/v1/places:searchText"

type Client struct {
	wc   *webclient.Client
	base string
}

// New returns domain.ErrNotConfigured when key is empty.
func New(base, host, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("places: %w", domain.ErrNotConfigured)
	}
	wc := webclient.New("places", webclient.Options{
		Timeout: 15 * time.Second,
		RPS:     rps,
		Headers: map[string]string{
			"x-rapidapi-key":   key,
			"x-rapidapi-host":  host,
			"X-Goog-FieldMask": "*",
		},
	})
	return &Client{wc: wc, base: strings.TrimRight(base, "/")}, nil
}

// NewWithClient is used by tests to inject a preconfigured webclient.
func NewWithClient(base string, wc *webclient.Client) *Client {
	return &Client{wc: wc, base: strings.TrimRight(base, "/")}
}

type searchRequest struct {
	TextQuery    string `json:"textQuery"`
	LanguageCode string `json:"languageCode"`
	RegionCode   string `json:"regionCode"`
}

type searchResponse struct {
	Places []map[string]any `json:"places"`
}

// SearchText returns the raw place objects for one free-text query.
// Null entries are dropped.
func (c *Client) SearchText(ctx context.Context, query string) ([]map[string]any, error) {
	var out searchResponse
	err := c.wc.PostJSON(ctx, c.base+searchPath, searchRequest{
		TextQuery: query, LanguageCode: "en", RegionCode: "IN",
	}, &out)
	if err != nil {
		return nil, err
	}
	places := out.Places[:0]
	for _, p := range out.Places {
		if p != nil {
			places = append(places, p)
		}
	}
	return places, nil
}
