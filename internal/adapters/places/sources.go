package places

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"trip_planner/internal/catalog"
	"trip_planner/internal/domain"
)

const (
	destinationLimit = 10
	routeWant        = 3
)

// Searcher is the part of Client the sources need.
type Searcher interface {
	SearchText(ctx context.Context, query string) ([]map[string]any, error)
}

// Attractions finds sights in the destination city.
type Attractions struct {
	api Searcher
}

func NewAttractions(api Searcher) *Attractions { return &Attractions{api: api} }

func (s *Attractions) Name() string { return "places" }

func (s *Attractions) Fetch(ctx context.Context, q domain.TripQuery) ([]domain.RawRecord, error) {
	res, err := s.api.SearchText(ctx, fmt.Sprintf("top tourist attractions in %s india", q.DestinationCity()))
	if err != nil {
		return nil, err
	}
	out := make([]domain.RawRecord, 0, destinationLimit)
	for _, p := range res {
		if len(out) == destinationLimit {
			break
		}
		if p == nil {
			continue
		}
		out = append(out, domain.RawRecord(p))
	}
	return out, nil
}

// RouteAttractions runs several route queries plus one query per known
// intermediate town until a few candidates survive a name check.
type RouteAttractions struct {
	api Searcher
	cat *catalog.Catalog
	log zerolog.Logger
}

func NewRouteAttractions(api Searcher, cat *catalog.Catalog, log zerolog.Logger) *RouteAttractions {
	return &RouteAttractions{api: api, cat: cat, log: log}
}

func (s *RouteAttractions) Name() string { return "places_route" }

func (s *RouteAttractions) Queries(q domain.TripQuery) []string {
	src, dst := q.SourceCity(), q.DestinationCity()
	qs := []string{
		fmt.Sprintf("tourist attractions on the way from %s to %s india", src, dst),
		fmt.Sprintf("famous places between %s and %s not in %s india", src, dst, dst),
		fmt.Sprintf("tourist spots midway between %s and %s india", src, dst),
		fmt.Sprintf("scenic places on route from %s to %s india", src, dst),
	}
	for _, town := range s.cat.IntermediateTowns(src, dst) {
		qs = append(qs, fmt.Sprintf("tourist attractions in %s india", town))
	}
	return qs
}

// Fetch tolerates individual query failures; it fails only when every
// query failed.
func (s *RouteAttractions) Fetch(ctx context.Context, q domain.TripQuery) ([]domain.RawRecord, error) {
	dst := q.DestinationCity()
	onRoute := fmt.Sprintf("On the route from %s to %s", domain.TitleCity(q.Source), domain.TitleCity(q.Destination))

	var (
		out     []domain.RawRecord
		lastErr error
		okCalls int
	)
	for _, query := range s.Queries(q) {
		if len(out) >= routeWant {
			break
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		res, err := s.api.SearchText(ctx, query)
		if err != nil {
			s.log.Debug().Err(err).Str("query", query).Msg("route search failed")
			lastErr = err
			continue
		}
		okCalls++
		for _, p := range res {
			rec := domain.RawRecord(p)
			name := displayName(rec)
			if name == "" || s.cat.IsDestinationPlace(dst, name) || strings.Contains(strings.ToLower(name), dst) {
				continue
			}
			rec["location_context"] = onRoute
			out = append(out, rec)
		}
	}
	if okCalls == 0 && lastErr != nil {
		return nil, lastErr
	}
	return out, nil
}

func displayName(p map[string]any) string {
	if dn, ok := p["displayName"].(map[string]any); ok {
		if s, ok := dn["text"].(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
