package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"trip_planner/internal/catalog"
	"trip_planner/internal/domain"
	"trip_planner/internal/llmtext"
)

const (
	routeSystem = "You are a travel expert with deep knowledge of Indian tourist attractions, geography, and routes " +
		"between cities. You only provide factually accurate information about real places."
	routeMax = 5
)

// RouteAttractions asks the model for stops between the endpoints.
type RouteAttractions struct {
	gen domain.TextGenerator
	cat *catalog.Catalog
	log zerolog.Logger
}

func NewRouteAttractions(gen domain.TextGenerator, cat *catalog.Catalog, log zerolog.Logger) *RouteAttractions {
	return &RouteAttractions{gen: gen, cat: cat, log: log}
}

func (s *RouteAttractions) Name() string { return "llm" }

func (s *RouteAttractions) Fetch(ctx context.Context, q domain.TripQuery) ([]domain.RawRecord, error) {
	text, err := s.gen.Generate(ctx, domain.GenerateRequest{
		System:      routeSystem,
		Prompt:      s.Prompt(q),
		Format:      domain.FormatJSONArray,
		MaxTokens:   1500,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, &domain.CollaboratorFailure{Op: "route_attractions", Err: err}
	}
	recs, stage, err := llmtext.Attractions(text)
	if err != nil {
		return nil, &domain.CollaboratorFailure{Op: "route_attractions", Err: err}
	}
	s.log.Debug().Str("stage", string(stage)).Int("records", len(recs)).Msg("route attractions parsed")

	out := make([]domain.RawRecord, 0, routeMax)
	for _, r := range recs {
		if len(out) == routeMax {
			break
		}
		if !Between(q, r) {
			continue
		}
		if str(r, "description") == "" {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Between drops records whose name mentions an endpoint, or whose location
// names an endpoint other than as "from <city>".
func Between(q domain.TripQuery, r domain.RawRecord) bool {
	name := strings.ToLower(str(r, "name"))
	loc := strings.ToLower(str(r, "location_context"))
	if name == "" {
		return false
	}
	for _, city := range []string{q.SourceCity(), q.DestinationCity()} {
		if strings.Contains(name, city) {
			return false
		}
		if strings.Contains(loc, city) && !strings.Contains(loc, "from "+city) {
			return false
		}
	}
	return true
}

func (s *RouteAttractions) Prompt(q domain.TripQuery) string {
	from, to := domain.TitleCity(q.Source), domain.TitleCity(q.Destination)
	towns := s.cat.IntermediateTowns(q.SourceCity(), q.DestinationCity())
	for i, t := range towns {
		towns[i] = domain.TitleCity(t)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I need a list of 5 REAL and ACCURATE tourist attractions or places to visit that are located BETWEEN %s and %s in India,\n", from, to)
	fmt.Fprintf(&b, "but NOT IN %s or %s themselves. These should be places that a traveler could stop at during a road trip.\n\n", from, to)
	if len(towns) > 0 {
		fmt.Fprintf(&b, "Based on geography, these cities/towns are known to be between these locations: %s\n\n", strings.Join(towns, ", "))
	}
	b.WriteString(`For each attraction, provide:
1. Name of the attraction (MUST be a real place that actually exists)
2. Brief description (2-3 sentences about what makes it worth visiting)
3. A rating out of 5 (between 4.0 and 4.9)
4. The specific location (e.g., "In [town/city name]", "X km from [nearest city]", etc.)

Format your response as a JSON array with objects containing fields: "name", "description", "rating", and "location_context".

IMPORTANT RULES:
- Only include attractions that are TRULY BETWEEN these cities, not in either the source or destination city
- Each attraction MUST be a real place that actually exists in India
`)
	fmt.Fprintf(&b, "- The attractions should be geographically accurate for the route between %s and %s\n", from, to)
	return b.String()
}

func str(r domain.RawRecord, k string) string {
	s, _ := r[k].(string)
	return strings.TrimSpace(s)
}
