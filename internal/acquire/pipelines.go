package acquire

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"trip_planner/internal/catalog"
	"trip_planner/internal/domain"
	"trip_planner/internal/normalize"
	"trip_planner/internal/synth"
)

// Settings are shared by every domain pipeline.
type Settings struct {
	Attempts      int
	Backoff       time.Duration
	SourceTimeout time.Duration
	Log           zerolog.Logger
	Sleep         func(ctx context.Context, d time.Duration) error
}

// Sources lists the live sources of each domain in priority order.
type Sources struct {
	Routes           []domain.Source
	Flights          []domain.Source
	Hotels           []domain.Source
	Attractions      []domain.Source
	RouteAttractions []domain.Source
}

// Set holds one configured pipeline per domain.
type Set struct {
	Routes           *Pipeline[domain.RouteOption]
	Flights          *Pipeline[domain.FlightOption]
	Hotels           *Pipeline[domain.HotelOption]
	Attractions      *Pipeline[domain.Attraction]
	RouteAttractions *Pipeline[domain.Attraction]
}

// NewSet wires the per-domain policies:
//   - routes, flights: up to 3, partial live result kept as-is
//   - hotels: up to 3, best rated first, partial kept as-is
//   - attractions: live result needs 3, then topped up to 5
//   - route attractions: up to 3, never an endpoint's own attraction
func NewSet(st Settings, src Sources, n *normalize.Normalizer, gen *synth.Generator) *Set {
	return &Set{
		Routes: &Pipeline[domain.RouteOption]{
			Domain: domain.DomainRoutes, Sources: src.Routes,
			Normalize: n.Route, Synthetic: gen.Routes,
			Key:    func(r domain.RouteOption) string { return string(r.RouteName) },
			Target: 3,
			Attempts: st.Attempts, Backoff: st.Backoff, SourceTimeout: st.SourceTimeout,
			Log: st.Log, Sleep: st.Sleep,
		},
		Flights: &Pipeline[domain.FlightOption]{
			Domain: domain.DomainFlights, Sources: src.Flights,
			Normalize: n.Flight, Synthetic: gen.Flights,
			Key: func(f domain.FlightOption) string {
				return normalize.Key(f.Airline + " " + f.FlightNumber + " " + f.Departure)
			},
			Target:   3,
			Attempts: st.Attempts, Backoff: st.Backoff, SourceTimeout: st.SourceTimeout,
			Log: st.Log, Sleep: st.Sleep,
		},
		Hotels: &Pipeline[domain.HotelOption]{
			Domain: domain.DomainHotels, Sources: src.Hotels,
			Normalize: n.Hotel, Synthetic: gen.Hotels,
			Key:  func(h domain.HotelOption) string { return normalize.Key(h.Name) },
			Less: func(a, b domain.HotelOption) bool { return ratingOf(a.Rating) > ratingOf(b.Rating) },
			Target:   3,
			Attempts: st.Attempts, Backoff: st.Backoff, SourceTimeout: st.SourceTimeout,
			Log: st.Log, Sleep: st.Sleep,
		},
		Attractions: &Pipeline[domain.Attraction]{
			Domain: domain.DomainAttractions, Sources: src.Attractions,
			Normalize: n.Attraction, Synthetic: gen.Attractions,
			Key:       attractionKey,
			Target:    5,
			MinAccept: 3,
			TopUp:     5,
			Attempts:  st.Attempts, Backoff: st.Backoff, SourceTimeout: st.SourceTimeout,
			Log: st.Log, Sleep: st.Sleep,
		},
		RouteAttractions: &Pipeline[domain.Attraction]{
			Domain: domain.DomainRouteAttractions, Sources: src.RouteAttractions,
			Normalize: n.RouteAttraction, Synthetic: gen.RouteAttractions,
			Key:      attractionKey,
			Accept:   BetweenEndpoints(gen.Catalog()),
			Fallback: gen.RoadsideStops,
			Target:   3,
			Attempts: st.Attempts, Backoff: st.Backoff, SourceTimeout: st.SourceTimeout,
			Log: st.Log, Sleep: st.Sleep,
		},
	}
}

func attractionKey(a domain.Attraction) string { return normalize.Key(a.Name) }

// BetweenEndpoints rejects a route attraction that is one of the
// destination's curated attractions or whose name mentions either city.
func BetweenEndpoints(cat *catalog.Catalog) func(q domain.TripQuery, a domain.Attraction) bool {
	return func(q domain.TripQuery, a domain.Attraction) bool {
		src, dst := q.SourceCity(), q.DestinationCity()
		if cat.IsDestinationPlace(dst, a.Name) {
			return false
		}
		name := strings.ToLower(a.Name)
		for _, city := range []string{src, dst} {
			if city != "" && strings.Contains(name, city) {
				return false
			}
		}
		return true
	}
}

func ratingOf(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
