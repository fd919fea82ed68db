package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"trip_planner/internal/acquire"
	"trip_planner/internal/compose"
	"trip_planner/internal/cost"
	"trip_planner/internal/domain"
)

// Provenance says how one domain's records were obtained.
type Provenance struct {
	Outcome  acquire.Outcome `json:"outcome"`
	Attempts int             `json:"attempts"`
	Sources  []string        `json:"sources,omitempty"`
	Failures int             `json:"failures"`
}

type QueryView struct {
	Source      string      `json:"source"`
	Destination string      `json:"destination"`
	StartDate   string      `json:"start_date"`
	NumDays     int         `json:"num_days"`
	Mode        domain.Mode `json:"mode"`
}

// Plan is the full result of one planning run.
type Plan struct {
	ID               string                       `json:"id"`
	Query            QueryView                    `json:"query"`
	Routes           []domain.RouteOption         `json:"routes,omitempty"`
	Flights          []domain.FlightOption        `json:"flights,omitempty"`
	Hotels           []domain.HotelOption         `json:"hotels"`
	Attractions      []domain.Attraction          `json:"attractions"`
	RouteAttractions []domain.Attraction          `json:"route_attractions,omitempty"`
	Provenance       map[domain.Domain]Provenance `json:"provenance"`
	Cost             cost.Breakdown               `json:"cost"`
	Itinerary        domain.Itinerary             `json:"itinerary"`
	Elapsed          string                       `json:"elapsed"`
}

type Planner struct {
	set      *acquire.Set
	composer *compose.Composer
	est      *cost.Estimator
	log      zerolog.Logger
}

func NewPlanner(set *acquire.Set, c *compose.Composer, est *cost.Estimator, log zerolog.Logger) *Planner {
	return &Planner{set: set, composer: c, est: est, log: log}
}

func provenance[T any](r acquire.Result[T]) Provenance {
	return Provenance{Outcome: r.Outcome, Attempts: r.Attempts, Sources: r.Sources, Failures: len(r.Failures)}
}

// Plan runs the mode's domain pipelines concurrently, then composes the
// itinerary and the cost estimate. Errors are limited to an invalid query
// and ctx cancellation.
func (p *Planner) Plan(ctx context.Context, q domain.TripQuery) (*Plan, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	id := uuid.NewString()
	lg := p.log.With().Str("plan_id", id).Str("mode", string(q.Mode)).Logger()

	var (
		routes    acquire.Result[domain.RouteOption]
		flights   acquire.Result[domain.FlightOption]
		hotels    acquire.Result[domain.HotelOption]
		sights    acquire.Result[domain.Attraction]
		enRoute   acquire.Result[domain.Attraction]
		hasRoutes = q.Mode == domain.ModeCar
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { hotels, err = p.set.Hotels.Run(gctx, q); return })
	g.Go(func() (err error) { sights, err = p.set.Attractions.Run(gctx, q); return })
	if hasRoutes {
		g.Go(func() (err error) { routes, err = p.set.Routes.Run(gctx, q); return })
		g.Go(func() (err error) { enRoute, err = p.set.RouteAttractions.Run(gctx, q); return })
	} else {
		g.Go(func() (err error) { flights, err = p.set.Flights.Run(gctx, q); return })
	}
	if err := g.Wait(); err != nil {
		lg.Warn().Err(err).Msg("planning aborted")
		return nil, err
	}

	plan := &Plan{
		ID: id,
		Query: QueryView{
			Source: q.Source, Destination: q.Destination,
			StartDate: q.StartDate.Format(domain.DateLayout), NumDays: q.NumDays, Mode: q.Mode,
		},
		Hotels:      hotels.Records,
		Attractions: sights.Records,
		Provenance: map[domain.Domain]Provenance{
			domain.DomainHotels:      provenance(hotels),
			domain.DomainAttractions: provenance(sights),
		},
	}
	if hasRoutes {
		plan.Routes, plan.RouteAttractions = routes.Records, enRoute.Records
		plan.Provenance[domain.DomainRoutes] = provenance(routes)
		plan.Provenance[domain.DomainRouteAttractions] = provenance(enRoute)
	} else {
		plan.Flights = flights.Records
		plan.Provenance[domain.DomainFlights] = provenance(flights)
	}

	plan.Itinerary = p.composer.Compose(ctx, compose.Input{
		Query:            q,
		Routes:           plan.Routes,
		Flights:          plan.Flights,
		Hotels:           plan.Hotels,
		Attractions:      plan.Attractions,
		RouteAttractions: plan.RouteAttractions,
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	plan.Cost = p.est.Estimate(q, cost.Inputs{Routes: plan.Routes, Flights: plan.Flights, Hotels: plan.Hotels})
	plan.Elapsed = time.Since(start).Round(time.Millisecond).String()

	lg.Info().
		Str("source", q.Source).
		Str("destination", q.Destination).
		Int("days", q.NumDays).
		Str("itinerary", plan.Itinerary.Origin).
		Float64("total", plan.Cost.Total).
		Dur("elapsed", time.Since(start)).
		Msg("plan ready")
	return plan, nil
}
