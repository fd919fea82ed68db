package app

import (
	"errors"

	"github.com/rs/zerolog"

	"trip_planner/internal/acquire"
	"trip_planner/internal/adapters/llm"
	"trip_planner/internal/adapters/pages"
	"trip_planner/internal/adapters/places"
	"trip_planner/internal/adapters/webclient"
	"trip_planner/internal/catalog"
	"trip_planner/internal/compose"
	"trip_planner/internal/cost"
	"trip_planner/internal/domain"
	"trip_planner/internal/normalize"
	"trip_planner/internal/shared"
	"trip_planner/internal/synth"
)

// Sources builds the live sources of every domain in priority order. A
// source whose credentials are missing is left out; the returned generator
// is nil without an LLM key.
func Sources(cfg shared.Config, cat *catalog.Catalog, log zerolog.Logger) (acquire.Sources, domain.TextGenerator) {
	fetcher := webclient.New("pages", webclient.Options{Timeout: cfg.SourceTimeout, RPS: cfg.SourceRPS})
	src := acquire.Sources{
		Routes:  []domain.Source{pages.NewMapsRoutes(fetcher, cfg.MapsBase)},
		Flights: []domain.Source{pages.NewFlightSearch(fetcher, cfg.FlightsSearch)},
		Hotels: []domain.Source{
			pages.NewGoogleHotels(fetcher, cfg.HotelsGoogle),
			pages.NewBooking(fetcher, cfg.HotelsBooking),
			pages.NewGoibibo(fetcher, cfg.HotelsGoibibo),
			pages.NewMakeMyTrip(fetcher, cfg.HotelsMMT),
		},
	}

	var gen domain.TextGenerator
	switch cl, err := llm.New(cfg.LLMBase, cfg.LLMKey, cfg.LLMModel, cfg.SourceRPS); {
	case err == nil:
		gen = cl
		src.RouteAttractions = append(src.RouteAttractions, llm.NewRouteAttractions(cl, cat, log))
	case errors.Is(err, domain.ErrNotConfigured):
		log.Debug().Msg("llm sources disabled")
	default:
		log.Warn().Err(err).Msg("llm client init failed")
	}

	switch pl, err := places.New(cfg.PlacesBase, cfg.PlacesHost, cfg.PlacesKey, cfg.SourceRPS); {
	case err == nil:
		src.Attractions = append(src.Attractions, places.NewAttractions(pl))
		src.RouteAttractions = append(src.RouteAttractions, places.NewRouteAttractions(pl, cat, log))
	case errors.Is(err, domain.ErrNotConfigured):
		log.Debug().Msg("places sources disabled")
	default:
		log.Warn().Err(err).Msg("places client init failed")
	}
	return src, gen
}

// Build wires a Planner from configuration.
func Build(cfg shared.Config, log zerolog.Logger) (*Planner, error) {
	cat := catalog.Default()
	gen := synth.New(cat, cfg.Currency)
	src, llmGen := Sources(cfg, cat, log)

	composer, err := compose.NewComposer(llmGen, compose.NewTemplate(gen), log)
	if err != nil {
		return nil, err
	}
	set := acquire.NewSet(acquire.Settings{
		Attempts:      cfg.Attempts,
		Backoff:       cfg.Backoff,
		SourceTimeout: cfg.SourceTimeout,
		Log:           log,
	}, src, normalize.New(gen), gen)
	return NewPlanner(set, composer, cost.NewEstimator(cfg.Cost), log), nil
}
