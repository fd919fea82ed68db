package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/app"
	"trip_planner/internal/domain"
	"trip_planner/internal/shared"
)

type tripLine struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	NumDays     int    `json:"num_days"`
	Mode        string `json:"mode"`
}

// readBatch parses one trip per non-blank line. Line numbers in errors are
// 1-based.
func readBatch(r io.Reader) ([]domain.TripQuery, error) {
	var out []domain.TripQuery
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var t tripLine
		if err := json.Unmarshal([]byte(line), &t); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		q, err := domain.NewTripQuery(t.Source, t.Destination, t.StartDate, t.NumDays, t.Mode)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		out = append(out, q)
	}
	return out, sc.Err()
}

func main() {
	var (
		source  = flag.String("from", "", "source city")
		dest    = flag.String("to", "", "destination city")
		start   = flag.String("date", "", "start date, YYYY-MM-DD")
		days    = flag.Int("days", 3, "number of days")
		mode    = flag.String("mode", "car", "car or flight")
		batch   = flag.String("batch", "", "JSON-lines file of trips")
		workers = flag.Int("workers", 4, "concurrent plans in batch mode")
	)
	flag.Parse()

	cfg := shared.Load()
	log.Logger = observability.NewLoggerTo(os.Stderr, cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var queries []domain.TripQuery
	if *batch != "" {
		f, err := os.Open(*batch)
		if err != nil {
			log.Fatal().Err(err).Msg("open batch file")
		}
		queries, err = readBatch(f)
		_ = f.Close()
		if err != nil {
			log.Fatal().Err(err).Str("file", *batch).Msg("read batch file")
		}
	} else {
		q, err := domain.NewTripQuery(*source, *dest, *start, *days, *mode)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid trip")
		}
		queries = append(queries, q)
	}

	planner, err := app.Build(cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("planner init failed")
	}

	log.Info().Int("trips", len(queries)).Int("workers", *workers).Msg("planner starting")

	plans := make([]*app.Plan, len(queries))
	sem := semaphore.NewWeighted(int64(max(*workers, 1)))
	var wg sync.WaitGroup

	for i, q := range queries {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Warn().Err(err).Msg("batch interrupted")
			break
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			pctx, cancel := context.WithTimeout(ctx, cfg.PlanTimeout)
			defer cancel()
			p, err := planner.Plan(pctx, q)
			if err != nil {
				log.Warn().Err(err).Str("source", q.Source).Str("destination", q.Destination).Msg("plan failed")
				return
			}
			plans[i] = p
		}()
	}
	wg.Wait()

	enc := json.NewEncoder(os.Stdout)
	if len(queries) == 1 {
		enc.SetIndent("", "  ")
	}
	failed := 0
	for _, p := range plans {
		if p == nil {
			failed++
			continue
		}
		if err := enc.Encode(p); err != nil {
			log.Fatal().Err(err).Msg("write plan")
		}
	}
	log.Info().Int("planned", len(plans)-failed).Int("failed", failed).Msg("planner completed")
	if failed > 0 {
		os.Exit(1)
	}
}
