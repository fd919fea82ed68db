// Package acquire runs the prioritized-source-with-synthetic-fallback
// routine shared by every domain.
package acquire

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/domain"
)

// State of one pipeline run.
type State int

const (
	NotStarted State = iota
	TryingSource
	EnoughRecords
	Exhausted
	Done
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case TryingSource:
		return "trying_source"
	case EnoughRecords:
		return "enough_records"
	case Exhausted:
		return "exhausted"
	case Done:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Outcome reports where the final records came from.
type Outcome string

const (
	OutcomeLive      Outcome = "live"      // target reached from live sources
	OutcomePartial   Outcome = "partial"   // fewer than target, accepted as-is
	OutcomeToppedUp  Outcome = "topped_up" // live records padded with synthetic ones
	OutcomeSynthetic Outcome = "synthetic" // every source failed
)

const (
	DefaultAttempts      = 3
	DefaultBackoff       = 2 * time.Second
	DefaultSourceTimeout = 30 * time.Second
)

// NormalizeFunc converts raw record i into a canonical record.
type NormalizeFunc[T any] func(q domain.TripQuery, raw domain.RawRecord, i int) (T, bool)

// Pipeline is configured once per domain and is safe for concurrent Run
// calls as long as its fields are not mutated.
type Pipeline[T any] struct {
	Domain    domain.Domain
	Sources   []domain.Source
	Normalize NormalizeFunc[T]
	Synthetic func(q domain.TripQuery) []T
	Key       func(T) string

	// Accept drops records that must never reach the caller.
	Accept func(q domain.TripQuery, rec T) bool
	// Fallback replaces the synthetic records when Accept rejects all of
	// them. Without it the unfiltered synthetic records are kept.
	Fallback func(q domain.TripQuery) []T
	// Less orders live records before truncation to Target.
	Less func(a, b T) bool

	Target int
	// MinAccept is the smallest live result kept; below it the attempt
	// counts as failed. Zero means 1.
	MinAccept int
	// TopUp pads an accepted live result with synthetic records up to
	// this size. Zero disables padding.
	TopUp int

	Attempts      int
	Backoff       time.Duration // delay before retry n is Backoff × (n-1)
	SourceTimeout time.Duration

	Log zerolog.Logger
	// Sleep waits d or returns ctx.Err(); tests replace it.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Result of one Run.
type Result[T any] struct {
	Domain   domain.Domain           `json:"domain"`
	Records  []T                     `json:"records"`
	Outcome  Outcome                 `json:"outcome"`
	Attempts int                     `json:"attempts"`
	Sources  []string                `json:"sources,omitempty"`
	Failures []domain.AdapterFailure `json:"-"`
}

// Run walks the sources in priority order and always returns a non-empty
// record list. The only error is a canceled or expired ctx.
func (p *Pipeline[T]) Run(ctx context.Context, q domain.TripQuery) (Result[T], error) {
	res := Result[T]{Domain: p.Domain}
	lg := p.Log.With().Str("domain", string(p.Domain)).Logger()
	state := NotStarted

	attempts := p.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if err := p.sleep(ctx, p.Backoff*time.Duration(attempt-1)); err != nil {
				return res, err
			}
		}
		res.Attempts = attempt
		acc, used, err := p.attempt(ctx, q, &res, &state, lg)
		if err != nil {
			return res, err
		}
		if len(acc) >= p.minAccept() {
			p.finishLive(q, &res, acc, used)
			p.done(&state, &res, lg)
			return res, nil
		}
		lg.Debug().Int("attempt", attempt).Int("records", len(acc)).Msg("attempt yielded too few records")
	}

	state = Exhausted
	lg.Debug().Int("attempts", res.Attempts).Msg("sources exhausted, generating synthetic records")
	res.Records = p.synthetic(q)
	res.Outcome = OutcomeSynthetic
	res.Sources = nil
	p.done(&state, &res, lg)
	return res, nil
}

// attempt makes one pass over every source.
func (p *Pipeline[T]) attempt(ctx context.Context, q domain.TripQuery, res *Result[T], state *State, lg zerolog.Logger) ([]T, []string, error) {
	var (
		acc  []T
		used []string
		seen = map[string]struct{}{}
	)
	for _, src := range p.Sources {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		*state = TryingSource
		lg.Debug().Str("source", src.Name()).Int("attempt", res.Attempts).Msg("trying source")

		raws, fail := p.call(ctx, src, q)
		if fail != nil {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
			res.Failures = append(res.Failures, *fail)
			observability.ObserveAdapter(string(p.Domain), src.Name(), fail.Reason)
			lg.Debug().Str("source", src.Name()).Str("reason", fail.Reason).Err(fail.Err).Msg("source failed")
			continue
		}

		before := len(acc)
		for i, raw := range raws {
			if raw == nil {
				continue
			}
			rec, ok := p.normalize(q, tagged(raw, src.Name()), i, lg)
			if !ok || !p.accept(q, rec) {
				continue
			}
			k := p.Key(rec)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			acc = append(acc, rec)
		}
		if len(acc) == before {
			fail := domain.AdapterFailure{Source: src.Name(), Reason: domain.ReasonEmpty, Err: domain.ErrNoRecords}
			res.Failures = append(res.Failures, fail)
			observability.ObserveAdapter(string(p.Domain), src.Name(), fail.Reason)
			lg.Debug().Str("source", src.Name()).Int("raw", len(raws)).Msg("source yielded no usable records")
			continue
		}
		observability.ObserveAdapter(string(p.Domain), src.Name(), "ok")
		used = append(used, src.Name())
		if len(acc) >= p.Target {
			*state = EnoughRecords
			lg.Debug().Str("source", src.Name()).Int("records", len(acc)).Msg("enough records")
			break
		}
	}
	return acc, used, nil
}

// normalize drops a record whose normalization panics.
func (p *Pipeline[T]) normalize(q domain.TripQuery, raw domain.RawRecord, i int, lg zerolog.Logger) (rec T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			lg.Warn().Interface("panic", r).Str("source", lookupSource(raw)).Msg("record dropped")
			var zero T
			rec, ok = zero, false
		}
	}()
	return p.Normalize(q, raw, i)
}

func lookupSource(raw domain.RawRecord) string {
	s, _ := raw["source"].(string)
	return s
}

// tagged copies raw and stamps the source name unless one is present.
func tagged(raw domain.RawRecord, source string) domain.RawRecord {
	out := make(domain.RawRecord, len(raw)+1)
	for k, v := range raw {
		out[k] = v
	}
	if _, ok := out["source"]; !ok {
		out["source"] = source
	}
	return out
}

type fetchResult struct {
	raws []domain.RawRecord
	err  error
}

// call runs one source under its own timeout. A source that ignores ctx is
// abandoned when the timeout fires; a panic becomes an AdapterFailure.
func (p *Pipeline[T]) call(ctx context.Context, src domain.Source, q domain.TripQuery) ([]domain.RawRecord, *domain.AdapterFailure) {
	timeout := p.SourceTimeout
	if timeout <= 0 {
		timeout = DefaultSourceTimeout
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ch := make(chan fetchResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- fetchResult{err: &domain.AdapterFailure{Source: src.Name(), Reason: domain.ReasonPanic, Err: fmt.Errorf("panic: %v", r)}}
			}
		}()
		raws, err := src.Fetch(cctx, q)
		ch <- fetchResult{raws: raws, err: err}
	}()

	var out fetchResult
	select {
	case out = <-ch:
	case <-cctx.Done():
		out.err = cctx.Err()
	}

	var af *domain.AdapterFailure
	switch {
	case out.err == nil && len(out.raws) == 0:
		return nil, &domain.AdapterFailure{Source: src.Name(), Reason: domain.ReasonEmpty, Err: domain.ErrNoRecords}
	case out.err == nil:
		return out.raws, nil
	case errors.As(out.err, &af):
		return nil, af
	case errors.Is(out.err, context.DeadlineExceeded):
		return nil, &domain.AdapterFailure{Source: src.Name(), Reason: domain.ReasonTimeout, Err: out.err}
	default:
		return nil, &domain.AdapterFailure{Source: src.Name(), Reason: domain.ReasonError, Err: out.err}
	}
}

func (p *Pipeline[T]) finishLive(q domain.TripQuery, res *Result[T], acc []T, used []string) {
	if p.Less != nil {
		sort.SliceStable(acc, func(i, j int) bool { return p.Less(acc[i], acc[j]) })
	}
	if p.Target > 0 && len(acc) > p.Target {
		acc = acc[:p.Target]
	}
	res.Sources = used
	res.Outcome = OutcomeLive
	if len(acc) < p.Target {
		res.Outcome = OutcomePartial
	}
	if p.TopUp > len(acc) {
		seen := make(map[string]struct{}, len(acc))
		for _, r := range acc {
			seen[p.Key(r)] = struct{}{}
		}
		for _, r := range p.synthetic(q) {
			if len(acc) >= p.TopUp {
				break
			}
			if _, dup := seen[p.Key(r)]; dup {
				continue
			}
			seen[p.Key(r)] = struct{}{}
			acc = append(acc, r)
			res.Outcome = OutcomeToppedUp
		}
	}
	res.Records = acc
}

// synthetic returns the generator output filtered by Accept. When the
// filter removes everything, Fallback is used instead; the result is never
// empty.
func (p *Pipeline[T]) synthetic(q domain.TripQuery) []T {
	all := p.Synthetic(q)
	kept := p.accepted(q, all)
	if len(kept) == 0 && p.Fallback != nil {
		all = p.Fallback(q)
		if kept = p.accepted(q, all); len(kept) == 0 {
			kept = all
		}
	}
	if len(kept) == 0 {
		kept = all
	}
	if limit := p.limit(); limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}

func (p *Pipeline[T]) done(state *State, res *Result[T], lg zerolog.Logger) {
	from := *state
	*state = Done
	observability.ObserveOutcome(string(p.Domain), string(res.Outcome))
	lg.Info().
		Str("from", from.String()).
		Str("outcome", string(res.Outcome)).
		Int("records", len(res.Records)).
		Int("attempts", res.Attempts).
		Int("failures", len(res.Failures)).
		Msg("acquisition done")
}

func (p *Pipeline[T]) accepted(q domain.TripQuery, all []T) []T {
	kept := make([]T, 0, len(all))
	for _, r := range all {
		if p.accept(q, r) {
			kept = append(kept, r)
		}
	}
	return kept
}

func (p *Pipeline[T]) accept(q domain.TripQuery, rec T) bool {
	return p.Accept == nil || p.Accept(q, rec)
}

func (p *Pipeline[T]) minAccept() int {
	if p.MinAccept > 0 {
		return p.MinAccept
	}
	return 1
}

func (p *Pipeline[T]) limit() int {
	if p.TopUp > p.Target {
		return p.TopUp
	}
	return p.Target
}

func (p *Pipeline[T]) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}
	return SleepCtx(ctx, d)
}

// SleepCtx waits d or until ctx is done.
func SleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
