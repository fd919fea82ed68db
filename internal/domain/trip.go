package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

type Mode string

const (
	ModeCar    Mode = "car"
	ModeFlight Mode = "flight"
)

// Domain names one acquisition pipeline.
type Domain string

const (
	DomainRoutes           Domain = "routes"
	DomainFlights          Domain = "flights"
	DomainHotels           Domain = "hotels"
	DomainAttractions      Domain = "attractions"
	DomainRouteAttractions Domain = "route_attractions"
)

const DateLayout = "2006-01-02"

// MaxDays bounds the length of one trip.
const MaxDays = 30

// TripQuery is the immutable input of one planning run.
type TripQuery struct {
	Source      string
	Destination string
	StartDate   time.Time
	NumDays     int
	Mode        Mode
}

// NewTripQuery parses and validates raw input. startDate is YYYY-MM-DD.
func NewTripQuery(source, destination, startDate string, numDays int, mode string) (TripQuery, error) {
	q := TripQuery{
		Source:      strings.TrimSpace(source),
		Destination: strings.TrimSpace(destination),
		NumDays:     numDays,
		Mode:        Mode(strings.ToLower(strings.TrimSpace(mode))),
	}
	d, err := time.Parse(DateLayout, strings.TrimSpace(startDate))
	if err != nil {
		return TripQuery{}, &QueryError{Field: "start_date", Msg: "must be a YYYY-MM-DD date", Err: err}
	}
	q.StartDate = d
	if err := q.Validate(); err != nil {
		return TripQuery{}, err
	}
	return q, nil
}

func (q TripQuery) Validate() error {
	switch {
	case CleanCity(q.Source) == "":
		return &QueryError{Field: "source", Msg: "is required"}
	case CleanCity(q.Destination) == "":
		return &QueryError{Field: "destination", Msg: "is required"}
	case q.StartDate.IsZero():
		return &QueryError{Field: "start_date", Msg: "is required"}
	case q.NumDays < 1:
		return &QueryError{Field: "num_days", Msg: "must be at least 1"}
	case q.NumDays > MaxDays:
		return &QueryError{Field: "num_days", Msg: fmt.Sprintf("must be at most %d", MaxDays)}
	case q.Mode != ModeCar && q.Mode != ModeFlight:
		return &QueryError{Field: "mode", Msg: "must be car or flight"}
	}
	return nil
}

// SourceCity and DestinationCity return the normalized city keys used by
// every curated lookup and by the synthetic seed.
func (q TripQuery) SourceCity() string      { return CleanCity(q.Source) }
func (q TripQuery) DestinationCity() string { return CleanCity(q.Destination) }

// EndDate is the checkout date.
func (q TripQuery) EndDate() time.Time { return q.StartDate.AddDate(0, 0, q.NumDays) }

// CleanCity lowercases, keeps the part before the first comma and trims.
// "Goa, India" -> "goa".
func CleanCity(s string) string {
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(strings.TrimSpace(s))
}

// TitleCity renders a cleaned city for display ("new delhi" -> "New Delhi").
func TitleCity(s string) string {
	words := strings.Fields(CleanCity(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
