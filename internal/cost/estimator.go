// Package cost estimates trip spending from normalized records.
package cost

import (
	"math"
	"strconv"
	"strings"

	"trip_planner/internal/domain"
)

// Config holds the market-specific constants of the estimate.
type Config struct {
	FuelPricePerLiter    float64
	MileageKMPL          float64
	FuelFallback         float64
	FlightFallback       float64
	HotelReference       float64
	HotelBandLow         float64
	HotelBandHigh        float64
	FoodPerDay           float64
	LocalTransportPerDay float64
}

func DefaultConfig() Config {
	return Config{
		FuelPricePerLiter:    98,
		MileageKMPL:          15,
		FuelFallback:         2000,
		FlightFallback:       5000,
		HotelReference:       1500,
		HotelBandLow:         1200,
		HotelBandHigh:        1800,
		FoodPerDay:           1000,
		LocalTransportPerDay: 500,
	}
}

// Breakdown is mode dependent: car trips carry Fuel, flight trips carry
// Flight and LocalTransport. Total is the sum of the present components.
type Breakdown struct {
	Fuel           *float64 `json:"fuel,omitempty"`
	Flight         *float64 `json:"flight,omitempty"`
	Hotel          float64  `json:"hotel"`
	Food           float64  `json:"food"`
	LocalTransport *float64 `json:"local_transport,omitempty"`
	Total          float64  `json:"total"`
	NumNights      int      `json:"num_nights"`
}

// Inputs are the records the estimate reads.
type Inputs struct {
	Routes  []domain.RouteOption
	Flights []domain.FlightOption
	Hotels  []domain.HotelOption
}

type Estimator struct {
	cfg Config
}

func NewEstimator(cfg Config) *Estimator { return &Estimator{cfg: cfg} }

// Estimate never fails; every unparseable input has a fallback.
func (e *Estimator) Estimate(q domain.TripQuery, in Inputs) Breakdown {
	days := float64(q.NumDays)
	b := Breakdown{
		Hotel:     e.NightlyRate(in.Hotels) * days,
		Food:      e.cfg.FoodPerDay * days,
		NumNights: q.NumDays,
	}
	switch q.Mode {
	case domain.ModeFlight:
		flight := e.FlightCost(in.Flights)
		local := e.cfg.LocalTransportPerDay * days
		b.Flight, b.LocalTransport = &flight, &local
		b.Total = flight + b.Hotel + b.Food + local
	default:
		fuel := e.FuelCost(in.Routes)
		b.Fuel = &fuel
		b.Total = fuel + b.Hotel + b.Food
	}
	return b
}

// FuelCost uses the first route's distance.
func (e *Estimator) FuelCost(routes []domain.RouteOption) float64 {
	if len(routes) == 0 || routes[0].DistanceKM <= 0 || e.cfg.MileageKMPL <= 0 {
		return e.cfg.FuelFallback
	}
	return routes[0].DistanceKM / e.cfg.MileageKMPL * e.cfg.FuelPricePerLiter
}

// FlightCost is the cheapest parseable fare.
func (e *Estimator) FlightCost(flights []domain.FlightOption) float64 {
	best := math.Inf(1)
	for _, f := range flights {
		if p, ok := parsePrice(f.Price); ok && p > 0 && p < best {
			best = p
		}
	}
	if math.IsInf(best, 1) {
		return e.cfg.FlightFallback
	}
	return best
}

// NightlyRate averages hotel prices, counting unparseable ones at the
// reference rate. An average outside the sanity band is replaced by the
// reference rate.
func (e *Estimator) NightlyRate(hotels []domain.HotelOption) float64 {
	if len(hotels) == 0 {
		return e.cfg.HotelReference
	}
	var sum float64
	for _, h := range hotels {
		p, ok := parsePrice(h.Price)
		if !ok {
			p = e.cfg.HotelReference
		}
		sum += p
	}
	avg := sum / float64(len(hotels))
	if avg < e.cfg.HotelBandLow || avg > e.cfg.HotelBandHigh {
		return e.cfg.HotelReference
	}
	return avg
}

var priceNoise = strings.NewReplacer(",", "", "/night", "", "Rs.", "", "INR", "")

func parsePrice(s string) (float64, bool) {
	s = priceNoise.Replace(s)
	s = strings.TrimFunc(s, func(r rune) bool {
		return !(r >= '0' && r <= '9') && r != '.'
	})
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
