// Package synth fabricates complete, plausible records when no live source
// produced usable data. Every output is a pure function of the TripQuery.
package synth

import (
	"fmt"
	"math"
	"strings"

	"trip_planner/internal/catalog"
	"trip_planner/internal/domain"
)

// Route variant multipliers by index.
var routeMultipliers = [3]float64{1.0, 1.05, 1.10}

var (
	routeVia   = [3]string{"Via National Highway", "Via State Highway", "Via Scenic Roads"}
	routeDescr = [3]string{"Via National Highway", "Via State Highway", "Via Local Roads"}
)

const (
	ReferenceNightly = 1500
	routeTarget      = 3
	flightTarget     = 3
	hotelTarget      = 3
	attractionTarget = 5
)

type Generator struct {
	cat      *catalog.Catalog
	currency string
}

func New(cat *catalog.Catalog, currency string) *Generator {
	if currency == "" {
		currency = "₹"
	}
	return &Generator{cat: cat, currency: currency}
}

func (g *Generator) Catalog() *catalog.Catalog { return g.cat }
func (g *Generator) Currency() string          { return g.currency }

// Seed is the sum of the code points of the cleaned city name.
func Seed(city string) int {
	n := 0
	for _, r := range domain.CleanCity(city) {
		n += int(r)
	}
	return n
}

// Rating returns 4.0 + ((seed+i)%10)/10 formatted "X.Y".
func Rating(seed, i int) string {
	return fmt.Sprintf("%.1f", 4.0+float64((seed+i)%10)/10)
}

// routeRating keeps generated route stops in [4.1, 4.8].
func routeRating(seed, i int) string {
	return fmt.Sprintf("%.1f", 4.1+float64((seed+i)%8)/10)
}

// DeriveDuration converts km to a drive time at 60 km/h. The remainder in
// minutes is rounded to the nearest 5; "H hr 60 min" is possible.
func DeriveDuration(km float64) string {
	hours := int(km / 60)
	minutes := int(math.Round((km/60-float64(hours))*60/5)) * 5
	if hours > 0 {
		return fmt.Sprintf("%d hr %d min", hours, minutes)
	}
	return fmt.Sprintf("%d min", minutes)
}

// BaseDistance is the curated distance for the pair, or the name-length
// heuristic when the pair is unknown.
func (g *Generator) BaseDistance(q domain.TripQuery) float64 {
	if km, ok := g.cat.KnownDistance(q.SourceCity(), q.DestinationCity()); ok {
		return km
	}
	return float64(300 + 10*(len(q.SourceCity())+len(q.DestinationCity())))
}

// Multiplier is the distance factor of route variant i.
func Multiplier(i int) float64 { return routeMultipliers[clampIndex(i, len(routeMultipliers))] }

// Route returns the synthetic variant for card index i (0..2).
func (g *Generator) Route(q domain.TripQuery, i int) domain.RouteOption {
	i = clampIndex(i, len(routeMultipliers))
	km := g.BaseDistance(q) * routeMultipliers[i]
	return domain.RouteOption{
		RouteName:   domain.RouteKinds[i],
		DistanceKM:  km,
		Duration:    DeriveDuration(km),
		Via:         routeVia[i],
		Description: routeDescr[i],
		Source:      domain.SourceGenerated,
	}
}

func (g *Generator) Routes(q domain.TripQuery) []domain.RouteOption {
	out := make([]domain.RouteOption, 0, routeTarget)
	for i := 0; i < routeTarget; i++ {
		out = append(out, g.Route(q, i))
	}
	return out
}

// Flight returns the synthetic flight for index i.
func (g *Generator) Flight(q domain.TripQuery, i int) domain.FlightOption {
	airline := g.cat.Airlines[i%len(g.cat.Airlines)]
	dep := 6 + i
	dur := 2 + i%3
	return domain.FlightOption{
		Airline:      airline,
		FlightNumber: FlightNumber(airline, i),
		Departure:    fmt.Sprintf("%02d:00", dep),
		Arrival:      fmt.Sprintf("%02d:30", (dep+dur)%24),
		Duration:     fmt.Sprintf("%dh 30m", dur),
		Price:        g.Price(4000 + i*800),
		Source:       domain.SourceGenerated,
	}
}

func (g *Generator) Flights(q domain.TripQuery) []domain.FlightOption {
	out := make([]domain.FlightOption, 0, flightTarget)
	for i := 0; i < flightTarget; i++ {
		out = append(out, g.Flight(q, i))
	}
	return out
}

// FlightNumber builds "IN-100", "AI-211", ...
func FlightNumber(airline string, i int) string {
	code := strings.ToUpper(airline)
	if r := []rune(code); len(r) > 2 {
		code = string(r[:2])
	}
	return fmt.Sprintf("%s-%d", code, 100+i*111)
}

// Price renders a currency-prefixed amount ("₹ 4000").
func (g *Generator) Price(amount int) string {
	return fmt.Sprintf("%s %d", g.currency, amount)
}

// Hotels returns the curated list for known destinations, otherwise
// generated prefix/suffix combinations.
func (g *Generator) Hotels(q domain.TripQuery) []domain.HotelOption {
	if hs, ok := g.cat.CityHotels(q.DestinationCity()); ok {
		out := make([]domain.HotelOption, 0, len(hs))
		for _, h := range hs {
			out = append(out, domain.HotelOption{
				Name: h.Name, Location: h.Location, Price: h.Price, Rating: h.Rating,
				Amenities: append([]string(nil), h.Amenities...), Source: domain.SourceCurated,
			})
		}
		return out
	}
	out := make([]domain.HotelOption, 0, hotelTarget)
	for i := 0; i < hotelTarget; i++ {
		out = append(out, g.Hotel(q, i))
	}
	return out
}

// Hotel returns generated hotel i for the destination.
func (g *Generator) Hotel(q domain.TripQuery, i int) domain.HotelOption {
	seed := Seed(q.Destination)
	city := domain.TitleCity(q.Destination)
	prefix := g.cat.HotelPrefixes[(seed+i)%len(g.cat.HotelPrefixes)]
	suffix := g.cat.HotelSuffixes[(seed+i+2)%len(g.cat.HotelSuffixes)]
	return domain.HotelOption{
		Name:      fmt.Sprintf("%s %s %s", prefix, city, suffix),
		Location:  city + ", India",
		Price:     fmt.Sprintf("%d", g.HotelPrice(seed, i)),
		Rating:    Rating(seed, i),
		Amenities: g.HotelAmenities(i),
		Source:    domain.SourceGenerated,
	}
}

// HotelPrice is the reference rate plus a deterministic variation of 0..290.
func (g *Generator) HotelPrice(seed, i int) int {
	return ReferenceNightly + ((seed+i*10)%30)*10
}

func (g *Generator) HotelAmenities(i int) []string {
	set := g.cat.HotelAmenities[i%len(g.cat.HotelAmenities)]
	return append([]string(nil), set...)
}

// LiveAmenities is the default set for live hotels that list none.
func (g *Generator) LiveAmenities() []string {
	return append([]string(nil), g.cat.LiveAmenities...)
}

// Attractions returns the curated list for known destinations, otherwise
// five generated prefix/type combinations.
func (g *Generator) Attractions(q domain.TripQuery) []domain.Attraction {
	if ps, ok := g.cat.CityAttractions(q.DestinationCity()); ok {
		out := make([]domain.Attraction, 0, len(ps))
		for _, p := range ps {
			out = append(out, domain.Attraction{
				Name: p.Name, Description: p.Description, Rating: p.Rating, Source: domain.SourceCurated,
			})
		}
		return out
	}
	out := make([]domain.Attraction, 0, attractionTarget)
	for i := 0; i < attractionTarget; i++ {
		out = append(out, g.Attraction(q, i))
	}
	return out
}

// Attraction returns generated attraction i. Consecutive indexes never
// repeat a type.
func (g *Generator) Attraction(q domain.TripQuery, i int) domain.Attraction {
	seed := Seed(q.Destination)
	typ := g.cat.AttractionTypes[(seed+i)%len(g.cat.AttractionTypes)]
	prefix := g.cat.PlacePrefixes[(seed+i)%len(g.cat.PlacePrefixes)]
	return domain.Attraction{
		Name:        fmt.Sprintf("%s %s %s", prefix, domain.TitleCity(q.Destination), typ.Type),
		Description: typ.Description,
		Rating:      Rating(seed, i),
		Source:      domain.SourceGenerated,
	}
}

// RouteAttractions builds stops between the endpoints: curated route
// stops first, then known intermediate towns, then generic roadside stops.
func (g *Generator) RouteAttractions(q domain.TripQuery) []domain.Attraction {
	src, dst := q.SourceCity(), q.DestinationCity()
	from, to := domain.TitleCity(src), domain.TitleCity(dst)
	seed := Seed(src) + Seed(dst)
	onRoute := fmt.Sprintf("On the route from %s to %s", from, to)

	if ps, ok := g.cat.RouteSpecificPlaces(src, dst); ok {
		out := make([]domain.Attraction, 0, len(ps))
		for i, p := range ps {
			out = append(out, domain.Attraction{
				Name: p.Name, Description: p.Description, Rating: routeRating(seed, i),
				LocationContext: onRoute, Source: domain.SourceCurated,
			})
		}
		return out
	}

	var out []domain.Attraction
	for i, town := range g.cat.IntermediateTowns(src, dst) {
		if len(out) == routeTarget {
			break
		}
		if strings.Contains(town, src) || strings.Contains(town, dst) {
			continue
		}
		place := domain.TitleCity(town)
		out = append(out, domain.Attraction{
			Name:            place + " Tourist Spot",
			Description:     fmt.Sprintf("A popular attraction in %s, perfect for a stop on your journey from %s to %s.", place, from, to),
			Rating:          routeRating(seed, i),
			LocationContext: fmt.Sprintf("In %s, on the route from %s to %s", place, from, to),
			Source:          domain.SourceGenerated,
		})
	}
	if len(out) > 0 {
		return out
	}
	return g.RoadsideStops(q)
}

// RoadsideStops are generic stops that name neither endpoint.
func (g *Generator) RoadsideStops(q domain.TripQuery) []domain.Attraction {
	from, to := domain.TitleCity(q.Source), domain.TitleCity(q.Destination)
	onRoute := fmt.Sprintf("On the route from %s to %s", from, to)
	return []domain.Attraction{
		{
			Name:            "Scenic Highway Viewpoint",
			Description:     fmt.Sprintf("A beautiful scenic spot to stop and enjoy the views on your journey from %s to %s.", from, to),
			Rating:          "4.3",
			LocationContext: fmt.Sprintf("Midway on the route from %s to %s", from, to),
			Source:          domain.SourceGenerated,
		},
		{
			Name:            "Historical Monument on the Highway",
			Description:     fmt.Sprintf("An ancient monument with historical significance located on the route from %s to %s.", from, to),
			Rating:          "4.5",
			LocationContext: onRoute,
			Source:          domain.SourceGenerated,
		},
		{
			Name:            "Roadside Lake Resort",
			Description:     fmt.Sprintf("A peaceful lake resort where travelers can take a break during their journey from %s to %s.", from, to),
			Rating:          "4.2",
			LocationContext: fmt.Sprintf("About 60%% of the way from %s to %s", from, to),
			Source:          domain.SourceGenerated,
		},
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
