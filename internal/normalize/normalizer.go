package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"trip_planner/internal/catalog"
	"trip_planner/internal/domain"
	"trip_planner/internal/synth"
)

// Normalizer converts raw records into canonical ones. Missing fields are
// back-filled from the synthetic generator and listed in Filled.
type Normalizer struct {
	gen *synth.Generator
	cat *catalog.Catalog
}

func New(gen *synth.Generator) *Normalizer {
	return &Normalizer{gen: gen, cat: gen.Catalog()}
}

func sourceOf(raw domain.RawRecord) string {
	if s := lookupStr(raw, "source"); s != "" {
		return s
	}
	return "unknown"
}

// Route normalizes route card i. Records beyond the third card are dropped.
func (n *Normalizer) Route(q domain.TripQuery, raw domain.RawRecord, i int) (domain.RouteOption, bool) {
	idx := i
	if v, ok := intAlias(raw, routeAliases, "index"); ok {
		idx = v
	}
	if idx < 0 || idx >= len(domain.RouteKinds) {
		return domain.RouteOption{}, false
	}
	card := deref(firstAlias(raw, routeAliases, "text"))
	page := deref(firstAlias(raw, routeAliases, "page"))
	fill := n.gen.Route(q, idx)

	var g gaps
	out := domain.RouteOption{RouteName: domain.RouteKinds[idx], Source: sourceOf(raw)}

	var fromPage bool
	if km, ok := n.cat.KnownDistance(q.SourceCity(), q.DestinationCity()); ok {
		out.DistanceKM = km * synth.Multiplier(idx)
	} else if f := floatAlias(raw, routeAliases, "distance"); f != nil && *f > 0 {
		out.DistanceKM = *f
	} else if km, ok := First(deref(firstAlias(raw, routeAliases, "distance")), NumericDistance); ok {
		out.DistanceKM = km
	} else if km, ok := First(page, PageDistance(idx)...); ok {
		out.DistanceKM, fromPage = km, true
	} else if km, ok := First(card, CardDistance); ok {
		out.DistanceKM = km
	} else {
		out.DistanceKM = fill.DistanceKM
		g.add(domain.FieldDistance)
	}

	if d, ok := First(deref(firstAlias(raw, routeAliases, "duration")), RouteDuration); ok {
		out.Duration = d
	} else if d, ok := First(card, RouteDuration); ok {
		out.Duration = d
	} else if d, ok := TimeDistanceDuration(page); ok && fromPage {
		out.Duration = d
	} else {
		out.Duration = synth.DeriveDuration(out.DistanceKM)
		g.add(domain.FieldDuration)
	}

	if v, ok := First(deref(firstAlias(raw, routeAliases, "via")), viaField); ok {
		out.Via, out.Description = v, v
	} else if v, ok := First(card, Via); ok {
		out.Via, out.Description = v, v
	} else {
		out.Via = "Via Highway"
		out.Description = n.cat.RouteDescription[idx]
		g.add(domain.FieldVia)
	}
	out.Filled = g.list()
	return out, true
}

func viaField(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if v, ok := Via(s); ok {
		return v, true
	}
	return "Via " + s, true
}

// Flight normalizes one flight card. A record without an airline is dropped.
func (n *Normalizer) Flight(q domain.TripQuery, raw domain.RawRecord, i int) (domain.FlightOption, bool) {
	text := deref(firstAlias(raw, flightAliases, "text"))
	airline := deref(firstAlias(raw, flightAliases, "airline"))
	if airline == "" {
		airline = n.airlineIn(text)
	}
	if airline == "" {
		return domain.FlightOption{}, false
	}
	fill := n.gen.Flight(q, i)
	var g gaps
	out := domain.FlightOption{Airline: airline, Source: sourceOf(raw), IsReal: true}

	if num, ok := First(deref(firstAlias(raw, flightAliases, "number")), FlightNumberIn); ok {
		out.FlightNumber = num
	} else if num, ok := First(text, FlightNumberIn); ok {
		out.FlightNumber = num
	} else {
		out.FlightNumber = synth.FlightNumber(airline, i)
		g.add(domain.FieldFlightNumber)
	}

	clocks := Clocks(text)
	dep, depOK := Clock(deref(firstAlias(raw, flightAliases, "departure")))
	if !depOK && len(clocks) > 0 {
		dep, depOK = clocks[0], true
	}
	arr, arrOK := Clock(deref(firstAlias(raw, flightAliases, "arrival")))
	if !arrOK && len(clocks) > 1 {
		arr, arrOK = clocks[1], true
	}
	dur, durOK := FlightMinutes(deref(firstAlias(raw, flightAliases, "duration")))
	if !durOK {
		dur, durOK = First(text, func(s string) (int, bool) {
			return FlightMinutes(reFlightDur.FindString(s))
		})
	}

	if !depOK {
		dep, _ = Clock(fill.Departure)
		g.add(domain.FieldDeparture)
	}
	switch {
	case durOK && !arrOK:
		arr = dep + dur
		g.add(domain.FieldArrival)
	case !durOK && arrOK:
		dur = ((arr-dep)%1440 + 1440) % 1440
		g.add(domain.FieldDuration)
	case !durOK && !arrOK:
		dur, _ = FlightMinutes(fill.Duration)
		arr = dep + dur
		g.add(domain.FieldDuration)
		g.add(domain.FieldArrival)
	}
	out.Departure = formatClock(dep)
	out.Arrival = formatClock(arr)
	out.Duration = formatFlightDuration(dur)

	if p, ok := First(deref(firstAlias(raw, flightAliases, "price")), Amount); ok && p > 0 {
		out.Price = n.gen.Price(int(p))
	} else if p, ok := First(text, PriceInText); ok && p > 0 {
		out.Price = n.gen.Price(int(p))
	} else {
		out.Price = fill.Price
		g.add(domain.FieldPrice)
	}
	out.Filled = g.list()
	return out, true
}

func (n *Normalizer) airlineIn(text string) string {
	lower := strings.ToLower(text)
	for _, a := range n.cat.Airlines {
		if strings.Contains(lower, strings.ToLower(a)) {
			return a
		}
	}
	return ""
}

// Hotel normalizes one hotel listing. A record without a name is dropped;
// an unparseable price becomes the reference nightly rate.
func (n *Normalizer) Hotel(q domain.TripQuery, raw domain.RawRecord, i int) (domain.HotelOption, bool) {
	text := deref(firstAlias(raw, hotelAliases, "text"))
	name := deref(firstAlias(raw, hotelAliases, "name"))
	if name == "" && text != "" {
		name = strings.TrimSpace(strings.SplitN(text, "\n", 2)[0])
	}
	if name == "" {
		return domain.HotelOption{}, false
	}
	seed := synth.Seed(q.Destination)
	var g gaps
	out := domain.HotelOption{Name: name, Source: sourceOf(raw)}

	if loc := deref(firstAlias(raw, hotelAliases, "location")); loc != "" {
		out.Location = loc
	} else {
		out.Location = domain.TitleCity(q.Destination)
		g.add(domain.FieldLocation)
	}

	if p, ok := First(deref(firstAlias(raw, hotelAliases, "price")), Amount); ok && p > 0 {
		out.Price = strconv.Itoa(int(p))
	} else if p, ok := First(text, PriceInText); ok && p > 0 {
		out.Price = strconv.Itoa(int(p))
	} else {
		out.Price = strconv.Itoa(synth.ReferenceNightly)
		g.add(domain.FieldPrice)
	}

	if r, ok := First(deref(firstAlias(raw, hotelAliases, "rating")), RatingNumber); ok {
		out.Rating = fmt.Sprintf("%.1f", r)
	} else if r, ok := First(text, RatingInText); ok {
		out.Rating = fmt.Sprintf("%.1f", r)
	} else {
		out.Rating = synth.Rating(seed, i)
		g.add(domain.FieldRating)
	}

	if am := sliceAlias(raw, hotelAliases, "amenities"); len(am) > 0 {
		out.Amenities = am
	} else {
		out.Amenities = n.gen.LiveAmenities()
		g.add(domain.FieldAmenities)
	}
	out.Filled = g.list()
	return out, true
}

// Attraction normalizes a destination attraction.
func (n *Normalizer) Attraction(q domain.TripQuery, raw domain.RawRecord, i int) (domain.Attraction, bool) {
	out, g, ok := n.attraction(q, raw, i, synth.Seed(q.Destination))
	if !ok {
		return out, false
	}
	if out.Description == "" {
		out.Description = fmt.Sprintf("Popular tourist attraction in %s.", domain.TitleCity(q.Destination))
		g.add(domain.FieldDescription)
	}
	out.Filled = g.list()
	return out, true
}

const minRouteDescription = 50

// RouteAttraction normalizes a stop between the endpoints.
func (n *Normalizer) RouteAttraction(q domain.TripQuery, raw domain.RawRecord, i int) (domain.Attraction, bool) {
	out, g, ok := n.attraction(q, raw, i, synth.Seed(q.Source)+synth.Seed(q.Destination))
	if !ok {
		return out, false
	}
	from, to := domain.TitleCity(q.Source), domain.TitleCity(q.Destination)
	switch {
	case out.Description == "":
		out.Description = fmt.Sprintf("Popular tourist attraction on the route from %s to %s.", from, to)
		g.add(domain.FieldDescription)
	case len(out.Description) < minRouteDescription:
		out.Description += fmt.Sprintf(" This is a popular stop for travelers on the route from %s to %s.", from, to)
	}
	if out.LocationContext == "" {
		out.LocationContext = fmt.Sprintf("On the route from %s to %s", from, to)
		g.add(domain.FieldContext)
	}
	out.Filled = g.list()
	return out, true
}

func (n *Normalizer) attraction(q domain.TripQuery, raw domain.RawRecord, i, seed int) (domain.Attraction, gaps, bool) {
	name := deref(firstAlias(raw, attractionAliases, "name"))
	if name == "" {
		return domain.Attraction{}, nil, false
	}
	var g gaps
	out := domain.Attraction{
		Name:            name,
		Description:     deref(firstAlias(raw, attractionAliases, "description")),
		LocationContext: deref(firstAlias(raw, attractionAliases, "context")),
		Source:          sourceOf(raw),
	}
	if r, ok := First(deref(firstAlias(raw, attractionAliases, "rating")), RatingNumber); ok {
		out.Rating = fmt.Sprintf("%.1f", r)
	} else {
		out.Rating = synth.Rating(seed, i)
		g.add(domain.FieldRating)
	}
	return out, g, true
}

// Key is the case-insensitive dedupe key for named records.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
