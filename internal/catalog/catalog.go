// Package catalog holds the curated lookup tables used to bias normalization
// and synthetic generation toward known-good values. A Catalog is built once
// and shared read-only; nothing in it is mutated after construction.
package catalog

import (
	"slices"
	"strings"
)

type CityPair struct {
	From, To string
}

type Distance struct {
	Pair CityPair
	KM   float64
}

type Towns struct {
	Pair  CityPair
	Towns []string
}

type Place struct {
	Name        string
	Description string
	Rating      string
}

type Hotel struct {
	Name      string
	Location  string
	Price     string
	Rating    string
	Amenities []string
}

// AttractionType pairs a generated attraction suffix with its description.
type AttractionType struct {
	Type, Description string
}

type Catalog struct {
	Distances        []Distance
	Routes           []Towns
	Attractions      map[string][]Place
	CityAliases      map[string]string
	Hotels           map[string][]Hotel
	RoutePlaces      map[string][]Place // "from-to"
	DestinationTips  map[string][]string
	GenericTips      []string
	ModeTips         map[string][]string
	Airlines         []string
	HotelPrefixes    []string
	HotelSuffixes    []string
	HotelAmenities   [][]string
	LiveAmenities    []string
	PlacePrefixes    []string
	AttractionTypes  []AttractionType
	Activities       []string
	Cuisines         []string
	EveningPlans     []string
	RouteDescription []string // by route index
}

// Default returns a fresh catalog with the built-in tables.
func Default() *Catalog {
	return &Catalog{
		Distances:        knownDistances(),
		Routes:           intermediateTowns(),
		Attractions:      cityAttractions(),
		CityAliases:      cityAliases(),
		Hotels:           cityHotels(),
		RoutePlaces:      routePlaces(),
		DestinationTips:  destinationTips(),
		GenericTips:      genericTips(),
		ModeTips:         modeTips(),
		Airlines:         []string{"IndiGo", "Air India", "SpiceJet", "Vistara", "GoAir"},
		HotelPrefixes:    []string{"Grand", "Royal", "Hotel", "The", "Luxury"},
		HotelSuffixes:    []string{"Resort", "Hotel", "Inn", "Suites", "Palace"},
		HotelAmenities:   hotelAmenitySets(),
		LiveAmenities:    []string{"Wi-Fi", "Breakfast", "Air Conditioning", "Swimming Pool"},
		PlacePrefixes:    []string{"Royal", "Grand", "Ancient", "Famous", "Beautiful", "Historic", "Central", "Golden", "Silver", "Crystal"},
		AttractionTypes:  attractionTypes(),
		Activities:       activities(),
		Cuisines:         []string{"authentic local", "seafood", "vegetarian", "international", "fusion", "traditional", "gourmet", "street food"},
		EveningPlans:     eveningPlans(),
		RouteDescription: []string{"Main Highway", "Secondary Road", "Local Road"},
	}
}

// Canonical maps alias city names to their catalog key.
func (c *Catalog) Canonical(city string) string {
	city = strings.ToLower(strings.TrimSpace(city))
	if v, ok := c.CityAliases[city]; ok {
		return v
	}
	return city
}

// KnownDistance looks a pair up by exact match, then reversed, then by
// substring match in either direction.
func (c *Catalog) KnownDistance(from, to string) (float64, bool) {
	from, to = c.Canonical(from), c.Canonical(to)
	if from == "" || to == "" {
		return 0, false
	}
	for _, d := range c.Distances {
		if d.Pair.From == from && d.Pair.To == to {
			return d.KM, true
		}
	}
	for _, d := range c.Distances {
		if d.Pair.From == to && d.Pair.To == from {
			return d.KM, true
		}
	}
	for _, d := range c.Distances {
		if (partial(from, d.Pair.From) && partial(to, d.Pair.To)) ||
			(partial(from, d.Pair.To) && partial(to, d.Pair.From)) {
			return d.KM, true
		}
	}
	return 0, false
}

// IntermediateTowns returns known midpoint towns ordered from -> to.
func (c *Catalog) IntermediateTowns(from, to string) []string {
	from, to = c.Canonical(from), c.Canonical(to)
	if from == "" || to == "" {
		return nil
	}
	for _, r := range c.Routes {
		if r.Pair.From == from && r.Pair.To == to {
			return slices.Clone(r.Towns)
		}
	}
	for _, r := range c.Routes {
		if r.Pair.From == to && r.Pair.To == from {
			return reversed(r.Towns)
		}
	}
	for _, r := range c.Routes {
		switch {
		case partial(from, r.Pair.From) && partial(to, r.Pair.To):
			return slices.Clone(r.Towns)
		case partial(from, r.Pair.To) && partial(to, r.Pair.From):
			return reversed(r.Towns)
		}
	}
	return nil
}

// CityAttractions returns the curated attractions for a destination.
func (c *Catalog) CityAttractions(city string) ([]Place, bool) {
	ps, ok := c.Attractions[c.Canonical(city)]
	return slices.Clone(ps), ok && len(ps) > 0
}

// CityHotels matches a curated hotel list by substring, so "north goa"
// still finds goa.
func (c *Catalog) CityHotels(city string) ([]Hotel, bool) {
	city = c.Canonical(city)
	if hs, ok := c.Hotels[city]; ok {
		return slices.Clone(hs), true
	}
	keys := make([]string, 0, len(c.Hotels))
	for k := range c.Hotels {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if strings.Contains(city, k) {
			return slices.Clone(c.Hotels[k]), true
		}
	}
	return nil, false
}

// RouteSpecificPlaces returns curated stops for a pair in either direction.
func (c *Catalog) RouteSpecificPlaces(from, to string) ([]Place, bool) {
	for _, k := range []string{from + "-" + to, to + "-" + from} {
		if ps, ok := c.RoutePlaces[k]; ok {
			return slices.Clone(ps), true
		}
	}
	from, to = c.Canonical(from), c.Canonical(to)
	for _, k := range []string{from + "-" + to, to + "-" + from} {
		if ps, ok := c.RoutePlaces[k]; ok {
			return slices.Clone(ps), true
		}
	}
	return nil, false
}

// Tips returns generic, mode and destination tips in that order.
func (c *Catalog) Tips(destination, mode string) []string {
	out := slices.Clone(c.GenericTips)
	out = append(out, c.ModeTips[mode]...)
	city := c.Canonical(destination)
	keys := make([]string, 0, len(c.DestinationTips))
	for k := range c.DestinationTips {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if strings.Contains(city, k) {
			out = append(out, c.DestinationTips[k]...)
			break
		}
	}
	return out
}

// IsDestinationPlace reports whether name is one of the curated
// attractions of city (case-insensitive).
func (c *Catalog) IsDestinationPlace(city, name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range c.Attractions[c.Canonical(city)] {
		if strings.ToLower(p.Name) == name {
			return true
		}
	}
	return false
}

func partial(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func reversed(in []string) []string {
	out := slices.Clone(in)
	slices.Reverse(out)
	return out
}
