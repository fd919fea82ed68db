package domain

// RawRecord is one unnormalized field map produced by a Source.
// Values are strings, numbers or []any depending on the source.
type RawRecord map[string]any

type RouteKind string

const (
	RouteFastest     RouteKind = "Fastest"
	RouteAlternative RouteKind = "Alternative"
	RouteScenic      RouteKind = "Scenic"
)

// RouteKinds lists the variants by card index.
var RouteKinds = [3]RouteKind{RouteFastest, RouteAlternative, RouteScenic}

// Canonical records. Filled lists fields that were back-filled by the
// synthetic generator instead of extracted from the source.

type RouteOption struct {
	RouteName   RouteKind `json:"route_name"`
	DistanceKM  float64   `json:"distance_km"`
	Duration    string    `json:"duration"`
	Via         string    `json:"via"`
	Description string    `json:"description"`
	Source      string    `json:"source"`
	Filled      []string  `json:"filled,omitempty"`
}

type FlightOption struct {
	Airline      string   `json:"airline"`
	FlightNumber string   `json:"flight_number"`
	Departure    string   `json:"departure"`
	Arrival      string   `json:"arrival"`
	Duration     string   `json:"duration"`
	Price        string   `json:"price"`
	Source       string   `json:"source"`
	IsReal       bool     `json:"is_real"`
	Filled       []string `json:"filled,omitempty"`
}

type HotelOption struct {
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	Price     string   `json:"price"`
	Rating    string   `json:"rating"`
	Amenities []string `json:"amenities"`
	Source    string   `json:"source"`
	Filled    []string `json:"filled,omitempty"`
}

type Attraction struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Rating          string   `json:"rating"`
	LocationContext string   `json:"location_context,omitempty"`
	Source          string   `json:"source"`
	Filled          []string `json:"filled,omitempty"`
}

// Names used in Filled.
const (
	FieldDistance     = "distance_km"
	FieldDuration     = "duration"
	FieldVia          = "via"
	FieldFlightNumber = "flight_number"
	FieldDeparture    = "departure"
	FieldArrival      = "arrival"
	FieldPrice        = "price"
	FieldRating       = "rating"
	FieldLocation     = "location"
	FieldAmenities    = "amenities"
	FieldDescription  = "description"
	FieldContext      = "location_context"
)

// Provenance tags for records that did not come from a live source.
const (
	SourceCurated   = "Fallback Data"
	SourceGenerated = "Generated"
)

// DayPlan kinds.
const (
	DayArrival   = "arrival"
	DayExplore   = "explore"
	DayDeparture = "departure"
)

type DayPlan struct {
	Date      string `json:"date"`
	Kind      string `json:"kind"`
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

// Itinerary origins.
const (
	OriginLLM      = "llm"
	OriginTemplate = "template"
)

type Itinerary struct {
	Summary       string    `json:"summary"`
	TravelDetails string    `json:"travel_details"`
	Accommodation string    `json:"accommodation"`
	DailyPlans    []DayPlan `json:"daily_plans"`
	Tips          []string  `json:"tips"`
	Origin        string    `json:"origin"`
	Repaired      []string  `json:"repaired,omitempty"`
}
