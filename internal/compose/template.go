package compose

import (
	"fmt"
	"math/rand"
	"strings"

	"trip_planner/internal/domain"
	"trip_planner/internal/synth"
)

const (
	attractionsPerDay = 3
	tipCount          = 5
	dailyPlanSeed     = 42
	dayLayout         = "Monday, January 02, 2006"
)

// Input is everything the composer reads.
type Input struct {
	Query            domain.TripQuery
	Routes           []domain.RouteOption
	Flights          []domain.FlightOption
	Hotels           []domain.HotelOption
	Attractions      []domain.Attraction
	RouteAttractions []domain.Attraction
}

// Template builds the deterministic itinerary. Output depends only on the
// Input.
type Template struct {
	gen *synth.Generator
}

func NewTemplate(gen *synth.Generator) *Template { return &Template{gen: gen} }

func (t *Template) Build(in Input) domain.Itinerary {
	return domain.Itinerary{
		Summary:       t.Summary(in.Query),
		TravelDetails: t.TravelDetails(in),
		Accommodation: t.Accommodation(in.Hotels),
		DailyPlans:    t.DailyPlans(in),
		Tips:          t.Tips(in.Query),
		Origin:        domain.OriginTemplate,
	}
}

func (t *Template) Summary(q domain.TripQuery) string {
	return fmt.Sprintf("A %d-day trip from %s to %s by %s.", q.NumDays, q.Source, q.Destination, q.Mode)
}

func (t *Template) TravelDetails(in Input) string {
	if in.Query.Mode == domain.ModeFlight {
		if len(in.Flights) == 0 {
			return "Fly from source to destination. Flight details not available."
		}
		f := in.Flights[0]
		return fmt.Sprintf("Fly with %s %s. Departure: %s. Arrival: %s. Duration: %s. Price: %s.",
			f.Airline, f.FlightNumber, f.Departure, f.Arrival, f.Duration, f.Price)
	}
	if len(in.Routes) == 0 {
		return "Drive from source to destination. Details not available."
	}
	r := in.Routes[0]
	via := strings.TrimSpace(strings.TrimPrefix(r.Via, "Via "))
	if via == "" {
		via = "main route"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Drive from source to destination via %s. Distance: %.0f km. Estimated travel time: %s.",
		via, r.DistanceKM, r.Duration)
	if len(in.RouteAttractions) > 0 {
		b.WriteString("\n\nPoints of Interest Along the Route:")
		for i, a := range in.RouteAttractions {
			fmt.Fprintf(&b, "\n%d. %s - %s", i+1, a.Name, a.Description)
		}
	}
	return b.String()
}

func (t *Template) Accommodation(hotels []domain.HotelOption) string {
	if len(hotels) == 0 {
		return "Accommodation details not available."
	}
	h := hotels[0]
	amenities := "Not specified"
	if len(h.Amenities) > 0 {
		amenities = strings.Join(h.Amenities, ", ")
	}
	return fmt.Sprintf("Stay at %s located at %s. Price: %s%s per night. Rating: %s/5. Amenities: %s.",
		h.Name, h.Location, t.gen.Currency(), h.Price, h.Rating, amenities)
}

// DailyPlans gives every day three attractions, repeating the list when it
// is short. Day one of a car trip with route stops describes the drive.
func (t *Template) DailyPlans(in Input) []domain.DayPlan {
	q := in.Query
	cat := t.gen.Catalog()
	pool := in.Attractions
	if len(pool) == 0 {
		pool = t.gen.Attractions(q)
	}
	rng := rand.New(rand.NewSource(dailyPlanSeed))
	pick := func(xs []string) string { return xs[rng.Intn(len(xs))] }

	plans := make([]domain.DayPlan, 0, q.NumDays)
	for day := 0; day < q.NumDays; day++ {
		var at [attractionsPerDay]domain.Attraction
		for k := range at {
			at[k] = pool[(day*attractionsPerDay+k)%len(pool)]
		}
		p := domain.DayPlan{Date: DayDate(q, day), Kind: KindFor(day, q.NumDays)}
		switch {
		case day == 0 && q.Mode == domain.ModeCar && len(in.RouteAttractions) > 0:
			stops := make([]string, 0, len(in.RouteAttractions))
			for _, a := range in.RouteAttractions {
				stops = append(stops, a.Name)
			}
			p.Morning = fmt.Sprintf("Start your journey by car, making stops at %s along the way. Enjoy the scenic drive and take in the beautiful landscapes.", strings.Join(stops, ", "))
			p.Afternoon = fmt.Sprintf("Continue your journey, arriving at %s by late afternoon. Take some time to relax and settle in after your drive.", at[0].Name)
			p.Evening = fmt.Sprintf("Check-in to your accommodation and then head to %s for a relaxing evening, followed by dinner at a local %s restaurant.", at[1].Name, pick(cat.Cuisines))
		case day == 0:
			desc := at[1].Description
			if desc == "" {
				desc = "a popular attraction"
			}
			p.Morning = fmt.Sprintf("Check-in at your accommodation, freshen up, and head to %s for some relaxation and lunch.", at[0].Name)
			p.Afternoon = fmt.Sprintf("Visit the %s, %s, and explore the nearby streets.", at[1].Name, strings.TrimSuffix(desc, "."))
			p.Evening = fmt.Sprintf("Enjoy dinner at a local %s restaurant and %s.", pick(cat.Cuisines), pick(cat.EveningPlans))
		case day == q.NumDays-1:
			p.Morning = fmt.Sprintf("Take a final visit to %s to %s.", at[0].Name, pick(cat.Activities))
			p.Afternoon = "Check-out from the hotel and head to the airport/station for the return journey."
			p.Evening = "Travel back to your home city with wonderful memories of your trip."
		default:
			p.Morning = fmt.Sprintf("Start your day with a visit to %s. Spend time %s and enjoying the local atmosphere.", at[0].Name, pick(cat.Activities))
			p.Afternoon = fmt.Sprintf("After lunch, explore %s. This is a perfect place for %s.", at[1].Name, pick(cat.Activities))
			p.Evening = fmt.Sprintf("In the evening, visit %s followed by dinner at a %s restaurant. Later, %s.", at[2].Name, pick(cat.Cuisines), pick(cat.EveningPlans))
		}
		plans = append(plans, p)
	}
	return plans
}

// DayDate renders the calendar date of trip day n.
func DayDate(q domain.TripQuery, n int) string {
	return q.StartDate.AddDate(0, 0, n).Format(dayLayout)
}

// KindFor labels a day by position: the first is the arrival, the last
// the departure.
func KindFor(day, numDays int) string {
	switch {
	case day == 0:
		return domain.DayArrival
	case day == numDays-1:
		return domain.DayDeparture
	default:
		return domain.DayExplore
	}
}

// Tips samples five tips with a shuffle seeded by the destination name.
func (t *Template) Tips(q domain.TripQuery) []string {
	all := t.gen.Catalog().Tips(q.Destination, string(q.Mode))
	if len(all) <= tipCount {
		return all
	}
	seed := int64(0)
	for _, r := range q.Destination {
		seed += int64(r)
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]string, 0, tipCount)
	for _, i := range rng.Perm(len(all))[:tipCount] {
		out = append(out, all[i])
	}
	return out
}
