// Package compose turns acquired records into a day-by-day itinerary.
package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"trip_planner/internal/domain"
	"trip_planner/internal/llmtext"
)

const itinerarySystem = "You are an expert travel planner with deep knowledge of global destinations, local cuisines, " +
	"cultural attractions, and travel logistics. Create highly detailed, personalized itineraries that include specific " +
	"recommendations for attractions, restaurants, activities, and experiences. Your response must be in valid JSON format only."

// Composer asks the text generator for an itinerary and repairs or
// replaces whatever comes back. With no generator it always uses the
// template.
type Composer struct {
	llm domain.TextGenerator
	tpl *Template
	val *validator
	log zerolog.Logger
}

func NewComposer(llm domain.TextGenerator, tpl *Template, log zerolog.Logger) (*Composer, error) {
	v, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("itinerary schema: %w", err)
	}
	return &Composer{llm: llm, tpl: tpl, val: v, log: log}, nil
}

// Compose always returns a complete itinerary with NumDays daily plans and
// at least five tips.
func (c *Composer) Compose(ctx context.Context, in Input) domain.Itinerary {
	if c.llm == nil {
		return c.tpl.Build(in)
	}
	text, err := c.llm.Generate(ctx, c.request(in))
	if err != nil {
		c.log.Warn().Err(&domain.CollaboratorFailure{Op: "itinerary", Err: err}).Msg("itinerary generation failed, using template")
		return c.tpl.Build(in)
	}
	it, err := c.fromText(in, text)
	if err != nil {
		c.log.Warn().Err(err).Int("chars", len(text)).Msg("itinerary response rejected, using template")
		return c.tpl.Build(in)
	}
	if len(it.Repaired) > 0 {
		c.log.Info().Strs("sections", it.Repaired).Msg("itinerary sections regenerated")
	}
	return it
}

func (c *Composer) fromText(in Input, text string) (domain.Itinerary, error) {
	obj, err := llmtext.Object(text)
	if err != nil {
		return domain.Itinerary{}, &domain.CollaboratorFailure{Op: "itinerary", Err: err}
	}
	rep, err := c.val.check(obj)
	if err != nil {
		return domain.Itinerary{}, &domain.CollaboratorFailure{Op: "itinerary", Err: err}
	}
	if len(rep.missing) > 0 {
		return domain.Itinerary{}, &domain.ValidationFailure{Section: strings.Join(rep.missing, ","), Reason: "missing"}
	}

	tpl := c.tpl.Build(in)
	it := domain.Itinerary{Origin: domain.OriginLLM}
	repaired := map[string]bool{}
	text3 := []struct {
		name string
		dst  *string
		def  string
	}{
		{"summary", &it.Summary, tpl.Summary},
		{"travel_details", &it.TravelDetails, tpl.TravelDetails},
		{"accommodation", &it.Accommodation, tpl.Accommodation},
	}
	for _, s := range text3 {
		v, ok := obj[s.name].(string)
		if rep.invalid(s.name) || !ok {
			*s.dst = s.def
			repaired[s.name] = true
			continue
		}
		*s.dst = strings.TrimSpace(v)
	}

	it.DailyPlans = c.days(in.Query, obj, rep, tpl.DailyPlans, repaired)

	if tips, ok := stringList(obj["tips"]); ok && !rep.invalid("tips") && len(tips) >= tipCount {
		it.Tips = tips
	} else {
		it.Tips = tpl.Tips
		repaired["tips"] = true
	}

	for _, s := range requiredSections {
		if repaired[s] {
			it.Repaired = append(it.Repaired, s)
		}
	}
	return it, nil
}

// days keeps valid model days, swaps invalid ones for the template day at
// the same position and pads or truncates to NumDays. Date and kind are
// always positional.
func (c *Composer) days(q domain.TripQuery, obj map[string]any, rep report, fallback []domain.DayPlan, repaired map[string]bool) []domain.DayPlan {
	raw, _ := obj["daily_plans"].([]any)
	if rep.plansBad {
		raw = nil
	}
	if len(raw) != q.NumDays || rep.invalid("daily_plans") {
		repaired["daily_plans"] = true
	}
	out := make([]domain.DayPlan, 0, q.NumDays)
	for i := 0; i < q.NumDays; i++ {
		p := fallback[i]
		if i < len(raw) && !rep.days[i] {
			if m, ok := raw[i].(map[string]any); ok {
				p = domain.DayPlan{
					Morning:   str(m, "morning"),
					Afternoon: str(m, "afternoon"),
					Evening:   str(m, "evening"),
				}
			}
		}
		p.Date = DayDate(q, i)
		p.Kind = KindFor(i, q.NumDays)
		out = append(out, p)
	}
	return out
}

func (c *Composer) request(in Input) domain.GenerateRequest {
	q := in.Query
	var b strings.Builder
	b.WriteString("Create a detailed and engaging travel itinerary for a trip with the following details:\n\nTRIP DETAILS:\n")
	fmt.Fprintf(&b, "- From: %s\n- To: %s\n", q.Source, q.Destination)
	switch {
	case q.Mode == domain.ModeFlight && len(in.Flights) > 0:
		f := in.Flights[0]
		fmt.Fprintf(&b, "- Transportation: Flying with %s %s\n- Distance: N/A\n- Travel Duration: %s\n", f.Airline, f.FlightNumber, f.Duration)
	case q.Mode == domain.ModeFlight:
		b.WriteString("- Transportation: Flying\n- Distance: N/A\n- Travel Duration: unknown duration\n")
	case len(in.Routes) > 0:
		r := in.Routes[0]
		via := strings.TrimSpace(r.Via)
		if via == "" {
			via = "Via main route"
		}
		fmt.Fprintf(&b, "- Transportation: Driving %s\n- Distance: %.0f km\n- Travel Duration: %s\n", strings.ToLower(via[:1])+via[1:], r.DistanceKM, r.Duration)
	default:
		b.WriteString("- Transportation: Driving\n- Distance: unknown distance\n- Travel Duration: unknown duration\n")
	}
	fmt.Fprintf(&b, "- Start Date: %s\n- Duration: %d days\n\n", q.StartDate.Format(domain.DateLayout), q.NumDays)

	b.WriteString("ACCOMMODATION:\n")
	if len(in.Hotels) > 0 {
		h := in.Hotels[0]
		fmt.Fprintf(&b, "- Hotel Name: %s\n- Location: %s\n- Price: %s%s per night\n- Rating: %s/5\n- Amenities: %s\n\n",
			h.Name, h.Location, c.tpl.gen.Currency(), h.Price, h.Rating, strings.Join(h.Amenities, ", "))
	} else {
		b.WriteString("- Hotel Name: Not specified\n\n")
	}

	names := make([]string, 0, 8)
	for i, a := range in.Attractions {
		if i == 8 {
			break
		}
		names = append(names, a.Name)
	}
	fmt.Fprintf(&b, "ATTRACTIONS:\n%s\n\n", strings.Join(names, ", "))

	dates := make([]string, 0, q.NumDays)
	for i := 0; i < q.NumDays; i++ {
		dates = append(dates, DayDate(q, i))
	}
	fmt.Fprintf(&b, "DATES:\n%s\n\n", strings.Join(dates, ", "))

	b.WriteString(`The itinerary should include a compelling summary, detailed travel information, accommodation details,
a day-by-day plan with specific morning, afternoon and evening activities, and 5 useful travel tips specific to the
destination, season and mode of travel. Name actual restaurants, attractions and local dishes.

Format the response as a JSON object with the following structure:
{
  "summary": "string",
  "travel_details": "string",
  "accommodation": "string",
  "daily_plans": [
    {"date": "string (formatted as 'Day of week, Month day, Year')", "morning": "string", "afternoon": "string", "evening": "string"}
  ],
  "tips": ["string"]
}

Ensure the JSON is properly formatted and contains all the required fields.`)

	return domain.GenerateRequest{
		System:      itinerarySystem,
		Prompt:      b.String(),
		Format:      domain.FormatJSONObject,
		MaxTokens:   4000,
		Temperature: 0.7,
	}
}

func str(m map[string]any, k string) string {
	s, _ := m[k].(string)
	return strings.TrimSpace(s)
}

func stringList(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, false
		}
		out = append(out, strings.TrimSpace(s))
	}
	return out, true
}
