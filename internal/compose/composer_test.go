package compose_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip_planner/internal/catalog"
	"trip_planner/internal/compose"
	"trip_planner/internal/domain"
	"trip_planner/internal/synth"
)

type fakeLLM struct {
	text string
	err  error
	got  domain.GenerateRequest
}

func (f *fakeLLM) Generate(_ context.Context, req domain.GenerateRequest) (string, error) {
	f.got = req
	return f.text, f.err
}

func input(days int, mode domain.Mode) compose.Input {
	return compose.Input{Query: domain.TripQuery{
		Source: "Hyderabad", Destination: "Goa",
		StartDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		NumDays:   days, Mode: mode,
	}}
}

func newComposer(t *testing.T, llm domain.TextGenerator) (*compose.Composer, *compose.Template) {
	t.Helper()
	tpl := compose.NewTemplate(synth.New(catalog.Default(), "₹"))
	c, err := compose.NewComposer(llm, tpl, zerolog.Nop())
	require.NoError(t, err)
	return c, tpl
}

func plan(morning string) map[string]any {
	return map[string]any{"date": "x", "morning": morning, "afternoon": "lunch by the river", "evening": "night market"}
}

func itinerary(days int, tips int) string {
	plans := make([]any, 0, days)
	for i := 0; i < days; i++ {
		plans = append(plans, plan("llm morning"))
	}
	ts := make([]string, 0, tips)
	for i := 0; i < tips; i++ {
		ts = append(ts, "tip")
	}
	b, _ := json.Marshal(map[string]any{
		"summary": "A sunny week", "travel_details": "Drive NH48", "accommodation": "Beach hut",
		"daily_plans": plans, "tips": ts,
	})
	return string(b)
}

func assertShape(t *testing.T, it domain.Itinerary, days int) {
	t.Helper()
	require.Len(t, it.DailyPlans, days)
	assert.GreaterOrEqual(t, len(it.Tips), 5)
	assert.Equal(t, domain.DayArrival, it.DailyPlans[0].Kind)
	if days > 1 {
		assert.Equal(t, domain.DayDeparture, it.DailyPlans[days-1].Kind)
	}
	for i := 1; i < days-1; i++ {
		assert.Equal(t, domain.DayExplore, it.DailyPlans[i].Kind)
	}
	assert.Equal(t, "Monday, March 10, 2025", it.DailyPlans[0].Date)
}

func TestCompose_NoGeneratorUsesTemplate(t *testing.T) {
	c, _ := newComposer(t, nil)
	it := c.Compose(context.Background(), input(3, domain.ModeCar))
	assert.Equal(t, domain.OriginTemplate, it.Origin)
	assertShape(t, it, 3)
	assert.Equal(t, "A 3-day trip from Hyderabad to Goa by car.", it.Summary)
	assert.Equal(t, "Wednesday, March 12, 2025", it.DailyPlans[2].Date)
}

func TestCompose_GeneratorErrorUsesTemplate(t *testing.T) {
	c, tpl := newComposer(t, &fakeLLM{err: errors.New("503")})
	in := input(2, domain.ModeFlight)
	assert.Equal(t, tpl.Build(in), c.Compose(context.Background(), in))
}

func TestCompose_MissingTipsFallsBackToTemplate(t *testing.T) {
	body := `Sure! Here is your plan: {"summary": "s", "travel_details": "t", "accommodation": "a",
		"daily_plans": [{"date": "d", "morning": "m", "afternoon": "a", "evening": "e"}]} Enjoy!`
	c, _ := newComposer(t, &fakeLLM{text: body})
	it := c.Compose(context.Background(), input(3, domain.ModeCar))
	assert.Equal(t, domain.OriginTemplate, it.Origin)
	assertShape(t, it, 3)
}

func TestCompose_UnparseableUsesTemplate(t *testing.T) {
	c, _ := newComposer(t, &fakeLLM{text: "I cannot help with that."})
	it := c.Compose(context.Background(), input(2, domain.ModeCar))
	assert.Equal(t, domain.OriginTemplate, it.Origin)
	assertShape(t, it, 2)
}

func TestCompose_ValidResponseKept(t *testing.T) {
	llm := &fakeLLM{text: "```json\n" + itinerary(3, 6) + "\n```"}
	c, _ := newComposer(t, llm)
	it := c.Compose(context.Background(), input(3, domain.ModeCar))
	assert.Equal(t, domain.OriginLLM, it.Origin)
	assert.Empty(t, it.Repaired)
	assertShape(t, it, 3)
	assert.Equal(t, "A sunny week", it.Summary)
	assert.Equal(t, "llm morning", it.DailyPlans[1].Morning)
	assert.Len(t, it.Tips, 6)

	assert.Equal(t, domain.FormatJSONObject, llm.got.Format)
	assert.Equal(t, 4000, llm.got.MaxTokens)
	assert.Contains(t, llm.got.Prompt, "- From: Hyderabad")
	assert.Contains(t, llm.got.Prompt, "Monday, March 10, 2025, Tuesday, March 11, 2025")
}

func TestCompose_ShortTipsRepaired(t *testing.T) {
	c, tpl := newComposer(t, &fakeLLM{text: itinerary(2, 2)})
	in := input(2, domain.ModeCar)
	it := c.Compose(context.Background(), in)
	assert.Equal(t, domain.OriginLLM, it.Origin)
	assert.Equal(t, []string{"tips"}, it.Repaired)
	assert.Equal(t, tpl.Tips(in.Query), it.Tips)
}

func TestCompose_PadsAndTruncatesDays(t *testing.T) {
	c, tpl := newComposer(t, &fakeLLM{text: itinerary(1, 5)})
	in := input(3, domain.ModeCar)
	it := c.Compose(context.Background(), in)
	assertShape(t, it, 3)
	assert.Equal(t, "llm morning", it.DailyPlans[0].Morning)
	assert.Equal(t, tpl.DailyPlans(in)[2].Morning, it.DailyPlans[2].Morning)
	assert.Equal(t, []string{"daily_plans"}, it.Repaired)

	c, _ = newComposer(t, &fakeLLM{text: itinerary(4, 5)})
	it = c.Compose(context.Background(), input(2, domain.ModeCar))
	assertShape(t, it, 2)
	assert.Equal(t, "llm morning", it.DailyPlans[1].Morning)
	assert.Equal(t, []string{"daily_plans"}, it.Repaired)
}

func TestCompose_InvalidDayReplaced(t *testing.T) {
	bad := plan("llm morning")
	delete(bad, "evening")
	b, err := json.Marshal(map[string]any{
		"summary": "", "travel_details": "t", "accommodation": "a",
		"daily_plans": []any{plan("first"), bad, plan("third")},
		"tips":        []string{"1", "2", "3", "4", "5"},
	})
	require.NoError(t, err)
	c, tpl := newComposer(t, &fakeLLM{text: string(b)})
	in := input(3, domain.ModeCar)
	it := c.Compose(context.Background(), in)

	assert.Equal(t, domain.OriginLLM, it.Origin)
	assert.Equal(t, []string{"summary", "daily_plans"}, it.Repaired)
	assert.Equal(t, tpl.Summary(in.Query), it.Summary)
	assert.Equal(t, "first", it.DailyPlans[0].Morning)
	assert.Equal(t, tpl.DailyPlans(in)[1].Evening, it.DailyPlans[1].Evening)
	assert.Equal(t, "third", it.DailyPlans[2].Morning)
	assertShape(t, it, 3)
}

func TestTemplate_RouteStopsOnDayOne(t *testing.T) {
	_, tpl := newComposer(t, nil)
	in := input(2, domain.ModeCar)
	in.Routes = []domain.RouteOption{{RouteName: domain.RouteFastest, DistanceKM: 635, Duration: "10 hr 35 min", Via: "Via NH65"}}
	in.RouteAttractions = []domain.Attraction{{Name: "Belgaum Fort", Description: "Old fort"}}
	it := tpl.Build(in)

	assert.Contains(t, it.DailyPlans[0].Morning, "making stops at Belgaum Fort")
	assert.True(t, strings.HasPrefix(it.TravelDetails, "Drive from source to destination via NH65. Distance: 635 km."))
	assert.Contains(t, it.TravelDetails, "1. Belgaum Fort - Old fort")
	assert.Equal(t, "Check-out from the hotel and head to the airport/station for the return journey.", it.DailyPlans[1].Afternoon)
}

func TestTemplate_Deterministic(t *testing.T) {
	_, tpl := newComposer(t, nil)
	in := input(5, domain.ModeFlight)
	assert.Equal(t, tpl.Build(in), tpl.Build(in))
	assert.Len(t, tpl.Tips(in.Query), 5)
	assert.Equal(t, "Fly from source to destination. Flight details not available.", tpl.TravelDetails(in))
	assert.Equal(t, "Accommodation details not available.", tpl.Accommodation(nil))
}

func TestKindFor_SingleDay(t *testing.T) {
	assert.Equal(t, domain.DayArrival, compose.KindFor(0, 1))
	assert.Equal(t, domain.DayExplore, compose.KindFor(1, 3))
	assert.Equal(t, domain.DayDeparture, compose.KindFor(2, 3))
}

func TestTemplate_LongTripCyclesShortAttractionList(t *testing.T) {
	_, tpl := newComposer(t, nil)
	in := input(domain.MaxDays, domain.ModeFlight)
	in.Attractions = []domain.Attraction{{Name: "Fort Aguada"}, {Name: "Chapora Fort"}}

	it := tpl.Build(in)
	assertShape(t, it, domain.MaxDays)
	// day 2 starts at pool index 3 % 2
	assert.Contains(t, it.DailyPlans[1].Morning, "Chapora Fort")
	assert.Contains(t, it.DailyPlans[1].Afternoon, "Fort Aguada")
	assert.Len(t, in.Attractions, 2)
}
