//go:build integration || !unit

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpserver "trip_planner/internal/adapters/http_server"
	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/app"
	"trip_planner/internal/cost"
	"trip_planner/internal/domain"
	"trip_planner/internal/shared"
)

// ---------- fake upstreams ----------

const routesPage = `<html><body>
<div role="radio"><div>10 hr 35 min</div><div>640 km</div><div>via NH65</div></div>
<div role="radio"><div>11 hr 40 min</div><div>700 km</div><div>via NH48</div></div>
<div role="radio"><div>12 hr 50 min</div><div>770 km</div><div>via NH44</div></div>
</body></html>`

const hotelsPage = `<html><body>
<div class="PVOOXe"><div class="BTPx6e">Palm Grove</div><div class="a1NkSb">₹1,450</div><span class="KFi5wf lA0BZ">4.2</span></div>
<div class="PVOOXe"><div class="BTPx6e">Harbour Inn</div><div class="a1NkSb">₹1,700</div><span class="KFi5wf lA0BZ">4.6</span></div>
<div class="PVOOXe"><div class="BTPx6e">Sea Shell</div><div class="a1NkSb">₹1,300</div><span class="KFi5wf lA0BZ">3.9</span></div>
</body></html>`

func itineraryJSON(days int) string {
	plans := make([]map[string]string, 0, days)
	for i := 0; i < days; i++ {
		plans = append(plans, map[string]string{
			"date": "d", "morning": fmt.Sprintf("Beach walk %d", i+1), "afternoon": "Spice farm", "evening": "Fish thali",
		})
	}
	b, _ := json.Marshal(map[string]any{
		"summary": "Three sunny days in Goa", "travel_details": "Drive via NH65", "accommodation": "Harbour Inn",
		"daily_plans": plans,
		"tips":        []string{"Carry sunscreen", "Rent a scooter", "Try feni", "Respect flags", "Book early"},
	})
	return string(b)
}

const routeStops = `[{"name":"Belgaum Fort","description":"Stone fort with Jain temples and a moat around it.","rating":4.3,"location_context":"In Belgaum"}]`

type upstream struct {
	chats  int32
	places int32
}

func (u *upstream) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/maps/dir/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(routesPage))
	})
	mux.HandleFunc("/travel/hotels/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(hotelsPage))
	})
	mux.HandleFunc("/v1/places:searchText", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&u.places, 1)
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		var places []map[string]any
		if strings.HasPrefix(req["textQuery"], "top tourist attractions in goa") {
			for _, n := range []string{"Fort Aguada", "Dudhsagar Falls", "Anjuna Flea Market", "Chapora Fort", "Palolem Beach"} {
				places = append(places, map[string]any{"displayName": map[string]any{"text": n}, "rating": 4.5})
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"places": places})
	})
	mux.HandleFunc("/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&u.chats, 1)
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		content := routeStops
		if _, ok := req["response_format"]; ok {
			content = itineraryJSON(3)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{map[string]any{"message": map[string]any{"role": "assistant", "content": content}}},
		})
	})
	// Every other page, flight search included, is an empty shell.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>nothing here</p></body></html>"))
	})
	return mux
}

func config(base string) shared.Config {
	return shared.Config{
		AppEnv: "test", PlanTimeout: 10 * time.Second, SourceTimeout: 2 * time.Second,
		Attempts: 1, SourceRPS: 100, Currency: "₹",
		PlacesBase: base, PlacesHost: "places.test", PlacesKey: "k",
		LLMBase: base, LLMKey: "k", LLMModel: "test-model",
		MapsBase: base, FlightsSearch: base + "/search",
		HotelsGoogle: base, HotelsBooking: base, HotelsGoibibo: base, HotelsMMT: base,
		Cost: cost.DefaultConfig(),
	}
}

func newAPI(t *testing.T, cfg shared.Config) *httptest.Server {
	t.Helper()
	planner, err := app.Build(cfg, zerolog.Nop())
	require.NoError(t, err)
	srv := httpserver.New(zerolog.Nop(), cfg.PlanTimeout)
	srv.Mount("/metrics", observability.MetricsHandler(observability.InitRegistry()))
	srv.MountHandlers(&httpserver.Handlers{P: planner, PlanTimeout: cfg.PlanTimeout})
	return httptest.NewServer(srv.Mux())
}

func postPlan(t *testing.T, api, body string) (*http.Response, app.Plan) {
	t.Helper()
	resp, err := http.Post(api+"/v1/plans", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	var plan app.Plan
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&plan))
	}
	return resp, plan
}

// ---------- tests ----------

func TestE2E_CarTrip(t *testing.T) {
	up := &upstream{}
	ups := httptest.NewServer(up.handler(t))
	defer ups.Close()
	api := newAPI(t, config(ups.URL))
	defer api.Close()

	resp, plan := postPlan(t, api.URL,
		`{"source":"Hyderabad","destination":"Goa","start_date":"2025-03-10","num_days":3,"mode":"car"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, plan.Routes, 3)
	assert.Equal(t, 635.0, plan.Routes[0].DistanceKM)
	assert.Equal(t, "Via NH65", plan.Routes[0].Via)
	assert.Equal(t, "google_maps", plan.Routes[0].Source)

	require.Len(t, plan.Hotels, 3)
	assert.Equal(t, "Harbour Inn", plan.Hotels[0].Name)
	assert.Equal(t, "live", acquire(plan, domain.DomainHotels))

	assert.Len(t, plan.Attractions, 5)
	assert.Equal(t, "Fort Aguada", plan.Attractions[0].Name)
	assert.Equal(t, "live", acquire(plan, domain.DomainAttractions))

	require.NotEmpty(t, plan.RouteAttractions)
	assert.Equal(t, "Belgaum Fort", plan.RouteAttractions[0].Name)

	assert.Equal(t, domain.OriginLLM, plan.Itinerary.Origin)
	require.Len(t, plan.Itinerary.DailyPlans, 3)
	assert.Equal(t, domain.DayDeparture, plan.Itinerary.DailyPlans[2].Kind)
	assert.Equal(t, "Wednesday, March 12, 2025", plan.Itinerary.DailyPlans[2].Date)

	require.NotNil(t, plan.Cost.Fuel)
	assert.InDelta(t, 635.0/15*98, *plan.Cost.Fuel, 1e-6)
	assert.InDelta(t, (1450.0+1700+1300)/3*3, plan.Cost.Hotel, 1e-6)
	assert.EqualValues(t, 2, atomic.LoadInt32(&up.chats))
}

func TestE2E_FlightTripFallsBackToSynthetic(t *testing.T) {
	ups := httptest.NewServer((&upstream{}).handler(t))
	defer ups.Close()
	api := newAPI(t, config(ups.URL))
	defer api.Close()

	resp, plan := postPlan(t, api.URL,
		`{"source":"Hyderabad","destination":"Goa","start_date":"2025-03-10","num_days":2,"mode":"flight"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, plan.Flights, 3)
	assert.Equal(t, "synthetic", acquire(plan, domain.DomainFlights))
	assert.Empty(t, plan.Routes)
	require.NotNil(t, plan.Cost.Flight)
	require.NotNil(t, plan.Cost.LocalTransport)
	assert.InDelta(t, *plan.Cost.Flight+plan.Cost.Hotel+plan.Cost.Food+*plan.Cost.LocalTransport, plan.Cost.Total, 1e-9)
}

func TestE2E_UpstreamDownStillPlans(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer dead.Close()
	api := newAPI(t, config(dead.URL))
	defer api.Close()

	resp, plan := postPlan(t, api.URL,
		`{"source":"Jaipur","destination":"Delhi","start_date":"2025-11-01","num_days":2,"mode":"car"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.OriginTemplate, plan.Itinerary.Origin)
	assert.Len(t, plan.Itinerary.DailyPlans, 2)
	assert.GreaterOrEqual(t, len(plan.Itinerary.Tips), 5)
	assert.Equal(t, "synthetic", acquire(plan, domain.DomainRoutes))
	assert.Equal(t, "Red Fort", plan.Attractions[0].Name)
}

func TestE2E_InvalidQueryAndMetrics(t *testing.T) {
	ups := httptest.NewServer((&upstream{}).handler(t))
	defer ups.Close()
	api := newAPI(t, config(ups.URL))
	defer api.Close()

	resp, _ := postPlan(t, api.URL, `{"source":"","destination":"Goa","start_date":"2025-03-10","num_days":1,"mode":"car"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	m, err := http.Get(api.URL + "/metrics")
	require.NoError(t, err)
	defer m.Body.Close()
	assert.Equal(t, http.StatusOK, m.StatusCode)
}

func acquire(p app.Plan, d domain.Domain) string { return string(p.Provenance[d].Outcome) }
