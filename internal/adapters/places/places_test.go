package places_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip_planner/internal/adapters/places"
	"trip_planner/internal/catalog"
	"trip_planner/internal/domain"
)

func trip(src, dst string) domain.TripQuery {
	return domain.TripQuery{
		Source: src, Destination: dst,
		StartDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		NumDays:   3, Mode: domain.ModeCar,
	}
}

func place(name string) map[string]any {
	return map[string]any{"displayName": map[string]any{"text": name}, "rating": 4.4}
}

func TestNew_RequiresKey(t *testing.T) {
	_, err := places.New("http://x", "h", "", 1)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestSearchText_RequestShape(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/places:searchText", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-rapidapi-key"))
		assert.Equal(t, "places.example", r.Header.Get("x-rapidapi-host"))
		assert.Equal(t, "*", r.Header.Get("X-Goog-FieldMask"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "top tourist attractions in goa india", body["textQuery"])
		assert.Equal(t, "IN", body["regionCode"])
		_ = json.NewEncoder(w).Encode(map[string]any{"places": []any{place("Fort Aguada"), place("Dudhsagar Falls")}})
	}))
	defer ts.Close()

	cl, err := places.New(ts.URL+"/", "places.example", "secret", 100)
	require.NoError(t, err)
	recs, err := places.NewAttractions(cl).Fetch(context.Background(), trip("Hyderabad", "Goa, India"))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Fort Aguada", recs[0]["displayName"].(map[string]any)["text"])
}

func TestAttractions_NullPlacesDropped(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"places":[null,{"displayName":{"text":"Chapora Fort"}},null]}`))
	}))
	defer ts.Close()

	cl, err := places.New(ts.URL, "places.example", "secret", 100)
	require.NoError(t, err)
	raw, err := cl.SearchText(context.Background(), "goa")
	require.NoError(t, err)
	require.Len(t, raw, 1)

	recs, err := places.NewAttractions(&fakeSearch{byQuery: map[string][]map[string]any{
		"top tourist attractions in goa india": {nil, place("Fort Aguada")},
	}}).Fetch(context.Background(), trip("Hyderabad", "Goa"))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.NotNil(t, recs[0])
}

type fakeSearch struct {
	byQuery map[string][]map[string]any
	fail    map[string]bool
	calls   []string
}

func (f *fakeSearch) SearchText(_ context.Context, q string) ([]map[string]any, error) {
	f.calls = append(f.calls, q)
	if f.fail[q] {
		return nil, errors.New("boom")
	}
	return f.byQuery[q], nil
}

func TestRouteAttractions_QueriesIncludeTowns(t *testing.T) {
	s := places.NewRouteAttractions(&fakeSearch{}, catalog.Default(), zerolog.Nop())
	qs := s.Queries(trip("Hyderabad", "Goa"))
	require.Len(t, qs, 7)
	assert.Equal(t, "tourist attractions on the way from hyderabad to goa india", qs[0])
	assert.Equal(t, "tourist attractions in belgaum india", qs[4])
}

func TestRouteAttractions_FiltersAndStops(t *testing.T) {
	first := "tourist attractions on the way from hyderabad to goa india"
	third := "tourist spots midway between hyderabad and goa india"
	fs := &fakeSearch{
		byQuery: map[string][]map[string]any{
			first: {place("Old Goa Church"), place("Belgaum Fort")},
			third: {place("Gokak Falls"), place("Hampi")},
		},
		fail: map[string]bool{"famous places between hyderabad and goa not in goa india": true},
	}
	recs, err := places.NewRouteAttractions(fs, catalog.Default(), zerolog.Nop()).Fetch(context.Background(), trip("Hyderabad", "Goa"))
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "On the route from Hyderabad to Goa", recs[0]["location_context"])
	assert.Len(t, fs.calls, 3)
	for _, r := range recs {
		name := r["displayName"].(map[string]any)["text"].(string)
		assert.False(t, strings.Contains(strings.ToLower(name), "goa"))
	}
}

func TestRouteAttractions_AllQueriesFail(t *testing.T) {
	fs := &fakeSearch{fail: map[string]bool{}}
	s := places.NewRouteAttractions(fs, catalog.Default(), zerolog.Nop())
	q := trip("Pune", "Nashik")
	for _, query := range s.Queries(q) {
		fs.fail[query] = true
	}
	_, err := s.Fetch(context.Background(), q)
	assert.Error(t, err)
}
