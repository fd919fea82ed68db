package llm_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip_planner/internal/adapters/llm"
	"trip_planner/internal/catalog"
	"trip_planner/internal/domain"
)

func trip(src, dst string) domain.TripQuery {
	return domain.TripQuery{
		Source: src, Destination: dst,
		StartDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		NumDays:   2, Mode: domain.ModeCar,
	}
}

func TestNew_RequiresKey(t *testing.T) {
	_, err := llm.New("http://x", "", "m", 1)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestGenerate_ChatCompletion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/openai/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "llama3-70b-8192", body["model"])
		assert.Equal(t, map[string]any{"type": "json_object"}, body["response_format"])
		msgs := body["messages"].([]any)
		require.Len(t, msgs, 2)
		assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"ok\":true}"}}]}`))
	}))
	defer ts.Close()

	cl, err := llm.New(ts.URL+"/openai/v1", "k", "llama3-70b-8192", 100)
	require.NoError(t, err)
	text, err := cl.Generate(context.Background(), domain.GenerateRequest{
		System: "sys", Prompt: "hi", Format: domain.FormatJSONObject, MaxTokens: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, text)
}

func TestGenerate_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	cl, err := llm.New(ts.URL, "k", "m", 100)
	require.NoError(t, err)
	_, err = cl.Generate(context.Background(), domain.GenerateRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, llm.ErrEmptyCompletion)
}

type fakeGen struct {
	text string
	err  error
	req  domain.GenerateRequest
}

func (f *fakeGen) Generate(_ context.Context, req domain.GenerateRequest) (string, error) {
	f.req = req
	return f.text, f.err
}

func TestRouteAttractions_FiltersEndpoints(t *testing.T) {
	gen := &fakeGen{text: `Here you go:
[
 {"name": "Belgaum Fort", "description": "Stone fort with Jain temples.", "rating": 4.3, "location_context": "In Belgaum"},
 {"name": "Goa Gate", "description": "Not between.", "rating": 4.1, "location_context": "In Goa"},
 {"name": "Gokak Falls", "description": "Horseshoe waterfall on the Ghataprabha.", "rating": 4.5, "location_context": "In Goa district"},
 {"name": "Hubli Temple", "description": "Temple", "rating": 4.2, "location_context": "200 km from Hyderabad"},
 {"name": "Nameless", "rating": 4.0}
]`}
	src := llm.NewRouteAttractions(gen, catalog.Default(), zerolog.Nop())
	recs, err := src.Fetch(context.Background(), trip("Hyderabad", "Goa"))
	require.NoError(t, err)

	names := make([]string, 0, len(recs))
	for _, r := range recs {
		names = append(names, r["name"].(string))
	}
	assert.Equal(t, []string{"Belgaum Fort", "Hubli Temple"}, names)
	assert.Equal(t, domain.FormatJSONArray, gen.req.Format)
	assert.Equal(t, 0.2, gen.req.Temperature)
	assert.Contains(t, gen.req.Prompt, "Belgaum, Hubli, Dharwad")
	assert.Contains(t, gen.req.Prompt, "BETWEEN Hyderabad and Goa")
}

func TestRouteAttractions_Failures(t *testing.T) {
	src := llm.NewRouteAttractions(&fakeGen{err: errors.New("quota")}, catalog.Default(), zerolog.Nop())
	_, err := src.Fetch(context.Background(), trip("Delhi", "Jaipur"))
	var cf *domain.CollaboratorFailure
	require.ErrorAs(t, err, &cf)
	assert.Equal(t, "route_attractions", cf.Op)

	src = llm.NewRouteAttractions(&fakeGen{text: "no idea"}, catalog.Default(), zerolog.Nop())
	_, err = src.Fetch(context.Background(), trip("Delhi", "Jaipur"))
	assert.Error(t, err)
}

func TestBetween(t *testing.T) {
	q := trip("Delhi", "Jaipur")
	assert.True(t, llm.Between(q, domain.RawRecord{"name": "Neemrana Fort", "location_context": "120 km from Delhi"}))
	assert.False(t, llm.Between(q, domain.RawRecord{"name": "Jaipur Zoo"}))
	assert.False(t, llm.Between(q, domain.RawRecord{"name": "Amber Fort", "location_context": "near Jaipur"}))
	assert.False(t, llm.Between(q, domain.RawRecord{"name": ""}))
}
