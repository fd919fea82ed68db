package webclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip_planner/internal/adapters/webclient"
)

func noWait(int) time.Duration { return 0 }

func TestGetJSON_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k", r.Header.Get("X-Api-Key"))
		switch atomic.AddInt32(&hits, 1) {
		case 1:
			w.WriteHeader(http.StatusServiceUnavailable)
		case 2:
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 7.0})
		}
	}))
	defer ts.Close()

	cl := webclient.New("test", webclient.Options{RPS: 100, Headers: map[string]string{"X-Api-Key": "k"}}).WithBackoff(noWait)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var got map[string]any
	require.NoError(t, cl.GetJSON(ctx, ts.URL+"/x", &got))
	assert.Equal(t, 7.0, got["id"])
	assert.EqualValues(t, 3, atomic.LoadInt32(&hits))
}

func TestGetJSON_GivesUpAfterFourAttempts(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	cl := webclient.New("test", webclient.Options{RPS: 100}).WithBackoff(noWait)
	err := cl.GetJSON(context.Background(), ts.URL, nil)
	require.Error(t, err)
	assert.EqualValues(t, 4, atomic.LoadInt32(&hits))
}

func TestDo_StatusMapping(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		case "/denied":
			w.WriteHeader(http.StatusUnauthorized)
		case "/bad":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(" nope "))
		}
	}))
	defer ts.Close()

	cl := webclient.New("test", webclient.Options{RPS: 100})
	ctx := context.Background()
	_, err := cl.FetchPage(ctx, ts.URL+"/missing")
	assert.ErrorIs(t, err, webclient.ErrNotFound)
	_, err = cl.FetchPage(ctx, ts.URL+"/denied")
	assert.ErrorIs(t, err, webclient.ErrUnauthorized)

	_, err = cl.FetchPage(ctx, ts.URL+"/bad")
	var se *webclient.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 400, se.Code)
	assert.Equal(t, "nope", se.Body)
}

func TestPostJSON_SendsBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["q"]})
	}))
	defer ts.Close()

	var out map[string]string
	cl := webclient.New("test", webclient.Options{RPS: 100})
	require.NoError(t, cl.PostJSON(context.Background(), ts.URL, map[string]string{"q": "goa"}, &out))
	assert.Equal(t, "goa", out["echo"])
}

func TestDo_CanceledDuringBackoff(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	cl := webclient.New("test", webclient.Options{RPS: 100}).WithBackoff(func(int) time.Duration { return time.Hour })
	_, err := cl.FetchPage(ctx, ts.URL)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
