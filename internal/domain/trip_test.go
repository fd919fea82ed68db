package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip_planner/internal/domain"
)

func TestNewTripQuery(t *testing.T) {
	q, err := domain.NewTripQuery(" Hyderabad ", "Goa, India", "2025-03-10", 3, "Car")
	require.NoError(t, err)
	assert.Equal(t, "Hyderabad", q.Source)
	assert.Equal(t, domain.ModeCar, q.Mode)
	assert.Equal(t, "2025-03-13", q.EndDate().Format(domain.DateLayout))
}

func TestNewTripQuery_Invalid(t *testing.T) {
	cases := map[string]struct {
		src, dst, date, mode string
		days                 int
		field                string
	}{
		"no source":     {"", "Goa", "2025-03-10", "car", 1, "source"},
		"bad date":      {"A", "Goa", "10/03/2025", "car", 1, "start_date"},
		"zero days":     {"A", "Goa", "2025-03-10", "car", 0, "num_days"},
		"too many days": {"A", "Goa", "2025-03-10", "car", domain.MaxDays + 1, "num_days"},
		"huge days":     {"A", "Goa", "2025-03-10", "car", 100000000, "num_days"},
		"bad mode":      {"A", "Goa", "2025-03-10", "bus", 1, "mode"},
	}
	for name, c := range cases {
		_, err := domain.NewTripQuery(c.src, c.dst, c.date, c.days, c.mode)
		require.Error(t, err, name)
		assert.ErrorIs(t, err, domain.ErrInvalidQuery, name)
		var qe *domain.QueryError
		require.True(t, errors.As(err, &qe), name)
		assert.Equal(t, c.field, qe.Field, name)
	}

	_, err := domain.NewTripQuery("A", "Goa", "2025-03-10", domain.MaxDays, "flight")
	assert.NoError(t, err)
}
