package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip_planner/internal/domain"
)

func TestReadBatch(t *testing.T) {
	in := `# trips
{"source":"Hyderabad","destination":"Goa","start_date":"2025-03-10","num_days":3,"mode":"car"}

{"source":"Mumbai","destination":"Delhi","start_date":"2025-04-01","num_days":2,"mode":"flight"}
`
	qs, err := readBatch(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, domain.ModeCar, qs[0].Mode)
	assert.Equal(t, "Delhi", qs[1].Destination)
	assert.Equal(t, 2, qs[1].NumDays)
}

func TestReadBatch_Errors(t *testing.T) {
	_, err := readBatch(strings.NewReader(`{"source":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")

	_, err = readBatch(strings.NewReader("\n" + `{"source":"A","destination":"B","start_date":"2025-03-10","num_days":1,"mode":"bus"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.True(t, errors.Is(err, domain.ErrInvalidQuery))
}
