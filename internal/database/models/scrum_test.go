package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterationDurationDays(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	iteration := Iteration{
		Name:      "Sprint 1",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 14),
	}

	assert.Equal(t, 14, iteration.DurationDays())
}

func TestIterationMarshalJSON(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	iteration := Iteration{
		Name:        "Sprint 1",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 14),
		Status:      IterationStatusPlanned,
		LockVersion: 3,
	}

	raw, err := json.Marshal(iteration)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.EqualValues(t, 14, decoded["duration_days"])
	assert.EqualValues(t, 3, decoded["lock_version"])
	assert.NotContains(t, decoded, "LockVersion")
}
