package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    WorkStatus
		to      WorkStatus
		allowed bool
	}{
		{"draft to active", WorkStatusDraft, WorkStatusActive, true},
		{"draft to cancelled", WorkStatusDraft, WorkStatusCancelled, true},
		{"draft to completed", WorkStatusDraft, WorkStatusCompleted, false},
		{"active to completed", WorkStatusActive, WorkStatusCompleted, true},
		{"active to cancelled", WorkStatusActive, WorkStatusCancelled, true},
		{"active to draft", WorkStatusActive, WorkStatusDraft, false},
		{"completed to archived", WorkStatusCompleted, WorkStatusArchived, true},
		{"cancelled to archived", WorkStatusCancelled, WorkStatusArchived, true},
		{"completed to active", WorkStatusCompleted, WorkStatusActive, false},
		{"archived is terminal", WorkStatusArchived, WorkStatusActive, false},
		{"no self transition", WorkStatusActive, WorkStatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestWorkStatusIsTerminal(t *testing.T) {
	assert.True(t, WorkStatusCompleted.IsTerminal())
	assert.True(t, WorkStatusCancelled.IsTerminal())
	assert.False(t, WorkStatusDraft.IsTerminal())
	assert.False(t, WorkStatusActive.IsTerminal())
}

func TestDMAICPhaseIndex(t *testing.T) {
	assert.Equal(t, 0, DMAICDefine.Index())
	assert.Equal(t, 1, DMAICMeasure.Index())
	assert.Equal(t, 4, DMAICControl.Index())
	assert.Equal(t, -1, DMAICPhase("verify").Index())
}

func TestDMAICPhaseIsValid(t *testing.T) {
	for _, phase := range DMAICOrder {
		assert.True(t, phase.IsValid(), "phase %s should be valid", phase)
	}
	assert.False(t, DMAICPhase("").IsValid())
	assert.False(t, DMAICPhase("sustain").IsValid())
}

func TestMethodologyIsValid(t *testing.T) {
	for _, m := range AllMethodologies {
		assert.True(t, m.IsValid(), "methodology %s should be valid", m)
	}
	assert.False(t, Methodology("six-sigma").IsValid())
	assert.False(t, Methodology("").IsValid())
}

func TestPriorityIsValid(t *testing.T) {
	for _, p := range AllPriorities {
		assert.True(t, p.IsValid())
	}
	assert.False(t, Priority("urgent").IsValid())
}
