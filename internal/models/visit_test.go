package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisitStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, VisitStatus("unknown").Valid())
	assert.False(t, VisitStatus("").Valid())
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    VisitStatus
		to      VisitStatus
		allowed bool
	}{
		{"pending to in_progress", StatusPending, StatusInProgress, true},
		{"pending to completed", StatusPending, StatusCompleted, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"in_progress to completed", StatusInProgress, StatusCompleted, true},
		{"in_progress to cancelled", StatusInProgress, StatusCancelled, true},
		{"in_progress back to pending", StatusInProgress, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusPending, false},
		{"completed to cancelled", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"cancelled to completed", StatusCancelled, StatusCompleted, false},
		{"no self transition", StatusPending, StatusPending, false},
		{"unknown target", StatusPending, VisitStatus("bogus"), false},
		{"unknown source", VisitStatus("bogus"), StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusInProgress.Terminal())
}
