package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedLabels(steps []TrackingStep) []string {
	out := []string{}
	for _, s := range steps {
		if s.Completed {
			out = append(out, s.Label)
		}
	}
	return out
}

func TestTimelineSynthesizedFromStatus(t *testing.T) {
	shippedAt := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	order := Order{
		Status:    "shipped",
		CreatedAt: time.Date(2026, 8, 18, 9, 0, 0, 0, time.UTC),
		ShippedAt: &shippedAt,
	}

	steps := order.Timeline()
	require.Len(t, steps, 6)

	assert.Equal(t, []string{"Order Placed", "Order Confirmed", "Processing", "Shipped"}, completedLabels(steps))
	assert.False(t, steps[4].Completed)
	assert.False(t, steps[5].Completed)

	// Timestamps only attach to completed milestones that have them
	require.NotNil(t, steps[0].CompletedAt)
	assert.Equal(t, order.CreatedAt, *steps[0].CompletedAt)
	require.NotNil(t, steps[3].CompletedAt)
	assert.Equal(t, shippedAt, *steps[3].CompletedAt)
	assert.Nil(t, steps[4].CompletedAt)
}

func TestTimelineDelivered(t *testing.T) {
	order := Order{Status: "delivered", CreatedAt: time.Now()}
	steps := order.Timeline()
	require.Len(t, steps, 6)
	for _, s := range steps {
		assert.True(t, s.Completed, s.Label)
	}
}

func TestTimelineUnknownStatus(t *testing.T) {
	order := Order{Status: "weird-status", CreatedAt: time.Now()}
	steps := order.Timeline()
	require.Len(t, steps, 6)

	// Only the first milestone survives an unrecognized status
	assert.Equal(t, []string{"Order Placed"}, completedLabels(steps))
}

func TestTimelineStatusCaseInsensitive(t *testing.T) {
	order := Order{Status: "  Processing ", CreatedAt: time.Now()}
	steps := order.Timeline()
	assert.Equal(t, []string{"Order Placed", "Order Confirmed", "Processing"}, completedLabels(steps))
}

func TestTimelineExplicitStepsWin(t *testing.T) {
	order := Order{
		Status: "shipped",
		TrackingInfo: TrackingStepsList{
			{Label: "Packed at warehouse", Completed: true},
			{Label: "Handed to courier", Completed: false},
		},
	}

	steps := order.Timeline()
	require.Len(t, steps, 2)
	assert.Equal(t, "Packed at warehouse", steps[0].Label)
	assert.Equal(t, "Handed to courier", steps[1].Label)
}

func TestCurrentStepIndex(t *testing.T) {
	mk := func(completed ...bool) []TrackingStep {
		steps := make([]TrackingStep, len(completed))
		for i, c := range completed {
			steps[i] = TrackingStep{Completed: c}
		}
		return steps
	}

	tests := []struct {
		name  string
		steps []TrackingStep
		want  int
	}{
		{"mid flight", mk(true, true, true, true, false, false), 3},
		{"all complete", mk(true, true, true, true, true, true), 5},
		{"nothing complete", mk(false, false, false), 0},
		{"only first", mk(true, false, false), 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentStepIndex(tt.steps))
		})
	}
}
