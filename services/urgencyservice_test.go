package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tasktracker/model"
)

var urgencyNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestComputeUrgencyWithoutDeadline(t *testing.T) {
	assert.Equal(t, 1.0, ComputeUrgency(model.PriorityLow, nil, urgencyNow))
	assert.Equal(t, 2.0, ComputeUrgency(model.PriorityMedium, nil, urgencyNow))
	assert.Equal(t, 3.0, ComputeUrgency(model.PriorityHigh, nil, urgencyNow))
	assert.Equal(t, 5.0, ComputeUrgency(model.PriorityCritical, nil, urgencyNow))
}

func TestComputeUrgencyOneDayOut(t *testing.T) {
	deadline := urgencyNow.Add(24 * time.Hour)
	assert.Equal(t, 3.0, ComputeUrgency(model.PriorityHigh, &deadline, urgencyNow))
}

func TestComputeUrgencyClampsOverdueDeadline(t *testing.T) {
	overdue := urgencyNow.Add(-time.Hour)
	assert.Equal(t, 120.0, ComputeUrgency(model.PriorityCritical, &overdue, urgencyNow))

	atNow := urgencyNow
	assert.Equal(t, 24.0, ComputeUrgency(model.PriorityLow, &atNow, urgencyNow))

	// Anything inside the one hour floor scores the same as overdue.
	imminent := urgencyNow.Add(30 * time.Minute)
	assert.Equal(t, 120.0, ComputeUrgency(model.PriorityCritical, &imminent, urgencyNow))
}

func TestComputeUrgencyRoundsToTwoDecimals(t *testing.T) {
	deadline := urgencyNow.Add(36 * time.Hour)
	// 2 / (36/24) = 1.3333...
	assert.Equal(t, 1.33, ComputeUrgency(model.PriorityMedium, &deadline, urgencyNow))
}

func TestComputeUrgencyDecreasesWithLaterDeadlines(t *testing.T) {
	horizons := []time.Duration{
		2 * time.Hour,
		24 * time.Hour,
		72 * time.Hour,
		240 * time.Hour,
		2400 * time.Hour,
	}

	overdue := urgencyNow.Add(-time.Hour)
	prev := ComputeUrgency(model.PriorityHigh, &overdue, urgencyNow) // clamped maximum
	for _, h := range horizons {
		deadline := urgencyNow.Add(h)
		score := ComputeUrgency(model.PriorityHigh, &deadline, urgencyNow)
		assert.Less(t, score, prev, "deadline %v should score lower than the previous one", h)
		assert.Greater(t, score, 0.0)
		prev = score
	}
}

func TestComputeUrgencyIsDeterministic(t *testing.T) {
	deadline := urgencyNow.Add(17 * time.Hour)
	first := ComputeUrgency(model.PriorityMedium, &deadline, urgencyNow)
	second := ComputeUrgency(model.PriorityMedium, &deadline, urgencyNow)
	assert.Equal(t, first, second)
}

func TestPriorityWeight(t *testing.T) {
	assert.Equal(t, 5.0, PriorityWeight(model.PriorityCritical))
	assert.Equal(t, 0.0, PriorityWeight("unknown"))
}
