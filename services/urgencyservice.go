package services

import (
	"math"
	"time"

	"tasktracker/model"
)

var priorityWeights = map[string]float64{
	model.PriorityLow:      1,
	model.PriorityMedium:   2,
	model.PriorityHigh:     3,
	model.PriorityCritical: 5,
}

func PriorityWeight(priority string) float64 {
	return priorityWeights[priority]
}

// ComputeUrgency derives a task's urgency score from its priority and
// deadline. Without a deadline the score is the flat priority weight.
// With one, the score is the weight divided by the days-equivalent left
// until the deadline, rounded to two decimals. The remaining time is
// clamped to a one hour floor, so an overdue task tops out at weight*24
// instead of blowing up the division.
func ComputeUrgency(priority string, deadline *time.Time, now time.Time) float64 {
	weight := priorityWeights[priority]
	if deadline == nil {
		return weight
	}

	hoursUntil := deadline.Sub(now).Hours()
	if hoursUntil < 1 {
		hoursUntil = 1
	}

	return math.Round(weight/(hoursUntil/24)*100) / 100
}
