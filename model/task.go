package model

import (
	"time"
)

// Priority levels, ordered by weight.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Task statuses.
const (
	StatusActive  = "active"
	StatusBacklog = "backlog"
	StatusDone    = "done"
)

type Task struct {
	TaskID       string     `firestore:"taskid" json:"taskId"`
	UserID       string     `firestore:"userid" json:"userId"`
	Title        string     `firestore:"title" json:"title"`
	Priority     string     `firestore:"priority" json:"priority"`
	EstimateHrs  float64    `firestore:"estimatehrs" json:"estimateHrs"`
	Deadline     *time.Time `firestore:"deadline" json:"deadline,omitempty"`
	Notes        string     `firestore:"notes" json:"notes"`
	Important    bool       `firestore:"important" json:"important"`
	Status       string     `firestore:"status" json:"status"`
	UrgencyScore float64    `firestore:"urgencyscore" json:"urgencyScore"`
	CreatedAt    time.Time  `firestore:"createdat" json:"createdAt"`
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusBacklog, StatusDone:
		return true
	}
	return false
}
