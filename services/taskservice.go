package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"tasktracker/model"
	"tasktracker/repository"
)

const maxTitleLength = 200

// TaskInput carries the fields of a create request.
type TaskInput struct {
	Title       string
	Priority    string
	EstimateHrs float64
	Deadline    string // RFC3339, empty means no deadline
	Notes       string
	Important   bool
	Status      string // empty defaults to active
}

// TaskUpdateInput carries a partial update. Nil fields keep their
// current value; an empty Deadline string clears the deadline.
type TaskUpdateInput struct {
	Title       *string
	Priority    *string
	EstimateHrs *float64
	Deadline    *string
	Notes       *string
	Important   *bool
	Status      *string
}

type TaskService struct {
	repo  repository.TaskRepository
	clock Clock
}

func NewTaskService(repo repository.TaskRepository, clock Clock) *TaskService {
	return &TaskService{repo: repo, clock: clock}
}

// CreateTask validates the input, derives the urgency score and persists
// a new task owned by userID.
func (s *TaskService) CreateTask(ctx context.Context, userID string, input TaskInput) (*model.Task, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}
	if err := validatePriority(input.Priority); err != nil {
		return nil, err
	}
	if err := validateEstimateHrs(input.EstimateHrs); err != nil {
		return nil, err
	}

	var deadline *time.Time
	if input.Deadline != "" {
		deadline, err = parseDeadline(input.Deadline)
		if err != nil {
			return nil, err
		}
	}

	taskStatus := input.Status
	if taskStatus == "" {
		taskStatus = model.StatusActive
	} else if err := validateStatus(taskStatus); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	task := &model.Task{
		TaskID:       uuid.New().String(),
		UserID:       userID,
		Title:        title,
		Priority:     input.Priority,
		EstimateHrs:  input.EstimateHrs,
		Deadline:     deadline,
		Notes:        input.Notes,
		Important:    input.Important,
		Status:       taskStatus,
		UrgencyScore: ComputeUrgency(input.Priority, deadline, now),
		CreatedAt:    now,
	}

	if err := s.repo.Insert(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask applies a partial update to the given task after checking
// ownership. Validation is all-or-nothing: no field is applied unless
// every supplied field passes. The urgency score is recomputed on every
// update so it can never go stale.
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID string, input TaskUpdateInput) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if task.UserID != userID {
		return nil, ErrForbidden
	}

	var title *string
	if input.Title != nil {
		trimmed, err := validateTitle(*input.Title)
		if err != nil {
			return nil, err
		}
		title = &trimmed
	}
	if input.Priority != nil {
		if err := validatePriority(*input.Priority); err != nil {
			return nil, err
		}
	}
	if input.EstimateHrs != nil {
		if err := validateEstimateHrs(*input.EstimateHrs); err != nil {
			return nil, err
		}
	}

	var deadline *time.Time
	deadlineSet := false
	if input.Deadline != nil {
		deadlineSet = true
		if *input.Deadline != "" {
			deadline, err = parseDeadline(*input.Deadline)
			if err != nil {
				return nil, err
			}
		}
	}
	if input.Status != nil {
		if err := validateStatus(*input.Status); err != nil {
			return nil, err
		}
	}

	if title != nil {
		task.Title = *title
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.EstimateHrs != nil {
		task.EstimateHrs = *input.EstimateHrs
	}
	if deadlineSet {
		task.Deadline = deadline
	}
	if input.Notes != nil {
		task.Notes = *input.Notes
	}
	if input.Important != nil {
		task.Important = *input.Important
	}
	if input.Status != nil {
		task.Status = *input.Status
	}

	task.UrgencyScore = ComputeUrgency(task.Priority, task.Deadline, s.clock.Now())

	if err := s.repo.Replace(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes the task permanently after checking ownership.
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}
	if task.UserID != userID {
		return ErrForbidden
	}

	return s.repo.Remove(ctx, taskID)
}

// ListTasks returns all of the user's tasks, most recently created first.
func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]model.Task, error) {
	return s.repo.FindAllByOwner(ctx, userID)
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", invalidInput("title", "must not be empty")
	}
	if len(title) > maxTitleLength {
		return "", invalidInput("title", "must be at most 200 characters")
	}
	return title, nil
}

func validatePriority(priority string) error {
	if !model.ValidPriority(priority) {
		return invalidInput("priority", "must be one of low, medium, high, critical")
	}
	return nil
}

func validateEstimateHrs(estimate float64) error {
	if estimate <= 0 || estimate > 100 {
		return invalidInput("estimateHrs", "must be greater than 0 and at most 100")
	}
	return nil
}

func validateStatus(status string) error {
	if !model.ValidStatus(status) {
		return invalidInput("status", "must be one of active, backlog, done")
	}
	return nil
}

func parseDeadline(value string) (*time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, invalidInput("deadline", "must be an RFC3339 timestamp")
	}
	return &parsed, nil
}
