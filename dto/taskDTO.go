package dto

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Priority    string  `json:"priority" binding:"required"`
	EstimateHrs float64 `json:"estimateHrs" binding:"required"`
	Deadline    string  `json:"deadline"`
	Notes       string  `json:"notes"`
	Important   bool    `json:"important"`
	Status      string  `json:"status"`
}

// UpdateTaskRequest carries a partial update. Nil means the field was
// omitted and keeps its current value. An empty deadline string clears
// the deadline.
type UpdateTaskRequest struct {
	Title       *string  `json:"title"`
	Priority    *string  `json:"priority"`
	EstimateHrs *float64 `json:"estimateHrs"`
	Deadline    *string  `json:"deadline"`
	Notes       *string  `json:"notes"`
	Important   *bool    `json:"important"`
	Status      *string  `json:"status"`
}
