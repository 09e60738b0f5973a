package dto

import "time"

type CreateTaskRequest struct {
	Title            string     `json:"title"`
	Description      *string    `json:"description"`
	Priority         string     `json:"priority"`
	Category         *string    `json:"category"`
	EstimatedMinutes *int       `json:"estimated_minutes"`
	DueDate          *time.Time `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Priority         *string    `json:"priority"`
	Status           *string    `json:"status"`
	Category         *string    `json:"category"`
	EstimatedMinutes *int       `json:"estimated_minutes"`
	ActualMinutes    *int       `json:"actual_minutes"`
	DueDate          *time.Time `json:"due_date"`
	CompletedAt      *time.Time `json:"completed_at"`
}

func (r *UpdateTaskRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Priority != nil {
		updates["priority"] = *r.Priority
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.Category != nil {
		updates["category"] = *r.Category
	}
	if r.EstimatedMinutes != nil {
		updates["estimated_minutes"] = *r.EstimatedMinutes
	}
	if r.ActualMinutes != nil {
		updates["actual_minutes"] = *r.ActualMinutes
	}
	if r.DueDate != nil {
		updates["due_date"] = *r.DueDate
	}
	if r.CompletedAt != nil {
		updates["completed_at"] = *r.CompletedAt
	}
	return updates
}

type CreateSubtaskRequest struct {
	Title string `json:"title"`
}

type UpdateSubtaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (r *UpdateSubtaskRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Completed != nil {
		updates["completed"] = *r.Completed
	}
	return updates
}
