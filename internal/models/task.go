package models

import (
	"time"

	"github.com/google/uuid"
)

var (
	TaskPriorities = []string{"low", "medium", "high"}
	TaskStatuses   = []string{"pending", "in_progress", "completed", "cancelled"}
)

type Task struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index;index:idx_tasks_user_status" json:"user_id"`

	Title            string     `gorm:"size:255;not null" json:"title"`
	Description      *string    `gorm:"type:text" json:"description"`
	Priority         string     `gorm:"size:20;default:'medium'" json:"priority"`
	Status           string     `gorm:"size:20;default:'pending';index:idx_tasks_user_status" json:"status"`
	Category         *string    `gorm:"size:100" json:"category"`
	EstimatedMinutes *int       `json:"estimated_minutes"`
	ActualMinutes    *int       `json:"actual_minutes"`
	DueDate          *time.Time `json:"due_date"`
	CompletedAt      *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Subtask belongs to a Task and is removed together with it.
type Subtask struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TaskID uuid.UUID `gorm:"type:uuid;not null;index" json:"task_id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Title     string `gorm:"size:255" json:"title"`
	Completed bool   `gorm:"default:false" json:"completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
