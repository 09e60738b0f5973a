package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flintlabs/flint-backend/internal/dto"
	"github.com/flintlabs/flint-backend/internal/models"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrSubtaskNotFound = errors.New("subtask not found")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidStatus   = errors.New("invalid status")
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

func (s *TaskService) ListTasks(userID uuid.UUID, status string) ([]models.Task, error) {
	q := s.db.Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var tasks []models.Task
	if err := q.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) GetTask(userID uuid.UUID, taskID uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := s.db.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	return &task, nil
}

func (s *TaskService) CreateTask(userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}
	if !contains(models.TaskPriorities, priority) {
		return nil, ErrInvalidPriority
	}

	task := models.Task{
		ID:               uuid.New(),
		UserID:           userID,
		Title:            req.Title,
		Description:      req.Description,
		Priority:         priority,
		Status:           "pending",
		Category:         req.Category,
		EstimatedMinutes: req.EstimatedMinutes,
		DueDate:          req.DueDate,
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

func (s *TaskService) UpdateTask(userID uuid.UUID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	if req.Priority != nil && !contains(models.TaskPriorities, *req.Priority) {
		return nil, ErrInvalidPriority
	}
	if req.Status != nil && !contains(models.TaskStatuses, *req.Status) {
		return nil, ErrInvalidStatus
	}

	task, err := s.GetTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return task, nil
	}
	if err := s.db.Model(task).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// DeleteTask removes a task and its subtasks, subtasks first.
func (s *TaskService) DeleteTask(userID uuid.UUID, taskID uuid.UUID) error {
	task, err := s.GetTask(userID, taskID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", task.ID).Delete(&models.Subtask{}).Error; err != nil {
			return fmt.Errorf("failed to delete subtasks: %w", err)
		}
		if err := tx.Delete(task).Error; err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		return nil
	})
}

func (s *TaskService) ListSubtasks(userID uuid.UUID, taskID uuid.UUID) ([]models.Subtask, error) {
	if _, err := s.GetTask(userID, taskID); err != nil {
		return nil, err
	}

	var subtasks []models.Subtask
	if err := s.db.Where("task_id = ?", taskID).Order("created_at ASC").Find(&subtasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list subtasks: %w", err)
	}
	return subtasks, nil
}

func (s *TaskService) CreateSubtask(userID uuid.UUID, taskID uuid.UUID, req *dto.CreateSubtaskRequest) (*models.Subtask, error) {
	if _, err := s.GetTask(userID, taskID); err != nil {
		return nil, err
	}

	subtask := models.Subtask{
		ID:     uuid.New(),
		TaskID: taskID,
		UserID: userID,
		Title:  req.Title,
	}
	if err := s.db.Create(&subtask).Error; err != nil {
		return nil, fmt.Errorf("failed to create subtask: %w", err)
	}
	return &subtask, nil
}

func (s *TaskService) UpdateSubtask(userID uuid.UUID, subtaskID uuid.UUID, req *dto.UpdateSubtaskRequest) (*models.Subtask, error) {
	subtask, err := s.getSubtask(userID, subtaskID)
	if err != nil {
		return nil, err
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return subtask, nil
	}
	if err := s.db.Model(subtask).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update subtask: %w", err)
	}
	return subtask, nil
}

// ToggleSubtask flips the completed flag.
func (s *TaskService) ToggleSubtask(userID uuid.UUID, subtaskID uuid.UUID) (*models.Subtask, error) {
	subtask, err := s.getSubtask(userID, subtaskID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(subtask).Update("completed", !subtask.Completed).Error; err != nil {
		return nil, fmt.Errorf("failed to toggle subtask: %w", err)
	}
	return subtask, nil
}

func (s *TaskService) DeleteSubtask(userID uuid.UUID, subtaskID uuid.UUID) error {
	subtask, err := s.getSubtask(userID, subtaskID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(subtask).Error; err != nil {
		return fmt.Errorf("failed to delete subtask: %w", err)
	}
	return nil
}

func (s *TaskService) getSubtask(userID uuid.UUID, subtaskID uuid.UUID) (*models.Subtask, error) {
	var subtask models.Subtask
	err := s.db.Where("id = ? AND user_id = ?", subtaskID, userID).First(&subtask).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubtaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load subtask: %w", err)
	}
	return &subtask, nil
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
