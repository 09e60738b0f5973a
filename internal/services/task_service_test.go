package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flintlabs/flint-backend/internal/dto"
	"github.com/flintlabs/flint-backend/internal/models"
)

func TestCreateTask_Defaults(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewTaskService(db)
	userID := createTestUser(t, userSvc, "clerk_1")

	task, err := svc.CreateTask(userID, &dto.CreateTaskRequest{Title: "Read chapter 4"})
	require.NoError(t, err)
	assert.Equal(t, "medium", task.Priority)
	assert.Equal(t, "pending", task.Status)
}

func TestCreateTask_RejectsInvalidPriority(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewTaskService(db)
	userID := createTestUser(t, userSvc, "clerk_1")

	_, err := svc.CreateTask(userID, &dto.CreateTaskRequest{Title: "x", Priority: "urgent"})
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestListTasks_FiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewTaskService(db)
	userID := createTestUser(t, userSvc, "clerk_1")

	task, err := svc.CreateTask(userID, &dto.CreateTaskRequest{Title: "a"})
	require.NoError(t, err)
	_, err = svc.CreateTask(userID, &dto.CreateTaskRequest{Title: "b"})
	require.NoError(t, err)

	done := "completed"
	_, err = svc.UpdateTask(userID, task.ID, &dto.UpdateTaskRequest{Status: &done})
	require.NoError(t, err)

	completed, err := svc.ListTasks(userID, "completed")
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, task.ID, completed[0].ID)

	all, err := svc.ListTasks(userID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetTask_ScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewTaskService(db)
	owner := createTestUser(t, userSvc, "clerk_owner")
	other := createTestUser(t, userSvc, "clerk_other")

	task, err := svc.CreateTask(owner, &dto.CreateTaskRequest{Title: "private"})
	require.NoError(t, err)

	_, err = svc.GetTask(other, task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTask_RemovesSubtasksFirst(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewTaskService(db)
	userID := createTestUser(t, userSvc, "clerk_1")

	task, err := svc.CreateTask(userID, &dto.CreateTaskRequest{Title: "parent"})
	require.NoError(t, err)
	_, err = svc.CreateSubtask(userID, task.ID, &dto.CreateSubtaskRequest{Title: "child"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(userID, task.ID))
	assert.EqualValues(t, 0, count(t, db, &models.Subtask{}, "task_id = ?", task.ID))
	assert.EqualValues(t, 0, count(t, db, &models.Task{}, "id = ?", task.ID))
}

func TestToggleSubtask_FlipsCompletion(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewTaskService(db)
	userID := createTestUser(t, userSvc, "clerk_1")

	task, err := svc.CreateTask(userID, &dto.CreateTaskRequest{Title: "parent"})
	require.NoError(t, err)
	subtask, err := svc.CreateSubtask(userID, task.ID, &dto.CreateSubtaskRequest{Title: "child"})
	require.NoError(t, err)
	require.False(t, subtask.Completed)

	toggled, err := svc.ToggleSubtask(userID, subtask.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = svc.ToggleSubtask(userID, subtask.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
}

func TestUpdateTask_EmptyPatchLeavesRowAlone(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewTaskService(db)
	userID := createTestUser(t, userSvc, "clerk_1")

	task, err := svc.CreateTask(userID, &dto.CreateTaskRequest{Title: "keep"})
	require.NoError(t, err)

	updated, err := svc.UpdateTask(userID, task.ID, &dto.UpdateTaskRequest{})
	require.NoError(t, err)
	assert.Equal(t, "keep", updated.Title)
	assert.Equal(t, "pending", updated.Status)
}
