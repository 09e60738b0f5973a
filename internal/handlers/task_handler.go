package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/flintlabs/flint-backend/internal/dto"
	"github.com/flintlabs/flint-backend/internal/services"
)

type TaskHandler struct {
	userService *services.UserService
	taskService *services.TaskService
}

func NewTaskHandler(userService *services.UserService, taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		userService: userService,
		taskService: taskService,
	}
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	tasks, err := h.taskService.ListTasks(user.ID, c.Query("status"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(tasks)
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid task id")
	}

	task, err := h.taskService.GetTask(user.ID, taskID)
	if err != nil {
		return taskError(c, err)
	}
	return c.JSON(task)
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Title == "" {
		return badRequest(c, "Title is required")
	}

	task, err := h.taskService.CreateTask(user.ID, &req)
	if err != nil {
		return taskError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid task id")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	task, err := h.taskService.UpdateTask(user.ID, taskID, &req)
	if err != nil {
		return taskError(c, err)
	}
	return c.JSON(task)
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid task id")
	}

	if err := h.taskService.DeleteTask(user.ID, taskID); err != nil {
		return taskError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TaskHandler) ListSubtasks(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid task id")
	}

	subtasks, err := h.taskService.ListSubtasks(user.ID, taskID)
	if err != nil {
		return taskError(c, err)
	}
	return c.JSON(subtasks)
}

func (h *TaskHandler) CreateSubtask(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid task id")
	}

	var req dto.CreateSubtaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Title == "" {
		return badRequest(c, "Title is required")
	}

	subtask, err := h.taskService.CreateSubtask(user.ID, taskID, &req)
	if err != nil {
		return taskError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(subtask)
}

func (h *TaskHandler) UpdateSubtask(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	subtaskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid subtask id")
	}

	var req dto.UpdateSubtaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	subtask, err := h.taskService.UpdateSubtask(user.ID, subtaskID, &req)
	if err != nil {
		return taskError(c, err)
	}
	return c.JSON(subtask)
}

func (h *TaskHandler) ToggleSubtask(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	subtaskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid subtask id")
	}

	subtask, err := h.taskService.ToggleSubtask(user.ID, subtaskID)
	if err != nil {
		return taskError(c, err)
	}
	return c.JSON(subtask)
}

func (h *TaskHandler) DeleteSubtask(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	subtaskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid subtask id")
	}

	if err := h.taskService.DeleteSubtask(user.ID, subtaskID); err != nil {
		return taskError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func taskError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrTaskNotFound), errors.Is(err, services.ErrSubtaskNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidPriority), errors.Is(err, services.ErrInvalidStatus):
		return badRequest(c, err.Error())
	default:
		return fiber.ErrInternalServerError
	}
}
