package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/guide4360/guide4360api/internal/models"
	"github.com/guide4360/guide4360api/internal/service"
	"github.com/guide4360/guide4360api/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// TaskHandler is the handler for the task API
type TaskHandler struct {
	service *service.TaskService
}

// NewTaskHandler creates a new handler for the task API
func NewTaskHandler(service *service.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// ListTasks returns the task list for the given search/day filters, with
// the optional client view options (loadType, status, sortBy, sortOrder)
// applied on top.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	search := c.QueryParam("search")
	day := c.QueryParam("day")

	tasks, err := h.service.ListTasks(c.Request().Context(), search, day)
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	view := service.BuildTaskView(tasks, service.TaskViewOptions{
		LoadType:  c.QueryParam("loadType"),
		Status:    c.QueryParam("status"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	})

	return response.SuccessResponse(c, view)
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var task models.TaskModel
	if err := c.Bind(&task); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	task.ID = 0

	if err := h.service.CreateTask(c.Request().Context(), &task); err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return response.ErrorResponse(c, http.StatusBadRequest, "InputException", vErr.Error())
		}
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	return response.SuccessResponse(c, task)
}

// UpdateTask applies a partial update (files, completed) to a task
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid `id`, must be digits")
	}

	var update service.TaskUpdate
	if err := c.Bind(&update); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}

	task, err := h.service.UpdateTask(c.Request().Context(), uint(id), update)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			return response.ErrorResponse(c, http.StatusNotFound, "NotFoundException", "Task not found")
		case errors.As(err, &vErr):
			return response.ErrorResponse(c, http.StatusBadRequest, "InputException", vErr.Error())
		default:
			return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
		}
	}

	return response.SuccessResponse(c, task)
}
