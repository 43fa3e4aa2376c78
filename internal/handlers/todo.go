package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ededddy/todo-api/internal/service"
	"github.com/gin-gonic/gin"
)

// TodoHandler handles todo resource HTTP requests.
type TodoHandler struct {
	todoService service.TodoService
}

// NewTodoHandler creates a new TodoHandler instance.
func NewTodoHandler(todoService service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// CreateTodoRequest represents the create request payload.
type CreateTodoRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}

// PatchTodoRequest represents the partial-update request payload. Omitted
// fields keep their stored values.
type PatchTodoRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Completed *bool   `json:"completed"`
}

// List godoc
// @Summary List todos
// @Description Return one page of todos in creation order
// @Tags todos
// @Security BearerAuth
// @Produce json
// @Param page query int false "1-based page" default(1)
// @Param limit query int false "page size" default(10)
// @Success 200 {object} TodoListResponse
// @Failure 500 {object} GenericResponse
// @Router /api/todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	page := parseQueryInt(c, "page", 1)
	limit := parseQueryInt(c, "limit", 10)

	todos, err := h.todoService.List(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list todos")
		return
	}

	c.JSON(http.StatusOK, TodoListResponse{
		Status: "success",
		Result: len(todos),
		Todos:  todos,
	})
}

// Create godoc
// @Summary Create a todo
// @Tags todos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateTodoRequest true "Todo fields"
// @Success 200 {object} TodoResponse
// @Failure 400 {object} GenericResponse
// @Failure 500 {object} GenericResponse
// @Router /api/todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), req.Title, req.Content, req.Completed)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			respondFail(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create todo")
		return
	}

	respondTodo(c, http.StatusOK, *todo)
}

// Get godoc
// @Summary Get one todo
// @Tags todos
// @Security BearerAuth
// @Produce json
// @Param id path string true "todo id"
// @Success 200 {object} TodoResponse
// @Failure 404 {object} GenericResponse
// @Router /api/todos/{id} [get]
func (h *TodoHandler) Get(c *gin.Context) {
	id := c.Param("id")

	todo, err := h.todoService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			respondFail(c, http.StatusNotFound, notFoundMessage(id))
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to get todo")
		return
	}

	respondTodo(c, http.StatusOK, *todo)
}

// Patch godoc
// @Summary Partially update a todo
// @Description Supplied fields are written, omitted fields keep their stored values
// @Tags todos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "todo id"
// @Param request body PatchTodoRequest true "Fields to update"
// @Success 200 {object} TodoResponse
// @Failure 400 {object} GenericResponse
// @Failure 404 {object} GenericResponse
// @Router /api/todos/{id} [patch]
func (h *TodoHandler) Patch(c *gin.Context) {
	id := c.Param("id")

	var req PatchTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	}

	todo, err := h.todoService.Patch(c.Request.Context(), id, service.TodoPatch{
		Title:     req.Title,
		Content:   req.Content,
		Completed: req.Completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTodoNotFound):
			respondFail(c, http.StatusNotFound, notFoundMessage(id))
		case errors.Is(err, service.ErrTitleRequired):
			respondFail(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update todo")
		}
		return
	}

	respondTodo(c, http.StatusOK, *todo)
}

// Delete godoc
// @Summary Delete a todo
// @Tags todos
// @Security BearerAuth
// @Param id path string true "todo id"
// @Success 204
// @Failure 404 {object} GenericResponse
// @Router /api/todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.todoService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			respondFail(c, http.StatusNotFound, notFoundMessage(id))
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete todo")
		return
	}

	c.Status(http.StatusNoContent)
}

func notFoundMessage(id string) string {
	return fmt.Sprintf("todo with id '%s' not found", id)
}

func parseQueryInt(c *gin.Context, key string, defaultValue int64) int64 {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}
