// Package handlers contains HTTP request handlers for the todo service.
package handlers

import (
	"github.com/ededddy/todo-api/internal/models"
	"github.com/gin-gonic/gin"
)

// GenericResponse is the envelope for health, auth and error responses.
type GenericResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// TodoData wraps a single todo inside a success envelope.
type TodoData struct {
	Todo models.Todo `json:"todo"`
}

// TodoResponse is the envelope for single-todo responses.
type TodoResponse struct {
	Status string   `json:"status"`
	Data   TodoData `json:"data"`
}

// TodoListResponse is the envelope for the list endpoint.
type TodoListResponse struct {
	Status string        `json:"status"`
	Result int           `json:"result"`
	Todos  []models.Todo `json:"todos"`
}

func respondFail(c *gin.Context, code int, message string) {
	c.JSON(code, GenericResponse{Status: "fail", Message: message})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, GenericResponse{Status: "error", Message: message})
}

func respondTodo(c *gin.Context, code int, todo models.Todo) {
	c.JSON(code, TodoResponse{Status: "success", Data: TodoData{Todo: todo}})
}
