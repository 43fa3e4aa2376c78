package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ededddy/todo-api/internal/models"
	"github.com/ededddy/todo-api/internal/service"
	"github.com/gin-gonic/gin"
)

// =============================================================================
// Mock TodoService
// =============================================================================

type mockTodoService struct {
	listFunc   func(ctx context.Context, page, limit int64) ([]models.Todo, error)
	createFunc func(ctx context.Context, title, content string, completed bool) (*models.Todo, error)
	getFunc    func(ctx context.Context, id string) (*models.Todo, error)
	patchFunc  func(ctx context.Context, id string, patch service.TodoPatch) (*models.Todo, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockTodoService) List(ctx context.Context, page, limit int64) ([]models.Todo, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, page, limit)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTodoService) Create(ctx context.Context, title, content string, completed bool) (*models.Todo, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, title, content, completed)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTodoService) Get(ctx context.Context, id string) (*models.Todo, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTodoService) Patch(ctx context.Context, id string, patch service.TodoPatch) (*models.Todo, error) {
	if m.patchFunc != nil {
		return m.patchFunc(ctx, id, patch)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTodoService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

// =============================================================================
// Test Helpers
// =============================================================================

func setupTodoRouter(t *testing.T) (*gin.Engine, *mockTodoService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mock := &mockTodoService{}
	handler := NewTodoHandler(mock)

	router := gin.New()
	router.GET("/api/todos", handler.List)
	router.POST("/api/todos", handler.Create)
	router.GET("/api/todos/:id", handler.Get)
	router.PATCH("/api/todos/:id", handler.Patch)
	router.DELETE("/api/todos/:id", handler.Delete)
	return router, mock
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

// =============================================================================
// List Tests
// =============================================================================

func TestListHandler_Envelope(t *testing.T) {
	router, mock := setupTodoRouter(t)

	mock.listFunc = func(ctx context.Context, page, limit int64) ([]models.Todo, error) {
		return []models.Todo{{ID: "a", Title: "one"}, {ID: "b", Title: "two"}}, nil
	}

	w := doJSON(t, router, http.MethodGet, "/api/todos", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp TodoListResponse
	decodeBody(t, w, &resp)

	if resp.Status != "success" {
		t.Errorf("status field = %q, want %q", resp.Status, "success")
	}
	if resp.Result != 2 || len(resp.Todos) != 2 {
		t.Errorf("result = %d with %d todos, want 2/2", resp.Result, len(resp.Todos))
	}
}

func TestListHandler_QueryParams(t *testing.T) {
	router, mock := setupTodoRouter(t)

	var gotPage, gotLimit int64
	mock.listFunc = func(ctx context.Context, page, limit int64) ([]models.Todo, error) {
		gotPage, gotLimit = page, limit
		return []models.Todo{}, nil
	}

	tests := []struct {
		name      string
		query     string
		wantPage  int64
		wantLimit int64
	}{
		{"explicit", "?page=3&limit=5", 3, 5},
		{"defaults", "", 1, 10},
		{"garbage", "?page=abc&limit=-2", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodGet, "/api/todos"+tt.query, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			if gotPage != tt.wantPage || gotLimit != tt.wantLimit {
				t.Errorf("page/limit = %d/%d, want %d/%d", gotPage, gotLimit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestListHandler_StoreError(t *testing.T) {
	router, mock := setupTodoRouter(t)

	mock.listFunc = func(ctx context.Context, page, limit int64) ([]models.Todo, error) {
		return nil, errors.New("connection reset")
	}

	w := doJSON(t, router, http.MethodGet, "/api/todos", nil)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}

	var resp GenericResponse
	decodeBody(t, w, &resp)
	if resp.Status != "error" {
		t.Errorf("status field = %q, want %q", resp.Status, "error")
	}
}

// =============================================================================
// Create Tests
// =============================================================================

func TestCreateHandler_Success(t *testing.T) {
	router, mock := setupTodoRouter(t)

	mock.createFunc = func(ctx context.Context, title, content string, completed bool) (*models.Todo, error) {
		return &models.Todo{ID: "todo-1", Title: title, Content: content, Completed: completed}, nil
	}

	w := doJSON(t, router, http.MethodPost, "/api/todos", gin.H{"title": "buy milk", "content": "2 liters"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp TodoResponse
	decodeBody(t, w, &resp)

	if resp.Status != "success" {
		t.Errorf("status field = %q, want %q", resp.Status, "success")
	}
	if resp.Data.Todo.ID != "todo-1" || resp.Data.Todo.Title != "buy milk" {
		t.Errorf("unexpected todo in envelope: %+v", resp.Data.Todo)
	}
}

func TestCreateHandler_MissingTitle(t *testing.T) {
	router, _ := setupTodoRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/todos", gin.H{"content": "no title"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	var resp GenericResponse
	decodeBody(t, w, &resp)
	if resp.Status != "fail" {
		t.Errorf("status field = %q, want %q", resp.Status, "fail")
	}
}

func TestCreateHandler_MalformedBody(t *testing.T) {
	router, _ := setupTodoRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/todos", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

// =============================================================================
// Get Tests
// =============================================================================

func TestGetHandler_Success(t *testing.T) {
	router, mock := setupTodoRouter(t)

	mock.getFunc = func(ctx context.Context, id string) (*models.Todo, error) {
		return &models.Todo{ID: id, Title: "buy milk"}, nil
	}

	w := doJSON(t, router, http.MethodGet, "/api/todos/todo-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp TodoResponse
	decodeBody(t, w, &resp)
	if resp.Data.Todo.ID != "todo-1" {
		t.Errorf("todo id = %q, want %q", resp.Data.Todo.ID, "todo-1")
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	router, mock := setupTodoRouter(t)

	mock.getFunc = func(ctx context.Context, id string) (*models.Todo, error) {
		return nil, service.ErrTodoNotFound
	}

	w := doJSON(t, router, http.MethodGet, "/api/todos/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}

	var resp GenericResponse
	decodeBody(t, w, &resp)
	if resp.Status != "fail" {
		t.Errorf("status field = %q, want %q", resp.Status, "fail")
	}
}

// =============================================================================
// Patch Tests
// =============================================================================

func TestPatchHandler_ForwardsSuppliedFieldsOnly(t *testing.T) {
	router, mock := setupTodoRouter(t)

	var gotPatch service.TodoPatch
	mock.patchFunc = func(ctx context.Context, id string, patch service.TodoPatch) (*models.Todo, error) {
		gotPatch = patch
		return &models.Todo{ID: id, Title: "buy milk", Completed: true}, nil
	}

	w := doJSON(t, router, http.MethodPatch, "/api/todos/todo-1", gin.H{"completed": true})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	if gotPatch.Title != nil || gotPatch.Content != nil {
		t.Error("omitted fields must be forwarded as nil")
	}
	if gotPatch.Completed == nil || !*gotPatch.Completed {
		t.Error("supplied completed=true must be forwarded")
	}
}

func TestPatchHandler_NotFound(t *testing.T) {
	router, mock := setupTodoRouter(t)

	mock.patchFunc = func(ctx context.Context, id string, patch service.TodoPatch) (*models.Todo, error) {
		return nil, service.ErrTodoNotFound
	}

	w := doJSON(t, router, http.MethodPatch, "/api/todos/missing", gin.H{"completed": true})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

// =============================================================================
// Delete Tests
// =============================================================================

func TestDeleteHandler_Success(t *testing.T) {
	router, mock := setupTodoRouter(t)

	mock.deleteFunc = func(ctx context.Context, id string) error { return nil }

	w := doJSON(t, router, http.MethodDelete, "/api/todos/todo-1", nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("delete should return no body, got %q", w.Body.String())
	}
}

func TestDeleteHandler_NotFound(t *testing.T) {
	router, mock := setupTodoRouter(t)

	mock.deleteFunc = func(ctx context.Context, id string) error {
		return service.ErrTodoNotFound
	}

	w := doJSON(t, router, http.MethodDelete, "/api/todos/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
