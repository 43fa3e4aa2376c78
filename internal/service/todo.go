package service

import (
	"context"
	"errors"
	"time"

	"github.com/ededddy/todo-api/internal/models"
	"github.com/ededddy/todo-api/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrTodoNotFound  = errors.New("todo not found")
	ErrTitleRequired = errors.New("title is required")
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// TodoPatch carries the fields of a partial update. Nil fields keep their
// stored values.
type TodoPatch struct {
	Title     *string
	Content   *string
	Completed *bool
}

// TodoService implements the todo resource lifecycle.
type TodoService interface {
	List(ctx context.Context, page, limit int64) ([]models.Todo, error)
	Create(ctx context.Context, title, content string, completed bool) (*models.Todo, error)
	Get(ctx context.Context, id string) (*models.Todo, error)
	Patch(ctx context.Context, id string, patch TodoPatch) (*models.Todo, error)
	Delete(ctx context.Context, id string) error
}

type todoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService creates a new TodoService instance.
func NewTodoService(todoRepo repository.TodoRepository) TodoService {
	return &todoService{todoRepo: todoRepo}
}

// List returns one page of todos in creation order. Pages are 1-based;
// non-positive page or limit fall back to the defaults.
func (s *todoService) List(ctx context.Context, page, limit int64) ([]models.Todo, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	offset := (page - 1) * limit
	return s.todoRepo.Find(ctx, offset, limit)
}

func (s *todoService) Create(ctx context.Context, title, content string, completed bool) (*models.Todo, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}

	now := time.Now()
	todo := &models.Todo{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.todoRepo.Insert(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *todoService) Get(ctx context.Context, id string) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTodoNotFound
	}
	return todo, err
}

// Patch applies a field-level merge: supplied fields are written, omitted
// fields keep their stored values, and updated_at is always refreshed.
// The merge happens in a single atomic update on the store.
func (s *todoService) Patch(ctx context.Context, id string, patch TodoPatch) (*models.Todo, error) {
	if patch.Title != nil && *patch.Title == "" {
		return nil, ErrTitleRequired
	}

	update := repository.TodoUpdate{
		Title:     patch.Title,
		Content:   patch.Content,
		Completed: patch.Completed,
		UpdatedAt: time.Now(),
	}

	todo, err := s.todoRepo.UpdateFields(ctx, id, update)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTodoNotFound
	}
	return todo, err
}

func (s *todoService) Delete(ctx context.Context, id string) error {
	err := s.todoRepo.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTodoNotFound
	}
	return err
}
