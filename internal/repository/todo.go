// Package repository provides the data access layer for the todo service.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ededddy/todo-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// TodoUpdate carries a partial update. Nil fields are left untouched in
// the stored document; UpdatedAt is always written.
type TodoUpdate struct {
	Title     *string
	Content   *string
	Completed *bool
	UpdatedAt time.Time
}

// TodoRepository defines the interface for todo data operations.
type TodoRepository interface {
	Insert(ctx context.Context, todo *models.Todo) error
	FindByID(ctx context.Context, id string) (*models.Todo, error)
	Find(ctx context.Context, skip, limit int64) ([]models.Todo, error)
	UpdateFields(ctx context.Context, id string, update TodoUpdate) (*models.Todo, error)
	DeleteByID(ctx context.Context, id string) error
}

type todoRepository struct {
	collection *mongo.Collection
}

// NewTodoRepository creates a new TodoRepository backed by the given collection.
func NewTodoRepository(collection *mongo.Collection) TodoRepository {
	return &todoRepository{collection: collection}
}

func (r *todoRepository) Insert(ctx context.Context, todo *models.Todo) error {
	if _, err := r.collection.InsertOne(ctx, todo); err != nil {
		return fmt.Errorf("failed to insert todo: %w", err)
	}
	return nil
}

func (r *todoRepository) FindByID(ctx context.Context, id string) (*models.Todo, error) {
	var todo models.Todo
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&todo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find todo %s: %w", id, err)
	}
	return &todo, nil
}

// Find returns a materialized page of todos in creation order.
func (r *todoRepository) Find(ctx context.Context, skip, limit int64) ([]models.Todo, error) {
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}

	todos := []models.Todo{}
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, fmt.Errorf("failed to decode todos: %w", err)
	}
	return todos, nil
}

// UpdateFields applies the non-nil fields of update in a single
// find-and-modify, so concurrent patches to different fields of the same
// todo cannot clobber each other, and returns the updated document.
func (r *todoRepository) UpdateFields(ctx context.Context, id string, update TodoUpdate) (*models.Todo, error) {
	set := bson.M{"updated_at": update.UpdatedAt}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Completed != nil {
		set["completed"] = *update.Completed
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var todo models.Todo
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&todo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update todo %s: %w", id, err)
	}
	return &todo, nil
}

func (r *todoRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete todo %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
