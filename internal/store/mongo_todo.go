package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/models"
)

// mongoTodoRepository is the MongoDB-backed implementation of [TodoRepository].
// Every filter carries both _id and user_id.
type mongoTodoRepository struct {
	todos  *mongo.Collection
	logger *logger.Logger
}

// NewMongoTodoRepository constructs a [TodoRepository] over the todos
// collection.
func NewMongoTodoRepository(todos *mongo.Collection, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating mongo todo repository")
	return &mongoTodoRepository{
		todos:  todos,
		logger: logger,
	}
}

func (r *mongoTodoRepository) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if todo.ID == "" {
		todo.ID = models.NewID()
	}

	doc, err := newTodoDocument(todo)
	if err != nil {
		return models.Todo{}, err
	}

	if _, err = r.todos.InsertOne(ctx, doc); err != nil {
		log.Err(err).
			Str("func", "*mongoTodoRepository.CreateTodo").
			Str("user_id", todo.UserID).
			Msg("error inserting todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.model(), nil
}

// ListTodos returns the owner's todos in natural order. The result is never
// nil.
func (r *mongoTodoRepository) ListTodos(ctx context.Context, userID string) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.todos.Find(ctx, bson.D{{Key: "user_id", Value: userID}})
	if err != nil {
		log.Err(err).
			Str("func", "*mongoTodoRepository.ListTodos").
			Str("user_id", userID).
			Msg("error finding todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cursor.Close(ctx)

	todos := make([]models.Todo, 0)
	for cursor.Next(ctx) {
		var doc todoDocument
		if err = cursor.Decode(&doc); err != nil {
			log.Err(err).
				Str("func", "*mongoTodoRepository.ListTodos").
				Str("user_id", userID).
				Msg("error decoding todo")
			return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
		}
		todos = append(todos, doc.model())
	}

	if err = cursor.Err(); err != nil {
		log.Err(err).
			Str("func", "*mongoTodoRepository.ListTodos").
			Str("user_id", userID).
			Msg("error iterating todos")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return todos, nil
}

func (r *mongoTodoRepository) FindTodo(ctx context.Context, userID, todoID string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	filter, err := ownedTodoFilter(userID, todoID)
	if err != nil {
		return models.Todo{}, err
	}

	var doc todoDocument
	if err = r.todos.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Todo{}, ErrTodoNotFound
		}

		log.Err(err).
			Str("func", "*mongoTodoRepository.FindTodo").
			Str("todo_id", todoID).
			Msg("error finding todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.model(), nil
}

func (r *mongoTodoRepository) ReplaceTodo(ctx context.Context, todo models.Todo) error {
	log := logger.FromContext(ctx)

	filter, err := ownedTodoFilter(todo.UserID, todo.ID)
	if err != nil {
		return err
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: todo.Title},
		{Key: "description", Value: todo.Description},
		{Key: "completed", Value: todo.Completed},
		{Key: "updated_at", Value: todo.UpdatedAt},
	}}}

	result, err := r.todos.UpdateOne(ctx, filter, update)
	if err != nil {
		log.Err(err).
			Str("func", "*mongoTodoRepository.ReplaceTodo").
			Str("todo_id", todo.ID).
			Msg("error updating todo")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if result.MatchedCount == 0 {
		return ErrTodoNotFound
	}

	return nil
}

func (r *mongoTodoRepository) DeleteTodo(ctx context.Context, userID, todoID string) error {
	log := logger.FromContext(ctx)

	filter, err := ownedTodoFilter(userID, todoID)
	if err != nil {
		return err
	}

	result, err := r.todos.DeleteOne(ctx, filter)
	if err != nil {
		log.Err(err).
			Str("func", "*mongoTodoRepository.DeleteTodo").
			Str("todo_id", todoID).
			Msg("error deleting todo")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if result.DeletedCount == 0 {
		return ErrTodoNotFound
	}

	return nil
}

func ownedTodoFilter(userID, todoID string) (bson.D, error) {
	id, err := primitive.ObjectIDFromHex(todoID)
	if err != nil {
		return nil, ErrInvalidDocumentID
	}

	return bson.D{
		{Key: "_id", Value: id},
		{Key: "user_id", Value: userID},
	}, nil
}
