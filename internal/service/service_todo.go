package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/internal/store"
	"github.com/CemWebDev/python-todo-backend/internal/validators"
	"github.com/CemWebDev/python-todo-backend/models"
)

type todoService struct {
	todoRepository store.TodoRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	logger.Debug().Msg("creating todo service")
	return &todoService{
		todoRepository: todoRepository,
		validator:      validators.NewTodoValidator(),
		logger:         logger,
	}
}

func (s *todoService) Create(ctx context.Context, ownerID string, request models.TodoRequest) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Str("func", "*todoService.Create").Msg("invalid todo data")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := models.Now()
	todo := models.Todo{
		ID:        models.NewID(),
		UserID:    ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	todo.Apply(request.Input())

	created, err := s.todoRepository.CreateTodo(ctx, todo)
	if err != nil {
		log.Err(err).Str("func", "*todoService.Create").Str("user_id", ownerID).Msg("todo creation ended with error")
		return models.Todo{}, fmt.Errorf("todo creation ended with error: %w", err)
	}

	return created, nil
}

// List returns every todo of the owner. The result is never nil.
func (s *todoService) List(ctx context.Context, ownerID string) ([]models.Todo, error) {
	todos, err := s.todoRepository.ListTodos(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*todoService.List").Str("user_id", ownerID).Msg("listing todos failed")
		return nil, fmt.Errorf("listing todos failed: %w", err)
	}

	if todos == nil {
		todos = []models.Todo{}
	}

	return todos, nil
}

func (s *todoService) Get(ctx context.Context, ownerID, todoID string) (models.Todo, error) {
	if !models.IsValidID(todoID) {
		return models.Todo{}, ErrInvalidID
	}

	todo, err := s.todoRepository.FindTodo(ctx, ownerID, todoID)
	if err != nil {
		return models.Todo{}, s.translate(ctx, "*todoService.Get", err)
	}

	return todo, nil
}

// Update replaces the caller-controlled fields of the todo wholesale and
// returns the stored record as read back after the write. A malformed body
// is rejected before the id is looked at.
func (s *todoService) Update(ctx context.Context, ownerID, todoID string, request models.TodoRequest) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Str("func", "*todoService.Update").Msg("invalid todo data")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if !models.IsValidID(todoID) {
		return models.Todo{}, ErrInvalidID
	}

	todo, err := s.todoRepository.FindTodo(ctx, ownerID, todoID)
	if err != nil {
		return models.Todo{}, s.translate(ctx, "*todoService.Update", err)
	}

	todo.Apply(request.Input())
	todo.UpdatedAt = models.Now()

	if err = s.todoRepository.ReplaceTodo(ctx, todo); err != nil {
		return models.Todo{}, s.translate(ctx, "*todoService.Update", err)
	}

	updated, err := s.todoRepository.FindTodo(ctx, ownerID, todoID)
	if err != nil {
		return models.Todo{}, s.translate(ctx, "*todoService.Update", err)
	}

	return updated, nil
}

func (s *todoService) Delete(ctx context.Context, ownerID, todoID string) error {
	if !models.IsValidID(todoID) {
		return ErrInvalidID
	}

	if err := s.todoRepository.DeleteTodo(ctx, ownerID, todoID); err != nil {
		return s.translate(ctx, "*todoService.Delete", err)
	}

	return nil
}

// translate maps store lookups onto service errors.
func (s *todoService) translate(ctx context.Context, funcName string, err error) error {
	log := logger.FromContext(ctx)

	switch {
	case errors.Is(err, store.ErrTodoNotFound):
		return ErrTodoNotFound
	case errors.Is(err, store.ErrInvalidDocumentID):
		return ErrInvalidID
	default:
		log.Err(err).Str("func", funcName).Msg("todo store call failed")
		return fmt.Errorf("todo store call failed: %w", err)
	}
}
