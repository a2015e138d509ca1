// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CemWebDev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/models"
)

// sqlTodoRepository is the SQL-backed implementation of [TodoRepository].
// Every statement filters on both id and user_id.
type sqlTodoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSQLTodoRepository constructs a [TodoRepository] backed by the provided
// database connection and logger.
func NewSQLTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating sql todo repository")
	return &sqlTodoRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sqlTodoRepository) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if todo.ID == "" {
		todo.ID = models.NewID()
	}

	query, args, err := r.db.buildInsertTodoQuery(todo)
	if err != nil {
		log.Err(err).Str("func", "*sqlTodoRepository.CreateTodo").Msg("error building query")
		return models.Todo{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*sqlTodoRepository.CreateTodo").
			Str("user_id", todo.UserID).
			Msg("failed to insert todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return todo, nil
}

// ListTodos returns every todo of the owner ordered by creation.
//
// Returns an empty slice when no records are found.
func (r *sqlTodoRepository) ListTodos(ctx context.Context, userID string) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListTodosQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*sqlTodoRepository.ListTodos").Msg("error building query")
		return nil, err
	}

	rows, queryErr := r.db.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "*sqlTodoRepository.ListTodos").
			Str("user_id", userID).
			Msg("failed to execute query for listing todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		todo, scanErr := scanTodo(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*sqlTodoRepository.ListTodos").
				Str("user_id", userID).
				Msg("failed to scan todo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		todos = append(todos, todo)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*sqlTodoRepository.ListTodos").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return todos, nil
}

func (r *sqlTodoRepository) FindTodo(ctx context.Context, userID, todoID string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildFindTodoQuery(userID, todoID)
	if err != nil {
		log.Err(err).Str("func", "*sqlTodoRepository.FindTodo").Msg("error building query")
		return models.Todo{}, err
	}

	todo, err := scanTodo(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Todo{}, ErrTodoNotFound
		}

		log.Err(err).
			Str("func", "*sqlTodoRepository.FindTodo").
			Str("todo_id", todoID).
			Msg("failed to scan todo row")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return todo, nil
}

func (r *sqlTodoRepository) ReplaceTodo(ctx context.Context, todo models.Todo) error {
	query, args, err := r.db.buildReplaceTodoQuery(todo)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlTodoRepository.ReplaceTodo").Msg("error building query")
		return err
	}

	return r.execAffectingOne(ctx, "*sqlTodoRepository.ReplaceTodo", todo.ID, query, args)
}

func (r *sqlTodoRepository) DeleteTodo(ctx context.Context, userID, todoID string) error {
	query, args, err := r.db.buildDeleteTodoQuery(userID, todoID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlTodoRepository.DeleteTodo").Msg("error building query")
		return err
	}

	return r.execAffectingOne(ctx, "*sqlTodoRepository.DeleteTodo", todoID, query, args)
}

// execAffectingOne runs a statement targeting one owned todo and reports
// [ErrTodoNotFound] when no row was affected.
func (r *sqlTodoRepository) execAffectingOne(ctx context.Context, funcName, todoID, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("todo_id", todoID).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("todo_id", todoID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		log.Debug().Str("func", funcName).Str("todo_id", todoID).Msg("todo not found")
		return ErrTodoNotFound
	}

	return nil
}
