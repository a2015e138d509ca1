package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/CemWebDev/python-todo-backend/models"
)

var (
	userColumns = []string{"id", "email", "hashed_password", "created_at"}
	todoColumns = []string{"id", "user_id", "title", "description", "completed", "created_at", "updated_at"}
)

func (db *DB) buildInsertUserQuery(user models.User) (string, []any, error) {
	query, args, err := db.builder.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.PasswordHash, user.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) buildFindUserByEmailQuery(email string) (string, []any, error) {
	query, args, err := db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) buildInsertTodoQuery(todo models.Todo) (string, []any, error) {
	query, args, err := db.builder.
		Insert(todo.TableName()).
		Columns(todoColumns...).
		Values(todo.ID, todo.UserID, todo.Title, nullString(todo.Description), todo.Completed, todo.CreatedAt, todo.UpdatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListTodosQuery orders by creation time with the id as tie-breaker,
// which matches insertion order since ids are time-prefixed.
func (db *DB) buildListTodosQuery(userID string) (string, []any, error) {
	query, args, err := db.builder.
		Select(todoColumns...).
		From(models.Todo{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) buildFindTodoQuery(userID, todoID string) (string, []any, error) {
	query, args, err := db.builder.
		Select(todoColumns...).
		From(models.Todo{}.TableName()).
		Where(sq.Eq{"id": todoID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) buildReplaceTodoQuery(todo models.Todo) (string, []any, error) {
	query, args, err := db.builder.
		Update(todo.TableName()).
		Set("title", todo.Title).
		Set("description", nullString(todo.Description)).
		Set("completed", todo.Completed).
		Set("updated_at", todo.UpdatedAt).
		Where(sq.Eq{"id": todo.ID, "user_id": todo.UserID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) buildDeleteTodoQuery(userID, todoID string) (string, []any, error) {
	query, args, err := db.builder.
		Delete(models.Todo{}.TableName()).
		Where(sq.Eq{"id": todoID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (models.Todo, error) {
	var (
		todo        models.Todo
		description sql.NullString
	)

	if err := row.Scan(
		&todo.ID,
		&todo.UserID,
		&todo.Title,
		&description,
		&todo.Completed,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	); err != nil {
		return models.Todo{}, err
	}

	todo.Description = stringPtr(description)
	todo.CreatedAt = todo.CreatedAt.UTC()
	todo.UpdatedAt = todo.UpdatedAt.UTC()

	return todo, nil
}
