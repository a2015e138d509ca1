package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/CemWebDev/python-todo-backend/models"
)

// userDocument is the BSON layout of the users collection.
type userDocument struct {
	ID             primitive.ObjectID `bson:"_id"`
	Email          string             `bson:"email"`
	HashedPassword string             `bson:"hashed_password"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func newUserDocument(user models.User) (userDocument, error) {
	id, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return userDocument{}, ErrInvalidDocumentID
	}

	return userDocument{
		ID:             id,
		Email:          user.Email,
		HashedPassword: user.PasswordHash,
		CreatedAt:      user.CreatedAt,
	}, nil
}

func (d userDocument) model() models.User {
	return models.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.HashedPassword,
		CreatedAt:    d.CreatedAt.UTC(),
	}
}

// todoDocument is the BSON layout of the todos collection. The owner is kept
// as the hex string of the user's ObjectID and an absent description is
// stored as null.
type todoDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	UserID      string             `bson:"user_id"`
	Title       string             `bson:"title"`
	Description *string            `bson:"description"`
	Completed   bool               `bson:"completed"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func newTodoDocument(todo models.Todo) (todoDocument, error) {
	id, err := primitive.ObjectIDFromHex(todo.ID)
	if err != nil {
		return todoDocument{}, ErrInvalidDocumentID
	}

	return todoDocument{
		ID:          id,
		UserID:      todo.UserID,
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}, nil
}

func (d todoDocument) model() models.Todo {
	return models.Todo{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		Title:       d.Title,
		Description: d.Description,
		Completed:   d.Completed,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}
