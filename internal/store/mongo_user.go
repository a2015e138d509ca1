package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/models"
)

// mongoUserRepository is the MongoDB-backed implementation of [UserRepository].
type mongoUserRepository struct {
	users  *mongo.Collection
	logger *logger.Logger
}

// NewMongoUserRepository constructs a [UserRepository] over the users
// collection.
func NewMongoUserRepository(users *mongo.Collection, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		users:  users,
		logger: logger,
	}
}

// CreateUser inserts the user, assigning a fresh ObjectID when user.ID is
// empty. The unique email index turns a concurrent duplicate registration
// into [ErrEmailAlreadyExists].
func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.ID == "" {
		user.ID = models.NewID()
	}

	doc, err := newUserDocument(user)
	if err != nil {
		return models.User{}, err
	}

	if _, err = r.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Warn().Str("func", "*mongoUserRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.model(), nil
}

func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var doc userDocument
	err := r.users.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*mongoUserRepository.FindUserByEmail").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.model(), nil
}
