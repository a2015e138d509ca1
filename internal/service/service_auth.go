package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/CemWebDev/python-todo-backend/internal/app"
	"github.com/CemWebDev/python-todo-backend/internal/crypto"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/internal/store"
	"github.com/CemWebDev/python-todo-backend/internal/utils"
	"github.com/CemWebDev/python-todo-backend/internal/validators"
	"github.com/CemWebDev/python-todo-backend/models"
)

// dummyPassword is hashed on first use and verified against whenever a login
// names an unknown email, so that both failure paths cost one bcrypt compare.
const dummyPassword = "dummy-password-for-timing"

// authService is the concrete implementation of AuthService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and checks password digests.
	hasher crypto.PasswordHasher

	validator validators.Validator

	// dummyDigest is set by the first successful hash of dummyPassword.
	dummyMu     sync.Mutex
	dummyDigest string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher.
//
// The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided (wrapping a validators.ValidationError) for a
//     malformed email or a password outside the allowed length.
//   - ErrDuplicateEmail if the email is already registered.
//   - A wrapped storage or hashing error otherwise.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Str("func", "*authService.Register").Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	switch {
	case err == nil:
		log.Warn().Str("func", "*authService.Register").Msg("email already registered")
		return models.User{}, ErrDuplicateEmail
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*authService.Register").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	digest, err := a.hasher.Hash(ctx, request.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           models.NewID(),
		Email:        request.Email,
		PasswordHash: digest,
		CreatedAt:    models.Now(),
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Warn().Str("func", "*authService.Register").Msg("email registered concurrently")
			return models.User{}, ErrDuplicateEmail
		}

		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login checks the credentials and issues the API key of the user.
//
// An unknown email and a wrong password are both reported as
// ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Str("func", "*authService.Login").Msg("invalid login data")
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
			return models.LoginResponse{}, fmt.Errorf("user search by email failed: %w", err)
		}

		a.verifyDummy(ctx, request.Password)
		log.Warn().Str("func", "*authService.Login").Msg("login for unknown email")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	ok, err := a.hasher.Verify(ctx, request.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("password verification failed")
		return models.LoginResponse{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Warn().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("wrong password")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	return models.LoginResponse{
		APIKey: utils.EncodeAPIKey(user.Email, user.ID),
		UserID: user.ID,
		Email:  user.Email,
	}, nil
}

// Resolve decodes apiKey and loads the user it names. The key is accepted
// only when the stored id of that email equals the decoded id.
func (a *authService) Resolve(ctx context.Context, apiKey string) (models.User, error) {
	log := logger.FromContext(ctx)

	email, userID, err := utils.DecodeAPIKey(apiKey)
	if err != nil {
		log.Warn().Err(err).Str("func", "*authService.Resolve").Msg("undecodable API key")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidAPIKey, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("func", "*authService.Resolve").Msg("API key names unknown user")
			return models.User{}, ErrInvalidAPIKey
		}

		log.Err(err).Str("func", "*authService.Resolve").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.ID != userID {
		log.Warn().Str("func", "*authService.Resolve").Str("user_id", user.ID).Msg("API key user id mismatch")
		return models.User{}, ErrInvalidAPIKey
	}

	return user, nil
}

// Logout has nothing to revoke: keys are stateless and stay valid.
func (a *authService) Logout(ctx context.Context) models.MessageResponse {
	return models.MessageResponse{Message: app.MsgLoggedOut}
}

func (a *authService) verifyDummy(ctx context.Context, password string) {
	digest, err := a.dummy(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.verifyDummy").Msg("error hashing dummy password")
		return
	}

	_, _ = a.hasher.Verify(ctx, password, digest)
}

// dummy returns the digest of dummyPassword, hashing it if no earlier attempt
// succeeded. The hash does not inherit the caller's cancellation, and a
// failure is not remembered.
func (a *authService) dummy(ctx context.Context) (string, error) {
	a.dummyMu.Lock()
	defer a.dummyMu.Unlock()

	if a.dummyDigest != "" {
		return a.dummyDigest, nil
	}

	digest, err := a.hasher.Hash(context.WithoutCancel(ctx), dummyPassword)
	if err != nil {
		return "", err
	}

	a.dummyDigest = digest
	return digest, nil
}
