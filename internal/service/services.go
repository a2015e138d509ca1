package service

import (
	"github.com/CemWebDev/python-todo-backend/internal/config"
	"github.com/CemWebDev/python-todo-backend/internal/crypto"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/internal/store"
)

type Services struct {
	AuthService    AuthService
	TodoService    TodoService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, hasher crypto.PasswordHasher, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, logger),
		TodoService:    NewTodoService(storages.TodoRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
