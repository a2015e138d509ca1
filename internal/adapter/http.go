package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/internal/utils"
	"github.com/CemWebDev/python-todo-backend/models"
)

const apiKeyHeader = "X-API-Key"

type httpTodoClient struct {
	client *utils.HTTPClient

	mu     sync.RWMutex
	apiKey string

	logger *logger.Logger
}

// NewHTTPTodoClient constructs an HTTP/REST implementation of [TodoAPI].
// address may omit the scheme, in which case http:// is assumed. A zero
// timeout disables the client-side timeout.
func NewHTTPTodoClient(address string, timeout time.Duration, logger *logger.Logger) (TodoAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid todo API address: %w", err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("todo API client created")

	return &httpTodoClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpTodoClient) SetAPIKey(apiKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = strings.TrimSpace(apiKey)
}

func (c *httpTodoClient) APIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

func (c *httpTodoClient) Register(ctx context.Context, email, password string) (models.UserView, error) {
	var user models.UserView

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RegisterRequest{Email: email, Password: password}).
		SetResult(&user).
		Post("/register")
	if err != nil {
		return models.UserView{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}

	return user, nil
}

// Login posts the credentials as a form, the email in the "username" field.
func (c *httpTodoClient) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": email,
			"password": password,
		}).
		SetResult(&login).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	c.SetAPIKey(login.APIKey)
	return login, nil
}

func (c *httpTodoClient) Logout(ctx context.Context) (models.MessageResponse, error) {
	var message models.MessageResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&message).
		Post("/logout")
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	c.SetAPIKey("")
	return message, nil
}

func (c *httpTodoClient) CreateTodo(ctx context.Context, request models.TodoRequest) (models.Todo, error) {
	var todo models.Todo

	resp, err := c.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&todo).
		Post("/todos")
	if err != nil {
		return models.Todo{}, fmt.Errorf("create todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

func (c *httpTodoClient) ListTodos(ctx context.Context) ([]models.Todo, error) {
	todos := make([]models.Todo, 0)

	resp, err := c.authorized(ctx).
		SetResult(&todos).
		Get("/todos")
	if err != nil {
		return nil, fmt.Errorf("list todos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return todos, nil
}

func (c *httpTodoClient) GetTodo(ctx context.Context, todoID string) (models.Todo, error) {
	var todo models.Todo

	resp, err := c.authorized(ctx).
		SetPathParam("todoID", todoID).
		SetResult(&todo).
		Get("/todos/{todoID}")
	if err != nil {
		return models.Todo{}, fmt.Errorf("get todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

func (c *httpTodoClient) UpdateTodo(ctx context.Context, todoID string, request models.TodoRequest) (models.Todo, error) {
	var todo models.Todo

	resp, err := c.authorized(ctx).
		SetPathParam("todoID", todoID).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&todo).
		Put("/todos/{todoID}")
	if err != nil {
		return models.Todo{}, fmt.Errorf("update todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

func (c *httpTodoClient) DeleteTodo(ctx context.Context, todoID string) error {
	resp, err := c.authorized(ctx).
		SetPathParam("todoID", todoID).
		Delete("/todos/{todoID}")
	if err != nil {
		return fmt.Errorf("delete todo request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpTodoClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&health).
		SetError(&health).
		Get("/healthz")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && health.Status != "" {
			apiErr.Detail = health.Status
		}
		return health, err
	}

	return health, nil
}

func (c *httpTodoClient) authorized(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if key := c.APIKey(); key != "" {
		req.SetHeader(apiKeyHeader, key)
	}
	return req
}
