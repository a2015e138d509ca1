package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/internal/utils"
	"github.com/CemWebDev/python-todo-backend/internal/validators"
	"github.com/CemWebDev/python-todo-backend/models"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user successfully registered")
	utils.WriteJSON(w, user.View(), http.StatusOK)
}

// login reads the credentials from a form body, the email travelling in the
// "username" field.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidForm, err))
		return
	}

	request := models.LoginRequest{
		Email:    r.PostForm.Get(validators.FieldUsername),
		Password: r.PostForm.Get(validators.FieldPassword),
	}

	response, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", response.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AuthService.Logout(r.Context()), http.StatusOK)
}

// decodeJSON decodes a size-limited JSON body into dst. Every failure wraps
// ErrInvalidJSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return nil
}
