package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/CemWebDev/python-todo-backend/internal/service"
	"github.com/CemWebDev/python-todo-backend/internal/utils"
	"github.com/CemWebDev/python-todo-backend/models"
)

const todoIDParam = "todoID"

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNoIdentityInContext)
		return
	}

	var request models.TodoRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	todo, err := h.services.TodoService.Create(ctx, user.ID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNoIdentityInContext)
		return
	}

	todos, err := h.services.TodoService.List(ctx, user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todos, http.StatusOK)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNoIdentityInContext)
		return
	}

	todo, err := h.services.TodoService.Get(ctx, user.ID, chi.URLParam(r, todoIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNoIdentityInContext)
		return
	}

	var request models.TodoRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	todo, err := h.services.TodoService.Update(ctx, user.ID, chi.URLParam(r, todoIDParam), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNoIdentityInContext)
		return
	}

	if err := h.services.TodoService.Delete(ctx, user.ID, chi.URLParam(r, todoIDParam)); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
