package http

import (
	"net/http"

	"github.com/CemWebDev/python-todo-backend/internal/app"
	"github.com/CemWebDev/python-todo-backend/internal/utils"
	"github.com/CemWebDev/python-todo-backend/models"
)

const (
	healthStatusOK          = "ok"
	healthStatusUnavailable = "unavailable"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.RootResponse{
		Message: app.MsgWelcome,
		Docs:    "/docs",
		Redoc:   "/redoc",
	}, http.StatusOK)
}

// healthz reports 503 while the store cannot be reached.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	appInfo := h.services.AppInfoService

	response := models.HealthResponse{
		Status:  healthStatusOK,
		Version: appInfo.GetAppVersion(ctx),
	}

	if err := appInfo.CheckHealth(ctx); err != nil {
		response.Status = healthStatusUnavailable
		utils.WriteJSON(w, response, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}
