package http

import (
	"errors"
	"net/http"

	"github.com/CemWebDev/python-todo-backend/internal/app"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/internal/service"
	"github.com/CemWebDev/python-todo-backend/internal/utils"
	"github.com/CemWebDev/python-todo-backend/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusUnprocessableEntity,
	service.ErrDuplicateEmail:      http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrInvalidAPIKey:       http.StatusUnauthorized,
	service.ErrNoIdentityInContext: http.StatusUnauthorized,
	service.ErrInvalidID:           http.StatusBadRequest,
	service.ErrTodoNotFound:        http.StatusNotFound,

	ErrEmptyAPIKeyHeader: http.StatusUnauthorized,
	ErrInvalidJSON:       http.StatusUnprocessableEntity,
	ErrInvalidForm:       http.StatusUnprocessableEntity,
}

// errorDetails is ordered: the first matching target wins.
var errorDetails = []struct {
	target error
	detail string
}{
	{utils.ErrMalformedAPIKey, app.MsgInvalidAPIKeyFormat},
	{service.ErrInvalidAPIKey, app.MsgInvalidAPIKey},
	{ErrEmptyAPIKeyHeader, app.MsgAPIKeyMissing},
	{service.ErrNoIdentityInContext, app.MsgNotAuthenticated},
	{service.ErrDuplicateEmail, app.MsgEmailExists},
	{service.ErrInvalidCredentials, app.MsgIncorrectCredentials},
	{service.ErrInvalidID, app.MsgInvalidTodoID},
	{service.ErrTodoNotFound, app.MsgTodoNotFound},
	{ErrInvalidJSON, app.MsgInvalidJSON},
	{ErrInvalidForm, app.MsgInvalidDataProvided},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError returns the client-facing message for err. Validation
// failures name the offending field; unknown errors never leak their text.
func detailFromError(err error) string {
	for _, d := range errorDetails {
		if errors.Is(err, d.target) {
			return d.detail
		}
	}

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}

	if errors.Is(err, service.ErrInvalidDataProvided) {
		return app.MsgInvalidDataProvided
	}

	return app.MsgInternalServerError
}

// writeError maps err onto a status and a {"detail": ...} body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, detailFromError(err), status)
}
