package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/CemWebDev/python-todo-backend/models"
)

var statusKinds = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx responses and an [*APIError] otherwise.
// The detail comes from the {"detail": ...} body when present.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	kind, ok := statusKinds[resp.StatusCode()]
	if !ok {
		kind = ErrUnexpectedStatus
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Detail:     detailOf(resp.Body(), resp.StatusCode()),
		kind:       kind,
	}
}

func detailOf(body []byte, status int) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		return errResp.Detail
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}

	return http.StatusText(status)
}
