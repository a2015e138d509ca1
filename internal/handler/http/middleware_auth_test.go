package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/CemWebDev/python-todo-backend/internal/app"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/internal/mock"
	"github.com/CemWebDev/python-todo-backend/internal/service"
	"github.com/CemWebDev/python-todo-backend/internal/utils"
	"github.com/CemWebDev/python-todo-backend/models"
)

func TestAPIKeyAuth_TableTest(t *testing.T) {
	malformed := fmt.Errorf("%w: %w", service.ErrInvalidAPIKey, utils.ErrMalformedAPIKey)
	storeDown := fmt.Errorf("user search by email failed: %w", assert.AnError)

	tests := []struct {
		name           string
		apiKey         string
		resolveUser    models.User
		resolveErr     error
		expectResolve  bool
		wantStatus     int
		wantDetail     string
		wantNextCalled bool
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantDetail: app.MsgAPIKeyMissing,
		},
		{
			name:          "undecodable key",
			apiKey:        "!!!",
			resolveErr:    malformed,
			expectResolve: true,
			wantStatus:    http.StatusUnauthorized,
			wantDetail:    app.MsgInvalidAPIKeyFormat,
		},
		{
			name:          "unknown user",
			apiKey:        utils.EncodeAPIKey("ghost@example.com", testUserID),
			resolveErr:    service.ErrInvalidAPIKey,
			expectResolve: true,
			wantStatus:    http.StatusUnauthorized,
			wantDetail:    app.MsgInvalidAPIKey,
		},
		{
			name:          "store failure",
			apiKey:        testAPIKey,
			resolveErr:    storeDown,
			expectResolve: true,
			wantStatus:    http.StatusInternalServerError,
			wantDetail:    app.MsgInternalServerError,
		},
		{
			name:           "valid key",
			apiKey:         testAPIKey,
			resolveUser:    models.User{ID: testUserID, Email: testEmail},
			expectResolve:  true,
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authService := mock.NewMockAuthService(ctrl)
			if tt.expectResolve {
				authService.EXPECT().Resolve(gomock.Any(), tt.apiKey).Return(tt.resolveUser, tt.resolveErr)
			}
			h := &Handler{services: &service.Services{AuthService: authService}, logger: logger.Nop()}

			var nextCalled bool
			var ctxUser models.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				ctxUser, _ = utils.GetUserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/todos", nil)
			if tt.apiKey != "" {
				req.Header.Set(apiKeyHeader, tt.apiKey)
			}
			rr := httptest.NewRecorder()
			h.apiKeyAuth(next).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeBody[models.ErrorResponse](t, rr).Detail)
			}
			if tt.wantNextCalled {
				assert.Equal(t, tt.resolveUser, ctxUser)
			}
		})
	}
}
