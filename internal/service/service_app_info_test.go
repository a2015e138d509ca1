package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/CemWebDev/python-todo-backend/internal/config"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/internal/mock"
)

// ─────────────────────────────────────────────
// NewAppInfoService / GetAppVersion
// ─────────────────────────────────────────────

func TestNewAppInfoService_EmptyVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, nil, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion(t *testing.T) {
	for _, version := range []string{"1.0.0", "v1.2.3-beta+build.42", "N/A"} {
		t.Run(version, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: version}, nil, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, version, svc.GetAppVersion(context.Background()))
		})
	}
}

// ─────────────────────────────────────────────
// CheckHealth
// ─────────────────────────────────────────────

func TestCheckHealth_NoPinger_Healthy(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, nil, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, svc.CheckHealth(context.Background()))
}

func TestCheckHealth(t *testing.T) {
	pingErr := errors.New("server selection timeout")

	tests := []struct {
		name    string
		pingErr error
	}{
		{name: "store reachable"},
		{name: "store unreachable", pingErr: pingErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			pinger := mock.NewMockPinger(ctrl)
			pinger.EXPECT().Ping(gomock.Any()).Return(tt.pingErr)

			svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, pinger, logger.Nop())
			require.NoError(t, err)

			err = svc.CheckHealth(context.Background())
			if tt.pingErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.pingErr)
		})
	}
}

func TestCheckHealth_PingIsBounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	pinger := mock.NewMockPinger(ctrl)
	pinger.EXPECT().Ping(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		require.True(t, ok, "ping must run with a deadline")
		assert.WithinDuration(t, time.Now().Add(healthPingTimeout), deadline, time.Second)
		return nil
	})

	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, pinger, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, svc.CheckHealth(context.Background()))
}
