package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-a", "127.0.0.1:8000",
		"-grpc-address", "localhost:9090",
		"-d", "sqlite://todo.db",
		"-db-name", "todos",
		"-config", "/etc/todo.json",
		"-bcrypt-cost", "11",
		"-log-level", "error",
		"-request-timeout", "15s",
		"-hashers", "2",
	}

	cfg, err := ParseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "sqlite://todo.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "todos", cfg.Storage.DB.Name)
	assert.Equal(t, "/etc/todo.json", cfg.JSONFilePath)
	assert.Equal(t, 11, cfg.App.BcryptCost)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, 2, cfg.Workers.Hashers)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-token-sign-key", "x"})
	require.Error(t, err)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "not-an-address"})
	require.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "ipv4", input: "0.0.0.0:8000", want: NetAddress{Host: "0.0.0.0", Port: 8000}},
		{name: "localhost", input: "localhost:9090", want: NetAddress{Host: "localhost", Port: 9090}},
		{name: "empty host", input: ":8000", want: NetAddress{Host: "", Port: 8000}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non numeric port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port too large", input: "localhost:70000", wantErr: true},
		{name: "hostname", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Empty(t, (&NetAddress{}).String())
	assert.Equal(t, "localhost:8000", (&NetAddress{Host: "localhost", Port: 8000}).String())
	assert.Equal(t, ":8000", (&NetAddress{Port: 8000}).String())
}
