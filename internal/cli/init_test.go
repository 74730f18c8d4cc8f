package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneyflow/internal/config"
	"moneyflow/internal/log"
)

func TestLoadAndValidateConfig(t *testing.T) {
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("PORT", "9090")

	cfg, err := LoadAndValidateConfig("")
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, config.BackendMemory, cfg.DataBackend)

	t.Setenv("PORT", "not-a-port")
	_, err = LoadAndValidateConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := SetupLogger(&config.Config{LogLevel: "warn", LogFormat: "json"}, &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, log.ComponentApp, rec[log.FieldComponent])

	_, err = SetupLogger(&config.Config{LogLevel: "loud"}, &buf)
	assert.Error(t, err)
}

func TestOpenBackend(t *testing.T) {
	ctx := context.Background()

	res, err := OpenBackend(ctx, &config.Config{DataBackend: config.BackendMemory}, log.Discard())
	require.NoError(t, err)
	require.NoError(t, res.Store.Ping(ctx))
	require.NoError(t, res.Cleanup())

	res, err = OpenBackend(ctx, &config.Config{
		DataBackend:  config.BackendSQLite,
		SQLiteDBPath: t.TempDir() + "/moneyflow.db",
	}, log.Discard())
	require.NoError(t, err)
	require.NoError(t, res.Store.Ping(ctx))
	require.NoError(t, res.Cleanup())

	_, err = OpenBackend(ctx, &config.Config{DataBackend: "mongo"}, log.Discard())
	assert.Error(t, err)
}

func TestSignalContextCancel(t *testing.T) {
	ctx, cancel := SignalContext(context.Background(), log.Discard())
	cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
