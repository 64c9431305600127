package log_test

import (
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	applog "clinicart/internal/log"
)

func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	prev := applog.SetLogger(zap.New(core))
	t.Cleanup(func() { applog.SetLogger(prev) })
	return logs
}

func TestRequestEntriesCarryRequestContext(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Generator: func() string { return "rid-1" }}))
	app.Get("/x", func(c *fiber.Ctx) error {
		applog.Security(c, "validation.fail", map[string]any{"field": "pincode"})
		return c.SendStatus(fiber.StatusNotFound)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)

	entries := logs.FilterMessage("validation.fail").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "rid-1", ctx["req_id"])
	assert.Equal(t, "GET", ctx["method"])
	assert.Equal(t, "/x", ctx["path"])
	assert.Equal(t, map[string]any{"field": "pincode"}, ctx["fields"])
}

func TestAccessMiddleware(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	app := fiber.New()
	app.Use(applog.Access())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })

	_, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)

	entries := logs.FilterMessage("http.access").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 200, entries[0].ContextMap()["status"])
}

func TestAccessMiddleware_LogsErrorStatus(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	app := fiber.New()
	app.Use(applog.Access())
	app.Get("/gone", func(c *fiber.Ctx) error { return fiber.ErrGone })

	resp, err := app.Test(httptest.NewRequest("GET", "/gone", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusGone, resp.StatusCode)

	entries := logs.FilterMessage("http.access").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, fiber.StatusGone, entries[0].ContextMap()["status"])
	assert.Equal(t, "Gone", entries[0].ContextMap()["err"])
}

func TestErrorWithoutRequest(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	applog.Error(nil, "load.products.fail", errors.New("boom"), nil)
	applog.Debug(nil, "load.row", nil) // below level

	require.Equal(t, 1, logs.Len())
	e := logs.All()[0]
	assert.Equal(t, "boom", e.ContextMap()["err"])
	assert.NotContains(t, e.ContextMap(), "path")
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinicart.log")
	l, err := applog.New(applog.Config{Level: "warn", Format: "json", Output: path})
	require.NoError(t, err)

	l.Info("dropped")
	l.Warn("kept")
	require.NoError(t, l.Sync())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"action":"kept"`)
	assert.NotContains(t, string(b), "dropped")
}
