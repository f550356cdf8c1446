package serverutils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hulunote-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	errorCount int
}

func (l *recordingLogger) Debug(_, _ string, _ map[string]interface{}) {}
func (l *recordingLogger) Info(_, _ string, _ map[string]interface{})  {}
func (l *recordingLogger) Warn(_, _ string, _ map[string]interface{})  {}
func (l *recordingLogger) Error(_, _ string, _ map[string]interface{}) { l.errorCount++ }
func (l *recordingLogger) Sync() error                                 { return nil }

func newErrorApp(log *recordingLogger, err error) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorHandlerMiddleware(log))
	app.Get("/boom", func(_ *fiber.Ctx) error {
		return err
	})
	return app
}

func TestErrorHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"bad request", apperror.BadRequest("Invalid database ID"), http.StatusBadRequest},
		{"not found", apperror.NotFound("Note not found"), http.StatusNotFound},
		{"permission denied", apperror.PermissionDenied("Cannot update other's note"), http.StatusForbidden},
		{"internal", apperror.Internal(errors.New("pq: down")), http.StatusInternalServerError},
		{"plain error", errors.New("surprise"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newErrorApp(&recordingLogger{}, tc.err)

			res, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, res.StatusCode)
		})
	}
}

func TestErrorHandlerLogsInternalErrorsOnly(t *testing.T) {
	log := &recordingLogger{}
	app := newErrorApp(log, apperror.NotFound("Note not found"))
	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Zero(t, log.errorCount)

	log = &recordingLogger{}
	app = newErrorApp(log, apperror.Internal(errors.New("pq: down")))
	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, 1, log.errorCount)
}

func TestErrorHandlerPassesFiberErrors(t *testing.T) {
	app := newErrorApp(&recordingLogger{}, fiber.ErrTeapot)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, res.StatusCode)
}
