package serverutils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newGuardedApp() *fiber.App {
	app := fiber.New()
	app.Use(NewJwtMiddleware(testSecret))
	app.Get("/whoami", func(ctx *fiber.Ctx) error {
		return ctx.SendString(fmt.Sprintf("%d", AccountId(ctx)))
	})
	return app
}

func TestJwtMiddlewareExtractsAccountId(t *testing.T) {
	app := newGuardedApp()
	token := signToken(t, testSecret, jwt.MapClaims{
		"id":  float64(42),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestJwtMiddlewareRejectsMissingHeader(t *testing.T) {
	app := newGuardedApp()

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestJwtMiddlewareRejectsWrongSecret(t *testing.T) {
	app := newGuardedApp()
	token := signToken(t, "other-secret", jwt.MapClaims{"id": float64(42)})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestJwtMiddlewareRejectsExpiredToken(t *testing.T) {
	app := newGuardedApp()
	token := signToken(t, testSecret, jwt.MapClaims{
		"id":  float64(42),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestJwtMiddlewareRejectsTokenWithoutId(t *testing.T) {
	app := newGuardedApp()
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "someone"})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
