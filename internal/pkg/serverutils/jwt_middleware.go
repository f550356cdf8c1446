package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AccountIdKey is the Fiber locals key the middleware stores the
// authenticated account id under.
const AccountIdKey = "account_id"

// NewJwtMiddleware builds the bearer-token guard. The secret comes from the
// process-wide config loaded at startup; it is never re-read per request.
// Token minting belongs to the external identity service; the backend only
// verifies and trusts the embedded account id.
func NewJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token"})
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid claims"})
		}

		id, ok := claims["id"].(float64)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid claims"})
		}

		ctx.Locals(AccountIdKey, int64(id))
		return ctx.Next()
	}
}

// AccountId reads the authenticated account id set by the middleware.
func AccountId(ctx *fiber.Ctx) int64 {
	id, _ := ctx.Locals(AccountIdKey).(int64)
	return id
}
