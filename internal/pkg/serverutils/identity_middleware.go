package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const userKeyLocal = "user_key"

// IdentityMiddleware resolves the opaque caller key used for favorites and
// search history: the user_id claim of a valid Bearer token when present,
// otherwise the client-supplied X-Session-Id header. Anonymous requests
// get an empty key; handlers that require one reject it themselves.
func IdentityMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		token, err := jwt.Parse(authHeader[7:], func(t *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err == nil && token.Valid {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if id, ok := claims["user_id"].(string); ok && id != "" {
					ctx.Locals(userKeyLocal, id)
					return ctx.Next()
				}
			}
		}
	}

	ctx.Locals(userKeyLocal, ctx.Get("X-Session-Id"))
	return ctx.Next()
}

// UserKey returns the caller key resolved by IdentityMiddleware.
func UserKey(ctx *fiber.Ctx) string {
	if key, ok := ctx.Locals(userKeyLocal).(string); ok {
		return key
	}
	return ""
}
