package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rafidhms/jobtrail/internal/config"
	"github.com/rafidhms/jobtrail/internal/util"
)

// UserIDKey is the locals key the authenticated user id is stored under.
const UserIDKey = "userId"

// Authenticate gates non-public routes. A missing bearer token is 401,
// a token that fails verification (bad signature, expired) is 403.
func Authenticate() fiber.Handler {
	secret := []byte(config.LoadJWTConfig().Secret)

	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Access denied. No token provided.",
			})
		}

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !parsed.Valid {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "Invalid or expired token.",
			}, err)
		}

		claims, ok := parsed.Claims.(jwt.MapClaims)
		if !ok {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "Invalid or expired token.",
			})
		}
		userID, _ := claims["userId"].(string)
		if userID == "" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "Invalid or expired token.",
			})
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
