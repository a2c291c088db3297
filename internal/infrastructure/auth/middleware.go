package auth

import (
	"errors"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "auth_claims"

// Require gates a route on one permission. The handler runs only after the
// credential is verified and carries the permission; the verified claims
// subject is exposed on the echo context as "user_id".
func (g *Gate) Require(required Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := g.Authorize(c.Request().Header.Get("Authorization"), required)
			if err != nil {
				var authErr *Error
				if errors.As(err, &authErr) {
					return c.JSON(authErr.StatusCode(), map[string]string{"error": string(authErr.Kind)})
				}
				return err
			}
			c.Set(claimsContextKey, claims)
			c.Set("user_id", claims.Subject)
			return next(c)
		}
	}
}

// ClaimsFrom returns the verified claims Require stored on the context,
// or nil when the route was not gated.
func ClaimsFrom(c echo.Context) *Claims {
	claims, _ := c.Get(claimsContextKey).(*Claims)
	return claims
}
