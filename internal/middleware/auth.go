package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/quickbasket/quickbasket-api/pkg/errs"
	"github.com/quickbasket/quickbasket-api/pkg/response"
	"github.com/quickbasket/quickbasket-api/pkg/utils"
)

// IsLoggedIn validates the bearer token and stores the parsed claims on the
// context for utils.ExtractTokenUser.
func IsLoggedIn(jwtSecret string) echo.MiddlewareFunc {
	return middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(jwtSecret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			errorResponse := map[string]interface{}{
				"status":  "error",
				"message": "Invalid or expired JWT",
				"errors":  nil,
			}
			return c.JSON(http.StatusUnauthorized, errorResponse)
		},
	})
}

func IsAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, _, isAdmin := utils.ExtractTokenUser(c)
		if !isAdmin {
			return response.WriteErrorResponse(c, errs.ErrForbidden, nil)
		}

		return next(c)
	}
}
