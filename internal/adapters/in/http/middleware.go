package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/auth"
)

// actorContextKey is where the authenticated actor lives in the echo context.
const actorContextKey = "actor"

// AuthMiddleware verifies the Bearer token on protected routes and stores the
// resulting actor in the request context. Downstream handlers read it with
// actorFromContext and pass it into commands and queries explicitly.
func AuthMiddleware(issuer auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims, err := issuer.Parse(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			actor, err := actorFromClaims(claims)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid token claims",
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func actorFromClaims(claims auth.Claims) (account.Actor, error) {
	id, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return account.Actor{}, err
	}

	role, err := account.RoleFromString(claims.Role)
	if err != nil {
		return account.Actor{}, err
	}

	return account.NewActor(id, role), nil
}

// actorFromContext retrieves the actor stored by AuthMiddleware.
// The bool is false on routes that skipped the middleware.
func actorFromContext(ctx echo.Context) (account.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(account.Actor)
	return actor, ok
}
