package middleware

import (
	"net/http"
	"strings"

	"careconnect-api/core/cache"
	"careconnect-api/core/config"
	"careconnect-api/core/constants"
	"careconnect-api/core/controller"
	"careconnect-api/core/errors"
	"careconnect-api/core/logger"
	"careconnect-api/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(cache cache.Cache) *Middleware {
	return &Middleware{cache: cache}
}

// AuthMiddleware validates the Bearer token, rejects blacklisted tokens and
// stores the claims under constants.ContextTokenData.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrMissingAuthorizationHeader, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrInvalidTokenFormat, "invalid authorization header format")
			}
			token := parts[1]

			if m.cache != nil {
				blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
				if err != nil {
					logger.Error("Middleware:AuthMiddleware:IsTokenBlacklisted", err)
					return controller.NewErrorResponse(http.StatusInternalServerError, errors.ErrInternalServer, "failed to verify token")
				}
				if blacklisted {
					return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "token has been revoked")
				}
			}

			cfg, ok := config.GetSafe()
			if !ok {
				return controller.NewErrorResponse(http.StatusInternalServerError, errors.ErrInternalServer, "server configuration error")
			}

			claims, err := utils.ValidateToken(token, cfg.JWT.Secret)
			if err != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrTokenExpired, "invalid or expired token")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

// RequireRole allows only callers whose token carries one of the given roles.
func (m *Middleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData := c.Get(constants.ContextTokenData)
			claims, ok := tokenData.(*utils.TokenClaims)
			if !ok {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "user not authenticated")
			}

			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			return controller.NewErrorResponse(http.StatusForbidden, errors.ErrForbidden, "insufficient permissions")
		}
	}
}
