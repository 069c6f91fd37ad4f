package handler

import (
	"context"
	"errors"
	"strings"

	"qbank/internal/models"
	"qbank/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/labstack/echo/v4"
)

type ctxKey string

var ctxKeyAdminSession ctxKey = "ADMIN_SESSION"

const sessionCookieName = "qbank_session"

// Authn resolves the admin session from a bearer token or the session cookie
// and stores it on the request context. It never terminates the request;
// handlers that mutate state call ResolveAdmin themselves.
func Authn(authentication *services.Authentication) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				if cookie, err := c.Cookie(sessionCookieName); err == nil {
					token = cookie.Value
				}
			}
			if token == "" {
				return next(c)
			}

			session, err := authentication.Validate(c.Request().Context(), token)
			if err != nil {
				return next(c)
			}

			ctx := context.WithValue(c.Request().Context(), ctxKeyAdminSession, session)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.Split(header, "Bearer")
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func ResolveAdmin(ctx context.Context) (*models.AdminSession, error) {
	session, ok := ctx.Value(ctxKeyAdminSession).(*models.AdminSession)
	if !ok {
		return nil, errorx.Wrap(errors.New("missing session"), errorx.Authn)
	}
	return session, nil
}
