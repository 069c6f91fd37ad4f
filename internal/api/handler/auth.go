package handler

import (
	"net/http"

	"qbank/internal/interfaces"
	"qbank/internal/services"

	"github.com/go-redis/redis_rate/v10"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupAuth struct {
	container *do.Injector
}

func (gr *groupAuth) Login(c echo.Context) error {
	limiter, err := do.Invoke[interfaces.Limiter](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	authentication, err := do.Invoke[*services.Authentication](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	ctx := c.Request().Context()
	if err := limiter.Allow(ctx, "login:"+c.RealIP(), redis_rate.PerMinute(5)); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var payload struct {
		Password string `json:"password"`
	}
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	token, err := authentication.Login(ctx, payload.Password)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return httpx.RestAbort(c, echo.Map{"token": token}, nil)
}
