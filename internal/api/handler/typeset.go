package handler

import (
	"fmt"
	"strings"

	"qbank/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupTypeset struct {
	container *do.Injector
}

func (gr *groupTypeset) Generate(c echo.Context) error {
	serviceTypeset, err := do.Invoke[*services.ServiceTypeset](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	ctx := c.Request().Context()
	if _, err := ResolveAdmin(ctx); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var payload struct {
		Round string `json:"round"`
	}
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	code := strings.ToLower(strings.TrimSpace(payload.Round))
	if err := serviceTypeset.GenerateRound(ctx, code); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, echo.Map{
		"round": code,
		"tex":   fmt.Sprintf("/generated/%s.tex", code),
		"pdf":   fmt.Sprintf("/generated/%s.pdf", code),
	}, nil)
}
