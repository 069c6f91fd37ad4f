package handler

import (
	"qbank/internal/models"
	"qbank/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupImport struct {
	container *do.Injector
}

func (gr *groupImport) Upload(c echo.Context) error {
	serviceImport, err := do.Invoke[*services.ServiceImport](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	ctx := c.Request().Context()
	if _, err := ResolveAdmin(ctx); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var payload struct {
		CSVData string `json:"csvData"`
		Subject string `json:"subject"`
	}
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	created, err := serviceImport.ImportCSV(ctx, payload.CSVData, models.Subject(payload.Subject))
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}
	return httpx.RestAbort(c, echo.Map{"created": created}, nil)
}

func (gr *groupImport) Preview(c echo.Context) error {
	serviceImport, err := do.Invoke[*services.ServiceImport](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	ctx := c.Request().Context()
	if _, err := ResolveAdmin(ctx); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var payload struct {
		CSVData string `json:"csvData"`
	}
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	drafts, err := serviceImport.PreviewCSV(ctx, payload.CSVData)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}
	return httpx.RestAbort(c, echo.Map{"previewQuestions": drafts}, nil)
}
