package handler

import (
	"strconv"

	"qbank/internal/models"
	"qbank/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupQuestion struct {
	container *do.Injector
}

func (gr *groupQuestion) Create(c echo.Context) error {
	serviceQuestion, err := do.Invoke[*services.ServiceQuestion](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	ctx := c.Request().Context()
	if _, err := ResolveAdmin(ctx); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var draft models.Question
	if err := c.Bind(&draft); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}
	if draft.QuestionRole == "" {
		draft.QuestionRole = models.RoleTossup
	}
	if draft.QuestionNumber == 0 {
		draft.QuestionNumber = models.MinQuestionNumber
	}

	question, err := serviceQuestion.CreateQuestion(ctx, &draft)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}
	return httpx.RestAbort(c, question, nil)
}

func (gr *groupQuestion) List(c echo.Context) error {
	serviceQuestion, err := do.Invoke[*services.ServiceQuestion](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	ctx := c.Request().Context()
	if _, err := ResolveAdmin(ctx); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	if filter := c.QueryParam("round"); filter != "" {
		round, ok := models.RoundFromCode(filter)
		if !ok {
			round, err = strconv.Atoi(filter)
			if err != nil {
				return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
			}
		}
		questions, err := serviceQuestion.ListRound(ctx, round)
		if err != nil {
			return httpx.RestAbort(c, nil, err)
		}
		return httpx.RestAbort(c, questions, nil)
	}

	questions, err := serviceQuestion.ListQuestions(ctx)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}
	return httpx.RestAbort(c, questions, nil)
}

func (gr *groupQuestion) Show(c echo.Context) error {
	serviceQuestion, err := do.Invoke[*services.ServiceQuestion](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	ctx := c.Request().Context()
	if _, err := ResolveAdmin(ctx); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	question, err := serviceQuestion.GetQuestion(ctx, c.Param("id"))
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}
	return httpx.RestAbort(c, question, nil)
}

func (gr *groupQuestion) Update(c echo.Context) error {
	serviceQuestion, err := do.Invoke[*services.ServiceQuestion](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	ctx := c.Request().Context()
	if _, err := ResolveAdmin(ctx); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var draft models.Question
	if err := c.Bind(&draft); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	question, err := serviceQuestion.UpdateQuestion(ctx, c.Param("id"), &draft)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}
	return httpx.RestAbort(c, question, nil)
}

func (gr *groupQuestion) Delete(c echo.Context) error {
	serviceQuestion, err := do.Invoke[*services.ServiceQuestion](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	ctx := c.Request().Context()
	if _, err := ResolveAdmin(ctx); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	if err := serviceQuestion.DeleteQuestion(ctx, c.Param("id")); err != nil {
		return httpx.RestAbort(c, nil, err)
	}
	return httpx.RestAbort(c, echo.Map{"deleted": true}, nil)
}

func (gr *groupQuestion) Reset(c echo.Context) error {
	serviceQuestion, err := do.Invoke[*services.ServiceQuestion](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	ctx := c.Request().Context()
	if _, err := ResolveAdmin(ctx); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var payload struct {
		ResetKey string `json:"resetKey"`
	}
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	if err := serviceQuestion.ResetQuestions(ctx, payload.ResetKey); err != nil {
		return httpx.RestAbort(c, nil, err)
	}
	return httpx.RestAbort(c, echo.Map{"reset": true}, nil)
}
