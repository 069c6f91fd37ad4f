package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"time"

	"qbank/internal/datastore"
	"qbank/internal/models"
	"qbank/internal/pkg/caching"

	"github.com/google/uuid"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/samber/do"
	"github.com/uptrace/bun"
)

type ServiceQuestion struct {
	container  *do.Injector
	postgresDB *bun.DB
	cache      caching.Cache
	resetKey   string
}

func NewServiceQuestion(container *do.Injector) (*ServiceQuestion, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	cache, err := do.Invoke[caching.Cache](container)
	if err != nil {
		return nil, err
	}

	vs, err := do.InvokeNamed[map[string]string](container, "envs")
	if err != nil {
		return nil, err
	}

	return &ServiceQuestion{container, postgresDB, cache, vs["RESET_KEY"]}, nil
}

func (service *ServiceQuestion) CreateQuestion(ctx context.Context, draft *models.Question) (*models.Question, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.CreatedAt = now
	draft.UpdatedAt = now

	if err := datastore.InsertQuestion(ctx, service.postgresDB, draft); err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	service.invalidate(ctx, draft.Round)
	return draft, nil
}

func (service *ServiceQuestion) ListQuestions(ctx context.Context) ([]*models.Question, error) {
	callback := func() ([]*models.Question, error) {
		return datastore.ListQuestions(ctx, service.postgresDB)
	}
	return caching.UseCache(ctx, service.cache, DBKeyAllQuestions(), CACHE_TTL_5_MINS, callback)
}

func (service *ServiceQuestion) ListRound(ctx context.Context, round int) ([]*models.Question, error) {
	callback := func() ([]*models.Question, error) {
		return datastore.ListQuestionsByRound(ctx, service.postgresDB, round)
	}
	return caching.UseCache(ctx, service.cache, DBKeyRoundQuestions(round), CACHE_TTL_5_MINS, callback)
}

func (service *ServiceQuestion) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	question, err := datastore.GetQuestion(ctx, service.postgresDB, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errorx.Wrap(errors.New("question not found"), errorx.NotExist)
	}
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}
	return question, nil
}

// UpdateQuestion replaces a record's content and placement. When the new
// placement tuple is already occupied by a different record, the occupant is
// moved to the edited record's old tuple first, so the two swap slots instead
// of silently colliding. Both writes happen in one transaction.
func (service *ServiceQuestion) UpdateQuestion(ctx context.Context, id string, draft *models.Question) (*models.Question, error) {
	var updated *models.Question
	var oldRound int

	err := service.postgresDB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		current, err := datastore.GetQuestion(ctx, tx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return errorx.Wrap(errors.New("question not found"), errorx.NotExist)
		}
		if err != nil {
			return errorx.Wrap(err, errorx.Service)
		}
		oldRound = current.Round

		next := *current
		next.Subject = draft.Subject
		next.Round = draft.Round
		next.QuestionType = draft.QuestionType
		next.QuestionRole = draft.QuestionRole
		next.QuestionNumber = draft.QuestionNumber
		next.Question = draft.Question
		next.Answer = draft.Answer
		next.Choices = draft.Choices

		if err := next.Validate(); err != nil {
			return err
		}

		if next.Slot() != current.Slot() {
			occupant, err := datastore.GetQuestionBySlot(ctx, tx, next.Slot())
			if err != nil {
				return errorx.Wrap(err, errorx.Service)
			}
			if occupant != nil && occupant.ID != id {
				if err := datastore.MoveQuestion(ctx, tx, occupant.ID, current.Slot()); err != nil {
					return errorx.Wrap(err, errorx.Service)
				}
			}
		}

		if err := datastore.UpdateQuestion(ctx, tx, &next); err != nil {
			return errorx.Wrap(err, errorx.Service)
		}
		updated = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	service.invalidate(ctx, updated.Round, oldRound)
	return updated, nil
}

func (service *ServiceQuestion) DeleteQuestion(ctx context.Context, id string) error {
	affected, err := datastore.DeleteQuestion(ctx, service.postgresDB, id)
	if err != nil {
		return errorx.Wrap(err, errorx.Service)
	}
	if affected == 0 {
		return errorx.Wrap(errors.New("question not found"), errorx.NotExist)
	}

	service.invalidateAll(ctx)
	return nil
}

// ResetQuestions wipes the whole bank. It refuses to do anything unless the
// caller presents the configured reset key.
func (service *ServiceQuestion) ResetQuestions(ctx context.Context, resetKey string) error {
	if service.resetKey == "" ||
		subtle.ConstantTimeCompare([]byte(resetKey), []byte(service.resetKey)) != 1 {
		return errorx.Wrap(errors.New("invalid reset key"), errorx.Authn)
	}

	if err := datastore.DeleteAllQuestions(ctx, service.postgresDB); err != nil {
		return errorx.Wrap(err, errorx.Service)
	}

	service.invalidateAll(ctx)
	return nil
}

func (service *ServiceQuestion) invalidate(ctx context.Context, rounds ...int) {
	//nolint:errcheck
	service.cache.Delete(ctx, DBKeyAllQuestions())
	for _, round := range rounds {
		//nolint:errcheck
		service.cache.Delete(ctx, DBKeyRoundQuestions(round))
	}
}

func (service *ServiceQuestion) invalidateAll(ctx context.Context) {
	rounds := make([]int, 0, len(models.AllRoundCodes))
	for i := range models.AllRoundCodes {
		rounds = append(rounds, i+1)
	}
	service.invalidate(ctx, rounds...)
}
