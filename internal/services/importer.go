package services

import (
	"context"
	"errors"
	"log"

	"qbank/internal/csvimport"
	"qbank/internal/models"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/samber/do"
)

type ServiceImport struct {
	container       *do.Injector
	serviceQuestion *ServiceQuestion
}

func NewServiceImport(container *do.Injector) (*ServiceImport, error) {
	serviceQuestion, err := do.Invoke[*ServiceQuestion](container)
	if err != nil {
		return nil, err
	}

	return &ServiceImport{container, serviceQuestion}, nil
}

// ImportCSV parses a sheet and stores every draft that passes validation.
// A draft that fails is logged and skipped; the batch keeps going and the
// caller only sees the aggregate count.
func (service *ServiceImport) ImportCSV(ctx context.Context, raw string, subject models.Subject) (int, error) {
	if !subject.Valid() {
		return 0, errorx.Wrap(errors.New("invalid subject"), errorx.Validation)
	}

	drafts, err := csvimport.Parse(raw, subject)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, draft := range drafts {
		question := draft.Question
		if _, err := service.serviceQuestion.CreateQuestion(ctx, &question); err != nil {
			log.Printf("import: skipping %s %s #%d: %v", question.Subject, question.QuestionRole, question.QuestionNumber, err)
			continue
		}
		created++
	}
	return created, nil
}

// PreviewCSV decodes a small sample without persisting anything.
func (service *ServiceImport) PreviewCSV(ctx context.Context, raw string) ([]csvimport.Draft, error) {
	return csvimport.Preview(raw)
}
