package datastore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"qbank/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableQuestion(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Question)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewRaw(`
		create index if not exists question_slot_idx
			on question (subject, round, question_role, question_number);

		create index if not exists question_round_idx
			on question (round);`).Exec(ctx)

	return err
}

func InsertQuestion(ctx context.Context, db bun.IDB, question *models.Question) error {
	_, err := db.NewInsert().Model(question).Exec(ctx)
	return err
}

func GetQuestion(ctx context.Context, db bun.IDB, id string) (*models.Question, error) {
	var question models.Question
	err := db.NewSelect().Model(&question).Where("id = ?", id).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// ListQuestions returns every record, ordered by round then subject.
func ListQuestions(ctx context.Context, db bun.IDB) ([]*models.Question, error) {
	var questions []*models.Question
	err := db.NewSelect().Model(&questions).Order("round ASC").Order("subject ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func ListQuestionsByRound(ctx context.Context, db bun.IDB, round int) ([]*models.Question, error) {
	var questions []*models.Question
	err := db.NewSelect().Model(&questions).
		Where("round = ?", round).
		Order("subject ASC").Order("question_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GetQuestionBySlot resolves the occupant of a placement tuple, nil when the
// slot is free.
func GetQuestionBySlot(ctx context.Context, db bun.IDB, slot models.Slot) (*models.Question, error) {
	var question models.Question
	err := db.NewSelect().Model(&question).
		Where("subject = ?", slot.Subject).
		Where("round = ?", slot.Round).
		Where("question_role = ?", slot.Role).
		Where("question_number = ?", slot.Number).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func UpdateQuestion(ctx context.Context, db bun.IDB, question *models.Question) error {
	question.UpdatedAt = time.Now().UTC()
	_, err := db.NewUpdate().Model(question).WherePK().Exec(ctx)
	return err
}

// MoveQuestion relocates a record to another grid slot without touching its
// content columns.
func MoveQuestion(ctx context.Context, db bun.IDB, id string, slot models.Slot) error {
	_, err := db.NewUpdate().Model((*models.Question)(nil)).
		Set("subject = ?", slot.Subject).
		Set("round = ?", slot.Round).
		Set("question_role = ?", slot.Role).
		Set("question_number = ?", slot.Number).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func DeleteQuestion(ctx context.Context, db bun.IDB, id string) (int64, error) {
	res, err := db.NewDelete().Model((*models.Question)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func DeleteAllQuestions(ctx context.Context, db bun.IDB) error {
	_, err := db.NewDelete().Model((*models.Question)(nil)).Where("1 = 1").Exec(ctx)
	return err
}
