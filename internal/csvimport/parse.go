package csvimport

import (
	"encoding/csv"
	"errors"
	"log"
	"regexp"
	"strconv"
	"strings"

	"qbank/internal/models"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
)

// slotHeader is a decoded regular-column header like "T3 Question".
type slotHeader struct {
	Role   models.QuestionRole
	Number int
}

var slotHeaderPattern = regexp.MustCompile(`^([TB])([0-9]+) Question$`)

func decodeSlotHeader(text string) *slotHeader {
	m := slotHeaderPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return nil
	}
	number, err := strconv.Atoi(m[2])
	if err != nil {
		return nil
	}
	role := models.RoleTossup
	if m[1] == "B" {
		role = models.RoleBonus
	}
	return &slotHeader{Role: role, Number: number}
}

// Draft is a parsed question annotated with the header cell it came from.
type Draft struct {
	models.Question
	Header string `json:"header"`
}

// Parse decodes a whole spreadsheet export into question drafts for one
// subject. Row 0 is the header row; each data row starts with a round code.
// Unknown round codes and undecodable cells are skipped with a log line, the
// rest of the sheet is still imported.
func Parse(raw string, subject models.Subject) ([]Draft, error) {
	rows, err := readRows(raw)
	if err != nil {
		return nil, err
	}
	header := rows[0]

	var drafts []Draft
	for _, row := range rows[1:] {
		round, ok := models.RoundFromCode(row[0])
		if !ok {
			log.Printf("csvimport: unknown round code %q, skipping row", row[0])
			continue
		}
		drafts = append(drafts, decodeRow(header, row, subject, round)...)
	}
	return drafts, nil
}

// Preview decodes only the first data row and keeps at most 3 regular drafts
// plus any replacement drafts, enough for the admin to sanity-check a sheet
// before importing it.
func Preview(raw string) ([]Draft, error) {
	rows, err := readRows(raw)
	if err != nil {
		return nil, err
	}
	header, row := rows[0], rows[1]

	round, ok := models.RoundFromCode(row[0])
	if !ok {
		return nil, nil
	}

	var regular, replacements []Draft
	for _, draft := range decodeRow(header, row, "", round) {
		if draft.QuestionNumber >= models.FirstReplacementNumber {
			replacements = append(replacements, draft)
		} else if len(regular) < 3 {
			regular = append(regular, draft)
		}
	}
	return append(regular, replacements...), nil
}

func readRows(raw string) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(raw))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	all, err := r.ReadAll()
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Invalid)
	}

	rows := make([][]string, 0, len(all))
	for _, row := range all {
		if !blankRow(row) {
			rows = append(rows, row)
		}
	}
	if len(rows) < 2 {
		return nil, errorx.Wrap(errors.New("csv needs a header row and at least one data row"), errorx.Invalid)
	}
	if len(rows[0]) < 3 {
		return nil, errorx.Wrap(errors.New("csv header is missing the replacement columns"), errorx.Invalid)
	}
	return rows, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// decodeRow yields drafts for one data row: regular slot columns first, then
// the trailing replacement tossup and bonus columns at question number 6.
func decodeRow(header, row []string, subject models.Subject, round int) []Draft {
	tossupCol := len(header) - 2
	bonusCol := len(header) - 1

	var drafts []Draft
	for col := 1; col < tossupCol; col++ {
		slot := decodeSlotHeader(header[col])
		if slot == nil {
			continue
		}
		if col >= len(row) || strings.TrimSpace(row[col]) == "" {
			continue
		}
		cell, err := DecodeCell(row[col])
		if err != nil {
			log.Printf("csvimport: column %q: %v, skipping cell", header[col], err)
			continue
		}
		drafts = append(drafts, makeDraft(header[col], cell, subject, round, slot.Role, slot.Number))
	}

	for _, repl := range []struct {
		col  int
		role models.QuestionRole
	}{
		{tossupCol, models.RoleTossup},
		{bonusCol, models.RoleBonus},
	} {
		if repl.col >= len(row) || strings.TrimSpace(row[repl.col]) == "" {
			continue
		}
		cell, err := DecodeCell(row[repl.col])
		if err != nil {
			log.Printf("csvimport: column %q: %v, skipping cell", header[repl.col], err)
			continue
		}
		drafts = append(drafts, makeDraft(header[repl.col], cell, subject, round, repl.role, models.FirstReplacementNumber))
	}
	return drafts
}

func makeDraft(header string, cell *Cell, subject models.Subject, round int, role models.QuestionRole, number int) Draft {
	choices := cell.Choices
	if choices == nil {
		choices = []string{}
	}
	return Draft{
		Question: models.Question{
			Subject:        subject,
			Round:          round,
			QuestionType:   cell.Kind.QuestionType(),
			QuestionRole:   role,
			QuestionNumber: number,
			Question:       cell.Question,
			Answer:         cell.Answer,
			Choices:        choices,
		},
		Header: strings.TrimSpace(header),
	}
}
