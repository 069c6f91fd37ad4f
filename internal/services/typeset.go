package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"qbank/internal/datastore"
	"qbank/internal/models"
	"qbank/internal/typeset"

	"github.com/go-redsync/redsync/v4"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/samber/do"
	"github.com/uptrace/bun"
)

type ServiceTypeset struct {
	container    *do.Injector
	postgresDB   *bun.DB
	rs           *redsync.Redsync
	generatedDir string
	assetsDir    string
	latexBin     string
}

func NewServiceTypeset(container *do.Injector) (*ServiceTypeset, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	rs, err := do.Invoke[*redsync.Redsync](container)
	if err != nil {
		return nil, err
	}

	vs, err := do.InvokeNamed[map[string]string](container, "envs")
	if err != nil {
		return nil, err
	}

	generatedDir := vs["GENERATED_DIR"]
	if generatedDir == "" {
		generatedDir = "./generated"
	}
	assetsDir := vs["ASSETS_DIR"]
	if assetsDir == "" {
		assetsDir = "./assets"
	}
	latexBin := vs["LATEX_BIN"]
	if latexBin == "" {
		latexBin = "pdflatex"
	}

	return &ServiceTypeset{container, postgresDB, rs, generatedDir, assetsDir, latexBin}, nil
}

// GenerateRound builds and compiles the main document for a round, plus the
// replacements document when the round has any replacement content.
// Generation for one round is serialized through a distributed mutex so two
// requests never write the same artifacts concurrently.
func (service *ServiceTypeset) GenerateRound(ctx context.Context, code string) error {
	round, ok := models.RoundFromCode(code)
	if !ok {
		return errorx.Wrap(fmt.Errorf("unknown round code %q", code), errorx.Invalid)
	}
	code = strings.ToLower(strings.TrimSpace(code))

	mutex := service.rs.NewMutex(MutexKeyTypesetRound(code), redsync.WithExpiry(TYPESET_LOCK_TTL))
	if err := mutex.LockContext(ctx); err != nil {
		return errorx.Wrap(err, errorx.Service)
	}
	//nolint:errcheck
	defer mutex.UnlockContext(ctx)

	questions, err := datastore.ListQuestionsByRound(ctx, service.postgresDB, round)
	if err != nil {
		return errorx.Wrap(err, errorx.Service)
	}

	if err := os.MkdirAll(service.generatedDir, 0o755); err != nil {
		return errorx.Wrap(err, errorx.Service)
	}
	if err := service.copyLogo(); err != nil {
		return errorx.Wrap(err, errorx.Service)
	}

	main := typeset.BuildMain(questions, code)
	if err := service.produce(ctx, code+".tex", main); err != nil {
		return err
	}

	replacements := typeset.BuildReplacements(questions, code)
	if replacements.Empty() {
		return nil
	}
	return service.produce(ctx, code+"-replacements.tex", replacements)
}

func (service *ServiceTypeset) produce(ctx context.Context, texName string, doc typeset.Document) error {
	texPath := filepath.Join(service.generatedDir, texName)
	if err := os.WriteFile(texPath, []byte(typeset.Render(doc)), 0o644); err != nil {
		return errorx.Wrap(fmt.Errorf("writing markup %s: %w", texName, err), errorx.Service)
	}
	return service.compile(ctx, texPath)
}

// compile runs the external document compiler with a hard timeout and treats
// a missing output file as a failure even when the process exits cleanly.
func (service *ServiceTypeset) compile(ctx context.Context, texPath string) error {
	ctx, cancel := context.WithTimeout(ctx, COMPILE_TIMEOUT)
	defer cancel()

	cmd := exec.CommandContext(ctx, service.latexBin,
		"-interaction=nonstopmode",
		"-halt-on-error",
		"-output-directory", service.generatedDir,
		texPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if stderr.Len() > 0 {
		log.Printf("typeset: %s stderr: %s", service.latexBin, stderr.String())
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errorx.Wrap(fmt.Errorf("compiling %s timed out", filepath.Base(texPath)), errorx.Service)
	}
	if err != nil {
		return errorx.Wrap(fmt.Errorf("compiling %s: %w", filepath.Base(texPath), err), errorx.Service)
	}

	pdfPath := strings.TrimSuffix(texPath, ".tex") + ".pdf"
	if _, err := os.Stat(pdfPath); err != nil {
		return errorx.Wrap(fmt.Errorf("compiler produced no output for %s", filepath.Base(texPath)), errorx.Service)
	}
	return nil
}

func (service *ServiceTypeset) copyLogo() error {
	src, err := os.Open(filepath.Join(service.assetsDir, "logo.png"))
	if err != nil {
		return fmt.Errorf("opening logo asset: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(service.generatedDir, "logo.png"))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
