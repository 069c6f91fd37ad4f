package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// Artifacts are cheap to regenerate, so anything untouched for this long is
// considered stale.
const pruneAge = 30 * 24 * time.Hour

type PruneJob struct {
	generatedDir string
}

func NewPruneJob(generatedDir string) *PruneJob {
	return &PruneJob{generatedDir}
}

func (job *PruneJob) Start(runner *cron.Cron) {
	_, err := runner.AddFunc("0 4 * * *", job.prune)
	if err != nil {
		log.Println("prune job:", err)
	}
}

func (job *PruneJob) prune() {
	entries, err := os.ReadDir(job.generatedDir)
	if err != nil {
		log.Println("prune:", err)
		return
	}

	cutoff := time.Now().Add(-pruneAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(job.generatedDir, entry.Name())
		if err := os.Remove(path); err != nil {
			log.Println("prune:", err)
			continue
		}
		log.Println("pruned", path)
	}
}
