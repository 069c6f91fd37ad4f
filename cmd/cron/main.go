package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/urfave/cli/v2"
)

func init() {
	// for development
	//nolint:errcheck
	godotenv.Load("../../.env")

	// for production
	//nolint:errcheck
	godotenv.Load("./.env")
}

func main() {
	app := &cli.App{
		Name: "cronjob",
		Commands: []*cli.Command{
			commandCronjob(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commandCronjob() *cli.Command {
	return &cli.Command{
		Name:  "cron",
		Usage: "run the scheduled maintenance jobs",
		Action: func(c *cli.Context) error {
			generatedDir := os.Getenv("GENERATED_DIR")
			if generatedDir == "" {
				generatedDir = "./generated"
			}

			cronRunner := cron.New()

			pruneJob := NewPruneJob(generatedDir)
			pruneJob.Start(cronRunner)

			log.Println("Start cronjob")
			cronRunner.Run()
			return nil
		},
	}
}
