package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	"qbank/internal/services"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/hiendaovinh/toolkit/pkg/db"
	"github.com/hiendaovinh/toolkit/pkg/env"
	"github.com/joho/godotenv"
	"github.com/samber/do"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
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
		Name: "typeset",
		Commands: []*cli.Command{
			commandGenerate(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// commandGenerate produces the same artifacts as the web operation, without
// the web layer. Handy for regenerating every round before an event.
func commandGenerate() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "typeset one round's documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "round",
				Usage:    "round code (rr1-rr5, de1-de7, f1, f2)",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			vs, err := env.EnvsRequired("DB_DSN", "REDIS_MUTEX")
			if err != nil {
				return err
			}
			vs["GENERATED_DIR"] = os.Getenv("GENERATED_DIR")
			vs["ASSETS_DIR"] = os.Getenv("ASSETS_DIR")
			vs["LATEX_BIN"] = os.Getenv("LATEX_BIN")

			container := do.New()
			do.ProvideNamedValue(container, "envs", vs)

			do.Provide(container, func(i *do.Injector) (*bun.DB, error) {
				sqldb := sql.OpenDB(pgdriver.NewConnector(
					pgdriver.WithDSN(os.Getenv("DB_DSN")),
					pgdriver.WithPassword(os.Getenv("DB_PASSWORD")),
				))
				return bun.NewDB(sqldb, pgdialect.New()), nil
			})

			do.Provide(container, func(i *do.Injector) (*redsync.Redsync, error) {
				dbRedis, err := db.InitRedis(&db.RedisConfig{
					URL: vs["REDIS_MUTEX"],
				})
				if err != nil {
					return nil, err
				}
				return redsync.New(goredis.NewPool(dbRedis)), nil
			})

			serviceTypeset, err := services.NewServiceTypeset(container)
			if err != nil {
				return err
			}

			code := c.String("round")
			if err := serviceTypeset.GenerateRound(context.Background(), code); err != nil {
				return err
			}

			log.Printf("generated documents for round %s", code)
			return nil
		},
	}
}
