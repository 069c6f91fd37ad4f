package handler

import (
	"net/http"

	"qbank/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do"
)

type Config struct {
	Container *do.Injector
	Mode      string
	Origins   []string
}

func New(cfg *Config) (http.Handler, error) {
	r := echo.New()
	r.Pre(middleware.RemoveTrailingSlash())
	if cfg.Mode == "debug" {
		r.Debug = true
		pprof.Register(r)
	}

	r.JSONSerializer = httpx.SegmentJSONSerializer{}
	r.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339}\t${method}\t${uri}\t${status}\t${latency_human}\n",
	}))
	r.Use(middleware.Recover())

	r.GET("", func(c echo.Context) error {
		return c.String(http.StatusOK, "🧪")
	})

	vs, err := do.InvokeNamed[map[string]string](cfg.Container, "envs")
	if err != nil {
		return nil, err
	}
	generatedDir := vs["GENERATED_DIR"]
	if generatedDir == "" {
		generatedDir = "./generated"
	}
	// Compiled artifacts are served straight from disk, keyed by round code.
	r.Static("/generated", generatedDir)

	authentication, err := do.Invoke[*services.Authentication](cfg.Container)
	if err != nil {
		return nil, err
	}

	cors := middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Origins,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           60 * 60,
	})

	a := groupAuth{cfg.Container}
	r.POST("/login", a.Login, cors)

	routesAPI := r.Group("/api")
	routesAPI.Use(cors)
	routesAPI.Use(Authn(authentication)) // Authn will NOT terminate unauthenticated requests.

	q := groupQuestion{cfg.Container}
	routesAPI.POST("/questions", q.Create)
	routesAPI.GET("/questions", q.List)
	routesAPI.GET("/questions/:id", q.Show)
	routesAPI.PUT("/questions/:id", q.Update)
	routesAPI.DELETE("/questions/:id", q.Delete)
	routesAPI.POST("/reset-questions", q.Reset)

	i := groupImport{cfg.Container}
	routesAPI.POST("/upload-csv", i.Upload)
	routesAPI.POST("/preview-csv", i.Preview)

	t := groupTypeset{cfg.Container}
	routesAPI.POST("/generate-latex", t.Generate)

	return r, nil
}
