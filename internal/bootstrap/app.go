package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"recruiting-backend/internal/candidates"
	"recruiting-backend/internal/jobpostings"
	"recruiting-backend/internal/matching"
	"recruiting-backend/internal/queue"
	"recruiting-backend/internal/shared/config"
	"recruiting-backend/internal/shared/server"
	"recruiting-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config       config.Config
	Router       *gin.Engine
	DB           *sql.DB
	Candidates   candidates.Repo
	JobPostings  jobpostings.Repo
	Results      matching.ResultsRepo
	MatchService *matching.Service
	MatchHandler *matching.Handler
	Queue        queue.Client
}

// Build prepares shared dependencies for the API server. Without a
// DATABASE_URL in dev-like environments it falls back to in-memory
// repositories.
func Build(cfg config.Config) (*App, error) {
	return build(cfg, db.DefaultServerOptions())
}

// BuildWorker prepares shared dependencies with a pool sized for the
// batch worker.
func BuildWorker(cfg config.Config) (*App, error) {
	return build(cfg, db.DefaultWorkerOptions())
}

func build(cfg config.Config, dbOpts db.Options) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg, dbOpts)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}

	if sqlDB != nil {
		app.Candidates = &candidates.PGRepo{DB: sqlDB}
		app.JobPostings = &jobpostings.PGRepo{DB: sqlDB}
		app.Results = &matching.PGRepo{DB: sqlDB}
	} else {
		app.Candidates = candidates.NewMemoryRepo()
		app.JobPostings = jobpostings.NewMemoryRepo()
		app.Results = matching.NewMemoryRepo()
	}

	app.MatchService = matching.NewService(app.Candidates, app.JobPostings, app.Results)
	app.MatchService.BatchConcurrency = cfg.BatchConcurrency
	app.MatchHandler = matching.NewHandler(app.MatchService)

	if strings.TrimSpace(cfg.BatchQueueURL) != "" {
		queueClient, err := queue.NewSQSClient(ctx)
		if err != nil {
			log.Printf("bootstrap: batch queue unavailable, async batches disabled: %v", err)
		} else {
			app.Queue = queueClient
			app.MatchHandler.Queue = queueClient
		}
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:       cfg,
		MatchHandler: app.MatchHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config, dbOpts db.Options) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		log.Printf("bootstrap: DATABASE_URL empty in %s; using in-memory repositories", cfg.Env)
		return nil, nil
	}

	opts := db.OptionsFromEnv(dbOpts)
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database unavailable, falling back to memory: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch env {
	case "dev", "local", "staging":
		return true
	default:
		return false
	}
}
