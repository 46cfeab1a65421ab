package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"delivery-backend/internal/deliveries"
	"delivery-backend/internal/llm"
	"delivery-backend/internal/llm/openai"
	"delivery-backend/internal/shared/config"
	"delivery-backend/internal/shared/server"
	"delivery-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config  config.Config
	Router  *gin.Engine
	DB      *sql.DB
	Repo    deliveries.Repo
	LLM     llm.Client
	Service *deliveries.Service
	Handler *deliveries.Handler
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, repo, err := buildRepo(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	svc := &deliveries.Service{
		Repo:      repo,
		LLM:       client,
		MaxTokens: cfg.LLMMaxTokens,
	}
	handler := deliveries.NewHandler(svc)

	return &App{
		Config:  cfg,
		Router:  server.NewRouter(cfg, handler),
		DB:      sqlDB,
		Repo:    repo,
		LLM:     client,
		Service: svc,
		Handler: handler,
	}, nil
}

func buildRepo(ctx context.Context, cfg config.Config) (*sql.DB, deliveries.Repo, error) {
	if cfg.DatabaseURL == "" {
		if cfg.Env == "production" {
			return nil, nil, fmt.Errorf("database is required in production")
		}
		log.Printf("no database configured, using in-memory repository")
		return nil, deliveries.NewMemoryRepo(), nil
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.Migrate(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, &deliveries.PGRepo{DB: sqlDB}, nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if cfg.LLMAPIKey == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("LLM_API_KEY is required in production")
		}
		log.Printf("no LLM API key configured, using placeholder client")
		return llm.PlaceholderClient{}, nil
	}
	return openai.NewClient(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
}
