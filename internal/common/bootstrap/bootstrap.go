package bootstrap

import (
	"fmt"
	"os"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/peopleregistry/backend/internal/common/config"
	"github.com/peopleregistry/backend/internal/common/constants"
	"github.com/peopleregistry/backend/internal/common/db"
	"github.com/peopleregistry/backend/internal/common/logger"
	"github.com/peopleregistry/backend/internal/common/resilience"
	"github.com/peopleregistry/backend/internal/person/codec"
	personrepo "github.com/peopleregistry/backend/internal/person/repository"
	personservice "github.com/peopleregistry/backend/internal/person/service"
)

type App struct {
	Log           *logger.Logger
	Config        config.APIConfig
	Pool          *pgxpool.Pool
	PersonRepo    personrepo.Repository
	PersonService *personservice.PersonService
}

func NewAPIApp() (*App, error) {
	log, err := logger.New(os.Getenv("LOG_DIR"), "people", os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.LoadAPIConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
		return nil, err
	}

	pool := db.NewPool(log, cfg.DatabaseURL)
	if pool == nil {
		return nil, fmt.Errorf("failed to initialize database pool")
	}

	db.StartPoolMetrics(pool, constants.DBPoolMetricsInterval)

	repo := personrepo.NewPgRepository(pool)

	breaker := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
		Threshold:  cfg.CircuitBreakerThreshold,
		Timeout:    cfg.CircuitBreakerTimeout,
		ResetAfter: cfg.CircuitBreakerReset,
		Name:       "people-db",
		Logger:     log,
	})

	svc := personservice.NewPersonService(repo, breaker, codec.Options{StrictStack: cfg.StrictStack}, log)

	return &App{
		Log:           log,
		Config:        cfg,
		Pool:          pool,
		PersonRepo:    repo,
		PersonService: svc,
	}, nil
}
