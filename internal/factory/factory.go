package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/lifegame/internal/dependencies/clock"
	"github.com/mcoot/lifegame/internal/dependencies/hasher"
	"github.com/mcoot/lifegame/internal/dependencies/idgen"
	"github.com/mcoot/lifegame/internal/dependencies/random"
	"github.com/mcoot/lifegame/internal/repository"
	"github.com/mcoot/lifegame/internal/services/auth"
	"github.com/mcoot/lifegame/internal/services/choice"
	"github.com/mcoot/lifegame/internal/services/simulation"
	"github.com/mcoot/lifegame/internal/services/validation"
	"github.com/mcoot/lifegame/internal/storage"
	"github.com/mcoot/lifegame/internal/storage/memory"
	redisstorage "github.com/mcoot/lifegame/internal/storage/redis"
	"github.com/mcoot/lifegame/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	IDs    idgen.Generator
	Hasher hasher.Hasher

	// Services
	Repository  *repository.Repository
	Validator   *validation.Validator
	Processor   *choice.Processor
	AuthService *auth.Service
	Controller  *simulation.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service.
	// A zero SessionDuration uses auth.DefaultConfig().
	AuthConfig auth.Config
	// BcryptCost is the password hashing cost (0 uses bcrypt's default)
	BcryptCost int
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// RandomSeed seeds the bonus draws when non-zero
	RandomSeed uint64
}

// New creates a new application with all dependencies wired and the player
// collection loaded from storage
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AuthConfig.Secret == "" {
		_ = store.Close()
		return nil, auth.ErrMissingSecret
	}

	rnd := random.New()
	if cfg.RandomSeed != 0 {
		rnd = random.NewSeeded(cfg.RandomSeed)
	}

	app, err := newWithDependencies(store, clock.New(), rnd, idgen.New(), hasher.New(cfg.BcryptCost), cfg.AuthConfig, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	if err := app.Repository.Load(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	logger.Info("application ready", slog.String("storage", storageTypeOrDefault(cfg.StorageType)))
	return app, nil
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.Storage.Close()
}

func storageTypeOrDefault(t string) string {
	if t == "" {
		return StorageTypeMemory
	}
	return t
}

func openStorage(cfg Config) (storage.Storage, error) {
	switch storageTypeOrDefault(cfg.StorageType) {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		return sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'sqlite'", cfg.StorageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	ids idgen.Generator,
	hash hasher.Hasher,
	authCfg auth.Config,
	logger *slog.Logger,
) (*App, error) {
	authService, err := auth.New(clk, authCfg)
	if err != nil {
		return nil, err
	}

	repo := repository.New(store, clk, ids, hash, logger)
	validator := validation.New(repo)
	processor := choice.NewProcessor(repo, clk, rnd, logger)
	controller := simulation.NewController(repo, validator, processor, authService, logger)

	return &App{
		Storage:     store,
		Clock:       clk,
		Random:      rnd,
		IDs:         ids,
		Hasher:      hash,
		Repository:  repo,
		Validator:   validator,
		Processor:   processor,
		AuthService: authService,
		Controller:  controller,
	}, nil
}
