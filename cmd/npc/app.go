package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/KirkDiggler/npc-tracker/internal/config"
	"github.com/KirkDiggler/npc-tracker/internal/entities"
	"github.com/KirkDiggler/npc-tracker/internal/errors"
	"github.com/KirkDiggler/npc-tracker/internal/observability"
	"github.com/KirkDiggler/npc-tracker/internal/orchestrators/library"
	"github.com/KirkDiggler/npc-tracker/internal/pkg/clock"
	"github.com/KirkDiggler/npc-tracker/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/npc-tracker/internal/redis"
	"github.com/KirkDiggler/npc-tracker/internal/repositories/kv"
	libraryrepo "github.com/KirkDiggler/npc-tracker/internal/repositories/library"
	"github.com/KirkDiggler/npc-tracker/internal/rules"
	"github.com/KirkDiggler/npc-tracker/internal/sheet"
)

// app carries the per-invocation settings shared by every command
type app struct {
	v          *viper.Viper
	configPath string
	edit       bool
	clock      clock.Clock
}

// env is everything a command needs once configuration is resolved
type env struct {
	cfg    config.Config
	logger *zap.Logger
	store  kv.Repository
}

func (a *app) loadConfig() (config.Config, error) {
	if err := config.Configure(a.v, a.configPath); err != nil {
		return config.Config{}, err
	}
	return config.LoadFromViper(a.v)
}

// openEnv resolves configuration and opens the durable store. The returned
// cleanup closes the store and flushes the logger.
func (a *app) openEnv(ctx context.Context) (*env, func() error, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}

	store, err := openKV(ctx, cfg.Storage)
	if err != nil {
		_ = logger.Sync() // nolint:errcheck // stderr sync errors are not actionable
		return nil, nil, err
	}
	logger.Debug("opened store", zap.String("backend", cfg.Storage.Backend))

	cleanup := func() error {
		defer func() { _ = logger.Sync() }() // nolint:errcheck // stderr sync errors are not actionable
		if err := store.Close(); err != nil {
			return errors.Wrap(err, "failed to close store")
		}
		return nil
	}
	return &env{cfg: cfg, logger: logger, store: store}, cleanup, nil
}

func openKV(ctx context.Context, cfg config.StorageConfig) (kv.Repository, error) {
	switch kv.Backend(cfg.Backend) {
	case kv.BackendSQLite:
		return kv.NewSQLite(ctx, &kv.SQLiteConfig{Path: cfg.SQLitePath})
	case kv.BackendRedis:
		client, err := redisclient.NewClient(cfg.Redis.Addr, &redisclient.Options{
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: cfg.Redis.DialTimeout,
		})
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
		}
		return kv.NewRedis(&kv.RedisConfig{Client: client, KeyPrefix: cfg.Redis.KeyPrefix})
	case kv.BackendInMemory:
		return kv.NewInMemory(), nil
	default:
		return nil, errors.InvalidArgumentf("unknown storage backend %q", cfg.Backend)
	}
}

func (e *env) repoConfig() *libraryrepo.Config {
	return &libraryrepo.Config{
		Store:  e.store,
		Keys:   e.cfg.Keys.LibraryKeys(),
		Logger: e.logger,
	}
}

func (a *app) newStore(ctx context.Context, e *env) (*library.Orchestrator, error) {
	repo, err := libraryrepo.New(e.repoConfig())
	if err != nil {
		return nil, err
	}

	catalog, err := rules.Load()
	if err != nil {
		return nil, err
	}
	ids, err := idgen.New(idgen.Scheme(e.cfg.IDs.Scheme))
	if err != nil {
		return nil, err
	}
	factory, err := sheet.NewFactory(&sheet.FactoryConfig{Catalog: catalog, IDGenerator: ids})
	if err != nil {
		return nil, err
	}

	clk := a.clock
	if clk == nil {
		clk = clock.New()
	}

	return library.New(ctx, &library.Config{
		Repository: repo,
		Factory:    factory,
		Clock:      clk,
		Logger:     e.logger,
	})
}

// withStore hydrates the library, runs fn and closes the library with a
// final flush. --edit turns edit mode on before fn runs.
func (a *app) withStore(cmd *cobra.Command, fn func(ctx context.Context, store *library.Orchestrator) error) (err error) {
	ctx := cmd.Context()

	e, cleanup, err := a.openEnv(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := cleanup(); err == nil {
			err = cerr
		}
	}()

	store, err := a.newStore(ctx, e)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(ctx); err == nil {
			err = cerr
		}
	}()

	if a.edit {
		store.SetEditMode(true)
	}
	return fn(ctx, store)
}

// requireEdit refuses profile and skill edits that would be silent no-ops
func (a *app) requireEdit(what string) error {
	if !a.edit {
		return errors.FailedPreconditionf("%s can only change in edit mode; pass --edit", what)
	}
	return nil
}

func parsePoolKind(raw string) (entities.PoolKind, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	for _, kind := range entities.PoolKinds {
		if needle == string(kind) || needle == strings.ToLower(kind.Label()) {
			return kind, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown pool %q: use vitality, focus or will", raw)
}

func parseInt(name, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.InvalidArgumentf("%s must be a whole number, got %q", name, raw)
	}
	return n, nil
}
