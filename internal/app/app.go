// Package app monta o núcleo do painel a partir da configuração:
// meio de armazenamento, repositórios, motor de filtros e serviços.
package app

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/dashgreen/infrastructure/database/postgres"
	"github.com/vfg2006/dashgreen/infrastructure/repository"
	"github.com/vfg2006/dashgreen/infrastructure/storage"
	"github.com/vfg2006/dashgreen/infrastructure/storage/file"
	"github.com/vfg2006/dashgreen/infrastructure/storage/memory"
	"github.com/vfg2006/dashgreen/internal/config"
	"github.com/vfg2006/dashgreen/internal/usecases/authenticating"
	"github.com/vfg2006/dashgreen/internal/usecases/filtering"
	"github.com/vfg2006/dashgreen/internal/usecases/insighting"
	"github.com/vfg2006/dashgreen/internal/usecases/selling"
	"github.com/vfg2006/dashgreen/pkg/log"
	"github.com/vfg2006/dashgreen/pkg/utils"
)

type App struct {
	Config   *config.Config
	Filters  *filtering.Engine
	Store    *selling.Service
	Insights *insighting.Service
	Session  *authenticating.Service

	storage storage.KeyValue
	close   func() error
}

type Option func(*options)

type options struct {
	clock filtering.Clock
	kv    storage.KeyValue
}

// WithClock substitui o relógio do motor de filtros
func WithClock(clock filtering.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithStorage usa o meio informado no lugar do configurado em STORAGE_DRIVER
func WithStorage(kv storage.KeyValue) Option {
	return func(o *options) {
		o.kv = kv
	}
}

// New configura o log com cfg.App.LogLevel e monta o painel
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, errors.New("configuração não informada")
	}

	// LOG_LEVEL vazio mantém a configuração atual do logrus
	if cfg.App.LogLevel != "" {
		log.Configure(cfg.App.LogLevel)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	kv, closeFn := o.kv, func() error { return nil }
	if kv == nil {
		var err error
		kv, closeFn, err = OpenStorage(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	keys := repository.NewKeys(cfg.Storage.KeyPrefix)
	filters := filtering.NewEngine(o.clock, cfg.App.Location)

	store := selling.NewService(
		repository.NewStateRepository(kv, keys),
		filters,
		utils.GeneratorFor(cfg.App.SaleIDStrategy),
	)

	app := &App{
		Config:   cfg,
		Filters:  filters,
		Store:    store,
		Insights: insighting.NewService(store, filters),
		Session:  authenticating.NewService(cfg.Auth, repository.NewSessionRepository(kv, keys)),
		storage:  kv,
		close:    closeFn,
	}

	log.L.WithFields(log.Fields{
		log.DriverField: cfg.Storage.Driver,
		"timezone":      filters.Location().String(),
	}).Info("Painel inicializado")

	return app, nil
}

// Storage expõe o meio de armazenamento em uso
func (a *App) Storage() storage.KeyValue {
	return a.storage
}

func (a *App) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

// OpenStorage abre o meio configurado; a função retornada libera seus recursos
func OpenStorage(ctx context.Context, cfg *config.Config) (storage.KeyValue, func() error, error) {
	noop := func() error { return nil }
	logger := log.L.WithField(log.DriverField, cfg.Storage.Driver)

	switch cfg.Storage.Driver {
	case config.MemoryDriver:
		logger.Warn("Armazenamento em memória, nada será mantido após encerrar")
		return memory.New(), noop, nil

	case config.FileDriver:
		store, err := file.New(cfg.Storage.Path, file.WithPassphrase(cfg.Storage.Passphrase, 0))
		if err != nil {
			return nil, nil, errors.Wrap(err, "erro ao abrir armazenamento em arquivo")
		}
		logger.WithField("encrypted", store.Encrypted()).Debugf("Armazenamento em arquivo em %s", cfg.Storage.Path)
		return store, noop, nil

	case config.PostgresDriver:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, errors.Wrap(err, "erro ao conectar ao PostgreSQL")
		}
		if err := postgres.Migrate(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		logger.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return postgres.NewKeyValueStore(conn), conn.Close, nil

	default:
		return nil, nil, errors.Errorf("driver de armazenamento inválido: %q", cfg.Storage.Driver)
	}
}
