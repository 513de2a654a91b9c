// Package app provides the dependency injection container for the
// application.
package app

import (
	"log/slog"
	"os"

	"github.com/mdtask/mdtask/internal/domain"
	"github.com/mdtask/mdtask/internal/infra/config"
	"github.com/mdtask/mdtask/internal/infra/jsonstore"
	"github.com/mdtask/mdtask/internal/infra/logging"
	"github.com/mdtask/mdtask/internal/infra/yamlstore"
	"github.com/mdtask/mdtask/internal/usecase"
)

// Container provides dependency injection for the application.
type Container struct {
	Clock        domain.Clock
	ConfigLoader domain.ConfigLoader
	Logger       *slog.Logger
	Config       *domain.Config

	// newStore builds a store for a path; overridable in tests.
	newStore func(path string) domain.CollectionStore
}

// New creates a new Container rooted at the given working directory.
func New(workDir string) (*Container, error) {
	loader := config.NewLoader(workDir)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.Log.Level))

	c := &Container{
		Clock:        domain.RealClock{},
		ConfigLoader: loader,
		Logger:       logger,
		Config:       cfg,
	}
	c.newStore = c.defaultStore
	return c, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, clock domain.Clock, logger *slog.Logger, newStore func(path string) domain.CollectionStore) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	return &Container{
		Clock:    clock,
		Logger:   logger,
		Config:   cfg,
		newStore: newStore,
	}
}

// defaultStore selects the store backend from configuration.
// jsonstore is the default; yamlstore is used when store.format is
// explicitly "yaml", mirroring the config-driven backend switch.
func (c *Container) defaultStore(path string) domain.CollectionStore {
	if c.Config.Store.Format == domain.StoreFormatYAML {
		return yamlstore.New(path)
	}
	return jsonstore.New(path)
}

// StoreFor returns the collection store for the given path, falling
// back to the configured default path when path is empty.
func (c *Container) StoreFor(path string) domain.CollectionStore {
	if path == "" {
		path = c.Config.Store.Path
	}
	return c.newStore(path)
}

// Indent returns the configured indentation width.
func (c *Container) Indent() int {
	return c.Config.Format.Indent
}

// UseCase factory methods

// FormatDocumentUseCase returns a new FormatDocument use case.
func (c *Container) FormatDocumentUseCase() *usecase.FormatDocument {
	return usecase.NewFormatDocument(c.Clock, c.Indent())
}

// ConvertDocumentUseCase returns a new ConvertDocument use case.
func (c *Container) ConvertDocumentUseCase() *usecase.ConvertDocument {
	return usecase.NewConvertDocument(c.Clock, c.Indent())
}

// ApplyDocumentUseCase returns a new ApplyDocument use case for the
// given store path.
func (c *Container) ApplyDocumentUseCase(storePath string) *usecase.ApplyDocument {
	return usecase.NewApplyDocument(c.StoreFor(storePath), c.Clock, c.Logger, c.Indent())
}

// ListTasksUseCase returns a new ListTasks use case for the given
// store path.
func (c *Container) ListTasksUseCase(storePath string) *usecase.ListTasks {
	return usecase.NewListTasks(c.StoreFor(storePath))
}
