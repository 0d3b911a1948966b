// Package app wires the dependency graph.
package app

import (
	"path/filepath"

	"github.com/aish-sh/aish/internal/infrastructure/ai"
	"github.com/aish-sh/aish/internal/infrastructure/cache"
	"github.com/aish-sh/aish/internal/infrastructure/config"
	contextcollector "github.com/aish-sh/aish/internal/infrastructure/context"
	"github.com/aish-sh/aish/internal/infrastructure/history"
	"github.com/aish-sh/aish/internal/infrastructure/security"
	"github.com/aish-sh/aish/internal/infrastructure/shell"
	"github.com/aish-sh/aish/internal/pkg/logger"
	"github.com/aish-sh/aish/internal/ports"
	"github.com/aish-sh/aish/internal/services"
)

// Container holds the wired application services.
type Container struct {
	Query       *services.QueryService
	ConfigStore *config.FileStore
	Installer   ports.ShellIntegrator
	History     ports.HistoryRepository
	Cache       ports.CacheRepository
	Logger      ports.Logger
}

// BuildContainer constructs the dependency graph. configPath is empty in
// production; tests inject a temp path.
func BuildContainer(configPath string, verbose bool) *Container {
	log := logger.NewZap(verbose)
	configStore := config.NewFileStore(configPath)
	stateDir := configStore.Dir()

	var historyStore ports.HistoryRepository
	if store, err := history.NewSQLiteStore(filepath.Join(stateDir, "history.db")); err == nil {
		historyStore = store
	} else {
		log.Warn("history store unavailable", map[string]interface{}{"error": err.Error()})
		historyStore = history.NoopStore{}
	}

	factory := ai.NewFactory()
	queryService := &services.QueryService{
		ConfigStore: configStore,
		Collector:   contextcollector.NewCollector(),
		Factory:     factory,
		Safety:      security.NewFilter(),
		Router:      &services.Router{Factory: factory, Logger: log},
		Gatherer:    contextcollector.NewGatherer(log),
		History:     historyStore,
		Cache:       cache.NewFileCache(filepath.Join(stateDir, "cache")),
		Logger:      log,
	}

	return &Container{
		Query:       queryService,
		ConfigStore: configStore,
		Installer:   shell.NewInstaller(stateDir, log),
		History:     historyStore,
		Cache:       queryService.Cache,
		Logger:      log,
	}
}
