// Command folio is a conversational portfolio for the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/folio/internal/adapters/driven/clock"
	"github.com/custodia-labs/folio/internal/adapters/driven/config/file"
	"github.com/custodia-labs/folio/internal/adapters/driving/cli"
	"github.com/custodia-labs/folio/internal/connectors"
	"github.com/custodia-labs/folio/internal/connectors/filesystem"
	"github.com/custodia-labs/folio/internal/connectors/github"
	"github.com/custodia-labs/folio/internal/connectors/web"
	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
	"github.com/custodia-labs/folio/internal/core/services"
	"github.com/custodia-labs/folio/internal/logger"
	"github.com/custodia-labs/folio/internal/normalisers/markdown"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServiceFactory(newServiceFactory(ctx))

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newServiceFactory wires the adapters once the config directory is known.
func newServiceFactory(ctx context.Context) cli.ServiceFactory {
	return func(configDir string) (*cli.Services, error) {
		store, err := file.NewConfigStore(configDir)
		if err != nil {
			return nil, fmt.Errorf("config store: %w", err)
		}
		logger.Debug("Config file: %s", store.Path())

		settingsService := services.NewSettingsService(store)
		settings, err := settingsService.Get()
		if err != nil {
			return nil, fmt.Errorf("settings: %w", err)
		}
		if err := settings.Validate(); err != nil {
			return nil, fmt.Errorf("settings: %w", err)
		}

		local := filesystem.New("")
		router, err := newRouter(ctx, local, settings.GitHub.Token)
		if err != nil {
			return nil, err
		}

		loader, err := services.NewLoader(router, markdown.New(), settings.Sources)
		if err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}

		return &cli.Services{
			Settings: settingsService,
			Loader:   loader,
			Revealer: services.NewTypewriter(clock.New()),
			Conversations: func(snapshot *domain.Snapshot, nav driven.Navigator) driving.ConversationService {
				return services.NewConversation(snapshot, nav)
			},
			LocalPaths: localPaths(local, settings.Sources),
		}, nil
	}
}

// newRouter registers a fetcher for every source kind.
func newRouter(ctx context.Context, local *filesystem.Fetcher, token string) (*connectors.Router, error) {
	router := connectors.NewRouter()

	fetchers := map[domain.SourceKind]driven.Fetcher{
		domain.SourceKindFile:   local,
		domain.SourceKindWeb:    web.New(nil, "folio/"+version),
		domain.SourceKindGitHub: github.NewFetcher(github.NewClient(ctx, token)),
	}
	for _, kind := range domain.AllSourceKinds() {
		if err := router.Register(kind, fetchers[kind]); err != nil {
			return nil, fmt.Errorf("register %s fetcher: %w", kind, err)
		}
	}
	return router, nil
}

// localPaths returns the files behind local sources.
func localPaths(local *filesystem.Fetcher, sources domain.SourceSettings) []string {
	var paths []string
	for _, loc := range sources.Locations() {
		if kind, err := domain.KindOf(loc); err == nil && kind == domain.SourceKindFile {
			paths = append(paths, local.Path(loc))
		}
	}
	return paths
}
