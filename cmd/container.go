package cmd

import (
	"fmt"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/huangsam/hiresignal/core"
	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/internal/github"
	"github.com/huangsam/hiresignal/internal/iocache"
	"github.com/huangsam/hiresignal/internal/llm"
	"github.com/huangsam/hiresignal/internal/reporting"
	"github.com/huangsam/hiresignal/internal/server"
)

// registerProviders registers every application component with the container,
// bottom-up from config and stores to the transports.
func registerProviders(container *dig.Container) error {
	providers := []any{
		func() *contract.Config { return cfg },
		func() *zap.Logger { return log },
		func() contract.StoreManager { return iocache.Manager },
		func(c *contract.Config, l *zap.Logger) (contract.Fetcher, error) {
			return github.NewClient(github.OptionsFromConfig(c), l)
		},
		func(l *zap.Logger) *core.Analyzer {
			return core.NewAnalyzer(l, core.WithKeywordRanker(core.NewYakeRanker()))
		},
		func(c *contract.Config, l *zap.Logger) (*llm.Narrator, error) {
			provider, err := llm.NewProvider(rootCtx, c)
			if err != nil {
				return nil, err
			}
			return llm.NewNarrator(provider, l), nil
		},
		newReportService,
		func(svc *reporting.Service, l *zap.Logger) *server.Server {
			return server.New(svc, l, version)
		},
	}
	for _, p := range providers {
		if err := container.Provide(p); err != nil {
			return err
		}
	}
	return nil
}

func newReportService(
	c *contract.Config,
	l *zap.Logger,
	fetcher contract.Fetcher,
	stores contract.StoreManager,
	analyzer *core.Analyzer,
	narrator *llm.Narrator,
) *reporting.Service {
	return reporting.NewService(fetcher, stores, analyzer, c.CacheTTL, l,
		reporting.WithNarrator(narrator),
		reporting.WithConfigParams(c.ConfigParams()),
	)
}

// inject resolves one component of type T from a fresh container.
func inject[T any]() (T, error) {
	var out T
	container := dig.New()
	if err := registerProviders(container); err != nil {
		return out, fmt.Errorf("failed to register providers: %w", err)
	}
	if err := container.Invoke(func(v T) { out = v }); err != nil {
		return out, fmt.Errorf("failed to build %T: %w", out, err)
	}
	return out, nil
}
