package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/moneywise/moneywise/internal/adapters/outbound/config"
	"github.com/moneywise/moneywise/internal/adapters/outbound/gitinfo"
	"github.com/moneywise/moneywise/internal/adapters/outbound/logging"
	"github.com/moneywise/moneywise/internal/adapters/outbound/metrics"
	"github.com/moneywise/moneywise/internal/adapters/outbound/router"
	"github.com/moneywise/moneywise/internal/application"
	"github.com/moneywise/moneywise/internal/domain"
)

// app bundles everything a command needs once config is loaded.
type app struct {
	cfg    domain.DashboardConfig
	log    *zap.Logger
	router *router.MemoryRouter
	svc    *application.DashboardService
	rec    *metrics.Recorder
}

// bootstrap loads config, builds the logger and starts a dashboard service
// whose router begins at startPath. withMetrics attaches a Prometheus recorder.
func bootstrap(cmd *cobra.Command, startPath string, withMetrics bool) (*app, error) {
	dir, _ := cmd.Flags().GetString("config-dir")
	if dir == "" {
		dir = "."
	}

	loader := config.New(config.WithRepoLocator(gitinfo.New()))
	cfg, err := loader.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:    cfg,
		log:    log,
		router: router.New(startPath),
	}

	var observers []application.Observer
	if withMetrics {
		a.rec = metrics.New()
		observers = append(observers, a.rec)
	}

	a.svc, err = application.NewDashboardService(cfg, a.router, log, observers...)
	if err != nil {
		return nil, fmt.Errorf("starting dashboard: %w", err)
	}
	return a, nil
}

func (a *app) close() {
	_ = a.log.Sync()
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
