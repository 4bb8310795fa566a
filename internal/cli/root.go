package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"airline-ops/seatcrew/internal/api"
	"airline-ops/seatcrew/internal/config"
	"airline-ops/seatcrew/internal/db"
	"airline-ops/seatcrew/internal/logging"
	"airline-ops/seatcrew/internal/metrics"
)

// connector opens storage and wires services. The returned func releases connections.
type connector func(ctx context.Context) (*api.Dependencies, func(), error)

func NewRootCommand() *cobra.Command {
	return newRootCommand(connectFromEnv)
}

func newRootCommand(connect connector) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "seatctl",
		Short:        "Operate seat and crew assignments from the command line",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newPlanCmd(connect),
		newAutoAssignCmd(connect),
		newAssignCmd(connect),
		newCrewCmd(connect),
	)
	return cmd
}

func connectFromEnv(ctx context.Context) (*api.Dependencies, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := logging.Init(cfg.AppEnv); err != nil {
		return nil, nil, err
	}

	sqlDB, err := db.InitPostgres(ctx, cfg.Postgres.DSN())
	if err != nil {
		return nil, nil, err
	}
	orm, err := db.InitPostgresORM(cfg.Postgres.DSN(), cfg.IsProduction())
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	cleanup := func() {
		sqlDB.Close()
		_ = logging.Close()
	}

	// a one-shot command gains nothing from a shared cache
	cfg.CacheBackend = config.CacheBackendMemory

	deps, err := api.InitDependencies(cfg, orm, sqlDB, nil, metrics.NewMetricsRegistry(prometheus.NewRegistry()))
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return deps, cleanup, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// withDeps runs fn against freshly connected services
func withDeps(cmd *cobra.Command, connect connector, fn func(deps *api.Dependencies) (any, error)) error {
	deps, cleanup, err := connect(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := fn(deps)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), out)
}
