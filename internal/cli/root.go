// Package cli defines the library command line: the HTTP server and a few
// maintenance commands that work directly against the configured store.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/entrypoint"
	"github.com/mrlokans/library/internal/logging"
)

// app holds what every command needs once flags are parsed.
type app struct {
	cfg *config.Config
	log *zap.Logger
}

func (a *app) init() error {
	if a.cfg == nil {
		a.cfg = config.NewConfig()
	}
	if a.log == nil {
		log, err := logging.New(a.cfg.Log)
		if err != nil {
			return err
		}
		a.log = log
	}
	return nil
}

func (a *app) openDatabase() (*database.Database, error) {
	db, err := database.NewDatabase(a.cfg.Database, a.log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

// NewRootCommand builds the "library" command. Without a subcommand it
// starts the HTTP server.
func NewRootCommand(version, commit string) *cobra.Command {
	return newRootCommand(&app{}, version, commit)
}

func newRootCommand(a *app, version, commit string) *cobra.Command {
	serve := func(cmd *cobra.Command, args []string) error {
		return entrypoint.Run(a.cfg, version, a.log)
	}

	root := &cobra.Command{
		Use:          "library",
		Short:        "Authors and books catalog service",
		Version:      fmt.Sprintf("%s (commit %s)", version, commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: serve,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			Args:  cobra.NoArgs,
			RunE:  serve,
		},
		newSeedCommand(a),
		newAuditPruneCommand(a),
	)

	return root
}
