package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrlokans/library/internal/audit"
	auditrepo "github.com/mrlokans/library/internal/database/audit"
)

func newAuditPruneCommand(a *app) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "audit-prune",
		Short: "Delete audit events older than the retention period",
		Long: `Deletes audit events older than --days once and exits. The server does
the same on AUDIT_CLEANUP_SCHEDULE when the task queue is enabled.

Example:
  library audit-prune --days 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("days") {
				days = a.cfg.Audit.RetentionDays
			}
			if days <= 0 {
				return errors.New("--days must be positive")
			}

			db, err := a.openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			svc := audit.NewSyncService(auditrepo.NewRepository(db.DB), a.log)
			deleted, err := svc.DeleteOldEvents(cmd.Context(), time.Duration(days)*24*time.Hour)
			if err != nil {
				return fmt.Errorf("prune audit events: %w", err)
			}

			a.log.Info("pruned audit events",
				zap.Int("retention_days", days),
				zap.Int64("deleted", deleted),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d audit events older than %d days\n", deleted, days)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "retention in days (defaults to AUDIT_RETENTION_DAYS)")
	return cmd
}
