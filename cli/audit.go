package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/safedep/coeur/tui"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	var (
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "View the invocation audit trail",
		Long: `View the invocation audit trail.

Every guarded action call is recorded with its caller and outcome,
including calls rejected by permission checks or validators.`,
		Example: `  coeur audit
  coeur audit --limit 10
  coeur audit --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, presenter, err := loadOrdersApp(cmd, format)
			if err != nil {
				return err
			}
			defer closeApp(app)

			records, err := app.Store.ListRecords(ctx, limit)
			if err != nil {
				return err
			}

			if len(records) == 0 {
				return presenter.RenderMessage("No invocations recorded.")
			}

			return presenter.RenderInvocations(tui.NewInvocationViews(records, app.Config.Location()))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of entries to show (0 for all)")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, yaml")

	return cmd
}
