package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/safedep/coeur/internal/version"
	"github.com/safedep/coeur/tui"
)

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show database and configuration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp()
			if err != nil {
				return err
			}

			presenter := tui.NewPresenter(getFormat(format), tui.PresenterOptions{
				Writer:    cmd.OutOrStdout(),
				UseColors: app.Config.ShouldUseColors(),
			})

			view := &tui.StatusView{
				Version: version.Version,
				Config:  app.Paths.ConfigFile,
				Database: tui.DatabaseView{
					Location: app.Config.GetDatabasePath(),
				},
			}

			if stat, err := os.Stat(view.Database.Location); err == nil {
				view.Database.SizeBytes = stat.Size()
				view.Database.SizeHuman = tui.FormatBytes(stat.Size())

				// Initialize store to get actual counts
				if err := app.InitStore(ctx); err == nil {
					defer closeApp(app)
					if info, err := app.Store.GetDatabaseInfo(ctx); err == nil {
						view.Database.OrderCount = info.OrderCount
						view.Database.InvocationCount = info.InvocationCount
						view.Database.OldestRecord = info.OldestRecord
						view.Database.NewestRecord = info.NewestRecord
					}
				}
			}

			return presenter.RenderStatus(view)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, yaml")

	return cmd
}
