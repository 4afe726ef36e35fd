package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/safedep/coeur/internal/version"
)

func NewVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if short {
				_, err := fmt.Fprintln(out, version.Version)
				return err
			}

			_, err := fmt.Fprintf(out, "coeur %s (commit: %s, %s, %s/%s)\n",
				version.Version, version.Commit,
				runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return err
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")

	return cmd
}
