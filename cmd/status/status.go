// Package status implements the one-shot status command.
package status

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/annolab/labelctl/internal/runtime"
	"github.com/annolab/labelctl/internal/workbench"
)

// Command creates the status command.
func Command(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the service's processing status",
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := ctx.Client.GetStatus(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), workbench.FormatStatus(current))
			return nil
		},
	}
}
