// Package labels implements the one-shot labels command.
package labels

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/annolab/labelctl/internal/runtime"
)

// Command creates the labels command listing the valid label catalog.
func Command(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "List the labels the service can assign",
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, err := ctx.Catalog.Labels(cmd.Context())
			if err != nil {
				return err
			}
			for _, label := range labels {
				fmt.Fprintln(cmd.OutOrStdout(), label)
			}
			return nil
		},
	}
}
