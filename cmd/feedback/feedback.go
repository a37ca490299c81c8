// Package feedback implements the one-shot feedback command.
package feedback

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/annolab/labelctl/internal/api"
	"github.com/annolab/labelctl/internal/runtime"
)

// Command creates the feedback command. Either --support or --correct must
// be given; a correction must name a label from the catalog.
func Command(ctx *runtime.Context) *cobra.Command {
	var (
		requestID int
		support   bool
		corrected string
	)

	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Record feedback on a prior prediction",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !ctx.Store.IsAuthenticated() {
				return fmt.Errorf("not logged in, run 'labelctl login' first")
			}
			if requestID <= 0 {
				return fmt.Errorf("--request-id is required")
			}
			if support == (corrected != "") {
				return fmt.Errorf("give exactly one of --support or --correct")
			}

			if corrected != "" {
				if !ctx.Catalog.Contains(cmd.Context(), corrected) {
					return fmt.Errorf("%q is not a known label, see 'labelctl labels'", corrected)
				}
			}

			resp, err := ctx.Client.SubmitFeedback(cmd.Context(), requestID, support, corrected)
			if err != nil {
				return fmt.Errorf("%s", api.Detail(err, "Failed to submit feedback"))
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().IntVarP(&requestID, "request-id", "r", 0, "Id of the label request")
	cmd.Flags().BoolVar(&support, "support", false, "Agree with the prediction")
	cmd.Flags().StringVar(&corrected, "correct", "", "Disagree and name the correct label")

	return cmd
}
