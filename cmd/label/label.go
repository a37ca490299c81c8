// Package label implements the one-shot label command for scripting.
package label

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/annolab/labelctl/internal/api"
	"github.com/annolab/labelctl/internal/runtime"
)

// Command creates the label command. Text comes from the arguments, or from
// stdin when the single argument is "-".
func Command(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "label [text]",
		Short: "Submit text for classification",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !ctx.Store.IsAuthenticated() {
				return fmt.Errorf("not logged in, run 'labelctl login' first")
			}

			text, err := gatherText(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("text must not be empty")
			}

			result, err := ctx.Client.LabelText(cmd.Context(), strings.TrimSpace(text), ctx.Settings.Labeling.DefaultModel)
			if err != nil {
				if api.IsBusy(err) {
					return fmt.Errorf("system busy: %s", api.Detail(err, "another request is being processed"))
				}
				return fmt.Errorf("%s", api.Detail(err, "Failed to label text"))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Request id:      %d\n", result.ID)
			fmt.Fprintf(out, "Model used:      %s\n", result.ModelName)
			if result.PredictedLabel != nil {
				fmt.Fprintf(out, "Predicted label: %s\n", *result.PredictedLabel)
			} else {
				fmt.Fprintf(out, "Predicted label: none\n")
			}
			fmt.Fprintf(out, "Processing time: %.2f seconds\n", result.ProcessingTime)
			if result.ErrorMessage != "" {
				fmt.Fprintf(out, "Error:           %s\n", result.ErrorMessage)
			}
			return nil
		},
	}
}

func gatherText(args []string, stdin io.Reader) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}
