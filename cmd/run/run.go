// Package run implements the interactive labeling session command.
package run

import (
	"bufio"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/annolab/labelctl/internal/api"
	"github.com/annolab/labelctl/internal/errors"
	"github.com/annolab/labelctl/internal/runtime"
	"github.com/annolab/labelctl/internal/workbench"

	"github.com/annolab/labelctl/cmd/login"
)

// Command creates the run command. An unauthenticated or expired session
// drops into the login prompt first, then the labeling session starts.
func Command(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive labeling session",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			// One buffered reader for the whole session: the login prompt
			// and the workbench must not each buffer ahead of the other.
			reader := bufio.NewReader(cmd.InOrStdin())

			if ctx.Store.IsAuthenticated() && ctx.Store.IsExpired(time.Now()) {
				fmt.Fprintln(out, "Stored session has expired, please log in again.")
				if err := ctx.Store.Logout(); err != nil {
					return err
				}
			}

			// Rejected credentials return to the prompt for another
			// attempt; any other failure aborts.
			for !ctx.Store.IsAuthenticated() {
				err := login.Authenticate(cmd.Context(), ctx, "", reader, out)
				if err == nil {
					break
				}
				if errors.IsCategory(err, errors.CategoryAuth) {
					fmt.Fprintf(out, "Login failed: %s\n", api.Detail(err, "invalid credentials"))
					continue
				}
				return fmt.Errorf("%s", api.Detail(err, err.Error()))
			}

			wb := workbench.New(ctx.Settings, ctx.Client, ctx.Store, ctx.Catalog, reader, out)
			return wb.Run(cmd.Context())
		},
	}
}
