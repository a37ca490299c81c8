// Package logout implements the logout command.
package logout

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/annolab/labelctl/internal/runtime"
)

// Command creates the logout command. Logging out only clears local state;
// the server is not contacted.
func Command(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !ctx.Store.IsAuthenticated() {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}
			if err := ctx.Store.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
