// Package login implements the login command and the shared credential
// prompt used by the interactive session.
package login

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/annolab/labelctl/internal/api"
	"github.com/annolab/labelctl/internal/runtime"
)

// Command creates the login command.
func Command(ctx *runtime.Context) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the labeling service",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())
			if err := Authenticate(cmd.Context(), ctx, username, reader, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("%s", api.Detail(err, err.Error()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username (prompted when omitted)")

	return cmd
}

// Authenticate prompts for any missing credentials, logs in, and persists
// the session. Login failures are returned unmodified so callers can
// distinguish rejected credentials from other errors; reader is shared so
// repeated attempts keep reading the same buffered input.
func Authenticate(ctx context.Context, rt *runtime.Context, username string, reader *bufio.Reader, out io.Writer) error {
	if username == "" {
		fmt.Fprint(out, "Username: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("error reading username: %w", err)
		}
		username = strings.TrimSpace(line)
	}
	if username == "" {
		return fmt.Errorf("username must not be empty")
	}

	password, err := readPassword(reader, out)
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	resp, err := rt.Client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := rt.Store.SetToken(resp.AccessToken); err != nil {
		return err
	}
	if err := rt.Store.SetAccountID(resp.AccountID); err != nil {
		return err
	}

	fmt.Fprintf(out, "Logged in as %s\n", resp.AccountID)
	return nil
}

// readPassword reads without echo when stdin is a terminal, otherwise falls
// back to a plain line read so piped input works.
func readPassword(reader *bufio.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Password: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("error reading password: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("error reading password: %w", err)
	}
	return strings.TrimSpace(line), nil
}
