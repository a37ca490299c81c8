// Package cmd assembles the labelctl command tree.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/annolab/labelctl/cmd/feedback"
	"github.com/annolab/labelctl/cmd/label"
	"github.com/annolab/labelctl/cmd/labels"
	"github.com/annolab/labelctl/cmd/login"
	"github.com/annolab/labelctl/cmd/logout"
	"github.com/annolab/labelctl/cmd/run"
	"github.com/annolab/labelctl/cmd/status"
	"github.com/annolab/labelctl/internal/logging"
	"github.com/annolab/labelctl/internal/runtime"
)

// RootCommand creates and returns the root command.
func RootCommand(ctx *runtime.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "labelctl",
		Short: "Terminal client for the AI labeling service",
		Long: `labelctl submits text to the AI labeling service, shows the predicted
label, and records human feedback on predictions. Run without arguments for
the interactive session.`,
		Version:      runtime.VersionString(),
		SilenceUsage: true,
	}

	setupFlags(rootCmd, ctx)

	subcommands := []*cobra.Command{
		run.Command(ctx),
		login.Command(ctx),
		logout.Command(ctx),
		label.Command(ctx),
		feedback.Command(ctx),
		status.Command(ctx),
		labels.Command(ctx),
	}
	rootCmd.AddCommand(subcommands...)

	// Bare invocation runs the interactive session.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run.Command(ctx).RunE(cmd, args)
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logging.Init(ctx.Settings.Debug)
		if ctx.Settings.Log.Enabled {
			if err := logging.AddFileOutput(ctx.Settings.Log.Path, ctx.Settings.Debug); err != nil {
				return err
			}
		}
		ctx.Bind()
		return nil
	}

	return rootCmd
}

// setupFlags defines flags that are global to the command line interface.
// Values flow straight into the settings struct the flags are bound to.
func setupFlags(rootCmd *cobra.Command, ctx *runtime.Context) {
	rootCmd.PersistentFlags().BoolVarP(&ctx.Settings.Debug, "debug", "d", ctx.Settings.Debug, "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&ctx.Settings.Server.URL, "server", ctx.Settings.Server.URL, "Base URL of the labeling service")
	rootCmd.PersistentFlags().StringVarP(&ctx.Settings.Labeling.DefaultModel, "model", "m", ctx.Settings.Labeling.DefaultModel, "Model name: gpt-4 or gpt-3.5-turbo")
}
