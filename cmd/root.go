// cmd/root.go

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/healthsec-tools/cylera-cli/pkg/cli"
	"github.com/healthsec-tools/cylera-cli/pkg/cylera"
	"github.com/healthsec-tools/cylera-cli/pkg/logger"
)

// RootCmd is the base command for cylera.
var RootCmd = &cobra.Command{
	Use:   "cylera",
	Short: "Command line interface for the Cylera Partner API",
	Long: `Cylera CLI provides read-only access to the Cylera Partner API for querying
device inventory, threats, vulnerabilities, and network information.

Run 'cylera init' first to configure credentials.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: cli.Wrap(func(rc *cli.RuntimeContext, cmd *cobra.Command, args []string) error {
		return cmd.Help()
	}),
}

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	for _, subCmd := range []*cobra.Command{
		InitCmd,
		DeviceCmd,
		DevicesCmd,
		DeviceAttributesCmd,
		ProceduresCmd,
		SubnetsCmd,
		RiskMitigationsCmd,
		VulnerabilitiesCmd,
		ThreatsCmd,
	} {
		RootCmd.AddCommand(subCmd)
	}
}

// Execute runs the root command and owns the process exit code: 0 on
// success, 1 on any configuration, authentication, or API error.
func Execute() {
	defer func() {
		_ = logger.Sync()
	}()

	RegisterCommands()

	if err := RootCmd.Execute(); err != nil {
		switch {
		case cli.IsUserError(err):
			fmt.Fprintln(os.Stderr, err.Error())
		case cylera.IsAPIError(err):
			fmt.Fprintf(os.Stderr, "API error: %v\n", err)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		logger.L().Debug("Command exited with error", zap.Error(err))
		os.Exit(1)
	}
}
