// cmd/helpers.go

package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/healthsec-tools/cylera-cli/pkg/cli"
	"github.com/healthsec-tools/cylera-cli/pkg/config"
	"github.com/healthsec-tools/cylera-cli/pkg/cylera"
)

// requireConfig resolves credentials or returns a user-facing directive to
// run the setup wizard. No network call is ever attempted without them.
func requireConfig() (*config.Credentials, error) {
	creds, err := config.Load()
	if err != nil {
		cwd, _ := os.Getwd()
		return nil, cli.NewUserError(
			"Cylera CLI is not configured.\n\nCurrent directory: %s\n\nRun 'cylera init' to set up your credentials.",
			cwd)
	}
	return creds, nil
}

// runQuery is the shared dispatcher body for every data command: check
// configuration, build a client, run the query, print the JSON result.
// The client is released on every exit path.
func runQuery(rc *cli.RuntimeContext, query func(client *cylera.Client) (json.RawMessage, error)) error {
	creds, err := requireConfig()
	if err != nil {
		return err
	}

	client, err := cylera.NewClient(cylera.Config{
		BaseURL:  creds.BaseURL,
		Username: creds.Username,
		Password: creds.Password,
		Logger:   rc.Log,
	})
	if err != nil {
		return err
	}
	defer client.Close()

	result, err := query(client)
	if err != nil {
		return err
	}

	return cli.PrintJSON(os.Stdout, result)
}

// addPaginationFlags registers the page/page-size pair shared by every
// listing command.
func addPaginationFlags(flags *pflag.FlagSet, page, pageSize *int) {
	flags.IntVar(page, "page", 0, "Page number for pagination")
	flags.IntVar(pageSize, "page-size", 0, "Results per page (max 100)")
}

// intFlag returns a pointer to the flag's value only when the flag was set
// on the command line, so unset filters stay out of the request.
func intFlag(cmd *cobra.Command, name string, value int) *int {
	if cmd.Flags().Changed(name) {
		return &value
	}
	return nil
}

func int64Flag(cmd *cobra.Command, name string, value int64) *int64 {
	if cmd.Flags().Changed(name) {
		return &value
	}
	return nil
}
