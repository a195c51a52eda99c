// cmd/init.go

package cmd

import (
	"bufio"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/healthsec-tools/cylera-cli/pkg/cli"
	"github.com/healthsec-tools/cylera-cli/pkg/config"
	"github.com/healthsec-tools/cylera-cli/pkg/cylera"
	"github.com/healthsec-tools/cylera-cli/pkg/interaction"
)

// InitCmd runs the interactive configuration wizard.
var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize Cylera CLI configuration interactively",
	Long: `Initialize Cylera CLI configuration interactively.

The wizard selects a Partner API endpoint, collects credentials, tests them
against the live service, and on success appends them to the .env file in the
current directory. It refuses to run if any Cylera variable is already set,
so an existing configuration is never silently overwritten.`,
	Args: cobra.NoArgs,
	RunE: cli.Wrap(func(rc *cli.RuntimeContext, cmd *cobra.Command, args []string) error {
		config.LoadEnvFile()

		if existing := config.ExistingVars(); len(existing) > 0 {
			rc.Log.Debug("Refusing to overwrite existing configuration",
				zap.Strings("variables", existing))
			return cli.NewUserError(
				"Error: The following environment variables are already set:\n  %s\n\n"+
					"To reconfigure, unset these variables first or delete the .env file.\n"+
					"Example: unset %s %s %s",
				strings.Join(existing, ", "),
				config.EnvBaseURL, config.EnvUsername, config.EnvPassword)
		}

		fmt.Println("Cylera CLI Configuration")
		fmt.Println(strings.Repeat("=", 40))
		fmt.Println()

		reader := bufio.NewReader(cmd.InOrStdin())

		baseURL, err := interaction.SelectOption(rc.Ctx, reader, "Select your Cylera API endpoint", cylera.Endpoints)
		if err != nil {
			return err
		}
		fmt.Println()

		username, err := interaction.ReadLine(rc.Ctx, reader, "Enter your Cylera username (email)")
		if err != nil {
			return err
		}
		if username == "" {
			return cli.NewUserError("Error: Username cannot be empty")
		}
		fmt.Println()

		password, err := interaction.PromptPassword(rc.Ctx, "Enter your Cylera password")
		if err != nil {
			return err
		}
		if password == "" {
			return cli.NewUserError("Error: Password cannot be empty")
		}
		fmt.Println()

		if err := testAuthentication(rc, baseURL, username, password); err != nil {
			return err
		}

		creds := &config.Credentials{
			BaseURL:  baseURL,
			Username: username,
			Password: password,
		}
		if err := config.Append(config.FileName, creds); err != nil {
			return err
		}

		fmt.Println()
		fmt.Printf("Configuration saved to %s\n", config.FileName)
		fmt.Println()
		fmt.Println("You can now use the Cylera CLI. Try:")
		fmt.Println("  cylera devices --page-size 5")
		return nil
	}),
}

// testAuthentication performs the live login round trip and echoes the
// response fields, keeping the token out of the output. Nothing is
// persisted when it fails.
func testAuthentication(rc *cli.RuntimeContext, baseURL, username, password string) error {
	fmt.Print("Testing authentication... ")

	client, err := cylera.NewClient(cylera.Config{
		BaseURL:  baseURL,
		Username: username,
		Password: password,
		Logger:   rc.Log,
	})
	if err != nil {
		fmt.Println("Failed!")
		return err
	}
	defer client.Close()

	response, err := client.Authenticate(rc.Ctx)
	if err != nil {
		fmt.Println("Failed!")
		return cli.NewUserError(
			"Authentication error: %v\n\nPlease check your credentials and try again.", err)
	}

	fmt.Println("Success!")
	fmt.Println()
	fmt.Println("Authentication response:")

	keys := make([]string, 0, len(response))
	for key := range response {
		if key != "token" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("  %s: %v\n", key, response[key])
	}
	return nil
}
