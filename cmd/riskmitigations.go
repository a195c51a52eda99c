// cmd/riskmitigations.go

package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/healthsec-tools/cylera-cli/pkg/cli"
	"github.com/healthsec-tools/cylera-cli/pkg/cylera"
)

// RiskMitigationsCmd gets mitigations for a vulnerability.
var RiskMitigationsCmd = &cobra.Command{
	Use:   "riskmitigations <vulnerability>",
	Short: "Get mitigations for a specific vulnerability",
	Long: `Get the mitigations Cylera recommends for a named vulnerability.

Example:
  cylera riskmitigations CVE-2017-0144`,
	Args: cobra.ExactArgs(1),
	RunE: cli.Wrap(func(rc *cli.RuntimeContext, cmd *cobra.Command, args []string) error {
		return runQuery(rc, func(client *cylera.Client) (json.RawMessage, error) {
			return cylera.NewRisk(client).GetMitigations(rc.Ctx, args[0])
		})
	}),
}
