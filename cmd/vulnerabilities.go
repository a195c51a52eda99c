// cmd/vulnerabilities.go

package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/healthsec-tools/cylera-cli/pkg/cli"
	"github.com/healthsec-tools/cylera-cli/pkg/cylera"
)

var (
	vulnsConfidence    string
	vulnsDetectedAfter int64
	vulnsMACAddress    string
	vulnsName          string
	vulnsPage          int
	vulnsPageSize      int
	vulnsSeverity      string
	vulnsStatus        string
)

// VulnerabilitiesCmd lists vulnerabilities.
var VulnerabilitiesCmd = &cobra.Command{
	Use:   "vulnerabilities",
	Short: "Get a list of vulnerabilities",
	Long: `Get a paginated list of vulnerabilities detected on monitored devices.

Examples:
  cylera vulnerabilities --severity CRITICAL --status OPEN
  cylera vulnerabilities --mac-address 00:0a:95:9d:68:16 --detected-after 1700000000`,
	Args: cobra.NoArgs,
	RunE: cli.Wrap(func(rc *cli.RuntimeContext, cmd *cobra.Command, args []string) error {
		filters := cylera.VulnerabilityFilters{
			Confidence:    vulnsConfidence,
			DetectedAfter: int64Flag(cmd, "detected-after", vulnsDetectedAfter),
			MACAddress:    vulnsMACAddress,
			Name:          vulnsName,
			Page:          intFlag(cmd, "page", vulnsPage),
			PageSize:      intFlag(cmd, "page-size", vulnsPageSize),
			Severity:      vulnsSeverity,
			Status:        vulnsStatus,
		}

		return runQuery(rc, func(client *cylera.Client) (json.RawMessage, error) {
			return cylera.NewRisk(client).GetVulnerabilities(rc.Ctx, filters)
		})
	}),
}

func init() {
	flags := VulnerabilitiesCmd.Flags()
	flags.StringVar(&vulnsConfidence, "confidence", "", "Confidence: LOW, MEDIUM, HIGH")
	flags.Int64Var(&vulnsDetectedAfter, "detected-after", 0, "Epoch timestamp filter")
	flags.StringVar(&vulnsMACAddress, "mac-address", "", "MAC address of device")
	flags.StringVar(&vulnsName, "name", "", "Vulnerability name (partial match)")
	addPaginationFlags(flags, &vulnsPage, &vulnsPageSize)
	flags.StringVar(&vulnsSeverity, "severity", "", "Severity level: INFO, LOW, MEDIUM, HIGH, CRITICAL")
	flags.StringVar(&vulnsStatus, "status", "", "Status: OPEN, IN_PROGRESS, RESOLVED, SUPPRESSED")
}
