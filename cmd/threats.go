// cmd/threats.go

package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/healthsec-tools/cylera-cli/pkg/cli"
	"github.com/healthsec-tools/cylera-cli/pkg/cylera"
)

var (
	threatsDetectedAfter int64
	threatsMACAddress    string
	threatsName          string
	threatsPage          int
	threatsPageSize      int
	threatsSeverity      string
	threatsStatus        string
)

// ThreatsCmd lists detected threats.
var ThreatsCmd = &cobra.Command{
	Use:   "threats",
	Short: "Get a list of detected threats",
	Long: `Get a paginated list of threats detected on monitored devices.

Examples:
  cylera threats --severity HIGH --status OPEN
  cylera threats --name Mirai --page-size 10`,
	Args: cobra.NoArgs,
	RunE: cli.Wrap(func(rc *cli.RuntimeContext, cmd *cobra.Command, args []string) error {
		filters := cylera.ThreatFilters{
			DetectedAfter: int64Flag(cmd, "detected-after", threatsDetectedAfter),
			MACAddress:    threatsMACAddress,
			Name:          threatsName,
			Page:          intFlag(cmd, "page", threatsPage),
			PageSize:      intFlag(cmd, "page-size", threatsPageSize),
			Severity:      threatsSeverity,
			Status:        threatsStatus,
		}

		return runQuery(rc, func(client *cylera.Client) (json.RawMessage, error) {
			return cylera.NewThreat(client).GetThreats(rc.Ctx, filters)
		})
	}),
}

func init() {
	flags := ThreatsCmd.Flags()
	flags.Int64Var(&threatsDetectedAfter, "detected-after", 0, "Epoch timestamp filter")
	flags.StringVar(&threatsMACAddress, "mac-address", "", "MAC address of device")
	flags.StringVar(&threatsName, "name", "", "Threat name (partial match)")
	addPaginationFlags(flags, &threatsPage, &threatsPageSize)
	flags.StringVar(&threatsSeverity, "severity", "", "Severity level: INFO, LOW, MEDIUM, HIGH, CRITICAL")
	flags.StringVar(&threatsStatus, "status", "", "Status: OPEN, IN_PROGRESS, RESOLVED, SUPPRESSED")
}
