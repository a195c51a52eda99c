// cmd/procedures.go

package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/healthsec-tools/cylera-cli/pkg/cli"
	"github.com/healthsec-tools/cylera-cli/pkg/cylera"
)

var (
	proceduresName            string
	proceduresAccessionNumber string
	proceduresDeviceUUID      string
	proceduresCompletedAfter  string
	proceduresPage            int
	proceduresPageSize        int
)

// ProceduresCmd lists medical procedures.
var ProceduresCmd = &cobra.Command{
	Use:   "procedures",
	Short: "Get a list of medical procedures",
	Long: `Get a paginated list of medical procedures recorded by Cylera.

Examples:
  cylera procedures --procedure-name "CT CHEST"
  cylera procedures --device-uuid 6b4a4f0e-8d6c-4b5e-9f2a-1c7d8e9f0a1b --page-size 20`,
	Args: cobra.NoArgs,
	RunE: cli.Wrap(func(rc *cli.RuntimeContext, cmd *cobra.Command, args []string) error {
		filters := cylera.ProcedureFilters{
			ProcedureName:   proceduresName,
			AccessionNumber: proceduresAccessionNumber,
			DeviceUUID:      proceduresDeviceUUID,
			CompletedAfter:  proceduresCompletedAfter,
			Page:            intFlag(cmd, "page", proceduresPage),
			PageSize:        intFlag(cmd, "page-size", proceduresPageSize),
		}

		return runQuery(rc, func(client *cylera.Client) (json.RawMessage, error) {
			return cylera.NewUtilization(client).GetProcedures(rc.Ctx, filters)
		})
	}),
}

func init() {
	flags := ProceduresCmd.Flags()
	flags.StringVar(&proceduresName, "procedure-name", "", "Procedure name (partial match)")
	flags.StringVar(&proceduresAccessionNumber, "accession-number", "", "Accession number")
	flags.StringVar(&proceduresDeviceUUID, "device-uuid", "", "Device UUID")
	flags.StringVar(&proceduresCompletedAfter, "completed-after", "", "Date (YYYY/MM/DD)")
	addPaginationFlags(flags, &proceduresPage, &proceduresPageSize)
}
