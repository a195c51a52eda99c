// cmd/deviceattributes.go

package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/healthsec-tools/cylera-cli/pkg/cli"
	"github.com/healthsec-tools/cylera-cli/pkg/cylera"
)

// DeviceAttributesCmd gets the attributes recorded for a device.
var DeviceAttributesCmd = &cobra.Command{
	Use:   "deviceattributes <mac-address>",
	Short: "Get attributes for a device by MAC address",
	Long: `Get attributes for a device by MAC address.

Example:
  cylera deviceattributes 00:0a:95:9d:68:16`,
	Args: cobra.ExactArgs(1),
	RunE: cli.Wrap(func(rc *cli.RuntimeContext, cmd *cobra.Command, args []string) error {
		return runQuery(rc, func(client *cylera.Client) (json.RawMessage, error) {
			return cylera.NewInventory(client).GetDeviceAttributes(rc.Ctx, args[0])
		})
	}),
}
