// cmd/device.go

package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/healthsec-tools/cylera-cli/pkg/cli"
	"github.com/healthsec-tools/cylera-cli/pkg/cylera"
)

// DeviceCmd gets details for a single device.
var DeviceCmd = &cobra.Command{
	Use:   "device <mac-address>",
	Short: "Get details for a specific device by MAC address",
	Long: `Get details for a specific device by MAC address.

Example:
  cylera device 00:0a:95:9d:68:16`,
	Args: cobra.ExactArgs(1),
	RunE: cli.Wrap(func(rc *cli.RuntimeContext, cmd *cobra.Command, args []string) error {
		return runQuery(rc, func(client *cylera.Client) (json.RawMessage, error) {
			return cylera.NewInventory(client).GetDevice(rc.Ctx, args[0])
		})
	}),
}
