// cmd/devices.go

package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/healthsec-tools/cylera-cli/pkg/cli"
	"github.com/healthsec-tools/cylera-cli/pkg/cylera"
)

var (
	devicesAETitle         string
	devicesClass           string
	devicesHostname        string
	devicesIPAddress       string
	devicesMACAddress      string
	devicesModel           string
	devicesOS              string
	devicesPage            int
	devicesPageSize        int
	devicesSerialNumber    string
	devicesSinceLastSeen   int
	devicesType            string
	devicesVendor          string
	devicesFirstSeenBefore int64
	devicesFirstSeenAfter  int64
	devicesLastSeenBefore  int64
	devicesLastSeenAfter   int64
	devicesAttributeLabel  string
)

// DevicesCmd lists devices with optional filters.
var DevicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Get a list of devices with optional filters",
	Long: `Get a paginated list of devices from the Cylera inventory.

Every filter is optional; unset filters are omitted from the request. Partial
matching (hostname fragments, partial IPs) and timestamp comparison happen on
the service side. The service caps page size at 100.

Examples:
  cylera devices --page-size 5
  cylera devices --class Medical --vendor "GE Healthcare"
  cylera devices --ip-address 10.1. --last-seen-after 1700000000`,
	Args: cobra.NoArgs,
	RunE: cli.Wrap(func(rc *cli.RuntimeContext, cmd *cobra.Command, args []string) error {
		filters := cylera.DeviceFilters{
			AETitle:         devicesAETitle,
			Class:           devicesClass,
			Hostname:        devicesHostname,
			IPAddress:       devicesIPAddress,
			MACAddress:      devicesMACAddress,
			Model:           devicesModel,
			OS:              devicesOS,
			Page:            intFlag(cmd, "page", devicesPage),
			PageSize:        intFlag(cmd, "page-size", devicesPageSize),
			SerialNumber:    devicesSerialNumber,
			SinceLastSeen:   intFlag(cmd, "since-last-seen", devicesSinceLastSeen),
			Type:            devicesType,
			Vendor:          devicesVendor,
			FirstSeenBefore: int64Flag(cmd, "first-seen-before", devicesFirstSeenBefore),
			FirstSeenAfter:  int64Flag(cmd, "first-seen-after", devicesFirstSeenAfter),
			LastSeenBefore:  int64Flag(cmd, "last-seen-before", devicesLastSeenBefore),
			LastSeenAfter:   int64Flag(cmd, "last-seen-after", devicesLastSeenAfter),
			AttributeLabel:  devicesAttributeLabel,
		}

		return runQuery(rc, func(client *cylera.Client) (json.RawMessage, error) {
			return cylera.NewInventory(client).GetDevices(rc.Ctx, filters)
		})
	}),
}

func init() {
	flags := DevicesCmd.Flags()
	flags.StringVar(&devicesAETitle, "aetitle", "", "Complete AE Title")
	flags.StringVar(&devicesClass, "class", "", "Device class (Medical, Infrastructure, etc.)")
	flags.StringVar(&devicesHostname, "hostname", "", "Complete hostname")
	flags.StringVar(&devicesIPAddress, "ip-address", "", "Partial or complete IP")
	flags.StringVar(&devicesMACAddress, "mac-address", "", "MAC address of device")
	flags.StringVar(&devicesModel, "model", "", "Device model")
	flags.StringVar(&devicesOS, "os", "", "Operating system")
	addPaginationFlags(flags, &devicesPage, &devicesPageSize)
	flags.StringVar(&devicesSerialNumber, "serial-number", "", "Complete serial number")
	flags.IntVar(&devicesSinceLastSeen, "since-last-seen", 0, "[DEPRECATED] Seconds since last seen")
	flags.StringVar(&devicesType, "type", "", "Device type (EEG, X-Ray, etc.)")
	flags.StringVar(&devicesVendor, "vendor", "", "Device vendor")
	flags.Int64Var(&devicesFirstSeenBefore, "first-seen-before", 0, "Epoch timestamp")
	flags.Int64Var(&devicesFirstSeenAfter, "first-seen-after", 0, "Epoch timestamp")
	flags.Int64Var(&devicesLastSeenBefore, "last-seen-before", 0, "Epoch timestamp")
	flags.Int64Var(&devicesLastSeenAfter, "last-seen-after", 0, "Epoch timestamp")
	flags.StringVar(&devicesAttributeLabel, "attribute-label", "", "Attribute label filter")
}
