// cmd/subnets.go

package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/healthsec-tools/cylera-cli/pkg/cli"
	"github.com/healthsec-tools/cylera-cli/pkg/cylera"
)

var (
	subnetsCIDRRange   string
	subnetsDescription string
	subnetsVLAN        int
	subnetsPage        int
	subnetsPageSize    int
)

// SubnetsCmd lists network subnets.
var SubnetsCmd = &cobra.Command{
	Use:   "subnets",
	Short: "Get a list of network subnets",
	Long: `Get a paginated list of network subnets known to Cylera.

Examples:
  cylera subnets --vlan 120
  cylera subnets --cidr-range 10.0.`,
	Args: cobra.NoArgs,
	RunE: cli.Wrap(func(rc *cli.RuntimeContext, cmd *cobra.Command, args []string) error {
		filters := cylera.SubnetFilters{
			CIDRRange:   subnetsCIDRRange,
			Description: subnetsDescription,
			VLAN:        intFlag(cmd, "vlan", subnetsVLAN),
			Page:        intFlag(cmd, "page", subnetsPage),
			PageSize:    intFlag(cmd, "page-size", subnetsPageSize),
		}

		return runQuery(rc, func(client *cylera.Client) (json.RawMessage, error) {
			return cylera.NewNetwork(client).GetSubnets(rc.Ctx, filters)
		})
	}),
}

func init() {
	flags := SubnetsCmd.Flags()
	flags.StringVar(&subnetsCIDRRange, "cidr-range", "", "CIDR range (partial match)")
	flags.StringVar(&subnetsDescription, "description", "", "Subnet description")
	flags.IntVar(&subnetsVLAN, "vlan", 0, "VLAN number")
	addPaginationFlags(flags, &subnetsPage, &subnetsPageSize)
}
