// pkg/cylera/network.go

package cylera

import (
	"context"
	"encoding/json"
)

// Network queries the network topology endpoints.
type Network struct {
	client *Client
}

func NewNetwork(c *Client) *Network {
	return &Network{client: c}
}

// GetSubnets returns the subnet listing, narrowed by the given filters.
func (s *Network) GetSubnets(ctx context.Context, filters SubnetFilters) (json.RawMessage, error) {
	return s.client.get(ctx, "network/subnets", filters.Values())
}
