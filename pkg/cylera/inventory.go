// pkg/cylera/inventory.go

package cylera

import (
	"context"
	"encoding/json"
	"net/url"

	cerr "github.com/cockroachdb/errors"
)

// Inventory queries the device inventory endpoints.
type Inventory struct {
	client *Client
}

func NewInventory(c *Client) *Inventory {
	return &Inventory{client: c}
}

// GetDevice returns details for a single device identified by MAC address.
func (s *Inventory) GetDevice(ctx context.Context, macAddress string) (json.RawMessage, error) {
	if macAddress == "" {
		return nil, cerr.New("mac address is required")
	}
	params := url.Values{}
	params.Set("mac_address", macAddress)
	return s.client.get(ctx, "inventory/device", params)
}

// GetDevices returns the device listing, narrowed by the given filters.
func (s *Inventory) GetDevices(ctx context.Context, filters DeviceFilters) (json.RawMessage, error) {
	return s.client.get(ctx, "inventory/devices", filters.Values())
}

// GetDeviceAttributes returns the attributes recorded for a device.
func (s *Inventory) GetDeviceAttributes(ctx context.Context, macAddress string) (json.RawMessage, error) {
	if macAddress == "" {
		return nil, cerr.New("mac address is required")
	}
	params := url.Values{}
	params.Set("mac_address", macAddress)
	return s.client.get(ctx, "inventory/device_attributes", params)
}
