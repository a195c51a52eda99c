// pkg/cylera/utilization.go

package cylera

import (
	"context"
	"encoding/json"
)

// Utilization queries the device utilization endpoints.
type Utilization struct {
	client *Client
}

func NewUtilization(c *Client) *Utilization {
	return &Utilization{client: c}
}

// GetProcedures returns the medical procedure listing, narrowed by the
// given filters.
func (s *Utilization) GetProcedures(ctx context.Context, filters ProcedureFilters) (json.RawMessage, error) {
	return s.client.get(ctx, "utilization/procedures", filters.Values())
}
