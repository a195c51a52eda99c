// pkg/cylera/threat.go

package cylera

import (
	"context"
	"encoding/json"
)

// Threat queries the detected threat endpoints.
type Threat struct {
	client *Client
}

func NewThreat(c *Client) *Threat {
	return &Threat{client: c}
}

// GetThreats returns the threat listing, narrowed by the given filters.
func (s *Threat) GetThreats(ctx context.Context, filters ThreatFilters) (json.RawMessage, error) {
	return s.client.get(ctx, "threat/threats", filters.Values())
}
