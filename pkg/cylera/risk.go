// pkg/cylera/risk.go

package cylera

import (
	"context"
	"encoding/json"
	"net/url"

	cerr "github.com/cockroachdb/errors"
)

// Risk queries the vulnerability and mitigation endpoints.
type Risk struct {
	client *Client
}

func NewRisk(c *Client) *Risk {
	return &Risk{client: c}
}

// GetMitigations returns the mitigations recorded for a named vulnerability.
func (s *Risk) GetMitigations(ctx context.Context, vulnerability string) (json.RawMessage, error) {
	if vulnerability == "" {
		return nil, cerr.New("vulnerability name is required")
	}
	params := url.Values{}
	params.Set("vulnerability", vulnerability)
	return s.client.get(ctx, "risk/mitigations", params)
}

// GetVulnerabilities returns the vulnerability listing, narrowed by the
// given filters.
func (s *Risk) GetVulnerabilities(ctx context.Context, filters VulnerabilityFilters) (json.RawMessage, error) {
	return s.client.get(ctx, "risk/vulnerabilities", filters.Values())
}
