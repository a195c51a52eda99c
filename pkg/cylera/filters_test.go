// pkg/cylera/filters_test.go

package cylera

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestDeviceFiltersValues(t *testing.T) {
	tests := []struct {
		name    string
		filters DeviceFilters
		want    url.Values
	}{
		{
			name:    "all unset produces no parameters",
			filters: DeviceFilters{},
			want:    url.Values{},
		},
		{
			name: "only set fields appear",
			filters: DeviceFilters{
				Class:    "Medical",
				PageSize: intPtr(5),
			},
			want: url.Values{
				"class":     []string{"Medical"},
				"page_size": []string{"5"},
			},
		},
		{
			name: "page size alone",
			filters: DeviceFilters{
				PageSize: intPtr(5),
			},
			want: url.Values{
				"page_size": []string{"5"},
			},
		},
		{
			name: "deprecated since_last_seen still forwarded",
			filters: DeviceFilters{
				SinceLastSeen: intPtr(3600),
			},
			want: url.Values{
				"since_last_seen": []string{"3600"},
			},
		},
		{
			name: "zero-valued pointers are still sent",
			filters: DeviceFilters{
				Page: intPtr(0),
			},
			want: url.Values{
				"page": []string{"0"},
			},
		},
		{
			name: "documented parameter names",
			filters: DeviceFilters{
				AETitle:         "CT01",
				Class:           "Medical",
				Hostname:        "ct-scanner-01",
				IPAddress:       "10.1.",
				MACAddress:      "00:0a:95:9d:68:16",
				Model:           "Aquilion",
				OS:              "Windows",
				Page:            intPtr(2),
				PageSize:        intPtr(50),
				SerialNumber:    "SN1234",
				SinceLastSeen:   intPtr(60),
				Type:            "X-Ray",
				Vendor:          "Toshiba",
				FirstSeenBefore: int64Ptr(1700000000),
				FirstSeenAfter:  int64Ptr(1600000000),
				LastSeenBefore:  int64Ptr(1710000000),
				LastSeenAfter:   int64Ptr(1610000000),
				AttributeLabel:  "department",
			},
			want: url.Values{
				"aetitle":           []string{"CT01"},
				"class":             []string{"Medical"},
				"hostname":          []string{"ct-scanner-01"},
				"ip_address":        []string{"10.1."},
				"mac_address":       []string{"00:0a:95:9d:68:16"},
				"model":             []string{"Aquilion"},
				"os":                []string{"Windows"},
				"page":              []string{"2"},
				"page_size":         []string{"50"},
				"serial_number":     []string{"SN1234"},
				"since_last_seen":   []string{"60"},
				"type":              []string{"X-Ray"},
				"vendor":            []string{"Toshiba"},
				"first_seen_before": []string{"1700000000"},
				"first_seen_after":  []string{"1600000000"},
				"last_seen_before":  []string{"1710000000"},
				"last_seen_after":   []string{"1610000000"},
				"attribute_label":   []string{"department"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.Values())
		})
	}
}

func TestProcedureFiltersValues(t *testing.T) {
	assert.Equal(t, url.Values{}, ProcedureFilters{}.Values())

	filters := ProcedureFilters{
		ProcedureName:   "CT CHEST",
		AccessionNumber: "ACC-99",
		DeviceUUID:      "6b4a4f0e-8d6c-4b5e-9f2a-1c7d8e9f0a1b",
		CompletedAfter:  "2024/01/31",
		Page:            intPtr(1),
		PageSize:        intPtr(25),
	}
	assert.Equal(t, url.Values{
		"procedure_name":   []string{"CT CHEST"},
		"accession_number": []string{"ACC-99"},
		"device_uuid":      []string{"6b4a4f0e-8d6c-4b5e-9f2a-1c7d8e9f0a1b"},
		"completed_after":  []string{"2024/01/31"},
		"page":             []string{"1"},
		"page_size":        []string{"25"},
	}, filters.Values())
}

func TestSubnetFiltersValues(t *testing.T) {
	assert.Equal(t, url.Values{}, SubnetFilters{}.Values())

	filters := SubnetFilters{
		CIDRRange: "10.0.",
		VLAN:      intPtr(120),
	}
	assert.Equal(t, url.Values{
		"cidr_range": []string{"10.0."},
		"vlan":       []string{"120"},
	}, filters.Values())
}

func TestVulnerabilityFiltersValues(t *testing.T) {
	assert.Equal(t, url.Values{}, VulnerabilityFilters{}.Values())

	filters := VulnerabilityFilters{
		Confidence:    "HIGH",
		DetectedAfter: int64Ptr(1700000000),
		Severity:      "CRITICAL",
		Status:        "OPEN",
	}
	assert.Equal(t, url.Values{
		"confidence":     []string{"HIGH"},
		"detected_after": []string{"1700000000"},
		"severity":       []string{"CRITICAL"},
		"status":         []string{"OPEN"},
	}, filters.Values())
}

func TestThreatFiltersValues(t *testing.T) {
	assert.Equal(t, url.Values{}, ThreatFilters{}.Values())

	filters := ThreatFilters{
		Name:     "Mirai",
		PageSize: intPtr(10),
	}
	assert.Equal(t, url.Values{
		"name":      []string{"Mirai"},
		"page_size": []string{"10"},
	}, filters.Values())
}
