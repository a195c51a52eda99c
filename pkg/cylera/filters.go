// pkg/cylera/filters.go

package cylera

import (
	"net/url"
	"strconv"
)

// Filter structs hold the optional query parameters a listing operation
// accepts. Zero-value strings and nil pointers mean "unset" and are
// omitted from the outgoing request entirely; the service never sees an
// empty or null filter. Substring matching, timestamp comparison and the
// page-size cap (100) are all enforced remotely.

// DeviceFilters narrows the device inventory listing.
type DeviceFilters struct {
	AETitle      string
	Class        string
	Hostname     string
	IPAddress    string
	MACAddress   string
	Model        string
	OS           string
	Page         *int
	PageSize     *int
	SerialNumber string
	// Deprecated: still accepted and forwarded for backward compatibility,
	// but the service may no longer apply it.
	SinceLastSeen   *int
	Type            string
	Vendor          string
	FirstSeenBefore *int64
	FirstSeenAfter  *int64
	LastSeenBefore  *int64
	LastSeenAfter   *int64
	AttributeLabel  string
}

func (f DeviceFilters) Values() url.Values {
	v := url.Values{}
	setString(v, "aetitle", f.AETitle)
	setString(v, "class", f.Class)
	setString(v, "hostname", f.Hostname)
	setString(v, "ip_address", f.IPAddress)
	setString(v, "mac_address", f.MACAddress)
	setString(v, "model", f.Model)
	setString(v, "os", f.OS)
	setInt(v, "page", f.Page)
	setInt(v, "page_size", f.PageSize)
	setString(v, "serial_number", f.SerialNumber)
	setInt(v, "since_last_seen", f.SinceLastSeen)
	setString(v, "type", f.Type)
	setString(v, "vendor", f.Vendor)
	setInt64(v, "first_seen_before", f.FirstSeenBefore)
	setInt64(v, "first_seen_after", f.FirstSeenAfter)
	setInt64(v, "last_seen_before", f.LastSeenBefore)
	setInt64(v, "last_seen_after", f.LastSeenAfter)
	setString(v, "attribute_label", f.AttributeLabel)
	return v
}

// ProcedureFilters narrows the medical procedure listing.
type ProcedureFilters struct {
	ProcedureName   string
	AccessionNumber string
	DeviceUUID      string
	// CompletedAfter is a YYYY/MM/DD date, interpreted by the service.
	CompletedAfter string
	Page           *int
	PageSize       *int
}

func (f ProcedureFilters) Values() url.Values {
	v := url.Values{}
	setString(v, "procedure_name", f.ProcedureName)
	setString(v, "accession_number", f.AccessionNumber)
	setString(v, "device_uuid", f.DeviceUUID)
	setString(v, "completed_after", f.CompletedAfter)
	setInt(v, "page", f.Page)
	setInt(v, "page_size", f.PageSize)
	return v
}

// SubnetFilters narrows the subnet listing.
type SubnetFilters struct {
	CIDRRange   string
	Description string
	VLAN        *int
	Page        *int
	PageSize    *int
}

func (f SubnetFilters) Values() url.Values {
	v := url.Values{}
	setString(v, "cidr_range", f.CIDRRange)
	setString(v, "description", f.Description)
	setInt(v, "vlan", f.VLAN)
	setInt(v, "page", f.Page)
	setInt(v, "page_size", f.PageSize)
	return v
}

// VulnerabilityFilters narrows the vulnerability listing.
type VulnerabilityFilters struct {
	// Confidence is one of LOW, MEDIUM, HIGH.
	Confidence    string
	DetectedAfter *int64
	MACAddress    string
	Name          string
	Page          *int
	PageSize      *int
	// Severity is one of INFO, LOW, MEDIUM, HIGH, CRITICAL.
	Severity string
	// Status is one of OPEN, IN_PROGRESS, RESOLVED, SUPPRESSED.
	Status string
}

func (f VulnerabilityFilters) Values() url.Values {
	v := url.Values{}
	setString(v, "confidence", f.Confidence)
	setInt64(v, "detected_after", f.DetectedAfter)
	setString(v, "mac_address", f.MACAddress)
	setString(v, "name", f.Name)
	setInt(v, "page", f.Page)
	setInt(v, "page_size", f.PageSize)
	setString(v, "severity", f.Severity)
	setString(v, "status", f.Status)
	return v
}

// ThreatFilters narrows the threat listing.
type ThreatFilters struct {
	DetectedAfter *int64
	MACAddress    string
	Name          string
	Page          *int
	PageSize      *int
	Severity      string
	Status        string
}

func (f ThreatFilters) Values() url.Values {
	v := url.Values{}
	setInt64(v, "detected_after", f.DetectedAfter)
	setString(v, "mac_address", f.MACAddress)
	setString(v, "name", f.Name)
	setInt(v, "page", f.Page)
	setInt(v, "page_size", f.PageSize)
	setString(v, "severity", f.Severity)
	setString(v, "status", f.Status)
	return v
}

func setString(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setInt(v url.Values, key string, value *int) {
	if value != nil {
		v.Set(key, strconv.Itoa(*value))
	}
}

func setInt64(v url.Values, key string, value *int64) {
	if value != nil {
		v.Set(key, strconv.FormatInt(*value, 10))
	}
}
