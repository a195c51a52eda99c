// pkg/httpclient/httpclient.go

package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"os"
	"time"
)

var defaultClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		TLSClientConfig: getTLSConfig(),
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

// DefaultClient returns the preconfigured HTTP client used for all
// Partner API requests.
func DefaultClient() *http.Client {
	return defaultClient
}

// getTLSConfig returns TLS configuration with proper security settings
func getTLSConfig() *tls.Config {
	// Allow insecure TLS only in development/testing environments
	if os.Getenv("CYLERA_INSECURE_TLS") == "true" || os.Getenv("GO_ENV") == "test" {
		return &tls.Config{
			InsecureSkipVerify: true,
			MinVersion:         tls.VersionTLS12,
		}
	}

	return &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
}

// SetDefaultClient allows replacing the default client for testing purposes
func SetDefaultClient(client *http.Client) {
	defaultClient = client
}
