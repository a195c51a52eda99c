// pkg/cylera/client.go

package cylera

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/healthsec-tools/cylera-cli/pkg/httpclient"
)

// loginPath is the Partner API authentication endpoint, relative to the
// base URL.
const loginPath = "auth/login_user"

// Config holds everything needed to construct a Client.
type Config struct {
	BaseURL  string
	Username string
	Password string

	// HTTPClient overrides the default transport, mainly for tests.
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client talks to the Cylera Partner API. It authenticates lazily: the
// first data request performs the login round trip and caches the token
// for the rest of the process lifetime.
type Client struct {
	baseURL  *url.URL
	username string
	password string
	token    string
	http     *http.Client
	log      *zap.Logger
}

// NewClient validates the configuration and returns a ready client. No
// network traffic happens until Authenticate or the first request.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, cerr.New("base URL is required")
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, cerr.New("username and password are required")
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, cerr.Wrapf(err, "invalid base URL %q", cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = httpclient.DefaultClient()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.L()
	}

	return &Client{
		baseURL:  base,
		username: cfg.Username,
		password: cfg.Password,
		http:     httpClient,
		log:      logger.Named("cylera"),
	}, nil
}

// Authenticate performs the login round trip and caches the session token.
// The raw response object is returned so the setup wizard can echo its
// fields; callers that only need the token can ignore it.
func (c *Client) Authenticate(ctx context.Context) (map[string]interface{}, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    c.username,
		"password": c.password,
	})
	if err != nil {
		return nil, cerr.Wrap(err, "failed to encode login request")
	}

	loginURL := c.baseURL.JoinPath(loginPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, cerr.Wrap(err, "failed to build login request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.log.Debug("Authenticating with Partner API",
		zap.String("base_url", c.baseURL.String()),
		zap.String("username", c.username))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &AuthError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &AuthError{StatusCode: resp.StatusCode, Detail: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &AuthError{StatusCode: resp.StatusCode, Detail: errorDetail(body)}
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &AuthError{StatusCode: resp.StatusCode, Detail: "malformed login response"}
	}

	token, _ := result["token"].(string)
	if token == "" {
		return nil, &AuthError{StatusCode: resp.StatusCode, Detail: "login response contained no token"}
	}
	c.token = token

	c.log.Debug("Authentication successful")
	return result, nil
}

// Close releases the client's underlying connections. Safe to call on
// every exit path.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// get issues an authenticated GET and returns the response body verbatim.
// Filters arrive pre-assembled in params; absent filters are simply not
// present in the map.
func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if c.token == "" {
		if _, err := c.Authenticate(ctx); err != nil {
			return nil, err
		}
	}

	reqURL := c.baseURL.JoinPath(path)
	if len(params) > 0 {
		reqURL.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, cerr.Wrapf(err, "failed to build request for %s", path)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	c.log.Debug("Issuing Partner API request",
		zap.String("path", path),
		zap.Int("param_count", len(params)))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Method: http.MethodGet, Path: path, Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Method: http.MethodGet, Path: path, Detail: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Method:     http.MethodGet,
			Path:       path,
			Detail:     errorDetail(body),
		}
	}

	return json.RawMessage(body), nil
}

// errorDetail extracts a single-line failure description from an error
// response body.
func errorDetail(body []byte) string {
	var parsed struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.Detail != "":
			return parsed.Detail
		case parsed.Message != "":
			return parsed.Message
		case parsed.Error != "":
			return parsed.Error
		}
	}

	trimmed := strings.TrimSpace(string(body))
	trimmed = strings.ReplaceAll(trimmed, "\n", " ")
	const maxDetail = 200
	if len(trimmed) > maxDetail {
		trimmed = fmt.Sprintf("%s...", trimmed[:maxDetail])
	}
	return trimmed
}
