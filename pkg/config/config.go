// pkg/config/config.go

package config

import (
	"fmt"
	"os"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variables holding the Cylera Partner API credentials.
const (
	EnvBaseURL  = "CYLERA_BASE_URL"
	EnvUsername = "CYLERA_USERNAME"
	EnvPassword = "CYLERA_PASSWORD"
)

// FileName is the dotenv file read from and appended to in the working directory.
const FileName = ".env"

// ErrNotConfigured marks the absence of usable credentials. The dispatcher
// turns it into a directive to run `cylera init`.
var ErrNotConfigured = cerr.New("cylera credentials are not configured")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Credentials holds the three values required to talk to the Partner API.
type Credentials struct {
	BaseURL  string `validate:"required,url"`
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Validate checks that all three fields are present and the base URL parses.
func (c *Credentials) Validate() error {
	if err := validate.Struct(c); err != nil {
		return cerr.Wrap(err, "invalid credentials")
	}
	return nil
}

// LoadEnvFile merges the working-directory .env file into the process
// environment. Values already set in the environment win. A missing file
// is not an error: the variables may be set directly.
func LoadEnvFile() {
	_ = godotenv.Load(FileName)
}

// Load resolves credentials from the environment (after merging the .env
// file) and validates them. Returns ErrNotConfigured when any value is absent.
func Load() (*Credentials, error) {
	LoadEnvFile()

	creds := &Credentials{
		BaseURL:  os.Getenv(EnvBaseURL),
		Username: os.Getenv(EnvUsername),
		Password: os.Getenv(EnvPassword),
	}
	if creds.BaseURL == "" || creds.Username == "" || creds.Password == "" {
		return nil, ErrNotConfigured
	}
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return creds, nil
}

// IsConfigured reports whether all three credential values resolve.
func IsConfigured() bool {
	_, err := Load()
	return err == nil
}

// ExistingVars returns which credential variables are already set. Used by
// the wizard to refuse a silent overwrite.
func ExistingVars() []string {
	var set []string
	for _, name := range []string{EnvBaseURL, EnvUsername, EnvPassword} {
		if os.Getenv(name) != "" {
			set = append(set, name)
		}
	}
	return set
}

// Append writes one configuration block to path, creating the file if
// absent and preserving any existing content. The block is a comment marker
// followed by the three KEY=VALUE lines.
func Append(path string, creds *Credentials) error {
	existing := ""
	if data, err := os.ReadFile(path); err == nil {
		existing = string(data)
		if existing != "" && !strings.HasSuffix(existing, "\n") {
			existing += "\n"
		}
	} else if !os.IsNotExist(err) {
		return cerr.Wrapf(err, "failed to read %s", path)
	}

	block := fmt.Sprintf("\n# Cylera CLI Configuration\n%s=%s\n%s=%s\n%s=%s\n",
		EnvBaseURL, creds.BaseURL,
		EnvUsername, creds.Username,
		EnvPassword, creds.Password,
	)

	if err := os.WriteFile(path, []byte(existing+block), 0600); err != nil {
		return cerr.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
