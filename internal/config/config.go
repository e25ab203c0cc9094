package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultBaseURL is the MAST download endpoint for JWST engineering
// database files.
const DefaultBaseURL = "https://mast.stsci.edu/jwst/api/v0.1/Download/file?uri=mast:jwstedb"

// TokenFile is the fallback token location in the user's home directory.
// It must contain the token on a single line.
const TokenFile = ".mast_api_token"

const tokenLength = 32

type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// New builds a Config from viper. The token is resolved with the
// precedence flag > environment > ~/.mast_api_token file.
func New() *Config {
	cfg := &Config{
		BaseURL: viper.GetString("base_url"),
		Token:   viper.GetString("token"),
		Timeout: viper.GetDuration("timeout"),
	}
	if cfg.Token == "" {
		cfg.Token = tokenFromFile()
	}
	return cfg
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if err := ValidateToken(c.Token); err != nil {
		return err
	}
	return nil
}

// ValidateToken checks the MAST API token shape: exactly 32 alphanumeric
// characters.
func ValidateToken(token string) error {
	if token == "" {
		return fmt.Errorf("MAST API token is not defined: pass --token, set MAST_API_TOKEN, or create ~/%s", TokenFile)
	}
	if len(token) != tokenLength {
		return fmt.Errorf("MAST API token is not %d characters: %q", tokenLength, token)
	}
	for _, r := range token {
		if !isAlnum(r) {
			return fmt.Errorf("MAST API token is not alphanumeric: %q", token)
		}
	}
	return nil
}

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// tokenFromFile reads the token from ~/.mast_api_token. A missing file is
// fine; a multi-line file is ignored with a warning, matching the behavior
// users of the original tooling expect.
func tokenFromFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	raw, err := os.ReadFile(filepath.Join(home, TokenFile))
	if err != nil {
		return ""
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 1 {
		fmt.Fprintf(os.Stderr, "Ignoring ~/%s, expected one line\n", TokenFile)
		return ""
	}
	return strings.TrimSpace(lines[0])
}
