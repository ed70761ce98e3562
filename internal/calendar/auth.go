package calendar

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jiundev/gongmo/internal/config"
	"github.com/jiundev/gongmo/internal/crypto"
)

// ErrNoCredentials is returned when no usable API token can be found.
// Calendar-touching commands treat this as fatal at startup.
var ErrNoCredentials = errors.New("no calendar credentials configured")

// tokenFile is the stored token shape; a bare token string is also
// accepted for hand-provisioned files.
type tokenFile struct {
	AccessToken string `json:"access_token"`
}

// LoadToken resolves the calendar API bearer token. Resolution order:
// the GONGMO_CALENDAR_TOKEN environment variable, then the configured
// token file (decrypted with GONGMO_TOKEN_PASSPHRASE when set).
func LoadToken(cfg *config.Config) (string, error) {
	if t := strings.TrimSpace(os.Getenv(config.EnvCalendarToken)); t != "" {
		return t, nil
	}

	data, err := os.ReadFile(cfg.TokenFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: set %s or store a token at %s",
				ErrNoCredentials, config.EnvCalendarToken, cfg.TokenFile)
		}
		return "", fmt.Errorf("reading token file: %w", err)
	}

	enc := crypto.NewEncryptor(os.Getenv(config.EnvTokenPassphrase))
	raw, err := enc.Decrypt(strings.TrimSpace(string(data)))
	if err != nil {
		return "", fmt.Errorf("decrypting token file: %w", err)
	}

	token := parseToken(raw)
	if token == "" {
		return "", fmt.Errorf("%w: token file %s is empty or malformed",
			ErrNoCredentials, cfg.TokenFile)
	}

	return token, nil
}

// SaveToken stores a token file, encrypting when a passphrase is set in
// the environment.
func SaveToken(cfg *config.Config, token string) error {
	enc := crypto.NewEncryptor(os.Getenv(config.EnvTokenPassphrase))
	data, err := enc.Encrypt(token)
	if err != nil {
		return fmt.Errorf("encrypting token: %w", err)
	}

	if err := os.WriteFile(cfg.TokenFile, []byte(data), 0600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	return nil
}

// CheckAuth reports whether a token is available without touching the
// network.
func CheckAuth(cfg *config.Config) bool {
	_, err := LoadToken(cfg)
	return err == nil
}

func parseToken(raw string) string {
	var tf tokenFile
	if err := json.Unmarshal([]byte(raw), &tf); err == nil && tf.AccessToken != "" {
		return tf.AccessToken
	}
	// Not JSON: treat the whole content as the token.
	if strings.ContainsAny(raw, "{}") {
		return ""
	}
	return raw
}
