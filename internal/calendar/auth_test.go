package calendar

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jiundev/gongmo/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.TokenFile = filepath.Join(t.TempDir(), "token.json")
	return cfg
}

func TestLoadTokenFromEnv(t *testing.T) {
	t.Setenv(config.EnvCalendarToken, "env-token-value")

	token, err := LoadToken(testConfig(t))
	if err != nil {
		t.Fatalf("LoadToken failed: %v", err)
	}
	if token != "env-token-value" {
		t.Errorf("unexpected token: %q", token)
	}
}

func TestLoadTokenMissingEverything(t *testing.T) {
	t.Setenv(config.EnvCalendarToken, "")
	t.Setenv(config.EnvTokenPassphrase, "")

	_, err := LoadToken(testConfig(t))
	if err == nil {
		t.Fatal("expected error when no credentials are available")
	}
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("expected ErrNoCredentials, got %v", err)
	}
}

func TestLoadTokenFromJSONFile(t *testing.T) {
	t.Setenv(config.EnvCalendarToken, "")
	t.Setenv(config.EnvTokenPassphrase, "")

	cfg := testConfig(t)
	content := `{"access_token": "file-token-value", "refresh_token": "r"}`
	if err := os.WriteFile(cfg.TokenFile, []byte(content), 0600); err != nil {
		t.Fatalf("writing token file: %v", err)
	}

	token, err := LoadToken(cfg)
	if err != nil {
		t.Fatalf("LoadToken failed: %v", err)
	}
	if token != "file-token-value" {
		t.Errorf("unexpected token: %q", token)
	}
}

func TestSaveAndLoadEncryptedToken(t *testing.T) {
	t.Setenv(config.EnvCalendarToken, "")
	t.Setenv(config.EnvTokenPassphrase, "hunter2")

	cfg := testConfig(t)
	if err := SaveToken(cfg, "secret-token"); err != nil {
		t.Fatalf("SaveToken failed: %v", err)
	}

	// The file on disk must not contain the plaintext token.
	raw, err := os.ReadFile(cfg.TokenFile)
	if err != nil {
		t.Fatalf("reading token file: %v", err)
	}
	if string(raw) == "secret-token" {
		t.Error("token stored unencrypted despite passphrase")
	}

	token, err := LoadToken(cfg)
	if err != nil {
		t.Fatalf("LoadToken failed: %v", err)
	}
	if token != "secret-token" {
		t.Errorf("unexpected token after round trip: %q", token)
	}
}

func TestCheckAuth(t *testing.T) {
	t.Setenv(config.EnvCalendarToken, "")
	t.Setenv(config.EnvTokenPassphrase, "")

	cfg := testConfig(t)
	if CheckAuth(cfg) {
		t.Error("CheckAuth should fail without a token")
	}

	t.Setenv(config.EnvCalendarToken, "some-token")
	if !CheckAuth(cfg) {
		t.Error("CheckAuth should succeed with an env token")
	}
}
