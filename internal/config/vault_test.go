package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVaultToken(t *testing.T) {
	t.Run("token from config", func(t *testing.T) {
		token, err := resolveVaultToken(VaultConfig{Token: "direct-token"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "direct-token", token)
	})

	t.Run("token from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(path, []byte("  file-token\n"), 0o600))

		token, err := resolveVaultToken(VaultConfig{TokenFile: path}, nil)
		require.NoError(t, err)
		assert.Equal(t, "file-token", token)
	})

	t.Run("config token wins over file", func(t *testing.T) {
		token, err := resolveVaultToken(VaultConfig{Token: "direct", TokenFile: "/nonexistent"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "direct", token)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := resolveVaultToken(VaultConfig{}, nil)
		assert.ErrorContains(t, err, "vault token is required")
	})

	t.Run("unreadable token file", func(t *testing.T) {
		_, err := resolveVaultToken(VaultConfig{TokenFile: "/nonexistent/token"}, nil)
		assert.ErrorContains(t, err, "failed to read vault token file")
	})
}

func TestLoadAIKeyFromVaultAppliesToOperations(t *testing.T) {
	// Exercise the application logic directly: operation keys fall back to
	// the Vault-provided key only when unset.
	cfg := &Config{}
	cfg.AI.Narrative.APIKey = "narrative-override"

	applyAIKey(cfg, "vault-key")

	assert.Equal(t, "vault-key", cfg.AI.APIKey)
	assert.Equal(t, "vault-key", cfg.AI.Details.APIKey)
	assert.Equal(t, "narrative-override", cfg.AI.Narrative.APIKey)
	assert.Equal(t, "vault-key", cfg.AI.Insights.APIKey)
}

func TestLoadCertField(t *testing.T) {
	secret := &VaultSecret{Data: map[string]any{
		"cert":  "cert-pem",
		"key":   "key-pem",
		"empty": "",
		"num":   42,
	}}

	var target string
	assert.Equal(t, 1, loadCertField(secret, "cert", &target))
	assert.Equal(t, "cert-pem", target)

	target = ""
	assert.Equal(t, 0, loadCertField(secret, "empty", &target))
	assert.Equal(t, 0, loadCertField(secret, "num", &target))
	assert.Equal(t, 0, loadCertField(secret, "missing", &target))
	assert.Empty(t, target)
}

func TestApplyVaultSecretsDisabled(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, ApplyVaultSecrets(cfg, nil))
	assert.Empty(t, cfg.AI.APIKey)
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"short", "****"},
		{"abcdefghijkl", "abcd****ijkl"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, maskSecret(tt.in))
	}
}
