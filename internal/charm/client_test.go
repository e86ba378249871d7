// ABOUTME: Tests for charm backend helpers that do not need a live charm account
// ABOUTME: Verifies namespace key layout and default configuration
package charm

import (
	"os"
	"testing"
)

func TestNamespaceKey(t *testing.T) {
	if got := NamespaceKey("carenotes-data"); got != "ns:carenotes-data" {
		t.Errorf("NamespaceKey() = %s, want ns:carenotes-data", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	os.Unsetenv("CHARM_HOST")
	cfg := DefaultConfig()
	if cfg.Host != "cloud.charm.sh" {
		t.Errorf("Host = %s, want cloud.charm.sh", cfg.Host)
	}
	if cfg.DBName != "carenotes" || !cfg.AutoSync {
		t.Errorf("unexpected defaults: %+v", cfg)
	}

	os.Setenv("CHARM_HOST", "charm.example.com")
	defer os.Unsetenv("CHARM_HOST")
	if got := DefaultConfig().Host; got != "charm.example.com" {
		t.Errorf("Host = %s, want charm.example.com", got)
	}
}
