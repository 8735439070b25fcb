package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.UI.AltScreen || !cfg.UI.Mouse {
		t.Fatalf("alt screen and mouse should default on: %+v", cfg.UI)
	}
	if cfg.UI.MarkdownStyle != "auto" {
		t.Errorf("markdown_style = %q, want auto", cfg.UI.MarkdownStyle)
	}
	if cfg.Content.Dir != "" || cfg.Content.Watch {
		t.Errorf("content should default to embedded decks: %+v", cfg.Content)
	}
	if cfg.Log.File != "" || cfg.Log.Level != "info" {
		t.Errorf("unexpected log defaults: %+v", cfg.Log)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte(`
[ui]
mouse = false
markdown_style = "dracula"

[content]
dir = "/srv/decks"
watch = true

[log]
file = "/tmp/plslides.log"
level = "debug"

[keys]
back = ["backspace", "esc"]
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.Mouse {
		t.Error("mouse should be off")
	}
	if !cfg.UI.AltScreen {
		t.Error("alt_screen should keep its default")
	}
	if cfg.UI.MarkdownStyle != "dracula" {
		t.Errorf("markdown_style = %q, want dracula", cfg.UI.MarkdownStyle)
	}
	if cfg.Content.Dir != "/srv/decks" || !cfg.Content.Watch {
		t.Errorf("unexpected content config: %+v", cfg.Content)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/plslides.log" {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
	if diff := cmp.Diff([]string{"backspace", "esc"}, cfg.Keys["back"]); diff != "" {
		t.Errorf("keys.back mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui\nmouse = "), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
