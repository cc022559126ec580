package app

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestConfigPrecedence(t *testing.T) {
	t.Setenv("GLOWLIFE_FPS", "24")
	t.Setenv("GLOWLIFE_SEED", "acorn")
	t.Setenv("GLOWLIFE_SECONDS_PER_STEP", "1.5")

	cfg := NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		t.Fatal(err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-fps", "6"}); err != nil {
		t.Fatal(err)
	}

	if cfg.FPS != 6 {
		t.Fatalf("flag should override env, fps = %d", cfg.FPS)
	}
	if cfg.Seed != "acorn" {
		t.Fatalf("env should override default, seed = %q", cfg.Seed)
	}
	if cfg.StepInterval() != 1500*time.Millisecond {
		t.Fatalf("step interval = %v", cfg.StepInterval())
	}
	if cfg.Size != 21 {
		t.Fatalf("unset env should keep default size, got %d", cfg.Size)
	}
	if m := cfg.SimConfig(); m["seed"] != "acorn" || m["size"] != "21" {
		t.Fatalf("sim config %v", m)
	}
}

func TestConfigBadEnv(t *testing.T) {
	t.Setenv("GLOWLIFE_SIZE", "many")
	if err := NewConfig().LoadEnv(); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	body := `{"unit": "2vmin", "renderNucleus": true, "nucleusColor": [255, 0, 0, 0.5], "stepTransition": "1s"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.SettingsPath = path
	s, err := cfg.Settings()
	if err != nil {
		t.Fatal(err)
	}
	if s.Unit != "2vmin" || !s.RenderNucleus || s.NucleusColor.R != 255 {
		t.Fatalf("settings not applied: %+v", s)
	}
	if time.Duration(s.StepTransition) != time.Second {
		t.Fatalf("step transition = %v", time.Duration(s.StepTransition))
	}
	if s.Selector != "#divpen" || s.Figs != 2 {
		t.Fatal("keys missing from the file should keep their defaults")
	}

	_, err = LoadSettings(filepath.Join(dir, "missing.json"))
	if err == nil || !strings.Contains(err.Error(), "failed to read file") {
		t.Fatalf("missing file error = %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"figs": "two"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(bad); err == nil {
		t.Fatal("expected an unmarshal error")
	}
}
