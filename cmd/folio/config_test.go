package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/heyojules/folio/internal/model"
	"github.com/heyojules/folio/internal/tui"
)

// loadConfig reads the environment, so these tests do not run in parallel.

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.ReducedMotion {
		t.Fatal("reduced motion on by default")
	}
	if cfg.StartPage != tui.PageHome {
		t.Fatalf("start page = %q, want %q", cfg.StartPage, tui.PageHome)
	}
	hc := cfg.heroSettings()
	if hc.MaxConcurrent != model.DefaultMaxConcurrent {
		t.Fatalf("max concurrent = %d, want %d", hc.MaxConcurrent, model.DefaultMaxConcurrent)
	}
	if hc.TypingSpeed != 240*time.Millisecond {
		t.Fatalf("typing speed = %s, want 240ms", hc.TypingSpeed)
	}
	if hc.Placement.MinDistance != model.DefaultMinDistance {
		t.Fatalf("min distance = %v, want %v", hc.Placement.MinDistance, model.DefaultMinDistance)
	}
	if got := filepath.Base(cfg.ConfigDir); got != "folio" {
		t.Fatalf("config dir = %q, want .../folio", cfg.ConfigDir)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	body := "start-page: work\nhero:\n  max-concurrent: 5\n  typing-speed: 100ms\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOLIO_REDUCED_MOTION", "true")
	t.Setenv("FOLIO_HERO_MAX_CONCURRENT", "2")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !cfg.ReducedMotion {
		t.Fatal("FOLIO_REDUCED_MOTION ignored")
	}
	if cfg.StartPage != tui.PageWork {
		t.Fatalf("start page = %q, want work", cfg.StartPage)
	}
	if cfg.Hero.MaxConcurrent != 2 {
		t.Fatalf("max concurrent = %d, want env value 2", cfg.Hero.MaxConcurrent)
	}
	if cfg.Hero.TypingSpeed != 100*time.Millisecond {
		t.Fatalf("typing speed = %s, want 100ms", cfg.Hero.TypingSpeed)
	}
	if cfg.ConfigDir != dir {
		t.Fatalf("config dir = %q, want %q", cfg.ConfigDir, dir)
	}
	if !cfg.heroSettings().ReducedMotion || !cfg.pageOptions().ReducedMotion {
		t.Fatal("reduced motion not passed on")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cases := map[string]string{
		"FOLIO_HERO_MAX_CONCURRENT":  "0",
		"FOLIO_START_PAGE":           "blog",
		"FOLIO_HERO_SPAWN_DELAY_MIN": "9s",
	}
	for env, val := range cases {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, val)
			if _, err := loadConfig(""); err == nil {
				t.Fatalf("%s=%s: expected validation error", env, val)
			}
		})
	}
}
