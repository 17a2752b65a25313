package config

import (
	"os"
	"testing"
	"time"
)

func TestPresets(t *testing.T) {
	cases := []struct {
		d    Difficulty
		grid int
		tick time.Duration
	}{
		{Easy, 40, 120 * time.Millisecond},
		{Medium, 30, 80 * time.Millisecond},
		{Hard, 20, 50 * time.Millisecond},
	}
	for _, tc := range cases {
		p := PresetFor(tc.d)
		if p.GridSize != tc.grid || p.TickInterval != tc.tick || p.SurfaceSize != 600 {
			t.Fatalf("%s: unexpected preset %+v", tc.d, p)
		}
	}
	if got := PresetFor(Hard).CellSize(); got != 30 {
		t.Fatalf("hard cell size: got %v want 30", got)
	}
	if got := PresetFor("bogus"); got != PresetFor(Medium) {
		t.Fatalf("unknown difficulty did not fall back to medium: %+v", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	if d, err := ParseDifficulty(" HARD "); err != nil || d != Hard {
		t.Fatalf("got %q, %v", d, err)
	}
	if _, err := ParseDifficulty("insane"); err == nil {
		t.Fatalf("expected error for unknown difficulty")
	}
}

// chdirTemp moves into an empty directory so no stray .env is picked up.
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Difficulty != Medium || cfg.Muted || cfg.ShareURL != DefaultShareURL {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadEnvThenFlags(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SNAKE_DIFFICULTY", "easy")
	t.Setenv("SNAKE_MUTED", "true")
	t.Setenv("SNAKE_DATA_DIR", "/tmp/snake-env")
	t.Setenv("SNAKE_SEED", "7")

	cfg, err := Load([]string{"-difficulty", "hard", "-data", "/tmp/snake-flag"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Difficulty != Hard {
		t.Fatalf("flag did not override env: %s", cfg.Difficulty)
	}
	if !cfg.Muted || cfg.Seed != 7 {
		t.Fatalf("env values lost: %+v", cfg)
	}
	if cfg.StorePath() != "/tmp/snake-flag/"+StoreFile {
		t.Fatalf("store path: %s", cfg.StorePath())
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	chdirTemp(t)
	if err := os.WriteFile(".env", []byte("SNAKE_DIFFICULTY=hard\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	os.Unsetenv("SNAKE_DIFFICULTY")
	t.Cleanup(func() { os.Unsetenv("SNAKE_DIFFICULTY") })

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Difficulty != Hard {
		t.Fatalf("difficulty from .env: got %s want hard", cfg.Difficulty)
	}
}

func TestLoadRejectsBadEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SNAKE_MUTED", "maybe")
	if _, err := Load(nil); err == nil {
		t.Fatalf("expected error for bad SNAKE_MUTED")
	}
}
