package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/gravflip/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded YAML differs from DefaultGameConfig():\n got  %+v\n want %+v", cfg, DefaultGameConfig())
	}
}

func TestDefaultGeometry(t *testing.T) {
	cfg := DefaultGameConfig()

	platforms := cfg.PlatformRects()
	expected := []core.Rect{
		core.NewRect(0, 650, 1000, 50),
		core.NewRect(150, 550, 200, 20),
		core.NewRect(400, 450, 200, 20),
		core.NewRect(200, 350, 200, 20),
		core.NewRect(500, 250, 200, 20),
		core.NewRect(300, 150, 200, 20),
	}
	if !reflect.DeepEqual(platforms, expected) {
		t.Errorf("PlatformRects() = %v, expected %v", platforms, expected)
	}

	if got := cfg.Obstacles[0].Resolve(cfg.Screen); got != core.NewRect(160, 510, 40, 40) {
		t.Errorf("obstacle 0 = %v", got)
	}
	if got := cfg.Obstacles[1].Resolve(cfg.Screen); got != core.NewRect(520, 210, 40, 40) {
		t.Errorf("obstacle 1 = %v", got)
	}
	if got := cfg.GoalRect(); got != core.NewRect(720, 40, 40, 40) {
		t.Errorf("GoalRect() = %v", got)
	}
	if got := cfg.StartButtonRect(); got != core.NewRect(400, 450, 200, 60) {
		t.Errorf("StartButtonRect() = %v", got)
	}
	if got := cfg.SpawnRect(); got != core.NewRect(100, 620, 90, 90) {
		t.Errorf("SpawnRect() = %v", got)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 0.75\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.75 {
		t.Errorf("Gravity = %g, expected 0.75", cfg.Physics.Gravity)
	}
	if cfg.Physics.PlayerSpeed != 5 {
		t.Errorf("PlayerSpeed should keep default 5, got %d", cfg.Physics.PlayerSpeed)
	}
	if len(cfg.Platforms) != 6 {
		t.Errorf("Platforms should keep defaults, got %d", len(cfg.Platforms))
	}
}

func TestParseListReplacesDefaults(t *testing.T) {
	doc := []byte(`
platforms:
  - { x: 0, y: 40, h: 40, full_width: true, from_bottom: true }
obstacles: []
`)
	cfg, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if len(cfg.Platforms) != 1 {
		t.Errorf("expected 1 platform, got %d", len(cfg.Platforms))
	}
	if len(cfg.Obstacles) != 0 {
		t.Errorf("expected no obstacles, got %d", len(cfg.Obstacles))
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code string
	}{
		{"zero gravity", "physics:\n  gravity: 0\n", "INVALID_PHYSICS"},
		{"no platforms", "platforms: []\n", "NO_PLATFORMS"},
		{"bad direction", "obstacles:\n  - { x: 1, y: 1, w: 5, h: 5, direction: 2 }\n", "INVALID_DIRECTION"},
		{"bad screen", "screen:\n  width: 0\n", "INVALID_SCREEN"},
		{"player wider than screen", "player:\n  width: 2000\n", "INVALID_PLAYER"},
		{"negative cooldown", "physics:\n  flip_cooldown: -1\n", "INVALID_PHYSICS"},
		{"flat platform", "platforms:\n  - { x: 0, y: 10, w: 50, h: 0 }\n", "INVALID_PLATFORM"},
		{"empty goal", "goal: { x: 10, y: 10, w: 0, h: 40 }\n", "INVALID_GOAL"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Code != tc.code {
				t.Errorf("Code = %q, expected %q", verr.Code, tc.code)
			}
		})
	}
}

func TestParseAcceptsManyPlatforms(t *testing.T) {
	doc := "platforms:\n"
	for i := range 12 {
		doc += fmt.Sprintf("  - { x: %d, y: 400, w: 30, h: 10 }\n", i*60)
	}
	doc += "obstacles: []\n"

	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(cfg.Platforms) != 12 || len(cfg.Obstacles) != 0 {
		t.Errorf("got %d platforms and %d obstacles", len(cfg.Platforms), len(cfg.Obstacles))
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.yaml")
	if err := os.WriteFile(path, []byte("goal: { x: 10, y: 10, w: 20, h: 20 }\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.GoalRect() != core.NewRect(10, 10, 20, 20) {
		t.Errorf("GoalRect() = %v", cfg.GoalRect())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}
}

func TestLoadSearchPath(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on the search path: embedded defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Error("Load() with empty search path should return defaults")
	}

	// Local configs directory wins over embedded defaults
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	local := filepath.Join(work, "configs", FileName)
	if err := os.WriteFile(local, []byte("physics:\n  player_speed: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.PlayerSpeed != 7 {
		t.Errorf("PlayerSpeed = %d, expected 7 from local config", cfg.Physics.PlayerSpeed)
	}

	// User config wins over local
	userDir := filepath.Join(home, ".gravflip", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, FileName), []byte("physics:\n  player_speed: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.PlayerSpeed != 9 {
		t.Errorf("PlayerSpeed = %d, expected 9 from user config", cfg.Physics.PlayerSpeed)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultGameConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Error("marshalled defaults should parse back to the defaults")
	}
}
