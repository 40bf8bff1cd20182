package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Camera.FovY != 75 || cfg.Camera.Near != 0.1 || cfg.Camera.Far != 1000 {
		t.Errorf("expected camera 75/0.1/1000, got %v/%v/%v", cfg.Camera.FovY, cfg.Camera.Near, cfg.Camera.Far)
	}
	if cfg.Camera.Position != [3]float32{0, 5, 5} {
		t.Errorf("expected camera at (0,5,5), got %v", cfg.Camera.Position)
	}

	if cfg.Scene.ModelName != "Soldier" || cfg.Scene.Clip != "Walk" {
		t.Errorf("expected Soldier/Walk, got %s/%s", cfg.Scene.ModelName, cfg.Scene.Clip)
	}
	if cfg.Scene.GroundSize != 100 || cfg.Scene.GridDivisions != 100 {
		t.Errorf("expected 100/100 ground, got %v/%d", cfg.Scene.GroundSize, cfg.Scene.GridDivisions)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

camera:
  fov: 60
  position: [1, 2, 3]

scene:
  model: "models/Soldier.glb"
  clip: "Run"
  fade_in: 0.5
  skybox_period: 30

assets:
  dirs: ["a", "b"]

logging:
  level: "debug"
  log_file: "demo.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen || cfg.Window.VSync {
		t.Error("expected fullscreen on and vsync off")
	}
	if cfg.Camera.FovY != 60 {
		t.Errorf("expected fov 60, got %v", cfg.Camera.FovY)
	}
	if cfg.Camera.Position != [3]float32{1, 2, 3} {
		t.Errorf("expected position (1,2,3), got %v", cfg.Camera.Position)
	}
	// Values absent from the file keep their defaults.
	if cfg.Camera.Far != 1000 {
		t.Errorf("expected far 1000 from defaults, got %v", cfg.Camera.Far)
	}
	if cfg.Scene.Model != "models/Soldier.glb" || cfg.Scene.Clip != "Run" {
		t.Errorf("expected models/Soldier.glb/Run, got %s/%s", cfg.Scene.Model, cfg.Scene.Clip)
	}
	if cfg.Scene.ModelName != "Soldier" {
		t.Errorf("expected model_name default Soldier, got %s", cfg.Scene.ModelName)
	}
	if cfg.Scene.FadeIn != 0.5 || cfg.Scene.SkyboxPeriod != 30 {
		t.Errorf("expected fade_in 0.5 skybox_period 30, got %v %v", cfg.Scene.FadeIn, cfg.Scene.SkyboxPeriod)
	}
	if len(cfg.Assets.Dirs) != 2 {
		t.Errorf("expected 2 asset dirs, got %v", cfg.Assets.Dirs)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "demo.log" {
		t.Errorf("expected debug/demo.log, got %s/%s", cfg.Logging.Level, cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -1 }},
		{"zero fov", func(c *Config) { c.Camera.FovY = 0 }},
		{"fov 180", func(c *Config) { c.Camera.FovY = 180 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.01 }},
		{"empty model name", func(c *Config) { c.Scene.ModelName = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
	if filepath.Dir(DefaultPath()) != dir {
		t.Errorf("DefaultPath %s should live in ConfigDir %s", DefaultPath(), dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if _, err := os.Stat(DefaultPath()); err == nil {
		t.Skip("a per-user config exists on this machine")
	}

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Window.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "model flag",
			setup: func() { *flagModel = "other.glb" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Model != "other.glb" {
					t.Errorf("expected model other.glb, got %s", cfg.Scene.Model)
				}
			},
			teardown: func() { *flagModel = "" },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("camera:\n  near: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected validation error for near=0")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Clip = "Idle"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Scene.Clip != "Idle" {
		t.Errorf("expected clip Idle after reload, got %s", loaded.Scene.Clip)
	}
}

func TestSavePathFlag(t *testing.T) {
	if SavePath() != "" {
		t.Fatalf("expected no save path by default, got %s", SavePath())
	}
	*flagSave = filepath.Join(t.TempDir(), "out.yaml")
	defer func() { *flagSave = "" }()

	if SavePath() != *flagSave {
		t.Errorf("expected save path %s, got %s", *flagSave, SavePath())
	}
}
