package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Scene.Objects) != 4 {
		t.Fatalf("expected 4 default objects, got %d", len(cfg.Scene.Objects))
	}
	want := []string{PrimitivePlane, PrimitiveCube, PrimitiveSphere, PrimitiveCylinder}
	for i, obj := range cfg.Scene.Objects {
		if obj.Primitive != want[i] {
			t.Errorf("object %d: expected primitive %s, got %s", i, want[i], obj.Primitive)
		}
		if obj.Name == "" {
			t.Errorf("object %d has no name", i)
		}
	}
	if cfg.Scene.ShowBounds {
		t.Error("expected show_bounds to be false by default")
	}

	if cfg.Camera.FOV != 60 {
		t.Errorf("expected fov 60, got %g", cfg.Camera.FOV)
	}
	if cfg.Camera.Near != 0.1 || cfg.Camera.Far != 100 {
		t.Errorf("expected clip range 0.1..100, got %g..%g", cfg.Camera.Near, cfg.Camera.Far)
	}
	if !cfg.Camera.AutoFit {
		t.Error("expected auto_fit to be true by default")
	}

	if !cfg.Lighting.Enabled || cfg.Lighting.Ambient != 0.25 {
		t.Errorf("unexpected default lighting: %+v", cfg.Lighting)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
scene:
  show_bounds: true
  objects:
    - name: tower
      primitive: cylinder
      radius: 1.5
      height: 4
      segments: 32
      transform:
        translate: [1, 2, 3]
        rotate: [0, 90, 0]
        scale: [2, 2, 2]
    - name: marker
      primitive: sphere
      recompute_normals: true

camera:
  fov: 75
  near: 0.5
  far: 500
  aspect: 1.5
  distance: 12
  pitch: 10
  yaw: -30
  auto_fit: false

logging:
  level: "debug"
  log_file: "term3d.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if !cfg.Scene.ShowBounds {
		t.Error("expected show_bounds to be true")
	}
	if len(cfg.Scene.Objects) != 2 {
		t.Fatalf("expected file objects to replace defaults, got %d objects", len(cfg.Scene.Objects))
	}

	tower := cfg.Scene.Objects[0]
	if tower.Primitive != PrimitiveCylinder || tower.Radius != 1.5 || tower.Height != 4 || tower.Segments != 32 {
		t.Errorf("unexpected tower: %+v", tower)
	}
	if tower.Transform.Translate != [3]float32{1, 2, 3} {
		t.Errorf("expected translate [1 2 3], got %v", tower.Transform.Translate)
	}
	if tower.Transform.Rotate != [3]float32{0, 90, 0} {
		t.Errorf("expected rotate [0 90 0], got %v", tower.Transform.Rotate)
	}
	if tower.Transform.Scale != [3]float32{2, 2, 2} {
		t.Errorf("expected scale [2 2 2], got %v", tower.Transform.Scale)
	}

	marker := cfg.Scene.Objects[1]
	if !marker.RecomputeNormals {
		t.Error("expected marker to recompute normals")
	}
	if marker.Transform.Scale != [3]float32{} {
		t.Errorf("expected zero scale when omitted, got %v", marker.Transform.Scale)
	}

	if cfg.Camera.FOV != 75 || cfg.Camera.Far != 500 || cfg.Camera.AutoFit {
		t.Errorf("unexpected camera: %+v", cfg.Camera)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "term3d.log" {
		t.Errorf("expected log file 'term3d.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileKeepsUnsetSections(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("camera:\n  fov: 90\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Camera.FOV != 90 {
		t.Errorf("expected fov 90, got %g", cfg.Camera.FOV)
	}
	if cfg.Camera.Near != 0.1 {
		t.Errorf("expected default near 0.1, got %g", cfg.Camera.Near)
	}
	if len(cfg.Scene.Objects) != 4 {
		t.Errorf("expected default objects to survive, got %d", len(cfg.Scene.Objects))
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
camera:
  fov: not a number
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
	if err := loadFromFile(cfg, "/nonexistent/path/term3d.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fov", func(c *Config) { c.Camera.FOV = 0 }},
		{"straight fov", func(c *Config) { c.Camera.FOV = 180 }},
		{"zero near", func(c *Config) { c.Camera.Near = 0 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }},
		{"negative aspect", func(c *Config) { c.Camera.Aspect = -1 }},
		{"unknown primitive", func(c *Config) { c.Scene.Objects[1].Primitive = "teapot" }},
		{"ambient above one", func(c *Config) { c.Lighting.Ambient = 1.5 }},
		{"latitude below horizon limit", func(c *Config) { c.Lighting.Latitude = -100 }},
		{"negative point intensity", func(c *Config) {
			c.Lighting.Points = []PointLightConfig{{Range: 5, Intensity: -1}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
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
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	testChdir(t, t.TempDir())

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(FileName, []byte("camera:\n  fov: 50\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(*testing.T, *Config)
	}{
		{
			name: "no flags",
			args: nil,
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Camera.FOV != 60 || cfg.Logging.Level != "info" || !cfg.Camera.AutoFit {
					t.Errorf("expected defaults untouched, got %+v", cfg)
				}
			},
		},
		{
			name: "debug flag",
			args: []string{"--debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "log flags",
			args: []string{"--log-level", "warn", "--log-file", "out.log"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "warn" || cfg.Logging.LogFile != "out.log" {
					t.Errorf("unexpected logging config: %+v", cfg.Logging)
				}
			},
		},
		{
			name: "camera flags",
			args: []string{"--fov", "45", "--aspect", "1.25", "--distance", "20", "--no-auto-fit"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Camera.FOV != 45 || cfg.Camera.Aspect != 1.25 || cfg.Camera.Distance != 20 {
					t.Errorf("unexpected camera config: %+v", cfg.Camera)
				}
				if cfg.Camera.AutoFit {
					t.Error("expected auto_fit to be disabled")
				}
			},
		},
		{
			name: "no light flag",
			args: []string{"--no-light"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Lighting.Enabled {
					t.Error("expected lighting to be disabled")
				}
			},
		},
		{
			name: "bounds flag",
			args: []string{"--bounds"},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Scene.ShowBounds {
					t.Error("expected show_bounds to be enabled")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags := RegisterFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("failed to parse flags: %v", err)
			}

			cfg := Default()
			flags.apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
camera:
  fov: 50
  far: 250
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	if err := fs.Parse([]string{"--config", configPath, "--fov", "70"}); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}

	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// fov from flag, not file
	if cfg.Camera.FOV != 70 {
		t.Errorf("expected fov 70 from flag, got %g", cfg.Camera.FOV)
	}
	// far from file since no flag override
	if cfg.Camera.Far != 250 {
		t.Errorf("expected far 250 from file, got %g", cfg.Camera.Far)
	}
	// near from defaults
	if cfg.Camera.Near != 0.1 {
		t.Errorf("expected default near 0.1, got %g", cfg.Camera.Near)
	}
}

func TestLoadErrors(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("camera:\n  fov: 200\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	if err := fs.Parse([]string{"--config", configPath}); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	if _, err := Load(flags); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}

	missing := filepath.Join(tmpDir, "missing.yaml")
	flags.ConfigPath = missing
	if _, err := Load(flags); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Camera.FOV = 42
	cfg.Scene.Objects[0].Transform.Translate = [3]float32{1, 2, 3}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := &Config{}
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Camera.FOV != 42 {
		t.Errorf("expected fov 42, got %g", loaded.Camera.FOV)
	}
	if len(loaded.Scene.Objects) != len(cfg.Scene.Objects) {
		t.Fatalf("expected %d objects, got %d", len(cfg.Scene.Objects), len(loaded.Scene.Objects))
	}
	if got := loaded.Scene.Objects[0].Transform.Translate; got != [3]float32{1, 2, 3} {
		t.Errorf("expected translate [1 2 3], got %v", got)
	}
}
