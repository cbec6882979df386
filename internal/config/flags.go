package config

import "github.com/spf13/pflag"

// Flags holds CLI overrides registered on a FlagSet. Only flags the user
// actually set are applied.
type Flags struct {
	fs *pflag.FlagSet

	ConfigPath string
	Debug      bool
	LogLevel   string
	LogFile    string
	FOV        float32
	Aspect     float32
	Distance   float32
	ShowBounds bool
	NoAutoFit  bool
	NoLight    bool
}

// RegisterFlags adds the config flags to fs.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Write logs to this file")
	fs.Float32Var(&f.FOV, "fov", 0, "Vertical field of view in degrees")
	fs.Float32Var(&f.Aspect, "aspect", 0, "Viewport aspect ratio")
	fs.Float32Var(&f.Distance, "distance", 0, "Camera orbit distance")
	fs.BoolVar(&f.ShowBounds, "bounds", false, "Draw bounding box wireframes")
	fs.BoolVar(&f.NoAutoFit, "no-auto-fit", false, "Keep the configured camera distance")
	fs.BoolVar(&f.NoLight, "no-light", false, "Draw edges unlit")
	return f
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	changed := f.fs.Changed

	if changed("debug") && f.Debug {
		cfg.Logging.Level = "debug"
	}
	if changed("log-level") {
		cfg.Logging.Level = f.LogLevel
	}
	if changed("log-file") {
		cfg.Logging.LogFile = f.LogFile
	}
	if changed("fov") {
		cfg.Camera.FOV = f.FOV
	}
	if changed("aspect") {
		cfg.Camera.Aspect = f.Aspect
	}
	if changed("distance") {
		cfg.Camera.Distance = f.Distance
	}
	if changed("bounds") {
		cfg.Scene.ShowBounds = f.ShowBounds
	}
	if changed("no-auto-fit") && f.NoAutoFit {
		cfg.Camera.AutoFit = false
	}
	if changed("no-light") && f.NoLight {
		cfg.Lighting.Enabled = false
	}
}
