package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the config file and exit")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagBackend    = flag.String("backend", "", "Window backend (sdl, glfw)")
	flagGridSize   = flag.Int("grid-size", 0, "Terrain mesh resolution")
	flagScale      = flag.Float64("scale", 0, "World spacing between terrain samples")
	flagAmplitude  = flag.Float64("amplitude", 0, "Vertical exaggeration")
	flagNoise      = flag.String("noise", "", "Noise algorithm (perlin, simplex)")
	flagSeed       = flag.Int64("seed", 0, "Noise seed")
)

// givenFlags holds the names of the flags present on the command line.
// Zero is a valid value for several flags, so presence decides the override.
var givenFlags = map[string]bool{}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
	givenFlags = map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		givenFlags[f.Name] = true
	})
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if givenFlags["width"] {
		cfg.Graphics.Width = *flagWidth
	}
	if givenFlags["height"] {
		cfg.Graphics.Height = *flagHeight
	}
	if givenFlags["backend"] {
		cfg.Graphics.Backend = *flagBackend
	}
	if givenFlags["grid-size"] {
		cfg.Terrain.GridSize = *flagGridSize
	}
	if givenFlags["scale"] {
		cfg.Terrain.Scale = *flagScale
	}
	if givenFlags["amplitude"] {
		cfg.Terrain.Amplitude = *flagAmplitude
	}
	if givenFlags["noise"] {
		cfg.Noise.Algorithm = *flagNoise
	}
	if givenFlags["seed"] {
		cfg.Noise.Seed = *flagSeed
	}
}
