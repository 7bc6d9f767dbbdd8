// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Input    InputConfig    `yaml:"input"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// InputConfig holds input tuning.
type InputConfig struct {
	OrbitStep float32 `yaml:"orbit_step"` // per key press/repeat, radians or units
}

// ViewerConfig holds the initial viewer state.
type ViewerConfig struct {
	Shading      string `yaml:"shading"`      // gouraud, phong or normals
	Projection   string `yaml:"projection"`   // perspective or orthographic
	NormalMode   string `yaml:"normal_mode"`  // face or smooth
	MaterialName string `yaml:"material"`     // palette entry to start with
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1024,
			Height: 768,
			VSync:  true,
		},
		Input: InputConfig{
			OrbitStep: 0.05,
		},
		Viewer: ViewerConfig{
			Shading:    "gouraud",
			Projection: "perspective",
			NormalMode: "smooth",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
