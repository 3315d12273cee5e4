// Package config handles loading and defaulting of renderer settings.
package config

// Config holds all terravox settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	World    WorldConfig    `yaml:"world"`
	Atlas    AtlasConfig    `yaml:"atlas"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width    int  `yaml:"width"`
	Height   int  `yaml:"height"`
	VSync    bool `yaml:"vsync"`
	FPSLimit int  `yaml:"fps_limit"` // 0 means uncapped
}

// WorldConfig holds terrain generation settings.
type WorldConfig struct {
	Seed       int64   `yaml:"seed"`
	ChunkGrid  int     `yaml:"chunk_grid"` // chunks per side of the generated square
	NoiseScale float64 `yaml:"noise_scale"`
	HeightMin  float64 `yaml:"height_min"`
	HeightMax  float64 `yaml:"height_max"`
}

// AtlasConfig holds texture atlas settings.
type AtlasConfig struct {
	Path string `yaml:"path"` // empty means the built-in fallback atlas
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
			Width:    1280,
			Height:   720,
			VSync:    true,
			FPSLimit: 0,
		},
		World: WorldConfig{
			Seed:       1234,
			ChunkGrid:  2,
			NoiseScale: 50,
			HeightMin:  0,
			HeightMax:  15,
		},
		Atlas: AtlasConfig{
			Path: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
