package config

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/mazznoer/csscolorparser"
)

// Config holds application configuration
type Config struct {
	Window WindowConfig `json:"window"`
	Camera CameraConfig `json:"camera"`
	World  WorldConfig  `json:"world"`

	// Rendering parameters
	Rendering Rendering `json:"rendering"`
}

// WindowConfig contains window creation parameters
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// CameraConfig contains camera and input parameters
type CameraConfig struct {
	// FovDegrees is the vertical field of view in degrees
	FovDegrees float64 `json:"fov_degrees"`

	// MoveSpeed is camera movement per frame while a key is held
	MoveSpeed float64 `json:"move_speed"`

	// RotSpeed is rotation per frame for arrow-key look, radians
	RotSpeed float64 `json:"rot_speed"`

	// MouseSensitivity scales mouse-look deltas (per second)
	MouseSensitivity float64 `json:"mouse_sensitivity"`
}

// WorldConfig contains world generation and streaming parameters
type WorldConfig struct {
	// RenderDistance is the horizontal radius, in sectors, kept loaded
	RenderDistance int `json:"render_distance"`

	// Workers is the number of background sector loader goroutines
	Workers int `json:"workers"`

	// Dir is the directory sectors are cached in
	Dir string `json:"dir"`

	// Seed drives terrain generation
	Seed int64 `json:"seed"`
}

// Rendering contains rendering parameters
type Rendering struct {
	// ClearColor is the sky color, any CSS color string
	ClearColor string `json:"clear_color"`

	// ResourceDir is where textures are loaded from
	ResourceDir string `json:"resource_dir"`

	// StatsPort enables the debug HTTP server when non-zero
	StatsPort int `json:"stats_port"`
}

var (
	instance *Config
	once     sync.Once
	mu       sync.RWMutex
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  960,
			Height: 540,
			Title:  "sandbox",
		},
		Camera: CameraConfig{
			FovDegrees:       40.0,
			MoveSpeed:        0.05,
			RotSpeed:         0.012,
			MouseSensitivity: 0.2,
		},
		World: WorldConfig{
			RenderDistance: 4,
			Workers:        2,
			Dir:            ".world",
			Seed:           1,
		},
		Rendering: Rendering{
			ClearColor:  "black",
			ResourceDir: "res",
			StatsPort:   0, // Off by default
		},
	}
}

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		instance = DefaultConfig()
		// Try to load from file
		if data, err := os.ReadFile("config.json"); err == nil {
			json.Unmarshal(data, instance)
		}
	})
	return instance
}

// Load loads configuration from a file
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		instance = DefaultConfig()
	}

	return json.Unmarshal(data, instance)
}

// Save saves configuration to a file
func Save(path string) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		instance = DefaultConfig()
	}

	data, err := json.MarshalIndent(instance, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ClearColorRGBA parses the configured clear color. Unparseable
// values fall back to black rather than failing the frame.
func (r *Rendering) ClearColorRGBA() (red, green, blue, alpha float64) {
	c, err := csscolorparser.Parse(r.ClearColor)
	if err != nil {
		return 0, 0, 0, 1
	}
	return c.R, c.G, c.B, c.A
}
