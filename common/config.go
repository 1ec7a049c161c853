package common

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable the game reads. Values are set once at startup
// and never mutated afterwards; the simulation only ever sees this struct.
type Config struct {
	// Window
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	Title        string `yaml:"title"`

	// Physics. Velocities are in pixels per tick; gravity in pixels per
	// tick squared. Position integration is fixed-step (one velocity unit
	// per tick) while the input timers below count real seconds.
	Gravity   float64 `yaml:"gravity"`
	JumpVel   float64 `yaml:"jump_vel"`
	DashVel   float64 `yaml:"dash_vel"`
	MoveSpeed float64 `yaml:"move_speed"`
	MaxJumps  int     `yaml:"max_jumps"`

	// Input grace windows, in seconds.
	CoyoteTime     float64 `yaml:"coyote_time"`
	JumpBufferTime float64 `yaml:"jump_buffer_time"`
	DashBufferTime float64 `yaml:"dash_buffer_time"`

	TileSize int `yaml:"tile_size"`

	// Camera
	CameraMargin  int     `yaml:"camera_margin"`
	CameraEdgePad int     `yaml:"camera_edge_pad"`
	MinZoom       float64 `yaml:"min_zoom"`
	MaxZoom       float64 `yaml:"max_zoom"`
	ZoomStep      float64 `yaml:"zoom_step"`

	// Assets. Empty paths fall back to DefaultAssetDir derived names; a
	// missing sheet is generated in memory instead of failing.
	UseSprites  bool   `yaml:"use_sprites"`
	SheetPath   string `yaml:"sheet_path"`
	MetaPath    string `yaml:"meta_path"`
	TilesetPath string `yaml:"tileset_path"`
}

// DefaultConfig returns the stock tuning for the demo level.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:    1920,
		ScreenHeight:   1080,
		Title:          "ByteBuddy Platformer",
		Gravity:        0.5,
		JumpVel:        -12,
		DashVel:        75,
		MoveSpeed:      5,
		MaxJumps:       2,
		CoyoteTime:     0.12,
		JumpBufferTime: 0.12,
		DashBufferTime: 0.2,
		TileSize:       48,
		CameraMargin:   200,
		CameraEdgePad:  512,
		MinZoom:        0.4,
		MaxZoom:        3.0,
		ZoomStep:       0.9,
		UseSprites:     true,
	}
}

// LoadConfig reads a YAML file and overlays it on the defaults. Fields not
// present in the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultAssetDir returns the per-user cache directory where generated
// spritesheets live (shared with cmd/assetgen).
func DefaultAssetDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return "assets"
	}
	return filepath.Join(base, "platformer")
}

// ResolveAssetPaths fills empty asset path fields from DefaultAssetDir.
func (c *Config) ResolveAssetPaths() {
	dir := DefaultAssetDir()
	if c.SheetPath == "" {
		c.SheetPath = filepath.Join(dir, "bytebuddy_spritesheet.png")
	}
	if c.MetaPath == "" {
		c.MetaPath = filepath.Join(dir, "bytebuddy_meta.json")
	}
	if c.TilesetPath == "" {
		c.TilesetPath = filepath.Join(dir, "bytebuddy_tileset.png")
	}
}

// PlayerSize returns the collision AABB size for the given tile size.
func PlayerSize(tileSize int) (w, h int) {
	return int(float64(tileSize) * 0.8), int(float64(tileSize) * 0.9)
}
