package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for unusable values.
var ErrInvalidConfig = errors.New("invalid config")

// GameFile is the name of the root config file.
const GameFile = "game.yaml"

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads game.yaml on top of the built-in defaults and validates it.
func (l *Loader) Load() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, GameFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", GameFile, err)
	}

	cfg := Default()
	if err := Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", GameFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOverride applies the YAML file at path on top of base.
// Fields missing from the file keep their base values.
func LoadOverride(base *GameConfig, path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := *base
	cfg.World.Clouds = append([]CloudOffset(nil), base.World.Clouds...)
	if err := Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Decode unmarshals YAML into cfg.
func Decode(data []byte, cfg *GameConfig) error {
	return yaml.Unmarshal(data, cfg)
}

// Validate rejects values the game cannot run with.
func (c *GameConfig) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("%w: display size %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("%w: framerate %d", ErrInvalidConfig, c.Display.Framerate)
	}
	if c.World.Levels <= 0 {
		return fmt.Errorf("%w: levels must be positive, got %v", ErrInvalidConfig, c.World.Levels)
	}
	if c.Camera.MinZoom <= 0 || c.Camera.MinZoom > 1 {
		return fmt.Errorf("%w: minZoom %v outside (0, 1]", ErrInvalidConfig, c.Camera.MinZoom)
	}
	if c.Player.Sprite.FrameWidth <= 0 || c.Player.Sprite.FrameHeight <= 0 {
		return fmt.Errorf("%w: player sprite size", ErrInvalidConfig)
	}
	for i, cloud := range c.World.Clouds {
		for _, v := range cloud {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: cloud %d has non-finite value %v", ErrInvalidConfig, i, cloud)
			}
		}
		if cloud.Scroll() < 0 || cloud.Scroll() > 1 {
			return fmt.Errorf("%w: cloud %d scroll factor %v outside [0, 1]", ErrInvalidConfig, i, cloud.Scroll())
		}
	}
	return nil
}
