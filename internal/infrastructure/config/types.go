package config

import "time"

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display   DisplayConfig   `yaml:"display"`
	World     WorldConfig     `yaml:"world"`
	Camera    CameraConfig    `yaml:"camera"`
	Physics   PhysicsSettings `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Autopilot AutopilotConfig `yaml:"autopilot"`
}

type DisplayConfig struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Framerate    int    `yaml:"framerate"`
	Resizable    bool   `yaml:"resizable"`
}

// WorldConfig holds the scenery layout and the opening camera move.
type WorldConfig struct {
	// Levels sets the starting camera altitude (in viewport heights) and the
	// sky's vertical offset.
	Levels float64 `yaml:"levels"`
	// Clouds lists one [xOffset, yOffset, scrollFactor] triple per cloud.
	Clouds       []CloudOffset `yaml:"clouds"`
	SettleDelay  time.Duration `yaml:"settleDelay"`
	SettleOffset float64       `yaml:"settleOffset"`
}

// CloudOffset places a cloud relative to the viewport centre:
// x = cx + cx*X, y = cy + cy*Y*density. Scroll is its vertical parallax factor.
type CloudOffset [3]float64

func (c CloudOffset) X() float64      { return c[0] }
func (c CloudOffset) Y() float64      { return c[1] }
func (c CloudOffset) Scroll() float64 { return c[2] }

type CameraConfig struct {
	ScrollDuration  time.Duration `yaml:"scrollDuration"`
	ZoomDuration    time.Duration `yaml:"zoomDuration"`
	ZoomOutDuration time.Duration `yaml:"zoomOutDuration"`
	ZoomPerScore    float64       `yaml:"zoomPerScore"`
	ZoomScoreCap    int           `yaml:"zoomScoreCap"`
	MinZoom         float64       `yaml:"minZoom"`
	ZoomOutScale    float64       `yaml:"zoomOutScale"`
	// FollowLerp is the fraction of the remaining distance covered per frame.
	FollowLerp float64 `yaml:"followLerp"`
}

type PhysicsSettings struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
	Substeps     int     `yaml:"substeps"`
}

type PlayerConfig struct {
	Sprite    SpriteConfig  `yaml:"sprite"`
	Hitbox    Rect          `yaml:"hitbox"`
	JumpForce float64       `yaml:"jumpForce"`
	DeathSpin time.Duration `yaml:"deathSpin"`
}

type SpriteConfig struct {
	FrameWidth  int `yaml:"frameWidth"`
	FrameHeight int `yaml:"frameHeight"`
}

type Rect struct {
	OffsetX int `yaml:"offsetX"`
	OffsetY int `yaml:"offsetY"`
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
}

// AutopilotConfig tunes the demo-mode jumper.
type AutopilotConfig struct {
	// TriggerDistance is how close (pixels) the target run's leading edge
	// gets to the player's hitbox before the autopilot jumps.
	TriggerDistance float64 `yaml:"triggerDistance"`
	// LeadTime widens the trigger for fast runs: the autopilot also jumps
	// when the run would close the gap within this time.
	LeadTime time.Duration `yaml:"leadTime"`
}
