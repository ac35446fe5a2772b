package config

import "time"

// Default returns the built-in configuration. It matches configs/game.yaml.
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			Title:        "Sky Jump",
			ScreenWidth:  480,
			ScreenHeight: 800,
			Framerate:    60,
			Resizable:    true,
		},
		World: WorldConfig{
			Levels: 5,
			Clouds: []CloudOffset{
				{-0.6, -1.2, 0.3},
				{0.5, -2.6, 0.4},
				{-0.3, -4.4, 0.5},
				{0.7, -6.0, 0.6},
				{-0.7, -7.8, 0.7},
				{0.2, -9.5, 0.8},
			},
			SettleDelay:  500 * time.Millisecond,
			SettleOffset: 182,
		},
		Camera: CameraConfig{
			ScrollDuration:  2500 * time.Millisecond,
			ZoomDuration:    500 * time.Millisecond,
			ZoomOutDuration: 1500 * time.Millisecond,
			ZoomPerScore:    0.004,
			ZoomScoreCap:    50,
			MinZoom:         0.25,
			ZoomOutScale:    1000,
			FollowLerp:      0.1,
		},
		Physics: PhysicsSettings{
			Gravity:      2400,
			MaxFallSpeed: 1600,
			Substeps:     4,
		},
		Player: PlayerConfig{
			Sprite:    SpriteConfig{FrameWidth: 70, FrameHeight: 108},
			Hitbox:    Rect{OffsetX: 15, OffsetY: 8, Width: 40, Height: 100},
			JumpForce: 1000,
			DeathSpin: 1200 * time.Millisecond,
		},
		Autopilot: AutopilotConfig{
			TriggerDistance: 24,
			LeadTime:        150 * time.Millisecond,
		},
	}
}
