package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single draw layer used by all renderers.
const Default = ecs.LayerID(0)

// SkierConfig contains all skier-related configuration values
type SkierConfig struct {
	// Movement
	StartingSpeed        float64 // per-tick displacement while heading downhill
	DiagonalSpeedReducer float64 // divisor applied on both axes for diagonal headings (~sqrt 2)

	// Jumping
	JumpStages       int     // discrete airborne poses per jump
	JumpStageDelayMs int     // wall-clock milliseconds between poses
	JumpArcHeight    float64 // visual sprite lift at the apex of a jump

	// Crash feedback
	CrashShakeIntensity float64
	CrashShakeDuration  int // frames
}

// ObstacleCategoryConfig describes one obstacle category the course can place.
type ObstacleCategoryConfig struct {
	Group  string // collision group: GroupRamp, GroupRock or GroupTree
	Image  string
	Weight int // relative placement weight for procedural seeding
}

// Collision groups determining what a skier hit does.
const (
	GroupRamp = "ramp"
	GroupRock = "rock"
	GroupTree = "tree"
)

// ObstacleConfig contains obstacle placement configuration
type ObstacleConfig struct {
	Categories map[string]ObstacleCategoryConfig

	// Procedural seeding as the skier descends
	SeedInterval float64 // vertical distance between placement rolls
	SeedChance   float64 // probability a roll places an obstacle
	EdgePadding  float64 // how far past the viewport edge new obstacles appear
	MinSpacing   float64 // minimum center distance between obstacles
	SafeRadius   float64 // never place inside this radius around the skier
}

// RhinoConfig contains configuration for the pursuing rhino
type RhinoConfig struct {
	AppearDistance float64 // skier descent at which the rhino spawns
	SpawnLead      float64 // how far above the skier it enters the course
	ChaseSpeed     float64 // per-tick speed; faster than any skier heading
	CatchPadding   float64 // bounds shrink applied before the catch test
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // how fast the camera follows the skier (0.0-1.0)
	LookAheadY      float64 // fixed downhill offset so the run ahead stays visible
}

// HUDConfig contains HUD layout configuration
type HUDConfig struct {
	Margin         float64
	PixelsPerMeter float64 // converts descended pixels to displayed meters
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	StatsY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TitleY          float64
	TitleBobHeight  float64 // vertical bob amplitude of the title
	HintColor       color.RGBA
}

// DebugConfig contains development convenience flags
type DebugConfig struct {
	SkipMenu bool // jump straight into a run on startup
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Skier SkierConfig
var Obstacle ObstacleConfig
var Rhino RhinoConfig
var Camera CameraConfig
var HUD HUDConfig
var Pause PauseConfig
var GameOver GameOverConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Snow         = color.RGBA{R: 236, G: 242, B: 248, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	SkyBlue      = color.RGBA{R: 120, G: 180, B: 235, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Skier = SkierConfig{
		StartingSpeed:        10.0,
		DiagonalSpeedReducer: 1.4142,

		JumpStages:       5,
		JumpStageDelayMs: 200,
		JumpArcHeight:    24.0,

		CrashShakeIntensity: 4.0,
		CrashShakeDuration:  8,
	}

	Obstacle = ObstacleConfig{
		Categories: map[string]ObstacleCategoryConfig{
			"tree":         {Group: GroupTree, Image: "tree_1", Weight: 4},
			"tree_cluster": {Group: GroupTree, Image: "tree_cluster", Weight: 2},
			"rock_1":       {Group: GroupRock, Image: "rock_1", Weight: 2},
			"rock_2":       {Group: GroupRock, Image: "rock_2", Weight: 2},
			"jump_ramp":    {Group: GroupRamp, Image: "jump_ramp", Weight: 1},
		},

		SeedInterval: 8.0,
		SeedChance:   0.125,
		EdgePadding:  48.0,
		MinSpacing:   72.0,
		SafeRadius:   160.0,
	}

	Rhino = RhinoConfig{
		AppearDistance: 6000.0,
		SpawnLead:      500.0,
		ChaseSpeed:     10.5, // slightly above StartingSpeed so it always closes
		CatchPadding:   8.0,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.12,
		LookAheadY:      80.0,
	}

	HUD = HUDConfig{
		Margin:         10.0,
		PixelsPerMeter: 20.0,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Restart", "Main Menu"},
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            80,
		StatsY:            130,
		MenuStartY:        190,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Retry", "Main Menu"},
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      BrightOrange,
		TitleY:          60,
		TitleBobHeight:  6,
		HintColor:       White,
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}
