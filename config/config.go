package config

import (
	"image/color"
	"time"
)

// Design resolution every level layout and tuning value is authored against.
const (
	BaseWidth  = 800
	BaseHeight = 500
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	// Ticks per second; all per-frame speeds below assume this rate.
	TickRate int
}

// WorldConfig describes the fixed parts of every level, in design units.
type WorldConfig struct {
	GroundHeight float64
	WallWidth    float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Width  float64
	Height float64

	// Movement, per frame in design units
	MoveSpeed    float64
	JumpSpeed    float64 // applied upward
	Gravity      float64
	MaxFallSpeed float64

	// Lives
	StartingLives int
	MaxLives      int
}

// ProjectileConfig contains the player's ranged attack tuning
type ProjectileConfig struct {
	Cooldown time.Duration
	MaxLive  int
	Range    float64
	Speed    float64
	Width    float64
	Height   float64
}

// EnemyConfig contains patrol enemy tuning
type EnemyConfig struct {
	Size           float64
	PatrolSpeed    float64
	StartDirection float64
}

// CollectibleConfig contains pickup tuning
type CollectibleConfig struct {
	Size       float64
	LifeReward int
}

// PortalConfig places the level exit relative to the right edge and ground.
type PortalConfig struct {
	RightOffset float64
	Width       float64
	Height      float64
	// Seconds the materialize tween takes; cosmetic only.
	GrowSeconds float32
}

// BossConfig contains boss placement and the fixed fall speed. Per-fight
// tuning (hit points, jump, gravity...) lives in the level template.
type BossConfig struct {
	Size        float64
	RightMargin float64
	FallSpeed   float64
	// Seconds the HP bar takes to ease toward the real value.
	BarEaseSeconds float32
}

// HazardConfig contains shockwave tuning
type HazardConfig struct {
	Speed      float64
	Life       int
	Height     float64
	StartWidth float64
}

// SessionConfig contains run and name-entry rules
type SessionConfig struct {
	MaxNameLength  int
	MaxEmailLength int
	DefaultName    string
}

// LeaderboardConfig contains result reporting settings
type LeaderboardConfig struct {
	URL           string
	SubmitTimeout time.Duration
	FetchTimeout  time.Duration
}

// UIConfig contains colors and optional presentation assets
type UIConfig struct {
	Background       color.RGBA
	Panel            color.RGBA
	Ground           color.RGBA
	Platform         color.RGBA
	Player           color.RGBA
	Enemy            color.RGBA
	Collectible      color.RGBA
	Portal           color.RGBA
	Projectile       color.RGBA
	Boss             color.RGBA
	Hazard           color.RGBA
	BossBarBack      color.RGBA
	BossBarFill      color.RGBA
	Text             color.RGBA
	Level2Background string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu  bool   // Skip menu and name entry, start a run as "Player"
	LevelsDir string // Load and hot reload TMX levels from this directory
}

// Global configuration instances
var C *Config
var World WorldConfig
var Player PlayerConfig
var Projectile ProjectileConfig
var Enemy EnemyConfig
var Collectible CollectibleConfig
var Portal PortalConfig
var Boss BossConfig
var Hazard HazardConfig
var Session SessionConfig
var Leaderboard LeaderboardConfig
var UI UIConfig
var Debug DebugConfig

// Direction constants for facing and travel
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:    1280,
		Height:   720,
		TickRate: 60,
	}

	World = WorldConfig{
		GroundHeight: 40,
		WallWidth:    12,
	}

	Player = PlayerConfig{
		Width:  40,
		Height: 50,

		MoveSpeed:    5,
		JumpSpeed:    16,
		Gravity:      0.6,
		MaxFallSpeed: 14,

		StartingLives: 3,
		MaxLives:      5,
	}

	Projectile = ProjectileConfig{
		Cooldown: 1000 * time.Millisecond,
		MaxLive:  5,
		Range:    220,
		Speed:    10,
		Width:    10,
		Height:   5,
	}

	Enemy = EnemyConfig{
		Size:           40,
		PatrolSpeed:    2,
		StartDirection: DirectionLeft,
	}

	Collectible = CollectibleConfig{
		Size:       20,
		LifeReward: 1,
	}

	Portal = PortalConfig{
		RightOffset: 80,
		Width:       40,
		Height:      80,
		GrowSeconds: 0.4,
	}

	Boss = BossConfig{
		Size:           100,
		RightMargin:    120,
		FallSpeed:      16,
		BarEaseSeconds: 0.25,
	}

	Hazard = HazardConfig{
		Speed:      10,
		Life:       35,
		Height:     14,
		StartWidth: 1,
	}

	Session = SessionConfig{
		MaxNameLength:  20,
		MaxEmailLength: 40,
		DefaultName:    "Player",
	}

	Leaderboard = LeaderboardConfig{
		URL:           "http://127.0.0.1:5000",
		SubmitTimeout: 1 * time.Second,
		FetchTimeout:  5 * time.Second,
	}

	UI = UIConfig{
		Background:       color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Panel:            color.RGBA{R: 60, G: 60, B: 60, A: 255},
		Ground:           color.RGBA{R: 60, G: 255, B: 60, A: 255},
		Platform:         color.RGBA{R: 80, G: 200, B: 255, A: 255},
		Player:           color.RGBA{R: 80, G: 200, B: 255, A: 255},
		Enemy:            color.RGBA{R: 220, G: 60, B: 60, A: 255},
		Collectible:      color.RGBA{R: 255, G: 220, B: 0, A: 255},
		Portal:           color.RGBA{R: 180, G: 0, B: 255, A: 255},
		Projectile:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Boss:             color.RGBA{R: 120, G: 150, B: 255, A: 255},
		Hazard:           color.RGBA{R: 255, G: 120, B: 120, A: 255},
		BossBarBack:      color.RGBA{R: 220, G: 60, B: 60, A: 255},
		BossBarFill:      color.RGBA{R: 80, G: 220, B: 120, A: 255},
		Text:             color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Level2Background: "background_1.jpg",
	}
}
