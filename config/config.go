package config

import "image/color"

// ArenaConfig describes the fixed rectangular play field
type ArenaConfig struct {
	Width  float64
	Height float64
	// Broad-phase cell size for the collision space
	CellSize int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	MaxSpeed     float64 // pixels per second at full intent
	Friction     float64 // per-second velocity retention, applied as Friction^dt
	SnapEpsilon  float64 // per-axis velocity below this snaps to zero
	Restitution  float64
	BlockingDrag float64 // velocity multiplier while blocking
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Radius       float64
	MaxHealth    float64
	MaxStamina   float64
	StaminaRegen float64 // per second
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	AttackCost       float64
	AttackCooldown   float64 // seconds
	ClashDamage      float64
	BlockDamageScale float64 // fraction of damage taken while blocking
	BlockStaminaCost float64 // stamina lost per point of incoming damage while blocking
}

// ComboConfig contains combo chain timing
type ComboConfig struct {
	Timeout      float64 // seconds
	PitchStep    float64 // combo cue pitch increase per chained hit
	ShakePerHit  float64 // screen shake added per combo count
	MinCueLength int     // combo cue plays from this count upward
}

// NetConfig contains network reconciliation configuration values
type NetConfig struct {
	DefaultAddress      string
	InterpolationFactor float64
	ReconnectDelaySecs  float64
	SendTimeoutMillis   int
	InboxSize           int
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	Max       float64
	Decay     float64 // per frame
	Intensity float64 // pixels at full shake
}

// SpawnConfig places one combatant when a match starts
type SpawnConfig struct {
	Name    string
	X, Y    float64
	Color   color.RGBA
	IsLocal bool
}

// MatchConfig contains match setup values
type MatchConfig struct {
	Spawns    []SpawnConfig
	MinPlayer int // lobby seats required before a match may start
}

// MenuConfig contains main menu layout values
type MenuConfig struct {
	Title string
	Items []MenuItemConfig
	// Half extents of a menu item's clickable area
	HitHalfWidth  float64
	HitHalfHeight float64
}

// MenuItemConfig is a single main menu entry
type MenuItemConfig struct {
	Label      string
	Identifier string
	X, Y       float64
}

// UIConfig contains HUD drawing values
type UIConfig struct {
	BarWidth       float64
	BarHeight      float64
	HealthBarColor color.RGBA
	StaminaColor   color.RGBA
	BarBgColor     color.RGBA
	BlockRingColor color.RGBA
	TickColor      color.RGBA
	ArenaColor     color.RGBA
	TextColor      color.RGBA
	Background     color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Physics PhysicsConfig
var Player PlayerConfig
var Combat CombatConfig
var Combo ComboConfig
var Net NetConfig
var ScreenShake ScreenShakeConfig
var Match MatchConfig
var Menu MenuConfig
var UI UIConfig

func init() {
	C = &Config{
		Width:  400,
		Height: 400,
		TPS:    60,
	}

	Arena = ArenaConfig{
		Width:    400,
		Height:   400,
		CellSize: 16,
	}

	Physics = PhysicsConfig{
		MaxSpeed:     200,
		Friction:     0.9,
		SnapEpsilon:  0.01,
		Restitution:  0.2,
		BlockingDrag: 0.5,
	}

	Player = PlayerConfig{
		Radius:       16,
		MaxHealth:    100,
		MaxStamina:   100,
		StaminaRegen: 10,
	}

	Combat = CombatConfig{
		AttackCost:       20,
		AttackCooldown:   0.5,
		ClashDamage:      5,
		BlockDamageScale: 0.5,
		BlockStaminaCost: 2,
	}

	Combo = ComboConfig{
		Timeout:      2,
		PitchStep:    0.1,
		ShakePerHit:  0.2,
		MinCueLength: 2,
	}

	Net = NetConfig{
		DefaultAddress:      "localhost:8080",
		InterpolationFactor: 0.1,
		ReconnectDelaySecs:  5,
		SendTimeoutMillis:   250,
		InboxSize:           64,
	}

	ScreenShake = ScreenShakeConfig{
		Max:       1,
		Decay:     0.9,
		Intensity: 5,
	}

	Match = MatchConfig{
		Spawns: []SpawnConfig{
			{Name: "Player 1", X: 100, Y: 200, Color: color.RGBA{R: 0, G: 0, B: 255, A: 255}, IsLocal: true},
			{Name: "Player 2", X: 300, Y: 200, Color: color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		},
		MinPlayer: 2,
	}

	Menu = MenuConfig{
		Title: "Shape Fighter",
		Items: []MenuItemConfig{
			{Label: "Start Game", Identifier: "start", X: 200, Y: 200},
			{Label: "Options", Identifier: "options", X: 200, Y: 250},
			{Label: "Exit", Identifier: "exit", X: 200, Y: 300},
		},
		HitHalfWidth:  50,
		HitHalfHeight: 15,
	}

	UI = UIConfig{
		BarWidth:       40,
		BarHeight:      5,
		HealthBarColor: color.RGBA{R: 0, G: 200, B: 0, A: 255},
		StaminaColor:   color.RGBA{R: 230, G: 220, B: 0, A: 255},
		BarBgColor:     color.RGBA{R: 0, G: 0, B: 0, A: 128},
		BlockRingColor: color.RGBA{R: 0, G: 255, B: 255, A: 255},
		TickColor:      color.RGBA{R: 255, G: 255, B: 0, A: 255},
		ArenaColor:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		TextColor:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Background:     color.RGBA{R: 16, G: 16, B: 24, A: 255},
	}
}
