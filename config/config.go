package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render/update layer used by every entity.
const Default ecs.LayerID = 0

// MaxLoadout is the number of skill slots an actor can equip.
const MaxLoadout = 5

// Config holds general game configuration
type Config struct {
	Width  int
	Height int

	// Simulation
	TickRate  int     // ticks per second
	TickDelta float64 // seconds per tick
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 // world units / s^2, applied downward (y-up world)
	MaxFallSpeed float64
	GroundSkin   float64 // distance below the feet still counted as grounded
	LandedSpeedY float64 // |vy| below which an actor counts as landed
}

// ArrowConfig contains projectile lifecycle configuration
type ArrowConfig struct {
	LifeTime         float64 // seconds before a flying arrow is forced back to the pool
	StuckTime        float64 // seconds an arrow stays embedded in a surface
	MinRotateSpeedSq float64 // squared speed below which facing is not updated
	DefaultDamage    int     // used when a skill carries no damage
	Width            float64
	Height           float64
	Prewarm          int // idle arrows built per prototype at round start

	// Prototypes lists the pooled projectile variants and how they fly.
	Prototypes map[PrototypeID]ArrowBehavior
}

// ClusterConfig contains cluster-carrier configuration
type ClusterConfig struct {
	FragmentCount     int
	SpreadPower       float64
	SpreadX           float64 // horizontal spread is drawn from [-SpreadX, SpreadX]
	FragmentGravity   float64
	DefaultFuse       float64
	FragmentPrototype PrototypeID
	ExplosionEffect   string
}

// SkillTuningConfig contains per-strategy constants
type SkillTuningConfig struct {
	// Normal
	NormalFlightTime  float64
	NormalAimOffsetY  float64
	NormalRotation    float64 // degrees, mirrored toward the target side
	DefaultFlatSpeed  float64
	ProjectileGravity float64

	// MultiShot
	MultiShotCount    int
	MultiShotInterval float64
	MultiShotSpread   float64 // degrees, uniform in [-spread, spread]

	// DirectShot
	DirectShotSpeed float64
	DirectShotAimY  float64

	// Dash
	DashImpulse      float64
	DashDuration     float64
	DashMinMoveSpeed float64

	// JumpShot
	JumpHeight        float64
	JumpBackDistance  float64
	JumpSpinDuration  float64
	JumpFireAt        float64 // fraction of the spin at which the arrow is released
	JumpFlightTime    float64
	JumpAimOffsetY    float64
	JumpFallbackSpeed float64
	JumpEffect        string

	// ClusterShot
	ClusterFlightTime float64
	ClusterAimOffsetY float64
	ClusterFallbackX  float64
	ClusterFallbackY  float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Name             string
	MoveSpeed        float64
	Health           int
	FireDelay        float64 // idle time before an auto-fire releases
	AutoFireRecovery float64
	AutoFireWhenIdle bool
	MoveDeadzone     float64

	// Skill action timings
	WindupShort   float64 // default skills
	WindupLong    float64 // MultiShot, DirectShot
	WindupCluster float64
	Recovery      float64

	Loadout []SkillType

	CollisionWidth  float64
	CollisionHeight float64
	FireOffsetX     float64
	FireOffsetY     float64
}

// EnemyConfig contains enemy AI configuration values
type EnemyConfig struct {
	Name      string
	MoveSpeed float64
	Health    int

	SpawnDelay    float64
	MoveMin       float64
	MoveMax       float64
	ThinkDelay    float64
	RestMin       float64
	RestMax       float64
	RetreatRange  float64 // closer than this: back off
	ApproachRange float64 // farther than this: close in
	WeaveFreq     float64
	WeaveAmp      float64
	DefaultChance float64 // chance of preferring slot 0 when ready

	// DecideBestSkill bands
	JumpShotMin    float64
	JumpShotMax    float64
	JumpShotChance float64
	DashRange      float64
	DashChance     float64
	LongRange      float64
	ClusterChance  float64
	MultiChance    float64

	WindupDefault float64
	WindupCluster float64
	Recovery      float64

	Loadout []SkillType

	CollisionWidth  float64
	CollisionHeight float64
	FireOffsetX     float64
	FireOffsetY     float64
}

// HealthConfig contains damage model configuration
type HealthConfig struct {
	PopupOffsetY float64
}

// RoundConfig contains round flow configuration
type RoundConfig struct {
	Duration             float64
	CountdownStep        float64
	CountdownLabels      []string
	DeathDeactivateDelay float64
}

// EffectsConfig contains pooled visual effect configuration
type EffectsConfig struct {
	DefaultDuration float64
	PopupPrototype  PrototypeID
	PopupDuration   float64
	PopupRise       float64
}

// ArenaConfig contains arena loading configuration
type ArenaConfig struct {
	PixelsPerUnit float64
	CellSize      int
	DefaultMap    string
}

// UIConfig contains debug front-end colours and sizes
type UIConfig struct {
	PlayerColor   color.RGBA
	EnemyColor    color.RGBA
	GroundColor   color.RGBA
	ArrowColor    color.RGBA
	ClusterColor  color.RGBA
	EffectColor   color.RGBA
	HPBarWidth    float32
	HPBarHeight   float32
	SlotBarWidth  float32
	SlotBarHeight float32
	ShowColliders bool // debug overlay of every resolv object
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Arrow ArrowConfig
var Cluster ClusterConfig
var Skills SkillTuningConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Health HealthConfig
var Round RoundConfig
var Effects EffectsConfig
var Arena ArenaConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple    = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Gray      = color.RGBA{R: 90, G: 90, B: 100, A: 255}
)

// Direction constants for actor facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:     768,
		Height:    448,
		TickRate:  60,
		TickDelta: 1.0 / 60.0,
	}

	Physics = PhysicsConfig{
		Gravity:      9.81,
		MaxFallSpeed: 30.0,
		GroundSkin:   0.02,
		LandedSpeedY: 0.01,
	}

	Arrow = ArrowConfig{
		LifeTime:         3.0,
		StuckTime:        2.0,
		MinRotateSpeedSq: 0.0001,
		DefaultDamage:    10,
		Width:            0.5,
		Height:           0.12,
		Prewarm:          8,
		Prototypes: map[PrototypeID]ArrowBehavior{
			"arrow":   BehaviorBallistic,
			"cluster": BehaviorClusterCarrier,
		},
	}

	Cluster = ClusterConfig{
		FragmentCount:     5,
		SpreadPower:       5.0,
		SpreadX:           0.5,
		FragmentGravity:   9.81,
		DefaultFuse:       1.0,
		FragmentPrototype: "arrow",
		ExplosionEffect:   "Explosion",
	}

	Skills = SkillTuningConfig{
		NormalFlightTime:  1.0,
		NormalAimOffsetY:  0.5,
		NormalRotation:    5.0,
		DefaultFlatSpeed:  15.0,
		ProjectileGravity: 9.81,

		MultiShotCount:    3,
		MultiShotInterval: 0.12,
		MultiShotSpread:   6.0,

		DirectShotSpeed: 10.0,
		DirectShotAimY:  0.5,

		DashImpulse:      15.0,
		DashDuration:     0.1,
		DashMinMoveSpeed: 0.1,

		JumpHeight:        2.5,
		JumpBackDistance:  3.0,
		JumpSpinDuration:  0.5,
		JumpFireAt:        0.5,
		JumpFlightTime:    2.0,
		JumpAimOffsetY:    0.8,
		JumpFallbackSpeed: 20.0,
		JumpEffect:        "Jump",

		ClusterFlightTime: 0.7,
		ClusterAimOffsetY: 4.0,
		ClusterFallbackX:  6.0,
		ClusterFallbackY:  3.5,
	}

	Player = PlayerConfig{
		Name:             "Player",
		MoveSpeed:        5.0,
		Health:           111,
		FireDelay:        0.7,
		AutoFireRecovery: 0.1,
		AutoFireWhenIdle: true,
		MoveDeadzone:     0.1,

		WindupShort:   0.1,
		WindupLong:    0.4,
		WindupCluster: 0.5,
		Recovery:      0.2,

		Loadout: []SkillType{SkillNormal, SkillMultiShot, SkillDirectShot, SkillDash, SkillJumpShot},

		CollisionWidth:  0.8,
		CollisionHeight: 1.6,
		FireOffsetX:     0.5,
		FireOffsetY:     1.0,
	}

	Enemy = EnemyConfig{
		Name:      "Enemy",
		MoveSpeed: 3.0,
		Health:    111,

		SpawnDelay:    0.1,
		MoveMin:       0.6,
		MoveMax:       1.0,
		ThinkDelay:    0.15,
		RestMin:       0.4,
		RestMax:       0.6,
		RetreatRange:  4.5,
		ApproachRange: 7.5,
		WeaveFreq:     5.0,
		WeaveAmp:      0.5,
		DefaultChance: 0.7,

		JumpShotMin:    3.0,
		JumpShotMax:    7.0,
		JumpShotChance: 0.6,
		DashRange:      2.5,
		DashChance:     0.3,
		LongRange:      7.0,
		ClusterChance:  0.5,
		MultiChance:    0.8,

		WindupDefault: 0.4,
		WindupCluster: 0.5,
		Recovery:      0.35,

		Loadout: []SkillType{SkillNormal, SkillMultiShot, SkillJumpShot, SkillDash, SkillClusterShot},

		CollisionWidth:  0.8,
		CollisionHeight: 1.6,
		FireOffsetX:     0.5,
		FireOffsetY:     1.0,
	}

	Health = HealthConfig{
		PopupOffsetY: 1.5,
	}

	Round = RoundConfig{
		Duration:             111.0,
		CountdownStep:        1.0,
		CountdownLabels:      []string{"3", "2", "1", "BATTLE!"},
		DeathDeactivateDelay: 0.5,
	}

	Effects = EffectsConfig{
		DefaultDuration: 2.0,
		PopupPrototype:  "popup",
		PopupDuration:   0.8,
		PopupRise:       1.0,
	}

	Arena = ArenaConfig{
		PixelsPerUnit: 32,
		CellSize:      1,
		DefaultMap:    "arenas/duel.tmx",
	}

	UI = UIConfig{
		PlayerColor:   LightBlue,
		EnemyColor:    Red,
		GroundColor:   Gray,
		ArrowColor:    White,
		ClusterColor:  Orange,
		EffectColor:   Yellow,
		HPBarWidth:    32,
		HPBarHeight:   4,
		SlotBarWidth:  28,
		SlotBarHeight: 16,
	}
}
