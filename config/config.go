package config

import (
	"errors"
	"fmt"
)

// DashConfig contains the dash ability tuning
type DashConfig struct {
	Speed    float64 `yaml:"speed" env:"DOOMERANG_DASH_SPEED"`
	Duration float64 `yaml:"duration" env:"DOOMERANG_DASH_DURATION"` // seconds
}

// GrappleConfig contains the grapple hook and rope tuning
type GrappleConfig struct {
	SpringForce float64 `yaml:"spring_force" env:"DOOMERANG_GRAPPLE_SPRING_FORCE"`
	Damping     float64 `yaml:"damping" env:"DOOMERANG_GRAPPLE_DAMPING"`
	PullImpulse float64 `yaml:"pull_impulse" env:"DOOMERANG_GRAPPLE_PULL_IMPULSE"`

	// Hook body
	HookSpeed float64 `yaml:"hook_speed" env:"DOOMERANG_GRAPPLE_HOOK_SPEED"` // 0 places the hook at the target
	HookSize  float64 `yaml:"hook_size" env:"DOOMERANG_GRAPPLE_HOOK_SIZE"`
}

// ProjectileConfig contains defaults for projectiles fired without weapon overrides
type ProjectileConfig struct {
	Speed     float64 `yaml:"speed" env:"DOOMERANG_PROJECTILE_SPEED"`
	Knockback float64 `yaml:"knockback" env:"DOOMERANG_PROJECTILE_KNOCKBACK"`
	Damage    float64 `yaml:"damage" env:"DOOMERANG_PROJECTILE_DAMAGE"`
	Size      float64 `yaml:"size" env:"DOOMERANG_PROJECTILE_SIZE"`
	Lifetime  float64 `yaml:"lifetime" env:"DOOMERANG_PROJECTILE_LIFETIME"` // seconds
}

// WeaponConfig overrides projectile stats per weapon. Unset fields fall back
// to the ProjectileConfig defaults; an explicit zero is kept.
type WeaponConfig struct {
	Damage    *float64 `yaml:"damage,omitempty"`
	Speed     *float64 `yaml:"speed,omitempty"`
	Knockback *float64 `yaml:"knockback,omitempty"`
}

// WeaponStats are the resolved stats a projectile is fired with.
type WeaponStats struct {
	Damage    float64
	Speed     float64
	Knockback float64
}

// Stat returns a pointer to v for filling WeaponConfig literals.
func Stat(v float64) *float64 {
	return &v
}

// PhysicsConfig contains simulation stepping and world bounds
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity" env:"DOOMERANG_PHYSICS_GRAVITY"` // px/s^2, positive is down
	TickRate    int     `yaml:"tick_rate" env:"DOOMERANG_PHYSICS_TICK_RATE"`
	WorldWidth  int     `yaml:"world_width" env:"DOOMERANG_PHYSICS_WORLD_WIDTH"`
	WorldHeight int     `yaml:"world_height" env:"DOOMERANG_PHYSICS_WORLD_HEIGHT"`
	CellSize    int     `yaml:"cell_size" env:"DOOMERANG_PHYSICS_CELL_SIZE"`
	SleepFrames int     `yaml:"sleep_frames" env:"DOOMERANG_PHYSICS_SLEEP_FRAMES"`
}

// CharacterConfig contains body and health values for players and enemies
type CharacterConfig struct {
	Mass    float64 `yaml:"mass"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Health  float64 `yaml:"health"`
	Defense float64 `yaml:"defense"`
}

// Tuning aggregates every tunable value of the ability core. It is copied
// into the simulation when it is built and never mutated afterwards.
type Tuning struct {
	Dash       DashConfig              `yaml:"dash"`
	Grapple    GrappleConfig           `yaml:"grapple"`
	Projectile ProjectileConfig        `yaml:"projectile"`
	Weapons    map[string]WeaponConfig `yaml:"weapons"`
	Physics    PhysicsConfig           `yaml:"physics"`
	Player     CharacterConfig         `yaml:"player"`
	Enemy      CharacterConfig         `yaml:"enemy"`
}

// Weapon names
const (
	PlayerBlaster = "player_blaster"
	EnemyBlaster  = "enemy_blaster"
)

var (
	ErrInvalidTickRate = errors.New("config: tick rate must be positive")
	ErrInvalidTuning   = errors.New("config: invalid tuning")
)

// Default returns the tuned values the game ships with.
func Default() Tuning {
	return Tuning{
		Dash: DashConfig{
			Speed:    4000,
			Duration: 0.15,
		},
		Grapple: GrappleConfig{
			SpringForce: 100000,
			Damping:     1000000,
			PullImpulse: 400000, // decisive yank on an 800 mass body
			HookSpeed:   0,
			HookSize:    20,
		},
		Projectile: ProjectileConfig{
			Speed:     1000,
			Knockback: 100000,
			Damage:    10,
			Size:      10,
			Lifetime:  3,
		},
		Weapons: map[string]WeaponConfig{
			PlayerBlaster: {Damage: Stat(20)},
			EnemyBlaster:  {Damage: Stat(10), Speed: Stat(600)},
		},
		Physics: PhysicsConfig{
			Gravity:     2000,
			TickRate:    60,
			WorldWidth:  4096,
			WorldHeight: 4096,
			CellSize:    32,
			SleepFrames: 30,
		},
		Player: CharacterConfig{
			Mass:    800,
			Width:   100,
			Height:  100,
			Health:  100,
			Defense: 1,
		},
		Enemy: CharacterConfig{
			Mass:    800,
			Width:   100,
			Height:  100,
			Health:  60,
			Defense: 1,
		},
	}
}

// Delta returns the fixed step length in seconds.
func (t Tuning) Delta() float64 {
	return 1 / float64(t.Physics.TickRate)
}

// Weapon resolves the stats of a named weapon, filling unset fields from the
// projectile defaults. The second result is false for unknown weapons.
func (t Tuning) Weapon(name string) (WeaponStats, bool) {
	w, ok := t.Weapons[name]
	return WeaponStats{
		Damage:    statOr(w.Damage, t.Projectile.Damage),
		Speed:     statOr(w.Speed, t.Projectile.Speed),
		Knockback: statOr(w.Knockback, t.Projectile.Knockback),
	}, ok
}

func statOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

// Validate rejects tunings the simulation cannot run with.
func (t Tuning) Validate() error {
	if t.Physics.TickRate <= 0 {
		return ErrInvalidTickRate
	}
	checks := []struct {
		name string
		ok   bool
	}{
		{"dash.speed", t.Dash.Speed >= 0},
		{"dash.duration", t.Dash.Duration > 0},
		{"grapple.spring_force", t.Grapple.SpringForce >= 0},
		{"grapple.damping", t.Grapple.Damping >= 0},
		{"grapple.pull_impulse", t.Grapple.PullImpulse >= 0},
		{"grapple.hook_speed", t.Grapple.HookSpeed >= 0},
		{"grapple.hook_size", t.Grapple.HookSize > 0},
		{"projectile.speed", t.Projectile.Speed >= 0},
		{"projectile.knockback", t.Projectile.Knockback >= 0},
		{"projectile.damage", t.Projectile.Damage >= 0},
		{"projectile.size", t.Projectile.Size > 0},
		{"projectile.lifetime", t.Projectile.Lifetime > 0},
		{"physics.world", t.Physics.WorldWidth > 0 && t.Physics.WorldHeight > 0},
		{"player", validCharacter(t.Player)},
		{"enemy", validCharacter(t.Enemy)},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrInvalidTuning, c.name)
		}
	}
	for name, w := range t.Weapons {
		if negative(w.Damage) || negative(w.Speed) || negative(w.Knockback) {
			return fmt.Errorf("%w: weapons.%s", ErrInvalidTuning, name)
		}
	}
	return nil
}

func negative(v *float64) bool {
	return v != nil && *v < 0
}

func validCharacter(c CharacterConfig) bool {
	return c.Mass > 0 && c.Width > 0 && c.Height > 0 && c.Health >= 0
}
