package world

import (
	"math"

	"nova-arena/internal/geom"
)

type WeaponKind int

const (
	WeaponEnergyBall WeaponKind = iota
	WeaponPulse
	WeaponHomingMissile
)

// WeaponSlotCount is the number of selectable weapon kinds; selection keys
// 1..3 map onto WeaponKind values directly.
const WeaponSlotCount = 3

func (k WeaponKind) String() string {
	switch k {
	case WeaponPulse:
		return "Pulse"
	case WeaponHomingMissile:
		return "Homing Missile"
	default:
		return "Energy Ball"
	}
}

func (k WeaponKind) projectileKind() ProjectileKind {
	switch k {
	case WeaponPulse:
		return ProjectilePulse
	case WeaponHomingMissile:
		return ProjectileHomingMissile
	default:
		return ProjectileEnergyBall
	}
}

// ProjectileStats bundles every tunable a projectile kind can need; unused
// fields stay zero (e.g. TurningRate for energy balls, Radius for pulses).
type ProjectileStats struct {
	Damage      float32
	Speed       float32 // px per second
	Radius      float32 // circle kinds
	Width       float32 // pulse AABB
	Height      float32
	TimeToLive  float32 // seconds
	TurningRate float32 // radians per second, homing only
}

type WeaponStats struct {
	Cooldown        float32 // seconds between volleys
	ProjectileCount int
	SpreadAngle     float32 // degrees to either side of facing
	Projectile      ProjectileStats
}

func baseWeaponStats(kind WeaponKind) WeaponStats {
	switch kind {
	case WeaponPulse:
		return WeaponStats{
			Cooldown:        3.0,
			ProjectileCount: 1,
			Projectile: ProjectileStats{
				Damage:     15,
				Width:      100,
				Height:     100,
				TimeToLive: 0.3,
			},
		}
	case WeaponHomingMissile:
		return WeaponStats{
			Cooldown:        2.0,
			ProjectileCount: 1,
			Projectile: ProjectileStats{
				Damage:      12,
				Speed:       250,
				Radius:      6,
				TimeToLive:  2.5,
				TurningRate: 3.5,
			},
		}
	default:
		return WeaponStats{
			Cooldown:        1.5,
			ProjectileCount: 1,
			Projectile: ProjectileStats{
				Damage:     10,
				Speed:      300,
				Radius:     8,
				TimeToLive: 2.0,
			},
		}
	}
}

// Weapon fires automatically whenever its cooldown elapses. Level-ups
// mutate the stats in place per the kind's progression table.
type Weapon struct {
	Kind     WeaponKind
	Level    int
	Cooldown float32 // remaining, counts down to 0
	Stats    WeaponStats
}

func NewWeapon(kind WeaponKind) Weapon {
	return Weapon{
		Kind:  kind,
		Level: 1,
		Stats: baseWeaponStats(kind),
	}
}

func (w *Weapon) Update(dt float32) {
	if w.Cooldown > 0 {
		w.Cooldown -= dt
		if w.Cooldown < 0 {
			w.Cooldown = 0
		}
	}
}

func (w *Weapon) CanFire() bool {
	return w.Cooldown <= 0
}

// Fire emits one spawn request per projectile in the pattern and resets the
// cooldown, or returns nil while the timer is still running. Pulse ignores
// facing and anchors at the owner's current position.
func (w *Weapon) Fire(pos, facing geom.Vec2) []SpawnCommand {
	if !w.CanFire() {
		return nil
	}
	w.Cooldown = w.Stats.Cooldown

	if w.Kind == WeaponPulse {
		return []SpawnCommand{SpawnProjectile{
			Kind:  ProjectilePulse,
			Pos:   pos,
			Stats: w.Stats.Projectile,
		}}
	}

	count := w.Stats.ProjectileCount
	if count < 1 {
		count = 1
	}
	dir := facing.Norm()
	if dir == (geom.Vec2{}) {
		dir = geom.Vec2{X: 1}
	}

	cmds := make([]SpawnCommand, 0, count)
	if count == 1 {
		cmds = append(cmds, SpawnProjectile{
			Kind:  w.Kind.projectileKind(),
			Pos:   pos,
			Vel:   dir.Mul(w.Stats.Projectile.Speed),
			Stats: w.Stats.Projectile,
		})
		return cmds
	}

	// Fan evenly across ±spread, inclusive of both extremes.
	spreadRad := w.Stats.SpreadAngle * math.Pi / 180
	step := spreadRad * 2 / float32(count-1)
	for i := 0; i < count; i++ {
		angle := -spreadRad + float32(i)*step
		d := dir.Rotate(angle)
		cmds = append(cmds, SpawnProjectile{
			Kind:  w.Kind.projectileKind(),
			Pos:   pos,
			Vel:   d.Mul(w.Stats.Projectile.Speed),
			Stats: w.Stats.Projectile,
		})
	}
	return cmds
}

// LevelUp advances the progression table: cooldowns decay multiplicatively
// toward a floor, damage and speed grow, and level 5 unlocks a wider tier.
func (w *Weapon) LevelUp() {
	w.Level++

	switch w.Kind {
	case WeaponEnergyBall:
		if w.Level >= 5 {
			w.Stats.ProjectileCount += 3
			w.Stats.SpreadAngle = 75
			w.Stats.Cooldown = maxf(w.Stats.Cooldown*0.85, 0.1)
			w.Stats.Projectile.Speed *= 1.25
			w.Stats.Projectile.Damage += 2
		} else {
			w.Stats.ProjectileCount++
			w.Stats.SpreadAngle = 30
			w.Stats.Cooldown = maxf(w.Stats.Cooldown*0.95, 0.3)
			w.Stats.Projectile.Speed *= 1.05
			w.Stats.Projectile.Damage += 2
		}

	case WeaponPulse:
		if w.Level >= 5 {
			w.Stats.Projectile.Width += 25
			w.Stats.Projectile.Height += 25
			w.Stats.Cooldown = maxf(w.Stats.Cooldown*0.80, 0.5)
			w.Stats.Projectile.Damage += 3
			w.Stats.Projectile.TimeToLive += 0.1
		} else {
			w.Stats.Projectile.Width += 15
			w.Stats.Projectile.Height += 15
			w.Stats.Cooldown = maxf(w.Stats.Cooldown*0.95, 1.0)
			w.Stats.Projectile.Damage += 3
			w.Stats.Projectile.TimeToLive += 0.05
		}

	case WeaponHomingMissile:
		if w.Level >= 5 {
			w.Stats.ProjectileCount += 2
			w.Stats.SpreadAngle = 30
			w.Stats.Cooldown = maxf(w.Stats.Cooldown*0.85, 0.1)
			w.Stats.Projectile.TurningRate *= 1.25
			w.Stats.Projectile.Speed *= 1.35
		} else {
			w.Stats.Cooldown = maxf(w.Stats.Cooldown*0.92, 0.4)
			w.Stats.Projectile.Damage += 4
			w.Stats.Projectile.TurningRate *= 1.15
			w.Stats.Projectile.Speed *= 1.10
		}
	}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
