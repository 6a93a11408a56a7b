package world

import (
	"math"

	"nova-arena/internal/geom"
)

type Projectile struct {
	ID   EntityID
	Pos  geom.Vec2
	Vel  geom.Vec2
	Kind ProjectileKind

	Stats         ProjectileStats
	TimeRemaining float32
	SourcePos     geom.Vec2 // fire-time position; pulses stay anchored here
}

// Update integrates motion and burns lifetime. Pulses never move: they stay
// at the position the weapon fired from, even if the player walks away.
func (p *Projectile) Update(dt float32) {
	p.TimeRemaining -= dt

	switch p.Kind {
	case ProjectilePulse:
		p.Pos = p.SourcePos
	default:
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))
	}
}

// UpdateHoming retargets a homing missile toward the nearest live enemy,
// turning at most TurningRate*dt radians while preserving speed. Other
// kinds and empty arenas leave the heading untouched.
func (p *Projectile) UpdateHoming(dt float32, enemies []Enemy) {
	if p.Kind != ProjectileHomingMissile || len(enemies) == 0 {
		return
	}

	best := -1
	bestD2 := float32(math.MaxFloat32)
	for i := range enemies {
		if d2 := geom.Dist2(p.Pos, enemies[i].Pos); d2 < bestD2 {
			best = i
			bestD2 = d2
		}
	}

	speed := p.Vel.Len()
	if speed == 0 {
		return
	}

	bearing := enemies[best].Pos.Sub(p.Pos).Angle()
	heading := p.Vel.Angle()

	diff := bearing - heading
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff < -math.Pi {
		diff += 2 * math.Pi
	}

	maxTurn := p.Stats.TurningRate * dt
	if diff > maxTurn {
		diff = maxTurn
	} else if diff < -maxTurn {
		diff = -maxTurn
	}

	p.Vel = p.Vel.Rotate(diff).Norm().Mul(speed)
}

func (p *Projectile) Expired() bool {
	return p.TimeRemaining <= 0
}

func (p *Projectile) Collider() geom.Collider {
	if p.Kind == ProjectilePulse {
		return geom.RectCollider(p.Stats.Width, p.Stats.Height)
	}
	return geom.CircleCollider(p.Stats.Radius)
}
