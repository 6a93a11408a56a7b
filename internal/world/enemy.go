package world

import (
	"nova-arena/internal/geom"
	"nova-arena/internal/script"
)

type Enemy struct {
	ID   EntityID
	Pos  geom.Vec2
	Vel  geom.Vec2
	Kind EnemyKind

	Stats script.EntityStats
}

// Update advances one tick of the kind-specific motion model. target is the
// player position; a chaser without a target falls back to basic wandering.
func (e *Enemy) Update(target *geom.Vec2) {
	switch {
	case e.Kind == EnemyChaser && target != nil:
		e.updateChaser(*target)
	default:
		e.updateBasic()
	}

	e.clampSpeed()
	e.Pos = e.Pos.Add(e.Vel)
}

// updateBasic accelerates along the sign of the current velocity on each
// axis, pushing the enemy further in its present general direction.
func (e *Enemy) updateBasic() {
	accDir := geom.Vec2{X: 1, Y: 1}
	if e.Vel.X < 0 {
		accDir.X = -1
	}
	if e.Vel.Y < 0 {
		accDir.Y = -1
	}
	e.Vel = e.Vel.Add(accDir.Mul(e.Stats.Acceleration))
}

// updateChaser nudges velocity toward the bearing to the player by a
// fraction of the difference each tick (first-order steering, no snap).
func (e *Enemy) updateChaser(target geom.Vec2) {
	desired := target.Sub(e.Pos).Norm().Mul(e.Stats.MaxSpeed)
	e.Vel = e.Vel.Add(desired.Sub(e.Vel).Mul(e.Stats.Acceleration))
}

func (e *Enemy) clampSpeed() {
	if speed := e.Vel.Len(); speed > e.Stats.MaxSpeed {
		e.Vel = e.Vel.Norm().Mul(e.Stats.MaxSpeed)
	}
}

func (e *Enemy) Collider() geom.Collider {
	return geom.CircleCollider(e.Stats.Radius)
}
