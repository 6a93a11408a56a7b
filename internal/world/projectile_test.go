package world

import (
	"testing"

	"nova-arena/internal/geom"
)

func TestPulseStaysAnchored(t *testing.T) {
	p := Projectile{
		Kind:          ProjectilePulse,
		Pos:           geom.Vec2{X: 50, Y: 50},
		SourcePos:     geom.Vec2{X: 50, Y: 50},
		Vel:           geom.Vec2{X: 100}, // a stray velocity must be ignored
		Stats:         ProjectileStats{Width: 100, Height: 100, TimeToLive: 0.3},
		TimeRemaining: 0.3,
	}

	for i := 0; i < 5; i++ {
		p.Update(1.0 / 30)
	}
	if p.Pos != p.SourcePos {
		t.Fatalf("pulse drifted to %v, want anchored at %v", p.Pos, p.SourcePos)
	}
}

func TestEnergyBallMovesByVelocity(t *testing.T) {
	p := Projectile{
		Kind:          ProjectileEnergyBall,
		Vel:           geom.Vec2{X: 300},
		TimeRemaining: 2,
	}
	p.Update(0.1)
	approxEqual(t, p.Pos.X, 30, 1e-3, "pos.X")
}

func TestHomingZeroTurnRateKeepsHeading(t *testing.T) {
	p := Projectile{
		Kind:          ProjectileHomingMissile,
		Vel:           geom.Vec2{X: 250},
		Stats:         ProjectileStats{Speed: 250, TurningRate: 0},
		TimeRemaining: 2,
	}
	enemies := []Enemy{{Pos: geom.Vec2{X: 0, Y: 100}}}

	before := p.Vel
	p.UpdateHoming(1.0/30, enemies)
	if p.Vel != before {
		t.Fatalf("heading changed with zero turning rate: %v -> %v", before, p.Vel)
	}
}

func TestHomingTurnsTowardNearestEnemy(t *testing.T) {
	p := Projectile{
		Kind:          ProjectileHomingMissile,
		Pos:           geom.Vec2{},
		Vel:           geom.Vec2{X: 250},
		Stats:         ProjectileStats{Speed: 250, TurningRate: 3.5},
		TimeRemaining: 2,
	}
	enemies := []Enemy{
		{Pos: geom.Vec2{X: 0, Y: 500}},  // far
		{Pos: geom.Vec2{X: 50, Y: 50}},  // nearest, below-right
		{Pos: geom.Vec2{X: -400, Y: 0}}, // far behind
	}

	p.UpdateHoming(1.0/30, enemies)

	// Turned downward toward the nearest target, speed preserved.
	if p.Vel.Y <= 0 {
		t.Fatalf("missile did not turn toward nearest enemy: %v", p.Vel)
	}
	approxEqual(t, p.Vel.Len(), 250, 1e-2, "speed preserved")

	// One tick cannot exceed the turn budget.
	maxTurn := p.Stats.TurningRate * (1.0 / 30)
	if a := p.Vel.Angle(); a > maxTurn+1e-4 {
		t.Fatalf("turned %v rad, budget %v", a, maxTurn)
	}
}

func TestHomingIgnoresEmptyArena(t *testing.T) {
	p := Projectile{
		Kind:  ProjectileHomingMissile,
		Vel:   geom.Vec2{X: 250},
		Stats: ProjectileStats{Speed: 250, TurningRate: 3.5},
	}
	before := p.Vel
	p.UpdateHoming(1.0/30, nil)
	if p.Vel != before {
		t.Fatalf("velocity changed with no enemies: %v -> %v", before, p.Vel)
	}
}

func TestProjectileExpiry(t *testing.T) {
	p := Projectile{Kind: ProjectileEnergyBall, TimeRemaining: 0.05}
	if p.Expired() {
		t.Fatal("expired while time remains")
	}
	p.Update(0.1)
	if !p.Expired() {
		t.Fatal("not expired after lifetime elapsed")
	}
}
