package world

import (
	"testing"

	"nova-arena/internal/geom"
	"nova-arena/internal/script"
	"nova-arena/internal/shared/input"
)

func testPlayerStats() script.EntityStats {
	return script.EntityStats{Radius: 20, MaxSpeed: 5, Acceleration: 1, Friction: 0.9}
}

func TestApplyInputDiagonalUnnormalized(t *testing.T) {
	p := NewPlayer(geom.Vec2{}, testPlayerStats())

	p.ApplyInput(input.State{Up: true, Right: true})
	approxEqual(t, p.Vel.X, 1, 1e-5, "vel.X")
	approxEqual(t, p.Vel.Y, -1, 1e-5, "vel.Y")
}

func TestApplyInputClampsSpeedVectorially(t *testing.T) {
	p := NewPlayer(geom.Vec2{}, testPlayerStats())

	for i := 0; i < 20; i++ {
		p.ApplyInput(input.State{Right: true, Down: true})
	}
	approxEqual(t, p.Vel.Len(), p.Stats.MaxSpeed, 1e-3, "speed clamp")
	// Direction survives the clamp.
	if p.Vel.X <= 0 || p.Vel.Y <= 0 {
		t.Fatalf("clamp changed direction: %v", p.Vel)
	}
}

func TestFacingDeadzoneNearCursor(t *testing.T) {
	p := NewPlayer(geom.Vec2{X: 100, Y: 100}, testPlayerStats())
	before := p.Facing

	// Cursor 3px away, inside the deadzone: facing must not move.
	p.ApplyInput(input.State{AimX: 103, AimY: 100})
	if p.Facing != before {
		t.Fatalf("facing changed inside deadzone: %v", p.Facing)
	}

	p.ApplyInput(input.State{AimX: 100, AimY: 200})
	approxEqual(t, p.Facing.X, 0, 1e-5, "facing.X")
	approxEqual(t, p.Facing.Y, 1, 1e-5, "facing.Y")
}

func TestPlayerUpdateIntegratesThenAppliesFriction(t *testing.T) {
	p := NewPlayer(geom.Vec2{X: 10, Y: 10}, testPlayerStats())
	p.Vel = geom.Vec2{X: 2, Y: 0}

	p.Update(1.0 / 30)
	approxEqual(t, p.Pos.X, 12, 1e-5, "pos after step")
	approxEqual(t, p.Vel.X, 1.8, 1e-5, "vel after friction")
}

func TestAddWeaponRefusesDuplicatesAndOverflow(t *testing.T) {
	p := NewPlayer(geom.Vec2{}, testPlayerStats())

	if !p.AddWeapon(WeaponEnergyBall) {
		t.Fatal("first add refused")
	}
	if p.AddWeapon(WeaponEnergyBall) {
		t.Fatal("duplicate add accepted")
	}
	if !p.AddWeapon(WeaponPulse) || !p.AddWeapon(WeaponHomingMissile) {
		t.Fatal("filling the loadout refused")
	}
	if len(p.Weapons) != MaxWeapons {
		t.Fatalf("loadout size %d, want %d", len(p.Weapons), MaxWeapons)
	}
}

func TestPlayerResetKeepsProgression(t *testing.T) {
	p := NewPlayer(geom.Vec2{X: 1, Y: 2}, testPlayerStats())
	p.AddWeapon(WeaponPulse)
	p.AddXP(7)
	p.Vel = geom.Vec2{X: 3, Y: 3}

	p.Reset(geom.Vec2{X: 400, Y: 300})
	if p.Pos != (geom.Vec2{X: 400, Y: 300}) || p.Vel != (geom.Vec2{}) {
		t.Fatalf("reset kinematics wrong: pos %v vel %v", p.Pos, p.Vel)
	}
	if p.XP != 7 || p.Level != 1 || len(p.Weapons) != 1 {
		t.Fatalf("reset dropped progression: xp %d level %d weapons %d",
			p.XP, p.Level, len(p.Weapons))
	}
}
