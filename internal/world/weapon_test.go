package world

import (
	"math"
	"testing"

	"nova-arena/internal/geom"
)

func approxEqual(t *testing.T, got, want, eps float32, label string) {
	t.Helper()
	if d := got - want; d > eps || d < -eps {
		t.Fatalf("%s: got %v, want %v (eps %v)", label, got, want, eps)
	}
}

func TestWeaponFiresOnceThenCoolsDown(t *testing.T) {
	w := NewWeapon(WeaponEnergyBall)
	pos := geom.Vec2{X: 100, Y: 100}
	facing := geom.Vec2{X: 1}

	cmds := w.Fire(pos, facing)
	if len(cmds) != 1 {
		t.Fatalf("first fire: got %d commands, want 1", len(cmds))
	}
	if cmds := w.Fire(pos, facing); cmds != nil {
		t.Fatalf("second immediate fire: got %d commands, want none", len(cmds))
	}

	// Not even a full cooldown later it still refuses.
	w.Update(w.Stats.Cooldown / 2)
	if w.CanFire() {
		t.Fatal("weapon ready after half a cooldown")
	}
	w.Update(w.Stats.Cooldown)
	if !w.CanFire() {
		t.Fatal("weapon not ready after a full cooldown")
	}
}

func TestWeaponFanCoversFullSpread(t *testing.T) {
	w := NewWeapon(WeaponEnergyBall)
	w.Stats.ProjectileCount = 3
	w.Stats.SpreadAngle = 30

	cmds := w.Fire(geom.Vec2{}, geom.Vec2{X: 1})
	if len(cmds) != 3 {
		t.Fatalf("got %d projectiles, want 3", len(cmds))
	}

	wantAngles := []float32{-30 * math.Pi / 180, 0, 30 * math.Pi / 180}
	for i, cmd := range cmds {
		sp := cmd.(SpawnProjectile)
		approxEqual(t, sp.Vel.Angle(), wantAngles[i], 1e-4, "fan angle")
		approxEqual(t, sp.Vel.Len(), w.Stats.Projectile.Speed, 1e-2, "fan speed")
	}
}

func TestPulseFireIgnoresFacing(t *testing.T) {
	w := NewWeapon(WeaponPulse)
	pos := geom.Vec2{X: 42, Y: 7}

	cmds := w.Fire(pos, geom.Vec2{X: 0, Y: -1})
	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want 1", len(cmds))
	}
	sp := cmds[0].(SpawnProjectile)
	if sp.Kind != ProjectilePulse {
		t.Fatalf("got kind %v, want pulse", sp.Kind)
	}
	if sp.Pos != pos {
		t.Fatalf("pulse spawned at %v, want owner position %v", sp.Pos, pos)
	}
	if sp.Vel != (geom.Vec2{}) {
		t.Fatalf("pulse has velocity %v, want zero", sp.Vel)
	}
}

func TestFireWithZeroFacingDefaultsRight(t *testing.T) {
	w := NewWeapon(WeaponEnergyBall)
	cmds := w.Fire(geom.Vec2{}, geom.Vec2{})
	sp := cmds[0].(SpawnProjectile)
	if sp.Vel.X <= 0 || sp.Vel.Y != 0 {
		t.Fatalf("got velocity %v, want +X", sp.Vel)
	}
}

func TestLevelUpCooldownDecaysToFloor(t *testing.T) {
	w := NewWeapon(WeaponEnergyBall)
	prev := w.Stats.Cooldown
	for i := 0; i < 40; i++ {
		w.LevelUp()
		if w.Stats.Cooldown > prev {
			t.Fatalf("cooldown grew at level %d: %v -> %v", w.Level, prev, w.Stats.Cooldown)
		}
		prev = w.Stats.Cooldown
	}
	approxEqual(t, w.Stats.Cooldown, 0.1, 1e-4, "cooldown floor")
}

func TestLevelUpTierBreak(t *testing.T) {
	w := NewWeapon(WeaponEnergyBall)
	for w.Level < 4 {
		w.LevelUp()
	}
	before := w.Stats.ProjectileCount

	w.LevelUp() // level 5 unlocks the wide tier
	if got := w.Stats.ProjectileCount - before; got != 3 {
		t.Fatalf("level 5 added %d projectiles, want 3", got)
	}
	approxEqual(t, w.Stats.SpreadAngle, 75, 1e-4, "tier spread")
}

func TestHomingLevelUpKeepsSingleShotEarly(t *testing.T) {
	w := NewWeapon(WeaponHomingMissile)
	w.LevelUp()
	w.LevelUp()
	if w.Stats.ProjectileCount != 1 {
		t.Fatalf("got %d projectiles at level %d, want 1", w.Stats.ProjectileCount, w.Level)
	}
}

func TestXPForLevel(t *testing.T) {
	cases := []struct{ level, want int }{
		{0, 0}, {1, 5}, {2, 15}, {3, 30}, {4, 50}, {5, 75},
	}
	for _, c := range cases {
		if got := XPForLevel(c.level); got != c.want {
			t.Errorf("XPForLevel(%d) = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestAddXPOneLevelPerAward(t *testing.T) {
	p := NewPlayer(geom.Vec2{}, testPlayerStats())

	// 20 XP crosses both the level-1 (5) and level-2 (15) thresholds, but a
	// single award only ever levels once.
	if !p.AddXP(20) {
		t.Fatal("expected a level up")
	}
	if p.Level != 1 {
		t.Fatalf("level = %d, want 1", p.Level)
	}

	// The banked XP carries the next award straight over the line.
	if !p.AddXP(0) {
		t.Fatal("expected the banked XP to level again")
	}
	if p.Level != 2 || p.XP != 20 {
		t.Fatalf("level = %d xp = %d, want level 2 with xp 20", p.Level, p.XP)
	}
}
