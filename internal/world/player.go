package world

import (
	"nova-arena/internal/geom"
	"nova-arena/internal/script"
	"nova-arena/internal/shared/input"
)

// facingDeadzone keeps the aim indicator from flickering when the cursor
// rests on top of the player.
const facingDeadzone = 6.0

// MaxWeapons caps the loadout; each weapon kind appears at most once.
const MaxWeapons = 3

type Player struct {
	Pos    geom.Vec2
	Vel    geom.Vec2
	Facing geom.Vec2 // unit aim direction
	Stats  script.EntityStats

	XP      int // cumulative, never reset within a session
	Level   int
	Weapons []Weapon
}

func NewPlayer(pos geom.Vec2, stats script.EntityStats) Player {
	return Player{
		Pos:     pos,
		Facing:  geom.Vec2{X: 1},
		Stats:   stats,
		Weapons: make([]Weapon, 0, MaxWeapons),
	}
}

// XPForLevel is the cumulative XP needed to reach level l
// (triangular-number scaling: 5, 15, 30, 50, 75, ...).
func XPForLevel(l int) int {
	if l < 0 {
		return 0
	}
	return 5 * l * (l + 1) / 2
}

// AddXP awards xp and reports whether the player crossed the next level
// threshold. At most one level is gained per call; a batch that jumps two
// thresholds levels again on the next award.
func (p *Player) AddXP(xp int) bool {
	p.XP += xp
	if p.XP >= XPForLevel(p.Level+1) {
		p.Level++
		return true
	}
	return false
}

// ApplyInput turns held movement keys into acceleration impulses along the
// cardinal axes and re-derives the facing direction from the cursor.
// Diagonal input is intentionally not normalized.
func (p *Player) ApplyInput(in input.State) {
	acc := p.Stats.Acceleration
	if in.Left {
		p.Vel.X -= acc
	}
	if in.Right {
		p.Vel.X += acc
	}
	if in.Up {
		p.Vel.Y -= acc
	}
	if in.Down {
		p.Vel.Y += acc
	}

	// Clamp speed by rescaling, never amplifying.
	if speed := p.Vel.Len(); speed > p.Stats.MaxSpeed {
		p.Vel = p.Vel.Norm().Mul(p.Stats.MaxSpeed)
	}

	aim := geom.Vec2{X: in.AimX, Y: in.AimY}.Sub(p.Pos)
	if aim.Len() > facingDeadzone {
		p.Facing = aim.Norm()
	}
}

// Update integrates position, applies friction, and advances the weapons,
// collecting their spawn requests.
func (p *Player) Update(dt float32) []SpawnCommand {
	p.Pos = p.Pos.Add(p.Vel)
	p.Vel = p.Vel.Mul(p.Stats.Friction)

	var cmds []SpawnCommand
	for i := range p.Weapons {
		w := &p.Weapons[i]
		w.Update(dt)
		cmds = append(cmds, w.Fire(p.Pos, p.Facing)...)
	}
	return cmds
}

// Reset re-centers the player for a fresh attempt without discarding the
// session's configuration (stats, weapons, progression).
func (p *Player) Reset(pos geom.Vec2) {
	p.Pos = pos
	p.Vel = geom.Vec2{}
	p.Facing = geom.Vec2{X: 1}
}

// WeaponIndex returns the slot holding kind, or -1.
func (p *Player) WeaponIndex(kind WeaponKind) int {
	for i := range p.Weapons {
		if p.Weapons[i].Kind == kind {
			return i
		}
	}
	return -1
}

// AddWeapon appends a new level-1 weapon. It refuses duplicates and a
// loadout beyond MaxWeapons.
func (p *Player) AddWeapon(kind WeaponKind) bool {
	if len(p.Weapons) >= MaxWeapons || p.WeaponIndex(kind) >= 0 {
		return false
	}
	p.Weapons = append(p.Weapons, NewWeapon(kind))
	return true
}

func (p *Player) Collider() geom.Collider {
	return geom.CircleCollider(p.Stats.Radius)
}
