package world

import (
	"nova-arena/internal/geom"
	"nova-arena/internal/script"
)

// EntityID is assigned monotonically by the world and never reused within a
// process lifetime. Despawns are keyed by id so structural removal can be
// deferred until after all collision queries of a tick.
type EntityID uint64

type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyChaser
)

func (k EnemyKind) String() string {
	if k == EnemyChaser {
		return "Chaser"
	}
	return "Basic"
}

// scriptClassFromEnemyKind maps the world's enemy kind onto the provider's
// stats selector.
func scriptClassFromEnemyKind(k EnemyKind) script.EnemyClass {
	if k == EnemyChaser {
		return script.EnemyClassChaser
	}
	return script.EnemyClassBasic
}

type ProjectileKind int

const (
	ProjectileEnergyBall ProjectileKind = iota
	ProjectilePulse
	ProjectileHomingMissile
)

func (k ProjectileKind) String() string {
	switch k {
	case ProjectilePulse:
		return "Pulse"
	case ProjectileHomingMissile:
		return "HomingMissile"
	default:
		return "EnergyBall"
	}
}

// SpawnCommand is emitted by weapons (projectiles) and wave logic (enemies)
// and executed by the world, which owns id assignment and stat resolution.
type SpawnCommand interface{ isSpawn() }

type SpawnProjectile struct {
	Kind  ProjectileKind
	Pos   geom.Vec2
	Vel   geom.Vec2
	Stats ProjectileStats
}

func (SpawnProjectile) isSpawn() {}

type SpawnEnemy struct {
	Kind EnemyKind
	Pos  geom.Vec2
}

func (SpawnEnemy) isSpawn() {}

type Stats struct {
	EnemiesSpawned int
	EnemiesKilled  int
	WavesStarted   int
}
