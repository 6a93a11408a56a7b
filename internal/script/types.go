package script

// Tuning data supplied by the gameplay script. All structs cross the
// JavaScript boundary via JSON, so every field carries a json tag.

// EntityStats is the kinematic tuning bundle copied into player and enemy
// instances. Radius doubles as collision and visual size.
type EntityStats struct {
	Radius       float32 `json:"radius"`
	MaxSpeed     float32 `json:"maxSpeed"`
	Acceleration float32 `json:"acceleration"`
	Friction     float32 `json:"friction"`
}

// WaveConfig is the enemy composition of a single wave.
type WaveConfig struct {
	BasicCount  int `json:"basicCount"`
	ChaserCount int `json:"chaserCount"`
}

// GameConstants define the simulation boundaries.
type GameConstants struct {
	OutOfBoundsMargin float32 `json:"outOfBoundsMargin"`
	SpawnTargetOffset float32 `json:"spawnTargetOffset"`
	MaxWaves          int     `json:"maxWaves"`
}

type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

// EntityVisual is the scripted appearance of one entity kind.
type EntityVisual struct {
	BodyColor      Color   `json:"bodyColor"`
	IndicatorColor Color   `json:"indicatorColor"`
	IndicatorSize  float32 `json:"indicatorSize"`
}

type VisualConfig struct {
	Player        EntityVisual `json:"player"`
	BasicEnemy    EntityVisual `json:"basicEnemy"`
	ChaserEnemy   EntityVisual `json:"chaserEnemy"`
	EnergyBall    EntityVisual `json:"energyBall"`
	Pulse         EntityVisual `json:"pulse"`
	HomingMissile EntityVisual `json:"homingMissile"`
}

// EnemyClass selects which scripted stats function is queried.
type EnemyClass int

const (
	EnemyClassBasic EnemyClass = iota
	EnemyClassChaser
)

func (c EnemyClass) String() string {
	if c == EnemyClassChaser {
		return "chaser"
	}
	return "basic"
}

// Provider supplies tuning values on demand. Implementations may fail on any
// call; callers decide between falling back to defaults (initial load) and
// surfacing the error (explicit reload, wave fetch during play).
type Provider interface {
	PlayerStats() (EntityStats, error)
	EnemyStats(class EnemyClass) (EntityStats, error)
	WaveConfig(wave int) (WaveConfig, error)
	GameConstants() (GameConstants, error)
	VisualConfig() (VisualConfig, error)

	// Reload recompiles the underlying source. On failure the previously
	// loaded values stay live and the error describes the compile problem.
	Reload() error
}
