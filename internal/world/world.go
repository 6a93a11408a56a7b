package world

import (
	"math/rand"

	"nova-arena/internal/commons/logger_config"
	"nova-arena/internal/geom"
	"nova-arena/internal/script"
	"nova-arena/internal/shared/input"
)

// World owns every entity collection and is their sole mutator. All
// simulation happens inside Tick on the caller's goroutine; the only
// external surfaces are the message inbox, BuildFrame, and the phase
// accessors.
type World struct {
	W, H float32

	inbox []Msg

	Player      Player
	Enemies     []Enemy
	Projectiles []Projectile

	Wave   int // waves started; also the next 0-based wave index
	Paused bool
	Stats  Stats

	Constants   script.GameConstants
	Visual      script.VisualConfig
	basicStats  script.EntityStats
	chaserStats script.EntityStats

	provider script.Provider

	phase           Phase
	pendingPhase    Phase
	hasPendingPhase bool
	errorMessage    string

	lastInput input.State

	nextID               EntityID
	enemiesToDespawn     map[EntityID]struct{}
	projectilesToDespawn map[EntityID]struct{}

	rng     *rand.Rand
	rngSeed int64
}

// NewWorld builds a session against the given tuning provider. Provider
// failures here degrade to hardcoded defaults so a broken script never
// prevents startup; explicit reloads surface errors instead.
func NewWorld(width, height float32, provider script.Provider, seed int64) *World {
	w := &World{
		W:                    width,
		H:                    height,
		provider:             provider,
		rngSeed:              seed,
		phase:                PhaseWeaponSelection,
		Enemies:              make([]Enemy, 0, 64),
		Projectiles:          make([]Projectile, 0, 64),
		enemiesToDespawn:     make(map[EntityID]struct{}, 16),
		projectilesToDespawn: make(map[EntityID]struct{}, 16),
	}
	w.ensureRNG()

	playerStats, err := provider.PlayerStats()
	if err != nil {
		logger_config.Warnf("player stats unavailable, using defaults: %v", err)
		playerStats = script.DefaultPlayerStats()
	}
	if w.Constants, err = provider.GameConstants(); err != nil {
		logger_config.Warnf("game constants unavailable, using defaults: %v", err)
		w.Constants = script.DefaultGameConstants()
	}
	if w.basicStats, err = provider.EnemyStats(script.EnemyClassBasic); err != nil {
		logger_config.Warnf("basic enemy stats unavailable, using defaults: %v", err)
		w.basicStats = script.DefaultEnemyStats(script.EnemyClassBasic)
	}
	if w.chaserStats, err = provider.EnemyStats(script.EnemyClassChaser); err != nil {
		logger_config.Warnf("chaser enemy stats unavailable, using defaults: %v", err)
		w.chaserStats = script.DefaultEnemyStats(script.EnemyClassChaser)
	}
	if w.Visual, err = provider.VisualConfig(); err != nil {
		logger_config.Warnf("visual config unavailable, using defaults: %v", err)
		w.Visual = script.DefaultVisualConfig()
	}

	w.Player = NewPlayer(geom.Vec2{X: width / 2, Y: height / 2}, playerStats)
	return w
}

func (w *World) Enqueue(m Msg) {
	w.inbox = append(w.inbox, m)
}

// Tick processes queued messages and, while playing and unpaused, runs one
// fixed simulation step. Phase transitions requested here are not applied
// until the frame loop calls ApplyPendingPhase.
func (w *World) Tick(dt float32) {
	for _, m := range w.inbox {
		switch msg := m.(type) {
		case MsgInput:
			w.lastInput = msg.Input
		case MsgSelectWeapon:
			if w.phase == PhaseWeaponSelection {
				w.selectWeapon(msg.Slot)
			}
		case MsgTogglePause:
			if w.phase == PhasePlaying {
				w.Paused = !w.Paused
			}
		case MsgReloadScripts:
			if w.phase == PhasePlaying || w.phase == PhaseScriptError {
				w.reloadScripts()
			}
		case MsgConfirm:
			if w.phase == PhaseGameOver || w.phase == PhaseWon || w.phase == PhaseScriptError {
				w.restart()
			}
		}
	}
	w.inbox = w.inbox[:0]

	if w.phase != PhasePlaying || w.Paused {
		return
	}

	if len(w.Enemies) == 0 {
		w.startNextWave()
		if w.hasPendingPhase {
			// Won the final wave, or the script failed to supply one.
			return
		}
	}

	w.step(dt)
}

// restart rebuilds the session in place, keeping arena size, provider and
// seed so a run after game over is reproducible under the same script.
func (w *World) restart() {
	*w = *NewWorld(w.W, w.H, w.provider, w.rngSeed)
}

func (w *World) selectWeapon(slot int) {
	if slot < 0 || slot >= WeaponSlotCount {
		return
	}
	kind := WeaponKind(slot)

	if idx := w.Player.WeaponIndex(kind); idx >= 0 {
		w.Player.Weapons[idx].LevelUp()
		logger_config.Infof("weapon upgraded: %s -> level %d", kind, w.Player.Weapons[idx].Level)
		w.requestPhase(PhasePlaying)
		return
	}
	if w.Player.AddWeapon(kind) {
		logger_config.Infof("weapon acquired: %s", kind)
		w.requestPhase(PhasePlaying)
	}
}

func (w *World) reloadScripts() {
	if err := w.reloadScriptsLocked(); err != nil {
		w.errorMessage = err.Error()
		w.requestPhase(PhaseScriptError)
		logger_config.Errorf("script reload failed: %v", err)
		return
	}
	w.requestPhase(PhasePlaying)
	logger_config.Infof("script reloaded")
}

// reloadScriptsLocked fetches every tuning value before touching any live
// state, so a partially broken script can never leave the world observing a
// half-updated configuration.
func (w *World) reloadScriptsLocked() error {
	if err := w.provider.Reload(); err != nil {
		return err
	}

	playerStats, err := w.provider.PlayerStats()
	if err != nil {
		return err
	}
	constants, err := w.provider.GameConstants()
	if err != nil {
		return err
	}
	basicStats, err := w.provider.EnemyStats(script.EnemyClassBasic)
	if err != nil {
		return err
	}
	chaserStats, err := w.provider.EnemyStats(script.EnemyClassChaser)
	if err != nil {
		return err
	}
	visual, err := w.provider.VisualConfig()
	if err != nil {
		return err
	}

	// Stats swap in place; positions and velocities are preserved.
	w.Player.Stats = playerStats
	w.Constants = constants
	w.basicStats = basicStats
	w.chaserStats = chaserStats
	w.Visual = visual

	for i := range w.Enemies {
		e := &w.Enemies[i]
		e.Stats = w.statsForClass(scriptClassFromEnemyKind(e.Kind))
	}
	return nil
}

func (w *World) statsForClass(c script.EnemyClass) script.EntityStats {
	if c == script.EnemyClassChaser {
		return w.chaserStats
	}
	return w.basicStats
}

func (w *World) allocID() EntityID {
	id := w.nextID
	w.nextID++
	return id
}
