package world

import (
	"nova-arena/internal/commons/logger_config"
	"nova-arena/internal/geom"
)

// Phase is the active game mode. Transitions are requested during a tick
// and committed once per frame in ApplyPendingPhase so a phase can never
// switch mid-update and observe half-mutated entity collections.
type Phase int

const (
	PhaseWeaponSelection Phase = iota // initial, re-entered on level-up
	PhasePlaying
	PhaseGameOver
	PhaseScriptError
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseWeaponSelection:
		return "WeaponSelection"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	case PhaseScriptError:
		return "ScriptError"
	case PhaseWon:
		return "Won"
	default:
		return "Unknown"
	}
}

func (w *World) Phase() Phase { return w.phase }

// ErrorMessage is the human-readable script failure shown in the
// script-error phase, empty otherwise.
func (w *World) ErrorMessage() string { return w.errorMessage }

func (w *World) requestPhase(p Phase) {
	w.pendingPhase = p
	w.hasPendingPhase = true
}

// ApplyPendingPhase commits a requested transition, running entry hooks.
// It reports whether the phase changed, which the frame loop uses to reset
// its fixed-step clock when play (re)starts.
func (w *World) ApplyPendingPhase() bool {
	if !w.hasPendingPhase {
		return false
	}
	next := w.pendingPhase
	w.hasPendingPhase = false
	if next == w.phase {
		return false
	}

	switch next {
	case PhaseGameOver:
		// Keep the session configuration, just re-center the avatar.
		w.Player.Reset(geom.Vec2{X: w.W / 2, Y: w.H / 2})
	case PhasePlaying:
		w.errorMessage = ""
	}

	logger_config.Logger.Info("phase transition",
		"from", w.phase.String(),
		"to", next.String(),
		"wave", w.Wave,
	)
	w.phase = next
	return true
}
