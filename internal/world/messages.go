package world

import "nova-arena/internal/shared/input"

type Msg interface{ isMsg() }

type MsgInput struct{ Input input.State }

func (MsgInput) isMsg() {}

// MsgSelectWeapon picks one of the three weapon slots during weapon
// selection (0 = energy ball, 1 = pulse, 2 = homing missile).
type MsgSelectWeapon struct {
	Slot int
}

func (MsgSelectWeapon) isMsg() {}

type MsgTogglePause struct{}

func (MsgTogglePause) isMsg() {}

// MsgReloadScripts re-runs the tuning script. Success re-applies stats to
// live entities; failure transitions to the script-error phase.
type MsgReloadScripts struct{}

func (MsgReloadScripts) isMsg() {}

// MsgConfirm restarts the session from the game-over, won, or script-error
// phase.
type MsgConfirm struct{}

func (MsgConfirm) isMsg() {}
