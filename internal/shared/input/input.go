package input

// State is a per-frame snapshot of the movement keys and the aim cursor in
// arena coordinates. The world never polls devices itself; the presentation
// layer samples this once per frame and enqueues it.
type State struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	AimX float32
	AimY float32
}
