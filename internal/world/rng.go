package world

import "math/rand"

func (w *World) ensureRNG() {
	if w.rng != nil {
		return
	}
	if w.rngSeed == 0 {
		w.rngSeed = 1
	}
	w.rng = rand.New(rand.NewSource(w.rngSeed))
}

func (w *World) randFloat32() float32 {
	w.ensureRNG()
	return w.rng.Float32()
}

func (w *World) randIntn(n int) int {
	w.ensureRNG()
	return w.rng.Intn(n)
}

// randRange returns a uniform float in [lo, hi).
func (w *World) randRange(lo, hi float32) float32 {
	return lo + w.randFloat32()*(hi-lo)
}
