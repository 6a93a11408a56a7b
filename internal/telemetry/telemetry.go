package telemetry

import (
	"sync"
	"time"

	"nova-arena/internal/commons/logger_config"
)

// Event kinds:
//
//	"kill"  I = enemies destroyed since the last event
//	"wave"  I = wave number just started
//	"frame" F = frame dt in seconds
//	"tick"  I = fixed simulation steps run this frame
type Event struct {
	Kind string
	I    int
	F    float32
	At   time.Time
}

// Batch is one flush interval's aggregate.
type Batch struct {
	Kills    int
	LastWave int
	Frames   int
	Ticks    int
	AvgDt    float32
}

// Sink aggregates gameplay events off the main thread and flushes a batch
// summary on a fixed interval. Producers must never block on In; drop on
// backpressure instead.
type Sink struct {
	In chan Event

	quit      chan struct{}
	closeOnce sync.Once
}

func NewSink() *Sink {
	return newSink(2*time.Second, logBatch)
}

func newSink(interval time.Duration, emit func(Batch)) *Sink {
	s := &Sink{
		In:   make(chan Event, 256),
		quit: make(chan struct{}),
	}
	go s.loop(interval, emit)
	return s
}

func (s *Sink) Close() {
	s.closeOnce.Do(func() { close(s.quit) })
}

func (s *Sink) loop(interval time.Duration, emit func(Batch)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var b Batch
	var dtSum float32

	for {
		select {
		case <-s.quit:
			return

		case ev := <-s.In:
			switch ev.Kind {
			case "kill":
				b.Kills += ev.I
			case "wave":
				b.LastWave = ev.I
			case "frame":
				b.Frames++
				dtSum += ev.F
			case "tick":
				b.Ticks += ev.I
			}

		case <-ticker.C:
			if b.Frames > 0 {
				b.AvgDt = dtSum / float32(b.Frames)
			}
			if emit != nil {
				emit(b)
			}
			b = Batch{}
			dtSum = 0
		}
	}
}

func logBatch(b Batch) {
	logger_config.Logger.Info("telemetry batch",
		"kills", b.Kills,
		"wave", b.LastWave,
		"frames", b.Frames,
		"ticks", b.Ticks,
		"avgDt", b.AvgDt,
	)
}
