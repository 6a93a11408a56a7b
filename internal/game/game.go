package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"nova-arena/internal/assets"
	"nova-arena/internal/script"
	"nova-arena/internal/telemetry"
	"nova-arena/internal/world"
)

type Options struct {
	ArenaW, ArenaH float32
	TickRate       int // fixed simulation steps per second
	Seed           int64
	Provider       script.Provider
	AssetDir       string
	AssetWorkers   int
}

type Game struct {
	w *world.World

	// fixed tick
	accum     time.Duration
	last      time.Time
	fixedStep time.Duration

	// asset loader
	loader *assets.Loader
	assets *AssetManager

	// telemetry sink
	telemetry *telemetry.Sink

	// cumulative stat baselines (for delta events)
	lastKills int
	lastWave  int
}

func New(opts Options) *Game {
	tick := opts.TickRate
	if tick <= 0 {
		tick = 30
	}
	g := &Game{
		w:         world.NewWorld(opts.ArenaW, opts.ArenaH, opts.Provider, opts.Seed),
		last:      time.Now(),
		fixedStep: time.Second / time.Duration(tick),
	}
	g.loader = assets.NewLoader(opts.AssetDir, opts.AssetWorkers)
	g.assets = NewAssetManager(g.loader)
	g.telemetry = telemetry.NewSink()

	// schedule loads early; the game runs on vector shapes until (and
	// unless) the sprite arrives
	g.assets.Request("player", "player.webp")
	return g
}

func (g *Game) Update() error {
	now := time.Now()
	g.assets.Poll()

	frameDt := now.Sub(g.last)
	g.last = now

	// avoid spiral of death on long pauses
	if frameDt > 250*time.Millisecond {
		frameDt = 250 * time.Millisecond
	}
	g.sendTelemetry(telemetry.Event{
		Kind: "frame",
		F:    float32(frameDt.Seconds()),
		At:   now,
	})

	g.accum += frameDt

	g.w.Enqueue(world.MsgInput{Input: ReadInput()})
	g.enqueueControls()

	// fixed-step simulation
	ticks := 0
	for g.accum >= g.fixedStep {
		g.w.Tick(float32(g.fixedStep.Seconds()))
		g.accum -= g.fixedStep
		ticks++
	}
	if ticks > 0 {
		g.sendTelemetry(telemetry.Event{Kind: "tick", I: ticks, At: now})
	}

	// commit at most one phase change per frame; restart the step clock when
	// play (re)starts so the backlog of a menu frame is not replayed
	if g.w.ApplyPendingPhase() && g.w.Phase() == world.PhasePlaying {
		g.accum = 0
	}

	g.emitWorldDeltas(now)
	return nil
}

// enqueueControls translates edge-triggered keys into world messages. The
// world decides per phase whether a message applies.
func (g *Game) enqueueControls() {
	slotKeys := [][2]ebiten.Key{
		{ebiten.Key1, ebiten.KeyKP1},
		{ebiten.Key2, ebiten.KeyKP2},
		{ebiten.Key3, ebiten.KeyKP3},
	}
	for slot, keys := range slotKeys {
		if inpututil.IsKeyJustPressed(keys[0]) || inpututil.IsKeyJustPressed(keys[1]) {
			g.w.Enqueue(world.MsgSelectWeapon{Slot: slot})
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.w.Enqueue(world.MsgTogglePause{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.w.Enqueue(world.MsgReloadScripts{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.w.Enqueue(world.MsgConfirm{})
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderFrame(screen, g.w.BuildFrame())
	g.drawPlayerSprite(screen)
}

func (g *Game) Layout(outsideW, outsideH int) (int, int) {
	return outsideW, outsideH
}

func (g *Game) Close() {
	if g.loader != nil {
		g.loader.Close()
		g.loader = nil
	}
	if g.telemetry != nil {
		g.telemetry.Close()
		g.telemetry = nil
	}
}

func (g *Game) emitWorldDeltas(at time.Time) {
	stats := g.w.Stats

	if stats.EnemiesKilled < g.lastKills {
		// world restarted, re-baseline
		g.lastKills = stats.EnemiesKilled
	} else if delta := stats.EnemiesKilled - g.lastKills; delta > 0 {
		g.sendTelemetry(telemetry.Event{Kind: "kill", I: delta, At: at})
		g.lastKills = stats.EnemiesKilled
	}

	if g.w.Wave < g.lastWave {
		g.lastWave = g.w.Wave
	} else if g.w.Wave > g.lastWave {
		g.sendTelemetry(telemetry.Event{Kind: "wave", I: g.w.Wave, At: at})
		g.lastWave = g.w.Wave
	}
}

func (g *Game) sendTelemetry(ev telemetry.Event) {
	if g.telemetry == nil {
		return
	}

	select {
	case g.telemetry.In <- ev:
	default:
		// Drop on backpressure to avoid stalling the fixed-step loop.
	}
}
