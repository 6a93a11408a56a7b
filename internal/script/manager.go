package script

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dop251/goja"
)

// Manager is the goja-backed Provider. The gameplay script is plain
// JavaScript defining one function per tuning query:
//
//	getPlayerStats()            -> EntityStats
//	getBasicEnemyStats()        -> EntityStats
//	getChaserEnemyStats()       -> EntityStats
//	getWaveComposition(wave)    -> WaveConfig
//	getGameConstants()          -> GameConstants
//	getVisualConfig()           -> VisualConfig
//
// Results cross the boundary as plain objects and are decoded through a
// JSON round-trip. Reload builds a fresh runtime and swaps it in only when
// the new source compiles, so a broken edit never clobbers live values.
type Manager struct {
	path string
	vm   *goja.Runtime
}

// NewManager compiles the script at path. On error the returned Manager is
// still usable: calls fail until a later Reload succeeds, letting callers
// fall back to defaults while keeping hot reload available.
func NewManager(path string) (*Manager, error) {
	m := &Manager{path: path}
	if err := m.Reload(); err != nil {
		return m, err
	}
	return m, nil
}

func (m *Manager) Reload() error {
	src, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("read script %s: %w", m.path, err)
	}

	vm := goja.New()
	if _, err := vm.RunScript(m.path, string(src)); err != nil {
		return fmt.Errorf("compile script %s: %w", m.path, err)
	}

	m.vm = vm
	return nil
}

func (m *Manager) PlayerStats() (EntityStats, error) {
	stats, err := callFunc[EntityStats](m, "getPlayerStats")
	if err != nil {
		return EntityStats{}, err
	}
	return stats, validateStats("getPlayerStats", stats)
}

func (m *Manager) EnemyStats(class EnemyClass) (EntityStats, error) {
	name := "getBasicEnemyStats"
	if class == EnemyClassChaser {
		name = "getChaserEnemyStats"
	}
	stats, err := callFunc[EntityStats](m, name)
	if err != nil {
		return EntityStats{}, err
	}
	return stats, validateStats(name, stats)
}

func (m *Manager) WaveConfig(wave int) (WaveConfig, error) {
	cfg, err := callFunc[WaveConfig](m, "getWaveComposition", wave)
	if err != nil {
		return WaveConfig{}, err
	}
	if cfg.BasicCount < 0 || cfg.ChaserCount < 0 {
		return WaveConfig{}, fmt.Errorf("getWaveComposition(%d) returned negative counts: %+v", wave, cfg)
	}
	return cfg, nil
}

func (m *Manager) GameConstants() (GameConstants, error) {
	gc, err := callFunc[GameConstants](m, "getGameConstants")
	if err != nil {
		return GameConstants{}, err
	}
	if gc.MaxWaves <= 0 {
		return GameConstants{}, fmt.Errorf("getGameConstants returned maxWaves=%d, want > 0", gc.MaxWaves)
	}
	return gc, nil
}

func (m *Manager) VisualConfig() (VisualConfig, error) {
	return callFunc[VisualConfig](m, "getVisualConfig")
}

func callFunc[T any](m *Manager, name string, args ...any) (T, error) {
	var out T

	if m.vm == nil {
		return out, fmt.Errorf("script %s is not loaded", m.path)
	}

	fn, ok := goja.AssertFunction(m.vm.Get(name))
	if !ok {
		return out, fmt.Errorf("script function %q not found in %s", name, m.path)
	}

	vals := make([]goja.Value, len(args))
	for i, a := range args {
		vals[i] = m.vm.ToValue(a)
	}

	res, err := fn(goja.Undefined(), vals...)
	if err != nil {
		return out, fmt.Errorf("call %s: %w", name, err)
	}

	blob, err := json.Marshal(res.Export())
	if err != nil {
		return out, fmt.Errorf("serialize result of %s: %w", name, err)
	}
	if err := json.Unmarshal(blob, &out); err != nil {
		return out, fmt.Errorf("decode result of %s: %w (result: %s)", name, err, string(blob))
	}
	return out, nil
}

func validateStats(name string, s EntityStats) error {
	if s.Radius <= 0 {
		return fmt.Errorf("%s returned radius=%.3f, want > 0", name, s.Radius)
	}
	if s.MaxSpeed < 0 || s.Acceleration < 0 {
		return fmt.Errorf("%s returned negative kinematics: %+v", name, s)
	}
	if s.Friction <= 0 || s.Friction > 1 {
		return fmt.Errorf("%s returned friction=%.3f, want in (0, 1]", name, s.Friction)
	}
	return nil
}
