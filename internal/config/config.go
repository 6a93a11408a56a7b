package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the application-level configuration: window, arena, and the
// tuning script location. Gameplay numbers themselves live in the script,
// not here.
type Config struct {
	Window Window `yaml:"window"`
	Arena  Arena  `yaml:"arena"`
	Sim    Sim    `yaml:"sim"`
	Script Script `yaml:"script"`
	Assets Assets `yaml:"assets"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Arena struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type Sim struct {
	TickRate int   `yaml:"tick_rate"` // fixed steps per second
	Seed     int64 `yaml:"seed"`      // 0 picks a fixed default
}

type Script struct {
	Path string `yaml:"path"`
}

type Assets struct {
	Dir     string `yaml:"dir"`
	Workers int    `yaml:"workers"`
}

func (w Window) GetWidth() int    { return intOr(w.Width, 800) }
func (w Window) GetHeight() int   { return intOr(w.Height, 600) }
func (w Window) GetTitle() string { return strOr(w.Title, "Nova Arena") }

func (a Arena) GetWidth() float32  { return f32Or(a.Width, 800) }
func (a Arena) GetHeight() float32 { return f32Or(a.Height, 600) }

func (s Sim) GetTickRate() int { return intOr(s.TickRate, 30) }

// GetScriptPath resolves config -> NOVA_SCRIPT env -> default.
func (s Script) GetPath() string {
	if s.Path != "" {
		return s.Path
	}
	if p := os.Getenv("NOVA_SCRIPT"); p != "" {
		return p
	}
	return "scripts/waves.js"
}

func (a Assets) GetDir() string { return strOr(a.Dir, "assets") }

func (a Assets) GetWorkers() int {
	if a.Workers > 0 {
		return a.Workers
	}
	if v := os.Getenv("NOVA_ASSET_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 2
}

// Load reads a YAML configuration file. With an empty path it consults the
// NOVA_CONFIG env var; if that is empty too it returns (nil, nil) and the
// caller runs on defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("NOVA_CONFIG")
		if path == "" {
			return nil, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func intOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func f32Or(v, def float32) float32 {
	if v > 0 {
		return v
	}
	return def
}

func strOr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
