package script

// Hardcoded fallbacks used when the script cannot be loaded at startup.
// They keep the game playable without any script on disk.

func DefaultPlayerStats() EntityStats {
	return EntityStats{Radius: 20, MaxSpeed: 5, Acceleration: 1, Friction: 0.9}
}

func DefaultEnemyStats(class EnemyClass) EntityStats {
	if class == EnemyClassChaser {
		return EntityStats{Radius: 12, MaxSpeed: 4, Acceleration: 0.8, Friction: 0.95}
	}
	return EntityStats{Radius: 15, MaxSpeed: 3, Acceleration: 0.5, Friction: 0.95}
}

func DefaultGameConstants() GameConstants {
	return GameConstants{
		OutOfBoundsMargin: 50,
		SpawnTargetOffset: 100,
		MaxWaves:          10,
	}
}

func DefaultWaveConfig(wave int) WaveConfig {
	return WaveConfig{BasicCount: 3 + wave*2, ChaserCount: wave}
}

func DefaultVisualConfig() VisualConfig {
	yellow := Color{R: 1, G: 1, B: 0, A: 1}
	green := Color{R: 0, G: 1, B: 0, A: 1}
	red := Color{R: 1, G: 0, B: 0, A: 1}
	orange := Color{R: 1, G: 0.65, B: 0, A: 1}
	purple := Color{R: 0.5, G: 0, B: 0.5, A: 1}
	white := Color{R: 1, G: 1, B: 1, A: 1}

	return VisualConfig{
		Player:        EntityVisual{BodyColor: yellow, IndicatorColor: green, IndicatorSize: 3},
		BasicEnemy:    EntityVisual{BodyColor: red, IndicatorColor: white, IndicatorSize: 2},
		ChaserEnemy:   EntityVisual{BodyColor: orange, IndicatorColor: white, IndicatorSize: 2},
		EnergyBall:    EntityVisual{BodyColor: purple, IndicatorColor: white, IndicatorSize: 1},
		Pulse:         EntityVisual{BodyColor: Color{R: 0.5, G: 0, B: 0.5, A: 0.3}, IndicatorColor: purple, IndicatorSize: 1},
		HomingMissile: EntityVisual{BodyColor: red, IndicatorColor: white, IndicatorSize: 1.5},
	}
}
