package world

import (
	"slices"

	"nova-arena/internal/commons/logger_config"
	"nova-arena/internal/geom"
)

// step runs the fixed-order simulation pipeline for one tick. Entities hit
// this tick are only marked; the actual slice compaction happens once at the
// end so every system observes the same population.
func (w *World) step(dt float32) {
	w.Player.ApplyInput(w.lastInput)
	cmds := w.Player.Update(dt)
	w.executeSpawns(cmds)

	target := w.Player.Pos
	for i := range w.Enemies {
		w.Enemies[i].Update(&target)
	}

	for i := range w.Projectiles {
		p := &w.Projectiles[i]
		p.Update(dt)
		p.UpdateHoming(dt, w.Enemies)
	}
	for i := range w.Projectiles {
		if w.Projectiles[i].Expired() {
			w.projectilesToDespawn[w.Projectiles[i].ID] = struct{}{}
		}
	}

	w.despawnProjectilesOutOfBounds()
	w.despawnEnemiesOutOfBounds()

	w.checkCollisions()
	w.processDespawns()
	w.checkPlayerBounds()
}

func (w *World) executeSpawns(cmds []SpawnCommand) {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case SpawnProjectile:
			w.spawnProjectile(c)
		case SpawnEnemy:
			w.spawnEnemy(c.Kind, c.Pos)
		}
	}
}

func (w *World) spawnProjectile(c SpawnProjectile) {
	vel := c.Vel
	switch c.Kind {
	case ProjectilePulse:
		// Pulses stay anchored to their spawn point.
		vel = geom.Vec2{}
	default:
		if l := vel.Len(); l > 0 {
			vel = vel.Mul(c.Stats.Speed / l)
		}
	}

	w.Projectiles = append(w.Projectiles, Projectile{
		ID:            w.allocID(),
		Pos:           c.Pos,
		Vel:           vel,
		Kind:          c.Kind,
		Stats:         c.Stats,
		TimeRemaining: c.Stats.TimeToLive,
		SourcePos:     c.Pos,
	})
}

func (w *World) spawnEnemy(kind EnemyKind, pos geom.Vec2) {
	stats := w.statsForClass(scriptClassFromEnemyKind(kind))

	// Aim at a jittered point around the arena center so a wave fans out
	// instead of converging on a single pixel.
	off := w.Constants.SpawnTargetOffset
	target := geom.Vec2{
		X: w.W/2 + w.randRange(-off, off),
		Y: w.H/2 + w.randRange(-off, off),
	}
	dir := target.Sub(pos).Norm()

	speed := stats.MaxSpeed
	if stats.MaxSpeed > 1 {
		speed = w.randRange(1, stats.MaxSpeed)
	}

	w.Enemies = append(w.Enemies, Enemy{
		ID:    w.allocID(),
		Pos:   pos,
		Vel:   dir.Mul(speed),
		Kind:  kind,
		Stats: stats,
	})
	w.Stats.EnemiesSpawned++
}

func (w *World) startNextWave() {
	if w.Wave >= w.Constants.MaxWaves {
		w.requestPhase(PhaseWon)
		return
	}

	cfg, err := w.provider.WaveConfig(w.Wave)
	if err != nil {
		w.errorMessage = err.Error()
		w.requestPhase(PhaseScriptError)
		logger_config.Errorf("wave %d config failed: %v", w.Wave, err)
		return
	}

	for i := 0; i < cfg.BasicCount; i++ {
		w.spawnEnemy(EnemyBasic, w.randBorderPos())
	}
	for i := 0; i < cfg.ChaserCount; i++ {
		w.spawnEnemy(EnemyChaser, w.randBorderPos())
	}
	w.Wave++
	w.Stats.WavesStarted++
	logger_config.Logger.Info("wave started",
		"wave", w.Wave,
		"basic", cfg.BasicCount,
		"chaser", cfg.ChaserCount)
}

// randBorderPos picks a uniformly random point on one of the four arena
// edges.
func (w *World) randBorderPos() geom.Vec2 {
	switch w.randIntn(4) {
	case 0: // top
		return geom.Vec2{X: w.randRange(0, w.W), Y: 0}
	case 1: // bottom
		return geom.Vec2{X: w.randRange(0, w.W), Y: w.H}
	case 2: // left
		return geom.Vec2{X: 0, Y: w.randRange(0, w.H)}
	default: // right
		return geom.Vec2{X: w.W, Y: w.randRange(0, w.H)}
	}
}

func (w *World) inBounds(pos geom.Vec2, margin float32) bool {
	return pos.X >= -margin && pos.X <= w.W+margin &&
		pos.Y >= -margin && pos.Y <= w.H+margin
}

func (w *World) despawnProjectilesOutOfBounds() {
	margin := w.Constants.OutOfBoundsMargin
	for i := range w.Projectiles {
		p := &w.Projectiles[i]
		if p.Kind == ProjectilePulse {
			// Anchored to the player, never strays.
			continue
		}
		if !w.inBounds(p.Pos, margin) {
			w.projectilesToDespawn[p.ID] = struct{}{}
		}
	}
}

func (w *World) despawnEnemiesOutOfBounds() {
	margin := w.Constants.OutOfBoundsMargin
	for i := range w.Enemies {
		if !w.inBounds(w.Enemies[i].Pos, margin) {
			w.enemiesToDespawn[w.Enemies[i].ID] = struct{}{}
		}
	}
}

func (w *World) checkCollisions() {
	w.checkPlayerEnemyCollisions()
	w.checkProjectileEnemyCollisions()
	w.checkEnemyEnemyCollisions()
}

func (w *World) checkPlayerEnemyCollisions() {
	pc := w.Player.Collider()
	hit := false
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if geom.CheckCollision(pc, w.Player.Pos, e.Collider(), e.Pos).Collided {
			hit = true
			w.enemiesToDespawn[e.ID] = struct{}{}
		}
	}
	if hit {
		w.requestPhase(PhaseGameOver)
	}
}

func (w *World) checkProjectileEnemyCollisions() {
	for i := range w.Projectiles {
		p := &w.Projectiles[i]
		for j := range w.Enemies {
			e := &w.Enemies[j]
			if !geom.CheckCollision(p.Collider(), p.Pos, e.Collider(), e.Pos).Collided {
				continue
			}
			w.enemiesToDespawn[e.ID] = struct{}{}
			if p.Kind != ProjectilePulse {
				// One hit per shot; pulses keep damaging.
				w.projectilesToDespawn[p.ID] = struct{}{}
			}
		}
	}
}

// checkEnemyEnemyCollisions resolves overlapping enemies with an equal-mass
// elastic impulse. Pairs already separating are left alone so they do not
// get glued together.
func (w *World) checkEnemyEnemyCollisions() {
	for i := 0; i < len(w.Enemies); i++ {
		for j := i + 1; j < len(w.Enemies); j++ {
			a, b := &w.Enemies[i], &w.Enemies[j]
			data := geom.CheckCollision(a.Collider(), a.Pos, b.Collider(), b.Pos)
			if !data.Collided {
				continue
			}
			relVel := a.Vel.Sub(b.Vel)
			along := relVel.Dot(data.Normal)
			if along >= 0 {
				continue
			}
			impulse := data.Normal.Mul(along)
			a.Vel = a.Vel.Sub(impulse)
			b.Vel = b.Vel.Add(impulse)
		}
	}
}

// processDespawns compacts the entity slices and pays out experience, one
// point per removed enemy regardless of how it left the arena.
func (w *World) processDespawns() {
	if kills := len(w.enemiesToDespawn); kills > 0 {
		w.Stats.EnemiesKilled += kills
		if w.Player.AddXP(kills) {
			w.requestPhase(PhaseWeaponSelection)
			logger_config.Logger.Info("level up",
				"level", w.Player.Level,
				"xp", w.Player.XP)
		}
		w.Enemies = slices.DeleteFunc(w.Enemies, func(e Enemy) bool {
			_, gone := w.enemiesToDespawn[e.ID]
			return gone
		})
		clear(w.enemiesToDespawn)
	}

	if len(w.projectilesToDespawn) > 0 {
		w.Projectiles = slices.DeleteFunc(w.Projectiles, func(p Projectile) bool {
			_, gone := w.projectilesToDespawn[p.ID]
			return gone
		})
		clear(w.projectilesToDespawn)
	}
}

func (w *World) checkPlayerBounds() {
	p := w.Player.Pos
	if p.X < 0 || p.X > w.W || p.Y < 0 || p.Y > w.H {
		w.requestPhase(PhaseGameOver)
	}
}
