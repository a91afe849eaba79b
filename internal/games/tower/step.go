package tower

import "github.com/vovakirdan/lava-tower/internal/core"

// simulate runs one playing tick. The order of the phases is part of the
// game rules: the first transition to Won or Lost ends the tick, so lava
// proximity is judged before rock hits and a loss can never become a win.
func (e *Engine) simulate(in Input) {
	w := &e.world
	w.compact()
	w.Tick++

	e.moveHorizontal(in)
	e.jump(in)
	e.integrate()
	e.landOnPlatforms()
	e.clampVertical()
	e.riseLava()

	if e.touchingLava() {
		e.machine.Lose()
		return
	}

	e.spawnRock()
	if e.updateRocks() {
		e.machine.Lose()
		return
	}

	e.updateCoins()
	e.updateKey()
	e.spawnPowerUp()
	e.updatePowerUps()
	e.decayPowerUp()
	e.animateDoor()

	if e.atOpenDoor() {
		e.machine.Win()
	}
}

func (e *Engine) moveHorizontal(in Input) {
	p := &e.world.Player
	step := e.cfg.Player.MoveSpeed * e.cfg.Playfield.TickMs
	if in.Left {
		p.X -= step
	}
	if in.Right {
		p.X += step
	}
	p.X = core.ClampF(p.X, p.Width/2, e.cfg.Playfield.Width-p.Width/2)
}

func (e *Engine) jump(in Input) {
	p := &e.world.Player
	if in.Jump && !p.Jumping {
		p.VelocityY = e.cfg.Player.JumpImpulse
		p.Jumping = true
	}
}

// integrate is semi-implicit Euler: velocity first, then position.
func (e *Engine) integrate() {
	p := &e.world.Player
	dt := e.cfg.Playfield.TickMs
	p.VelocityY -= e.cfg.Player.Gravity * dt
	p.Y += p.VelocityY * dt
}

func (e *Engine) landOnPlatforms() {
	p := &e.world.Player
	probe := e.cfg.Platforms.ProbeHeight
	for _, pl := range e.world.Platforms {
		if pl.Destroyed || p.VelocityY > 0 {
			continue
		}
		if core.BoxOverlap(p.Feet(probe), pl.Top(probe)) {
			p.Y = pl.Y + pl.Height
			p.VelocityY = 0
			p.Jumping = false
		}
	}
}

func (e *Engine) clampVertical() {
	p := &e.world.Player
	if p.Y <= e.cfg.Playfield.Floor {
		p.Y = e.cfg.Playfield.Floor
		p.VelocityY = 0
		p.Jumping = false
	}
	if p.Y > e.cfg.Playfield.Height {
		p.Y = e.cfg.Playfield.Height
	}
}

func (e *Engine) riseLava() {
	lava := &e.world.Lava
	speed := lava.Speed
	if e.world.Player.PowerUp == PowerSlowLava {
		speed *= e.cfg.Lava.SlowFactor
	}
	lava.Height += speed
	lava.Speed += lava.Ramp

	for i := range e.world.Platforms {
		pl := &e.world.Platforms[i]
		if !pl.Destroyed && pl.Y+pl.Height < lava.Height {
			pl.Destroyed = true
		}
	}
}

func (e *Engine) touchingLava() bool {
	return e.world.Player.Y < e.world.Lava.Height+e.cfg.Lava.Margin
}

func (e *Engine) spawnRock() {
	w := &e.world
	if w.Tick-w.LastRockSpawn <= w.RockDelay {
		return
	}

	rc := e.cfg.Rocks
	w.RockSpawns++
	w.Rocks = append(w.Rocks, Rock{
		ID:     w.RockSpawns,
		X:      float64(intn(e.rng, int(e.cfg.Playfield.Width))),
		Y:      e.cfg.Playfield.Height,
		Size:   rc.Size,
		Speed:  rc.MinSpeed + float64(intn(e.rng, 100))/100*rc.SpeedRange,
		Active: true,
	})
	w.LastRockSpawn = w.Tick
	w.RockDelay = nextRockDelay(&e.cfg, e.rng, e.difficulty, w.Player.Score, w.Tick)
}

// updateRocks moves the rocks and resolves hits. It reports whether the
// player ran out of lives.
func (e *Engine) updateRocks() bool {
	p := &e.world.Player
	shielded := p.PowerUp == PowerShield

	hitbox := p.Hitbox(0)
	if shielded {
		hitbox = p.Hitbox(e.cfg.Rocks.ShieldBonus)
	}

	for i := range e.world.Rocks {
		r := &e.world.Rocks[i]
		if !r.Active {
			continue
		}
		r.Y -= r.Speed

		if core.CircleOverlap(hitbox, r.Circle()) {
			r.Active = false
			if !shielded {
				p.Lives--
				if p.Lives <= 0 {
					p.Lives = 0
					return true
				}
			}
			continue
		}

		if r.Y < -r.Size {
			r.Active = false
		}
	}
	return false
}

func (e *Engine) updateCoins() {
	w := &e.world
	hitbox := w.Player.Hitbox(0)

	for i := range w.Coins {
		c := &w.Coins[i]
		if c.Collected {
			continue
		}
		c.Rotation += e.cfg.Coins.Spin

		if !core.CircleOverlap(hitbox, c.Circle()) {
			continue
		}
		c.Collected = true
		w.Player.Score += e.cfg.Coins.Score

		if w.CoinsLeft() == 0 && !w.Key.Spawned {
			w.Key.Spawned = true
			w.Key.X = e.cfg.Playfield.Width / 2
			w.Key.Y = w.Door.Y - e.cfg.Key.DoorOffset
		}
	}
}

func (e *Engine) updateKey() {
	w := &e.world
	if !w.Key.Spawned || w.Key.Collected {
		return
	}
	w.Key.Rotation += e.cfg.Key.Spin

	if core.CircleOverlap(w.Player.Hitbox(0), w.Key.Circle()) {
		w.Key.Collected = true
		w.Player.HasKey = true
		w.Door.Unlocked = true
	}
}

func (e *Engine) spawnPowerUp() {
	w := &e.world
	pc := e.cfg.PowerUps
	if w.Tick-w.LastPowerUpSpawn <= pc.SpawnInterval || w.alivePowerUps() >= pc.MaxAlive {
		return
	}

	kind := PowerShield
	if w.PowerUpSpawns%2 == 1 {
		kind = PowerSlowLava
	}
	w.PowerUpSpawns++
	w.PowerUps = append(w.PowerUps, PowerUp{
		ID:    w.PowerUpSpawns,
		X:     float64(intn(e.rng, int(e.cfg.Playfield.Width-2*pc.Margin))) + pc.Margin,
		Y:     w.Lava.Height + pc.AboveLava + float64(intn(e.rng, pc.HeightRange)),
		Size:  pc.Size,
		Kind:  kind,
		Timer: pc.Lifetime,
	})
	w.LastPowerUpSpawn = w.Tick
}

func (e *Engine) updatePowerUps() {
	w := &e.world
	hitbox := w.Player.Hitbox(0)

	for i := range w.PowerUps {
		pu := &w.PowerUps[i]
		if pu.Collected {
			continue
		}
		pu.Rotation += e.cfg.PowerUps.Spin
		pu.Timer--
		if pu.Timer <= 0 {
			pu.Collected = true // expired unused
			continue
		}

		if core.CircleOverlap(hitbox, pu.Circle()) {
			pu.Collected = true
			w.Player.PowerUp = pu.Kind
			w.Player.PowerTicks = e.cfg.PowerUps.Duration
		}
	}
}

func (e *Engine) decayPowerUp() {
	p := &e.world.Player
	if p.PowerUp == PowerNone {
		return
	}
	p.PowerTicks--
	if p.PowerTicks <= 0 {
		p.PowerUp = PowerNone
		p.PowerTicks = 0
	}
}

func (e *Engine) animateDoor() {
	d := &e.world.Door
	if d.Unlocked && d.Opening < 1 {
		d.Opening = min(d.Opening+e.cfg.Door.OpenRate, 1)
	}
}

func (e *Engine) atOpenDoor() bool {
	w := &e.world
	return w.Door.Unlocked && core.BoxOverlap(w.Player.Body(), w.Door.Box())
}
