package kokaton

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Tick       int
	Score      int
	GameOver   bool
	Outcome    int
	BirdX      int
	BirdY      int
	DirX       int
	DirY       int
	Dead       bool
	Blasts     int   // Explosions created so far
	BombData   []int // x, y, vx, vy per bomb
	BeamData   []int // x, y, vx, vy per beam
	EffectData []int // x, y, life, frame per explosion
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Score:    g.State().Score,
		GameOver: g.gameOver,
		Outcome:  int(g.outcome),
		Blasts:   g.blasts,
	}
	if g.bird != nil {
		snap.BirdX, snap.BirdY = g.bird.Rect().X, g.bird.Rect().Y
		snap.DirX, snap.DirY = g.bird.Dir().X, g.bird.Dir().Y
		snap.Dead = g.bird.Dead()
	}

	snap.BombData = make([]int, 0, len(g.bombs)*4)
	for _, o := range g.bombs {
		snap.BombData = append(snap.BombData, o.rect.X, o.rect.Y, o.vel.X, o.vel.Y)
	}
	snap.BeamData = make([]int, 0, len(g.beams)*4)
	for _, p := range g.beams {
		snap.BeamData = append(snap.BeamData, p.rect.X, p.rect.Y, p.vel.X, p.vel.Y)
	}
	snap.EffectData = make([]int, 0, len(g.explosions)*4)
	for _, e := range g.explosions {
		snap.EffectData = append(snap.EffectData, e.rect.X, e.rect.Y, e.life, e.frame)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BirdX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BirdY)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DirX)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DirY)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Blasts)        //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.BombData)) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + boolBit(snap.Dead)

	for _, v := range snap.BombData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BeamData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EffectData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
