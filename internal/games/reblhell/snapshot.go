package reblhell

import "math"

// Snapshot captures the simulation state for determinism testing.
// Positions and health are fixed-point (thousandths) so equal runs hash
// equally.
type Snapshot struct {
	Frame   uint64
	Phase   int
	Kills   int
	Paused  bool
	Seed    int64
	CameraX int64
	CameraY int64

	HasPlayer    bool
	PlayerX      int64
	PlayerY      int64
	PlayerHealth int64

	// Each enemy is 3 values: X, Y, Health
	EnemyData []int64

	// Each projectile is 2 values: X, Y
	ProjectileData []int64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	w := g.world
	cam := w.Camera().Position
	snap := Snapshot{
		Frame:   w.Frame(),
		Phase:   int(w.Phase()),
		Kills:   w.Kills(),
		Paused:  g.paused,
		Seed:    g.seed,
		CameraX: fixed(cam.X),
		CameraY: fixed(cam.Y),
	}

	if p, err := w.PlayerState(); err == nil {
		snap.HasPlayer = true
		snap.PlayerX = fixed(p.Position.X)
		snap.PlayerY = fixed(p.Position.Y)
		snap.PlayerHealth = fixed(p.Health)
	}

	for _, e := range w.Enemies() {
		snap.EnemyData = append(snap.EnemyData, fixed(e.Position.X), fixed(e.Position.Y), fixed(e.Health))
	}
	for _, p := range w.Projectiles() {
		snap.ProjectileData = append(snap.ProjectileData, fixed(p.Position.X), fixed(p.Position.Y))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Phase)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Seed)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CameraX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CameraY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerHealth) //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}
	if snap.HasPlayer {
		h = h*31 + 1
	}

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(len(snap.EnemyData))

	for _, v := range snap.ProjectileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(len(snap.ProjectileData))

	return h
}

func fixed(v float64) int64 {
	return int64(math.Round(v * 1000))
}
