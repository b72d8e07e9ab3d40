package world

// Params holds the tunable thresholds and pass counts for cave
// generation. Start from DefaultParams rather than the zero value.
type Params struct {
	// FillProbability is the chance that a cell starts out as wall.
	FillProbability float64 `json:"fillProbability"`
	// GrowthPasses is how many growth updates run after the random fill.
	GrowthPasses int `json:"growthPasses"`
	// CleanupPass controls whether a final pass erases the isolated
	// single-cell walls left behind by growth.
	CleanupPass bool `json:"cleanupPass"`
	// NewWallNeighbors is the local neighbor count at or above which any
	// cell becomes wall.
	NewWallNeighbors int `json:"newWallNeighbors"`
	// KeepWallNeighbors is the local neighbor count at which a cell that
	// is already wall persists. A floor cell with the same count stays
	// floor.
	KeepWallNeighbors int `json:"keepWallNeighbors"`
	// Workers bounds how many goroutines compute a single pass. Values
	// below 2 keep the pass on the calling goroutine; the generated map
	// is identical either way.
	Workers int `json:"workers"`
}

// DefaultParams returns the standard generation configuration.
func DefaultParams() Params {
	return Params{
		FillProbability:   0.45,
		GrowthPasses:      5,
		CleanupPass:       true,
		NewWallNeighbors:  5,
		KeepWallNeighbors: 4,
		Workers:           1,
	}
}

// normalize clamps out-of-range values so that generation is total.
func (p Params) normalize() Params {
	if p.FillProbability < 0 {
		p.FillProbability = 0
	}
	if p.FillProbability > 1 {
		p.FillProbability = 1
	}
	if p.GrowthPasses < 0 {
		p.GrowthPasses = 0
	}
	if p.NewWallNeighbors < 0 {
		p.NewWallNeighbors = 0
	}
	if p.KeepWallNeighbors < 0 {
		p.KeepWallNeighbors = 0
	}
	if p.Workers < 1 {
		p.Workers = 1
	}
	return p
}
