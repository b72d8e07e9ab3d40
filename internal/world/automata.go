package world

import "sync"

// growthCell computes the next value of (row, col) for a growth pass.
// Rules in priority order: crowded cells become wall, completely open
// cells sprout wall, and a wall at exactly the keep threshold persists.
func growthCell(prev *Grid, row, col int, p Params) bool {
	n := prev.CountNeighbors(row, col)
	if n >= p.NewWallNeighbors || prev.IsEmptySpace(row, col) {
		return true
	}
	if n == p.KeepWallNeighbors && prev.Get(row, col) {
		return true
	}
	return false
}

// cleanupCell computes the next value of (row, col) for the cleanup pass:
// the growth rule minus the empty-space clause, which erases the isolated
// single-cell walls that clause grew.
func cleanupCell(prev *Grid, row, col int, p Params) bool {
	n := prev.CountNeighbors(row, col)
	if n >= p.NewWallNeighbors {
		return true
	}
	if n == p.KeepWallNeighbors && prev.Get(row, col) {
		return true
	}
	return false
}

// GrowthStep produces the next generation of prev under the growth rule.
// prev is only read; the result is a fresh grid, so every new cell is
// computed against the same untouched snapshot.
func GrowthStep(prev *Grid, p Params) *Grid {
	return applyStep(prev, p.Workers, func(row, col int) bool {
		return growthCell(prev, row, col, p)
	})
}

// CleanupStep produces the next generation of prev under the cleanup rule.
func CleanupStep(prev *Grid, p Params) *Grid {
	return applyStep(prev, p.Workers, func(row, col int) bool {
		return cleanupCell(prev, row, col, p)
	})
}

// applyStep maps rule over every cell of prev into a new grid. With more
// than one worker the rows are split into bands computed concurrently;
// reads touch only prev and each band writes only its own rows of the new
// grid, so the result is identical to the serial pass.
func applyStep(prev *Grid, workers int, rule func(row, col int) bool) *Grid {
	next := NewGrid(prev.Height, prev.Width)

	if workers > prev.Height {
		workers = prev.Height
	}
	if workers < 2 {
		for row := 0; row < prev.Height; row++ {
			for col := 0; col < prev.Width; col++ {
				next.Set(row, col, rule(row, col))
			}
		}
		return next
	}

	rowsPerWorker := (prev.Height + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < prev.Height; start += rowsPerWorker {
		end := start + rowsPerWorker
		if end > prev.Height {
			end = prev.Height
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for row := start; row < end; row++ {
				for col := 0; col < prev.Width; col++ {
					next.Set(row, col, rule(row, col))
				}
			}
		}(start, end)
	}
	wg.Wait()

	return next
}
