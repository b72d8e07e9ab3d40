package world

// Source yields independent Bernoulli draws for the random fill.
// *rng.Source implements it; tests may substitute scripted sources.
type Source interface {
	Bool(probability float64) bool
}

// FillRandom sets every cell from one draw per cell. The stream is
// consumed in strict row-major order (top to bottom, left to right) so
// that a given seed always reproduces the same initial grid.
func (g *Grid) FillRandom(src Source, probability float64) {
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			g.Set(row, col, src.Bool(probability))
		}
	}
}
