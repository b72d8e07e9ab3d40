package world

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JacobJanzen/map-generator/internal/rng"
)

func TestGenerateReproducibility(t *testing.T) {
	// Generate two caves from the same seed
	ctx := context.Background()

	g1 := GenerateCave(ctx, DefaultHeight, DefaultWidth, rng.New(12345))
	g2 := GenerateCave(ctx, DefaultHeight, DefaultWidth, rng.New(12345))

	if diff := cmp.Diff(g1, g2); diff != "" {
		t.Errorf("Caves from the same seed differ (-first +second):\n%s", diff)
	}
}

func TestGenerateDifferentSeeds(t *testing.T) {
	// Generate two caves with different seeds - they should be different
	ctx := context.Background()

	g1 := GenerateCave(ctx, DefaultHeight, DefaultWidth, rng.New(12345))
	g2 := GenerateCave(ctx, DefaultHeight, DefaultWidth, rng.New(54321))

	// Identical layouts from different seeds are vanishingly unlikely
	// at this size.
	if g1.Equal(g2) {
		t.Error("Caves with different seeds should not be identical")
	}
}

func TestGenerateFromSeedString(t *testing.T) {
	ctx := context.Background()

	tests := []string{"0", "12345", "glittering caves", "  77 "}
	for _, seed := range tests {
		g1 := GenerateCaveFromSeed(ctx, 10, 10, seed)
		g2 := GenerateCaveFromSeed(ctx, 10, 10, seed)

		if g1.Height != 10 || g1.Width != 10 {
			t.Errorf("Seed %q: got %dx%d grid, want 10x10", seed, g1.Height, g1.Width)
		}
		if diff := cmp.Diff(g1, g2); diff != "" {
			t.Errorf("Seed %q not reproducible (-first +second):\n%s", seed, diff)
		}
	}
}

func TestGenerateUnseededVaries(t *testing.T) {
	ctx := context.Background()

	g1 := GenerateCaveUnseeded(ctx, DefaultHeight, DefaultWidth)
	g2 := GenerateCaveUnseeded(ctx, DefaultHeight, DefaultWidth)

	if g1.Equal(g2) {
		t.Error("Unseeded caves should not repeat")
	}
}

func TestGenerateFullFill(t *testing.T) {
	// Probability 1 fills everything; growth and cleanup keep it solid.
	ctx := context.Background()

	p := DefaultParams()
	p.FillProbability = 1
	g := NewGenerator(p).Generate(ctx, 8, 8, rng.New(1))

	if got := g.WallCount(); got != 64 {
		t.Errorf("WallCount = %d, want 64", got)
	}
}

func TestGenerateNoFillNoPasses(t *testing.T) {
	// Probability 0 with no passes leaves the grid open.
	ctx := context.Background()

	p := DefaultParams()
	p.FillProbability = 0
	p.GrowthPasses = 0
	p.CleanupPass = false
	g := NewGenerator(p).Generate(ctx, 8, 8, rng.New(1))

	if got := g.WallCount(); got != 0 {
		t.Errorf("WallCount = %d, want 0", got)
	}
}

func TestGenerateZeroSize(t *testing.T) {
	ctx := context.Background()

	g := GenerateCaveFromSeed(ctx, 0, 0, "42")
	if g.Height != 0 || g.Width != 0 {
		t.Errorf("Got %dx%d grid, want 0x0", g.Height, g.Width)
	}
}

func TestNewGeneratorNormalizesParams(t *testing.T) {
	p := Params{
		FillProbability:   1.5,
		GrowthPasses:      -3,
		NewWallNeighbors:  -1,
		KeepWallNeighbors: -1,
		Workers:           0,
	}
	got := NewGenerator(p).Params()

	if got.FillProbability != 1 {
		t.Errorf("FillProbability = %v, want 1", got.FillProbability)
	}
	if got.GrowthPasses != 0 {
		t.Errorf("GrowthPasses = %d, want 0", got.GrowthPasses)
	}
	if got.NewWallNeighbors != 0 || got.KeepWallNeighbors != 0 {
		t.Errorf("Thresholds = %d/%d, want 0/0", got.NewWallNeighbors, got.KeepWallNeighbors)
	}
	if got.Workers != 1 {
		t.Errorf("Workers = %d, want 1", got.Workers)
	}
}

func TestGenerateParallelMatchesSerial(t *testing.T) {
	// The full pipeline must not depend on the worker count.
	ctx := context.Background()

	serial := DefaultParams()
	parallel := DefaultParams()
	parallel.Workers = 4

	g1 := NewGenerator(serial).Generate(ctx, 40, 60, rng.New(99))
	g2 := NewGenerator(parallel).Generate(ctx, 40, 60, rng.New(99))

	if diff := cmp.Diff(g1, g2); diff != "" {
		t.Errorf("Parallel generation differs from serial (-serial +parallel):\n%s", diff)
	}
}
