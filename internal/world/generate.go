package world

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/JacobJanzen/map-generator/internal/rng"
	"github.com/JacobJanzen/map-generator/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Generator produces cave layouts from a random source using a fixed
// set of parameters.
type Generator struct {
	params Params
}

// NewGenerator creates a generator with the given parameters,
// clamping out-of-range values.
func NewGenerator(params Params) *Generator {
	return &Generator{params: params.normalize()}
}

// Params returns the normalized parameters the generator runs with.
func (gen *Generator) Params() Params {
	return gen.params
}

// Generate creates a cave layout: random fill, the configured number of
// growth passes, then the optional cleanup pass. Each pass reads the
// previous grid and writes a new one. The result is deterministic for a
// given source seed; zero-sized grids generate successfully and empty.
func (gen *Generator) Generate(ctx context.Context, height, width int, src Source) *Grid {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "cave.generate")
	defer span.End()

	startTime := time.Now()

	grid := NewGrid(height, width)
	grid.FillRandom(src, gen.params.FillProbability)

	for i := 0; i < gen.params.GrowthPasses; i++ {
		grid = GrowthStep(grid, gen.params)
	}

	if gen.params.CleanupPass {
		grid = CleanupStep(grid, gen.params)
	}

	// Record telemetry
	span.SetAttributes(
		attribute.Int("cave.width", grid.Width),
		attribute.Int("cave.height", grid.Height),
		attribute.Int("cave.growth_passes", gen.params.GrowthPasses),
		attribute.Bool("cave.cleanup_pass", gen.params.CleanupPass),
		attribute.Int("cave.wall_count", grid.WallCount()),
		attribute.Int64("cave.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return grid
}

// GenerateFromSeed resolves the seed string and generates with it.
// Identical seed strings always produce identical caves, which is what
// makes map codes shareable.
func (gen *Generator) GenerateFromSeed(ctx context.Context, height, width int, seed string) *Grid {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "cave.generate_from_seed")
	defer span.End()

	resolved := rng.ResolveSeed(seed)
	span.SetAttributes(
		attribute.String("cave.seed", seed),
		attribute.String("cave.seed_resolved", strconv.FormatUint(resolved, 10)),
	)

	return gen.Generate(ctx, height, width, rng.New(resolved))
}

// GenerateUnseeded generates from a fresh entropy seed. The result is
// not reproducible.
func (gen *Generator) GenerateUnseeded(ctx context.Context, height, width int) *Grid {
	return gen.Generate(ctx, height, width, rng.New(rng.EntropySeed()))
}

// GenerateCave builds a cave with default parameters from the provided
// source. Deterministic given the source's seed.
func GenerateCave(ctx context.Context, height, width int, src Source) *Grid {
	return NewGenerator(DefaultParams()).Generate(ctx, height, width, src)
}

// GenerateCaveFromSeed builds a cave with default parameters from a seed
// string.
func GenerateCaveFromSeed(ctx context.Context, height, width int, seed string) *Grid {
	return NewGenerator(DefaultParams()).GenerateFromSeed(ctx, height, width, seed)
}

// GenerateCaveUnseeded builds a cave with default parameters and a
// non-reproducible seed.
func GenerateCaveUnseeded(ctx context.Context, height, width int) *Grid {
	return NewGenerator(DefaultParams()).GenerateUnseeded(ctx, height, width)
}
