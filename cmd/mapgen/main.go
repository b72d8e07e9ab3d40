// Package main is the entry point for mapgen.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"github.com/joho/godotenv"

	"github.com/JacobJanzen/map-generator/internal/atlas"
	"github.com/JacobJanzen/map-generator/internal/render"
	"github.com/JacobJanzen/map-generator/internal/rng"
	"github.com/JacobJanzen/map-generator/internal/telemetry"
	"github.com/JacobJanzen/map-generator/internal/theme"
	"github.com/JacobJanzen/map-generator/internal/ui"
	"github.com/JacobJanzen/map-generator/internal/world"
)

// options collects every command line setting.
type options struct {
	height    int
	width     int
	seed      string
	passes    int
	fill      float64
	noCleanup bool
	workers   int
	themeID   string
	noBorder  bool

	interactive bool

	dbPath string
	save   string
	show   string
	del    string
	list   bool
}

var themes *theme.Registry

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_MAPGEN_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Generation will run without observability")
		// Continue without telemetry - maps still generate
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	opts := initOptions()

	if err := run(ctx, opts); err != nil {
		log.Fatalf("mapgen: %v", err)
	}
}

// initOptions declares and parses the command line flags.
func initOptions() *options {
	themes = theme.MustLoadRegistry()
	defaults := world.DefaultParams()

	opts := &options{
		height:  world.DefaultHeight,
		width:   world.DefaultWidth,
		passes:  defaults.GrowthPasses,
		fill:    defaults.FillProbability,
		workers: defaults.Workers,
		themeID: themes.Default().ID,
		dbPath:  defaultDBPath(),
	}

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&opts.height, "y", "height", "Height of the generated map")
	flaggy.Int(&opts.width, "x", "width", "Width of the generated map")
	flaggy.String(&opts.seed, "s", "seed", "Map code: a number or any phrase; empty picks a random seed")
	flaggy.Int(&opts.passes, "p", "passes", "Number of growth passes")
	flaggy.Float64(&opts.fill, "f", "fill", "Probability that a cell starts as wall, from 0 to 1")
	flaggy.Bool(&opts.noCleanup, "", "no-cleanup", "Skip the final cleanup pass")
	flaggy.Int(&opts.workers, "w", "workers", "Goroutines per generation pass")
	flaggy.String(&opts.themeID, "t", "theme", "Display theme ["+strings.Join(themes.IDs(), "|")+"]")
	flaggy.Bool(&opts.noBorder, "", "no-border", "Print without the surrounding wall border")
	flaggy.Bool(&opts.interactive, "i", "interactive", "Start the interactive viewer")
	flaggy.String(&opts.dbPath, "d", "db", "Path to the atlas database")
	flaggy.String(&opts.save, "", "save", "Save the generated map under this name")
	flaggy.String(&opts.show, "", "show", "Rebuild and print a saved map")
	flaggy.String(&opts.del, "", "delete", "Delete a saved map")
	flaggy.Bool(&opts.list, "l", "list", "List saved maps")

	flaggy.Parse()

	if themes.GetByID(opts.themeID) == nil {
		flaggy.ShowHelpAndExit("unknown theme")
	}
	if opts.fill < 0 || opts.fill > 1 {
		flaggy.ShowHelpAndExit("fill probability must be between 0 and 1")
	}

	return opts
}

// run dispatches to the selected mode.
func run(ctx context.Context, opts *options) error {
	params := world.DefaultParams()
	params.FillProbability = opts.fill
	params.GrowthPasses = opts.passes
	params.CleanupPass = !opts.noCleanup
	params.Workers = opts.workers

	switch {
	case opts.list:
		return listMaps(opts)
	case opts.show != "":
		return showMap(ctx, opts)
	case opts.del != "":
		return deleteMap(opts)
	case opts.interactive:
		return runViewer(ctx, opts, params)
	default:
		return generateAndPrint(ctx, opts, params)
	}
}

// generateAndPrint builds a map, optionally saves it, and writes it to
// stdout.
func generateAndPrint(ctx context.Context, opts *options, params world.Params) error {
	seed := opts.seed
	if seed == "" {
		seed = strconv.FormatUint(rng.EntropySeed(), 10)
		log.Printf("Generated seed: %s", seed)
	}

	grid := world.NewGenerator(params).GenerateFromSeed(ctx, opts.height, opts.width, seed)

	if opts.save != "" {
		paramsJSON, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("encode params: %w", err)
		}

		store, err := atlas.Open(opts.dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		entry := &atlas.Entry{
			Name:       opts.save,
			Seed:       seed,
			Height:     opts.height,
			Width:      opts.width,
			ParamsJSON: paramsJSON,
		}
		if err := store.Save(entry); err != nil {
			return err
		}
		log.Printf("Saved map %q (seed %s)", opts.save, seed)
	}

	fmt.Println(render.Text(grid, renderOptions(opts)))
	return nil
}

// listMaps prints every saved map record, newest first.
func listMaps(opts *options) error {
	store, err := atlas.Open(opts.dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No saved maps.")
		return nil
	}
	for _, e := range entries {
		created := time.Unix(0, e.CreatedAt).Format("2006-01-02 15:04")
		fmt.Printf("%-20s %4dx%-4d seed %-24q %s\n", e.Name, e.Width, e.Height, e.Seed, created)
	}
	return nil
}

// showMap rebuilds a saved map from its stored seed and prints it.
func showMap(ctx context.Context, opts *options) error {
	store, err := atlas.Open(opts.dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.GetByName(opts.show)
	if err != nil {
		return err
	}

	grid, err := entry.Regenerate(ctx)
	if err != nil {
		return err
	}

	fmt.Println(render.Text(grid, renderOptions(opts)))
	return nil
}

// deleteMap removes a saved map record.
func deleteMap(opts *options) error {
	store, err := atlas.Open(opts.dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(opts.del); err != nil {
		return err
	}
	log.Printf("Deleted map %q", opts.del)
	return nil
}

// runViewer starts the interactive terminal viewer.
func runViewer(ctx context.Context, opts *options, params world.Params) error {
	viewer, err := ui.New(ui.Config{
		Height: opts.height,
		Width:  opts.width,
		Seed:   opts.seed,
		Params: params,
		Theme:  opts.themeID,
	})
	if err != nil {
		return fmt.Errorf("initialize viewer: %w", err)
	}
	return viewer.Run(ctx)
}

// renderOptions builds text output options from the selected theme.
func renderOptions(opts *options) render.Options {
	ropts := themes.GetByID(opts.themeID).RenderOptions()
	ropts.Border = !opts.noBorder
	return ropts
}

// defaultDBPath resolves the atlas location, preferring the MAPGEN_DB
// environment variable.
func defaultDBPath() string {
	if path := os.Getenv("MAPGEN_DB"); path != "" {
		return path
	}
	return "atlas.db"
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_MAPGEN_API_KEY")
	dataset := os.Getenv("HONEYCOMB_MAPGEN_DATASET")
	if dataset == "" {
		dataset = "mapgen" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
