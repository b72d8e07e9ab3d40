package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/JacobJanzen/map-generator/internal/rng"
	"github.com/JacobJanzen/map-generator/internal/telemetry"
	"github.com/JacobJanzen/map-generator/internal/theme"
	"github.com/JacobJanzen/map-generator/internal/world"
)

// Config selects what the viewer generates and how it draws.
type Config struct {
	Height int
	Width  int
	Seed   string // empty picks a fresh random seed
	Params world.Params
	Theme  string // empty uses the default theme
}

// Viewer holds the interactive map viewing state.
type Viewer struct {
	screen   *Screen
	renderer *Renderer
	themes   *theme.Registry
	theme    *theme.ThemeDef

	generator *world.Generator
	grid      *world.Grid
	explorer  *Explorer
	seed      string
	height    int
	width     int

	mode    Mode
	offsetX int
	offsetY int
	running bool
}

// New creates a viewer instance. The terminal is captured last so that
// setup errors leave it untouched.
func New(cfg Config) (*Viewer, error) {
	themes, err := theme.LoadRegistry()
	if err != nil {
		return nil, err
	}

	th := themes.GetByID(cfg.Theme)
	if th == nil {
		th = themes.Default()
	}

	height := cfg.Height
	if height <= 0 {
		height = world.DefaultHeight
	}
	width := cfg.Width
	if width <= 0 {
		width = world.DefaultWidth
	}

	seed := cfg.Seed
	if seed == "" {
		seed = strconv.FormatUint(rng.EntropySeed(), 10)
	}

	screen, err := NewScreen()
	if err != nil {
		return nil, err
	}

	return &Viewer{
		screen:    screen,
		renderer:  NewRenderer(screen, th),
		themes:    themes,
		theme:     th,
		generator: world.NewGenerator(cfg.Params),
		seed:      seed,
		height:    height,
		width:     width,
		mode:      ModeWalk,
		running:   true,
	}, nil
}

// Run executes the main viewing loop.
func (v *Viewer) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("ui")

	// Generate the initial map (traced)
	ctx, initSpan := tracer.Start(ctx, "viewer.init")
	v.regenerate(ctx)

	startX, startY := v.explorer.Position()
	initSpan.SetAttributes(
		attribute.String("map.seed", v.seed),
		attribute.Int("map.height", v.height),
		attribute.Int("map.width", v.width),
		attribute.Int("explorer.start_x", startX),
		attribute.Int("explorer.start_y", startY),
	)
	initSpan.End()

	// Main viewing loop
	for v.running {
		v.renderer.Render(v.grid, v.explorer, v.offsetX, v.offsetY, v.statusLine())
		v.handleInput(ctx)
	}

	v.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
		v.clampOffsets()
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyTab:
		v.toggleMode()

	case tcell.KeyUp:
		v.moveOrPan(0, -1)
	case tcell.KeyDown:
		v.moveOrPan(0, 1)
	case tcell.KeyLeft:
		v.moveOrPan(-1, 0)
	case tcell.KeyRight:
		v.moveOrPan(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'n', 'N':
			// New map under a fresh seed; the seed stays visible in the
			// status line so the map can be shared.
			v.seed = strconv.FormatUint(rng.EntropySeed(), 10)
			v.regenerate(ctx)
		case 'r', 'R':
			v.regenerate(ctx)
		case 't', 'T':
			v.cycleTheme()
		}
	}
}

// regenerate rebuilds the map from the current seed and respawns the
// explorer.
func (v *Viewer) regenerate(ctx context.Context) {
	v.grid = v.generator.GenerateFromSeed(ctx, v.height, v.width, v.seed)
	v.spawnExplorer()
	v.offsetX, v.offsetY = 0, 0
	v.ensureVisible()
}

// spawnExplorer places the explorer on the first open cell, falling
// back to the map center on a solid map.
func (v *Viewer) spawnExplorer() {
	for row := 0; row < v.grid.Height; row++ {
		for col := 0; col < v.grid.Width; col++ {
			if v.grid.IsPassable(row, col) {
				v.explorer = NewExplorer(col, row)
				return
			}
		}
	}
	v.explorer = NewExplorer(v.width/2, v.height/2)
}

func (v *Viewer) moveOrPan(dx, dy int) {
	if v.mode == ModePan {
		v.pan(dx, dy)
		return
	}
	v.tryMove(dx, dy)
}

// tryMove attempts to move the explorer by the given delta.
func (v *Viewer) tryMove(dx, dy int) {
	newX := v.explorer.X + dx
	newY := v.explorer.Y + dy

	if v.grid.IsPassable(newY, newX) {
		v.explorer.Move(dx, dy)
		v.ensureVisible()
	}
}

// pan scrolls the viewport, keeping it on the map.
func (v *Viewer) pan(dx, dy int) {
	v.offsetX += dx
	v.offsetY += dy
	v.clampOffsets()
}

// ensureVisible scrolls the viewport to keep the explorer on screen.
func (v *Viewer) ensureVisible() {
	viewW, viewH := v.viewport()
	if v.explorer.X < v.offsetX {
		v.offsetX = v.explorer.X
	}
	if v.explorer.X >= v.offsetX+viewW {
		v.offsetX = v.explorer.X - viewW + 1
	}
	if v.explorer.Y < v.offsetY {
		v.offsetY = v.explorer.Y
	}
	if v.explorer.Y >= v.offsetY+viewH {
		v.offsetY = v.explorer.Y - viewH + 1
	}
	v.clampOffsets()
}

func (v *Viewer) clampOffsets() {
	viewW, viewH := v.viewport()
	maxX := v.grid.Width - viewW
	maxY := v.grid.Height - viewH
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	if v.offsetX > maxX {
		v.offsetX = maxX
	}
	if v.offsetY > maxY {
		v.offsetY = maxY
	}
	if v.offsetX < 0 {
		v.offsetX = 0
	}
	if v.offsetY < 0 {
		v.offsetY = 0
	}
}

// viewport returns the map-drawing area, excluding the status line.
func (v *Viewer) viewport() (width, height int) {
	width, height = v.screen.Size()
	return width, height - 1
}

func (v *Viewer) toggleMode() {
	if v.mode == ModeWalk {
		v.mode = ModePan
	} else {
		v.mode = ModeWalk
	}
}

func (v *Viewer) cycleTheme() {
	v.theme = v.themes.Next(v.theme.ID)
	v.renderer.SetTheme(v.theme)
}

func (v *Viewer) statusLine() string {
	walls := 0
	if cells := v.grid.Height * v.grid.Width; cells > 0 {
		walls = v.grid.WallCount() * 100 / cells
	}
	return fmt.Sprintf("seed %s | %dx%d | %d%% wall | %s | %s | tab:mode n:new r:reset t:theme q:quit",
		v.seed, v.width, v.height, walls, v.mode, v.theme.Name)
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	if v.screen != nil {
		v.screen.Close()
	}
}
