package theme

import "testing"

func TestLoadThemes(t *testing.T) {
	themes, err := LoadThemes()
	if err != nil {
		t.Fatalf("Failed to load themes: %v", err)
	}

	if len(themes) != 3 {
		t.Errorf("Expected 3 themes, got %d", len(themes))
	}

	// Verify expected themes exist
	expectedIDs := map[string]bool{"classic": false, "stone": false, "moss": false}
	for _, th := range themes {
		if _, ok := expectedIDs[th.ID]; ok {
			expectedIDs[th.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected theme %q not found", id)
		}
	}

	if got := MustLoadThemes(); len(got) != len(themes) {
		t.Errorf("MustLoadThemes returned %d themes, want %d", len(got), len(themes))
	}
}

func TestRegistryLookup(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 themes, got %d", registry.Count())
	}

	classic := registry.GetByID("classic")
	if classic == nil {
		t.Fatal("Classic theme not found by ID")
	}
	if classic.Name != "Classic" {
		t.Errorf("Expected name 'Classic', got %q", classic.Name)
	}
	if classic.WallRune() != '#' || classic.FloorRune() != '.' {
		t.Errorf("Classic glyphs = %c/%c, want #/.", classic.WallRune(), classic.FloorRune())
	}

	if registry.GetByID("nonexistent") != nil {
		t.Error("Unknown ID should return nil")
	}

	if def := registry.Default(); def == nil || def.ID != "classic" {
		t.Errorf("Default should be the first theme, got %+v", def)
	}
}

func TestRegistryNextCycles(t *testing.T) {
	registry := MustLoadRegistry()

	ids := registry.IDs()
	if len(ids) != 3 {
		t.Fatalf("Expected 3 IDs, got %d", len(ids))
	}

	// Walk once around the cycle and land back at the start
	current := ids[0]
	for i := 0; i < len(ids); i++ {
		next := registry.Next(current)
		if next == nil {
			t.Fatalf("Next(%q) returned nil", current)
		}
		current = next.ID
	}
	if current != ids[0] {
		t.Errorf("Cycling through all themes ended at %q, want %q", current, ids[0])
	}

	if def := registry.Next("nonexistent"); def == nil || def.ID != ids[0] {
		t.Error("Next with unknown ID should resolve to the default theme")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	if MustParseHexColor("#FF0000") != MustParseHexColor("FF0000") {
		t.Error("MustParseHexColor should ignore the leading #")
	}
}

func TestThemeDefGlyphs(t *testing.T) {
	def := ThemeDef{
		ID:            "test",
		Name:          "Test Theme",
		WallGlyph:     "█",
		FloorGlyph:    " ",
		ExplorerGlyph: "@",
		WallColor:     "#FF0000",
		FloorColor:    "not-a-color",
	}

	if def.WallRune() != '█' {
		t.Errorf("Expected wall glyph '█', got %c", def.WallRune())
	}
	if def.ExplorerRune() != '@' {
		t.Errorf("Expected explorer glyph '@', got %c", def.ExplorerRune())
	}

	// Missing glyphs fall back to the classic set
	empty := ThemeDef{}
	if empty.WallRune() != '#' || empty.FloorRune() != '.' || empty.ExplorerRune() != '@' {
		t.Error("Empty glyphs should fall back to #, . and @")
	}

	if def.WallTCellColor() == 0 {
		t.Error("WallTCellColor returned zero color")
	}
	// Invalid colors fall back to white rather than failing
	_ = def.FloorTCellColor()

	opts := def.RenderOptions()
	if opts.Wall != '█' || opts.Floor != ' ' || !opts.Border {
		t.Errorf("RenderOptions = %+v, want themed glyphs with border", opts)
	}
}
