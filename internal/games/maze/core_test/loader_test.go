package core_test

import (
	"bytes"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/vovakirdan/mazecaster/internal/games/maze/core"
	"github.com/vovakirdan/mazecaster/internal/games/maze/levels"
	"github.com/vovakirdan/mazecaster/internal/games/maze/levels/formats"
)

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "..", "testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// broken.yaml and walled_in.yaml are skipped, README.txt is ignored.
	want := []string{"alpha", "beta", "lighthouse"}
	if len(lvls) != len(want) {
		t.Fatalf("expected %d levels, got %d", len(want), len(lvls))
	}
	for i, id := range want {
		if lvls[i].ID != id {
			t.Errorf("level %d = %q, expected %q", i, lvls[i].ID, id)
		}
	}
}

func TestLoaderLoadFileErrors(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	for _, name := range []string{"broken.yaml", "walled_in.yaml", "README.txt", "missing.yaml"} {
		if _, err := loader.LoadFile(filepath.Join(getTestdataPath(), name)); err == nil {
			t.Errorf("LoadFile(%s) expected error", name)
		}
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadByID("beta")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Bend" {
		t.Errorf("expected Name 'Bend', got %q", lvl.Name)
	}
	if lvl.Width != 4 || lvl.Height != 4 {
		t.Errorf("expected 4x4, got %dx%d", lvl.Width, lvl.Height)
	}
	if lvl.FilePath == "" {
		t.Error("expected FilePath to be set")
	}

	if _, err := loader.LoadByID("nope"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestBuiltinLevels(t *testing.T) {
	lvls := levels.Builtin()
	if len(lvls) != 2 || lvls[0].ID != "lighthouse" || lvls[1].ID != "mirage" {
		t.Fatalf("Builtin() = %v, expected [lighthouse mirage]", lvls)
	}

	lh := lvls[0]
	if lh.Start != core.DefaultStart {
		t.Errorf("lighthouse start = %+v, expected %+v", lh.Start, core.DefaultStart)
	}
	tiles, err := lh.ToTileMap()
	if err != nil {
		t.Fatalf("ToTileMap() error = %v", err)
	}
	if !bytes.Equal(tiles.Codes(), lighthouse(t).Codes()) {
		t.Error("lighthouse level differs from the reference map")
	}

	mirage, err := lvls[1].ToTileMap()
	if err != nil {
		t.Fatalf("ToTileMap() error = %v", err)
	}
	if mirage.Count(core.TerrainMirage) == 0 {
		t.Error("mirage level has no mirage cells")
	}
}

func TestCatalogOverridesBuiltin(t *testing.T) {
	lvls, err := levels.Catalog(getTestdataPath())
	if err != nil {
		t.Fatalf("Catalog failed: %v", err)
	}

	var ids []string
	for _, l := range lvls {
		ids = append(ids, l.ID)
	}
	want := []string{"alpha", "beta", "lighthouse", "mirage"}
	if len(ids) != len(want) {
		t.Fatalf("Catalog() ids = %v, expected %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("Catalog() ids = %v, expected %v", ids, want)
		}
	}

	lh, err := levels.Find(getTestdataPath(), "lighthouse")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if lh.Name != "Lighthouse (short)" {
		t.Errorf("expected custom lighthouse, got %q", lh.Name)
	}

	if _, err := levels.Find("", "alpha"); err == nil {
		t.Error("expected alpha to be missing without a levels dir")
	}
}

func TestLevelMarshalRoundTrip(t *testing.T) {
	lvl, err := levels.Find("", "mirage")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	// Unknown codes survive as-is.
	lvl.Codes[len(lvl.Codes)-1] = 7

	data, err := lvl.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	parsed, err := formats.ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}

	if !bytes.Equal(parsed.Codes, lvl.Codes) {
		t.Error("codes changed after round trip")
	}
	if parsed.Start != lvl.Start {
		t.Errorf("start = %+v, expected %+v", parsed.Start, lvl.Start)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing id", "rows: [\"111\"]"},
		{"no rows", "id: x"},
		{"bad cell", "id: x\nrows: [\"1a1\"]"},
		{"ragged", "id: x\nrows: [\"111\", \"11\"]"},
		{"row count", "id: x\nsize: {w: 3, h: 2}\nrows: [\"111\"]"},
		{"not yaml", "id: [unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := formats.ParseYAML([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
