package core_test

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/vovakirdan/mazecaster/internal/games/maze/core"
)

var lighthouseRows = []string{
	"111111111111111111111",
	"100000101000010000001",
	"101110000011010111111",
	"100011101001000100011",
	"101000101111011101011",
	"101110100110000001011",
	"100010000000110111002",
	"111111111111111111111",
}

// mapFromRows builds a tile map from digit strings.
func mapFromRows(t *testing.T, rows []string) *core.TileMap {
	t.Helper()
	w := len(rows[0])
	codes := make([]uint8, 0, w*len(rows))
	for _, row := range rows {
		for _, ch := range row {
			codes = append(codes, uint8(ch-'0'))
		}
	}
	m, err := core.NewTileMap(w, len(rows), codes)
	if err != nil {
		t.Fatalf("NewTileMap() error = %v", err)
	}
	return m
}

func lighthouse(t *testing.T) *core.TileMap {
	t.Helper()
	return mapFromRows(t, lighthouseRows)
}

func approx(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}
