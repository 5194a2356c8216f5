// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/mazecaster/internal/games/maze/core"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size"`
	Start    YAMLStart         `yaml:"start"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents grid dimensions. Zero values are inferred from rows.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLStart is the spawn pose. Heading is in degrees, 0 facing +x and
// -90 facing down the map.
type YAMLStart struct {
	X       float32 `yaml:"x"`
	Y       float32 `yaml:"y"`
	Heading float32 `yaml:"heading"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Codes    []uint8 // Row-major terrain codes
	Start    core.Pose
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Level{}, fmt.Errorf("missing id")
	}
	if len(yl.Rows) == 0 {
		return Level{}, fmt.Errorf("level %s: no rows", yl.ID)
	}

	w, h := yl.Size.W, yl.Size.H
	if w == 0 {
		w = len(yl.Rows[0])
	}
	if h == 0 {
		h = len(yl.Rows)
	}
	if len(yl.Rows) != h {
		return Level{}, fmt.Errorf("level %s: have %d rows, size says %d", yl.ID, len(yl.Rows), h)
	}

	codes := make([]uint8, 0, w*h)
	for y, row := range yl.Rows {
		if len(row) != w {
			return Level{}, fmt.Errorf("level %s: row %d has %d cells, expected %d", yl.ID, y, len(row), w)
		}
		for x := 0; x < len(row); x++ {
			ch := row[x]
			if ch < '0' || ch > '9' {
				return Level{}, fmt.Errorf("level %s: invalid cell %q at (%d,%d)", yl.ID, ch, x, y)
			}
			codes = append(codes, ch-'0')
		}
	}

	level := Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Width:  w,
		Height: h,
		Codes:  codes,
		Start: core.Pose{
			X:     yl.Start.X,
			Y:     yl.Start.Y,
			Angle: yl.Start.Heading / 180 * math32.Pi,
		},
		Metadata: yl.Metadata,
	}
	if level.Name == "" {
		level.Name = level.ID
	}

	return level, nil
}

// MarshalYAML encodes a level back into the YAML file format.
// Parsing the result yields the same codes.
func MarshalYAML(l Level) ([]byte, error) {
	if len(l.Codes) != l.Width*l.Height {
		return nil, fmt.Errorf("level %s: have %d codes, expected %d", l.ID, len(l.Codes), l.Width*l.Height)
	}

	rows := make([]string, l.Height)
	var sb strings.Builder
	for y := 0; y < l.Height; y++ {
		sb.Reset()
		for x := 0; x < l.Width; x++ {
			c := l.Codes[y*l.Width+x]
			if c > 9 {
				return nil, fmt.Errorf("level %s: code %d at (%d,%d) has no file form", l.ID, c, x, y)
			}
			sb.WriteByte('0' + c)
		}
		rows[y] = sb.String()
	}

	yl := YAMLLevel{
		ID:   l.ID,
		Name: l.Name,
		Size: YAMLSize{W: l.Width, H: l.Height},
		Start: YAMLStart{
			X:       l.Start.X,
			Y:       l.Start.Y,
			Heading: l.Start.Angle / math32.Pi * 180,
		},
		Rows:     rows,
		Metadata: l.Metadata,
	}

	data, err := yaml.Marshal(&yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// ToTileMap creates a TileMap from the level data.
func (l *Level) ToTileMap() (*core.TileMap, error) {
	return core.NewTileMap(l.Width, l.Height, l.Codes)
}
