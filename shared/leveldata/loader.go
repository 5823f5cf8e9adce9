package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ParseASCII builds a map from text rows: 'x' is solid, '.' or ' ' is open.
// Short rows are padded with open cells.
func ParseASCII(name string, rows []string, tileSize int) (*TileMap, error) {
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	cols := 0
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	if len(rows) == 0 || cols == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyMap)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("%s: tile size must be positive, got %d", name, tileSize)
	}

	m := newTileMap(name, cols, len(rows), tileSize)
	for row, s := range rows {
		for col := 0; col < len(s); col++ {
			switch s[col] {
			case 'x', 'X':
				m.set(col, row)
			case '.', ' ':
			default:
				return nil, fmt.Errorf("%s: row %d col %d: unknown cell %q", name, row, col, s[col])
			}
		}
	}
	return m, nil
}

// LoadASCII reads a text map from fsys.
func LoadASCII(fsys fs.FS, path string, tileSize int) (*TileMap, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", path, err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return ParseASCII(stem(path), strings.Split(text, "\n"), tileSize)
}

// LoadTMX parses a Tiled map and reads solid cells from its "tiles" layer.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*TileMap, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Width == 0 || levelMap.Height == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrEmptyMap)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("%s: tiles must be square, got %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	m := newTileMap(stem(tmxPath), levelMap.Width, levelMap.Height, levelMap.TileWidth)
	for _, layer := range levelMap.Layers {
		if layer.Name != TileLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				if layer.Tiles[y*levelMap.Width+x].IsNil() {
					continue
				}
				m.set(x, y)
			}
		}
		return m, nil
	}
	return nil, fmt.Errorf("%s: no %q layer", tmxPath, TileLayer)
}

// Load picks the TMX or ASCII loader by extension. tileSize only applies to
// ASCII maps; TMX files carry their own.
func Load(fsys fs.FS, path string, tileSize int) (*TileMap, error) {
	if strings.EqualFold(filepath.Ext(path), ".tmx") {
		return LoadTMX(fsys, path)
	}
	return LoadASCII(fsys, path, tileSize)
}

// List returns the file name of every map in dir, sorted.
func List(fsys fs.FS, dir string) ([]string, error) {
	var names []string
	for _, pattern := range []string{dir + "/*.tmx", dir + "/*.txt"} {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		for _, m := range matches {
			names = append(names, filepath.Base(m))
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no maps found in %s", dir)
	}
	sort.Strings(names)
	return names, nil
}

func stem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
