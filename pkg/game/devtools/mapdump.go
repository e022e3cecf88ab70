// Package devtools provides developer tools for inspecting generated dungeons.
package devtools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gookit/color"

	"dungeongen/pkg/engine/terminal"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
)

const mapDumpFilename = "map.txt"

// Glyphs used for tiles. Both are double width in most terminals.
const (
	GlyphOpen = "⬜"
	GlyphWall = "⬛"
)

// ErrNotMaterialized is returned when a state has no tile grid yet
var ErrNotMaterialized = errors.New("tile grid not generated yet")

var (
	colorOpen  = color.Style{color.FgGray}
	colorFloor = color.Style{color.FgGreen}
	colorWall  = color.Style{color.FgBlue, color.OpBold}
)

// TileString renders tiles one line per row. Row 0 comes first unless flip
// is set, in which case the highest row (north) is printed on top.
func TileString(tiles [][]int, flip bool) string {
	var sb strings.Builder
	forEachRow(len(tiles), flip, func(row int) {
		for _, t := range tiles[row] {
			if world.Tile(t) == world.Open {
				sb.WriteString(GlyphOpen)
			} else {
				sb.WriteString(GlyphWall)
			}
		}
		sb.WriteByte('\n')
	})
	return sb.String()
}

func forEachRow(rows int, flip bool, fn func(row int)) {
	if flip {
		for row := rows - 1; row >= 0; row-- {
			fn(row)
		}
		return
	}
	for row := 0; row < rows; row++ {
		fn(row)
	}
}

// WriteTiles writes the state's tile grid to w with north on top. On a
// terminal floor tiles are highlighted and every line is cropped to the
// terminal width.
func WriteTiles(w io.Writer, s *generator.State) error {
	grid := s.Grid()
	if grid == nil {
		return ErrNotMaterialized
	}
	if !terminal.IsTerminal(w) {
		_, err := io.WriteString(w, TileString(grid.Values(), true))
		return err
	}

	width, _ := terminal.SizeOf(w)
	cols := min(grid.Cols(), max(width/2, 1))
	bw := bufio.NewWriter(w)
	forEachRow(grid.Rows(), true, func(row int) {
		for col := 0; col < cols; col++ {
			bw.WriteString(tileGlyph(s, grid, row, col))
		}
		bw.WriteByte('\n')
	})
	return bw.Flush()
}

func tileGlyph(s *generator.State, grid *world.Grid, row, col int) string {
	switch {
	case grid.Get(row, col) == world.Wall:
		return colorWall.Sprint(GlyphWall)
	case s.IsFloor(grid.CellAt(row, col)):
		return colorFloor.Sprint(GlyphOpen)
	default:
		return colorOpen.Sprint(GlyphOpen)
	}
}

// DumpToFile writes a full debug dump of s to map.txt in dir: metadata,
// legend, the tile map and the room, door and graph listings. Returns the
// absolute path written.
func DumpToFile(s *generator.State, dir string) (string, error) {
	if s.Grid() == nil {
		return "", ErrNotMaterialized
	}

	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, s); err != nil {
		return absPath, err
	}
	return absPath, f.Sync()
}

// WriteDump writes the debug dump DumpToFile stores
func WriteDump(w io.Writer, s *generator.State) error {
	grid := s.Grid()
	if grid == nil {
		return ErrNotMaterialized
	}
	bw := bufio.NewWriter(w)
	cfg := s.Config()
	removed, target := s.Pruned()

	fmt.Fprintln(bw, "=== DUNGEON DUMP ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "seed: %d\n", s.Seed())
	fmt.Fprintf(bw, "bounds: %v\n", s.Bounds())
	fmt.Fprintf(bw, "min_room: %dx%d\n", cfg.MinWidth, cfg.MinHeight)
	fmt.Fprintf(bw, "intersect_length: %d\n", cfg.IntersectLength)
	fmt.Fprintf(bw, "graph_tree: %v\n", cfg.GraphTree)
	fmt.Fprintf(bw, "pruned: %d/%d\n", removed, target)
	fmt.Fprintf(bw, "floor_tiles: %d\n", s.FloorCount())
	fmt.Fprintf(bw, "unreachable_floor: %d\n", UnreachableFloor(s))
	fmt.Fprintf(bw, "coordinate_system: x,y (0-based, y grows north)\n")
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Legend ---")
	fmt.Fprintf(bw, "%s = open  %s = wall\n", GlyphOpen, GlyphWall)
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Map (north on top) ---")
	fmt.Fprint(bw, TileString(grid.Values(), true))
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "Rooms:")
	for _, id := range s.RoomIDs() {
		n, _ := s.Node(id)
		cx, cy := n.Rect.Center()
		fmt.Fprintf(bw, "  id: %d rect: %v center: %d,%d area: %d\n", id, n.Rect, cx, cy, n.Rect.Area())
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "Doors:")
	for _, id := range s.DoorIDs() {
		n, _ := s.Node(id)
		a, b, _ := s.DoorRooms(id)
		fmt.Fprintf(bw, "  id: %d rect: %v rooms: %d,%d\n", id, n.Rect, a, b)
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "Graph:")
	g := s.Graph()
	for _, id := range g.Nodes() {
		nbrs, _ := g.Neighbors(id)
		fmt.Fprintf(bw, "  %d -> %v\n", id, nbrs)
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "=== END DUNGEON DUMP ===")
	return bw.Flush()
}
