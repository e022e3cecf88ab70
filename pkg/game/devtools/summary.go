package devtools

import (
	"bufio"
	"io"

	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/game/generator"
)

// localeDomain is the catalogue name summaries are looked up in
const localeDomain = "default"

// LoadLocale points summary translations at the gettext catalogues under dir,
// e.g. dir/fr_FR/LC_MESSAGES/default.po
func LoadLocale(dir, lang string) {
	gotext.Configure(dir, lang, localeDomain)
}

// SummaryLines returns a translated, human readable summary of s
func SummaryLines(s *generator.State) []string {
	b := s.Bounds()
	removed, target := s.Pruned()
	lines := []string{
		gotext.Get("Seed: %d", s.Seed()),
		gotext.Get("Bounds: %dx%d", b.Width, b.Height),
		gotext.Get("Rooms: %d", len(s.RoomIDs())),
		gotext.Get("Doors: %d", len(s.DoorIDs())),
		gotext.Get("Pruned rooms: %d of %d", removed, target),
	}
	if s.Grid() == nil {
		return append(lines, gotext.Get("Tile grid not generated yet"))
	}
	lines = append(lines, gotext.Get("Floor tiles: %d", s.FloorCount()))
	if n := UnreachableFloor(s); n > 0 {
		lines = append(lines, gotext.Get("Unreachable floor tiles: %d", n))
	}
	return lines
}

// WriteSummary writes SummaryLines to w, one per line
func WriteSummary(w io.Writer, s *generator.State) error {
	bw := bufio.NewWriter(w)
	for _, line := range SummaryLines(s) {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
