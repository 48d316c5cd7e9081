package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/xonix/internal/core"
)

// colorPair is the style cache key.
type colorPair struct {
	fg, bg core.Color
}

var (
	styleMu    sync.Mutex
	styleCache = map[colorPair]lipgloss.Style{}
)

// styleFor returns the lipgloss style for a foreground/background pair.
func styleFor(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}

	styleMu.Lock()
	defer styleMu.Unlock()

	if st, ok := styleCache[key]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if code := fg.ANSI(); code != "" {
		st = st.Foreground(lipgloss.Color(code))
	}
	if code := bg.ANSI(); code != "" {
		st = st.Background(lipgloss.Color(code))
	}
	styleCache[key] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Half-block boards change color often; leave room for escapes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Fg == core.ColorDefault && start.Bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
