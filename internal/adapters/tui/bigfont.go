package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/tomato/internal/domain"
)

// glyphRows is the height of every bitmap in clockGlyphs.
const glyphRows = 5

// clockGlyphs holds a 5-row bitmap for each rune FormatClock can produce.
// '#' is a lit pixel.
var clockGlyphs = map[rune][glyphRows]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", ".##", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", "..#", ".#.", ".#."},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	':': {".", "#", ".", "#", "."},
}

// face turns bitmaps into terminal rows.
type face interface {
	// rows renders one glyph. Every returned row has the same width.
	rows(glyph [glyphRows]string) []string
	// gap separates adjacent glyphs.
	gap() string
}

// tallFace draws each pixel as two full blocks, one text row per bitmap row.
type tallFace struct{}

func (tallFace) rows(glyph [glyphRows]string) []string {
	out := make([]string, glyphRows)
	for i, row := range glyph {
		var b strings.Builder
		for _, px := range row {
			if px == '#' {
				b.WriteString("██")
			} else {
				b.WriteString("  ")
			}
		}
		out[i] = b.String()
	}
	return out
}

func (tallFace) gap() string { return "  " }

// shortFace packs two bitmap rows into one text row with half blocks.
type shortFace struct{}

func (shortFace) rows(glyph [glyphRows]string) []string {
	out := make([]string, 0, (glyphRows+1)/2)
	for i := 0; i < glyphRows; i += 2 {
		top := glyph[i]
		bottom := strings.Repeat(".", len(top))
		if i+1 < glyphRows {
			bottom = glyph[i+1]
		}
		var b strings.Builder
		for j := range top {
			switch {
			case top[j] == '#' && bottom[j] == '#':
				b.WriteString("█")
			case top[j] == '#':
				b.WriteString("▀")
			case bottom[j] == '#':
				b.WriteString("▄")
			default:
				b.WriteString(" ")
			}
		}
		out = append(out, b.String())
	}
	return out
}

func (shortFace) gap() string { return " " }

// layout renders text in f, keeping the colon columns apart so they can be
// styled on their own. Runes without a glyph are skipped.
func layout(text string, f face) (rows [][]string, colon []bool) {
	for _, ch := range text {
		glyph, ok := clockGlyphs[ch]
		if !ok {
			continue
		}
		rows = append(rows, f.rows(glyph))
		colon = append(colon, ch == ':')
	}
	return rows, colon
}

// layoutWidth is the number of columns text occupies in f.
func layoutWidth(text string, f face) int {
	cols, _ := layout(text, f)
	if len(cols) == 0 {
		return 0
	}
	w := lipgloss.Width(f.gap()) * (len(cols) - 1)
	for _, c := range cols {
		w += lipgloss.Width(c[0])
	}
	return w
}

// clockMargin keeps the digits off the screen edges.
const clockMargin = 4

// pickFace returns the largest face that fits text into width columns, or
// nil when only plain text fits.
func pickFace(text string, width int) face {
	for _, f := range []face{tallFace{}, shortFace{}} {
		if layoutWidth(text, f)+clockMargin <= width {
			return f
		}
	}
	return nil
}

// RenderBigTime draws secondsLeft as a large MM:SS clock in color, sized to
// a terminal of the given width. A paused clock has a faint colon. Terminals
// too narrow for block digits get a single bold line.
func RenderBigTime(secondsLeft int, color lipgloss.Color, width int, paused bool) string {
	text := domain.FormatClock(secondsLeft)
	digit := lipgloss.NewStyle().Bold(true).Foreground(color)

	f := pickFace(text, width)
	if f == nil {
		return digit.Render(text)
	}

	sep := digit
	if paused {
		sep = lipgloss.NewStyle().Faint(true).Foreground(color)
	}

	cols, colon := layout(text, f)
	height := len(cols[0])
	lines := make([]string, height)
	for i := range lines {
		var b strings.Builder
		for j, c := range cols {
			if j > 0 {
				b.WriteString(f.gap())
			}
			if colon[j] {
				b.WriteString(sep.Render(c[i]))
			} else {
				b.WriteString(digit.Render(c[i]))
			}
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}
