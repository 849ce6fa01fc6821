// Package render draws the compass position as ASCII and formats the final
// console report.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/dshills/aicompass/internal/score"
)

// Grid geometry: two columns per economic unit, one row per social unit.
const (
	Width  = 41
	Height = 21

	centerRow   = 10
	centerCol   = 20
	labelWidth  = 15
	gutterWidth = labelWidth + 3
)

// Glyphs.
const (
	Filler    = '.'
	HorizAxis = '-'
	VertAxis  = '|'
	AxisCross = '+'
	Marker    = '*'
)

var rowLabels = map[int]string{
	0:  "Auth    +10S",
	5:  "+5S",
	10: "Center   0",
	15: "-5S",
	20: "Lib     -10S",
}

// Position maps a score pair to its grid cell, clamped to the grid.
func Position(economic, social float64) (row, col int) {
	col = clampInt(int(math.Round((economic+10)*2)), 0, Width-1)
	row = clampInt(int(math.Round(10-social)), 0, Height-1)
	return row, col
}

// Plot renders the compass grid with the position marked. Output for a given
// pair is byte-identical across runs.
func Plot(economic, social float64) string {
	pr, pc := Position(economic, social)
	gutter := strings.Repeat(" ", gutterWidth)

	var b strings.Builder
	b.WriteString("Political Compass ASCII Plot:\n")
	writeLine(&b, gutter+center("Authoritarian (+10S)", Width))
	writeLine(&b, gutter+center("Social ^", Width))

	row := make([]byte, Width)
	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			row[c] = cell(r, c, pr, pc)
		}
		fmt.Fprintf(&b, "%*s | %s\n", labelWidth, rowLabels[r], row)
	}

	writeLine(&b, gutter+economicCaptions())
	writeLine(&b, gutter+fmt.Sprintf("%*s", Width, "Economic ->"))
	return b.String()
}

func cell(r, c, pr, pc int) byte {
	switch {
	case r == pr && c == pc:
		return Marker
	case r == centerRow && c == centerCol:
		return AxisCross
	case r == centerRow:
		return HorizAxis
	case c == centerCol:
		return VertAxis
	default:
		return Filler
	}
}

// economicCaptions lays out the left, center and right labels under the grid.
func economicCaptions() string {
	line := []byte(strings.Repeat(" ", Width))
	left, mid, right := "Left (-10E)", "Center (0E)", "Right (+10E)"
	copy(line, left)
	copy(line[centerCol-len(mid)/2:], mid)
	copy(line[Width-len(right):], right)
	return string(line)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", (width-len(s))/2) + s
}

func writeLine(b *strings.Builder, s string) {
	b.WriteString(strings.TrimRight(s, " "))
	b.WriteByte('\n')
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// Report formats the full console result: scores, plot, interpretation and
// the trailing machine-readable summary line.
func Report(f score.Final) string {
	var b strings.Builder

	b.WriteString("Final Political Compass Scores:\n")
	fmt.Fprintf(&b, "Economic Score (Left/Right): %.2f\n", f.Economic)
	fmt.Fprintf(&b, "Social Score (Libertarian/Authoritarian): %.2f\n\n", f.Social)

	b.WriteString(Plot(f.Economic, f.Social))
	fmt.Fprintf(&b, "\nPosition (Econ: %.2f, Social: %.2f) is marked with '%c'\n\n", f.Economic, f.Social, Marker)

	b.WriteString("Interpretation:\n")
	b.WriteString("Economic Axis: Negative values indicate Left, Positive values indicate Right. Range: -10 to +10.\n")
	b.WriteString("Social Axis: Negative values indicate Libertarian, Positive values indicate Authoritarian. Range: -10 to +10.\n\n")

	b.WriteString(Summary(f))
	b.WriteString("\n")
	return b.String()
}

// Summary is the single machine-parsable result line.
func Summary(f score.Final) string {
	return fmt.Sprintf("Economic %.2f Social %.2f", f.Economic, f.Social)
}
