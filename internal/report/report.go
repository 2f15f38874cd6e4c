// Package report renders glyphs and classifier scores for people to read.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/olekukonko/tablewriter"

	"letternet/internal/vector"
)

// Percent turns a score in [0,1] into a whole percentage.
func Percent(score float64) int {
	return int(math.Round(score * 100))
}

// Prediction writes one row per label with its score as a percentage.
func Prediction(w io.Writer, labels []string, scores vector.Vector) error {
	if len(labels) != len(scores) {
		return fmt.Errorf("report: %d labels for %d scores", len(labels), len(scores))
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Label", "Score"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for i, label := range labels {
		table.Append([]string{label, fmt.Sprintf("%d%%", Percent(scores[i]))})
	}
	table.Render()
	return nil
}

// Glyph draws a bitmap as rows of width cells, 'X' for set and ' ' for clear.
func Glyph(bitmap vector.Vector, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	for i, x := range bitmap {
		if x == 1 {
			b.WriteByte('X')
		} else {
			b.WriteByte(' ')
		}
		if (i+1)%width == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
