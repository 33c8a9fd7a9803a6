// SPDX-License-Identifier: MIT

// Package render prints engine results for the linalg CLI.
// Matrices are laid out as right-aligned columns; headings and labels are
// styled with lipgloss unless color is turned off.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/linalg/matrix"
)

// Renderer writes styled results to an output stream.
type Renderer struct {
	w       io.Writer
	heading lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	fail    lipgloss.Style
}

// New returns a Renderer for w. With color false every style is a no-op.
func New(w io.Writer, color bool) *Renderer {
	r := &Renderer{
		w:       w,
		heading: lipgloss.NewStyle(),
		label:   lipgloss.NewStyle(),
		value:   lipgloss.NewStyle(),
		fail:    lipgloss.NewStyle(),
	}
	if color {
		r.heading = r.heading.Bold(true).Foreground(lipgloss.Color("12"))
		r.label = r.label.Foreground(lipgloss.Color("8"))
		r.value = r.value.Foreground(lipgloss.Color("10"))
		r.fail = r.fail.Bold(true).Foreground(lipgloss.Color("9"))
	}

	return r
}

// Heading prints a section title followed by a blank line.
func (r *Renderer) Heading(title string) {
	fmt.Fprintf(r.w, "\n%s\n\n", r.heading.Render(title))
}

// Scalar prints "label: x".
func (r *Renderer) Scalar(label string, x float64) {
	fmt.Fprintf(r.w, "%s %s\n", r.label.Render(label+":"), r.value.Render(FormatScalar(x)))
}

// Int prints "label: n".
func (r *Renderer) Int(label string, n int) {
	fmt.Fprintf(r.w, "%s %s\n", r.label.Render(label+":"), r.value.Render(strconv.Itoa(n)))
}

// Vector prints "label (shape): [a, b, c]".
func (r *Renderer) Vector(label string, v *matrix.Vector[float64]) {
	fmt.Fprintf(r.w, "%s %s\n", r.label.Render(fmt.Sprintf("%s (%v):", label, v.Shape())), r.value.Render(v.String()))
}

// Matrix prints the label and shape, then the matrix as an aligned grid.
func (r *Renderer) Matrix(label string, m *matrix.Matrix[float64]) {
	fmt.Fprintf(r.w, "%s\n", r.label.Render(fmt.Sprintf("%s (%v):", label, m.Shape())))
	fmt.Fprintln(r.w, r.value.Render(FormatMatrix(m)))
}

// Error prints a failed step without aborting the caller.
func (r *Renderer) Error(label string, err error) {
	fmt.Fprintf(r.w, "%s %s\n", r.label.Render(label+":"), r.fail.Render(err.Error()))
}

// FormatScalar renders x in the shortest form that round-trips.
func FormatScalar(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// FormatMatrix lays m out one row per line with right-aligned columns:
//
//	[  1  -2 ]
//	[ 30   4 ]
//
// An empty matrix renders as "[]".
func FormatMatrix(m *matrix.Matrix[float64]) string {
	rows, cols := m.Shape()[0], m.Shape()[1]
	if rows == 0 || cols == 0 {
		return "[]"
	}

	cells := make([][]string, rows)
	widths := make([]int, cols)
	for i, row := range m.IterRows() {
		cells[i] = make([]string, cols)
		for j, x := range row {
			cells[i][j] = FormatScalar(x)
			widths[j] = max(widths[j], lipgloss.Width(cells[i][j]))
		}
	}

	lines := make([]string, rows)
	parts := make([]string, cols)
	for i := range cells {
		for j, cell := range cells[i] {
			parts[j] = lipgloss.NewStyle().Width(widths[j]).Align(lipgloss.Right).Render(cell)
		}
		lines[i] = "[ " + strings.Join(parts, "  ") + " ]"
	}

	return strings.Join(lines, "\n")
}
