package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/golam/internal/composite"
)

// Fill returns the character used to draw a ply at the given angle.
func Fill(angle float64) string {
	a := math.Mod(angle, 180)
	if a < 0 {
		a += 180
	}
	switch {
	case a < 1 || a > 179:
		return "─"
	case math.Abs(a-90) < 1:
		return "│"
	case a < 90:
		return "╱"
	default:
		return "╲"
	}
}

// DrawStack creates an ASCII cross-section of the laminate with the first
// layer at the top. Ply heights are proportional to their thickness, with
// at least one row per ply.
func DrawStack(lam *composite.Laminate) string {
	var sb strings.Builder

	widthChars := 30
	rowsPerMM := 20.0

	layers := lam.Layers()
	half := lam.Thickness() / 2

	sb.WriteString("\n")
	sb.WriteString("  PLY STACK                         z [mm]\n")
	sb.WriteString("  ─────────                         ──────\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐   %+.3f\n", strings.Repeat("─", widthChars), -half))

	z := -half
	midDrawn := false
	for i, l := range layers {
		rows := int(math.Round(l.Thickness() * rowsPerMM))
		if rows < 1 {
			rows = 1
		}
		fill := strings.Repeat(Fill(l.Angle()), widthChars)
		for r := 0; r < rows; r++ {
			sb.WriteString(fmt.Sprintf("  │%s│", fill))
			if r == 0 {
				sb.WriteString(fmt.Sprintf(" %2d  %5g°  %s", i+1, l.Angle(), l.Fiber().Name()))
			}
			sb.WriteString("\n")
		}
		z += l.Thickness()
		if i < len(layers)-1 {
			sb.WriteString(fmt.Sprintf("  ├%s┤   %+.3f", strings.Repeat("─", widthChars), z))
			if !midDrawn && math.Abs(z) < 1e-9 {
				sb.WriteString(" ◄─ mid-plane")
				midDrawn = true
			}
			sb.WriteString("\n")
		}
	}
	sb.WriteString(fmt.Sprintf("  └%s┘   %+.3f\n", strings.Repeat("─", widthChars), half))

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ─── = 0°   │││ = 90°   ╱╱╱ = 0° < θ < 90°   ╲╲╲ = 90° < θ < 180°\n")
	sb.WriteString(fmt.Sprintf("  Total thickness t = %.3f mm, %d plies\n", lam.Thickness(), len(layers)))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", maxLen-4-utf8.RuneCountInString(s))
	}

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
