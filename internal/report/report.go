// Package report renders laminate properties as plain text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/golam/internal/composite"
	"github.com/alexiusacademia/golam/internal/matrix"
	"github.com/charmbracelet/lipgloss"
)

const (
	heavyRule = "═══════════════════════════════════════════════════════════════"
	lightRule = "───────────────────────────────────────────────────────────────"
)

// Options selects the parts of the report
type Options struct {
	Engineering bool   // layers and engineering properties
	Matrices    bool   // ABD and abd matrices
	Description string // optional free text shown under the name
}

// Write prints the report for lam to w.
func Write(w io.Writer, lam *composite.Laminate, opts Options) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true)
	warn := r.NewStyle().Foreground(lipgloss.Color("#ffaa00"))

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(heavyRule + "\n")
	sb.WriteString(title.Render("     LAMINATE PROPERTIES - CLASSICAL LAMINATE THEORY") + "\n")
	sb.WriteString(heavyRule + "\n\n")
	fmt.Fprintf(&sb, "  Laminate: %s\n", lam.Name())
	if opts.Description != "" {
		fmt.Fprintf(&sb, "  Description: %s\n", opts.Description)
	}
	sb.WriteString("\n")

	if opts.Engineering {
		section(&sb, title.Render("STACKING SEQUENCE:"))
		tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  num\tweight [g/m²]\tangle [°]\tvf [%]\tthickness [mm]\tfiber\tresin")
		for i, l := range lam.Layers() {
			fmt.Fprintf(tw, "  %d\t%g\t%g\t%.3g\t%.3f\t%s\t%s\n",
				i+1, l.FiberWeight(), l.Angle(), l.Vf()*100, l.Thickness(), l.Fiber().Name(), l.Resin().Name())
		}
		tw.Flush()
		sb.WriteString("\n")

		section(&sb, title.Render("PHYSICAL PROPERTIES:"))
		tw = tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  Thickness:\t%.2f mm\n", lam.Thickness())
		fmt.Fprintf(tw, "  Density:\t%.2f g/cm³\n", lam.Rho())
		fmt.Fprintf(tw, "  Fiber volume fraction:\t%.3g %%\n", lam.Vf()*100)
		fmt.Fprintf(tw, "  Fiber weight fraction:\t%.3g %%\n", lam.Wf()*100)
		fmt.Fprintf(tw, "  Laminate weight:\t%.0f g/m²\n", lam.FiberWeight()+lam.ResinWeight())
		fmt.Fprintf(tw, "  Resin consumption:\t%.0f g/m²\n", lam.ResinWeight())
		tw.Flush()
		sb.WriteString("\n")

		section(&sb, title.Render("IN-PLANE ENGINEERING PROPERTIES:"))
		tw = tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  E_x:\t%.0f MPa\n", lam.Ex())
		fmt.Fprintf(tw, "  E_y:\t%.0f MPa\n", lam.Ey())
		fmt.Fprintf(tw, "  G_xy:\t%.0f MPa\n", lam.Gxy())
		fmt.Fprintf(tw, "  ν_xy:\t%7.5f\n", lam.Nuxy())
		fmt.Fprintf(tw, "  ν_yx:\t%7.5f\n", lam.Nuyx())
		fmt.Fprintf(tw, "  α_x:\t%9.4g K⁻¹\n", lam.AlphaX())
		fmt.Fprintf(tw, "  α_y:\t%9.4g K⁻¹\n", lam.AlphaY())
		tw.Flush()
		if msg := Caveat(lam); msg != "" {
			sb.WriteString("\n  " + warn.Render("⚠ "+msg) + "\n")
		}
		sb.WriteString("\n")
	}

	if opts.Matrices {
		section(&sb, title.Render("STIFFNESS (ABD) MATRIX:"))
		writeMatrix(&sb, lam.ABD())
		sb.WriteString("\n")
		section(&sb, title.Render("COMPLIANCE (abd) MATRIX:"))
		writeMatrix(&sb, lam.Compliance())
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Caveat returns a warning when the engineering constants of lam are only
// approximate, or "" when they are exact.
func Caveat(lam *composite.Laminate) string {
	sym, bal := lam.IsSymmetric(), lam.IsBalanced()
	switch {
	case !sym && !bal:
		return "laminate is neither symmetric nor balanced; engineering properties are approximate"
	case !sym:
		return "laminate is not symmetric; engineering properties and CTEs are approximate"
	case !bal:
		return "laminate is not balanced; engineering properties are approximate"
	}
	return ""
}

func section(sb *strings.Builder, title string) {
	sb.WriteString(title + "\n")
	sb.WriteString(lightRule + "\n")
}

func writeMatrix(sb *strings.Builder, m matrix.Matrix) {
	for _, row := range m {
		sb.WriteString("  |")
		for j, v := range row {
			if j > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(sb, "% -10.4g", v)
		}
		sb.WriteString("|\n")
	}
}

// Summary is the machine readable form of a laminate
type Summary struct {
	Name        string         `json:"name"`
	Thickness   float64        `json:"thickness"`
	Rho         float64        `json:"rho"`
	Vf          float64        `json:"vf"`
	Wf          float64        `json:"wf"`
	FiberWeight float64        `json:"fiber_weight"`
	ResinWeight float64        `json:"resin_weight"`
	Ex          float64        `json:"ex"`
	Ey          float64        `json:"ey"`
	Gxy         float64        `json:"gxy"`
	Nuxy        float64        `json:"nuxy"`
	Nuyx        float64        `json:"nuyx"`
	AlphaX      float64        `json:"alpha_x"`
	AlphaY      float64        `json:"alpha_y"`
	Symmetric   bool           `json:"symmetric"`
	Balanced    bool           `json:"balanced"`
	Layers      []LayerSummary `json:"layers"`
	ABD         matrix.Matrix  `json:"abd_stiffness"`
	Compliance  matrix.Matrix  `json:"abd_compliance"`
}

// LayerSummary is the machine readable form of a ply
type LayerSummary struct {
	Fiber       composite.Fiber `json:"fiber"`
	Resin       composite.Resin `json:"resin"`
	FiberWeight float64         `json:"fiber_weight"`
	Angle       float64         `json:"angle"`
	Vf          float64         `json:"vf"`
	Thickness   float64         `json:"thickness"`
}

// Summarize collects the properties of lam.
func Summarize(lam *composite.Laminate) Summary {
	s := Summary{
		Name:        lam.Name(),
		Thickness:   lam.Thickness(),
		Rho:         lam.Rho(),
		Vf:          lam.Vf(),
		Wf:          lam.Wf(),
		FiberWeight: lam.FiberWeight(),
		ResinWeight: lam.ResinWeight(),
		Ex:          lam.Ex(),
		Ey:          lam.Ey(),
		Gxy:         lam.Gxy(),
		Nuxy:        lam.Nuxy(),
		Nuyx:        lam.Nuyx(),
		AlphaX:      lam.AlphaX(),
		AlphaY:      lam.AlphaY(),
		Symmetric:   lam.IsSymmetric(),
		Balanced:    lam.IsBalanced(),
		ABD:         lam.ABD(),
		Compliance:  lam.Compliance(),
	}
	for _, l := range lam.Layers() {
		s.Layers = append(s.Layers, LayerSummary{
			Fiber:       l.Fiber(),
			Resin:       l.Resin(),
			FiberWeight: l.FiberWeight(),
			Angle:       l.Angle(),
			Vf:          l.Vf(),
			Thickness:   l.Thickness(),
		})
	}
	return s
}

// WriteJSON prints the summaries of the laminates as an indented JSON array.
func WriteJSON(w io.Writer, lams []*composite.Laminate) error {
	out := make([]Summary, len(lams))
	for i, lam := range lams {
		out[i] = Summarize(lam)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
