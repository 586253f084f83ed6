package cmd

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/alexiusacademia/golam/internal/composite"
	"github.com/alexiusacademia/golam/internal/diagram"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	laminateSweepFile       string
	laminateSweepName       string
	laminateSweepStep       float64
	laminateSweepTable      bool
	laminateSweepExportFile string
)

var laminateSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Stiffness of a laminate rotated from 0° to 180°",
	Long: `Rotate a laminate in steps from 0° to 180° and compute its
in-plane engineering constants at every angle.

The first laminate in the file is used unless --laminate is given.

Examples:
  golam laminate sweep --file panels.yaml
  golam laminate sweep -f panels.yaml --laminate qi --step 15 --table
  golam laminate sweep -f panels.yaml -o sweep.svg`,
	RunE: runLaminateSweep,
}

func init() {
	laminateCmd.AddCommand(laminateSweepCmd)

	laminateSweepCmd.Flags().StringVarP(&laminateSweepFile, "file", "f", "", "Path to laminate JSON or YAML file [required]")
	laminateSweepCmd.MarkFlagRequired("file")
	laminateSweepCmd.Flags().StringVar(&laminateSweepName, "laminate", "", "Name of the laminate to sweep (default: first)")
	laminateSweepCmd.Flags().Float64Var(&laminateSweepStep, "step", 5, "Angle increment in degrees")
	laminateSweepCmd.Flags().BoolVar(&laminateSweepTable, "table", false, "Print the sweep as a table")
	laminateSweepCmd.Flags().StringVarP(&laminateSweepExportFile, "output", "o", "", "Export sweep plot to file (png, svg, pdf)")
}

func runLaminateSweep(cmd *cobra.Command, args []string) error {
	_, lams, err := loadLaminates(laminateSweepFile, laminateSweepName)
	if err != nil {
		return fmt.Errorf("loading laminates: %w", err)
	}
	if len(lams) == 0 {
		return fmt.Errorf("no laminates defined in %s", laminateSweepFile)
	}
	lam := lams[0]

	points, err := composite.Sweep(cmd.Context(), lam, laminateSweepStep)
	if err != nil {
		return fmt.Errorf("sweeping %s: %w", lam.Name(), err)
	}
	slog.Debug("sweep done", "laminate", lam.Name(), "points", len(points))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     ANGLE SWEEP - %s (step %g°)\n", lam.Name(), laminateSweepStep)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	ex := make([]float64, len(points))
	ey := make([]float64, len(points))
	gxy := make([]float64, len(points))
	for i, p := range points {
		ex[i], ey[i], gxy[i] = p.Ex, p.Ey, p.Gxy
	}
	for _, s := range []struct {
		caption string
		data    []float64
	}{
		{"Ex (MPa) vs rotation 0°..180°", ex},
		{"Ey (MPa) vs rotation 0°..180°", ey},
		{"Gxy (MPa) vs rotation 0°..180°", gxy},
	} {
		graph := asciigraph.Plot(s.data,
			asciigraph.Height(10),
			asciigraph.Width(72),
			asciigraph.Caption(s.caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	if laminateSweepTable {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Angle (°)\tEx (MPa)\tEy (MPa)\tGxy (MPa)\tνxy\n")
		fmt.Fprintf(w, "  ─────────\t────────\t────────\t─────────\t───\n")
		for _, p := range points {
			fmt.Fprintf(w, "  %.1f\t%.0f\t%.0f\t%.0f\t%.4f\n", p.Angle, p.Ex, p.Ey, p.Gxy, p.Nuxy)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	if laminateSweepExportFile != "" {
		if err := diagram.ExportSweep(lam.Name(), points, laminateSweepExportFile); err != nil {
			return fmt.Errorf("exporting sweep: %w", err)
		}
		slog.Info("sweep exported", "laminate", lam.Name(), "file", laminateSweepExportFile)
		fmt.Fprintf(out, "Sweep plot exported to: %s\n", laminateSweepExportFile)
	}
	return nil
}
