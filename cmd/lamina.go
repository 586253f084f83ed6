package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/golam/internal/catalog"
	"github.com/alexiusacademia/golam/internal/composite"
	"github.com/alexiusacademia/golam/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	// Ply inputs
	laminaFiber  string
	laminaResin  string
	laminaWeight float64
	laminaAngle  float64
	laminaVf     float64
)

var laminaCmd = &cobra.Command{
	Use:   "lamina",
	Short: "Properties of a single ply",
	Long: `Estimate the properties of a single unidirectional ply from a
catalog fiber and resin.

  E1  = Vf·Ef + (1 - Vf)·Er      (rule of mixtures)
  E2  = 3·Er
  G12 = E2 / 2,  ν12 = 0.3

Vf may be given as a fraction (0.55) or a percentage (55).

Examples:
  # 200 g/m² T300 in epoxy at 45°
  golam lamina --fiber T300 --resin epoxy --weight 200 --angle 45

  # E-glass in polyester at 35% fiber volume
  golam lamina --fiber e-glass --resin polyester -w 450 --vf 35`,
	RunE: runLamina,
}

func init() {
	rootCmd.AddCommand(laminaCmd)

	// Material flags
	laminaCmd.Flags().StringVar(&laminaFiber, "fiber", "T300", "Catalog fiber name")
	laminaCmd.Flags().StringVar(&laminaResin, "resin", "epoxy", "Catalog resin name")

	// Ply flags
	laminaCmd.Flags().Float64VarP(&laminaWeight, "weight", "w", 0, "Fiber areal weight (g/m²) [required]")
	laminaCmd.Flags().Float64VarP(&laminaAngle, "angle", "a", 0, "Ply angle (degrees)")
	laminaCmd.Flags().Float64Var(&laminaVf, "vf", 0.5, "Fiber volume fraction")

	laminaCmd.MarkFlagRequired("weight")
}

func runLamina(cmd *cobra.Command, args []string) error {
	fiber, err := catalog.Fiber(laminaFiber)
	if err != nil {
		return err
	}
	resin, err := catalog.Resin(laminaResin)
	if err != nil {
		return err
	}
	ply, err := composite.NewLamina(fiber, resin, laminaWeight, laminaAngle, laminaVf)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     PLY PROPERTIES - RULE OF MIXTURES")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "MATERIALS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  \tE (MPa)\tν\tα (1/K)\tρ (g/cm³)\n")
	fmt.Fprintf(w, "  Fiber %s\t%.0f\t%.3f\t%.3g\t%.3f\n", fiber.Name(), fiber.E1(), fiber.Nu12(), fiber.Alpha1(), fiber.Rho())
	fmt.Fprintf(w, "  Resin %s\t%.0f\t%.3f\t%.3g\t%.3f\n", resin.Name(), resin.E(), resin.Nu(), resin.Alpha(), resin.Rho())
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "PLY:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Fiber weight:\t%.1f g/m²\n", ply.FiberWeight())
	fmt.Fprintf(w, "  Resin weight:\t%.1f g/m²\n", ply.ResinWeight())
	fmt.Fprintf(w, "  Fiber volume fraction:\t%.3f\n", ply.Vf())
	fmt.Fprintf(w, "  Thickness:\t%.4f mm\n", ply.Thickness())
	fmt.Fprintf(w, "  Density:\t%.3f g/cm³\n", ply.Rho())
	fmt.Fprintf(w, "  Angle:\t%.1f°\n", ply.Angle())
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "THERMAL EXPANSION (ply axes rotated by θ):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  αx:\t%.4g 1/K\n", ply.AlphaX())
	fmt.Fprintf(w, "  αy:\t%.4g 1/K\n", ply.AlphaY())
	fmt.Fprintf(w, "  αxy:\t%.4g 1/K\n", ply.AlphaXY())
	w.Flush()
	fmt.Fprintln(out)

	q := ply.QBar()
	fmt.Fprintln(out, "TRANSFORMED REDUCED STIFFNESS Q̅ (MPa):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  %.1f\t%.1f\t%.1f\n", q.Q11, q.Q12, q.Q16)
	fmt.Fprintf(w, "  %.1f\t%.1f\t%.1f\n", q.Q12, q.Q22, q.Q26)
	fmt.Fprintf(w, "  %.1f\t%.1f\t%.1f\n", q.Q16, q.Q26, q.Q66)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("PLY STIFFNESS", []string{
		fmt.Sprintf("E₁  = %.0f MPa", ply.E1()),
		fmt.Sprintf("E₂  = %.0f MPa", ply.E2()),
		fmt.Sprintf("G₁₂ = %.0f MPa", ply.G12()),
		fmt.Sprintf("ν₁₂ = %.2f   ν₂₁ = %.4f", ply.Nu12(), ply.Nu21()),
	}))
	fmt.Fprintln(out)
	return nil
}
