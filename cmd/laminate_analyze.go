package cmd

import (
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/golam/internal/composite"
	"github.com/alexiusacademia/golam/internal/diagram"
	"github.com/alexiusacademia/golam/internal/report"
	"github.com/spf13/cobra"
)

var (
	laminateAnalyzeFile        string
	laminateAnalyzeName        string
	laminateAnalyzeEng         bool
	laminateAnalyzeMat         bool
	laminateAnalyzeJSON        bool
	laminateAnalyzeShowDiagram bool
	laminateAnalyzeExportFile  string
)

var laminateAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute the properties of the laminates in a file",
	Long: `Compute the ABD matrix, its inverse, the in-plane engineering
constants and the thermal expansion coefficients of every laminate
defined in a JSON or YAML file.

Without --eng or --mat both sections are printed.

Examples:
  golam laminate analyze --file panels.yaml
  golam laminate analyze -f panels.yaml --laminate qi --mat
  golam laminate analyze -f panels.json --json
  golam laminate analyze -f panels.yaml --diagram -o stack.png`,
	RunE: runLaminateAnalyze,
}

func init() {
	laminateCmd.AddCommand(laminateAnalyzeCmd)

	laminateAnalyzeCmd.Flags().StringVarP(&laminateAnalyzeFile, "file", "f", "", "Path to laminate JSON or YAML file [required]")
	laminateAnalyzeCmd.MarkFlagRequired("file")
	laminateAnalyzeCmd.Flags().StringVar(&laminateAnalyzeName, "laminate", "", "Only analyze the laminate with this name")

	// Report options
	laminateAnalyzeCmd.Flags().BoolVar(&laminateAnalyzeEng, "eng", false, "Print layers and engineering properties")
	laminateAnalyzeCmd.Flags().BoolVar(&laminateAnalyzeMat, "mat", false, "Print ABD and abd matrices")
	laminateAnalyzeCmd.Flags().BoolVar(&laminateAnalyzeJSON, "json", false, "Print results as JSON")

	// Diagram options
	laminateAnalyzeCmd.Flags().BoolVar(&laminateAnalyzeShowDiagram, "diagram", false, "Show ASCII stacking diagram")
	laminateAnalyzeCmd.Flags().StringVarP(&laminateAnalyzeExportFile, "output", "o", "", "Export stacking diagram to file (png, svg, pdf)")
}

func runLaminateAnalyze(cmd *cobra.Command, args []string) error {
	file, lams, err := loadLaminates(laminateAnalyzeFile, laminateAnalyzeName)
	if err != nil {
		return fmt.Errorf("loading laminates: %w", err)
	}
	out := cmd.OutOrStdout()

	if laminateAnalyzeJSON {
		return report.WriteJSON(out, lams)
	}

	opts := report.Options{Engineering: laminateAnalyzeEng, Matrices: laminateAnalyzeMat}
	if !opts.Engineering && !opts.Matrices {
		opts.Engineering, opts.Matrices = true, true
	}

	for _, lam := range lams {
		if !lam.IsSymmetric() || !lam.IsBalanced() {
			slog.Warn("engineering constants are approximate",
				"laminate", lam.Name(), "symmetric", lam.IsSymmetric(), "balanced", lam.IsBalanced())
		}
		opts.Description = file.Description(lam.Name())
		if err := report.Write(out, lam, opts); err != nil {
			return err
		}
		if laminateAnalyzeShowDiagram {
			fmt.Fprintln(out, diagram.DrawStack(lam))
		}
		if laminateAnalyzeExportFile != "" {
			if err := exportStack(cmd, lam, outputName(laminateAnalyzeExportFile, lam, len(lams) > 1)); err != nil {
				return err
			}
		}
	}
	return nil
}

func exportStack(cmd *cobra.Command, lam *composite.Laminate, filename string) error {
	if err := diagram.ExportStackDiagram(lam, filename); err != nil {
		return fmt.Errorf("exporting diagram: %w", err)
	}
	slog.Info("diagram exported", "laminate", lam.Name(), "file", filename)
	fmt.Fprintf(cmd.OutOrStdout(), "Diagram exported to: %s\n", filename)
	return nil
}
