package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/golam/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the built-in fibers and resins",
	Long: `List the fibers and resins that laminate files and the lamina
command can refer to by name. Names are matched without regard to case.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "FIBERS:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Name\tE1 (MPa)\tν12\tα1 (1/K)\tρ (g/cm³)\tNote\n")
		for _, f := range catalog.Fibers {
			fmt.Fprintf(w, "  %s\t%.0f\t%.2f\t%.3g\t%.2f\t%s\n", f.Name, f.E1, f.Nu12, f.Alpha1, f.Rho, f.Note)
		}
		w.Flush()
		fmt.Fprintln(out)

		fmt.Fprintln(out, "RESINS:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Name\tE (MPa)\tν\tα (1/K)\tρ (g/cm³)\tNote\n")
		for _, r := range catalog.Resins {
			fmt.Fprintf(w, "  %s\t%.0f\t%.2f\t%.3g\t%.2f\t%s\n", r.Name, r.E, r.Nu, r.Alpha, r.Rho, r.Note)
		}
		w.Flush()
		fmt.Fprintln(out)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
