package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alexiusacademia/golam/internal/version"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "golam",
	Short: "Composite Laminate Analysis Tool",
	Long: `golam - Go Laminate Analyzer

A CLI tool for the analysis of fiber reinforced composite laminates
using Classical Laminate Theory.

This tool helps composite designers perform:
  - Ply property estimation from fiber, resin and fiber volume fraction
  - ABD stiffness and compliance matrices of a stacking sequence
  - In-plane engineering constants and thermal expansion
  - Angle sweeps of laminate stiffness

Laminates are described in JSON or YAML files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := parseLevel(logLevel)
		if err != nil {
			return err
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   golam v%-49s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Laminate Analyzer                                    ║")
		fmt.Fprintf(out, "  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for the analysis of fiber reinforced composite")
		fmt.Fprintln(out, "  laminates based on Classical Laminate Theory.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Lamina stiffness from fiber and resin properties")
		fmt.Fprintln(out, "    • ABD matrix and its inverse")
		fmt.Fprintln(out, "    • Engineering constants and thermal expansion")
		fmt.Fprintln(out, "    • Stiffness sweeps over the loading angle")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'golam --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (debug, info, warn, error)")
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
