package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/golam/internal/composite"
	"github.com/alexiusacademia/golam/internal/laminatefile"
	"github.com/spf13/cobra"
)

var laminateCmd = &cobra.Command{
	Use:   "laminate",
	Short: "Laminate analysis from a definition file",
	Long: `Analyze laminates defined in JSON or YAML files.

Fibers and resins may be defined in the file or taken from the
built-in catalog (see 'golam catalog').

Subcommands:
  analyze  - ABD matrix, engineering constants and thermal expansion
  sweep    - Stiffness of a laminate over the loading angle

Example YAML file structure:
resins:
  - {name: my-epoxy, e: 3000, nu: 0.35, alpha: 60e-6, rho: 1.2}
laminates:
  - name: quasi-isotropic
    resin: my-epoxy
    vf: 0.5
    symmetric: true
    layers:
      - {fiber: T300, weight: 200, angle: 0}
      - {fiber: T300, weight: 200, angle: 45}
      - {fiber: T300, weight: 200, angle: -45}
      - {fiber: T300, weight: 200, angle: 90}`,
}

func init() {
	rootCmd.AddCommand(laminateCmd)
}

// loadLaminates reads path and builds its laminates. A non-empty name keeps
// only the laminate with that name.
func loadLaminates(path, name string) (*laminatefile.File, []*composite.Laminate, error) {
	file, err := laminatefile.LoadFromFile(path)
	if err != nil {
		return nil, nil, err
	}
	lams, err := file.Build()
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("laminates loaded", "file", path, "count", len(lams))
	if name == "" {
		return file, lams, nil
	}
	for _, lam := range lams {
		if strings.EqualFold(lam.Name(), name) {
			return file, []*composite.Laminate{lam}, nil
		}
	}
	return nil, nil, fmt.Errorf("laminate %q not found in %s", name, path)
}

// outputName returns the export path for lam. When several laminates share
// one output flag the laminate name is inserted before the extension.
func outputName(output string, lam *composite.Laminate, many bool) string {
	if !many {
		return output
	}
	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)
	return base + "-" + slug(lam.Name()) + ext
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, s)
}
