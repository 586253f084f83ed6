// Package catalog provides commonly used fibers and resins so that input
// files and command-line flags can refer to them by name.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexiusacademia/golam/internal/composite"
)

// FiberSpec lists the properties of a catalog fiber
type FiberSpec struct {
	Name   string
	E1     float64 // MPa
	Nu12   float64
	Alpha1 float64 // K⁻¹
	Rho    float64 // g/cm³
	Note   string
}

// ResinSpec lists the properties of a catalog resin
type ResinSpec struct {
	Name  string
	E     float64 // MPa
	Nu    float64
	Alpha float64 // K⁻¹
	Rho   float64 // g/cm³
	Note  string
}

// Fibers are typical datasheet values for common reinforcements
var Fibers = []FiberSpec{
	{Name: "T300", E1: 230000, Nu12: 0.30, Alpha1: -0.41e-6, Rho: 1.76, Note: "standard modulus carbon"},
	{Name: "T700SC", E1: 230000, Nu12: 0.27, Alpha1: -0.38e-6, Rho: 1.80, Note: "high strength carbon"},
	{Name: "M40J", E1: 377000, Nu12: 0.30, Alpha1: -0.83e-6, Rho: 1.77, Note: "high modulus carbon"},
	{Name: "E-glass", E1: 73000, Nu12: 0.33, Alpha1: 5.3e-6, Rho: 2.60, Note: "general purpose glass"},
	{Name: "aramid", E1: 124000, Nu12: 0.35, Alpha1: -2.0e-6, Rho: 1.44, Note: "para-aramid"},
}

// Resins are typical values for cured, unfilled matrix materials
var Resins = []ResinSpec{
	{Name: "epoxy", E: 2900, Nu: 0.36, Alpha: 41.4e-6, Rho: 1.15, Note: "bisphenol-A laminating epoxy"},
	{Name: "polyester", E: 3400, Nu: 0.38, Alpha: 70e-6, Rho: 1.20, Note: "orthophthalic polyester"},
	{Name: "vinylester", E: 3350, Nu: 0.35, Alpha: 65e-6, Rho: 1.12, Note: "bisphenol-A vinylester"},
}

// Fiber returns the catalog fiber with the given name, ignoring case.
func Fiber(name string) (composite.Fiber, error) {
	for _, s := range Fibers {
		if strings.EqualFold(s.Name, name) {
			return composite.NewFiber(s.E1, s.Nu12, s.Alpha1, s.Rho, s.Name)
		}
	}
	return composite.Fiber{}, fmt.Errorf("unknown fiber %q (known: %s)", name, strings.Join(FiberNames(), ", "))
}

// Resin returns the catalog resin with the given name, ignoring case.
func Resin(name string) (composite.Resin, error) {
	for _, s := range Resins {
		if strings.EqualFold(s.Name, name) {
			return composite.NewResin(s.E, s.Nu, s.Alpha, s.Rho, s.Name)
		}
	}
	return composite.Resin{}, fmt.Errorf("unknown resin %q (known: %s)", name, strings.Join(ResinNames(), ", "))
}

// FiberNames returns the sorted names of the catalog fibers.
func FiberNames() []string {
	names := make([]string, len(Fibers))
	for i, s := range Fibers {
		names[i] = s.Name
	}
	sort.Strings(names)
	return names
}

// ResinNames returns the sorted names of the catalog resins.
func ResinNames() []string {
	names := make([]string, len(Resins))
	for i, s := range Resins {
		names[i] = s.Name
	}
	sort.Strings(names)
	return names
}
