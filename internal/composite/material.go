// Package composite implements classical laminate theory for fiber
// reinforced plastics: fibers and resins, the plies (laminae) built from
// them, and laminates stacked from plies.
//
// Every type here is a value computed once by its constructor. There are
// no setters; a changed laminate is a new Laminate.
package composite

import (
	"encoding/json"
	"math"
)

// Fiber holds the properties of a reinforcing fiber.
// Subscript 1 denotes the length direction of the fiber.
type Fiber struct {
	e1     float64 // Young's modulus along the fiber (MPa)
	nu12   float64 // Poisson's ratio
	alpha1 float64 // CTE along the fiber (K⁻¹)
	rho    float64 // density (g/cm³)
	name   string
}

// NewFiber validates and creates a Fiber.
func NewFiber(e1, nu12, alpha1, rho float64, name string) (Fiber, error) {
	if !finite(e1, nu12, alpha1, rho) {
		return Fiber{}, invalidf("fiber %q: properties must be finite numbers", name)
	}
	if e1 <= 0 {
		return Fiber{}, invalidf("fiber E1 must be > 0, got %g", e1)
	}
	if rho <= 0 {
		return Fiber{}, invalidf("fiber ρ must be > 0, got %g", rho)
	}
	if name == "" {
		return Fiber{}, invalidf("fiber name must not be empty")
	}
	return Fiber{e1: e1, nu12: nu12, alpha1: alpha1, rho: rho, name: name}, nil
}

// E1 returns the axial Young's modulus in MPa.
func (f Fiber) E1() float64 {
	return f.e1
}

// Nu12 returns the fiber Poisson's ratio.
func (f Fiber) Nu12() float64 {
	return f.nu12
}

// Alpha1 returns the axial CTE in K⁻¹.
func (f Fiber) Alpha1() float64 {
	return f.alpha1
}

// Rho returns the density in g/cm³.
func (f Fiber) Rho() float64 {
	return f.rho
}

// Name returns the fiber name.
func (f Fiber) Name() string {
	return f.name
}

// MarshalJSON encodes the fiber with its public property names.
func (f Fiber) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name   string  `json:"name"`
		E1     float64 `json:"e1"`
		Nu12   float64 `json:"nu12"`
		Alpha1 float64 `json:"alpha1"`
		Rho    float64 `json:"rho"`
	}{f.name, f.e1, f.nu12, f.alpha1, f.rho})
}

// Resin holds the properties of an isotropic matrix material.
type Resin struct {
	e     float64 // Young's modulus (MPa)
	nu    float64 // Poisson's ratio
	alpha float64 // CTE (K⁻¹)
	rho   float64 // density (g/cm³)
	name  string
}

// NewResin validates and creates a Resin.
func NewResin(e, nu, alpha, rho float64, name string) (Resin, error) {
	if !finite(e, nu, alpha, rho) {
		return Resin{}, invalidf("resin %q: properties must be finite numbers", name)
	}
	if e <= 0 {
		return Resin{}, invalidf("resin E must be > 0, got %g", e)
	}
	if rho <= 0 {
		return Resin{}, invalidf("resin ρ must be > 0, got %g", rho)
	}
	if name == "" {
		return Resin{}, invalidf("resin name must not be empty")
	}
	return Resin{e: e, nu: nu, alpha: alpha, rho: rho, name: name}, nil
}

// E returns the Young's modulus in MPa.
func (r Resin) E() float64 {
	return r.e
}

// Nu returns the Poisson's ratio.
func (r Resin) Nu() float64 {
	return r.nu
}

// Alpha returns the CTE in K⁻¹.
func (r Resin) Alpha() float64 {
	return r.alpha
}

// Rho returns the density in g/cm³.
func (r Resin) Rho() float64 {
	return r.rho
}

// Name returns the resin name.
func (r Resin) Name() string {
	return r.name
}

// MarshalJSON encodes the resin with its public property names.
func (r Resin) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name  string  `json:"name"`
		E     float64 `json:"e"`
		Nu    float64 `json:"nu"`
		Alpha float64 `json:"alpha"`
		Rho   float64 `json:"rho"`
	}{r.name, r.e, r.nu, r.alpha, r.rho})
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
