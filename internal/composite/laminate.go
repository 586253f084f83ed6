package composite

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/golam/internal/matrix"
)

// Laminate is a stack of plies, listed from one face to the other.
//
// The engineering constants are computed from the full ABD matrix. They
// are exact for symmetric, balanced laminates only; use IsSymmetric and
// IsBalanced to decide how far to trust them.
type Laminate struct {
	name   string
	layers []Lamina

	thickness   float64 // mm
	fiberWeight float64 // g/m²
	resinWeight float64 // g/m²
	rho         float64 // g/cm³
	vf          float64 // fiber volume fraction
	wf          float64 // fiber weight fraction

	abdStiff matrix.Matrix // ABD, stiffness
	abdComp  matrix.Matrix // abd, compliance

	ex, ey, gxy    float64 // MPa
	nuxy, nuyx     float64
	alphaX         float64 // K⁻¹
	alphaY         float64
	ntx, nty, ntxy float64 // unit thermal force resultants
}

// NewLaminate stacks layers and computes the laminate properties. It
// returns a *ValidationError for an empty name or stack, and the matrix
// package errors when the stiffness matrix cannot be inverted.
func NewLaminate(name string, layers []Lamina) (*Laminate, error) {
	if name == "" {
		return nil, invalidf("the name of a laminate must not be empty")
	}
	if len(layers) == 0 {
		return nil, invalidf("laminate %q has no layers", name)
	}
	for i, l := range layers {
		if l.thickness <= 0 {
			return nil, invalidf("laminate %q: layer %d was not created by NewLamina", name, i+1)
		}
	}

	lam := &Laminate{name: name, layers: append([]Lamina(nil), layers...)}
	var rhoSum, vfSum float64
	for _, l := range lam.layers {
		lam.thickness += l.thickness
		lam.fiberWeight += l.fiberWeight
		lam.resinWeight += l.resinWeight
		rhoSum += l.rho * l.thickness
		vfSum += l.vf * l.thickness
	}
	lam.rho = rhoSum / lam.thickness
	lam.vf = vfSum / lam.thickness
	lam.wf = lam.fiberWeight / (lam.fiberWeight + lam.resinWeight)

	lam.assemble()

	inv, err := matrix.Inverse(lam.abdStiff)
	if err != nil {
		return nil, fmt.Errorf("laminate %q: inverting ABD: %w", name, err)
	}
	lam.abdComp = inv

	if err := lam.engineeringConstants(); err != nil {
		return nil, fmt.Errorf("laminate %q: %w", name, err)
	}

	// Thermal expansion from the membrane part of the compliance matrix.
	a := lam.abdComp
	lam.alphaX = a[0][0]*lam.ntx + a[0][1]*lam.nty + a[0][2]*lam.ntxy
	lam.alphaY = a[1][0]*lam.ntx + a[1][1]*lam.nty + a[1][2]*lam.ntxy
	return lam, nil
}

// assemble builds the ABD matrix and the unit thermal resultants. Rows and
// columns are ordered εx, εy, γxy, κx, κy, κxy.
func (lam *Laminate) assemble() {
	abd := matrix.Zero(6)
	zs := -lam.thickness / 2
	for _, l := range lam.layers {
		ze := zs + l.thickness
		z1 := l.thickness
		z2 := (ze*ze - zs*zs) / 2
		z3 := (ze*ze*ze - zs*zs*zs) / 3
		zs = ze

		q := l.qbar
		block := [3][3]float64{
			{q.Q11, q.Q12, q.Q16},
			{q.Q12, q.Q22, q.Q26},
			{q.Q16, q.Q26, q.Q66},
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				abd[i][j] += block[i][j] * z1
				abd[i][j+3] += block[i][j] * z2
				abd[i+3][j] += block[i][j] * z2
				abd[i+3][j+3] += block[i][j] * z3
			}
		}

		lam.ntx += (q.Q11*l.alphaX + q.Q12*l.alphaY + q.Q16*l.alphaXY) * l.thickness
		lam.nty += (q.Q12*l.alphaX + q.Q22*l.alphaY + q.Q26*l.alphaXY) * l.thickness
		lam.ntxy += (q.Q16*l.alphaX + q.Q26*l.alphaY + q.Q66*l.alphaXY) * l.thickness
	}
	for i := range abd {
		for j := range abd[i] {
			abd[i][j] = matrix.Snap(abd[i][j])
		}
	}
	lam.abdStiff = abd
}

// engineeringConstants derives the moduli and Poisson's ratios from
// ratios of the determinant of ABD and of its minors.
func (lam *Laminate) engineeringConstants() error {
	dABD, err := matrix.Determinant(lam.abdStiff)
	if err != nil {
		return err
	}
	minor := func(r, k int) (float64, error) {
		m, err := matrix.DeleteRowColumn(lam.abdStiff, r, k)
		if err != nil {
			return 0, err
		}
		return matrix.Determinant(m)
	}

	var dt [5]float64
	for i, rk := range [5][2]int{{0, 0}, {1, 1}, {2, 2}, {0, 1}, {1, 0}} {
		if dt[i], err = minor(rk[0], rk[1]); err != nil {
			return fmt.Errorf("minor (%d,%d): %w", rk[0], rk[1], err)
		}
	}
	t := lam.thickness
	lam.ex = dABD / (dt[0] * t)
	lam.ey = dABD / (dt[1] * t)
	lam.gxy = dABD / (dt[2] * t)
	lam.nuxy = dt[3] / dt[0]
	lam.nuyx = dt[4] / dt[1]
	return nil
}

// Name returns the laminate name.
func (lam *Laminate) Name() string {
	return lam.name
}

// Thickness returns the total thickness in mm.
func (lam *Laminate) Thickness() float64 {
	return lam.thickness
}

// FiberWeight returns the total fiber areal weight in g/m².
func (lam *Laminate) FiberWeight() float64 {
	return lam.fiberWeight
}

// ResinWeight returns the total resin areal weight in g/m².
func (lam *Laminate) ResinWeight() float64 {
	return lam.resinWeight
}

// Rho returns the laminate density in g/cm³.
func (lam *Laminate) Rho() float64 {
	return lam.rho
}

// Vf returns the thickness-weighted fiber volume fraction.
func (lam *Laminate) Vf() float64 {
	return lam.vf
}

// Wf returns the fiber weight fraction.
func (lam *Laminate) Wf() float64 {
	return lam.wf
}

// Ex returns the in-plane modulus along x in MPa.
func (lam *Laminate) Ex() float64 {
	return lam.ex
}

// Ey returns the in-plane modulus along y in MPa.
func (lam *Laminate) Ey() float64 {
	return lam.ey
}

// Gxy returns the in-plane shear modulus in MPa.
func (lam *Laminate) Gxy() float64 {
	return lam.gxy
}

// Nuxy returns the Poisson's ratio for loading along x.
func (lam *Laminate) Nuxy() float64 {
	return lam.nuxy
}

// Nuyx returns the Poisson's ratio for loading along y.
func (lam *Laminate) Nuyx() float64 {
	return lam.nuyx
}

// AlphaX returns the CTE along x in K⁻¹.
func (lam *Laminate) AlphaX() float64 {
	return lam.alphaX
}

// AlphaY returns the CTE along y in K⁻¹.
func (lam *Laminate) AlphaY() float64 {
	return lam.alphaY
}

// ThermalResultants returns the force resultants Ntx, Nty and Ntxy of a
// unit temperature change (N/mm per K).
func (lam *Laminate) ThermalResultants() (ntx, nty, ntxy float64) {
	return lam.ntx, lam.nty, lam.ntxy
}

// Layers returns a copy of the stack.
func (lam *Laminate) Layers() []Lamina {
	return append([]Lamina(nil), lam.layers...)
}

// ABD returns a copy of the stiffness matrix.
func (lam *Laminate) ABD() matrix.Matrix {
	return matrix.Clone(lam.abdStiff)
}

// Compliance returns a copy of the compliance matrix abd, the inverse of ABD.
func (lam *Laminate) Compliance() matrix.Matrix {
	return matrix.Clone(lam.abdComp)
}

// IsSymmetric reports whether the stack is its own mirror image about the
// mid-plane.
func (lam *Laminate) IsSymmetric() bool {
	n := len(lam.layers)
	for i := 0; i < n/2; i++ {
		if !lam.layers[i].sameAs(lam.layers[n-1-i]) {
			return false
		}
	}
	return true
}

// IsBalanced reports whether every off-axis ply thickness at +θ is matched
// by the same thickness at -θ. Plies at 0° and 90° need no partner.
func (lam *Laminate) IsBalanced() bool {
	const tol = 1e-9
	byAngle := make(map[float64]float64)
	for _, l := range lam.layers {
		a := normalizeAngle(l.angle)
		if a == 0 || a == 90 {
			continue
		}
		byAngle[a] += l.thickness
	}
	for a, t := range byAngle {
		if math.Abs(t-byAngle[normalizeAngle(-a)]) > tol*lam.thickness {
			return false
		}
	}
	return true
}

// normalizeAngle maps an angle to (-90, 90], since a ply at θ and θ±180°
// are the same ply.
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 180)
	if a <= -90 {
		a += 180
	} else if a > 90 {
		a -= 180
	}
	return a
}
