package composite

import "math"

const (
	// Nu12 is the in-plane Poisson's ratio assigned to every lamina.
	Nu12 = 0.3

	// TransverseFactor scales the resin modulus to the transverse modulus E2.
	TransverseFactor = 3.0
)

// QBar holds the reduced stiffness components of a lamina transformed to
// the laminate axes (MPa).
type QBar struct {
	Q11, Q12, Q16 float64
	Q22, Q26, Q66 float64
}

// Reduced holds the reduced stiffness components in the material axes (MPa).
type Reduced struct {
	Q11, Q12, Q22, Q66 float64
}

// Lamina is a unidirectional ply of fibers in a resin.
type Lamina struct {
	// input
	fiber       Fiber
	resin       Resin
	fiberWeight float64 // g/m²
	angle       float64 // degrees counterclockwise from the x-axis
	vf          float64 // fiber volume fraction, 0 < vf <= 1

	// derived
	thickness   float64 // mm
	resinWeight float64 // g/m²
	e1, e2, g12 float64 // MPa
	nu21        float64
	alphaX      float64 // K⁻¹
	alphaY      float64
	alphaXY     float64
	rho         float64 // g/cm³
	reduced     Reduced
	qbar        QBar
}

// NewLamina computes the properties of a ply. fiberWeight is in g/m² and
// angle in degrees. vf is a fraction in (0, 1] or a percentage in (1, 100].
func NewLamina(fiber Fiber, resin Resin, fiberWeight, angle, vf float64) (Lamina, error) {
	if fiber.name == "" || resin.name == "" {
		return Lamina{}, invalidf("lamina needs a fiber and a resin created by NewFiber and NewResin")
	}
	if !finite(fiberWeight, angle) {
		return Lamina{}, invalidf("lamina fiber weight and angle must be finite numbers")
	}
	if fiberWeight <= 0 {
		return Lamina{}, invalidf("fiber weight must be > 0, got %g", fiberWeight)
	}
	vf, err := normalizeVf(vf)
	if err != nil {
		return Lamina{}, err
	}

	l := Lamina{fiber: fiber, resin: resin, fiberWeight: fiberWeight, angle: angle, vf: vf}
	vm := 1 - vf
	fiberThickness := fiberWeight / (fiber.rho * 1000)
	l.thickness = fiberThickness * (1 + vm/vf)
	l.resinWeight = l.thickness * vm * resin.rho * 1000

	// Rule of mixtures along the fiber; resin dominated across it.
	l.e1 = vf*fiber.e1 + vm*resin.e
	l.e2 = TransverseFactor * resin.e
	l.g12 = l.e2 / 2
	l.nu21 = Nu12 * l.e2 / l.e1

	a := angle * math.Pi / 180
	m, n := math.Cos(a), math.Sin(a)
	m2, n2 := m*m, n*n
	m3, n3 := m2*m, n2*n
	m4, n4 := m2*m2, n2*n2

	alpha1 := (fiber.alpha1*fiber.e1*vf + resin.alpha*resin.e*vm) / l.e1
	alpha2 := resin.alpha
	l.alphaX = alpha1*m2 + alpha2*n2
	l.alphaY = alpha1*n2 + alpha2*m2
	l.alphaXY = 2 * (alpha1 - alpha2) * m * n

	denom := 1 - Nu12*l.nu21
	q11, q12 := l.e1/denom, Nu12*l.e2/denom
	q22, q66 := l.e2/denom, l.g12
	l.reduced = Reduced{Q11: q11, Q12: q12, Q22: q22, Q66: q66}

	qa := q11 - q12 - 2*q66
	qb := q12 - q22 + 2*q66
	l.qbar = QBar{
		Q11: q11*m4 + 2*(q12+2*q66)*n2*m2 + q22*n4,
		Q12: (q11+q22-4*q66)*n2*m2 + q12*(n4+m4),
		Q16: qa*n*m3 + qb*n3*m,
		Q22: q11*n4 + 2*(q12+2*q66)*n2*m2 + q22*m4,
		Q26: qa*n3*m + qb*n*m3,
		Q66: (q11+q22-2*q12-2*q66)*n2*m2 + q66*(n4+m4),
	}

	l.rho = fiber.rho*vf + resin.rho*vm
	return l, nil
}

// normalizeVf turns a fraction or percentage into a fraction.
func normalizeVf(vf float64) (float64, error) {
	switch {
	case vf > 0 && vf <= 1:
		return vf, nil
	case vf > 1 && vf <= 100:
		return vf / 100, nil
	case vf == 0:
		return 0, invalidf("vf must be > 0, a lamina without fibers is not supported")
	default:
		return 0, invalidf("vf out of range: %g is not in 0.0-1.0 or 1.0-100.0", vf)
	}
}

// Fiber returns the fiber of the ply.
func (l Lamina) Fiber() Fiber {
	return l.fiber
}

// Resin returns the resin of the ply.
func (l Lamina) Resin() Resin {
	return l.resin
}

// FiberWeight returns the fiber areal weight in g/m².
func (l Lamina) FiberWeight() float64 {
	return l.fiberWeight
}

// Angle returns the ply angle in degrees.
func (l Lamina) Angle() float64 {
	return l.angle
}

// Vf returns the fiber volume fraction.
func (l Lamina) Vf() float64 {
	return l.vf
}

// Thickness returns the ply thickness in mm.
func (l Lamina) Thickness() float64 {
	return l.thickness
}

// ResinWeight returns the resin areal weight in g/m².
func (l Lamina) ResinWeight() float64 {
	return l.resinWeight
}

// E1 returns the modulus along the fibers in MPa.
func (l Lamina) E1() float64 {
	return l.e1
}

// E2 returns the modulus across the fibers in MPa.
func (l Lamina) E2() float64 {
	return l.e2
}

// G12 returns the in-plane shear modulus in MPa.
func (l Lamina) G12() float64 {
	return l.g12
}

// Nu12 returns the major Poisson's ratio, always the Nu12 constant.
func (l Lamina) Nu12() float64 {
	return Nu12
}

// Nu21 returns the minor Poisson's ratio.
func (l Lamina) Nu21() float64 {
	return l.nu21
}

// AlphaX returns the CTE along the laminate x-axis in K⁻¹.
func (l Lamina) AlphaX() float64 {
	return l.alphaX
}

// AlphaY returns the CTE along the laminate y-axis in K⁻¹.
func (l Lamina) AlphaY() float64 {
	return l.alphaY
}

// AlphaXY returns the shear CTE in the laminate axes in K⁻¹.
func (l Lamina) AlphaXY() float64 {
	return l.alphaXY
}

// Rho returns the ply density in g/cm³.
func (l Lamina) Rho() float64 {
	return l.rho
}

// Reduced returns the reduced stiffnesses in the material axes.
func (l Lamina) Reduced() Reduced {
	return l.reduced
}

// QBar returns the reduced stiffnesses in the laminate axes.
func (l Lamina) QBar() QBar {
	return l.qbar
}

// sameAs reports whether two plies were built from identical inputs.
func (l Lamina) sameAs(o Lamina) bool {
	return l.fiber == o.fiber && l.resin == o.resin &&
		l.fiberWeight == o.fiberWeight && l.angle == o.angle && l.vf == o.vf
}
