package composite_test

import (
	"math"
	"testing"

	"github.com/alexiusacademia/golam/internal/composite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaminaProperties(t *testing.T) {
	f := mustFiber(t, 230000, 0.30, -0.41e-6, 1.76, "T300")
	r := mustResin(t, 2900, 0.36, 41.4e-6, 1.15, "Epikote04908")
	la := mustLamina(t, f, r, 100, 0, 0.5)

	assert.InEpsilon(t, 0.11363636363636363, la.Thickness(), 1e-12)
	assert.InEpsilon(t, 65.3409090909091, la.ResinWeight(), 1e-12)
	assert.Equal(t, 116450.0, la.E1())
	assert.Equal(t, 8700.0, la.E2())
	assert.Equal(t, 4350.0, la.G12())
	assert.Equal(t, 0.3, la.Nu12())
	assert.InEpsilon(t, 1.1060541004723054e-07, la.AlphaX(), 1e-9)
	assert.InEpsilon(t, 4.14e-05, la.AlphaY(), 1e-12)
	assert.InDelta(t, 0, la.AlphaXY(), 1e-20)
	assert.InEpsilon(t, 1.455, la.Rho(), 1e-12)

	q := la.QBar()
	assert.InEpsilon(t, 117238.3004659929, q.Q11, 1e-12)
	assert.InEpsilon(t, 2627.6682199763113, q.Q12, 1e-12)
	assert.InEpsilon(t, 8758.894066587705, q.Q22, 1e-12)
	assert.InEpsilon(t, 4350.0, q.Q66, 1e-12)
	assert.Zero(t, q.Q16)
	assert.Zero(t, q.Q26)

	// Inputs are kept.
	assert.Equal(t, f, la.Fiber())
	assert.Equal(t, r, la.Resin())
	assert.Equal(t, 100.0, la.FiberWeight())
	assert.Equal(t, 0.0, la.Angle())
	assert.Equal(t, 0.5, la.Vf())
}

func TestLaminaOnAxisHasNoShearCoupling(t *testing.T) {
	f, r := hyer(t)
	la := mustLamina(t, f, r, 200, 0, 0.55)
	q, red := la.QBar(), la.Reduced()
	assert.Equal(t, red.Q12, q.Q12)
	assert.Equal(t, red.Q11, q.Q11)
	assert.Equal(t, red.Q22, q.Q22)
	assert.Zero(t, q.Q16)
	assert.Zero(t, q.Q26)
}

func TestLaminaNinetyDegreesSwapsAxes(t *testing.T) {
	f, r := hyer(t)
	l0 := mustLamina(t, f, r, 200, 0, 0.5)
	l90 := mustLamina(t, f, r, 200, 90, 0.5)

	q0, q90 := l0.QBar(), l90.QBar()
	assert.InEpsilon(t, q0.Q22, q90.Q11, 1e-9)
	assert.InEpsilon(t, q0.Q11, q90.Q22, 1e-9)
	assert.InEpsilon(t, q0.Q12, q90.Q12, 1e-9)
	assert.InEpsilon(t, q0.Q66, q90.Q66, 1e-9)
	assert.InDelta(t, 0, q90.Q16, 1e-6)
	assert.InDelta(t, 0, q90.Q26, 1e-6)

	assert.InEpsilon(t, l0.AlphaY(), l90.AlphaX(), 1e-9)
	assert.InEpsilon(t, l0.AlphaX(), l90.AlphaY(), 1e-9)

	// Material-axis properties do not depend on the angle.
	assert.Equal(t, l0.E1(), l90.E1())
	assert.Equal(t, l0.Thickness(), l90.Thickness())
}

func TestLaminaOffAxisCoupling(t *testing.T) {
	f, r := hyer(t)
	plus := mustLamina(t, f, r, 100, 45, 0.5)
	minus := mustLamina(t, f, r, 100, -45, 0.5)

	assert.NotZero(t, plus.QBar().Q16)
	assert.InEpsilon(t, plus.QBar().Q16, -minus.QBar().Q16, 1e-9)
	assert.InEpsilon(t, plus.QBar().Q26, -minus.QBar().Q26, 1e-9)
	assert.InEpsilon(t, plus.QBar().Q11, plus.QBar().Q22, 1e-9)
	assert.InEpsilon(t, plus.AlphaXY(), -minus.AlphaXY(), 1e-9)
}

func TestLaminaPercentageVf(t *testing.T) {
	f, r := hyer(t)
	fraction := mustLamina(t, f, r, 300, 30, 0.60)
	percent := mustLamina(t, f, r, 300, 30, 60)
	require.Equal(t, fraction, percent)
	assert.Equal(t, 0.6, percent.Vf())

	// 1 is a fraction, not one percent.
	full := mustLamina(t, f, r, 300, 0, 1)
	assert.Equal(t, 1.0, full.Vf())
	assert.InEpsilon(t, 300/(f.Rho()*1000), full.Thickness(), 1e-12)
	assert.Zero(t, full.ResinWeight())

	hundred := mustLamina(t, f, r, 300, 0, 100)
	assert.Equal(t, full, hundred)
}

func TestLaminaInvalid(t *testing.T) {
	f, r := hyer(t)
	tests := []struct {
		name          string
		weight, angle float64
		vf            float64
	}{
		{"zero vf", 200, 0, 0},
		{"negative vf", 200, 0, -0.5},
		{"vf above 100", 200, 0, 100.5},
		{"NaN vf", 200, 0, math.NaN()},
		{"zero weight", 0, 0, 0.5},
		{"negative weight", -100, 0, 0.5},
		{"infinite angle", 200, math.Inf(-1), 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := composite.NewLamina(f, r, tt.weight, tt.angle, tt.vf)
			var verr *composite.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}

	_, err := composite.NewLamina(composite.Fiber{}, r, 200, 0, 0.5)
	var verr *composite.ValidationError
	require.ErrorAs(t, err, &verr)
}
