package composite_test

import (
	"testing"

	"github.com/alexiusacademia/golam/internal/composite"
	"github.com/stretchr/testify/require"
)

func mustFiber(t *testing.T, e1, nu12, alpha1, rho float64, name string) composite.Fiber {
	t.Helper()
	f, err := composite.NewFiber(e1, nu12, alpha1, rho, name)
	require.NoError(t, err)
	return f
}

func mustResin(t *testing.T, e, nu, alpha, rho float64, name string) composite.Resin {
	t.Helper()
	r, err := composite.NewResin(e, nu, alpha, rho, name)
	require.NoError(t, err)
	return r
}

func mustLamina(t *testing.T, f composite.Fiber, r composite.Resin, weight, angle, vf float64) composite.Lamina {
	t.Helper()
	l, err := composite.NewLamina(f, r, weight, angle, vf)
	require.NoError(t, err)
	return l
}

func mustLaminate(t *testing.T, name string, layers ...composite.Lamina) *composite.Laminate {
	t.Helper()
	lam, err := composite.NewLaminate(name, layers)
	require.NoError(t, err)
	return lam
}

// Hyer's carbon fiber and resin.
func hyer(t *testing.T) (composite.Fiber, composite.Resin) {
	t.Helper()
	return mustFiber(t, 233000, 0.2, -0.54e-6, 1.76, "Hyer's carbon fiber"),
		mustResin(t, 4620, 0.36, 41.4e-6, 1.1, "Hyer's resin")
}
