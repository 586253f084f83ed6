package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiberLookup(t *testing.T) {
	f, err := Fiber("t300")
	require.NoError(t, err)
	assert.Equal(t, "T300", f.Name())
	assert.Equal(t, 230000.0, f.E1())

	_, err = Fiber("basalt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E-glass")
}

func TestResinLookup(t *testing.T) {
	r, err := Resin("EPOXY")
	require.NoError(t, err)
	assert.Equal(t, "epoxy", r.Name())
	assert.Equal(t, 1.15, r.Rho())

	_, err = Resin("phenolic")
	require.Error(t, err)
}

func TestCatalogEntriesAreValid(t *testing.T) {
	for _, s := range Fibers {
		_, err := Fiber(s.Name)
		assert.NoError(t, err, s.Name)
	}
	for _, s := range Resins {
		_, err := Resin(s.Name)
		assert.NoError(t, err, s.Name)
	}
	assert.IsIncreasing(t, ResinNames())
	assert.Len(t, FiberNames(), len(Fibers))
}
