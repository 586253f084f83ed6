package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alexiusacademia/golam/internal/catalog"
	"github.com/alexiusacademia/golam/internal/composite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, name string, angles ...float64) *composite.Laminate {
	t.Helper()
	f, err := catalog.Fiber("T300")
	require.NoError(t, err)
	r, err := catalog.Resin("epoxy")
	require.NoError(t, err)
	layers := make([]composite.Lamina, len(angles))
	for i, a := range angles {
		layers[i], err = composite.NewLamina(f, r, 200, a, 0.5)
		require.NoError(t, err)
	}
	lam, err := composite.NewLaminate(name, layers)
	require.NoError(t, err)
	return lam
}

func TestWriteFull(t *testing.T) {
	lam := build(t, "cross-ply", 0, 90, 90, 0)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, lam, Options{Engineering: true, Matrices: true, Description: "test stack"}))

	out := buf.String()
	for _, want := range []string{
		"Laminate: cross-ply",
		"Description: test stack",
		"STACKING SEQUENCE:",
		"T300",
		"epoxy",
		"Thickness:",
		"E_x:",
		"ν_xy:",
		"α_y:",
		"STIFFNESS (ABD) MATRIX:",
		"COMPLIANCE (abd) MATRIX:",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "⚠")
	rows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  |") && strings.HasSuffix(line, "|") {
			rows++
		}
	}
	assert.Equal(t, 12, rows, "ABD and abd rows")
}

func TestWriteSelectsParts(t *testing.T) {
	lam := build(t, "ud", 0)

	var eng bytes.Buffer
	require.NoError(t, Write(&eng, lam, Options{Engineering: true}))
	assert.Contains(t, eng.String(), "E_x:")
	assert.NotContains(t, eng.String(), "ABD")

	var mat bytes.Buffer
	require.NoError(t, Write(&mat, lam, Options{Matrices: true}))
	assert.NotContains(t, mat.String(), "E_x:")
	assert.Contains(t, mat.String(), "ABD")
}

func TestCaveat(t *testing.T) {
	assert.Empty(t, Caveat(build(t, "sym", 45, -45, -45, 45)))
	assert.Contains(t, Caveat(build(t, "unsym", 0, 90)), "not symmetric")
	assert.Contains(t, Caveat(build(t, "unbal", 30, 0, 30)), "not balanced")
	assert.Contains(t, Caveat(build(t, "neither", 30, 0)), "neither")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, build(t, "unsym", 0, 90), Options{Engineering: true}))
	assert.Contains(t, buf.String(), "approximate")
}

func TestWriteJSON(t *testing.T) {
	lam := build(t, "qi", 0, 90, 45, -45, -45, 45, 90, 0)
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []*composite.Laminate{lam}))

	var got []Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "qi", got[0].Name)
	assert.InEpsilon(t, lam.Ex(), got[0].Ex, 1e-12)
	assert.True(t, got[0].Symmetric)
	assert.True(t, got[0].Balanced)
	assert.Len(t, got[0].Layers, 8)
	assert.Len(t, got[0].ABD, 6)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	layer := raw[0]["layers"].([]any)[0].(map[string]any)
	assert.Equal(t, "T300", layer["fiber"].(map[string]any)["name"])
}
