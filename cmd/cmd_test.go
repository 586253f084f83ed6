package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns what it printed.
// Flag values are reset first since the commands keep them in package
// variables.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestRootBanner(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Go Laminate Analyzer")
	assert.Contains(t, out, "golam --help")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "golam v")
}

func TestUnknownLogLevel(t *testing.T) {
	_, err := execute(t, "version", "--log", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestCatalog(t *testing.T) {
	out, err := execute(t, "catalog")
	require.NoError(t, err)
	for _, name := range []string{"T300", "M40J", "E-glass", "epoxy", "vinylester"} {
		assert.Contains(t, out, name)
	}
}

func TestLamina(t *testing.T) {
	out, err := execute(t, "lamina", "--fiber", "t300", "--resin", "epoxy", "--weight", "200", "--angle", "45")
	require.NoError(t, err)
	assert.Contains(t, out, "PLY STIFFNESS")
	assert.Contains(t, out, "E₂  = 8700 MPa")
	assert.Contains(t, out, "G₁₂ = 4350 MPa")
	assert.Contains(t, out, "45.0°")
}

func TestLaminaErrors(t *testing.T) {
	_, err := execute(t, "lamina")
	require.Error(t, err, "weight is required")

	_, err = execute(t, "lamina", "--fiber", "unobtainium", "--weight", "200")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown fiber")

	_, err = execute(t, "lamina", "--weight", "200", "--vf", "120")
	require.Error(t, err)
}

func TestLaminateAnalyze(t *testing.T) {
	out, err := execute(t, "laminate", "analyze", "-f", "testdata/panels.yaml", "--laminate", "ud")
	require.NoError(t, err)
	assert.Contains(t, out, "Laminate: ud")
	assert.Contains(t, out, "four unidirectional plies")
	assert.Contains(t, out, "118810 MPa")
	assert.Contains(t, out, "STIFFNESS (ABD) MATRIX:")
	assert.NotContains(t, out, "Laminate: qi")
}

func TestLaminateAnalyzeSections(t *testing.T) {
	out, err := execute(t, "laminate", "analyze", "-f", "testdata/panels.yaml", "--mat")
	require.NoError(t, err)
	assert.Contains(t, out, "Laminate: ud")
	assert.Contains(t, out, "Laminate: qi")
	assert.Contains(t, out, "COMPLIANCE (abd) MATRIX:")
	assert.NotContains(t, out, "IN-PLANE ENGINEERING PROPERTIES:")

	out, err = execute(t, "laminate", "analyze", "-f", "testdata/panels.yaml", "--eng", "--diagram")
	require.NoError(t, err)
	assert.Contains(t, out, "IN-PLANE ENGINEERING PROPERTIES:")
	assert.NotContains(t, out, "STIFFNESS (ABD) MATRIX:")
	assert.Contains(t, out, "mid-plane")
}

func TestLaminateAnalyzeJSON(t *testing.T) {
	out, err := execute(t, "laminate", "analyze", "-f", "testdata/panels.yaml", "--json")
	require.NoError(t, err)

	var got []struct {
		Name      string  `json:"name"`
		Ex        float64 `json:"ex"`
		Symmetric bool    `json:"symmetric"`
		Layers    []any   `json:"layers"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "ud", got[0].Name)
	assert.InDelta(t, 118810, got[0].Ex, 1e-3)
	assert.Equal(t, "qi", got[1].Name)
	assert.True(t, got[1].Symmetric)
	assert.Len(t, got[1].Layers, 8)
}

func TestLaminateAnalyzeExport(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "laminate", "analyze", "-f", "testdata/panels.yaml", "--eng", "-o", filepath.Join(dir, "stack.png"))
	require.NoError(t, err)
	assert.Contains(t, out, "Diagram exported to:")

	for _, name := range []string{"stack-ud.png", "stack-qi.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestLaminateAnalyzeErrors(t *testing.T) {
	_, err := execute(t, "laminate", "analyze")
	require.Error(t, err, "file is required")

	_, err = execute(t, "laminate", "analyze", "-f", "testdata/missing.yaml")
	require.Error(t, err)

	_, err = execute(t, "laminate", "analyze", "-f", "testdata/panels.yaml", "--laminate", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope" not found`)
}

func TestLaminateSweep(t *testing.T) {
	dir := t.TempDir()
	plot := filepath.Join(dir, "sweep.svg")
	out, err := execute(t, "laminate", "sweep", "-f", "testdata/panels.yaml", "--laminate", "qi", "--step", "45", "--table", "-o", plot)
	require.NoError(t, err)
	assert.Contains(t, out, "ANGLE SWEEP - qi (step 45°)")
	assert.Contains(t, out, "Ex (MPa) vs rotation")
	assert.Contains(t, out, "180.0")
	assert.FileExists(t, plot)
}

func TestLaminateSweepDefaultsToFirst(t *testing.T) {
	out, err := execute(t, "laminate", "sweep", "-f", "testdata/panels.yaml", "--step", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "ANGLE SWEEP - ud")
	assert.NotContains(t, out, "Angle (°)")
}

func TestLaminateSweepBadStep(t *testing.T) {
	_, err := execute(t, "laminate", "sweep", "-f", "testdata/panels.yaml", "--step", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step")
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "out.png", outputName("out.png", nil, false))
	assert.Equal(t, "my-panel-1", slug(" My Panel 1 "))
}
