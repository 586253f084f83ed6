// Package laminatefile reads laminate descriptions from JSON or YAML files
// and turns them into composite laminates.
//
// A file defines fibers and resins (or refers to catalog entries by name)
// and any number of laminates:
//
//	fibers:
//	  - {name: T300, e1: 230000, nu12: 0.3, alpha1: -0.41e-6, rho: 1.76}
//	resins:
//	  - {name: epoxy, e: 2900, nu: 0.36, alpha: 41.4e-6, rho: 1.15}
//	laminates:
//	  - name: qi
//	    resin: epoxy
//	    vf: 50
//	    symmetric: true
//	    layers:
//	      - {fiber: T300, weight: 200, angle: 0}
//	      - {fiber: T300, weight: 200, angle: 90}
//	      - {fiber: T300, weight: 100, angle: 45}
//	      - {fiber: T300, weight: 100, angle: -45}
package laminatefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/golam/internal/catalog"
	"github.com/alexiusacademia/golam/internal/composite"
	"gopkg.in/yaml.v3"
)

// File is the content of a laminate description file
type File struct {
	Fibers    []FiberDef    `json:"fibers" yaml:"fibers"`
	Resins    []ResinDef    `json:"resins" yaml:"resins"`
	Laminates []LaminateDef `json:"laminates" yaml:"laminates"`
}

// FiberDef describes a fiber
type FiberDef struct {
	Name   string  `json:"name" yaml:"name"`
	E1     float64 `json:"e1" yaml:"e1"`         // MPa
	Nu12   float64 `json:"nu12" yaml:"nu12"`     // Poisson's ratio
	Alpha1 float64 `json:"alpha1" yaml:"alpha1"` // K⁻¹
	Rho    float64 `json:"rho" yaml:"rho"`       // g/cm³
}

// ResinDef describes a resin
type ResinDef struct {
	Name  string  `json:"name" yaml:"name"`
	E     float64 `json:"e" yaml:"e"`         // MPa
	Nu    float64 `json:"nu" yaml:"nu"`       // Poisson's ratio
	Alpha float64 `json:"alpha" yaml:"alpha"` // K⁻¹
	Rho   float64 `json:"rho" yaml:"rho"`     // g/cm³
}

// LaminateDef describes a laminate. Resin and Vf apply to every layer
// that does not set its own.
type LaminateDef struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Resin       string     `json:"resin" yaml:"resin"`
	Vf          float64    `json:"vf" yaml:"vf"` // fraction or percentage
	Symmetric   bool       `json:"symmetric,omitempty" yaml:"symmetric,omitempty"`
	Layers      []LayerDef `json:"layers" yaml:"layers"`
}

// LayerDef describes one ply, listed from one face of the laminate
type LayerDef struct {
	Fiber  string  `json:"fiber" yaml:"fiber"`
	Weight float64 `json:"weight" yaml:"weight"` // g/m²
	Angle  float64 `json:"angle" yaml:"angle"`   // degrees
	Resin  string  `json:"resin,omitempty" yaml:"resin,omitempty"`
	Vf     float64 `json:"vf,omitempty" yaml:"vf,omitempty"`
}

// LoadFromFile reads a laminate description. The format follows the
// extension: .json for JSON, .yaml or .yml for YAML.
func LoadFromFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a description in the given format ("json", "yaml" or "yml").
// Unknown keys are rejected.
func Parse(data []byte, format string) (*File, error) {
	var f File
	switch format {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, err
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q, use json or yaml", format)
	}
	if len(f.Laminates) == 0 {
		return nil, fmt.Errorf("no laminates defined")
	}
	return &f, nil
}

// Build creates the fibers, resins and laminates of the file. Names not
// defined in the file are looked up in the catalog.
func (f *File) Build() ([]*composite.Laminate, error) {
	fibers := make(map[string]composite.Fiber, len(f.Fibers))
	for _, d := range f.Fibers {
		if _, dup := fibers[d.Name]; dup {
			return nil, fmt.Errorf("fiber %q defined twice", d.Name)
		}
		fib, err := composite.NewFiber(d.E1, d.Nu12, d.Alpha1, d.Rho, d.Name)
		if err != nil {
			return nil, err
		}
		fibers[d.Name] = fib
	}

	resins := make(map[string]composite.Resin, len(f.Resins))
	for _, d := range f.Resins {
		if _, dup := resins[d.Name]; dup {
			return nil, fmt.Errorf("resin %q defined twice", d.Name)
		}
		res, err := composite.NewResin(d.E, d.Nu, d.Alpha, d.Rho, d.Name)
		if err != nil {
			return nil, err
		}
		resins[d.Name] = res
	}

	fiber := func(name string) (composite.Fiber, error) {
		if fib, ok := fibers[name]; ok {
			return fib, nil
		}
		return catalog.Fiber(name)
	}
	resin := func(name string) (composite.Resin, error) {
		if res, ok := resins[name]; ok {
			return res, nil
		}
		return catalog.Resin(name)
	}

	laminates := make([]*composite.Laminate, 0, len(f.Laminates))
	seen := make(map[string]bool, len(f.Laminates))
	for _, ld := range f.Laminates {
		if seen[ld.Name] {
			return nil, fmt.Errorf("laminate %q defined twice", ld.Name)
		}
		seen[ld.Name] = true
		layers := make([]composite.Lamina, 0, len(ld.Layers))
		for i, layer := range ld.Layers {
			fib, err := fiber(layer.Fiber)
			if err != nil {
				return nil, fmt.Errorf("laminate %q layer %d: %w", ld.Name, i+1, err)
			}
			resinName := ld.Resin
			if layer.Resin != "" {
				resinName = layer.Resin
			}
			res, err := resin(resinName)
			if err != nil {
				return nil, fmt.Errorf("laminate %q layer %d: %w", ld.Name, i+1, err)
			}
			vf := ld.Vf
			if layer.Vf != 0 {
				vf = layer.Vf
			}
			la, err := composite.NewLamina(fib, res, layer.Weight, layer.Angle, vf)
			if err != nil {
				return nil, fmt.Errorf("laminate %q layer %d: %w", ld.Name, i+1, err)
			}
			layers = append(layers, la)
		}
		if ld.Symmetric {
			layers = composite.Symmetric(layers)
		}
		lam, err := composite.NewLaminate(ld.Name, layers)
		if err != nil {
			return nil, err
		}
		laminates = append(laminates, lam)
	}
	return laminates, nil
}

// Description returns the description of the named laminate, if any.
func (f *File) Description(name string) string {
	for _, ld := range f.Laminates {
		if ld.Name == name {
			return ld.Description
		}
	}
	return ""
}
