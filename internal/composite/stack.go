package composite

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Symmetric returns the layers followed by their mirror image, so that
// [A B C] becomes [A B C C B A].
func Symmetric(layers []Lamina) []Lamina {
	out := make([]Lamina, 0, 2*len(layers))
	out = append(out, layers...)
	for i := len(layers) - 1; i >= 0; i-- {
		out = append(out, layers[i])
	}
	return out
}

// Rotate returns a new laminate in which every ply angle is increased by
// phi degrees. The receiver is not changed.
func (lam *Laminate) Rotate(phi float64) (*Laminate, error) {
	layers := make([]Lamina, len(lam.layers))
	for i, l := range lam.layers {
		r, err := NewLamina(l.fiber, l.resin, l.fiberWeight, l.angle+phi, l.vf)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i+1, err)
		}
		layers[i] = r
	}
	return NewLaminate(lam.name, layers)
}

// SweepPoint holds the in-plane constants of a laminate rotated by Angle.
type SweepPoint struct {
	Angle float64 // degrees
	Ex    float64 // MPa
	Ey    float64 // MPa
	Gxy   float64 // MPa
	Nuxy  float64
}

// Sweep evaluates the laminate rotated from 0° to 180° in increments of
// step degrees. Rotations are computed concurrently; the result is ordered
// by angle.
func Sweep(ctx context.Context, lam *Laminate, step float64) ([]SweepPoint, error) {
	if lam == nil {
		return nil, invalidf("sweep needs a laminate")
	}
	if !(step > 0 && step <= 180) {
		return nil, invalidf("sweep step must be in (0, 180] degrees, got %g", step)
	}
	count := int(math.Floor(180/step+1e-9)) + 1
	points := make([]SweepPoint, count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < count; i++ {
		i := i
		angle := float64(i) * step
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := lam.Rotate(angle)
			if err != nil {
				return fmt.Errorf("rotation %g°: %w", angle, err)
			}
			points[i] = SweepPoint{Angle: angle, Ex: r.ex, Ey: r.ey, Gxy: r.gxy, Nuxy: r.nuxy}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}
