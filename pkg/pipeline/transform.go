package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/hedron-dev/hedron/pkg/observability"
)

// applyTransforms runs the configured transforms over m in order.
// Transforms mutate the mesh in place; the caller owns isolation.
func applyTransforms(ctx context.Context, m *Mesh, opts Options) error {
	for _, name := range opts.Transforms {
		start := time.Now()
		err := applyTransform(m, name, opts)
		observability.Edit().OnEdit(ctx, name, time.Since(start), err)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func applyTransform(m *Mesh, name string, opts Options) error {
	switch name {
	case TransformTriangulate:
		return m.Triangulate()
	case TransformSmooth:
		for i := 0; i < opts.SmoothRounds; i++ {
			if err := m.Smooth(opts.SmoothFactor); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("invalid transform: %q", name)
	}
}
