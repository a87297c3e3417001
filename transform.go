package svg

import (
	"fmt"
	"math"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// parseTransform interprets a transform attribute as a single affine
// matrix. Successive transform functions compose left to right, matching
// how a renderer would nest them.
func parseTransform(tstring string) (mt.Transform, error) {
	t := mt.Identity()

	for _, segment := range strings.Split(tstring, ")") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		name, args, found := strings.Cut(segment, "(")
		if !found {
			return mt.Identity(), fmt.Errorf("transform %q: missing parenthesis", segment)
		}

		ns := ScanNumbers(args)
		m, err := transformFunction(strings.TrimSpace(name), ns)
		if err != nil {
			return mt.Identity(), err
		}
		t = mt.MultiplyTransforms(t, m)
	}

	return t, nil
}

func transformFunction(name string, ns []float64) (mt.Transform, error) {
	m := mt.Identity()

	switch name {
	case "translate":
		switch len(ns) {
		case 1:
			m[0][2] = ns[0]
		case 2:
			m[0][2] = ns[0]
			m[1][2] = ns[1]
		default:
			return m, fmt.Errorf("%w: translate takes 1 or 2 values, got %d", ErrArityMismatch, len(ns))
		}
	case "scale":
		switch len(ns) {
		case 1:
			m.Scale(ns[0], ns[0])
		case 2:
			m.Scale(ns[0], ns[1])
		default:
			return m, fmt.Errorf("%w: scale takes 1 or 2 values, got %d", ErrArityMismatch, len(ns))
		}
	case "rotate":
		if len(ns) != 1 && len(ns) != 3 {
			return m, fmt.Errorf("%w: rotate takes 1 or 3 values, got %d", ErrArityMismatch, len(ns))
		}
		m = rotation(ns[0] * math.Pi / 180)
		if len(ns) == 3 {
			before := mt.Identity()
			before[0][2] = ns[1]
			before[1][2] = ns[2]
			after := mt.Identity()
			after[0][2] = -ns[1]
			after[1][2] = -ns[2]
			m = mt.MultiplyTransforms(mt.MultiplyTransforms(before, m), after)
		}
	case "matrix":
		if len(ns) != 6 {
			return m, fmt.Errorf("%w: matrix takes 6 values, got %d", ErrArityMismatch, len(ns))
		}
		m[0][0] = ns[0]
		m[1][0] = ns[1]
		m[0][1] = ns[2]
		m[1][1] = ns[3]
		m[0][2] = ns[4]
		m[1][2] = ns[5]
	default:
		return m, fmt.Errorf("unknown transform function %q", name)
	}

	return m, nil
}

func rotation(rad float64) mt.Transform {
	m := mt.Identity()
	m[0][0] = math.Cos(rad)
	m[0][1] = -math.Sin(rad)
	m[1][0] = math.Sin(rad)
	m[1][1] = math.Cos(rad)
	return m
}
