package accuracy

import (
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/YuminosukeSato/lambertw/core/piecewise"
	"github.com/YuminosukeSato/lambertw/fukushima"
)

// Boundaries returns every finite interval threshold of the table expressed
// as an argument z, each with its two floating-point neighbours, restricted
// to the table's domain and sorted.
func Boundaries(ti fukushima.TableInfo) []float64 {
	finite := lo.Filter(ti.Bounds, func(b float64, _ int) bool {
		return !math.IsInf(b, 0)
	})
	points := lo.FlatMap(finite, func(b float64, _ int) []float64 {
		z := b
		if ti.Variable == piecewise.Shifted {
			z = b + fukushima.NegInvE
		}
		return []float64{math.Nextafter(z, math.Inf(-1)), z, math.Nextafter(z, math.Inf(1))}
	})
	return sortedDomain(ti.Branch, points)
}

// BoundaryGrid merges the boundaries of every table serving branch (0 or -1)
// with the domain end points, giving a grid on which all tiers of the branch
// can be compared.
func BoundaryGrid(branch int) []float64 {
	tables := lo.Filter(fukushima.Tables(), func(ti fukushima.TableInfo, _ int) bool {
		return ti.Branch == branch
	})
	points := lo.FlatMap(tables, func(ti fukushima.TableInfo, _ int) []float64 {
		return Boundaries(ti)
	})
	points = append(points, fukushima.NegInvE, math.Nextafter(fukushima.NegInvE, 0))
	if branch == 0 {
		points = append(points, 1, math.E, 10)
	} else {
		points = append(points, -math.SmallestNonzeroFloat64)
	}
	return sortedDomain(branch, points)
}

func sortedDomain(branch int, points []float64) []float64 {
	in := lo.Filter(points, func(z float64, _ int) bool {
		if z < fukushima.NegInvE {
			return false
		}
		return branch == 0 || z < 0
	})
	in = lo.Uniq(in)
	slices.Sort(in)
	return in
}

// Grid returns BoundaryGrid for the target's branch. For single precision
// targets every point is rounded to float32 first and points that rounding
// moves out of the branch's float64 domain are dropped, so a float64
// reference can be evaluated at exactly the argument the target sees.
func (t Target) Grid() []float64 {
	g := BoundaryGrid(t.Branch)
	if !t.Float32 {
		return g
	}
	rounded := lo.FilterMap(g, func(z float64, _ int) (float64, bool) {
		r := float64(float32(z))
		return r, !math.IsInf(r, 0) && r != 0
	})
	return sortedDomain(t.Branch, rounded)
}
