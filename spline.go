// seehuhn.de/go/tonecurve - tone curve lookup tables for raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tonecurve

// splineCoeffs holds the result of fitting a natural cubic spline to a
// curve: one second derivative per control point and one width per segment
// between adjacent control points.
type splineCoeffs struct {
	p []float64 // second derivatives, p[i] belongs to control point i
	u []float64 // segment widths, u[i] = x[i+1] - x[i]
}

// solveSpline fits a natural cubic spline through the control points of c.
// The curve must have at least two points with strictly increasing X; a
// repeated X value makes the system singular.
//
// The spline's second derivatives solve a tridiagonal system with zero
// curvature enforced at both boundary points. The scratch arrays below are
// 1-based with one padding slot at each end, so the recurrences can use the
// same indexing for the boundary rows; the padding never escapes this
// function.
func solveSpline(c Curve) splineCoeffs {
	n := len(c)

	x := make([]float64, n+2)
	y := make([]float64, n+2)
	for i, pt := range c {
		x[i+1] = float64(pt.X)
		y[i+1] = float64(pt.Y)
	}

	u := make([]float64, n+2) // segment widths
	d := make([]float64, n+2) // system diagonal
	w := make([]float64, n+2) // right-hand side
	p := make([]float64, n+2) // second derivatives

	for i := 1; i <= n-1; i++ {
		u[i] = x[i+1] - x[i]
	}
	for i := 2; i <= n-1; i++ {
		d[i] = 2 * (x[i+1] - x[i-1])
		w[i] = 6 * ((y[i+1]-y[i])/u[i] - (y[i]-y[i-1])/u[i-1])
	}

	// forward elimination
	for i := 2; i <= n-2; i++ {
		w[i+1] -= w[i] * u[i] / d[i]
		d[i+1] -= u[i] * u[i] / d[i]
	}

	// natural boundary condition
	p[1] = 0
	p[n] = 0

	// back substitution
	for i := n - 1; i >= 2; i-- {
		p[i] = (w[i] - u[i]*p[i+1]) / d[i]
	}

	return splineCoeffs{
		p: p[1 : n+1],
		u: u[1 : n+1],
	}
}

// eval computes the spline value at position v on segment i, the segment
// between control points i and i+1 of c. With t = (v-x[i])/u[i] the
// piecewise cubic is
//
//	y = t·y[i+1] + (1-t)·y[i] + u[i]²·(f(t)·p[i+1] + f(1-t)·p[i])/6
//
// where f(z) = z³ - z.
func (s splineCoeffs) eval(c Curve, i int, v float64) float64 {
	u := s.u[i]
	t := (v - float64(c[i].X)) / u

	f := func(z float64) float64 { return z*z*z - z }
	y0 := float64(c[i].Y)
	y1 := float64(c[i+1].Y)
	return t*y1 + (1-t)*y0 + u*u*(f(t)*s.p[i+1]+f(1-t)*s.p[i])/6
}
