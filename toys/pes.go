/*
 * pes.go, part of goPaths.
 *
 * Copyright 2026 Marcela Herrera <mherrera{at}quimDOTusachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goPaths is developed at the theoretical chemistry group,
 * Universidad de Santiago, Chile.
 *
 */

//Package toys provides the closed-form 2D potential energy surfaces and
//the Langevin engine used by the goPaths tutorials and tests. Surfaces
//compose by summation, so the stock ones below are just convenient
//combinations of walls and Gaussian wells.
package toys

import "math"

//PES is a 2D potential energy surface with an analytic gradient.
type PES interface {
	V(x, y float64) float64
	Grad(x, y float64) (gx, gy float64)
}

//Gaussian is the term A*exp(-Ax*(x-X0)^2 - Ay*(y-Y0)^2). With a
//negative A it digs a well.
type Gaussian struct {
	A      float64
	Ax, Ay float64
	X0, Y0 float64
}

//V evaluates the Gaussian term.
func (G Gaussian) V(x, y float64) float64 {
	dx := x - G.X0
	dy := y - G.Y0
	return G.A * math.Exp(-G.Ax*dx*dx-G.Ay*dy*dy)
}

//Grad evaluates the gradient of the Gaussian term.
func (G Gaussian) Grad(x, y float64) (float64, float64) {
	v := G.V(x, y)
	return -2 * G.Ax * (x - G.X0) * v, -2 * G.Ay * (y - G.Y0) * v
}

//OuterWall is the quartic confinement Kx*(x-X0)^4 + Ky*(y-Y0)^4 that
//keeps toy systems bounded.
type OuterWall struct {
	Kx, Ky float64
	X0, Y0 float64
}

//V evaluates the wall term.
func (W OuterWall) V(x, y float64) float64 {
	dx := x - W.X0
	dy := y - W.Y0
	return W.Kx*dx*dx*dx*dx + W.Ky*dy*dy*dy*dy
}

//Grad evaluates the gradient of the wall term.
func (W OuterWall) Grad(x, y float64) (float64, float64) {
	dx := x - W.X0
	dy := y - W.Y0
	return 4 * W.Kx * dx * dx * dx, 4 * W.Ky * dy * dy * dy
}

//Harmonic is the term 0.5*Kx*(x-X0)^2 + 0.5*Ky*(y-Y0)^2. Its Boltzmann
//distribution is known in closed form (<x^2> = kT/Kx), which makes it
//the reference surface for validating integrators.
type Harmonic struct {
	Kx, Ky float64
	X0, Y0 float64
}

//V evaluates the harmonic term.
func (H Harmonic) V(x, y float64) float64 {
	dx := x - H.X0
	dy := y - H.Y0
	return 0.5*H.Kx*dx*dx + 0.5*H.Ky*dy*dy
}

//Grad evaluates the gradient of the harmonic term.
func (H Harmonic) Grad(x, y float64) (float64, float64) {
	return H.Kx * (x - H.X0), H.Ky * (y - H.Y0)
}

//Sum composes potential terms by addition.
type Sum []PES

//V evaluates the summed surface.
func (S Sum) V(x, y float64) float64 {
	var v float64
	for _, p := range S {
		v += p.V(x, y)
	}
	return v
}

//Grad evaluates the summed gradient.
func (S Sum) Grad(x, y float64) (float64, float64) {
	var gx, gy float64
	for _, p := range S {
		px, py := p.Grad(x, y)
		gx += px
		gy += py
	}
	return gx, gy
}

//DoubleWell is the standard two-state tutorial surface: a quartic wall
//with two Gaussian wells on the x axis, at x = -0.5 and x = 0.5, with a
//barrier of about 0.7 between them.
func DoubleWell() Sum {
	return Sum{
		OuterWall{Kx: 1, Ky: 1},
		Gaussian{A: -0.7, Ax: 12, Ay: 12, X0: -0.5},
		Gaussian{A: -0.7, Ax: 12, Ay: 12, X0: 0.5},
	}
}

//TwoChannel places the wells off-axis, at (-0.5, 0.5) and (0.5, -0.5),
//so transitions can pass on either side of the central bump. Good for
//demonstrating that TPS finds both channels.
func TwoChannel() Sum {
	return Sum{
		OuterWall{Kx: 1, Ky: 1},
		Gaussian{A: -0.7, Ax: 12, Ay: 12, X0: -0.5, Y0: 0.5},
		Gaussian{A: -0.7, Ax: 12, Ay: 12, X0: 0.5, Y0: -0.5},
	}
}
