/*
 * toys_test.go, part of goPaths.
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
 */

package toys

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	paths "github.com/mherrera/gopaths"
)

//TestGradients checks every analytic gradient against a central
//difference on a few points of each surface.
func TestGradients(Te *testing.T) {
	surfaces := map[string]PES{
		"double-well": DoubleWell(),
		"two-channel": TwoChannel(),
		"mixed":       Sum{Harmonic{Kx: 2, Ky: 0.5, X0: 0.1}, OuterWall{Kx: 1, Ky: 1}},
	}
	h := 1e-6
	pts := [][2]float64{{0, 0}, {-0.5, 0.1}, {0.3, -0.4}, {1.1, 0.9}}
	for name, pes := range surfaces {
		for _, p := range pts {
			x, y := p[0], p[1]
			gx, gy := pes.Grad(x, y)
			nx := (pes.V(x+h, y) - pes.V(x-h, y)) / (2 * h)
			ny := (pes.V(x, y+h) - pes.V(x, y-h)) / (2 * h)
			if math.Abs(gx-nx) > 1e-4 || math.Abs(gy-ny) > 1e-4 {
				Te.Errorf("Gradient mismatch on %s at (%g,%g): analytic (%g,%g) numeric (%g,%g)", name, x, y, gx, gy, nx, ny)
			}
		}
	}
	fmt.Println("Gradients check out")
}

func TestWells(Te *testing.T) {
	pes := DoubleWell()
	if pes.V(-0.5, 0) > pes.V(0, 0) {
		Te.Error("The well at x=-0.5 should be deeper than the barrier top")
	}
	tc := TwoChannel()
	if tc.V(-0.5, 0.5) > tc.V(0, 0) || tc.V(0.5, -0.5) > tc.V(0, 0) {
		Te.Error("The two-channel wells should be deeper than the center")
	}
}

//TestLangevin integrates a while and checks that the system stays
//bounded and that a fixed seed reproduces the run exactly.
func TestLangevin(Te *testing.T) {
	integ, err := NewLangevin(DoubleWell(), 0.02, 2.5, 0.1, 1.0)
	if err != nil {
		Te.Fatal(err)
	}
	run := func(seed int64) *paths.Snapshot {
		rng := rand.New(rand.NewSource(seed))
		s := paths.NewSnapshot([]float64{-0.5, 0}, []float64{0, 0})
		for i := 0; i < 2000; i++ {
			s = integ.Step(s, rng)
			if math.Abs(s.Pos[0]) > 5 || math.Abs(s.Pos[1]) > 5 {
				Te.Fatalf("Trajectory escaped the walls at step %d: %v", i, s.Pos)
			}
		}
		return s
	}
	a := run(7)
	b := run(7)
	if a.Pos[0] != b.Pos[0] || a.Vel[1] != b.Vel[1] {
		Te.Error("Same seed gave different trajectories")
	}
	fmt.Println("final point:", a.Pos)
}

//TestEquipartition samples the harmonic surface, where the Boltzmann
//distribution is analytic, and checks <x^2> = kT/Kx on each axis.
func TestEquipartition(Te *testing.T) {
	kt := 0.1
	well := Harmonic{Kx: 1, Ky: 4}
	integ, err := NewLangevin(well, 0.02, 2.5, kt, 1.0)
	if err != nil {
		Te.Fatal(err)
	}
	rng := rand.New(rand.NewSource(5))
	s := paths.NewSnapshot([]float64{0, 0}, []float64{0, 0})
	for i := 0; i < 1000; i++ { //burn in
		s = integ.Step(s, rng)
	}
	var x2, y2 float64
	n := 100000
	for i := 0; i < n; i++ {
		s = integ.Step(s, rng)
		x2 += s.Pos[0] * s.Pos[0]
		y2 += s.Pos[1] * s.Pos[1]
	}
	x2 /= float64(n)
	y2 /= float64(n)
	if math.Abs(x2-kt/well.Kx) > 0.015 || math.Abs(y2-kt/well.Ky) > 0.005 {
		Te.Error("Sampled variances are off: <x2> =", x2, "<y2> =", y2)
	}
	fmt.Println("<x2> =", x2, "<y2> =", y2)
}

func TestThermalize(Te *testing.T) {
	integ, err := NewLangevin(DoubleWell(), 0.02, 2.5, 0.1, 1.0)
	if err != nil {
		Te.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	s := paths.NewSnapshot([]float64{-0.5, 0}, []float64{3, 3})
	var v2 float64
	n := 5000
	for i := 0; i < n; i++ {
		m := integ.Thermalize(s, rng)
		v2 += m.Vel[0] * m.Vel[0]
	}
	v2 /= float64(n)
	//<v^2> should be kT/m = 0.1
	if math.Abs(v2-0.1) > 0.01 {
		Te.Error("Thermal velocities are off: <v2> =", v2)
	}
	if s.Vel[0] != 3 {
		Te.Error("Thermalize modified its argument")
	}
}

func TestEngineStops(Te *testing.T) {
	integ, err := NewLangevin(DoubleWell(), 0.02, 2.5, 0.1, 1.0)
	if err != nil {
		Te.Fatal(err)
	}
	eng, err := NewEngine(integ, 10000)
	if err != nil {
		Te.Fatal(err)
	}
	rng := rand.New(rand.NewSource(3))
	//stop once x leaves [-0.6, 0.6]
	from := paths.NewSnapshot([]float64{0, 0}, []float64{0, 0})
	T, err := eng.Propagate(eng.Modify(from, rng), rng, func(T paths.Trajectory) bool {
		return math.Abs(T[len(T)-1].Pos[0]) > 0.6
	})
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(T[len(T)-1].Pos[0]) <= 0.6 {
		Te.Error("Propagate returned before the stopping rule fired")
	}
	fmt.Println("segment length:", T.Len())

	//an impossible stopping rule must return ErrMaxLength
	short, err := NewEngine(integ, 50)
	if err != nil {
		Te.Fatal(err)
	}
	T, err = short.Propagate(from, rng, func(T paths.Trajectory) bool { return false })
	if !errors.Is(err, paths.ErrMaxLength) {
		Te.Error("Expected ErrMaxLength, got", err)
	}
	if T.Len() != 50 {
		Te.Error("Expected the partial segment alongside ErrMaxLength, got", T.Len(), "frames")
	}
}
