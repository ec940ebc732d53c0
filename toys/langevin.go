/*
 * langevin.go, part of goPaths.
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

package toys

import (
	"fmt"
	"math"
	"math/rand"

	paths "github.com/mherrera/gopaths"
)

//Langevin integrates underdamped Langevin dynamics on a PES with the
//BAOAB splitting: half kick, half drift, friction/noise, half drift,
//half kick. One call to Step is one timestep.
type Langevin struct {
	pes   PES
	dt    float64
	gamma float64
	kt    float64
	mass  float64
	c1    float64 //exp(-gamma*dt), precomputed
	c2    float64 //sqrt((1-c1^2)*kt/mass), precomputed
}

//NewLangevin builds a Langevin integrator. All parameters but gamma
//must be positive; gamma must be non-negative (zero gives plain
//velocity Verlet with a thermal Modify).
func NewLangevin(pes PES, dt, gamma, kt, mass float64) (*Langevin, error) {
	if pes == nil {
		return nil, fmt.Errorf("goPaths/toys: Langevin: supplied a nil surface")
	}
	if dt <= 0 || kt <= 0 || mass <= 0 || gamma < 0 {
		return nil, fmt.Errorf("goPaths/toys: Langevin: bad parameters dt=%g gamma=%g kt=%g mass=%g", dt, gamma, kt, mass)
	}
	L := &Langevin{pes: pes, dt: dt, gamma: gamma, kt: kt, mass: mass}
	L.c1 = math.Exp(-gamma * dt)
	L.c2 = math.Sqrt((1 - L.c1*L.c1) * kt / mass)
	return L, nil
}

//PES returns the surface the integrator runs on.
func (L *Langevin) PES() PES { return L.pes }

//Dt returns the timestep.
func (L *Langevin) Dt() float64 { return L.dt }

//KT returns the thermal energy.
func (L *Langevin) KT() float64 { return L.kt }

//Step advances the snapshot by one timestep and returns the new one.
//Panics on a snapshot that is not 2D: the toy integrator only knows x,y.
func (L *Langevin) Step(s *paths.Snapshot, rng *rand.Rand) *paths.Snapshot {
	if s.Dim() != 2 {
		panic(fmt.Sprintf("goPaths/toys: Langevin.Step on a %d-dimensional snapshot", s.Dim()))
	}
	x, y := s.Pos[0], s.Pos[1]
	vx, vy := s.Vel[0], s.Vel[1]

	gx, gy := L.pes.Grad(x, y)
	vx -= 0.5 * L.dt * gx / L.mass
	vy -= 0.5 * L.dt * gy / L.mass

	x += 0.5 * L.dt * vx
	y += 0.5 * L.dt * vy

	vx = L.c1*vx + L.c2*rng.NormFloat64()
	vy = L.c1*vy + L.c2*rng.NormFloat64()

	x += 0.5 * L.dt * vx
	y += 0.5 * L.dt * vy

	gx, gy = L.pes.Grad(x, y)
	vx -= 0.5 * L.dt * gx / L.mass
	vy -= 0.5 * L.dt * gy / L.mass

	return paths.NewSnapshot([]float64{x, y}, []float64{vx, vy})
}

//Thermalize returns a copy of the snapshot with velocities drawn from
//the Maxwell-Boltzmann distribution at the integrator's temperature.
func (L *Langevin) Thermalize(s *paths.Snapshot, rng *rand.Rand) *paths.Snapshot {
	n := s.Copy()
	sigma := math.Sqrt(L.kt / L.mass)
	for i := range n.Vel {
		n.Vel[i] = sigma * rng.NormFloat64()
	}
	return n
}
