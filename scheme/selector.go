/*
 * selector.go, part of goPaths.
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

package scheme

import (
	"math"
	"math/rand"

	paths "github.com/mherrera/gopaths"
)

/*Selectors only ever propose interior frames. Shooting from an endpoint
 * would regenerate the whole path in one direction and nothing in the
 * other, which is legal but useless, and excluding endpoints keeps the
 * selection probabilities simple.*/

//Selector picks the shooting point of a path. Prob must return the
//probability with which Pick would propose frame i of T, so movers can
//compute the selection-bias ratio of the reverse move.
type Selector interface {
	Name() string

	//Pick proposes a frame index, or -1 if the path has no interior.
	Pick(rng *rand.Rand, T paths.Trajectory) int

	//Prob returns the probability of proposing frame i of T.
	Prob(T paths.Trajectory, i int) float64
}

//Uniform selects among all interior frames with equal probability.
type Uniform struct{}

//Name returns the name of the selector.
func (U Uniform) Name() string { return "uniform" }

//Pick proposes an interior frame of T, each with probability 1/(len-2).
func (U Uniform) Pick(rng *rand.Rand, T paths.Trajectory) int {
	if len(T) < 3 {
		return -1
	}
	return 1 + rng.Intn(len(T)-2)
}

//Prob returns 1/(len-2) for interior frames and 0 otherwise.
func (U Uniform) Prob(T paths.Trajectory, i int) float64 {
	if len(T) < 3 || i <= 0 || i >= len(T)-1 {
		return 0
	}
	return 1 / float64(len(T)-2)
}

//GaussianBias selects interior frames with weight
//exp(-alpha*(cv(x)-center)^2), concentrating shooting points around a
//chosen value of the order parameter (typically the barrier top).
type GaussianBias struct {
	CV     *paths.CV
	Center float64
	Alpha  float64
}

//Name returns the name of the selector.
func (G *GaussianBias) Name() string { return "gaussian" }

func (G *GaussianBias) weight(s *paths.Snapshot) float64 {
	d := G.CV.At(s) - G.Center
	return math.Exp(-G.Alpha * d * d)
}

//Pick proposes an interior frame of T with probability proportional
//to its Gaussian weight.
func (G *GaussianBias) Pick(rng *rand.Rand, T paths.Trajectory) int {
	if len(T) < 3 {
		return -1
	}
	var sum float64
	for _, s := range T[1 : len(T)-1] {
		sum += G.weight(s)
	}
	if sum == 0 { //all weights underflowed; fall back to uniform
		return 1 + rng.Intn(len(T)-2)
	}
	r := rng.Float64() * sum
	var acc float64
	for i, s := range T[1 : len(T)-1] {
		acc += G.weight(s)
		if r < acc {
			return i + 1
		}
	}
	return len(T) - 2
}

//Prob returns the normalized Gaussian weight of frame i of T.
func (G *GaussianBias) Prob(T paths.Trajectory, i int) float64 {
	if len(T) < 3 || i <= 0 || i >= len(T)-1 {
		return 0
	}
	var sum float64
	for _, s := range T[1 : len(T)-1] {
		sum += G.weight(s)
	}
	if sum == 0 {
		return 1 / float64(len(T)-2)
	}
	return G.weight(T[i]) / sum
}
