/*
 * sampler.go, part of goPaths.
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
	"errors"
	"fmt"
	"math/rand"

	paths "github.com/mherrera/gopaths"
)

//StepFunc is called after every Monte Carlo step, e.g. to stream the
//step to a log. Returning an error stops the run.
type StepFunc func(step int, res Result, set *SampleSet) error

//Sampler drives the Monte Carlo loop: it draws movers from a scheme and
//applies them to the sample set. It is strictly sequential.
type Sampler struct {
	scheme *Scheme
	set    *SampleSet
	rng    *rand.Rand
	step   int
}

//NewSampler returns a sampler over the given scheme and sample set,
//seeded deterministically.
func NewSampler(s *Scheme, set *SampleSet, seed int64) *Sampler {
	return &Sampler{scheme: s, set: set, rng: rand.New(rand.NewSource(seed))}
}

//Set returns the sample set, holding the current active paths.
func (S *Sampler) Set() *SampleSet { return S.set }

//Scheme returns the scheme, holding the acceptance statistics.
func (S *Sampler) Scheme() *Scheme { return S.scheme }

//Steps returns the number of Monte Carlo steps performed so far.
func (S *Sampler) Steps() int { return S.step }

//Run performs n Monte Carlo steps, calling f (if non-nil) after each.
func (S *Sampler) Run(n int, f StepFunc) error {
	for k := 0; k < n; k++ {
		m := S.scheme.Choose(S.rng)
		res, err := m.Move(S.rng, S.set)
		if err != nil {
			return fmt.Errorf("Run: step %d, mover %s: %w", S.step+1, m.Name(), err)
		}
		S.scheme.note(res)
		S.step++
		if f != nil {
			if err := f(S.step, res, S.set); err != nil {
				return fmt.Errorf("Run: step %d: %w", S.step, err)
			}
		}
	}
	return nil
}

//frameKey identifies a frame by its exact positions. Velocities are
//left out on purpose: a reversed copy of a frame must map to the same
//key, it is still the same point of the old path.
func frameKey(s *paths.Snapshot) string {
	return fmt.Sprint(s.Pos)
}

//Equilibrate runs until the active path of every ensemble shares no
//frame with the path it started from, rounds times over, so nothing of
//the initial paths survives. An accepted one-way shooting move only
//replaces the head or the tail of a path, so accepted moves are not
//counted; renewal is established frame by frame. Frames are identified
//by their positions, which path reversal and replica exchange preserve,
//so only actual regeneration by shooting retires a frame. Equilibrate
//gives up after maxSteps steps. It returns the number of steps taken.
func (S *Sampler) Equilibrate(rounds, maxSteps int, f StepFunc) (int, error) {
	if rounds <= 0 {
		return 0, fmt.Errorf("Equilibrate: rounds must be positive, got %d", rounds)
	}
	stale := make(map[string]bool)
	mark := func(n string) {
		for _, s := range S.set.Path(n) {
			stale[frameKey(s)] = true
		}
	}
	renewed := make(map[string]int, S.set.Len())
	for _, n := range S.set.Names() {
		mark(n)
	}
	renewedPath := func(n string) bool {
		for _, s := range S.set.Path(n) {
			if stale[frameKey(s)] {
				return false
			}
		}
		return true
	}
	done := func() bool {
		for _, n := range S.set.Names() {
			if renewed[n] < rounds {
				return false
			}
		}
		return true
	}
	start := S.step
	for !done() {
		if S.step-start >= maxSteps {
			return S.step - start, fmt.Errorf("Equilibrate: not decorrelated after %d steps", maxSteps)
		}
		if err := S.Run(1, f); err != nil {
			return S.step - start, err
		}
		for _, n := range S.set.Names() {
			if renewed[n] < rounds && renewedPath(n) {
				renewed[n]++
				if renewed[n] < rounds {
					mark(n)
				}
			}
		}
	}
	return S.step - start, nil
}

//InitialTrajectory bootstraps a first valid path for the ensemble by
//integrating from a point inside the initial state, with fresh
//velocities on every try, and trimming the leading in-state frames. It
//is a crude procedure meant for toy systems; production setups load an
//existing path instead.
func InitialTrajectory(e paths.Engine, ens paths.Ensemble, from *paths.Snapshot, tries int, rng *rand.Rand) (paths.Trajectory, error) {
	if !ens.Initial().Contains(from) {
		return nil, fmt.Errorf("InitialTrajectory: the starting point is outside the initial state %s", ens.Initial().Name())
	}
	for k := 0; k < tries; k++ {
		start := e.Modify(from, rng)
		left := false
		stop := func(T paths.Trajectory) bool {
			if !paths.InAny(T[len(T)-1], ens.States()) {
				left = true
				return false
			}
			return left
		}
		seg, err := e.Propagate(start, rng, stop)
		if err != nil {
			if errors.Is(err, paths.ErrMaxLength) {
				continue
			}
			return nil, err
		}
		trial := trimLeading(seg, ens.States())
		if ens.Accepts(trial) {
			return trial, nil
		}
	}
	return nil, fmt.Errorf("InitialTrajectory: no valid path for %s after %d tries", ens.Name(), tries)
}

//trimLeading drops the frames before the last in-state frame preceding
//the first exit, so the path starts right at the edge of the initial
//state.
func trimLeading(T paths.Trajectory, states []paths.Volume) paths.Trajectory {
	j := 0
	for j < len(T) && paths.InAny(T[j], states) {
		j++
	}
	if j == 0 || j >= len(T) {
		return T
	}
	return T[j-1:]
}
