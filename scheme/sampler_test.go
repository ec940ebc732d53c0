/*
 * sampler_test.go, part of goPaths.
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

package scheme

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paths "github.com/mherrera/gopaths"
	"github.com/mherrera/gopaths/toys"
)

//toyTPS assembles a small TPS simulation on the double well, warm
//enough (kT=0.4 against a 0.7 barrier) that transitions are common and
//the test stays fast.
func toyTPS(t *testing.T) (*Sampler, paths.Ensemble) {
	x := paths.Coordinate("x", 0)
	A, err := paths.NewCVRange("A", x, -10, -0.45)
	require.NoError(t, err)
	B, err := paths.NewCVRange("B", x, 0.45, 10)
	require.NoError(t, err)
	net, err := paths.NewTPSNetwork([]paths.Volume{A}, []paths.Volume{B})
	require.NoError(t, err)

	integ, err := toys.NewLangevin(toys.DoubleWell(), 0.02, 2.5, 0.4, 1.0)
	require.NoError(t, err)
	eng, err := toys.NewEngine(integ, 20000)
	require.NoError(t, err)

	s, err := DefaultScheme(net, eng)
	require.NoError(t, err)

	ens := net.PathEnsembles()[0]
	rng := rand.New(rand.NewSource(11))
	initial, err := InitialTrajectory(eng, ens, paths.NewSnapshot([]float64{-0.5, 0}, []float64{0, 0}), 2000, rng)
	require.NoError(t, err, "bootstrap failed")
	t.Logf("initial path: %d frames", initial.Len())

	set := NewSampleSet()
	require.NoError(t, set.Add(ens, initial))
	return NewSampler(s, set, 12), ens
}

func TestSamplerRun(t *testing.T) {
	sam, ens := toyTPS(t)
	steps := 0
	err := sam.Run(150, func(step int, res Result, set *SampleSet) error {
		steps++
		assert.Equal(t, steps, step)
		assert.True(t, ens.Accepts(set.Path(ens.Name())), "active path left the ensemble")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 150, steps)
	assert.Equal(t, 150, sam.Steps())

	var trials int
	for _, st := range sam.Scheme().Stats() {
		trials += st.Trials
	}
	assert.Equal(t, 150, trials, "every step must be exactly one trial")
}

func TestEquilibrate(t *testing.T) {
	sam, _ := toyTPS(t)
	n, err := sam.Equilibrate(2, 10000, nil)
	require.NoError(t, err)
	assert.Greater(t, n, 0)
	t.Logf("decorrelated after %d steps", n)
}

//TestEquilibrateRenewsFrames checks that equilibration retires every
//frame of the initial path, not merely that shooting moves were
//accepted: an accepted one-way shot replaces only one end of the path,
//so frames of the initial path can outlive many of them.
func TestEquilibrateRenewsFrames(t *testing.T) {
	sam, ens := toyTPS(t)
	initial := make(map[string]bool)
	for _, s := range sam.Set().Path(ens.Name()) {
		initial[fmt.Sprint(s.Pos)] = true
	}
	n, err := sam.Equilibrate(1, 10000, nil)
	require.NoError(t, err)
	survivors := 0
	for _, s := range sam.Set().Path(ens.Name()) {
		if initial[fmt.Sprint(s.Pos)] {
			survivors++
		}
	}
	assert.Zero(t, survivors, "frames of the initial path survived equilibration")
	t.Logf("full renewal after %d steps", n)
}

func TestInitialTrajectoryOutsideState(t *testing.T) {
	sam, ens := toyTPS(t)
	_ = sam
	rng := rand.New(rand.NewSource(1))
	eng := &lineEngine{step: 0.1}
	_, err := InitialTrajectory(eng, ens, paths.NewSnapshot([]float64{0, 0}, []float64{0, 0}), 10, rng)
	assert.Error(t, err, "bootstrap must refuse a starting point outside the initial state")
}
