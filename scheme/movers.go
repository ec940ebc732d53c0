/*
 * movers.go, part of goPaths.
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

//SampleSet holds the active path of every ensemble in the simulation.
//Movers read old paths from it and install the accepted ones.
type SampleSet struct {
	names []string
	ens   map[string]paths.Ensemble
	path  map[string]paths.Trajectory
}

//NewSampleSet returns an empty sample set.
func NewSampleSet() *SampleSet {
	return &SampleSet{ens: make(map[string]paths.Ensemble), path: make(map[string]paths.Trajectory)}
}

//Add registers an ensemble with its initial active path. The path must
//belong to the ensemble.
func (S *SampleSet) Add(e paths.Ensemble, T paths.Trajectory) error {
	if !e.Accepts(T) {
		return fmt.Errorf("goPaths/scheme: Initial path does not belong to the ensemble %s", e.Name())
	}
	if _, ok := S.ens[e.Name()]; !ok {
		S.names = append(S.names, e.Name())
	}
	S.ens[e.Name()] = e
	S.path[e.Name()] = T
	return nil
}

//Names returns the registered ensemble names, in insertion order.
func (S *SampleSet) Names() []string { return S.names }

//Ensemble returns the registered ensemble with the given name, or nil.
func (S *SampleSet) Ensemble(name string) paths.Ensemble { return S.ens[name] }

//Path returns the active path of the given ensemble. Panics on an
//unknown ensemble: asking for it means the scheme and the set disagree,
//and the simulation is wrong.
func (S *SampleSet) Path(name string) paths.Trajectory {
	T, ok := S.path[name]
	if !ok {
		panic("goPaths/scheme: No active path for ensemble " + name)
	}
	return T
}

//SetPath installs T as the active path of the given ensemble.
func (S *SampleSet) SetPath(name string, T paths.Trajectory) {
	if _, ok := S.path[name]; !ok {
		panic("goPaths/scheme: No such ensemble " + name)
	}
	S.path[name] = T
}

//Len returns the number of registered ensembles.
func (S *SampleSet) Len() int { return len(S.names) }

//Result describes the outcome of one Monte Carlo move.
type Result struct {
	Mover      string
	Ensembles  []string //the ensembles whose active path the move could change
	Accepted   bool
	ShootIndex int //index of the shooting point in the old path, -1 for non-shooting moves
}

//Mover is one Monte Carlo move over the sample set. Move returns an
//error only on malfunction; a rejected trial is a normal Result.
type Mover interface {
	Name() string
	Ensembles() []string
	Move(rng *rand.Rand, set *SampleSet) (Result, error)
}

//ForwardShooting is the one-way forward shooting move: pick a frame,
//redraw its velocities, integrate forward until a state is reached and
//splice the new tail onto the kept head.
type ForwardShooting struct {
	ens paths.Ensemble
	sel Selector
	eng paths.Engine
}

//NewForwardShooting builds a forward shooting mover for the ensemble.
func NewForwardShooting(e paths.Ensemble, sel Selector, eng paths.Engine) *ForwardShooting {
	return &ForwardShooting{ens: e, sel: sel, eng: eng}
}

//Name returns the name of the mover.
func (M *ForwardShooting) Name() string { return "shooting-fwd/" + M.ens.Name() }

//Ensembles returns the single ensemble the mover acts on.
func (M *ForwardShooting) Ensembles() []string { return []string{M.ens.Name()} }

//Move performs the forward shooting move.
func (M *ForwardShooting) Move(rng *rand.Rand, set *SampleSet) (Result, error) {
	res := Result{Mover: M.Name(), Ensembles: M.Ensembles(), ShootIndex: -1}
	old := set.Path(M.ens.Name())
	i := M.sel.Pick(rng, old)
	if i < 0 {
		return res, nil
	}
	res.ShootIndex = i
	sp := M.eng.Modify(old[i], rng)
	seg, err := M.eng.Propagate(sp, rng, func(T paths.Trajectory) bool { return !M.ens.CanAppend(T) })
	if err != nil {
		if errors.Is(err, paths.ErrMaxLength) {
			return res, nil
		}
		return res, err
	}
	trial := old[:i].Append(seg) //the shooting point stays at index i
	if !M.ens.Accepts(trial) {
		return res, nil
	}
	bias := M.sel.Prob(trial, i) / M.sel.Prob(old, i)
	if bias < 1 && rng.Float64() >= bias {
		return res, nil
	}
	res.Accepted = true
	set.SetPath(M.ens.Name(), trial)
	return res, nil
}

//BackwardShooting is the one-way backward shooting move: the segment is
//integrated in reversed time and spliced, reversed, before the kept tail.
type BackwardShooting struct {
	ens paths.Ensemble
	sel Selector
	eng paths.Engine
}

//NewBackwardShooting builds a backward shooting mover for the ensemble.
func NewBackwardShooting(e paths.Ensemble, sel Selector, eng paths.Engine) *BackwardShooting {
	return &BackwardShooting{ens: e, sel: sel, eng: eng}
}

//Name returns the name of the mover.
func (M *BackwardShooting) Name() string { return "shooting-bkw/" + M.ens.Name() }

//Ensembles returns the single ensemble the mover acts on.
func (M *BackwardShooting) Ensembles() []string { return []string{M.ens.Name()} }

//Move performs the backward shooting move.
func (M *BackwardShooting) Move(rng *rand.Rand, set *SampleSet) (Result, error) {
	res := Result{Mover: M.Name(), Ensembles: M.Ensembles(), ShootIndex: -1}
	old := set.Path(M.ens.Name())
	i := M.sel.Pick(rng, old)
	if i < 0 {
		return res, nil
	}
	res.ShootIndex = i
	sp := M.eng.Modify(old[i], rng)
	//The stopping rule is symmetric under time reversal, so the reversed
	//segment is generated with the same CanAppend.
	seg, err := M.eng.Propagate(sp.Reversed(), rng, func(T paths.Trajectory) bool { return !M.ens.CanAppend(T) })
	if err != nil {
		if errors.Is(err, paths.ErrMaxLength) {
			return res, nil
		}
		return res, err
	}
	back := seg.Reverse() //ends with the modified shooting point, forward velocities
	trial := back.Append(old[i+1:])
	j := len(back) - 1 //where the shooting point landed in the trial
	if !M.ens.Accepts(trial) {
		return res, nil
	}
	bias := M.sel.Prob(trial, j) / M.sel.Prob(old, i)
	if bias < 1 && rng.Float64() >= bias {
		return res, nil
	}
	res.Accepted = true
	set.SetPath(M.ens.Name(), trial)
	return res, nil
}

//PathReversal proposes the time-reversed path. For an asymmetric
//ensemble (TPS A->B) the indicator rejects it; for symmetric ones it is
//accepted outright, which decorrelates velocities for free.
type PathReversal struct {
	ens paths.Ensemble
}

//NewPathReversal builds a path reversal mover for the ensemble.
func NewPathReversal(e paths.Ensemble) *PathReversal {
	return &PathReversal{ens: e}
}

//Name returns the name of the mover.
func (M *PathReversal) Name() string { return "reversal/" + M.ens.Name() }

//Ensembles returns the single ensemble the mover acts on.
func (M *PathReversal) Ensembles() []string { return []string{M.ens.Name()} }

//Move performs the reversal move.
func (M *PathReversal) Move(rng *rand.Rand, set *SampleSet) (Result, error) {
	res := Result{Mover: M.Name(), Ensembles: M.Ensembles(), ShootIndex: -1}
	trial := set.Path(M.ens.Name()).Reverse()
	if !M.ens.Accepts(trial) {
		return res, nil
	}
	res.Accepted = true
	set.SetPath(M.ens.Name(), trial)
	return res, nil
}

//ReplicaExchange swaps the active paths of two (usually adjacent)
//interface ensembles when each path also belongs to the other ensemble.
type ReplicaExchange struct {
	e1, e2 paths.Ensemble
}

//NewReplicaExchange builds a replica exchange mover between the two
//ensembles.
func NewReplicaExchange(e1, e2 paths.Ensemble) *ReplicaExchange {
	return &ReplicaExchange{e1: e1, e2: e2}
}

//Name returns the name of the mover.
func (M *ReplicaExchange) Name() string { return "repex/" + M.e1.Name() + "<->" + M.e2.Name() }

//Ensembles returns the two ensembles the mover acts on.
func (M *ReplicaExchange) Ensembles() []string { return []string{M.e1.Name(), M.e2.Name()} }

//Move performs the swap proposal.
func (M *ReplicaExchange) Move(rng *rand.Rand, set *SampleSet) (Result, error) {
	res := Result{Mover: M.Name(), Ensembles: M.Ensembles(), ShootIndex: -1}
	t1 := set.Path(M.e1.Name())
	t2 := set.Path(M.e2.Name())
	if !M.e1.Accepts(t2) || !M.e2.Accepts(t1) {
		return res, nil
	}
	res.Accepted = true
	set.SetPath(M.e1.Name(), t2)
	set.SetPath(M.e2.Name(), t1)
	return res, nil
}
