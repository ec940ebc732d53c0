/*
 * ensemble.go, part of goPaths.
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

package paths

import "fmt"

/*Path ensembles follow the flexible-length convention: a valid path starts
 * with the last frame inside its initial state, ends with the first frame
 * inside a terminal state, and stays outside all states in between. The
 * stopping rule (CanAppend) is the same in both time directions, which is
 * what makes one-way shooting with a reversed segment correct.*/

//Ensemble is a path ensemble: an indicator function over whole trajectories
//plus the stopping rule used while generating trial segments.
type Ensemble interface {

	//Name of the ensemble, used in schemes, logs and analysis.
	Name() string

	//Accepts is the full-path indicator: does the trajectory belong
	//to the ensemble?
	Accepts(Trajectory) bool

	//CanAppend reports whether trajectory generation should continue,
	//i.e. whether the newest frame has not yet entered a state.
	CanAppend(Trajectory) bool

	//Initial returns the state where valid paths of this ensemble begin.
	Initial() Volume

	//States returns all the stable states the ensemble knows about.
	States() []Volume
}

//interiorOutside returns whether all frames of T but the first and last
//are outside every volume in states.
func interiorOutside(T Trajectory, states []Volume) bool {
	for _, s := range T[1 : len(T)-1] {
		if InAny(s, states) {
			return false
		}
	}
	return true
}

//lastOutside returns whether the newest frame of T is outside every state,
//with the empty trajectory trivially appendable.
func lastOutside(T Trajectory, states []Volume) bool {
	if len(T) == 0 {
		return true
	}
	return !InAny(T[len(T)-1], states)
}

//TPSEnsemble is the transition-path-sampling ensemble: paths that leave
//the initial state and reach the final state without visiting any other
//state in between.
type TPSEnsemble struct {
	name     string
	initial  Volume
	final    Volume
	states   []Volume
}

//NewTPSEnsemble builds a TPS ensemble between initial and final. states
//lists every stable state of the system; if nil, it defaults to just
//{initial, final}.
func NewTPSEnsemble(name string, initial, final Volume, states []Volume) (*TPSEnsemble, error) {
	if initial == nil || final == nil {
		return nil, fmt.Errorf("goPaths: Ensemble %s: supplied a nil state", name)
	}
	if states == nil {
		states = []Volume{initial, final}
	}
	return &TPSEnsemble{name: name, initial: initial, final: final, states: states}, nil
}

//Name returns the name of the ensemble.
func (E *TPSEnsemble) Name() string { return E.name }

//Initial returns the state where paths of this ensemble begin.
func (E *TPSEnsemble) Initial() Volume { return E.initial }

//Final returns the state where paths of this ensemble end.
func (E *TPSEnsemble) Final() Volume { return E.final }

//States returns all the stable states known to the ensemble.
func (E *TPSEnsemble) States() []Volume { return E.states }

//Accepts returns whether T is a valid transition path: first frame in the
//initial state, last frame in the final state, everything else outside
//all states.
func (E *TPSEnsemble) Accepts(T Trajectory) bool {
	if len(T) < 2 {
		return false
	}
	if !E.initial.Contains(T[0]) || !E.final.Contains(T[len(T)-1]) {
		return false
	}
	return interiorOutside(T, E.states)
}

//CanAppend returns whether generation of T should continue.
func (E *TPSEnsemble) CanAppend(T Trajectory) bool {
	return lastOutside(T, E.states)
}

//TISEnsemble is the transition-interface-sampling ensemble for one
//interface: paths that leave state A, cross the interface lambda of the
//order parameter, and end in A or B.
type TISEnsemble struct {
	name   string
	stateA Volume
	stateB Volume //may be nil for an A-to-A only setup
	cv     *CV
	lambda float64
	states []Volume
}

//NewTISEnsemble builds the TIS ensemble for the interface at lambda.
//stateB may be nil, in which case paths must return to A.
func NewTISEnsemble(name string, a, b Volume, cv *CV, lambda float64) (*TISEnsemble, error) {
	if a == nil {
		return nil, fmt.Errorf("goPaths: Ensemble %s: supplied a nil state A", name)
	}
	if cv == nil {
		return nil, fmt.Errorf("goPaths: Ensemble %s: supplied a nil order parameter", name)
	}
	states := []Volume{a}
	if b != nil {
		states = append(states, b)
	}
	return &TISEnsemble{name: name, stateA: a, stateB: b, cv: cv, lambda: lambda, states: states}, nil
}

//Name returns the name of the ensemble.
func (E *TISEnsemble) Name() string { return E.name }

//Initial returns state A.
func (E *TISEnsemble) Initial() Volume { return E.stateA }

//StateB returns state B, which may be nil.
func (E *TISEnsemble) StateB() Volume { return E.stateB }

//States returns all the stable states known to the ensemble.
func (E *TISEnsemble) States() []Volume { return E.states }

//CV returns the order parameter the interface is defined over.
func (E *TISEnsemble) CV() *CV { return E.cv }

//Lambda returns the interface position.
func (E *TISEnsemble) Lambda() float64 { return E.lambda }

//Accepts returns whether T is a valid path for this interface: it starts
//in A, stays outside the states in between, ends in A or B, and reaches
//at least lambda in the order parameter.
func (E *TISEnsemble) Accepts(T Trajectory) bool {
	if len(T) < 2 {
		return false
	}
	if !E.stateA.Contains(T[0]) {
		return false
	}
	last := T[len(T)-1]
	if !E.stateA.Contains(last) && (E.stateB == nil || !E.stateB.Contains(last)) {
		return false
	}
	if !interiorOutside(T, E.states) {
		return false
	}
	return T.CVMax(E.cv) >= E.lambda
}

//CanAppend returns whether generation of T should continue.
func (E *TISEnsemble) CanAppend(T Trajectory) bool {
	return lastOutside(T, E.states)
}
