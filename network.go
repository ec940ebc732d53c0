/*
 * network.go, part of goPaths.
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

//Network is a reaction network: the set of path ensembles a simulation
//samples. Move schemes are built per network.
type Network interface {

	//PathEnsembles returns the sampled ensembles, in a stable order.
	PathEnsembles() []Ensemble

	//AllStates returns the stable states of the network.
	AllStates() []Volume
}

//TPSNetwork holds one TPS ensemble per ordered pair of distinct
//initial and final states.
type TPSNetwork struct {
	states    []Volume
	ensembles []*TPSEnsemble
}

//NewTPSNetwork builds a TPS network between every initial and every
//final state. A state may appear on both sides; self-transitions are
//skipped. At least one ensemble must result.
func NewTPSNetwork(initial, final []Volume) (*TPSNetwork, error) {
	if len(initial) == 0 || len(final) == 0 {
		return nil, fmt.Errorf("goPaths: TPS network: supplied an empty state list")
	}
	N := new(TPSNetwork)
	seen := make(map[string]bool)
	for _, v := range append(append([]Volume{}, initial...), final...) {
		if !seen[v.Name()] {
			seen[v.Name()] = true
			N.states = append(N.states, v)
		}
	}
	for _, i := range initial {
		for _, f := range final {
			if i.Name() == f.Name() {
				continue
			}
			e, err := NewTPSEnsemble(i.Name()+"->"+f.Name(), i, f, N.states)
			if err != nil {
				return nil, err
			}
			N.ensembles = append(N.ensembles, e)
		}
	}
	if len(N.ensembles) == 0 {
		return nil, fmt.Errorf("goPaths: TPS network: no transitions between the given states")
	}
	return N, nil
}

//PathEnsembles returns the ensembles of the network.
func (N *TPSNetwork) PathEnsembles() []Ensemble {
	r := make([]Ensemble, len(N.ensembles))
	for i, v := range N.ensembles {
		r[i] = v
	}
	return r
}

//AllStates returns the stable states of the network.
func (N *TPSNetwork) AllStates() []Volume { return N.states }

//Transitions returns the ensembles with their concrete type.
func (N *TPSNetwork) Transitions() []*TPSEnsemble { return N.ensembles }

//TISNetwork holds one TIS ensemble per interface of a nested interface
//set over a single order parameter.
type TISNetwork struct {
	a, b      Volume
	cv        *CV
	lambdas   []float64
	ensembles []*TISEnsemble
}

//NewTISNetwork builds a TIS network from state a to state b with the
//given strictly increasing interface positions. b may be nil.
func NewTISNetwork(a, b Volume, cv *CV, lambdas []float64) (*TISNetwork, error) {
	if a == nil {
		return nil, fmt.Errorf("goPaths: TIS network: supplied a nil state A")
	}
	if cv == nil {
		return nil, fmt.Errorf("goPaths: TIS network: supplied a nil order parameter")
	}
	if len(lambdas) == 0 {
		return nil, fmt.Errorf("goPaths: TIS network: supplied an empty interface set")
	}
	for i := 1; i < len(lambdas); i++ {
		if lambdas[i] <= lambdas[i-1] {
			return nil, fmt.Errorf("goPaths: TIS network: interfaces must increase strictly, got %g after %g", lambdas[i], lambdas[i-1])
		}
	}
	N := &TISNetwork{a: a, b: b, cv: cv, lambdas: lambdas}
	for i, l := range lambdas {
		e, err := NewTISEnsemble(fmt.Sprintf("%s[%d]", a.Name(), i), a, b, cv, l)
		if err != nil {
			return nil, err
		}
		N.ensembles = append(N.ensembles, e)
	}
	return N, nil
}

//PathEnsembles returns the ensembles of the network, innermost
//interface first.
func (N *TISNetwork) PathEnsembles() []Ensemble {
	r := make([]Ensemble, len(N.ensembles))
	for i, v := range N.ensembles {
		r[i] = v
	}
	return r
}

//AllStates returns the stable states of the network.
func (N *TISNetwork) AllStates() []Volume {
	if N.b == nil {
		return []Volume{N.a}
	}
	return []Volume{N.a, N.b}
}

//Interfaces returns the interface positions.
func (N *TISNetwork) Interfaces() []float64 { return N.lambdas }

//CV returns the order parameter of the network.
func (N *TISNetwork) CV() *CV { return N.cv }

//StateA returns the initial state.
func (N *TISNetwork) StateA() Volume { return N.a }

//StateB returns the final state, which may be nil.
func (N *TISNetwork) StateB() Volume { return N.b }

//InterfaceEnsembles returns the ensembles with their concrete type.
func (N *TISNetwork) InterfaceEnsembles() []*TISEnsemble { return N.ensembles }
