/*
 * strategy.go, part of goPaths.
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
	"fmt"

	paths "github.com/mherrera/gopaths"
)

/*Strategies are how schemes get composed: each strategy contributes one
 * move group for the whole network. Building by strategies, instead of
 * instantiating movers by hand, keeps the per-ensemble bookkeeping in one
 * place and lets Build check that nothing was forgotten.*/

//Builder accumulates move groups for a network until Build seals them
//into a Scheme.
type Builder struct {
	network paths.Network
	engine  paths.Engine
	scheme  *Scheme
	shot    map[string]bool //ensembles covered by at least one shooting mover
}

//NewBuilder returns a scheme builder for the given network and engine.
func NewBuilder(n paths.Network, e paths.Engine) *Builder {
	return &Builder{network: n, engine: e, scheme: NewScheme(), shot: make(map[string]bool)}
}

//Network returns the network the builder works on.
func (B *Builder) Network() paths.Network { return B.network }

//Engine returns the engine shooting movers will use.
func (B *Builder) Engine() paths.Engine { return B.engine }

//Strategy contributes movers to a scheme under construction.
type Strategy interface {
	Name() string
	Apply(*Builder) error
}

//OneWayShooting adds a "shooting" group with a forward and a backward
//one-way shooting mover per ensemble of the network, all drawing their
//shooting points from Selector.
type OneWayShooting struct {
	Selector Selector
}

//Name returns the name of the strategy.
func (s OneWayShooting) Name() string { return "one-way-shooting" }

//Apply adds the shooting group to the builder.
func (s OneWayShooting) Apply(B *Builder) error {
	if s.Selector == nil {
		return fmt.Errorf("goPaths/scheme: one-way shooting: supplied a nil selector")
	}
	if B.engine == nil {
		return fmt.Errorf("goPaths/scheme: one-way shooting: the builder has no engine")
	}
	g := NewGroup("shooting", 1)
	for _, e := range B.network.PathEnsembles() {
		g.Add(NewForwardShooting(e, s.Selector, B.engine), 1)
		g.Add(NewBackwardShooting(e, s.Selector, B.engine), 1)
		B.shot[e.Name()] = true
	}
	B.scheme.AddGroup(g)
	return nil
}

//Reversal adds a "reversal" group with a path reversal mover per
//ensemble, at half the weight of the shooting group.
type Reversal struct{}

//Name returns the name of the strategy.
func (s Reversal) Name() string { return "reversal" }

//Apply adds the reversal group to the builder.
func (s Reversal) Apply(B *Builder) error {
	g := NewGroup("reversal", 0.5)
	for _, e := range B.network.PathEnsembles() {
		g.Add(NewPathReversal(e), 1)
	}
	B.scheme.AddGroup(g)
	return nil
}

//RepEx adds a "repex" group with a replica exchange mover per adjacent
//pair of interface ensembles. It only applies to TIS networks.
type RepEx struct{}

//Name returns the name of the strategy.
func (s RepEx) Name() string { return "replica-exchange" }

//Apply adds the replica exchange group to the builder.
func (s RepEx) Apply(B *Builder) error {
	tis, ok := B.network.(*paths.TISNetwork)
	if !ok {
		return fmt.Errorf("goPaths/scheme: replica exchange requires a TIS network")
	}
	ens := tis.InterfaceEnsembles()
	if len(ens) < 2 {
		return fmt.Errorf("goPaths/scheme: replica exchange requires at least 2 interfaces")
	}
	g := NewGroup("repex", 0.5)
	for i := 0; i < len(ens)-1; i++ {
		g.Add(NewReplicaExchange(ens[i], ens[i+1]), 1)
	}
	B.scheme.AddGroup(g)
	return nil
}

//Build applies the strategies in order and returns the finished scheme.
//It fails if no strategy contributed a group, or if some ensemble of the
//network ended up without a shooting mover: such an ensemble would keep
//its initial path forever.
func (B *Builder) Build(strats ...Strategy) (*Scheme, error) {
	for _, s := range strats {
		if err := s.Apply(B); err != nil {
			return nil, fmt.Errorf("Build: %s: %w", s.Name(), err)
		}
	}
	if len(B.scheme.groups) == 0 {
		return nil, fmt.Errorf("Build: no strategy contributed a move group")
	}
	for _, e := range B.network.PathEnsembles() {
		if !B.shot[e.Name()] {
			return nil, fmt.Errorf("Build: ensemble %s has no shooting mover", e.Name())
		}
	}
	return B.scheme, nil
}

//DefaultScheme assembles the standard scheme for a network: one-way
//shooting with uniform selection and path reversal, plus replica
//exchange between adjacent interfaces when the network is TIS with at
//least 2 interfaces.
func DefaultScheme(n paths.Network, e paths.Engine) (*Scheme, error) {
	strats := []Strategy{OneWayShooting{Selector: Uniform{}}, Reversal{}}
	if tis, ok := n.(*paths.TISNetwork); ok && len(tis.InterfaceEnsembles()) > 1 {
		strats = append(strats, RepEx{})
	}
	return NewBuilder(n, e).Build(strats...)
}
