/*
 * scheme.go, part of goPaths.
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
	"io"
	"math/rand"
	"sort"
)

//Group is a named set of movers drawn with relative weights. The group
//itself carries a weight relative to the other groups of the scheme.
type Group struct {
	name    string
	weight  float64
	movers  []Mover
	weights []float64
}

//NewGroup returns an empty group with the given name and relative weight.
//It panics on a non-positive weight.
func NewGroup(name string, weight float64) *Group {
	if weight <= 0 {
		panic(fmt.Sprintf("goPaths/scheme: Group %s: non-positive weight %g", name, weight))
	}
	return &Group{name: name, weight: weight}
}

//Name returns the name of the group.
func (G *Group) Name() string { return G.name }

//Weight returns the relative weight of the group.
func (G *Group) Weight() float64 { return G.weight }

//Add appends a mover with the given relative weight within the group.
//It panics on a non-positive weight.
func (G *Group) Add(m Mover, weight float64) {
	if weight <= 0 {
		panic(fmt.Sprintf("goPaths/scheme: Group %s: non-positive mover weight %g", G.name, weight))
	}
	G.movers = append(G.movers, m)
	G.weights = append(G.weights, weight)
}

//Movers returns the movers of the group.
func (G *Group) Movers() []Mover { return G.movers }

//MoveStats counts trials and acceptances of one mover.
type MoveStats struct {
	Trials   int
	Accepted int
}

//Ratio returns the acceptance ratio, or 0 before the first trial.
func (m MoveStats) Ratio() float64 {
	if m.Trials == 0 {
		return 0
	}
	return float64(m.Accepted) / float64(m.Trials)
}

//Scheme enumerates the move groups of a simulation and keeps per-mover
//acceptance statistics.
type Scheme struct {
	groups []*Group
	stats  map[string]*MoveStats
}

//NewScheme returns an empty scheme.
func NewScheme() *Scheme {
	return &Scheme{stats: make(map[string]*MoveStats)}
}

//AddGroup appends a group to the scheme.
func (S *Scheme) AddGroup(g *Group) {
	S.groups = append(S.groups, g)
}

//Groups returns the groups of the scheme.
func (S *Scheme) Groups() []*Group { return S.groups }

//Movers returns every mover of every group.
func (S *Scheme) Movers() []Mover {
	var r []Mover
	for _, g := range S.groups {
		r = append(r, g.movers...)
	}
	return r
}

//pickWeighted returns an index drawn proportionally to the weights.
func pickWeighted(rng *rand.Rand, weights []float64) int {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	r := rng.Float64() * sum
	var acc float64
	for i, w := range weights {
		acc += w
		if r < acc {
			return i
		}
	}
	return len(weights) - 1
}

//Choose draws a group proportionally to the group weights, then a mover
//within it proportionally to the mover weights. It panics on an empty
//scheme, which means the scheme was never built.
func (S *Scheme) Choose(rng *rand.Rand) Mover {
	if len(S.groups) == 0 {
		panic("goPaths/scheme: Choose on an empty scheme")
	}
	gw := make([]float64, len(S.groups))
	for i, g := range S.groups {
		gw[i] = g.weight
	}
	g := S.groups[pickWeighted(rng, gw)]
	return g.movers[pickWeighted(rng, g.weights)]
}

//note records the outcome of a move in the acceptance statistics.
func (S *Scheme) note(res Result) {
	st, ok := S.stats[res.Mover]
	if !ok {
		st = new(MoveStats)
		S.stats[res.Mover] = st
	}
	st.Trials++
	if res.Accepted {
		st.Accepted++
	}
}

//Stats returns a copy of the per-mover acceptance statistics.
func (S *Scheme) Stats() map[string]MoveStats {
	r := make(map[string]MoveStats, len(S.stats))
	for k, v := range S.stats {
		r[k] = *v
	}
	return r
}

//Summary writes the acceptance table, one mover per line, sorted by
//mover name.
func (S *Scheme) Summary(w io.Writer) {
	names := make([]string, 0, len(S.stats))
	for k := range S.stats {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, n := range names {
		st := S.stats[n]
		fmt.Fprintf(w, "%-40s trials %6d accepted %6d ratio %5.3f\n", n, st.Trials, st.Accepted, st.Ratio())
	}
}
