/*
 * analysis.go, part of goPaths.
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

//Package analysis extracts per-ensemble statistics from step logs:
//acceptance tables, path-length and lambda-max histograms and empirical
//interface-crossing curves.
package analysis

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/mherrera/gopaths/steps"
)

//MoveStats accumulates trials and acceptances for one mover.
type MoveStats struct {
	Trials   int
	Accepted int
}

//Ratio returns the acceptance ratio, 0 for an untried mover.
func (m MoveStats) Ratio() float64 {
	if m.Trials == 0 {
		return 0
	}
	return float64(m.Accepted) / float64(m.Trials)
}

//Acceptance tallies trials and acceptances per mover over a step log.
func Acceptance(st []*steps.Step) map[string]MoveStats {
	r := make(map[string]MoveStats)
	for _, s := range st {
		m := r[s.Mover]
		m.Trials++
		if s.Accepted {
			m.Accepted++
		}
		r[s.Mover] = m
	}
	return r
}

//PrintAcceptance writes the acceptance table to w, movers sorted by
//name. Same format as scheme.Scheme.Summary, so run-time and post-hoc
//tables read the same.
func PrintAcceptance(w io.Writer, acc map[string]MoveStats) {
	names := make([]string, 0, len(acc))
	for n := range acc {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		m := acc[n]
		fmt.Fprintf(w, "%-40s trials %6d accepted %6d ratio %5.3f\n", n, m.Trials, m.Accepted, m.Ratio())
	}
}

//forEnsemble returns the steps whose first ensemble matches name, or
//all steps if name is empty.
func forEnsemble(st []*steps.Step, name string) []*steps.Step {
	if name == "" {
		return st
	}
	r := make([]*steps.Step, 0, len(st))
	for _, s := range st {
		if len(s.Ensembles) > 0 && s.Ensembles[0] == name {
			r = append(r, s)
		}
	}
	return r
}

//Lambdas returns the lambda-max of every step for the given ensemble
//("" for all ensembles). Every step contributes, accepted or not: a
//rejected step re-counts the old path, which is what the Monte Carlo
//chain samples.
func Lambdas(st []*steps.Step, ensemble string) []float64 {
	sel := forEnsemble(st, ensemble)
	r := make([]float64, 0, len(sel))
	for _, s := range sel {
		r = append(r, s.LambdaMax)
	}
	return r
}

//Lengths returns the path length of every step for the given ensemble
//("" for all ensembles).
func Lengths(st []*steps.Step, ensemble string) []float64 {
	sel := forEnsemble(st, ensemble)
	r := make([]float64, 0, len(sel))
	for _, s := range sel {
		r = append(r, float64(s.Length))
	}
	return r
}

//LengthHistogram bins the path lengths of the given ensemble over bins
//equal-width bins.
func LengthHistogram(st []*steps.Step, ensemble string, bins int) (*Histogram, error) {
	data := Lengths(st, ensemble)
	return autoHistogram(data, bins)
}

//LambdaHistogram bins the lambda-max values of the given ensemble over
//bins equal-width bins.
func LambdaHistogram(st []*steps.Step, ensemble string, bins int) (*Histogram, error) {
	data := Lambdas(st, ensemble)
	return autoHistogram(data, bins)
}

func autoHistogram(data []float64, bins int) (*Histogram, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("goPaths/analysis: No data to bin")
	}
	if bins < 1 {
		return nil, fmt.Errorf("goPaths/analysis: At least one bin is needed, got %d", bins)
	}
	min := floats.Min(data)
	max := floats.Max(data)
	if min == max {
		//a degenerate but valid dataset, give it one real bin
		max = min + 1
	}
	//widen the last divider a hair so the maximum lands inside
	max += (max - min) * 1e-9
	div := floats.Span(make([]float64, bins+1), min, max)
	return NewHistogram(div, data), nil
}

//CrossingCurve returns, for each value in grid, the fraction of steps
//of the given ensemble whose lambda-max reaches at least that value.
//With grid set to the interface lambdas of a TIS network this is the
//per-ensemble empirical crossing curve.
func CrossingCurve(st []*steps.Step, ensemble string, grid []float64) ([]float64, error) {
	lm := Lambdas(st, ensemble)
	if len(lm) == 0 {
		return nil, fmt.Errorf("goPaths/analysis: No steps for ensemble %s", ensemble)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("goPaths/analysis: Given an empty lambda grid")
	}
	sort.Float64s(lm)
	r := make([]float64, len(grid))
	n := float64(len(lm))
	for i, g := range grid {
		//lm is sorted, so everything from the first >=g on crosses
		j := sort.SearchFloat64s(lm, g)
		r[i] = float64(len(lm)-j) / n
	}
	return r, nil
}
