/*
 * paths_test.go, part of goPaths.
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

package paths

import (
	"fmt"
	"testing"
)

//lineTraj builds a trajectory along x with zero y and unit x velocity.
func lineTraj(xs ...float64) Trajectory {
	T := make(Trajectory, 0, len(xs))
	for _, x := range xs {
		T = append(T, NewSnapshot([]float64{x, 0}, []float64{1, 0}))
	}
	return T
}

func twoStates(Te *testing.T) (*CVRange, *CVRange, *CV) {
	x := Coordinate("x", 0)
	A, err := NewCVRange("A", x, -10, -0.5)
	if err != nil {
		Te.Fatal(err)
	}
	B, err := NewCVRange("B", x, 0.5, 10)
	if err != nil {
		Te.Fatal(err)
	}
	return A, B, x
}

//TestReverse checks that time reversal inverts the frame order and the
//velocities, and that the original is untouched.
func TestReverse(Te *testing.T) {
	T := lineTraj(-1, 0, 1)
	R := T.Reverse()
	if R[0].Pos[0] != 1 || R[2].Pos[0] != -1 {
		Te.Error("Reverse did not invert the frame order")
	}
	if R[0].Vel[0] != -1 {
		Te.Error("Reverse did not negate the velocities")
	}
	if T[0].Pos[0] != -1 || T[0].Vel[0] != 1 {
		Te.Error("Reverse modified its receiver")
	}
	fmt.Println("Reversed trajectory:", R.Positions())
}

func TestVolumes(Te *testing.T) {
	A, B, x := twoStates(Te)
	s := NewSnapshot([]float64{-0.7, 0}, []float64{0, 0})
	if !A.Contains(s) || B.Contains(s) {
		Te.Error("CVRange membership is wrong")
	}
	//The half-open interval: the upper bound is outside.
	edge := NewSnapshot([]float64{-0.5, 0}, []float64{0, 0})
	if A.Contains(edge) {
		Te.Error("CVRange should not contain its upper bound")
	}
	states := Union("states", A, B)
	if !states.Contains(s) {
		Te.Error("Union membership is wrong")
	}
	barrier := Not("barrier", states)
	if barrier.Contains(s) || !barrier.Contains(NewSnapshot([]float64{0, 0}, []float64{0, 0})) {
		Te.Error("Complement membership is wrong")
	}
	if _, err := NewCVRange("bad", x, 1, 1); err == nil {
		Te.Error("Expected an error for an empty interval")
	}
	r := Distance("r", []float64{0, 0})
	if v := r.At(NewSnapshot([]float64{3, 4}, []float64{0, 0})); v != 5 {
		Te.Error("Distance CV is wrong:", v)
	}
}

func TestTPSEnsemble(Te *testing.T) {
	A, B, _ := twoStates(Te)
	ens, err := NewTPSEnsemble("A->B", A, B, nil)
	if err != nil {
		Te.Fatal(err)
	}
	good := lineTraj(-0.7, -0.2, 0.1, 0.7)
	if !ens.Accepts(good) {
		Te.Error("Valid transition path rejected")
	}
	//ends back in A
	if ens.Accepts(lineTraj(-0.7, -0.2, -0.8)) {
		Te.Error("A->A path accepted by the A->B ensemble")
	}
	//visits B in the interior
	if ens.Accepts(lineTraj(-0.7, 0.6, 0.1, 0.7)) {
		Te.Error("Path visiting a state in the interior was accepted")
	}
	if ens.Accepts(lineTraj(-0.7)) {
		Te.Error("Single-frame path accepted")
	}
	if !ens.CanAppend(lineTraj(-0.7, -0.2)) {
		Te.Error("Generation should continue outside the states")
	}
	if ens.CanAppend(good) {
		Te.Error("Generation should stop inside a state")
	}
	fmt.Println("TPS ensemble", ens.Name(), "behaves")
}

func TestTISEnsemble(Te *testing.T) {
	A, B, x := twoStates(Te)
	ens, err := NewTISEnsemble("A[1]", A, B, x, -0.1)
	if err != nil {
		Te.Fatal(err)
	}
	//crosses the interface and returns to A
	if !ens.Accepts(lineTraj(-0.6, -0.05, -0.7)) {
		Te.Error("Valid A->A crossing path rejected")
	}
	//never reaches the interface
	if ens.Accepts(lineTraj(-0.6, -0.3, -0.7)) {
		Te.Error("Non-crossing path accepted")
	}
	//full transition also belongs to the ensemble
	if !ens.Accepts(lineTraj(-0.6, 0.0, 0.6)) {
		Te.Error("Full transition rejected by the interface ensemble")
	}
	//starts outside A
	if ens.Accepts(lineTraj(-0.2, 0.0, -0.7)) {
		Te.Error("Path starting outside A accepted")
	}
}

func TestNetworks(Te *testing.T) {
	A, B, x := twoStates(Te)
	tps, err := NewTPSNetwork([]Volume{A}, []Volume{B})
	if err != nil {
		Te.Fatal(err)
	}
	if len(tps.PathEnsembles()) != 1 || tps.PathEnsembles()[0].Name() != "A->B" {
		Te.Error("Wrong TPS network ensembles:", len(tps.PathEnsembles()))
	}
	if _, err := NewTPSNetwork([]Volume{A}, []Volume{A}); err == nil {
		Te.Error("Expected an error for a network without transitions")
	}
	tis, err := NewTISNetwork(A, B, x, []float64{-0.45, -0.3, -0.1})
	if err != nil {
		Te.Fatal(err)
	}
	if len(tis.InterfaceEnsembles()) != 3 {
		Te.Error("Wrong number of interface ensembles")
	}
	for i, e := range tis.InterfaceEnsembles() {
		fmt.Println("interface", i, e.Name(), "lambda", e.Lambda())
	}
	if _, err := NewTISNetwork(A, B, x, []float64{-0.1, -0.3}); err == nil {
		Te.Error("Expected an error for unsorted interfaces")
	}
}
