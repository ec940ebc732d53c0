/*
 * cv.go, part of goPaths.
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

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

//CV is a named collective variable: a scalar function of a snapshot.
//States, interfaces and shooting-point biases are all defined over CVs.
type CV struct {
	name string
	f    func(*Snapshot) float64
}

//NewCV returns a CV with the given name evaluating f. It panics on a
//nil function, as a CV without a function is never recoverable.
func NewCV(name string, f func(*Snapshot) float64) *CV {
	if f == nil {
		panic("goPaths: Attempted to build a CV with a nil function")
	}
	return &CV{name: name, f: f}
}

//Name returns the name of the collective variable.
func (C *CV) Name() string {
	return C.name
}

//At evaluates the collective variable on the snapshot s.
func (C *CV) At(s *Snapshot) float64 {
	return C.f(s)
}

//Coordinate returns a CV that simply reads the given degree of freedom.
//It is the usual order parameter for the 2D toy systems, where axis 0 is x.
func Coordinate(name string, axis int) *CV {
	return NewCV(name, func(s *Snapshot) float64 {
		if axis >= len(s.Pos) {
			panic(fmt.Sprintf("goPaths: CV %s: axis %d out of range for a %d-dimensional snapshot", name, axis, len(s.Pos)))
		}
		return s.Pos[axis]
	})
}

//Distance returns a CV measuring the Euclidean distance from the
//given origin. The origin is copied.
func Distance(name string, origin []float64) *CV {
	o := make([]float64, len(origin))
	copy(o, origin)
	return NewCV(name, func(s *Snapshot) float64 {
		if len(s.Pos) != len(o) {
			panic(fmt.Sprintf("goPaths: CV %s: snapshot dimension %d doesn't match the origin (%d)", name, len(s.Pos), len(o)))
		}
		return floats.Distance(s.Pos, o, 2)
	})
}
