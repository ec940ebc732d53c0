/*
 * paths.go, part of goPaths.
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

/**Note: Several functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. I considered that if something goes wrong here, the program is way-most likely wrong and should
 * crash. Most panics are related to using the function on a nil object or trying to access out-of bounds
 * fields**/

//Snapshot is one point of a trajectory in phase space: the positions and
//velocities of the system at one instant. For the toy systems shipped with
//goPaths both slices have 2 elements, but nothing in this package assumes that.
type Snapshot struct {
	Pos []float64
	Vel []float64
}

//NewSnapshot returns a Snapshot with its own copy of the given positions
//and velocities. It panics if the slices differ in length.
func NewSnapshot(pos, vel []float64) *Snapshot {
	if len(pos) != len(vel) {
		panic(fmt.Sprintf("goPaths: Mismatched positions (%d) and velocities (%d)", len(pos), len(vel)))
	}
	S := new(Snapshot)
	S.Pos = make([]float64, len(pos))
	S.Vel = make([]float64, len(vel))
	copy(S.Pos, pos)
	copy(S.Vel, vel)
	return S
}

//Dim returns the number of degrees of freedom of the snapshot.
func (S *Snapshot) Dim() int {
	return len(S.Pos)
}

//Copy returns a copy of the Snapshot object.
func (S *Snapshot) Copy() *Snapshot {
	if S == nil {
		panic("goPaths: Attempted to copy a nil snapshot")
	}
	return NewSnapshot(S.Pos, S.Vel)
}

//Reversed returns a copy of the snapshot with the velocities negated,
//i.e. the same point visited in the time-reversed direction.
func (S *Snapshot) Reversed() *Snapshot {
	N := S.Copy()
	for i := range N.Vel {
		N.Vel[i] = -N.Vel[i]
	}
	return N
}

//Trajectory is an ordered sequence of snapshots, i.e. one path through
//phase space. The snapshots are pointers, so a Trajectory copied by
//reslicing shares its frames with the original.
type Trajectory []*Snapshot

//Len returns the number of frames in the trajectory.
func (T Trajectory) Len() int {
	return len(T)
}

//Copy returns a deep copy of the trajectory.
func (T Trajectory) Copy() Trajectory {
	N := make(Trajectory, len(T))
	for i, v := range T {
		N[i] = v.Copy()
	}
	return N
}

//Reverse returns the time-reversed trajectory: frames in inverse order
//with all velocities negated. The receiver is not modified.
func (T Trajectory) Reverse() Trajectory {
	N := make(Trajectory, len(T))
	for i, v := range T {
		N[len(T)-1-i] = v.Reversed()
	}
	return N
}

//Append returns a new trajectory with the frames of S appended after
//those of T. Frames are shared, not copied.
func (T Trajectory) Append(S Trajectory) Trajectory {
	N := make(Trajectory, 0, len(T)+len(S))
	N = append(N, T...)
	N = append(N, S...)
	return N
}

//CVMax returns the largest value the collective variable cv takes along
//the trajectory. Panics on an empty trajectory.
func (T Trajectory) CVMax(cv *CV) float64 {
	if len(T) == 0 {
		panic("goPaths: CVMax of an empty trajectory")
	}
	max := cv.At(T[0])
	for _, v := range T[1:] {
		if l := cv.At(v); l > max {
			max = l
		}
	}
	return max
}

//CVMin returns the smallest value the collective variable cv takes along
//the trajectory. Panics on an empty trajectory.
func (T Trajectory) CVMin(cv *CV) float64 {
	if len(T) == 0 {
		panic("goPaths: CVMin of an empty trajectory")
	}
	min := cv.At(T[0])
	for _, v := range T[1:] {
		if l := cv.At(v); l < min {
			min = l
		}
	}
	return min
}

//Positions returns the positions of every frame as a newly allocated
//slice of slices. Mostly for serialization and plotting.
func (T Trajectory) Positions() [][]float64 {
	r := make([][]float64, len(T))
	for i, v := range T {
		r[i] = make([]float64, len(v.Pos))
		copy(r[i], v.Pos)
	}
	return r
}
