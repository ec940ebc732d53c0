/*
 * volume.go, part of goPaths.
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

//Volume is a region of phase space, typically a metastable state.
//Membership is all an ensemble ever asks of it.
type Volume interface {
	Name() string
	Contains(*Snapshot) bool
}

//CVRange is a volume defined by an interval of a collective variable:
//it contains a snapshot s when min <= cv(s) < max. The half-open interval
//makes adjacent ranges over the same CV disjoint.
type CVRange struct {
	name     string
	cv       *CV
	min, max float64
}

//NewCVRange builds a CVRange volume. It returns an error on a nil CV or
//an empty interval.
func NewCVRange(name string, cv *CV, min, max float64) (*CVRange, error) {
	if cv == nil {
		return nil, fmt.Errorf("goPaths: Volume %s: supplied a nil CV", name)
	}
	if min >= max {
		return nil, fmt.Errorf("goPaths: Volume %s: empty interval [%g,%g)", name, min, max)
	}
	return &CVRange{name: name, cv: cv, min: min, max: max}, nil
}

//Name returns the name of the volume.
func (V *CVRange) Name() string { return V.name }

//CV returns the collective variable defining the volume.
func (V *CVRange) CV() *CV { return V.cv }

//Contains returns whether the snapshot falls inside the interval.
func (V *CVRange) Contains(s *Snapshot) bool {
	l := V.cv.At(s)
	return l >= V.min && l < V.max
}

//Min returns the lower bound of the interval.
func (V *CVRange) Min() float64 { return V.min }

//Max returns the upper bound of the interval.
func (V *CVRange) Max() float64 { return V.max }

type union struct {
	name string
	vols []Volume
}

//Union returns the volume containing a snapshot when any of the given
//volumes does.
func Union(name string, vols ...Volume) Volume {
	return &union{name: name, vols: vols}
}

func (V *union) Name() string { return V.name }

func (V *union) Contains(s *Snapshot) bool {
	for _, v := range V.vols {
		if v.Contains(s) {
			return true
		}
	}
	return false
}

type intersection struct {
	name string
	vols []Volume
}

//Intersect returns the volume containing a snapshot only when all the
//given volumes do.
func Intersect(name string, vols ...Volume) Volume {
	return &intersection{name: name, vols: vols}
}

func (V *intersection) Name() string { return V.name }

func (V *intersection) Contains(s *Snapshot) bool {
	for _, v := range V.vols {
		if !v.Contains(s) {
			return false
		}
	}
	return true
}

type complement struct {
	name string
	vol  Volume
}

//Not returns the complement of the given volume.
func Not(name string, v Volume) Volume {
	return &complement{name: name, vol: v}
}

func (V *complement) Name() string { return V.name }

func (V *complement) Contains(s *Snapshot) bool {
	return !V.vol.Contains(s)
}

//InAny returns whether the snapshot is inside at least one of the volumes.
func InAny(s *Snapshot, vols []Volume) bool {
	for _, v := range vols {
		if v.Contains(s) {
			return true
		}
	}
	return false
}
