/*
 * engine.go, part of goPaths.
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

package toys

import (
	"fmt"
	"math/rand"

	paths "github.com/mherrera/gopaths"
)

//Engine adapts the Langevin integrator to the paths.Engine interface,
//with a hard frame budget so a stopping rule that never fires cannot
//hang a simulation.
type Engine struct {
	integ  *Langevin
	maxLen int
}

//NewEngine wraps the integrator with the given maximum segment length.
func NewEngine(integ *Langevin, maxLen int) (*Engine, error) {
	if integ == nil {
		return nil, fmt.Errorf("goPaths/toys: Engine: supplied a nil integrator")
	}
	if maxLen < 2 {
		return nil, fmt.Errorf("goPaths/toys: Engine: maximum segment length %d is too small", maxLen)
	}
	return &Engine{integ: integ, maxLen: maxLen}, nil
}

//Integrator returns the underlying Langevin integrator.
func (E *Engine) Integrator() *Langevin { return E.integ }

//MaxLength returns the frame budget per segment.
func (E *Engine) MaxLength() int { return E.maxLen }

//Propagate integrates from the given snapshot until stop returns true.
//When the budget runs out it returns the partial segment wrapped around
//paths.ErrMaxLength.
func (E *Engine) Propagate(from *paths.Snapshot, rng *rand.Rand, stop func(paths.Trajectory) bool) (paths.Trajectory, error) {
	T := paths.Trajectory{from.Copy()}
	for !stop(T) {
		if len(T) >= E.maxLen {
			return T, fmt.Errorf("Propagate: segment of %d frames: %w", len(T), paths.ErrMaxLength)
		}
		T = append(T, E.integ.Step(T[len(T)-1], rng))
	}
	return T, nil
}

//Modify returns a copy of the snapshot with thermal velocities.
func (E *Engine) Modify(s *paths.Snapshot, rng *rand.Rand) *paths.Snapshot {
	return E.integ.Thermalize(s, rng)
}
