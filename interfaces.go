/*
 * interfaces.go, part of goPaths.
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
	"errors"
	"math/rand"
)

/*The plan is to keep the root package free of dynamics. Shooting moves and
 * bootstrap procedures only see the Engine interface, so the same scheme
 * machinery runs on the toy Langevin engine or on anything an external
 * program provides.*/

//ErrMaxLength is returned (possibly wrapped) by engines when a stopping
//rule never fires within the engine's frame budget. Movers treat it as a
//rejected trial, not as a failure.
var ErrMaxLength = errors.New("goPaths: maximum path length exceeded")

//Engine produces trajectory segments. Implementations must copy the
//starting snapshot rather than alias it.
type Engine interface {

	//Propagate integrates forward from the given snapshot until stop
	//returns true, and returns the generated segment, first frame
	//included. The segment returned alongside ErrMaxLength is the
	//partial one.
	Propagate(from *Snapshot, rng *rand.Rand, stop func(Trajectory) bool) (Trajectory, error)

	//Modify returns a copy of the snapshot with freshly drawn
	//velocities, as used at shooting points.
	Modify(s *Snapshot, rng *rand.Rand) *Snapshot
}

//Errors

//This error predates the "wrapping" error system of Go (i.e. the "%w" directive and the errors package). We should avoid
//using the Decorate method and/or make it use the "%w" directive internally.

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //This is the new thing for errors. It allows you to add information when you pass it up. Each call also returns the "decoration" slice of strins resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

// StepError is the interface for errors in step logs.
type StepError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastStepError has a useless function to distinguish the harmless errors (i.e. end of a step log) so they can be
// filtered in a typeswitch that looks for this interface.
type LastStepError interface {
	StepError
	NormalLastStepTermination() //does nothing, just to separate this interface from other StepError's
}
