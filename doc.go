/*
 * doc.go, part of goPaths.
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

/*Package paths is the main package of the goPaths library. It provides the building
blocks for transition path sampling (TPS) and transition interface sampling (TIS)
simulations of rare events: snapshots and trajectories, collective variables,
state volumes, path ensembles and reaction networks.



	**goPaths Capabilities**


    Defines collective variables, state volumes and interface sets over them.

    Builds TPS and TIS path ensembles and networks, with the corresponding
	full-path indicator functions and generation stopping rules.

    Composes Monte Carlo move schemes from strategies: one-way shooting with
	pluggable shooting-point selectors, path reversal and replica exchange
	(package scheme).

    Samples path space over closed-form 2D toy potentials with a Langevin
	integrator (package toys).

    Plots potential energy surfaces and sampled paths (package pesplot).

    Writes and reads compressed step logs (package steps) and computes
	crossing-probability curves and path statistics from them (package analysis).

    Runs whole simulations from a YAML setup file (package setup and
	cmd/pathsampling).

The goPaths root package does not perform dynamics itself. Trajectory segments
are produced by anything implementing the Engine interface; the toys package
provides the reference implementation used in the tutorials and tests.
*/
package paths
