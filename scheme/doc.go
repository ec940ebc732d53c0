//Package scheme composes and runs Monte Carlo move schemes for path
//sampling. A Scheme enumerates groups of movers with relative weights;
//strategies build the standard schemes (one-way shooting, path reversal,
//replica exchange) from a reaction network; the Sampler draws movers from
//the scheme and applies them to the active paths, one per ensemble.
//The package never integrates dynamics itself: shooting movers obtain
//their trial segments through the paths.Engine interface.
package scheme
