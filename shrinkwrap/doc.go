// Package shrinkwrap implements a bit-packed, evolution-aware binary
// wire codec: a single fixed-capacity buffer with a front cursor for
// ordinary field content and a back cursor for the length headers of
// unsized fields and vector element counts, converging toward each other
// until FinishAndTake squeezes out whatever capacity went unused.
package shrinkwrap
