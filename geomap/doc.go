// Package geomap defines the geometric input model of aarc2rc: points,
// directed polylines ("lines"), station groups, and the tuning Config
// that governs how the rest of the pipeline treats them.
//
// What
//
//   - Position is a 2D vector with the handful of operations the rest
//     of the pipeline needs (add, subtract, scale, dot, cross, length,
//     normalize).
//   - Point is a node or station at a Position, with a directional
//     style used only by the auxiliary-point insertion stage (outside
//     this module's scope) and carried through unchanged.
//   - Line is an ordered sequence of point ids, with loop detection and
//     an is_simple classification computed by Map.Normalize.
//   - StationGroup merges nearby or explicitly linked stations into one
//     logical station; Map.AutoGroup discovers groups by proximity and
//     Map.JoinStations merges groups explicitly.
//   - Map owns all of the above plus Config, the set of tunable options
//     (max_length, max_rc_steps, friend/merged/segmented line
//     relations, link modes, …).
//
// Why
//
//   - Every later package (track, route, service, rcmap, optimize)
//     reads a *Map and a Config; keeping that model in one place avoids
//     smearing geometry/config parsing logic across the pipeline.
//
// Determinism
//
//	Map.Normalize and Map.AutoGroup are deterministic given their input:
//	group ids are always the smallest member station id, iteration order
//	over points/lines never affects output group membership.
package geomap
