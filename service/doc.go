// Package service turns raw routes from package route into station-id
// sequences and removes the redundant ones.
//
// What
//
//   - Emit walks a route.Route's tracks, keeping only station points
//     (resolved through a station group if the point belongs to one),
//     optionally merging consecutive duplicate station ids, and
//     discarding any result shorter than two stations.
//   - EmitLine does the same station filtering and group resolution
//     directly on a Line's own point sequence, for a line whose
//     is_simple classification means it never goes through route
//     search at all.
//   - Prune removes a set of emitted sequences that are identical,
//     exact reverses, or sub-routes of another sequence in the set.
//
// Why
//
//	Route search enumerates every maximal track path, including many
//	that collapse to the same station sequence once non-station nodes
//	are dropped, or that are wholly contained in a longer sibling route;
//	Prune is what keeps the final service count sane.
//
// Determinism
//
//	Emit is a pure function of its input route. Prune's removal order
//	follows an explicit restart-on-removal scan (see prune.go); which
//	sequences survive does not depend on the input slice's order, but
//	the survivors keep their relative input order, so callers that need
//	a stable output order should sort the input (or the result).
package service
