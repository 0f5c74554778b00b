// Package route searches a track graph breadth-first for every maximal
// route: a track sequence that starts at a line end (or, for a
// segmented line, at one of its interior seed points) and runs until
// no track successor remains or a length budget is exhausted.
//
// What
//
//   - An entry is one in-flight route: its accumulated track sequence
//     and a remaining station budget, tightened on every push to the
//     pushed track's line limit (its segmentation length if segmented,
//     else max_length).
//   - Search seeds one entry per line end (and, for a segmented line,
//     one entry per direction at every interior index that is a
//     multiple of its segmentation length minus max_rc_steps) and
//     breadth-first-expands every entry via track.NextTracks until it
//     dead-ends or exhausts its budget, emitting each such entry's
//     track sequence as one Route.
//
// Why
//
//	No visited-set is kept: the station-map domain cares about every
//	maximal route a rider could walk, not just the shortest one, so
//	this deliberately is not textbook unweighted-shortest-path BFS. It
//	reuses BFS's level-order queue discipline purely as a traversal
//	order, not as a distance computation.
//
// Determinism
//
//	Search's emitted route order depends on map iteration order over
//	lines, which Go does not guarantee; callers that need a stable
//	route order must sort the result (service.Prune does not depend on
//	input order, so this is only a presentation concern).
package route
