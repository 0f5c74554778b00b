// Package track turns a geomap.Map's lines into per-point track tokens
// and a successor oracle over them: the directed, friend/merged-line-
// aware traversal graph that package route searches.
//
// What
//
//   - Track is a directed position on a line: a point id, the line and
//     index it occupies, a direction of travel, and a Kind classifying
//     how its next index is derived (Linear: index±1: WrapAround: a
//     loop's first/last point connects to the other end; Terminal: the
//     line ends here, no continuation on this line).
//   - BuildTracks emits every point's track set from a Map's lines.
//   - NextTracks is the successor oracle: same-line continuation,
//     unconditional merged-line through-running, and friend-line
//     continuation gated by the non-reflex-turn test.
//
// Why
//
//	Splitting "what tracks exist at a point" (BuildTracks) from "what
//	can follow a given track" (NextTracks) keeps the friend/merged-line
//	branching logic in one small function that route.Search calls once
//	per BFS step, instead of re-deriving line adjacency on every call.
//
// Determinism
//
//	Given the same Map, BuildTracks always returns the same track set
//	per point (track order follows each line's point order); NextTracks
//	always returns the same successor set for the same track.
package track
