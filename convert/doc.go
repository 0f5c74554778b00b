// Package convert orchestrates the full geomap.Map -> rcmap.Map
// pipeline: station materialization, service enumeration (route search
// plus the is_simple fast path), duplicate pruning, and, when enabled,
// segmentation-length tuning.
//
// What
//
//   - Convert runs the pipeline once and returns the finished rcmap.Map.
//   - Every is_simple line is emitted directly via service.EmitLine.
//     Every other line contributes seeds to a single map-wide
//     route.Search pass; each resulting route is converted to a
//     station sequence via service.Emit.
//   - Every sequence, from both sources, is assigned an id once, in
//     emit order, then the whole set is passed through service.Prune
//     once. Pruning removes entries; it never renumbers the survivors,
//     so ids typically end up sparse.
//   - If m.Config.OptimizeSegmentation is set, optimize.Tune runs first
//     against a CountFunc that re-searches and re-prunes a masked
//     subset of the map, so the tuned segmentation lengths are in place
//     before the final full pass.
//
// Why
//
//	Splitting simple lines out of the search entirely is what makes the
//	common case (the large majority of a typical transit map) cheap:
//	most lines have no friend/merged/segmented relation and collapse to
//	one direct emission with no BFS at all.
//
// Determinism
//
//	Convert's output service ids are assigned by sorting m.Lines by id
//	before emitting simple lines, then sorting the searched sequences by
//	their station ids before numbering them (route.Search's own order is
//	not stable), then service.Prune's restart-on-removal scan, which
//	is itself order-preserving-but-not-order-dependent (see
//	service/prune.go) — so two Convert calls over the same Map and
//	Config produce byte-identical output.
package convert
