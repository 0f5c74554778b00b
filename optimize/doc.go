// Package optimize tunes the per-group segmentation lengths recorded
// as negative keys in a geomap.Config, using a caller-supplied full
// pipeline run (route search, emission, and pruning) as its objective.
//
// What
//
//   - Tune groups lines sharing a negative segmentation key, expands a
//     line mask by following friend/merged-line relations outward from
//     those groups, then runs bounded coordinate descent over each
//     group's segmentation length, calling back into the full pipeline
//     once per candidate to count the resulting services.
//   - TuneOptions carries the two delta sets coordinate descent tries
//     (a wider one for its first two iterations, a narrower one after).
//   - The mask is fixed for the whole run. Services from lines outside
//     it never count toward the objective Tune minimizes, even though
//     the caller's final full conversion still emits them.
//
// Why
//
//	The optimizer never runs route search itself — it is parameterized
//	over a CountFunc so this package stays free of a dependency on the
//	station/duplicate-pruning pipeline's assembly order, which lives in
//	package convert.
//
// Determinism
//
//	Given the same geomap.Map and CountFunc, Tune evaluates groups in
//	sorted key order and deltas in the fixed order they are configured,
//	so two runs over identical inputs try candidates in the same order
//	and land on the same tuned table — but CountFunc itself, not Tune,
//	determines whether that order ever produces two different
//	equally-good candidates tied in a CountFunc-order-dependent way.
package optimize
