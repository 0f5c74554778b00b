// Package aarc2rc converts a geometric transit-map document ("AARC") —
// points and stations joined by polylines, plus point-to-point link
// annotations — into a logical board-game map ("RC"): stations with
// normalized coordinates and a set of services (end-to-end routes)
// expressed as station-id sequences.
//
// The conversion is organized as a small pipeline of packages:
//
//	geomap/    — the geometric input model: points, lines, station
//	             groups, config normalization (auto-grouping, link
//	             modes, segmentation-length clamping).
//	track/     — per-point track tokens and the successor oracle that
//	             turns lines into a directed, friend/merged-line-aware
//	             traversal graph.
//	route/     — breadth-first route search over the track graph, with
//	             segmentation-driven seeding and budget cut-offs.
//	service/   — track-sequence-to-station-sequence emission and the
//	             duplicate/sub-route pruning pass.
//	rcmap/     — the RC output model: station materialization and the
//	             JSON wire contract.
//	optimize/  — coordinate-descent tuning of per-line segmentation
//	             lengths to reduce emitted service count.
//	convert/   — orchestrates the above into one geomap.Map -> rcmap.Map
//	             call.
//	config/    — loads and validates the optional tuning document
//	             (gopkg.in/yaml.v3 + go-playground/validator).
//	jobqueue/  — a minimal async task boundary (submit/poll/cancel,
//	             15s wall clock) demonstrating how an external caller
//	             drives the otherwise-synchronous core.
//
// The core (geomap through convert) is a pure, single-threaded function
// of its input: given the same GeoMap and Config, it always produces
// the same RcMap. It holds no shared mutable state and performs no I/O;
// parsing the AARC document and serializing the RcMap are left to
// callers.
//
//	go get github.com/railmapgen/aarc2rc
package aarc2rc
