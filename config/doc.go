// Package config loads and validates the optional tuning document that
// overrides geomap.DefaultConfig, and resolves it into a geomap.Config.
//
// What
//
//   - File is the yaml.v3-decoded shape of the document: every field
//     optional, validated with go-playground/validator.
//   - Resolve turns a File into a geomap.Config, applying the
//     segmentation-length normalization rule (a positive length at or
//     below max_rc_steps is raised to max_rc_steps+1) and assigning
//     each segmented_lines entry's group key (a bare id/name gets
//     its negative list position; an explicit array shares one key;
//     an object entry with a positive segment_length is never a group
//     key).
//   - Line/point references may be given as an id or a name; Resolve
//     takes a name->id lookup (produced by the input-document parser,
//     out of this module's scope) to translate names, and returns
//     InvalidInput-wrapped errors for a name absent from it.
//
// Why
//
//	Separating File (the wire shape) from geomap.Config (the shape the
//	core actually consumes) keeps the three accepted segmented_lines
//	shapes — and the id-or-name ambiguity — out of the core entirely.
//
// Determinism
//
//	Resolve is a pure function of its inputs; negative group keys are
//	assigned by the segmented_lines entry's position in the source
//	document, so re-parsing the same document yields the same keys.
package config
