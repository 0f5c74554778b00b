// Package rcmap is the output model: stations at normalized
// coordinates and the services (named routes) connecting them, plus
// the JSON wire encoding a consumer expects.
//
// What
//
//   - Station is one normalized-position stop, keyed by its geomap
//     point id or, for a grouped station, its group id.
//   - Service is one station-id sequence plus whether it loops.
//   - Map holds every Station and Service and implements
//     json.Marshaler to produce the wire format.
//   - Materialize builds the Station set from a geomap.Map: one
//     Station per StationGroup at its centroid, plus one Station per
//     ungrouped station point, both normalized by canvas size.
//
// Why
//
//	Keeping the wire format's quirks (coordinates scaled by 10000 and
//	rounded, IsNotLoop rather than IsLoop) behind Map.MarshalJSON means
//	every other package works with the natural Go representation.
//
// Determinism
//
//	Materialize's output Station set is fully determined by a
//	geomap.Map's groups and ungrouped station points; Map.MarshalJSON
//	sorts both Stations and Services by id so repeated encodes of the
//	same Map byte-for-byte match.
package rcmap
