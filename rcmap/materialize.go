package rcmap

import "github.com/railmapgen/aarc2rc/geomap"

// Materialize builds the Station set of m: one Station per
// geomap.StationGroup at its member centroid, and one Station per
// station point that belongs to no group, both normalized by the
// source map's canvas size.
func Materialize(src *geomap.Map) map[int]Station {
	stations := make(map[int]Station, len(src.Groups)+len(src.Points))

	for groupID := range src.Groups {
		pos := src.NormalizedPosition(src.GroupPosition(groupID))
		stations[groupID] = Station{ID: groupID, X: pos.X, Y: pos.Y}
	}

	for pointID, p := range src.Points {
		if !p.IsStation() {
			continue
		}
		if _, grouped := src.GroupOf(pointID); grouped {
			continue
		}
		pos := src.NormalizedPosition(p.Pos)
		stations[pointID] = Station{ID: pointID, X: pos.X, Y: pos.Y}
	}

	return stations
}
