package service

import (
	"github.com/railmapgen/aarc2rc/geomap"
	"github.com/railmapgen/aarc2rc/route"
)

// resolveStations converts a point-id sequence into a station-id
// sequence: non-station points are dropped, a grouped station emits
// its group id, and, when m.Config.MergeConsecutiveDuplicates is set,
// a station id equal to the previous one is skipped rather than
// repeated.
func resolveStations(m *geomap.Map, pointIDs []int) []int {
	var stationIDs []int
	for _, pid := range pointIDs {
		p, known := m.Points[pid]
		if !known || !p.IsStation() {
			continue
		}
		id := m.EmitID(pid)
		if m.Config.MergeConsecutiveDuplicates && len(stationIDs) > 0 && stationIDs[len(stationIDs)-1] == id {
			continue
		}
		stationIDs = append(stationIDs, id)
	}
	return stationIDs
}

// Emit converts r into a station-id sequence. Returns ok=false for a
// route with fewer than two tracks, or whose resulting sequence has
// fewer than two stations — neither makes a usable service.
func Emit(m *geomap.Map, r route.Route) (stationIDs []int, ok bool) {
	if len(r) < 2 {
		return nil, false
	}
	pointIDs := make([]int, len(r))
	for i, t := range r {
		pointIDs[i] = t.PointID
	}
	stationIDs = resolveStations(m, pointIDs)
	if len(stationIDs) < 2 {
		return nil, false
	}
	return stationIDs, true
}

// EmitLine converts a line classified is_simple directly into a single
// station-id sequence, skipping route search entirely: the station-
// filtered point sequence of the line, with group resolution and
// consecutive-duplicate merging, preserving the line's point order (and
// so its loop closure, if any). Returns ok=false if fewer than two
// stations survive filtering.
func EmitLine(m *geomap.Map, l *geomap.Line) (stationIDs []int, ok bool) {
	stationIDs = resolveStations(m, l.PointIDs)
	if len(stationIDs) < 2 {
		return nil, false
	}
	return stationIDs, true
}
