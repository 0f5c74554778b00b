package track

import "github.com/railmapgen/aarc2rc/geomap"

// BuildTracks emits every line's per-point track tokens, keyed by point
// id. A line contributes, for each index i in its point sequence:
//
//  1. a forward Linear track if i+1 is within the line (continuing to
//     i+1),
//  2. a backward Linear track if i > 0 (continuing to i-1),
//  3. a backward WrapAround track at i==0 if the line loops (continuing
//     to the last index),
//  4. a forward WrapAround track at the last index if the line loops
//     (continuing to index 0),
//  5. a backward Terminal track at i==0 if the line does not loop,
//  6. a forward Terminal track at the last index if the line does not
//     loop.
//
// Lines with fewer than 2 points contribute no tracks (geomap.Normalize
// already drops these defensively before BuildTracks runs, so
// BuildTracks does not re-validate).
func BuildTracks(m *geomap.Map) map[int][]Track {
	byPoint := map[int][]Track{}
	add := func(pid int, t Track) {
		byPoint[pid] = append(byPoint[pid], t)
	}

	for lineID, l := range m.Lines {
		n := len(l.PointIDs)
		for i, pid := range l.PointIDs {
			if i+1 < n {
				add(pid, Track{PointID: pid, LineID: lineID, Index: i, Forward: true, Kind: Linear})
			}
			if i > 0 {
				add(pid, Track{PointID: pid, LineID: lineID, Index: i, Forward: false, Kind: Linear})
			}
			if i == 0 {
				if l.IsLoop {
					add(pid, Track{PointID: pid, LineID: lineID, Index: i, Forward: false, Kind: WrapAround, wrap: n - 1})
				} else {
					add(pid, Track{PointID: pid, LineID: lineID, Index: i, Forward: false, Kind: Terminal})
				}
			}
			if i+1 == n {
				if l.IsLoop {
					add(pid, Track{PointID: pid, LineID: lineID, Index: i, Forward: true, Kind: WrapAround, wrap: 0})
				} else {
					add(pid, Track{PointID: pid, LineID: lineID, Index: i, Forward: true, Kind: Terminal})
				}
			}
		}
	}
	return byPoint
}
