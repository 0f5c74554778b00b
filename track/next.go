package track

import "github.com/railmapgen/aarc2rc/geomap"

// NextTracks returns the tracks that may follow t: the resident track
// lists by point id from BuildTracks.
//
// A same-line continuation at the target index is accepted whenever its
// direction matches t's own, or it is itself a Terminal track (so the
// search always has a way to stop on a line even when approaching its
// far end in the opposite direction). A different line's track at the
// target point is accepted unconditionally if its line is merged with
// t's line, or, if merely a friend of t's line, only when the turn
// through the target point does not reverse direction
// (geomap.CanMoveThrough). Terminal tracks on a different line are
// never accepted as a friend/merged continuation.
//
// When more than one successor results, any Terminal entries are
// dropped: a dead end is only reported when it is the sole option.
func NextTracks(m *geomap.Map, byPoint map[int][]Track, t Track) []Track {
	if t.IsEnd() {
		return nil
	}
	line := m.Lines[t.LineID]
	nextIdx := t.NextIndex()
	nextPID := line.PointIDs[nextIdx]

	var result []Track
	for _, cand := range byPoint[nextPID] {
		if cand.LineID == t.LineID && cand.Index == nextIdx {
			if cand.Forward == t.Forward || cand.IsEnd() {
				result = append(result, cand)
			}
			continue
		}
		if cand.IsEnd() {
			continue
		}
		if m.Config.IsMerged(t.LineID, cand.LineID) {
			result = append(result, cand)
			continue
		}
		if !m.Config.IsFriend(t.LineID, cand.LineID) {
			continue
		}
		candLine := m.Lines[cand.LineID]
		afterNextPID := candLine.PointIDs[cand.NextIndex()]
		if geomap.CanMoveThrough(m.Points[t.PointID].Pos, m.Points[nextPID].Pos, m.Points[afterNextPID].Pos) {
			result = append(result, cand)
		}
	}

	if len(result) > 1 {
		filtered := result[:0]
		for _, r := range result {
			if !r.IsEnd() {
				filtered = append(filtered, r)
			}
		}
		result = filtered
	}
	return result
}
