package route

import (
	"github.com/railmapgen/aarc2rc/geomap"
	"github.com/railmapgen/aarc2rc/track"
)

// LineMask restricts route search to a subset of lines. A nil mask
// allows every line. optimize.Tune builds one non-nil mask (its
// grouped lines plus every line reachable from them through
// friend/merged pairs) and re-runs search over just those lines for
// every candidate it tries, without re-searching the whole map.
type LineMask map[int]bool

// Allows reports whether lineID participates in the search.
func (m LineMask) Allows(lineID int) bool {
	if m == nil {
		return true
	}
	return m[lineID]
}

// Route is one maximal track sequence found by Search.
type Route []track.Track

// infiniteBudget is the sentinel an entry's budget starts at, before
// any push tightens it against a line's segment limit.
const infiniteBudget = int(^uint(0) >> 1)

// entry is one in-flight route during breadth-first search.
type entry struct {
	tracks []track.Track
	budget int
}

func newEntry(m *geomap.Map, t track.Track) entry {
	e := entry{budget: infiniteBudget}
	e.pushBack(m, t)
	return e
}

// clone deep-copies the track vector so expanding one successor never
// aliases another sibling entry's history.
func (e entry) clone() entry {
	tracks := make([]track.Track, len(e.tracks))
	copy(tracks, e.tracks)
	e.tracks = tracks
	return e
}

// pushBack appends t, decrements the budget when t's point is a
// station, then tightens the budget against t's line's segment limit.
// The budget never loosens: segmentLimit just folds in via min.
func (e *entry) pushBack(m *geomap.Map, t track.Track) {
	e.tracks = append(e.tracks, t)
	if p, ok := m.Points[t.PointID]; ok && p.IsStation() {
		e.budget--
	}
	if limit := segmentLimit(m.Config, t.LineID); limit < e.budget {
		e.budget = limit
	}
}

// segmentLimit is a line's segmentation length if segmented, else the
// map-wide max_length.
func segmentLimit(cfg geomap.Config, lineID int) int {
	if limit, ok := cfg.SegmentedLines[lineID]; ok {
		return limit
	}
	return cfg.MaxLength
}

// full reports whether e has exhausted its budget.
func (e entry) full() bool {
	return e.budget <= 0
}
