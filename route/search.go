package route

import (
	"context"

	"github.com/railmapgen/aarc2rc/geomap"
	"github.com/railmapgen/aarc2rc/track"
)

// walker encapsulates mutable search state, mirroring the queue/loop
// shape of a breadth-first walker, minus any visited-set: this search
// wants every maximal route, not the shortest one, so revisiting a
// point on a different route is expected, not an error.
type walker struct {
	m       *geomap.Map
	byPoint map[int][]track.Track
	mask    LineMask
	ctx     context.Context
	queue   []entry
	routes  []Route
}

// Search breadth-first-expands every seed route over m's track graph
// until each dead-ends or exhausts its budget, returning one Route per
// dead end. Lines marked IsSimple are never seeded here: a caller
// building full service output emits those directly instead (see
// service.EmitLine). mask restricts the search to the lines it
// allows; pass nil to search the whole map.
func Search(ctx context.Context, m *geomap.Map, byPoint map[int][]track.Track, mask LineMask) ([]Route, error) {
	w := &walker{m: m, byPoint: byPoint, mask: mask, ctx: ctx}
	w.seed()
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.routes, nil
}

// seed pushes one entry per non-simple line end, plus, for a line
// present in SegmentedLines, one forward and one backward entry at
// every interior index that is a multiple of interval =
// SegmentedLines[L] - MaxRCSteps, while the index stays short of the
// line's last point.
func (w *walker) seed() {
	for lineID, l := range w.m.Lines {
		if l.IsSimple || !w.mask.Allows(lineID) {
			continue
		}
		n := len(l.PointIDs)
		if n < 2 {
			continue
		}

		w.queue = append(w.queue, newEntry(w.m, w.resolveSeedTrack(lineID, 0, true)))
		w.queue = append(w.queue, newEntry(w.m, w.resolveSeedTrack(lineID, n-1, false)))

		segLen, segmented := w.m.Config.SegmentedLines[lineID]
		if !segmented {
			continue
		}
		interval := segLen - w.m.Config.MaxRCSteps
		if interval <= 0 {
			continue
		}
		for i := interval; i+1 < n; i += interval {
			w.queue = append(w.queue, newEntry(w.m, w.resolveSeedTrack(lineID, i, true)))
			w.queue = append(w.queue, newEntry(w.m, w.resolveSeedTrack(lineID, i, false)))
		}
	}
}

// resolveSeedTrack finds the actual built Track for lineID at index in
// the given direction, among the point's track list, so a seed carries
// the same Kind (and wrap index) BuildTracks assigned it.
func (w *walker) resolveSeedTrack(lineID, index int, forward bool) track.Track {
	pid := w.m.Lines[lineID].PointIDs[index]
	for _, t := range w.byPoint[pid] {
		if t.LineID == lineID && t.Index == index && t.Forward == forward {
			return t
		}
	}
	return track.Track{PointID: pid, LineID: lineID, Index: index, Forward: forward, Kind: track.Terminal}
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		e := w.queue[0]
		w.queue = w.queue[1:]

		last := e.tracks[len(e.tracks)-1]
		nexts := w.maskedNexts(last)

		if len(nexts) == 0 || e.full() {
			w.routes = append(w.routes, Route(e.tracks))
			continue
		}

		for _, next := range nexts {
			ne := e.clone()
			ne.pushBack(w.m, next)
			w.queue = append(w.queue, ne)
		}
	}
	return nil
}

func (w *walker) maskedNexts(last track.Track) []track.Track {
	all := track.NextTracks(w.m, w.byPoint, last)
	if w.mask == nil {
		return all
	}
	filtered := all[:0]
	for _, t := range all {
		if w.mask.Allows(t.LineID) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
