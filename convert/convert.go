package convert

import (
	"context"
	"sort"

	"github.com/railmapgen/aarc2rc/geomap"
	"github.com/railmapgen/aarc2rc/optimize"
	"github.com/railmapgen/aarc2rc/rcmap"
	"github.com/railmapgen/aarc2rc/route"
	"github.com/railmapgen/aarc2rc/service"
	"github.com/railmapgen/aarc2rc/track"
)

// Convert runs the full pipeline over m and returns the resulting
// rcmap.Map. m must already be normalized (m.Normalize returned nil);
// Convert does not call it. m is never mutated except for
// m.Config.SegmentedLines, which optimize.Tune may rewrite in place
// when m.Config.OptimizeSegmentation is set.
func Convert(ctx context.Context, m *geomap.Map, opts ...Option) (*rcmap.Map, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	byPoint := track.BuildTracks(m)

	if m.Config.OptimizeSegmentation {
		count := func(ctx context.Context, mask route.LineMask) (int, error) {
			seqs, err := searchSequences(ctx, m, byPoint, mask)
			if err != nil {
				return 0, err
			}
			return len(service.Prune(seqs)), nil
		}
		if err := optimize.Tune(ctx, m, count); err != nil {
			return nil, err
		}
	}

	raw, lineOf, err := allSequences(ctx, m, byPoint)
	if err != nil {
		return nil, err
	}

	// Ids are assigned once, in emit order, before pruning; pruning only
	// removes entries, it never renumbers survivors — so the final id
	// set is dense before pruning and typically sparse after. Ids are
	// opaque to consumers, so this is fine.
	pruned := service.Prune(raw)
	sort.Slice(pruned, func(i, j int) bool { return pruned[i].ID < pruned[j].ID })

	out := rcmap.New()
	out.Stations = rcmap.Materialize(m)
	for _, seq := range pruned {
		isLoop := false
		if lineID := lineOf[seq.ID]; lineID >= 0 {
			isLoop = m.Lines[lineID].IsLoop
		}
		out.Services[seq.ID] = rcmap.Service{ID: seq.ID, StationIDs: seq.StationIDs, IsLoop: isLoop}
		if o.onLineEmitted != nil {
			o.onLineEmitted(lineOf[seq.ID], seq.ID)
		}
	}

	return out, nil
}

// allSequences emits every service over the whole map: is_simple lines
// directly, every other line's contribution via a single map-wide
// route.Search pass, whose sequences are sorted by station ids before
// numbering since Search's route order is not stable. lineOf maps each
// sequence's pre-prune id back to the source line id that produced it
// (-1 for a searched route), for WithOnLineEmitted and the IsLoop flag.
func allSequences(ctx context.Context, m *geomap.Map, byPoint map[int][]track.Track) (seqs []service.Sequence, lineOf map[int]int, err error) {
	lineOf = map[int]int{}
	nextID := 1

	lineIDs := make([]int, 0, len(m.Lines))
	for id := range m.Lines {
		lineIDs = append(lineIDs, id)
	}
	sort.Ints(lineIDs)

	for _, lineID := range lineIDs {
		l := m.Lines[lineID]
		if !l.IsSimple {
			continue
		}
		if stationIDs, ok := service.EmitLine(m, l); ok {
			seqs = append(seqs, service.Sequence{ID: nextID, StationIDs: stationIDs})
			lineOf[nextID] = lineID
			nextID++
		}
	}

	searched, err := searchSequences(ctx, m, byPoint, nil)
	if err != nil {
		return nil, nil, err
	}
	sort.Slice(searched, func(i, j int) bool {
		a, b := searched[i].StationIDs, searched[j].StationIDs
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
	for _, seq := range searched {
		id := nextID
		nextID++
		lineOf[id] = -1
		seqs = append(seqs, service.Sequence{ID: id, StationIDs: seq.StationIDs})
	}

	return seqs, lineOf, nil
}

// searchSequences runs route.Search under mask and converts every
// resulting route to a station sequence, numbering them from 1 for the
// caller to renumber.
func searchSequences(ctx context.Context, m *geomap.Map, byPoint map[int][]track.Track, mask route.LineMask) ([]service.Sequence, error) {
	routes, err := route.Search(ctx, m, byPoint, mask)
	if err != nil {
		return nil, err
	}
	seqs := make([]service.Sequence, 0, len(routes))
	for i, r := range routes {
		if stationIDs, ok := service.Emit(m, r); ok {
			seqs = append(seqs, service.Sequence{ID: i + 1, StationIDs: stationIDs})
		}
	}
	return seqs, nil
}
