package route

import (
	"context"
	"testing"

	"github.com/railmapgen/aarc2rc/geomap"
	"github.com/railmapgen/aarc2rc/track"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// segmentedLine builds a single unbranched line of n stations with a
// segmentation entry, which keeps it off the is_simple fast path so
// Search actually walks it.
func segmentedLine(t *testing.T, n, maxRCSteps, segLen int) (*geomap.Map, map[int][]track.Track) {
	t.Helper()
	m := geomap.New(1000, 1000)
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = i + 1
		m.Points[ids[i]] = &geomap.Point{ID: ids[i], Pos: geomap.Position{X: float64(i) * 10}, Role: geomap.Station, Size: 1}
	}
	m.Lines[1] = &geomap.Line{ID: 1, PointIDs: ids, ParentID: -1}
	m.Config.MaxRCSteps = maxRCSteps
	m.Config.SegmentedLines[1] = segLen
	require.NoError(t, m.Normalize(context.Background()))
	return m, track.BuildTracks(m)
}

func endpoints(r Route) (int, int) {
	return r[0].PointID, r[len(r)-1].PointID
}

func TestSearchSkipsSimpleLines(t *testing.T) {
	m := geomap.New(1000, 1000)
	for _, id := range []int{1, 2, 3} {
		m.Points[id] = &geomap.Point{ID: id, Pos: geomap.Position{X: float64(id) * 10}, Role: geomap.Station, Size: 1}
	}
	m.Lines[1] = &geomap.Line{ID: 1, PointIDs: []int{1, 2, 3}, ParentID: -1}
	require.NoError(t, m.Normalize(context.Background()))
	require.True(t, m.Lines[1].IsSimple)

	routes, err := Search(context.Background(), m, track.BuildTracks(m), nil)
	require.NoError(t, err)
	assert.Empty(t, routes, "a simple line is never seeded; it is emitted directly by the caller")
}

func TestSearchSegmentedLineBudgetBoundsRouteLength(t *testing.T) {
	m, byPoint := segmentedLine(t, 50, 4, 10) // interval = segLen - maxRCSteps = 6
	require.False(t, m.Lines[1].IsSimple, "a segmented line is never simple")

	routes, err := Search(context.Background(), m, byPoint, nil)
	require.NoError(t, err)
	require.NotEmpty(t, routes)
	for _, r := range routes {
		stations := 0
		for _, tr := range r {
			if m.Points[tr.PointID].IsStation() {
				stations++
			}
		}
		// The first pushed station sets the budget to segLen itself (the
		// decrement that counted it is overwritten by the min-tighten), so
		// a route can carry one more station than the raw segment length.
		assert.LessOrEqual(t, stations, 11)
	}
}

func TestSearchSegmentedLineSeedsInteriorPoints(t *testing.T) {
	m, byPoint := segmentedLine(t, 50, 4, 10) // interval = 6

	routes, err := Search(context.Background(), m, byPoint, nil)
	require.NoError(t, err)

	var sawInteriorSeed bool
	for _, r := range routes {
		a, _ := endpoints(r)
		if a != 1 && a != 50 {
			sawInteriorSeed = true
		}
	}
	assert.True(t, sawInteriorSeed, "a segmented line seeds routes starting at interior points too")
}

func TestSearchRespectsMask(t *testing.T) {
	m, byPoint := segmentedLine(t, 20, 2, 5) // interval = 3
	m.Lines[2] = &geomap.Line{ID: 2, PointIDs: []int{1, 2}, ParentID: -1}

	routes, err := Search(context.Background(), m, byPoint, LineMask{1: true})
	require.NoError(t, err)
	for _, r := range routes {
		for _, tr := range r {
			assert.Equal(t, 1, tr.LineID)
		}
	}
}

func TestSearchFriendLineYShapeCrossesOver(t *testing.T) {
	// L1: A(1)-B(2)-C(3), L2: D(4)-B(2)-E(5), B is a node, others stations.
	m := geomap.New(1000, 1000)
	m.Points[1] = &geomap.Point{ID: 1, Pos: geomap.Position{X: -10, Y: 0}, Role: geomap.Station, Size: 1}
	m.Points[2] = &geomap.Point{ID: 2, Pos: geomap.Position{X: 0, Y: 0}, Role: geomap.Node, Size: 1}
	m.Points[3] = &geomap.Point{ID: 3, Pos: geomap.Position{X: 10, Y: 0}, Role: geomap.Station, Size: 1}
	m.Points[4] = &geomap.Point{ID: 4, Pos: geomap.Position{X: 0, Y: -10}, Role: geomap.Station, Size: 1}
	m.Points[5] = &geomap.Point{ID: 5, Pos: geomap.Position{X: 0, Y: 10}, Role: geomap.Station, Size: 1}
	m.Lines[1] = &geomap.Line{ID: 1, PointIDs: []int{1, 2, 3}, ParentID: -1}
	m.Lines[2] = &geomap.Line{ID: 2, PointIDs: []int{4, 2, 5}, ParentID: -1}
	m.Config.FriendLines[geomap.LinePair{A: 1, B: 2}] = struct{}{}
	m.Config.FriendLines[geomap.LinePair{A: 2, B: 1}] = struct{}{}
	require.NoError(t, m.Normalize(context.Background()))
	require.False(t, m.Lines[1].IsSimple)

	routes, err := Search(context.Background(), m, track.BuildTracks(m), nil)
	require.NoError(t, err)

	seen := map[[2]int]bool{}
	for _, r := range routes {
		a, b := endpoints(r)
		seen[[2]int{a, b}] = true
	}
	assert.True(t, seen[[2]int{1, 3}] || seen[[2]int{3, 1}], "same-line A-C route must still appear")
	assert.True(t, seen[[2]int{4, 5}] || seen[[2]int{5, 4}], "same-line D-E route must still appear")
	assert.True(t, seen[[2]int{1, 5}] || seen[[2]int{5, 1}], "friend-line cross-over A-E route must appear")
}

func TestSearchRespectsContextCancellation(t *testing.T) {
	m, byPoint := segmentedLine(t, 20, 2, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Search(ctx, m, byPoint, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
