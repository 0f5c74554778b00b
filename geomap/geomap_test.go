package geomap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stationPoint(id int, x, y float64) *Point {
	return &Point{ID: id, Pos: Position{X: x, Y: y}, Role: Station, Size: 1}
}

func TestJoinStationsNewGroup(t *testing.T) {
	m := New(100, 100)
	m.Points[1] = stationPoint(1, 0, 0)
	m.Points[2] = stationPoint(2, 1, 1)

	m.JoinStations(2, 1)

	gid, ok := m.GroupOf(1)
	require.True(t, ok)
	assert.Equal(t, 1, gid, "group id must be the smallest member station id")
	gid2, ok := m.GroupOf(2)
	require.True(t, ok)
	assert.Equal(t, gid, gid2)
	assert.ElementsMatch(t, []int{1, 2}, m.Groups[1].StationIDs)
}

func TestJoinStationsMergesTwoGroups(t *testing.T) {
	m := New(100, 100)
	for _, id := range []int{1, 2, 3, 4} {
		m.Points[id] = stationPoint(id, float64(id), 0)
	}
	m.JoinStations(1, 2)
	m.JoinStations(3, 4)

	m.JoinStations(2, 3)

	gid, _ := m.GroupOf(1)
	assert.Equal(t, 1, gid, "merged group keeps the smaller of the two original ids")
	for _, id := range []int{1, 2, 3, 4} {
		g, ok := m.GroupOf(id)
		require.True(t, ok)
		assert.Equal(t, 1, g)
	}
	_, stillExists := m.Groups[3]
	assert.False(t, stillExists, "the absorbed group must be removed")
}

func TestJoinStationsSelfIsNoop(t *testing.T) {
	m := New(100, 100)
	m.Points[1] = stationPoint(1, 0, 0)
	m.JoinStations(1, 1)
	_, ok := m.GroupOf(1)
	assert.False(t, ok)
}

func TestAutoGroupByDistance(t *testing.T) {
	m := New(100, 100)
	m.Points[1] = stationPoint(1, 0, 0)
	m.Points[2] = stationPoint(2, 10, 0) // within default AutoGroupDistance=25
	m.Points[3] = stationPoint(3, 500, 500)

	m.AutoGroup()

	g1, ok := m.GroupOf(1)
	require.True(t, ok)
	g2, ok := m.GroupOf(2)
	require.True(t, ok)
	assert.Equal(t, g1, g2)
	_, grouped := m.GroupOf(3)
	assert.False(t, grouped, "a far-away station must not be grouped")
}

func TestConnectCommonParents(t *testing.T) {
	m := New(100, 100)
	m.Points[1] = stationPoint(1, 0, 0)
	m.Points[2] = stationPoint(2, 1, 0)
	m.Points[3] = stationPoint(3, 2, 0)
	m.Lines[10] = &Line{ID: 10, PointIDs: []int{1, 2}, ParentID: 1}
	m.Lines[11] = &Line{ID: 11, PointIDs: []int{2, 3}, ParentID: 1}
	m.Lines[12] = &Line{ID: 12, PointIDs: []int{1, 3}, ParentID: -1}

	m.ConnectCommonParents()

	assert.True(t, m.Config.IsFriend(10, 11))
	assert.True(t, m.Config.IsFriend(11, 10))
	assert.False(t, m.Config.IsFriend(10, 12))
}

func TestNormalizeDetectsLoopPeriod(t *testing.T) {
	m := New(100, 100)
	for _, id := range []int{1, 2, 3} {
		m.Points[id] = stationPoint(id, float64(id), 0)
	}
	// drawn as 1,2,3,1,2: no first-equals-last marker, but the sequence
	// repeats with period 3, so the trailing partial repeat is dropped
	m.Lines[1] = &Line{ID: 1, PointIDs: []int{1, 2, 3, 1, 2}, ParentID: -1}

	require.NoError(t, m.Normalize(context.Background()))

	l := m.Lines[1]
	assert.True(t, l.IsLoop)
	assert.Equal(t, []int{1, 2, 3, 1}, l.PointIDs)
}

func TestNormalizeFloorsSegmentationLength(t *testing.T) {
	m := New(100, 100)
	m.Points[1] = stationPoint(1, 0, 0)
	m.Points[2] = stationPoint(2, 1, 0)
	m.Lines[1] = &Line{ID: 1, PointIDs: []int{1, 2}, ParentID: -1}
	m.Config.MaxRCSteps = 16
	m.Config.SegmentedLines[1] = 5 // below the floor

	require.NoError(t, m.Normalize(context.Background()))

	assert.Equal(t, 17, m.Config.SegmentedLines[1])
}

func TestNormalizeLeavesNegativeSegmentationKeyUntouched(t *testing.T) {
	m := New(100, 100)
	m.Points[1] = stationPoint(1, 0, 0)
	m.Points[2] = stationPoint(2, 1, 0)
	m.Lines[1] = &Line{ID: 1, PointIDs: []int{1, 2}, ParentID: -1}
	m.Config.SegmentedLines[1] = -1

	require.NoError(t, m.Normalize(context.Background()))

	assert.Equal(t, -1, m.Config.SegmentedLines[1])
}

func TestNormalizeClassifiesSimpleLines(t *testing.T) {
	m := New(100, 100)
	for _, id := range []int{1, 2, 3} {
		m.Points[id] = stationPoint(id, float64(id), 0)
	}
	m.Lines[1] = &Line{ID: 1, PointIDs: []int{1, 2, 3}, ParentID: -1}   // plain, simple
	m.Lines[2] = &Line{ID: 2, PointIDs: []int{1, 2, 3}, ParentID: -1}   // will be given a friend
	m.Config.FriendLines[LinePair{A: 2, B: 3}] = struct{}{}
	m.Lines[3] = &Line{ID: 3, PointIDs: []int{3, 1, 2}, ParentID: -1}
	m.Lines[4] = &Line{ID: 4, PointIDs: []int{1, 2, 1, 3}, ParentID: -1} // repeated station 1

	require.NoError(t, m.Normalize(context.Background()))

	assert.True(t, m.Lines[1].IsSimple)
	assert.False(t, m.Lines[2].IsSimple, "a line with a friend relation is never simple")
	assert.False(t, m.Lines[4].IsSimple, "a line with a repeated station is never simple")
}

func TestNormalizeDropsShortLineButKeepsOthers(t *testing.T) {
	m := New(100, 100)
	m.Points[1] = stationPoint(1, 0, 0)
	m.Points[2] = stationPoint(2, 1, 0)
	m.Points[3] = stationPoint(3, 2, 0)
	m.Lines[1] = &Line{ID: 1, PointIDs: []int{1}, ParentID: -1} // malformed: fewer than 2 points
	m.Lines[2] = &Line{ID: 2, PointIDs: []int{2, 3}, ParentID: -1}

	require.NoError(t, m.Normalize(context.Background()))

	_, stillPresent := m.Lines[1]
	assert.False(t, stillPresent, "a line with fewer than 2 points is dropped, not fatal")
	_, ok := m.Lines[2]
	assert.True(t, ok, "a malformed line must not abort normalization of the rest of the map")
}

func TestNormalizeDropsUnknownPointLineButKeepsOthers(t *testing.T) {
	m := New(100, 100)
	m.Points[1] = stationPoint(1, 0, 0)
	m.Points[2] = stationPoint(2, 1, 0)
	m.Points[3] = stationPoint(3, 2, 0)
	m.Lines[1] = &Line{ID: 1, PointIDs: []int{1, 99}, ParentID: -1} // malformed: references unknown point 99
	m.Lines[2] = &Line{ID: 2, PointIDs: []int{2, 3}, ParentID: -1}

	require.NoError(t, m.Normalize(context.Background()))

	_, stillPresent := m.Lines[1]
	assert.False(t, stillPresent, "a line referencing an unknown point id is dropped, not fatal")
	_, ok := m.Lines[2]
	assert.True(t, ok, "a malformed line must not abort normalization of the rest of the map")
}

func TestApplyLinkConnect(t *testing.T) {
	m := New(100, 100)
	m.Points[1] = stationPoint(1, 0, 0)
	m.Points[2] = stationPoint(2, 1, 0)
	m.Config.LinkModes[ThickLine] = Connect

	id, ok := m.ApplyLink(ThickLine, 1, 2, 50)
	require.True(t, ok)
	assert.Equal(t, 50, id)
	assert.Equal(t, []int{1, 2}, m.Lines[50].PointIDs)
}

func TestApplyLinkGroup(t *testing.T) {
	m := New(100, 100)
	m.Points[1] = stationPoint(1, 0, 0)
	m.Points[2] = stationPoint(2, 1, 0)
	m.Config.LinkModes[LinkGroup] = GroupMode

	_, ok := m.ApplyLink(LinkGroup, 1, 2, 50)
	assert.False(t, ok, "Group mode never consumes a new line id")
	g1, _ := m.GroupOf(1)
	g2, _ := m.GroupOf(2)
	assert.Equal(t, g1, g2)
}

func TestApplyLinkNone(t *testing.T) {
	m := New(100, 100)
	m.Config.LinkModes[DottedLine1] = None

	_, ok := m.ApplyLink(DottedLine1, 1, 2, 50)
	assert.False(t, ok)
	_, exists := m.Lines[50]
	assert.False(t, exists)
}

func TestGroupPositionIsCentroid(t *testing.T) {
	m := New(100, 100)
	m.Points[1] = stationPoint(1, 0, 0)
	m.Points[2] = stationPoint(2, 10, 0)
	m.JoinStations(1, 2)

	pos := m.GroupPosition(1)
	assert.InDelta(t, 5, pos.X, epsilon)
	assert.InDelta(t, 0, pos.Y, epsilon)
}
