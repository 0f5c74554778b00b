package geomapfixture

import (
	"context"
	"testing"

	"github.com/railmapgen/aarc2rc/geomap"
	"github.com/stretchr/testify/require"
)

// YShape builds S3: L1 runs A(1)-B(2)-C(3), L2 runs D(4)-B(2)-E(5), B is
// a shared Node (not a Station), A/C/D/E are Stations, and L1/L2 are
// marked as a symmetric friend pair so a route may cross from one line
// onto the other through B.
func YShape(t testing.TB, opts ...Option) *geomap.Map {
	t.Helper()
	m := geomap.New(1000, 1000)
	m.Points[1] = &geomap.Point{ID: 1, Pos: geomap.Position{X: 490, Y: 500}, Role: geomap.Station, Size: 1}
	m.Points[2] = &geomap.Point{ID: 2, Pos: geomap.Position{X: 500, Y: 500}, Role: geomap.Node, Size: 1}
	m.Points[3] = &geomap.Point{ID: 3, Pos: geomap.Position{X: 510, Y: 500}, Role: geomap.Station, Size: 1}
	m.Points[4] = &geomap.Point{ID: 4, Pos: geomap.Position{X: 500, Y: 490}, Role: geomap.Station, Size: 1}
	m.Points[5] = &geomap.Point{ID: 5, Pos: geomap.Position{X: 500, Y: 510}, Role: geomap.Station, Size: 1}
	m.Lines[1] = &geomap.Line{ID: 1, PointIDs: []int{1, 2, 3}, ParentID: -1}
	m.Lines[2] = &geomap.Line{ID: 2, PointIDs: []int{4, 2, 5}, ParentID: -1}
	m.Config.FriendLines[geomap.LinePair{A: 1, B: 2}] = struct{}{}
	m.Config.FriendLines[geomap.LinePair{A: 2, B: 1}] = struct{}{}

	apply(m, opts)
	require.NoError(t, m.Normalize(context.Background()))
	return m
}
