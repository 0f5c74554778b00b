package geomapfixture

import (
	"context"
	"testing"

	"github.com/railmapgen/aarc2rc/geomap"
	"github.com/stretchr/testify/require"
)

// Group builds S5: a single line A(1)-S1(2)-S2(3)-B(4) where S1 and S2
// sit within AutoGroupDistance of each other, so AutoGroup merges them
// into one station group before Normalize classifies the line. The
// line is otherwise unbranched and un-segmented, so it still takes the
// is_simple fast path; the emitted sequence must collapse the S1/S2
// pair into a single consecutive group id rather than repeating it.
func Group(t testing.TB, opts ...Option) *geomap.Map {
	t.Helper()
	m := geomap.New(1000, 1000)
	m.Points[1] = &geomap.Point{ID: 1, Pos: geomap.Position{X: 470, Y: 500}, Role: geomap.Station, Size: 1}
	m.Points[2] = &geomap.Point{ID: 2, Pos: geomap.Position{X: 500, Y: 500}, Role: geomap.Station, Size: 1}
	m.Points[3] = &geomap.Point{ID: 3, Pos: geomap.Position{X: 505, Y: 500}, Role: geomap.Station, Size: 1}
	m.Points[4] = &geomap.Point{ID: 4, Pos: geomap.Position{X: 540, Y: 500}, Role: geomap.Station, Size: 1}
	m.Lines[1] = &geomap.Line{ID: 1, PointIDs: []int{1, 2, 3, 4}, ParentID: -1}

	apply(m, opts)
	m.AutoGroup()
	require.NoError(t, m.Normalize(context.Background()))
	return m
}
