package geomapfixture

import (
	"context"
	"testing"

	"github.com/railmapgen/aarc2rc/geomap"
	"github.com/stretchr/testify/require"
)

// StraightLine builds S1: a single unbranched line of n stations, no
// friend/merged/segmented relations, so Normalize classifies it
// is_simple.
func StraightLine(t testing.TB, n int, opts ...Option) *geomap.Map {
	t.Helper()
	m := geomap.New(1000, 1000)
	for i := 0; i < n; i++ {
		id := i + 1
		m.Points[id] = &geomap.Point{ID: id, Pos: geomap.Position{X: float64(i) * 10}, Role: geomap.Station, Size: 1}
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	m.Lines[1] = &geomap.Line{ID: 1, PointIDs: ids, ParentID: -1}

	apply(m, opts)
	require.NoError(t, m.Normalize(context.Background()))
	return m
}
