package geomapfixture

import (
	"context"
	"testing"

	"github.com/railmapgen/aarc2rc/geomap"
	"github.com/stretchr/testify/require"
)

// Segmented builds S6: a single unbranched line of 100 stations with a
// segmentation entry of length 20, keeping it off the is_simple fast
// path so Search walks it in overlapping windows whose union must
// still cover every consecutive station pair once pruned.
func Segmented(t testing.TB, opts ...Option) *geomap.Map {
	t.Helper()
	const n = 100
	m := geomap.New(10000, 1000)
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = i + 1
		m.Points[ids[i]] = &geomap.Point{ID: ids[i], Pos: geomap.Position{X: float64(i) * 10}, Role: geomap.Station, Size: 1}
	}
	m.Lines[1] = &geomap.Line{ID: 1, PointIDs: ids, ParentID: -1}
	m.Config.SegmentedLines[1] = 20

	apply(m, opts)
	require.NoError(t, m.Normalize(context.Background()))
	return m
}
