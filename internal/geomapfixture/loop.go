package geomapfixture

import (
	"context"
	"math"
	"testing"

	"github.com/railmapgen/aarc2rc/geomap"
	"github.com/stretchr/testify/require"
)

// Loop builds S2: a single loop of n stations, first point id repeated
// as the closing point, no friend/merged/segmented relations, so
// Normalize classifies it is_simple with IsLoop set.
func Loop(t testing.TB, n int, opts ...Option) *geomap.Map {
	t.Helper()
	m := geomap.New(1000, 1000)
	for i := 0; i < n; i++ {
		id := i + 1
		angle := 2 * math.Pi * float64(i) / float64(n)
		m.Points[id] = &geomap.Point{
			ID:   id,
			Pos:  geomap.Position{X: 500 + 400*math.Cos(angle), Y: 500 + 400*math.Sin(angle)},
			Role: geomap.Station,
			Size: 1,
		}
	}
	ids := make([]int, 0, n+1)
	for i := 0; i < n; i++ {
		ids = append(ids, i+1)
	}
	ids = append(ids, 1) // close the loop
	m.Lines[1] = &geomap.Line{ID: 1, PointIDs: ids, ParentID: -1}

	apply(m, opts)
	require.NoError(t, m.Normalize(context.Background()))
	return m
}
