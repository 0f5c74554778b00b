package rcmap

import (
	"encoding/json"
	"testing"

	"github.com/railmapgen/aarc2rc/geomap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializeGroupedStationUsesCentroid(t *testing.T) {
	m := geomap.New(100, 100)
	m.Points[1] = &geomap.Point{ID: 1, Pos: geomap.Position{X: 0, Y: 0}, Role: geomap.Station, Size: 1}
	m.Points[2] = &geomap.Point{ID: 2, Pos: geomap.Position{X: 10, Y: 0}, Role: geomap.Station, Size: 1}
	m.JoinStations(1, 2)

	stations := Materialize(m)
	require.Contains(t, stations, 1)
	assert.InDelta(t, 0.05, stations[1].X, 1e-9)
	_, ungroupedAlsoPresent := stations[2]
	assert.False(t, ungroupedAlsoPresent, "a grouped member station must not also appear standalone")
}

func TestMaterializeUngroupedStation(t *testing.T) {
	m := geomap.New(100, 100)
	m.Points[1] = &geomap.Point{ID: 1, Pos: geomap.Position{X: 50, Y: 25}, Role: geomap.Station, Size: 1}

	stations := Materialize(m)
	require.Contains(t, stations, 1)
	assert.InDelta(t, 0.5, stations[1].X, 1e-9)
	assert.InDelta(t, 0.25, stations[1].Y, 1e-9)
}

func TestMaterializeSkipsNonStationPoints(t *testing.T) {
	m := geomap.New(100, 100)
	m.Points[1] = &geomap.Point{ID: 1, Pos: geomap.Position{X: 50, Y: 25}, Role: geomap.Node}

	stations := Materialize(m)
	assert.NotContains(t, stations, 1)
}

func TestMarshalJSONShape(t *testing.T) {
	rc := New()
	rc.Stations[5] = Station{ID: 5, X: 0.5, Y: 0.25}
	rc.Services[1] = Service{ID: 1, StationIDs: []int{5, 6}, IsLoop: false}

	out, err := json.Marshal(rc)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))

	stations := decoded["Stations"].([]interface{})
	require.Len(t, stations, 1)
	station := stations[0].([]interface{})
	assert.Equal(t, float64(5), station[0])
	assert.Equal(t, float64(5000), station[1])
	assert.Equal(t, float64(2500), station[2])

	lines := decoded["Lines"].([]interface{})
	require.Len(t, lines, 1)
	line := lines[0].(map[string]interface{})
	assert.Equal(t, true, line["IsNotLoop"])
}

func TestRoundAwayFromZero(t *testing.T) {
	assert.Equal(t, 1, roundAwayFromZero(0.5))
	assert.Equal(t, -1, roundAwayFromZero(-0.5))
	assert.Equal(t, 2, roundAwayFromZero(1.5))
}
