package rcmap

// Station is a single stop at a normalized position: X and Y are
// expected to fall roughly within [0,1], one unit being the full
// canvas width/height of the source geomap.Map.
type Station struct {
	ID int
	X  float64
	Y  float64
}

// Service is one emitted route: an ordered station-id sequence and
// whether it is a loop. convert.Convert sets IsLoop only for a service
// emitted directly from a loop line on the is_simple fast path.
type Service struct {
	ID         int
	StationIDs []int
	IsLoop     bool
}

// Map is the complete converted output.
type Map struct {
	Stations map[int]Station
	Services map[int]Service
}

// New returns an empty Map.
func New() *Map {
	return &Map{
		Stations: map[int]Station{},
		Services: map[int]Service{},
	}
}
