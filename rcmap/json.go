package rcmap

import (
	"encoding/json"
	"math"
	"sort"
)

// wireService is a Service as consumers expect it on the wire:
// IsNotLoop is the negation of Service.IsLoop, matching the original
// output contract's naming.
type wireService struct {
	ID        int   `json:"Id"`
	StationID []int `json:"Stas"`
	IsNotLoop bool  `json:"IsNotLoop"`
}

type wireMap struct {
	Stations [][3]int      `json:"Stations"`
	Lines    []wireService `json:"Lines"`
}

// coordScale is the fixed-point multiplier applied to a Station's
// normalized [0,1]-ish coordinates before rounding to an integer.
const coordScale = 10000

// roundAwayFromZero rounds v to the nearest integer, ties away from
// zero. math.Round already implements this rounding rule.
func roundAwayFromZero(v float64) int {
	return int(math.Round(v))
}

// MarshalJSON encodes m as {"Stations": [[id,x,y], ...], "Lines":
// [{"Id":, "Stas":, "IsNotLoop":}, ...]}, both arrays sorted by id for
// a stable, reproducible encoding.
func (m *Map) MarshalJSON() ([]byte, error) {
	stationIDs := make([]int, 0, len(m.Stations))
	for id := range m.Stations {
		stationIDs = append(stationIDs, id)
	}
	sort.Ints(stationIDs)

	w := wireMap{
		Stations: make([][3]int, 0, len(stationIDs)),
	}
	for _, id := range stationIDs {
		s := m.Stations[id]
		w.Stations = append(w.Stations, [3]int{
			s.ID,
			roundAwayFromZero(s.X * coordScale),
			roundAwayFromZero(s.Y * coordScale),
		})
	}

	serviceIDs := make([]int, 0, len(m.Services))
	for id := range m.Services {
		serviceIDs = append(serviceIDs, id)
	}
	sort.Ints(serviceIDs)

	w.Lines = make([]wireService, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		svc := m.Services[id]
		w.Lines = append(w.Lines, wireService{
			ID:        svc.ID,
			StationID: svc.StationIDs,
			IsNotLoop: !svc.IsLoop,
		})
	}

	return json.Marshal(w)
}
