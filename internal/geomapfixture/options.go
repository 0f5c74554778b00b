package geomapfixture

import "github.com/railmapgen/aarc2rc/geomap"

// Option tweaks a fixture's Config after its topology is built but
// before Normalize runs.
type Option func(*geomap.Map)

// WithAutoGroupDistance overrides the fixture's auto-grouping
// threshold.
func WithAutoGroupDistance(d float64) Option {
	return func(m *geomap.Map) {
		m.Config.AutoGroupDistance = d
	}
}

// WithMaxRCSteps overrides the fixture's max_rc_steps.
func WithMaxRCSteps(n int) Option {
	return func(m *geomap.Map) {
		m.Config.MaxRCSteps = n
	}
}

// WithMaxLength overrides the fixture's max_length.
func WithMaxLength(n int) Option {
	return func(m *geomap.Map) {
		m.Config.MaxLength = n
	}
}

// WithSegmentLength marks lineID as segmented with the given length.
func WithSegmentLength(lineID, length int) Option {
	return func(m *geomap.Map) {
		m.Config.SegmentedLines[lineID] = length
	}
}

func apply(m *geomap.Map, opts []Option) {
	for _, opt := range opts {
		opt(m)
	}
}
