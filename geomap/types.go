package geomap

import "errors"

// Sentinel errors for geomap operations. Callers branch with errors.Is;
// these are never wrapped with formatted text at their definition site
// (wrap with %w at the call site instead), following the sentinel
// convention used throughout the reference pack's algorithm packages.
var (
	// ErrUnknownPoint indicates a line references a point id absent
	// from the Map's point table. The offending line is skipped, not
	// the whole conversion.
	ErrUnknownPoint = errors.New("geomap: point id not found")

	// ErrShortLine indicates a line has fewer than 2 points. The line
	// is skipped.
	ErrShortLine = errors.New("geomap: line has fewer than 2 points")

	// ErrUnknownGroup indicates a group id absent from the Map's group
	// table was requested.
	ErrUnknownGroup = errors.New("geomap: group id not found")
)

// Direction is a point's directional style, used by the (out-of-scope)
// auxiliary-point insertion stage and otherwise carried through
// unchanged by this module.
type Direction int

const (
	Orthogonal Direction = iota
	Diagonal
)

// Role distinguishes geometric waypoints from stations that participate
// in the RC output.
type Role int

const (
	Node Role = iota
	Station
)

// Point is a single vertex of the geometric map.
type Point struct {
	ID       int
	Pos      Position
	Dir      Direction
	Role     Role
	Size     float64 // size weight; scales AutoGroupDistance
}

// IsStation reports whether p participates in the RC output.
func (p *Point) IsStation() bool {
	return p.Role == Station
}

// Line is an ordered polyline of point ids.
type Line struct {
	ID       int
	PointIDs []int
	IsLoop   bool
	ParentID int // -1 if none

	// IsSimple is computed by Map.Normalize: true when the line has no
	// segmentation entry, participates in no friend/merged pair, and
	// has no repeated station (ignoring a loop's duplicated last
	// point). Simple lines skip route search entirely and are emitted
	// as a single end-to-end service.
	IsSimple bool
}

// StationGroup is a set of station point ids treated as a single
// logical station. Its id is always the smallest member station id;
// implementations must not store this id redundantly inside member
// points — use Map.PointToGroup for the point -> group lookup instead.
type StationGroup struct {
	ID          int
	StationIDs  []int
}

// LinePair is a symmetric ordered pair of line ids used as a set key
// for FriendLines and MergedLines.
type LinePair struct {
	A, B int
}

// LinkType enumerates the kinds of point-to-point link annotations the
// AARC document may carry.
type LinkType int

const (
	ThickLine LinkType = iota
	ThinLine
	DottedLine1
	DottedLine2
	LinkGroup
)

// LinkMode is the action a LinkType resolves to.
type LinkMode int

const (
	// Connect synthesizes a new two-point line between the linked
	// points.
	Connect LinkMode = iota
	// GroupMode merges the linked points' stations into one group.
	GroupMode
	// None drops the link entirely.
	None
)

// Config holds the tunable options governing conversion. Zero-value
// Config is invalid; use DefaultConfig to obtain sane defaults, then
// override individual fields.
type Config struct {
	MaxLength                  int
	MaxRCSteps                 int
	AutoGroupDistance          float64
	MergeConsecutiveDuplicates bool
	OptimizeSegmentation       bool
	MaxIterations              int

	LinkModes map[LinkType]LinkMode

	// FriendLines and MergedLines are symmetric: (a,b) present implies
	// (b,a) present.
	FriendLines map[LinePair]struct{}
	MergedLines map[LinePair]struct{}

	// SegmentedLines maps line id to its segmentation length. A
	// negative value is a group key for the optimizer: lines sharing
	// the same negative key are tuned together. Map.Normalize leaves
	// negative values untouched; optimize.Tune replaces them with
	// 2*MaxRCSteps when it starts. When OptimizeSegmentation is off a
	// negative value stays in place and route search uses it as the
	// line's segment limit, which ends a route as soon as it reaches
	// that line.
	SegmentedLines map[int]int
}

// DefaultConfig returns the documented default Config.
func DefaultConfig() Config {
	return Config{
		MaxLength:                  128,
		MaxRCSteps:                 16,
		AutoGroupDistance:          25,
		MergeConsecutiveDuplicates: true,
		OptimizeSegmentation:       false,
		MaxIterations:              4,
		LinkModes: map[LinkType]LinkMode{
			ThickLine:   Connect,
			ThinLine:    Connect,
			DottedLine1: None,
			DottedLine2: None,
			LinkGroup:   GroupMode,
		},
		FriendLines:    map[LinePair]struct{}{},
		MergedLines:    map[LinePair]struct{}{},
		SegmentedLines: map[int]int{},
	}
}

// IsFriend reports whether lines a and b may continue into each other
// via the non-reflex-turn rule.
func (c Config) IsFriend(a, b int) bool {
	_, ok := c.FriendLines[LinePair{A: a, B: b}]
	return ok
}

// IsMerged reports whether lines a and b through-run unconditionally.
func (c Config) IsMerged(a, b int) bool {
	_, ok := c.MergedLines[LinePair{A: a, B: b}]
	return ok
}

// connectLines records a symmetric friend-line pair. A line is never
// connected to itself.
func connectLines(c *Config, a, b int) {
	if a == b {
		return
	}
	c.FriendLines[LinePair{A: a, B: b}] = struct{}{}
	c.FriendLines[LinePair{A: b, B: a}] = struct{}{}
}

// mergeLines records a symmetric merged-line pair. A line is never
// merged with itself.
func mergeLines(c *Config, a, b int) {
	if a == b {
		return
	}
	c.MergedLines[LinePair{A: a, B: b}] = struct{}{}
	c.MergedLines[LinePair{A: b, B: a}] = struct{}{}
}

// Map is the geometric input model: canvas dimensions, points, lines,
// station groups, and the governing Config. A Map is read-only for the
// lifetime of a single Convert call, except that optimize.Tune rewrites
// Config.SegmentedLines in place when Config.OptimizeSegmentation is
// set; callers share one Map across goroutines only if none of them
// mutate it concurrently with reads.
type Map struct {
	Width, Height float64

	Points map[int]*Point
	Lines  map[int]*Line

	Groups       map[int]*StationGroup
	PointToGroup map[int]int // point id -> group id

	Config Config
}

// New returns an empty Map with the given canvas size and the default
// Config. Callers populate Points/Lines directly, then call Normalize.
func New(width, height float64) *Map {
	return &Map{
		Width:        width,
		Height:       height,
		Points:       map[int]*Point{},
		Lines:        map[int]*Line{},
		Groups:       map[int]*StationGroup{},
		PointToGroup: map[int]int{},
		Config:       DefaultConfig(),
	}
}

// GroupOf returns the group id owning point id, and whether it belongs
// to a group at all.
func (m *Map) GroupOf(pointID int) (int, bool) {
	gid, ok := m.PointToGroup[pointID]
	return gid, ok
}

// EmitID returns the station id a track visiting point pid should emit:
// the owning group id if grouped, else the point's own id.
func (m *Map) EmitID(pid int) int {
	if gid, ok := m.PointToGroup[pid]; ok {
		return gid
	}
	return pid
}

// GroupPosition returns the arithmetic mean position of a group's
// member stations. Returns the zero Position for an unknown or empty
// group (mirrors the source converter's defensive behavior).
func (m *Map) GroupPosition(groupID int) Position {
	g, ok := m.Groups[groupID]
	if !ok || len(g.StationIDs) == 0 {
		return Position{}
	}
	var sum Position
	count := 0
	for _, sid := range g.StationIDs {
		if p, ok := m.Points[sid]; ok {
			sum = sum.Add(p.Pos)
			count++
		}
	}
	if count == 0 {
		return Position{}
	}
	return sum.Div(float64(count))
}

// NormalizedPosition divides pos component-wise by the canvas size,
// producing the [0,1]-ish coordinates the RC output wire format uses.
func (m *Map) NormalizedPosition(pos Position) Position {
	return Position{X: pos.X / m.Width, Y: pos.Y / m.Height}
}
