package geomap

import (
	"context"
	"fmt"
	"sort"

	"github.com/railmapgen/aarc2rc/internal/obslog"
)

// JoinStations merges the groups owning s1 and s2 into one, creating a
// new group if neither station is grouped yet. The merged group's id
// is always the smallest member station id (never the id of whichever
// group happened to absorb the other), matching the deterministic
// grouping behavior of geometry.cc's join_stations.
func (m *Map) JoinStations(s1, s2 int) {
	if s1 == s2 {
		return
	}
	g1, ok1 := m.PointToGroup[s1]
	g2, ok2 := m.PointToGroup[s2]

	switch {
	case ok1 && ok2:
		if g1 == g2 {
			return
		}
		m.mergeGroups(g1, g2)
	case ok1:
		m.addToGroup(g1, s2)
	case ok2:
		m.addToGroup(g2, s1)
	default:
		m.newGroup(s1, s2)
	}
}

func (m *Map) newGroup(s1, s2 int) {
	id := s1
	if s2 < id {
		id = s2
	}
	g := &StationGroup{ID: id, StationIDs: []int{s1, s2}}
	m.Groups[id] = g
	m.PointToGroup[s1] = id
	m.PointToGroup[s2] = id
}

func (m *Map) addToGroup(groupID, station int) {
	g := m.Groups[groupID]
	g.StationIDs = append(g.StationIDs, station)
	m.PointToGroup[station] = groupID
	if station < groupID {
		// the new member is now the smallest: re-key the group under it
		delete(m.Groups, groupID)
		g.ID = station
		m.Groups[station] = g
		for _, sid := range g.StationIDs {
			m.PointToGroup[sid] = station
		}
	}
}

// mergeGroups folds the group with the larger id into the group with
// the smaller id, so the surviving group's id is always the smallest
// member station id.
func (m *Map) mergeGroups(a, b int) {
	keep, drop := a, b
	if drop < keep {
		keep, drop = drop, keep
	}
	kg, dg := m.Groups[keep], m.Groups[drop]
	kg.StationIDs = append(kg.StationIDs, dg.StationIDs...)
	for _, sid := range dg.StationIDs {
		m.PointToGroup[sid] = keep
	}
	delete(m.Groups, drop)
}

// AutoGroup joins every pair of stations whose distance is within
// Config.AutoGroupDistance, scaled by the pair's average point size.
func (m *Map) AutoGroup() {
	ids := make([]int, 0, len(m.Points))
	for id, p := range m.Points {
		if p.IsStation() {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	for i, id1 := range ids {
		p1 := m.Points[id1]
		for _, id2 := range ids[i+1:] {
			p2 := m.Points[id2]
			threshold := m.Config.AutoGroupDistance * (p1.Size + p2.Size) / 2.0
			if p1.Pos.Sub(p2.Pos).Length() <= threshold+1e-3 {
				m.JoinStations(id1, id2)
			}
		}
	}
}

// ConnectCommonParents marks every pair of lines sharing the same
// positive ParentID as friends, mirroring an AARC document's grouped
// branch lines (e.g. lines drawn along a shared trunk).
func (m *Map) ConnectCommonParents() {
	ids := make([]int, 0, len(m.Lines))
	for id := range m.Lines {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for i, id1 := range ids {
		l1 := m.Lines[id1]
		if l1.ParentID == -1 {
			continue
		}
		if l1.ParentID != -1 {
			connectLines(&m.Config, id1, l1.ParentID)
		}
		for _, id2 := range ids[i+1:] {
			l2 := m.Lines[id2]
			if l1.ParentID == l2.ParentID {
				connectLines(&m.Config, id1, id2)
			}
		}
	}
}

// ApplyLink resolves one point-to-point link annotation according to
// its LinkType's configured LinkMode: Connect synthesizes a new
// two-point line (returned id is its new line id, reusing the given
// nextLineID), Group merges the two points' station groups, None is a
// no-op. Returns ok=true only for Connect; ok=false (Group or None)
// signals the caller not to consume nextLineID.
func (m *Map) ApplyLink(typ LinkType, p1, p2, nextLineID int) (lineID int, ok bool) {
	mode := m.Config.LinkModes[typ]
	switch mode {
	case None:
		return 0, false
	case GroupMode:
		m.JoinStations(p1, p2)
		return 0, false
	case Connect:
		m.Lines[nextLineID] = &Line{
			ID:       nextLineID,
			PointIDs: []int{p1, p2},
			IsLoop:   false,
			ParentID: -1,
		}
		return nextLineID, true
	default:
		return 0, false
	}
}

// detectLoopPeriod finds the first repeating prefix period of a
// non-loop line's point ids and, if found, truncates the line to that
// period and marks it a loop. This recovers lines whose drawn points
// wrap back onto an earlier point without the AARC document's explicit
// first-equals-last loop marker.
func detectLoopPeriod(l *Line) {
	if l.IsLoop {
		return
	}
	period := 0
	for i := 1; i < len(l.PointIDs); i++ {
		if period == 0 && l.PointIDs[i] == l.PointIDs[0] {
			period = i
		} else if period != 0 && l.PointIDs[i] != l.PointIDs[i%period] {
			period = 0
			break
		}
	}
	if period != 0 {
		l.IsLoop = true
		l.PointIDs = l.PointIDs[:period+1]
	}
}

// classifySimple reports whether a line qualifies as simple: no
// segmentation entry, no friend or merged relation, and no repeated
// station (a loop's duplicated closing point is ignored).
func classifySimple(m *Map, l *Line) bool {
	if _, segmented := m.Config.SegmentedLines[l.ID]; segmented {
		return false
	}
	for pair := range m.Config.FriendLines {
		if pair.A == l.ID {
			return false
		}
	}
	for pair := range m.Config.MergedLines {
		if pair.A == l.ID {
			return false
		}
	}

	limit := len(l.PointIDs)
	if l.IsLoop {
		limit--
	}
	seen := map[int]struct{}{}
	for i := 0; i < limit; i++ {
		pid := l.PointIDs[i]
		p, ok := m.Points[pid]
		if !ok || !p.IsStation() {
			continue
		}
		if _, dup := seen[pid]; dup {
			return false
		}
		seen[pid] = struct{}{}
	}
	return true
}

// Normalize finalizes a Map after its points and lines have been
// populated: it drops malformed lines (fewer than 2 points, or a
// reference to a point id absent from the Map), floors SegmentedLines
// values to MaxRCSteps+1, detects loop periods, and classifies every
// line's IsSimple flag. Callers that want auto-grouping or
// common-parent connection must invoke AutoGroup / ConnectCommonParents
// before Normalize, since classifySimple reads the resulting
// FriendLines/MergedLines sets.
//
// A malformed line is a defensive, silently-skipped InvalidInput case:
// it is removed from m.Lines and logged via obslog.Warnf, and Normalize
// continues processing every other line rather than aborting the whole
// Map. Normalize only returns an error for ctx cancellation.
func (m *Map) Normalize(ctx context.Context) error {
	for id, l := range m.Lines {
		if len(l.PointIDs) < 2 {
			obslog.Warnf(ctx, "geomap: dropping line %d: %v", id, ErrShortLine)
			delete(m.Lines, id)
			continue
		}
		unknown := false
		for _, pid := range l.PointIDs {
			if _, ok := m.Points[pid]; !ok {
				obslog.Warnf(ctx, "geomap: dropping line %d: %v", id, fmt.Errorf("%w: point %d", ErrUnknownPoint, pid))
				unknown = true
				break
			}
		}
		if unknown {
			delete(m.Lines, id)
			continue
		}
		l.IsLoop = l.PointIDs[0] == l.PointIDs[len(l.PointIDs)-1]
		m.Lines[id] = l
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	for id, seg := range m.Config.SegmentedLines {
		if seg >= 0 && seg <= m.Config.MaxRCSteps {
			m.Config.SegmentedLines[id] = m.Config.MaxRCSteps + 1
		}
	}

	for _, l := range m.Lines {
		detectLoopPeriod(l)
	}

	for _, l := range m.Lines {
		l.IsSimple = classifySimple(m, l)
	}

	return nil
}
