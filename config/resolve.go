package config

import (
	"errors"
	"fmt"

	"github.com/railmapgen/aarc2rc/geomap"
)

// ErrInvalidInput is returned when the document references a line or
// point name absent from the caller's name table.
var ErrInvalidInput = errors.New("config: invalid input")

// Resolve turns f into a geomap.Config, starting from
// geomap.DefaultConfig and overriding only the fields f sets. byName
// resolves a name reference to its line/point id; pass an empty map
// if the document is known to use only bare ids.
func Resolve(f File, byName map[string]int) (geomap.Config, error) {
	cfg := geomap.DefaultConfig()

	if f.MaxLength != nil {
		cfg.MaxLength = *f.MaxLength
	}
	if f.MaxRCSteps != nil {
		cfg.MaxRCSteps = *f.MaxRCSteps
	}
	if f.MaxIterations != nil {
		cfg.MaxIterations = *f.MaxIterations
	}
	if f.MergeConsecutiveDuplicates != nil {
		cfg.MergeConsecutiveDuplicates = *f.MergeConsecutiveDuplicates
	}
	if f.OptimizeSegmentation != nil {
		cfg.OptimizeSegmentation = *f.OptimizeSegmentation
	}
	if f.AutoGroupDistance != nil {
		cfg.AutoGroupDistance = *f.AutoGroupDistance
	}

	for kind, name := range f.LinkModes {
		lt, err := parseLinkType(kind)
		if err != nil {
			return cfg, err
		}
		cfg.LinkModes[lt] = parseLinkMode(name)
	}

	for _, pair := range f.FriendLines {
		a, b, err := resolvePair(pair, byName)
		if err != nil {
			return cfg, err
		}
		addSymmetric(cfg.FriendLines, a, b)
	}
	for _, pair := range f.MergedLines {
		a, b, err := resolvePair(pair, byName)
		if err != nil {
			return cfg, err
		}
		addSymmetric(cfg.MergedLines, a, b)
	}

	for i, entry := range f.SegmentedLines {
		length := -(i + 1) // default: negative group key, 1-indexed by list position
		if entry.Explicit {
			length = normalizeSegmentLength(entry.SegmentLength, cfg.MaxRCSteps)
		}
		for _, ref := range entry.Refs {
			id, err := ref.resolve(byName)
			if err != nil {
				return cfg, err
			}
			cfg.SegmentedLines[id] = length
		}
	}

	return cfg, nil
}

// normalizeSegmentLength raises a positive segmentation length at or
// below maxRCSteps to maxRCSteps+1, per the documented correction for
// an otherwise-InconsistentConfig value.
func normalizeSegmentLength(length, maxRCSteps int) int {
	if length > 0 && length <= maxRCSteps {
		return maxRCSteps + 1
	}
	return length
}

func resolvePair(p Pair, byName map[string]int) (int, int, error) {
	a, err := p[0].resolve(byName)
	if err != nil {
		return 0, 0, err
	}
	b, err := p[1].resolve(byName)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func addSymmetric(set map[geomap.LinePair]struct{}, a, b int) {
	if a == b {
		return
	}
	set[geomap.LinePair{A: a, B: b}] = struct{}{}
	set[geomap.LinePair{A: b, B: a}] = struct{}{}
}

func parseLinkType(s string) (geomap.LinkType, error) {
	switch s {
	case "ThickLine":
		return geomap.ThickLine, nil
	case "ThinLine":
		return geomap.ThinLine, nil
	case "DottedLine1":
		return geomap.DottedLine1, nil
	case "DottedLine2":
		return geomap.DottedLine2, nil
	case "Group", "LinkGroup":
		return geomap.LinkGroup, nil
	default:
		return 0, fmt.Errorf("%w: unknown link_modes key %q", ErrInvalidInput, s)
	}
}

func parseLinkMode(name LinkModeName) geomap.LinkMode {
	switch name {
	case ModeGroup:
		return geomap.GroupMode
	case ModeNone:
		return geomap.None
	default:
		return geomap.Connect
	}
}
