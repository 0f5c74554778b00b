package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Ref is a line or point reference that may appear in the document as
// either a bare integer id or a string name.
type Ref struct {
	id   int
	name string
	byID bool
}

// UnmarshalYAML accepts either a scalar integer or a scalar string.
func (r *Ref) UnmarshalYAML(node *yaml.Node) error {
	var asInt int
	if err := node.Decode(&asInt); err == nil {
		r.id, r.byID = asInt, true
		return nil
	}
	var asName string
	if err := node.Decode(&asName); err != nil {
		return fmt.Errorf("config: line/point reference must be an id or a name: %w", err)
	}
	r.name = asName
	return nil
}

// resolve translates r to a line/point id, looking names up in byName.
func (r Ref) resolve(byName map[string]int) (int, error) {
	if r.byID {
		return r.id, nil
	}
	id, ok := byName[r.name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown name %q", ErrInvalidInput, r.name)
	}
	return id, nil
}

// Pair is a friend_lines/merged_lines entry: two line references that
// form a symmetric relation.
type Pair [2]Ref

// SegmentedEntry is one segmented_lines list entry. The document
// accepts three shapes, all decoded into this one struct:
//
//   - a bare id/name: Refs holds one element, Explicit is false (the
//     line's group key is assigned from the entry's position).
//   - an array of ids/names: Refs holds every element, sharing one
//     group key.
//   - an object {line|lines, segment_length}: Refs holds the named
//     line(s), Explicit is true and SegmentLength carries the given
//     positive length (not a group key).
type SegmentedEntry struct {
	Refs          []Ref
	SegmentLength int
	Explicit      bool
}

func (e *SegmentedEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var ref Ref
		if err := node.Decode(&ref); err != nil {
			return err
		}
		e.Refs = []Ref{ref}
		return nil

	case yaml.SequenceNode:
		var refs []Ref
		if err := node.Decode(&refs); err != nil {
			return err
		}
		e.Refs = refs
		return nil

	case yaml.MappingNode:
		var obj struct {
			Line          *Ref  `yaml:"line"`
			Lines         []Ref `yaml:"lines"`
			SegmentLength int   `yaml:"segment_length"`
		}
		if err := node.Decode(&obj); err != nil {
			return err
		}
		if obj.Line != nil {
			e.Refs = []Ref{*obj.Line}
		} else {
			e.Refs = obj.Lines
		}
		e.SegmentLength = obj.SegmentLength
		e.Explicit = true
		return nil

	default:
		return fmt.Errorf("config: invalid segmented_lines entry")
	}
}

// LinkModeName is the string spelling of a geomap.LinkMode accepted in
// the link_modes document section.
type LinkModeName string

const (
	ModeConnect LinkModeName = "Connect"
	ModeGroup   LinkModeName = "Group"
	ModeNone    LinkModeName = "None"
)

// File is the yaml.v3-decoded shape of the tuning document. Every
// field is optional; an absent field leaves geomap.DefaultConfig's
// value in place.
type File struct {
	MaxLength                  *int                          `yaml:"max_length" validate:"omitempty,gt=0"`
	MaxRCSteps                 *int                          `yaml:"max_rc_steps" validate:"omitempty,gt=0"`
	MaxIterations              *int                          `yaml:"max_iterations" validate:"omitempty,gt=0"`
	MergeConsecutiveDuplicates *bool                         `yaml:"merge_consecutive_duplicates"`
	OptimizeSegmentation       *bool                         `yaml:"optimize_segmentation"`
	AutoGroupDistance          *float64                      `yaml:"auto_group_distance" validate:"omitempty,gt=0"`
	LinkModes                  map[string]LinkModeName       `yaml:"link_modes" validate:"omitempty,dive,oneof=Connect Group None"`
	FriendLines                []Pair                        `yaml:"friend_lines"`
	MergedLines                []Pair                        `yaml:"merged_lines"`
	SegmentedLines             []SegmentedEntry              `yaml:"segmented_lines"`
}
