package config

import (
	"testing"

	"github.com/railmapgen/aarc2rc/geomap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func decode(t *testing.T, doc string) File {
	t.Helper()
	var f File
	require.NoError(t, yaml.Unmarshal([]byte(doc), &f))
	return f
}

func TestResolveOverridesOnlySetFields(t *testing.T) {
	f := decode(t, "max_length: 50\n")
	cfg, err := Resolve(f, nil)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.MaxLength)
	assert.Equal(t, 16, cfg.MaxRCSteps, "unset fields keep the default")
}

func TestResolveSegmentedLinesBareEntryIsGroupKey(t *testing.T) {
	f := decode(t, "segmented_lines:\n  - 3\n  - 7\n")
	cfg, err := Resolve(f, nil)
	require.NoError(t, err)
	assert.Equal(t, -1, cfg.SegmentedLines[3])
	assert.Equal(t, -2, cfg.SegmentedLines[7])
}

func TestResolveSegmentedLinesArrayEntrySharesGroupKey(t *testing.T) {
	f := decode(t, "segmented_lines:\n  - [1, 2, 3]\n")
	cfg, err := Resolve(f, nil)
	require.NoError(t, err)
	assert.Equal(t, cfg.SegmentedLines[1], cfg.SegmentedLines[2])
	assert.Equal(t, cfg.SegmentedLines[2], cfg.SegmentedLines[3])
	assert.Less(t, cfg.SegmentedLines[1], 0)
}

func TestResolveSegmentedLinesObjectEntryIsExplicitLength(t *testing.T) {
	f := decode(t, "segmented_lines:\n  - line: 1\n    segment_length: 20\n")
	cfg, err := Resolve(f, nil)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.SegmentedLines[1])
}

func TestResolveNormalizesSegmentLengthAtOrBelowMaxRCSteps(t *testing.T) {
	f := decode(t, "max_rc_steps: 16\nsegmented_lines:\n  - line: 1\n    segment_length: 10\n")
	cfg, err := Resolve(f, nil)
	require.NoError(t, err)
	assert.Equal(t, 17, cfg.SegmentedLines[1])
}

func TestResolveByNameUsesProvidedTable(t *testing.T) {
	f := decode(t, "friend_lines:\n  - [red, blue]\n")
	cfg, err := Resolve(f, map[string]int{"red": 1, "blue": 2})
	require.NoError(t, err)
	assert.True(t, cfg.IsFriend(1, 2))
	assert.True(t, cfg.IsFriend(2, 1))
}

func TestResolveUnknownNameIsInvalidInput(t *testing.T) {
	f := decode(t, "friend_lines:\n  - [red, blue]\n")
	_, err := Resolve(f, map[string]int{"red": 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResolveLinkModes(t *testing.T) {
	f := decode(t, "link_modes:\n  DottedLine1: Connect\n")
	cfg, err := Resolve(f, nil)
	require.NoError(t, err)
	assert.Equal(t, geomap.Connect, cfg.LinkModes[geomap.DottedLine1])
}
