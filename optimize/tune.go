package optimize

import (
	"context"
	"sort"

	"github.com/railmapgen/aarc2rc/geomap"
	"github.com/railmapgen/aarc2rc/route"
)

// CountFunc runs a full pipeline pass restricted to mask and returns
// the number of services it produces, including pruning. Tune treats
// this count as the sole objective it minimizes.
type CountFunc func(ctx context.Context, mask route.LineMask) (int, error)

// Tune runs bounded coordinate descent over m.Config.SegmentedLines'
// negative-keyed groups, mutating m.Config in place with the tuned
// lengths it settles on. Lines with no negative segmentation key are
// left untouched. Returns immediately, doing nothing, if no group
// exists.
func Tune(ctx context.Context, m *geomap.Map, count CountFunc, opts ...Option) error {
	o := DefaultTuneOptions()
	for _, opt := range opts {
		opt(&o)
	}

	groups := groupByKey(m.Config.SegmentedLines)
	if len(groups) == 0 {
		return nil
	}

	baseline := make(map[int]int, len(groups))
	seeds := make([]int, 0, len(m.Config.SegmentedLines))
	for key, ids := range groups {
		v := 2 * m.Config.MaxRCSteps
		baseline[key] = v
		for _, id := range ids {
			m.Config.SegmentedLines[id] = v
			seeds = append(seeds, id)
		}
	}

	mask, err := expandMask(ctx, m.Config, seeds)
	if err != nil {
		return err
	}

	keys := make([]int, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	currentCount, err := count(ctx, mask)
	if err != nil {
		return err
	}

	for iteration := 1; iteration <= m.Config.MaxIterations; iteration++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		improvedAny := false
		deltas := o.deltasFor(iteration)

		for _, key := range keys {
			ids := groups[key]
			bestV := baseline[key]
			bestCount := currentCount
			improved := false

			for _, delta := range deltas {
				v := baseline[key] + delta
				if v <= m.Config.MaxRCSteps || v >= 2*m.Config.MaxLength {
					continue
				}
				setGroup(m, ids, v)
				n, err := count(ctx, mask)
				if err != nil {
					setGroup(m, ids, baseline[key])
					return err
				}
				if n < bestCount {
					bestCount = n
					bestV = v
					improved = true
				}
			}

			setGroup(m, ids, bestV)
			if improved {
				baseline[key] = bestV
				currentCount = bestCount
				improvedAny = true
			}
		}

		if !improvedAny {
			break
		}
	}

	return nil
}

// groupByKey partitions segmentedLines' negative-valued entries by
// that shared value.
func groupByKey(segmentedLines map[int]int) map[int][]int {
	groups := map[int][]int{}
	for lineID, v := range segmentedLines {
		if v >= 0 {
			continue
		}
		groups[v] = append(groups[v], lineID)
	}
	return groups
}

func setGroup(m *geomap.Map, lineIDs []int, v int) {
	for _, id := range lineIDs {
		m.Config.SegmentedLines[id] = v
	}
}
