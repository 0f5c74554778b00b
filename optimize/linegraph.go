package optimize

import (
	"context"

	"github.com/railmapgen/aarc2rc/geomap"
	"github.com/railmapgen/aarc2rc/route"
)

// lineWalker breadth-first-expands a mask of line ids outward from a
// seed set, following friend_lines and merged_lines pairs from their
// first element to their second. This is a small, purpose-built
// walker rather than a general graph search: mask expansion runs over
// at most a few dozen lines, and needs nothing beyond reachability.
type lineWalker struct {
	edges   map[int][]int
	ctx     context.Context
	queue   []int
	visited map[int]bool
}

func buildLineEdges(cfg geomap.Config) map[int][]int {
	edges := map[int][]int{}
	for pair := range cfg.FriendLines {
		edges[pair.A] = append(edges[pair.A], pair.B)
	}
	for pair := range cfg.MergedLines {
		edges[pair.A] = append(edges[pair.A], pair.B)
	}
	return edges
}

// expandMask returns the set of line ids reachable from seeds.
func expandMask(ctx context.Context, cfg geomap.Config, seeds []int) (route.LineMask, error) {
	w := &lineWalker{edges: buildLineEdges(cfg), ctx: ctx, visited: map[int]bool{}}
	for _, s := range seeds {
		w.enqueue(s)
	}
	if err := w.loop(); err != nil {
		return nil, err
	}
	mask := make(route.LineMask, len(w.visited))
	for id := range w.visited {
		mask[id] = true
	}
	return mask, nil
}

func (w *lineWalker) enqueue(id int) {
	if w.visited[id] {
		return
	}
	w.visited[id] = true
	w.queue = append(w.queue, id)
}

func (w *lineWalker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
		id := w.queue[0]
		w.queue = w.queue[1:]
		for _, next := range w.edges[id] {
			w.enqueue(next)
		}
	}
	return nil
}
