package jobqueue

import (
	"time"

	"github.com/railmapgen/aarc2rc/geomap"
	"github.com/railmapgen/aarc2rc/rcmap"
)

// Status is a task's lifecycle stage. It advances monotonically:
// Pending -> Processing -> exactly one of Completed, Failed, TimedOut,
// Cancelled. A task cancelled while still queued goes straight from
// Pending to Cancelled.
type Status int

const (
	Pending Status = iota
	Processing
	Completed
	Failed
	TimedOut
	Cancelled
)

// String renders s the way the wire response's "status" field spells
// it, lower-cased, matching the original wrapper's response shape.
func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Processing:
		return "processing"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	case TimedOut:
		return "timeout"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// wallClock is the per-task timeout enforced by the queue, independent
// of anything the core does.
const wallClock = 15 * time.Second

// task is one submitted unit of work and its outcome, once resolved.
type task struct {
	key    string
	status Status
	input  *geomap.Map

	result *rcmap.Map
	errMsg string

	createdAt   time.Time
	completedAt time.Time

	cancel func()
}

// Snapshot is the caller-visible view of a task returned by Poll.
type Snapshot struct {
	Key     string
	Status  Status
	Result  *rcmap.Map
	Message string
}
