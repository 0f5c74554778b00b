package convert

// Option configures a Convert call.
type Option func(*options)

type options struct {
	onLineEmitted func(lineID int, serviceID int)
}

func defaultOptions() options {
	return options{}
}

// WithOnLineEmitted registers a callback invoked once per emitted
// service, after pruning and id assignment, with the source line id it
// came from (or -1 for a service produced by route search, which may
// span several lines).
// Mirrors the reference pack's bfs.WithOnVisit instrumentation hook.
func WithOnLineEmitted(fn func(lineID int, serviceID int)) Option {
	return func(o *options) {
		o.onLineEmitted = fn
	}
}
