package ports

import (
	"context"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// ActivityRepository persists activity log entries.
type ActivityRepository interface {
	Insert(ctx context.Context, event domain.ActivityEvent) error
}

// ActivitySink accepts events for asynchronous recording. Implementations
// must never block the caller beyond a bounded buffer.
type ActivitySink interface {
	Enqueue(event domain.ActivityEvent)
}

// ActivityService processes a single dequeued event.
type ActivityService interface {
	Record(ctx context.Context, event domain.ActivityEvent) error
}
