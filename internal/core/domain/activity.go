package domain

import "time"

// ActivityKind discriminates entries in the activity log.
type ActivityKind string

const (
	ActivityPostCreated    ActivityKind = "post_created"
	ActivityPostUpdated    ActivityKind = "post_updated"
	ActivityPostDeleted    ActivityKind = "post_deleted"
	ActivityCommentAdded   ActivityKind = "comment_added"
	ActivityCommentDeleted ActivityKind = "comment_deleted"
)

// ActivityEvent records a single mutation on a post or its comments. Events
// are persisted asynchronously and best-effort; they never affect the
// outcome of the request that produced them.
type ActivityEvent struct {
	Kind       ActivityKind `json:"kind"`
	PostID     string       `json:"postId"`
	CommentID  string       `json:"commentId,omitempty"`
	ActorID    string       `json:"actorId"`
	ActorName  string       `json:"actorName"`
	OccurredAt time.Time    `json:"occurredAt"`
}
