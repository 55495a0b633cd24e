package ports

import (
	"context"
	"time"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// PostPatch carries a partial update for a post. Nil pointer = field not
// supplied, keep the stored value. A pointer to the empty string is an
// explicit overwrite.
type PostPatch struct {
	Title      *string
	Content    *string
	CoverImage *string
	UpdatedAt  time.Time
}

// PostRepository defines persistence for posts and their embedded comments.
// The post document is the unit of update: comment mutations are single
// document writes and inherit the store's per-document atomicity.
type PostRepository interface {
	Insert(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns one page of posts ordered by creation time descending,
	// plus the total number of posts across all pages.
	List(ctx context.Context, page, limit int) ([]*domain.Post, int64, error)
	Update(ctx context.Context, id string, patch PostPatch) error
	Delete(ctx context.Context, id string) error
	// AppendComment pushes the comment onto the end of the post's list.
	AppendComment(ctx context.Context, postID string, comment domain.Comment) error
	// RemoveComment deletes one embedded comment in place, preserving the
	// order of the remaining comments.
	RemoveComment(ctx context.Context, postID, commentID string) error
}
