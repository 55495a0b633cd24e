package ports

import (
	"context"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// CreatePostInput carries the fields accepted at post creation. The author
// snapshot comes from the verified identity, never from the payload.
type CreatePostInput struct {
	Title      string
	Content    string
	CoverImage string
}

// UpdatePostInput is the partial-update payload. Pointers distinguish "not
// supplied" from "explicitly cleared".
type UpdatePostInput struct {
	Title      *string
	Content    *string
	CoverImage *string
}

// ListPostsResult is one page of posts.
type ListPostsResult struct {
	Posts []*domain.Post
	Total int64
	Page  int
	Pages int
}

// PostService defines use-case operations over posts and comments. Every
// mutating operation takes the verified caller identity; reads are public.
type PostService interface {
	Create(ctx context.Context, identity domain.Identity, input CreatePostInput) (*domain.Post, error)
	List(ctx context.Context, page, limit int) (*ListPostsResult, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Update(ctx context.Context, identity domain.Identity, id string, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, identity domain.Identity, id string) error
	AddComment(ctx context.Context, identity domain.Identity, postID, text string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, identity domain.Identity, postID, commentID string) error
}
