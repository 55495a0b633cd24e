package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/inkwell/blog-api/internal/api/metrics"
	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// PostService implements CRUD over posts and their embedded comments,
// applying the ownership policy before every mutation.
type PostService struct {
	repo     ports.PostRepository
	activity ports.ActivitySink
	log      zerolog.Logger
}

func NewPostService(repo ports.PostRepository, activity ports.ActivitySink, log zerolog.Logger) *PostService {
	return &PostService{repo: repo, activity: activity, log: log}
}

// Create persists a new post. Author fields snapshot the caller's identity
// at creation time.
func (s *PostService) Create(ctx context.Context, identity domain.Identity, input ports.CreatePostInput) (*domain.Post, error) {
	if input.Title == "" {
		return nil, domain.ErrInvalidInput
	}

	post := &domain.Post{
		Title:      input.Title,
		Content:    input.Content,
		Author:     identity.Name,
		AuthorID:   identity.UserID,
		CoverImage: input.CoverImage,
		Comments:   []domain.Comment{},
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, post)
	if err != nil {
		return nil, err
	}

	metrics.PostsCreatedTotal.Inc()
	s.emit(domain.ActivityPostCreated, created.ID, "", identity)
	return created, nil
}

// List returns one page of posts, newest first. Page and limit fall back to
// their defaults when non-positive.
func (s *PostService) List(ctx context.Context, page, limit int) (*ports.ListPostsResult, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	posts, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListPostsResult{Posts: posts, Total: total, Page: page, Pages: pages}, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

// Update overwrites only the supplied fields and refreshes updatedAt.
// Existence is checked before permission, so a missing post is always
// reported as not found rather than forbidden.
func (s *PostService) Update(ctx context.Context, identity domain.Identity, id string, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanModify(post.AuthorID, identity.UserID, identity.Role) {
		return nil, domain.ErrForbidden
	}

	if input.Title != nil && *input.Title == "" {
		return nil, domain.ErrInvalidInput
	}

	patch := ports.PostPatch{
		Title:      input.Title,
		Content:    input.Content,
		CoverImage: input.CoverImage,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	s.emit(domain.ActivityPostUpdated, id, "", identity)
	return s.repo.FindByID(ctx, id)
}

func (s *PostService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !domain.CanModify(post.AuthorID, identity.UserID, identity.Role) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.emit(domain.ActivityPostDeleted, id, "", identity)
	return nil
}

// AddComment appends a comment to the post's list. Any authenticated user
// may comment; there is no ownership check.
func (s *PostService) AddComment(ctx context.Context, identity domain.Identity, postID, text string) (*domain.Comment, error) {
	if text == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := domain.Comment{
		ID:        primitive.NewObjectID().Hex(),
		Author:    identity.Name,
		Text:      text,
		UserID:    identity.UserID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.AppendComment(ctx, postID, comment); err != nil {
		return nil, err
	}

	metrics.CommentsTotal.WithLabelValues("added").Inc()
	s.emit(domain.ActivityCommentAdded, postID, comment.ID, identity)
	return &comment, nil
}

// DeleteComment resolves the comment inside the post and applies the
// extended rule: comment author, post author, or admin. Missing post and
// missing comment both win over any permission outcome.
func (s *PostService) DeleteComment(ctx context.Context, identity domain.Identity, postID, commentID string) error {
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return err
	}

	comment := post.FindComment(commentID)
	if comment == nil {
		return domain.ErrCommentNotFound
	}

	if !domain.CanDeleteComment(comment.UserID, post.AuthorID, identity.UserID, identity.Role) {
		return domain.ErrForbidden
	}

	if err := s.repo.RemoveComment(ctx, postID, commentID); err != nil {
		return err
	}

	metrics.CommentsTotal.WithLabelValues("deleted").Inc()
	s.emit(domain.ActivityCommentDeleted, postID, commentID, identity)
	return nil
}

// emit hands an activity event to the sink. Best effort: a nil sink means
// activity logging is disabled.
func (s *PostService) emit(kind domain.ActivityKind, postID, commentID string, identity domain.Identity) {
	if s.activity == nil {
		return
	}
	s.activity.Enqueue(domain.ActivityEvent{
		Kind:       kind,
		PostID:     postID,
		CommentID:  commentID,
		ActorID:    identity.UserID,
		ActorName:  identity.Name,
		OccurredAt: time.Now().UTC(),
	})
}
