package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

const postsCollection = "posts"

// PostRepository persists posts with their embedded comments. Every write
// touches a single document, so comment mutations inherit MongoDB's
// per-document atomicity.
type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

type mongoComment struct {
	ID        string    `bson:"id"`
	Author    string    `bson:"author"`
	Text      string    `bson:"text"`
	UserID    string    `bson:"user_id"`
	CreatedAt time.Time `bson:"created_at"`
}

type mongoPost struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	Content    string             `bson:"content"`
	Author     string             `bson:"author"`
	AuthorID   string             `bson:"author_id"`
	CoverImage string             `bson:"cover_image,omitempty"`
	Comments   []mongoComment     `bson:"comments"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at,omitempty"`
}

func (r *PostRepository) Insert(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	doc := toMongoPost(post)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *post
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	var mp mongoPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return toDomainPost(mp), nil
}

func (r *PostRepository) List(ctx context.Context, page, limit int) ([]*domain.Post, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	posts := []*domain.Post{}
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, 0, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, toDomainPost(mp))
	}
	return posts, total, cur.Err()
}

// Update sets only the supplied fields plus updated_at in one write.
func (r *PostRepository) Update(ctx context.Context, id string, patch ports.PostPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	set := bson.M{"updated_at": patch.UpdatedAt}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.CoverImage != nil {
		set["cover_image"] = *patch.CoverImage
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// AppendComment pushes onto the end of the embedded array, preserving
// insertion order.
func (r *PostRepository) AppendComment(ctx context.Context, postID string, comment domain.Comment) error {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return domain.ErrPostNotFound
	}

	doc := mongoComment{
		ID:        comment.ID,
		Author:    comment.Author,
		Text:      comment.Text,
		UserID:    comment.UserID,
		CreatedAt: comment.CreatedAt,
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$push": bson.M{"comments": doc}})
	if err != nil {
		return fmt.Errorf("append comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// RemoveComment pulls a single comment out of the embedded array; the order
// of the remaining comments is untouched.
func (r *PostRepository) RemoveComment(ctx context.Context, postID, commentID string) error {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return domain.ErrPostNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$pull": bson.M{"comments": bson.M{"id": commentID}}})
	if err != nil {
		return fmt.Errorf("remove comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	if res.ModifiedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func toMongoPost(p *domain.Post) mongoPost {
	comments := make([]mongoComment, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, mongoComment{
			ID:        c.ID,
			Author:    c.Author,
			Text:      c.Text,
			UserID:    c.UserID,
			CreatedAt: c.CreatedAt,
		})
	}
	return mongoPost{
		Title:      p.Title,
		Content:    p.Content,
		Author:     p.Author,
		AuthorID:   p.AuthorID,
		CoverImage: p.CoverImage,
		Comments:   comments,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toDomainPost(mp mongoPost) *domain.Post {
	comments := make([]domain.Comment, 0, len(mp.Comments))
	for _, c := range mp.Comments {
		comments = append(comments, domain.Comment{
			ID:        c.ID,
			Author:    c.Author,
			Text:      c.Text,
			UserID:    c.UserID,
			CreatedAt: c.CreatedAt,
		})
	}
	return &domain.Post{
		ID:         mp.ID.Hex(),
		Title:      mp.Title,
		Content:    mp.Content,
		Author:     mp.Author,
		AuthorID:   mp.AuthorID,
		CoverImage: mp.CoverImage,
		Comments:   comments,
		CreatedAt:  mp.CreatedAt,
		UpdatedAt:  mp.UpdatedAt,
	}
}
