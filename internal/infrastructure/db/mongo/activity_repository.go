package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell/blog-api/internal/core/domain"
)

const activityCollection = "activity_log"

// ActivityRepository appends activity events to a write-only log collection.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoActivity struct {
	Kind       string    `bson:"kind"`
	PostID     string    `bson:"post_id"`
	CommentID  string    `bson:"comment_id,omitempty"`
	ActorID    string    `bson:"actor_id"`
	ActorName  string    `bson:"actor_name"`
	OccurredAt time.Time `bson:"occurred_at"`
}

func (r *ActivityRepository) Insert(ctx context.Context, event domain.ActivityEvent) error {
	doc := mongoActivity{
		Kind:       string(event.Kind),
		PostID:     event.PostID,
		CommentID:  event.CommentID,
		ActorID:    event.ActorID,
		ActorName:  event.ActorName,
		OccurredAt: event.OccurredAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}
