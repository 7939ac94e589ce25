package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/microblog/platform/internal/core/domain"
)

const commentsCollection = "comments"

type MongoCommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{coll: db.Collection(commentsCollection)}
}

type mongoComment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PostID    string             `bson:"post_id"`
	UserID    string             `bson:"user_id"`
	Text      string             `bson:"text"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *MongoCommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	doc := mongoComment{
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	created := *comment
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoCommentRepository) FindAll(ctx context.Context) ([]*domain.Comment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cursor.Close(ctx)

	var comments []*domain.Comment
	for cursor.Next(ctx) {
		var mc mongoComment
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		comments = append(comments, mc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (mc *mongoComment) toDomain() *domain.Comment {
	return &domain.Comment{
		ID:        mc.ID.Hex(),
		PostID:    mc.PostID,
		UserID:    mc.UserID,
		Text:      mc.Text,
		CreatedAt: unixToTime(mc.CreatedAt),
	}
}

func nowUnix() int64 {
	return time.Now().UTC().Unix()
}
