package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/microblog/platform/internal/core/domain"
	"github.com/microblog/platform/internal/core/ports"
)

const postsCollection = "posts"

type MongoPostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{coll: db.Collection(postsCollection)}
}

type mongoPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (r *MongoPostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	doc := mongoPost{
		UserID:    post.UserID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt.Unix(),
		UpdatedAt: post.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *post
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	var mp mongoPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoPostRepository) FindAll(ctx context.Context) ([]*domain.Post, error) {
	// Stable order: insertion order via _id.
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*domain.Post
	for cursor.Next(ctx) {
		var mp mongoPost
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, mp.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *MongoPostRepository) Update(ctx context.Context, id string, update ports.PostUpdate) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	set := bson.M{"updated_at": nowUnix()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}

	var mp mongoPost
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("update post: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoPostRepository) Delete(ctx context.Context, id string) error {
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

func (mp *mongoPost) toDomain() *domain.Post {
	return &domain.Post{
		ID:        mp.ID.Hex(),
		UserID:    mp.UserID,
		Title:     mp.Title,
		Content:   mp.Content,
		CreatedAt: unixToTime(mp.CreatedAt),
		UpdatedAt: unixToTime(mp.UpdatedAt),
	}
}
