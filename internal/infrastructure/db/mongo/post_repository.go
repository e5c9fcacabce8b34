package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/snapgram/api/internal/core/domain"
)

const postsCollection = "posts"

type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

type mongoPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	AuthorID  primitive.ObjectID `bson:"author_id"`
	Caption   string             `bson:"caption"`
	ImageURL  string             `bson:"image_url"`
	CreatedAt time.Time          `bson:"created_at"`
}

// mongoFeedPost is the shape produced by the list aggregation: the joined
// author document is present only when the reference resolves.
type mongoFeedPost struct {
	ID        primitive.ObjectID `bson:"_id"`
	Caption   string             `bson:"caption"`
	ImageURL  string             `bson:"image_url"`
	CreatedAt time.Time          `bson:"created_at"`
	Author    *mongoPostAuthor   `bson:"author"`
}

type mongoPostAuthor struct {
	ID       primitive.ObjectID `bson:"_id"`
	Username string             `bson:"username"`
}

// Create inserts a post document, defaulting created_at to now.
func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	authorID, err := primitive.ObjectIDFromHex(post.AuthorID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	doc := mongoPost{
		AuthorID:  authorID,
		Caption:   post.Caption,
		ImageURL:  post.ImageURL,
		CreatedAt: time.Now().UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return &domain.Post{
		ID:        id.Hex(),
		AuthorID:  doc.AuthorID.Hex(),
		Caption:   doc.Caption,
		ImageURL:  doc.ImageURL,
		CreatedAt: doc.CreatedAt,
	}, nil
}

// ListWithAuthors returns all posts in natural order, joining each
// author_id against the users collection. preserveNullAndEmptyArrays keeps
// posts whose author was deleted; they come back with a nil Author.
func (r *PostRepository) ListWithAuthors(ctx context.Context) ([]domain.FeedPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollection},
			{Key: "localField", Value: "author_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "author"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$author"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoFeedPost
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	posts := make([]domain.FeedPost, 0, len(docs))
	for _, doc := range docs {
		fp := domain.FeedPost{
			ID:        doc.ID.Hex(),
			Caption:   doc.Caption,
			ImageURL:  doc.ImageURL,
			CreatedAt: doc.CreatedAt.UTC(),
		}
		if doc.Author != nil {
			fp.Author = &domain.PostAuthor{
				ID:       doc.Author.ID.Hex(),
				Username: doc.Author.Username,
			}
		}
		posts = append(posts, fp)
	}
	return posts, nil
}
