package mongo

import (
	"context"
	"time"

	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/repository"
	"lostfound/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var newestFirst = bson.D{{Key: "created_at", Value: -1}}

type postRepository struct {
	collection *mongo.Collection
}

// NewPostRepository creates a PostRepository on the posts collection.
func NewPostRepository(db *mongo.Database) repository.PostRepository {
	return &postRepository{collection: db.Collection(postsCollection)}
}

func (repo *postRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	now := time.Now().UTC()
	doc := fromPostDomain(post)
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := repo.collection.InsertOne(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to insert post")
	}

	post.ID = doc.ID.Hex()
	post.CreatedAt = now
	post.UpdatedAt = now

	return nil
}

func (repo *postRepository) FindPostByID(ctx context.Context, id string) (*entity.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrPostNotFound
	}

	var doc model.PostDocument
	if err := repo.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by ID")
	}

	return toPostDomain(&doc), nil
}

func (repo *postRepository) FindPosts(ctx context.Context, filter repository.PostFilter, skip, limit int64) ([]*entity.Post, int64, error) {
	query := postFilterQuery(filter)

	total, err := repo.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count posts")
	}

	findOpts := options.Find().SetSort(newestFirst).SetSkip(skip)
	if limit > 0 {
		findOpts.SetLimit(limit)
	}

	posts, err := repo.find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (repo *postRepository) FindPostCandidates(ctx context.Context, kind entity.PostKind) ([]*entity.Post, error) {
	query := postFilterQuery(repository.PostFilter{Kind: kind})

	return repo.find(ctx, query, options.Find().SetSort(newestFirst))
}

func (repo *postRepository) find(ctx context.Context, query bson.M, findOpts *options.FindOptions) ([]*entity.Post, error) {
	cursor, err := repo.collection.Find(ctx, query, findOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find posts")
	}
	defer cursor.Close(ctx)

	var docs []model.PostDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode posts")
	}

	posts := make([]*entity.Post, 0, len(docs))
	for idx := range docs {
		posts = append(posts, toPostDomain(&docs[idx]))
	}

	return posts, nil
}

func (repo *postRepository) MarkResolved(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrPostNotFound
	}

	res, err := repo.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{
		"$set": bson.M{"resolved": true, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return errors.Wrap(err, "failed to resolve post")
	}
	if res.MatchedCount == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

func (repo *postRepository) DeletePost(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrPostNotFound
	}

	res, err := repo.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return errors.Wrap(err, "failed to delete post")
	}
	if res.DeletedCount == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// postFilterQuery translates a listing filter to a Mongo query. Resolved posts are hidden unless asked for.
func postFilterQuery(filter repository.PostFilter) bson.M {
	query := bson.M{}
	if filter.Kind != "" {
		query["kind"] = string(filter.Kind)
	}
	if filter.District != "" {
		query["district"] = filter.District
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if !filter.IncludeResolved {
		query["resolved"] = bson.M{"$ne": true}
	}

	return query
}

func toPostDomain(doc *model.PostDocument) *entity.Post {
	return &entity.Post{
		ID:           doc.ID.Hex(),
		Kind:         entity.PostKind(doc.Kind),
		Title:        doc.Title,
		Description:  doc.Description,
		Category:     doc.Category,
		District:     doc.District,
		GPS:          doc.GPS,
		ImageURLs:    doc.ImageURLs,
		ContactPhone: doc.ContactPhone,
		AuthorID:     doc.AuthorID,
		AuthorEmail:  doc.AuthorEmail,
		Resolved:     doc.Resolved,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func fromPostDomain(post *entity.Post) *model.PostDocument {
	doc := &model.PostDocument{
		Kind:         string(post.Kind),
		Title:        post.Title,
		Description:  post.Description,
		Category:     post.Category,
		District:     post.District,
		GPS:          post.GPS,
		ImageURLs:    post.ImageURLs,
		ContactPhone: post.ContactPhone,
		AuthorID:     post.AuthorID,
		AuthorEmail:  post.AuthorEmail,
		Resolved:     post.Resolved,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
	}
	if objID, err := primitive.ObjectIDFromHex(post.ID); err == nil {
		doc.ID = objID
	}

	return doc
}
