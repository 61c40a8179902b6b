package mongo

import (
	"context"
	"time"

	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/repository"
	"lostfound/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a UserRepository on the users collection.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{collection: db.Collection(usersCollection)}
}

func (repo *userRepository) UpsertUser(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()

	res := repo.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": user.ID},
		bson.M{
			"$set":         bson.M{"email": user.Email, "name": user.Name, "updated_at": now},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var doc model.UserDocument
	if err := res.Decode(&doc); err != nil {
		return errors.Wrap(err, "failed to upsert user")
	}

	*user = *toUserDomain(&doc)

	return nil
}

func (repo *userRepository) FindUserByID(ctx context.Context, id string) (*entity.User, error) {
	var doc model.UserDocument
	if err := repo.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&doc), nil
}

func (repo *userRepository) UpdateLocation(ctx context.Context, id, gps string) error {
	res, err := repo.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"gps": gps, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return errors.Wrap(err, "failed to update user location")
	}
	if res.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) FindLocatedUsers(ctx context.Context) ([]*entity.User, error) {
	cursor, err := repo.collection.Find(ctx, bson.M{"gps": bson.M{"$nin": bson.A{nil, ""}}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find located users")
	}
	defer cursor.Close(ctx)

	var docs []model.UserDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(docs))
	for idx := range docs {
		users = append(users, toUserDomain(&docs[idx]))
	}

	return users, nil
}

func toUserDomain(doc *model.UserDocument) *entity.User {
	return &entity.User{
		ID:        doc.ID,
		Email:     doc.Email,
		Name:      doc.Name,
		GPS:       doc.GPS,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
