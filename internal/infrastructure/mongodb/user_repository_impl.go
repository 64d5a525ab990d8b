package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/nexus-admin/internal/domain/entity"
	"github.com/oksasatya/nexus-admin/internal/domain/repository"
)

const emailIndexName = "email_unique"

type UserRepository struct {
	coll   *mongo.Collection
	logger *logrus.Logger
}

// NewUserRepository binds the repository to a collection and makes sure the
// unique email index exists.
func NewUserRepository(ctx context.Context, db *mongo.Database, collection string, logger *logrus.Logger) (*UserRepository, error) {
	r := &UserRepository{coll: db.Collection(collection), logger: logger}
	if err := r.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *UserRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(emailIndexName),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
	})
	return err
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	if _, err := r.coll.InsertOne(ctx, toDocument(u)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: email %q", entity.ErrAlreadyExists, u.Email())
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: id %q", entity.ErrNotFound, id)
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email entity.Email) (*entity.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email.String()}})
}

func (r *UserRepository) ListPage(ctx context.Context, page, pageSize int) ([]*entity.User, error) {
	if page < 1 {
		page = 1
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cur, err := r.coll.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	return r.decodeUsers(ctx, cur)
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) (*entity.User, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: u.ID()}}, toDocument(u))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: email %q", entity.ErrAlreadyExists, u.Email())
		}
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("%w: id %q", entity.ErrNotFound, u.ID())
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: id %q", entity.ErrNotFound, id)
	}
	return nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email entity.Email) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "email", Value: email.String()}}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.D) (*entity.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return r.hydrate(doc)
}

func (r *UserRepository) decodeUsers(ctx context.Context, cur *mongo.Cursor) ([]*entity.User, error) {
	defer func() { _ = cur.Close(ctx) }()
	out := make([]*entity.User, 0)
	for cur.Next(ctx) {
		var doc userDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		u, err := r.hydrate(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UserRepository) hydrate(doc userDocument) (*entity.User, error) {
	u, unknownRole, err := toDomain(doc)
	if err != nil {
		if r.logger != nil {
			r.logger.WithError(err).WithField("user_id", doc.ID).Error("failed to map user document")
		}
		return nil, err
	}
	if unknownRole && r.logger != nil {
		r.logger.WithFields(logrus.Fields{"user_id": doc.ID, "role": doc.Role}).Warn("invalid stored role, defaulting to User")
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
