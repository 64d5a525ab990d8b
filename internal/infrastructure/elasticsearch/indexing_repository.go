package elasticsearch

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/nexus-admin/internal/domain/entity"
	"github.com/oksasatya/nexus-admin/internal/domain/repository"
)

// IndexingRepository mirrors successful writes of the wrapped repository
// into a search index. Index failures are logged and never fail the write.
type IndexingRepository struct {
	repository.UserRepository
	Index  repository.UserSearchIndex
	Logger *logrus.Logger
}

func NewIndexingRepository(inner repository.UserRepository, index repository.UserSearchIndex, logger *logrus.Logger) *IndexingRepository {
	return &IndexingRepository{UserRepository: inner, Index: index, Logger: logger}
}

func (r *IndexingRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	created, err := r.UserRepository.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	r.index(ctx, created)
	return created, nil
}

func (r *IndexingRepository) Update(ctx context.Context, u *entity.User) (*entity.User, error) {
	updated, err := r.UserRepository.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	r.index(ctx, updated)
	return updated, nil
}

func (r *IndexingRepository) Delete(ctx context.Context, id string) error {
	if err := r.UserRepository.Delete(ctx, id); err != nil {
		return err
	}
	if err := r.Index.Remove(ctx, id); err != nil && r.Logger != nil {
		r.Logger.WithError(err).WithField("user_id", id).Warn("es remove failed")
	}
	return nil
}

func (r *IndexingRepository) index(ctx context.Context, u *entity.User) {
	if err := r.Index.Index(ctx, u); err != nil && r.Logger != nil {
		r.Logger.WithError(err).WithField("user_id", u.ID()).Warn("es index failed")
	}
}

var _ repository.UserRepository = (*IndexingRepository)(nil)
