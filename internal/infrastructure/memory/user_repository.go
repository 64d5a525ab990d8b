package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/oksasatya/nexus-admin/internal/domain/entity"
	"github.com/oksasatya/nexus-admin/internal/domain/repository"
)

// UserRepository keeps users in process memory. It is used for local runs
// without MongoDB and as the fake behind use case and handler tests.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*entity.User
	byEmail map[entity.Email]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[entity.Email]string),
	}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email()]; ok {
		return nil, fmt.Errorf("%w: email %q", entity.ErrAlreadyExists, u.Email())
	}
	if _, ok := r.byID[u.ID()]; ok {
		return nil, fmt.Errorf("%w: id %q", entity.ErrAlreadyExists, u.ID())
	}
	r.byID[u.ID()] = clone(u)
	r.byEmail[u.Email()] = u.ID()
	return clone(u), nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %q", entity.ErrNotFound, id)
	}
	return clone(u), nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email entity.Email) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return clone(r.byID[id]), nil
}

func (r *UserRepository) ListPage(_ context.Context, page, pageSize int) ([]*entity.User, error) {
	r.mu.RLock()
	all := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		all = append(all, u)
	}
	r.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].CreatedAt().Equal(all[j].CreatedAt()) {
			return all[i].ID() > all[j].ID()
		}
		return all[i].CreatedAt().After(all[j].CreatedAt())
	})

	skip := (page - 1) * pageSize
	if page < 1 || pageSize < 1 || skip >= len(all) {
		return []*entity.User{}, nil
	}
	end := skip + pageSize
	if end > len(all) {
		end = len(all)
	}
	out := make([]*entity.User, 0, end-skip)
	for _, u := range all[skip:end] {
		out = append(out, clone(u))
	}
	return out, nil
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[u.ID()]
	if !ok {
		return nil, fmt.Errorf("%w: id %q", entity.ErrNotFound, u.ID())
	}
	if owner, taken := r.byEmail[u.Email()]; taken && owner != u.ID() {
		return nil, fmt.Errorf("%w: email %q", entity.ErrAlreadyExists, u.Email())
	}
	delete(r.byEmail, existing.Email())
	r.byID[u.ID()] = clone(u)
	r.byEmail[u.Email()] = u.ID()
	return clone(u), nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: id %q", entity.ErrNotFound, id)
	}
	delete(r.byEmail, u.Email())
	delete(r.byID, id)
	return nil
}

func (r *UserRepository) ExistsByEmail(_ context.Context, email entity.Email) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *UserRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.byID)), nil
}

func clone(u *entity.User) *entity.User {
	var updatedAt *time.Time
	if t, ok := u.UpdatedAt(); ok {
		updatedAt = &t
	}
	return entity.ReconstructUser(u.ID(), u.Email(), u.Name(), u.Role(), u.IsActive(), u.CreatedAt(), updatedAt)
}

var _ repository.UserRepository = (*UserRepository)(nil)
