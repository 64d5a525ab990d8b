package user

import (
	"context"
	"errors"
	"sync"

	"github.com/oksasatya/nexus-admin/internal/domain/entity"
	"github.com/oksasatya/nexus-admin/internal/infrastructure/memory"
)

// spyRepo wraps the in-memory repository, counts calls and can inject
// failures per method.
type spyRepo struct {
	*memory.UserRepository

	mu      sync.Mutex
	calls   map[string]int
	failOn  map[string]error
	existsF func(entity.Email) bool
}

func newSpyRepo() *spyRepo {
	return &spyRepo{
		UserRepository: memory.NewUserRepository(),
		calls:          map[string]int{},
		failOn:         map[string]error{},
	}
}

func (s *spyRepo) hit(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[name]++
	return s.failOn[name]
}

func (s *spyRepo) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

func (s *spyRepo) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	if err := s.hit("Create"); err != nil {
		return nil, err
	}
	return s.UserRepository.Create(ctx, u)
}

func (s *spyRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if err := s.hit("GetByID"); err != nil {
		return nil, err
	}
	return s.UserRepository.GetByID(ctx, id)
}

func (s *spyRepo) ListPage(ctx context.Context, page, pageSize int) ([]*entity.User, error) {
	if err := s.hit("ListPage"); err != nil {
		return nil, err
	}
	return s.UserRepository.ListPage(ctx, page, pageSize)
}

func (s *spyRepo) Update(ctx context.Context, u *entity.User) (*entity.User, error) {
	if err := s.hit("Update"); err != nil {
		return nil, err
	}
	return s.UserRepository.Update(ctx, u)
}

func (s *spyRepo) Delete(ctx context.Context, id string) error {
	if err := s.hit("Delete"); err != nil {
		return err
	}
	return s.UserRepository.Delete(ctx, id)
}

func (s *spyRepo) ExistsByEmail(ctx context.Context, email entity.Email) (bool, error) {
	if err := s.hit("ExistsByEmail"); err != nil {
		return false, err
	}
	if s.existsF != nil {
		return s.existsF(email), nil
	}
	return s.UserRepository.ExistsByEmail(ctx, email)
}

func (s *spyRepo) Count(ctx context.Context) (int64, error) {
	if err := s.hit("Count"); err != nil {
		return 0, err
	}
	return s.UserRepository.Count(ctx)
}

type welcome struct {
	to   string
	name string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []welcome
	err  error
}

func (f *fakeNotifier) SendWelcome(_ context.Context, to, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, welcome{to: to, name: name})
	return f.err
}

var errBoom = errors.New("boom")
