package storage

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/nexus-admin/config"
	"github.com/oksasatya/nexus-admin/internal/domain/repository"
	"github.com/oksasatya/nexus-admin/internal/infrastructure/memory"
	mongoinfra "github.com/oksasatya/nexus-admin/internal/infrastructure/mongodb"
	pginfra "github.com/oksasatya/nexus-admin/internal/infrastructure/postgres"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// OpenUserRepository connects the storage selected by cfg.StorageDriver.
// The returned close func releases the underlying connection and is never nil.
func OpenUserRepository(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (repository.UserRepository, func(), error) {
	switch cfg.StorageDriver {
	case DriverMemory:
		logger.Warn("using in-memory user storage; data is lost on restart")
		return memory.NewUserRepository(), func() {}, nil

	case DriverPostgres:
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN, cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		repo, err := pginfra.NewUserRepository(ctx, pool, logger)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil

	case DriverMongo, "":
		client, db, err := mongoinfra.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoConnectTimeout)
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongodb: %w", err)
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		repo, err := mongoinfra.NewUserRepository(ctx, db, cfg.MongoUsersCollection, logger)
		if err != nil {
			closeFn()
			return nil, nil, err
		}
		return repo, closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}
