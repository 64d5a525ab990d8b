package router

import (
	"github.com/oksasatya/nexus-admin/internal/application/export"
	userapp "github.com/oksasatya/nexus-admin/internal/application/user"
	"github.com/oksasatya/nexus-admin/internal/container"
	"github.com/oksasatya/nexus-admin/internal/domain/repository"
	esinfra "github.com/oksasatya/nexus-admin/internal/infrastructure/elasticsearch"
	gcsinfra "github.com/oksasatya/nexus-admin/internal/infrastructure/gcs"
	"github.com/oksasatya/nexus-admin/internal/infrastructure/memory"
	"github.com/oksasatya/nexus-admin/internal/infrastructure/rabbitmq"
	handlers "github.com/oksasatya/nexus-admin/internal/interface/http"
	"github.com/oksasatya/nexus-admin/internal/router/modules"
)

type UserModuleDeps struct {
	Repo     repository.UserRepository
	UseCases *userapp.UseCases
	Handler  *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	repo := container.GetUserRepository()
	if repo == nil {
		logger.Warn("no user repository registered; using in-memory storage")
		repo = memory.NewUserRepository()
		container.SetUserRepository(repo)
	}

	var index repository.UserSearchIndex
	if es := container.GetES(); es != nil {
		index = esinfra.NewUserIndex(es, cfg.ESUsersIndex)
		repo = esinfra.NewIndexingRepository(repo, index, logger)
	}

	var pub rabbitmq.JobPublisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}
	notifier := rabbitmq.NewWelcomeNotifier(pub, cfg, logger)

	var uploader export.ObjectUploader
	if gcs := container.GetGCS(); gcs != nil && cfg.GCSBucket != "" {
		uploader = gcsinfra.NewUploader(gcs, cfg.GCSBucket)
	}

	uc := userapp.NewUseCases(repo, notifier, logger)
	handler := handlers.NewUserHandler(
		uc,
		userapp.NewSearchUsers(index),
		export.NewExportUsers(repo, uploader, logger),
		logger,
	)

	return UserModuleDeps{
		Repo:     repo,
		UseCases: uc,
		Handler:  handler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()

	userDeps := buildUserDeps()
	r.Add(modules.NewUserModule(userDeps.Handler, container.GetRedis(), cfg.RateLimitPerMinute))

	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(container.GetRedis()))
	}
}
