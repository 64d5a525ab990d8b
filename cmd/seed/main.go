package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/nexus-admin/config"
	userapp "github.com/oksasatya/nexus-admin/internal/application/user"
	"github.com/oksasatya/nexus-admin/internal/domain/entity"
	"github.com/oksasatya/nexus-admin/internal/infrastructure/rabbitmq"
	"github.com/oksasatya/nexus-admin/internal/infrastructure/storage"
	"github.com/oksasatya/nexus-admin/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo, closeStorage, err := storage.OpenUserRepository(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open user storage: %v", err)
	}
	defer closeStorage()

	// seeding never sends mail
	notifier := rabbitmq.NewWelcomeNotifier(nil, cfg, logger)

	res, err := userapp.NewCreateUser(repo, notifier, logger).Execute(ctx, userapp.CreateUserRequest{
		Email: cfg.SeedAdminEmail,
		Name:  cfg.SeedAdminName,
		Role:  entity.RoleAdmin,
	})
	if errors.Is(err, entity.ErrAlreadyExists) {
		logger.WithField("email", cfg.SeedAdminEmail).Info("admin already seeded")
		return
	}
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	logger.WithFields(logrus.Fields{"id": res.ID, "email": res.Email, "role": res.Role}).Info("seeded admin user")
}
