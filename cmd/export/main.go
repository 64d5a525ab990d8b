package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/nexus-admin/config"
	"github.com/oksasatya/nexus-admin/internal/application/export"
	gcsinfra "github.com/oksasatya/nexus-admin/internal/infrastructure/gcs"
	"github.com/oksasatya/nexus-admin/internal/infrastructure/storage"
	"github.com/oksasatya/nexus-admin/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-export", cfg.Env)

	if cfg.GCSBucket == "" {
		log.Fatal("GCS_BUCKET not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	repo, closeStorage, err := storage.OpenUserRepository(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open user storage: %v", err)
	}
	defer closeStorage()

	gcsClient, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
	if err != nil {
		log.Fatalf("failed to init GCS client: %v", err)
	}
	defer func() { _ = gcsClient.Close() }()

	res, err := export.NewExportUsers(repo, gcsinfra.NewUploader(gcsClient, cfg.GCSBucket), logger).Execute(ctx)
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}
	logger.WithFields(logrus.Fields{"url": res.URL, "count": res.Count}).Info("users exported")
}
