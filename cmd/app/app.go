package app

import (
	"context"
	"log"

	"ukmprhub/internal/ai"
	"ukmprhub/internal/config"
	"ukmprhub/internal/database"
	"ukmprhub/internal/repository"
	"ukmprhub/internal/service"
	"ukmprhub/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// connection MinIO, optional: without it images stay inline
	var store storage.Storage
	if cfg.MinIO.Enabled() {
		minioClient, err := storage.NewMinIOClient(context.Background(), cfg.MinIO)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO: %v", err)
		}
		store = minioClient
	} else {
		log.Println("MINIO_ENDPOINT not set, images are stored inline")
	}
	media := storage.NewMedia(store, cfg.MaxUploadSize)

	// gemini client, optional: without a key the AI endpoints use fallbacks
	gemini, err := ai.NewClient(context.Background(), cfg.AI)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	content := ai.NewService(gemini, cfg.AI)
	if !gemini.HasKey() {
		log.Println("Warning: GEMINI_API_KEY not set, AI endpoints serve fallback content")
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, media, content, db)

	return db, repo, services
}
