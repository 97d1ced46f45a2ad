package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/resume-skill-ranker/internal/config"
	"alfredoptarigan/resume-skill-ranker/internal/handlers"
	"alfredoptarigan/resume-skill-ranker/internal/logger"
	"alfredoptarigan/resume-skill-ranker/internal/repositories"
	"alfredoptarigan/resume-skill-ranker/internal/services"
	"alfredoptarigan/resume-skill-ranker/internal/skills"
	"alfredoptarigan/resume-skill-ranker/internal/views"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	zl.Info("✅ Config loaded successfully", zap.String("env", cfg.Server.Env))

	// The database is only needed when the vocabulary lives in postgres
	var vocabRepo repositories.VocabularyRepository
	if cfg.Vocabulary.Source == config.VocabularySourcePostgres {
		db, err := config.InitDatabase(cfg, zl)
		if err != nil {
			zl.Fatal("❌ Failed to initialize database", zap.Error(err))
		}
		vocabRepo = repositories.NewVocabularyRepository(db)
	}

	vocab, err := services.LoadVocabulary(context.Background(), cfg.Vocabulary.Source, cfg.Vocabulary.File, vocabRepo)
	if err != nil {
		zl.Fatal("❌ Failed to load skill vocabulary", zap.Error(err))
	}
	matcher := skills.NewMatcher(vocab)
	zl.Info("✅ Skill vocabulary loaded",
		zap.String("source", cfg.Vocabulary.Source),
		zap.Int("phrases", vocab.Len()),
	)

	// Initialize services
	storageService := services.NewStorageService(
		cfg.Storage.UploadPath,
		cfg.Storage.MaxFileSize,
		cfg.Storage.AllowedExtensions,
	)
	if err := storageService.EnsureUploadDir(); err != nil {
		zl.Fatal("❌ Failed to create upload directory", zap.Error(err))
	}

	extractor := services.NewTextExtractorService(services.NewPDFParserService())
	ranker := services.NewRankerService(matcher, storageService, extractor, zl)
	zl.Info("✅ Services initialized successfully")

	// Initialize Handlers
	rankHandler := handlers.NewRankHandler(ranker)
	skillsHandler := handlers.NewSkillsHandler(matcher, ranker)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Skill Ranker",
		Views:        views.NewEngine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    int(cfg.Storage.MaxRequestSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	handlers.Register(app, rankHandler, skillsHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zl.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			zl.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zl.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zl.Fatal("❌ Failed to start server", zap.Error(err))
	}
}
