package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resumeiq/internal/config"
	"alfredoptarigan/resumeiq/internal/handlers"
	"alfredoptarigan/resumeiq/internal/repositories"
	"alfredoptarigan/resumeiq/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Analysis history is optional; without it nothing is persisted.
	var analysisRepo repositories.AnalysisRepository
	if cfg.History.Enabled {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to initialize database: %v", err)
		}
		defer config.CloseDatabase(db)
		analysisRepo = repositories.NewAnalysisRepository(db)
		log.Println("✅ Analysis history enabled")
	}

	// Initialize services
	uploadService := services.NewUploadService(cfg.Storage.MaxFileSize)
	pdfParser := services.NewPDFParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(
		context.Background(),
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		services.WithTemperature(cfg.Gemini.Temperature),
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Printf("✅ Gemini AI initialized successfully (model: %s)", geminiService.ModelName())

	analyzerService := services.NewAnalyzerService(pdfParser, geminiService, analysisRepo)
	log.Println("✅ Analyzer service initialized")

	// Initialize Handlers
	pageHandler := handlers.NewPageHandler(
		analyzerService,
		uploadService,
		cfg.Storage.MaxFileSize,
		geminiService.ModelName(),
	)
	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService, uploadService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ResumeIQ",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		// Leave room for the multipart envelope and the job description.
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1024*1024,
		ErrorHandler: handlers.NewErrorHandler(cfg.Storage.MaxFileSize, geminiService.ModelName()),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Page
	app.Get("/", pageHandler.HandleIndex)
	app.Post("/analyze", pageHandler.HandleAnalyze)

	// API
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"model":   geminiService.ModelName(),
			"history": cfg.History.Enabled,
			"time":    time.Now(),
		})
	})

	api.Post("/analyze", analyzeHandler.HandleAnalyze)

	if analysisRepo != nil {
		resultHandler := handlers.NewResultHandler(analysisRepo)
		api.Get("/analyses", resultHandler.HandleListResults)
		api.Get("/analyses/:id", resultHandler.HandleGetResult)
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 Open http://localhost%s in your browser\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
