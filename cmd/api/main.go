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

	"atsoptimizer/ats-backend/internal/config"
	"atsoptimizer/ats-backend/internal/handlers"
	"atsoptimizer/ats-backend/internal/repositories"
	"atsoptimizer/ats-backend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	docRepo := repositories.NewDocumentRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	log.Println("✅ Repositories initialized successfully")

	ctx := context.Background()

	// Initialize file storage
	fileStore, err := newFileStore(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize file storage: %v", err)
	}
	log.Printf("✅ File storage initialized (%s)\n", cfg.Storage.Backend)

	// Initialize document pipeline
	pdfParser := services.NewPDFParserService()
	docxParser := services.NewDocxParserService()
	docService := services.NewDocumentService(docRepo, fileStore, pdfParser, docxParser, cfg.Storage.MaxFileSize)

	// Initialize job cache
	jobCache := services.NewNoopJobCache()
	if cfg.Cache.RedisAddr != "" {
		jobCache = services.NewRedisJobCache(
			cfg.Cache.RedisAddr,
			cfg.Cache.RedisPassword,
			cfg.Cache.RedisDB,
			cfg.Cache.TTL,
		)
		log.Printf("✅ Job cache initialized (redis: %s)\n", cfg.Cache.RedisAddr)
	}

	// Initialize job analysis
	extractor := services.NewKeywordExtractionService()
	jobService := services.NewJobService(jobRepo, extractor, jobCache)
	log.Println("✅ Services initialized successfully")

	// Initialize LLM client
	llmClient := services.NewLLMClient(cfg.LLM)
	log.Printf("✅ LLM client initialized (provider: %s)\n", cfg.LLM.Provider)

	// Initialize scoring agents and orchestrator
	keywordMatcher := services.NewKeywordMatcherAgent()
	atsChecker := services.NewAtsCheckerAgent()
	suggestionAgent := services.NewSuggestionAgent(llmClient)
	scoreCalculator := services.NewScoreCalculatorAgent(cfg.Agents)

	orchestrator := services.NewOrchestrator(
		docService,
		jobService,
		keywordMatcher,
		atsChecker,
		suggestionAgent,
		scoreCalculator,
	)
	log.Println("✅ Orchestrator initialized")

	analysisService := services.NewAnalysisService(analysisRepo, orchestrator)

	// Initialize worker
	worker := services.NewWorker(
		docRepo,
		docService,
		cfg.Worker.Concurrency,
		cfg.Worker.PollInterval,
	)
	log.Println("✅ Worker initialized successfully")

	// Start worker
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize handlers
	documentHandler := handlers.NewDocumentHandler(docService, worker)
	jobHandler := handlers.NewJobHandler(jobService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ATS Optimizer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Document endpoints
	api.Post("/documents", documentHandler.HandleUpload)
	api.Get("/documents/user/:userId", documentHandler.HandleListByUser)
	api.Get("/documents/:id", documentHandler.HandleGet)
	api.Delete("/documents/:id", documentHandler.HandleDelete)

	// Job endpoints
	api.Post("/jobs", jobHandler.HandleCreate)
	api.Get("/jobs/user/:userId", jobHandler.HandleListByUser)
	api.Get("/jobs/search", jobHandler.HandleSearch)
	api.Get("/jobs/:id", jobHandler.HandleGet)
	api.Put("/jobs/:id", jobHandler.HandleUpdate)
	api.Delete("/jobs/:id", jobHandler.HandleDelete)

	// Analysis endpoints
	api.Post("/analysis", analysisHandler.HandleCreate)
	api.Get("/analysis/user/:userId", analysisHandler.HandleListByUser)
	api.Get("/analysis/document/:id", analysisHandler.HandleListByDocument)
	api.Get("/analysis/job/:id", analysisHandler.HandleListByJob)
	api.Get("/analysis/:id", analysisHandler.HandleGet)
	api.Delete("/analysis/:id", analysisHandler.HandleDelete)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ATS Optimizer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/documents",
				"POST /api/v1/jobs",
				"POST /api/v1/analysis",
				"GET /api/v1/analysis/:id",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func newFileStore(ctx context.Context, cfg *config.Config) (services.FileStore, error) {
	if cfg.Storage.Backend == "s3" {
		return services.NewS3FileStore(ctx, cfg.Storage.S3Region, cfg.Storage.S3Bucket)
	}
	return services.NewLocalFileStore(cfg.Storage.UploadPath)
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
