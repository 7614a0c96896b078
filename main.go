package main

import (
	"context"
	"jiwoo-back/cache"
	"jiwoo-back/config"
	"jiwoo-back/controllers"
	"jiwoo-back/controllers/idgen"
	"jiwoo-back/database"
	"jiwoo-back/integrations/openai"
	"jiwoo-back/integrations/pyserver"
	"jiwoo-back/logger"
	"jiwoo-back/mailer"
	"jiwoo-back/metrics"
	"jiwoo-back/middleware"
	"jiwoo-back/migration"
	"jiwoo-back/repositories"
	"jiwoo-back/routes"
	"jiwoo-back/services"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	config.LoadConfig()
	logger.Setup(config.IsProduction(), config.LOG_LEVEL)
	log := logger.WithComponent("main")

	nodeID, _ := strconv.ParseInt(os.Getenv("NODE_ID"), 10, 64)
	if nodeID <= 0 {
		nodeID = 1
	}
	if err := idgen.Init(nodeID); err != nil {
		log.Fatalf("Failed to init id generator: %v", err)
	}

	if err := database.EnsureDatabaseExists(config.DBName); err != nil {
		log.Fatalf("Failed to ensure database: %v", err)
	}

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}
	database.RunSeeders(db)

	llm, err := openai.New(openai.Config{
		APIKey:            config.OpenAIAPIKey,
		BaseURL:           config.OpenAIBaseURL,
		Model:             config.OpenAIModel,
		RequestsPerSecond: config.OpenAIRPS,
		MaxRetries:        2,
	})
	if err != nil {
		log.Fatalf("Failed to create OpenAI client: %v", err)
	}

	var answerCache cache.Cache = cache.Nop{}
	if config.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(config.RedisURL, "jiwoo:")
		if err != nil {
			log.Fatalf("Failed to configure redis: %v", err)
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			log.WithError(err).Warn("redis unreachable, answers will not be cached")
		} else {
			answerCache = redisCache
		}
		cancel()
		defer redisCache.Close()
	}

	var mail mailer.Mailer
	if config.SMTPHost != "" {
		mail = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     config.SMTPHost,
			Port:     config.SMTPPort,
			User:     config.SMTPUser,
			Password: config.SMTPPassword,
			Sender:   config.SMTPSender,
		})
	}

	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	businessRepo := repositories.NewBusinessRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	supportProgramRepo := repositories.NewSupportProgramRepository(db)
	historyRepo := repositories.NewMarketResearchRepository(db)

	tokens := services.NewTokenIssuer(
		config.JWTSecret,
		time.Duration(config.JWTExpiration)*time.Second,
		time.Duration(config.JWTRefreshExpiration)*time.Second,
	)
	userService := services.NewUserService(userRepo, sessionRepo, tokens).
		WithRefreshRotation(config.RefreshTokenRotation)
	businessService := services.NewBusinessService(businessRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	supportProgramService := services.NewSupportProgramService(supportProgramRepo, businessRepo, categoryRepo)
	searcher := pyserver.NewClient(config.PythonServerURL, config.PythonServerTimeout)
	marketResearchService := services.NewMarketResearchService(services.MarketResearchDeps{
		LLM:        llm,
		Searcher:   searcher,
		Categories: categoryService,
		Businesses: businessService,
		History:    historyRepo,
		Cache:      answerCache,
		CacheTTL:   config.CacheTTL,
		Mailer:     mail,
	})
	businessModelService := services.NewBusinessModelService(llm, searcher, businessService, categoryService)

	app := fiber.New(fiber.Config{
		ErrorHandler: config.ErrorHandler,
		BodyLimit:    20 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	config.SetupCORS(app)
	app.Use(metrics.Middleware())

	routes.Setup(app, routes.Controllers{
		Auth:           controllers.NewAuthController(userService),
		Business:       controllers.NewBusinessController(businessService, userService),
		Category:       controllers.NewCategoryController(categoryService),
		SupportProgram: controllers.NewSupportProgramController(supportProgramService),
		MarketResearch: controllers.NewMarketResearchController(marketResearchService),
		BusinessModel:  controllers.NewBusinessModelController(businessModelService),
	}, middleware.AuthMiddleware(userService), middleware.OptionalAuth(userService))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	port := config.APP_PORT
	log.Infof("server listening on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
