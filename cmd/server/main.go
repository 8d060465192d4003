package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/publora/backend/configs"
	"github.com/publora/backend/internal/api/handlers"
	"github.com/publora/backend/internal/api/middleware"
	"github.com/publora/backend/internal/dispatcher"
	job "github.com/publora/backend/internal/jobs"
	"github.com/publora/backend/internal/publisher"
	"github.com/publora/backend/internal/queue"
	"github.com/publora/backend/internal/repository"
	"github.com/publora/backend/internal/service"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	postRepo := repository.NewPostRepository(db)
	postContentRepo := repository.NewPostContentRepository(db)
	socialAccountRepo := repository.NewSocialAccountRepository(db)
	mediaAssetRepo := repository.NewMediaAssetRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	storageService := service.NewStorageService(*cfg)
	postService := service.NewPostService(db, postRepo, postContentRepo)
	mediaService := service.NewMediaService(mediaAssetRepo, storageService)
	accountService := service.NewAccountService(*cfg, socialAccountRepo)
	optimizeService := service.NewOptimizeService(*cfg)
	profileService := service.NewProfileService(profileRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	publishers := publisher.NewRegistry(
		publisher.NewInstagramPublisher(*cfg),
		publisher.NewFacebookPublisher(*cfg),
		publisher.NewTiktokPublisher(*cfg),
		publisher.NewPinterestPublisher(*cfg),
	)
	postDispatcher := dispatcher.New(postRepo, postContentRepo, socialAccountRepo, publishers)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	// invoked by the external scheduler, no auth
	dispatch := handlers.NewDispatchHandler(postDispatcher)
	app.All("/functions/publish-scheduled", dispatch.PublishScheduled)

	account := handlers.NewAccountHandler(accountService)
	app.Get("/auth/:platform", account.AddSocialAccount)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	profile := handlers.NewProfileHandler(profileService)
	api.Get("/user/info", profile.GetProfileInfo)
	api.Post("/user/remove", profile.DeleteAccount)

	settings := handlers.NewSettingsHandler(settingsService)
	api.Get("/settings/info", settings.GetSettingsInfo)
	api.Post("/settings/update", settings.UpdateSettings)

	post := handlers.NewPostHandler(postService)
	api.Post("/posts/create", post.CreatePost)
	api.Get("/posts", post.ListPosts)
	api.Post("/posts/status", post.UpdatePostStatus)
	api.Post("/posts/remove", post.RemovePost)

	optimize := handlers.NewOptimizeHandler(optimizeService)
	api.Post("/posts/optimize", optimize.OptimizeContent)

	media := handlers.NewMediaHandler(mediaService)
	api.Post("/media/upload", media.UploadMedia)
	api.Get("/media", media.ListMedia)
	api.Post("/media/remove", media.RemoveMedia)

	api.Post("/accounts/connect", account.ConnectAccount)
	api.Get("/accounts", account.ListSocialAccounts)
	api.Post("/accounts/active", account.SetAccountActive)
	api.Post("/accounts/remove", account.DeleteSocialAccount)

	// cron jobs
	dispatchJob := job.NewDispatchJob(client)

	c := cron.New()
	c.AddFunc("@every 00h01m00s", dispatchJob.EnqueueDispatch)
	c.Start()

	go func() {
		// Concurrency 1 on the dispatch queue keeps passes from
		// overlapping and double-publishing a post.
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				queue.QueueDispatch: 1,
			},
		})

		mux := asynq.NewServeMux()
		worker := queue.NewWorker(postDispatcher)
		mux.HandleFunc(queue.TaskTypeDispatchScheduled, worker.HandleDispatchTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on %s", cfg.ListenAddr)

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
