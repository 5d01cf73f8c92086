package main

import (
	"context"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/zhiren/talenthub/config"
	"github.com/zhiren/talenthub/internal/api/handlers"
	"github.com/zhiren/talenthub/internal/api/middleware"
	"github.com/zhiren/talenthub/internal/api/routes"
	"github.com/zhiren/talenthub/internal/cache"
	"github.com/zhiren/talenthub/internal/logger"
	"github.com/zhiren/talenthub/internal/providers/llm"
	mongorepo "github.com/zhiren/talenthub/internal/repositories/mongo"
	"github.com/zhiren/talenthub/internal/repositories/memory"
	pgrepo "github.com/zhiren/talenthub/internal/repositories/postgres"
	"github.com/zhiren/talenthub/internal/services"
	"github.com/zhiren/talenthub/internal/storage"
	"github.com/zhiren/talenthub/internal/workers"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	ctx := context.Background()

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	if err := config.MigratePostgres(); err != nil {
		log.Fatalf("PostgreSQL migrate error: %v", err)
	}
	log.Info("PostgreSQL connected")

	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}
	log.Info("MongoDB connected")

	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	log.Info("Redis connected")

	// repositories
	candidates := pgrepo.NewCandidateRepo(config.PostgresDB)
	interviews := pgrepo.NewInterviewRepo(config.PostgresDB)
	applications := pgrepo.NewApplicationRepo(config.PostgresDB)
	offices := pgrepo.NewOfficeRepo(config.PostgresDB)
	notifications := mongorepo.NewNotificationRepo(config.MongoClient.Database(config.MongoDBName()))

	// resume storage (optional; routes degrade to 500 on upload without it)
	var uploader storage.Uploader
	if bucket := os.Getenv("RESUME_BUCKET"); bucket != "" {
		up, err := storage.NewGCSUploader(ctx, bucket)
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		defer up.Close()
		uploader = up
	} else {
		log.Warn("RESUME_BUCKET not set; resume uploads disabled")
	}

	// smart scheduler provider (optional)
	var provider llm.Provider
	if project := os.Getenv("VERTEX_PROJECT_ID"); project != "" {
		p, err := llm.NewVertexGemini(ctx, project, os.Getenv("VERTEX_LOCATION"), os.Getenv("VERTEX_MODEL"))
		if err != nil {
			log.Fatalf("Vertex init error: %v", err)
		}
		defer p.Close()
		provider = p
	} else {
		log.Warn("VERTEX_PROJECT_ID not set; smart scheduler disabled")
	}

	rosterCache := cache.NewRedisCache(config.RedisClient)
	events := workers.NewStreamPublisher(config.RedisClient)

	// services
	candidateSvc := services.NewCandidateService(candidates, memory.NewCandidateStore(), rosterCache, uploader, events, log)
	interviewSvc := services.NewInterviewService(interviews)
	schedulerSvc := services.NewSchedulerService(provider)
	applicationSvc := services.NewApplicationService(applications, candidates)
	notificationSvc := services.NewNotificationService(notifications, config.RedisClient, log)
	officeSvc := services.NewOfficeService(offices)

	// notification fan-out workers
	pool := &workers.NotifyWorkerPool{
		Redis:         config.RedisClient,
		Notifications: notificationSvc,
		Logger:        log,
	}
	if err := pool.Start(ctx); err != nil {
		log.Fatalf("worker pool error: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.Default())

	routes.RegisterRoutes(r, routes.Deps{
		Candidate:    handlers.NewCandidateHandler(candidateSvc),
		Interview:    handlers.NewInterviewHandler(interviewSvc, schedulerSvc),
		Application:  handlers.NewApplicationHandler(applicationSvc),
		Notification: handlers.NewNotificationHandler(notificationSvc),
		Office:       handlers.NewOfficeHandler(officeSvc),
		WS:           handlers.NewWSHandler(config.RedisClient),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
