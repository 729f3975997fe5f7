package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/lkcs/lkcs-backend/config"
	"github.com/lkcs/lkcs-backend/internal/api/handlers"
	"github.com/lkcs/lkcs-backend/internal/api/middleware"
	"github.com/lkcs/lkcs-backend/internal/api/routes"
	"github.com/lkcs/lkcs-backend/internal/logger"
	mongorepo "github.com/lkcs/lkcs-backend/internal/repositories/mongo"
	"github.com/lkcs/lkcs-backend/internal/services"
	"github.com/lkcs/lkcs-backend/internal/storage"
	"github.com/lkcs/lkcs-backend/internal/upload"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	l.Info("MongoDB connected")

	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}

	if err := config.EnsureUploadDirs(); err != nil {
		log.Fatalf("upload dir error: %v", err)
	}

	resumeStore, err := storage.NewDiskStore(config.ResumesDir())
	if err != nil {
		log.Fatalf("resume store error: %v", err)
	}
	imageStore, err := storage.NewDiskStore(config.ImagesDir())
	if err != nil {
		log.Fatalf("image store error: %v", err)
	}

	db := config.MongoDB()

	resumePolicy := upload.ResumePolicy(resumeStore)
	imagePolicy := upload.ImagePolicy(imageStore)

	appSvc := services.NewApplicationService(mongorepo.NewApplicationRepo(db), resumeStore, l)
	enqSvc := services.NewEnquiryService(mongorepo.NewEnquiryRepo(db))
	evtSvc := services.NewEventService(mongorepo.NewEventRepo(db))
	galSvc := services.NewGalleryService(mongorepo.NewGalleryRepo(db), imagePolicy, imageStore, imageStore.Dir(), l)
	authSvc := services.NewAuthService(services.AuthConfig{
		Username:     os.Getenv("ADMIN_USER"),
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		Secret:       []byte(os.Getenv("JWT_SECRET")),
		TTL:          12 * time.Hour,
	})

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))
	r.Use(middleware.SecureHeaders())
	r.Use(middleware.CORS(os.Getenv("CLIENT_ORIGIN")))
	r.Use(middleware.NewIPRateLimiter(2, 120).Middleware())
	// headroom above the 50MB image ceiling: the per-policy size checks must
	// see the parsed form, not a truncated body
	r.Use(middleware.BodyLimit(60 << 20))

	routes.RegisterRoutes(r, routes.Deps{
		Application: handlers.NewApplicationHandler(appSvc, resumePolicy),
		Enquiry:     handlers.NewEnquiryHandler(enqSvc),
		Event:       handlers.NewEventHandler(evtSvc),
		Gallery:     handlers.NewGalleryHandler(galSvc, imagePolicy),
		Auth:        handlers.NewAuthHandler(authSvc),
		Health: handlers.NewHealthHandler(func(ctx context.Context) error {
			return config.MongoClient.Ping(ctx, nil)
		}),
		AuthSvc:   authSvc,
		ImagesDir: imageStore.Dir(),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	l.WithField("port", port).Info("API listening")
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
