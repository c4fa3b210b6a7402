package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"axishotel/internal/config"
	"axishotel/internal/database"
	"axishotel/internal/middleware"
	"axishotel/internal/modules/admin"
	"axishotel/internal/modules/auth"
	"axishotel/internal/modules/inquiry"
	"axishotel/internal/modules/notify"
	jwtsvc "axishotel/internal/pkg/jwt"
	"axishotel/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(repository.Models()...); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := notify.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j, cfg.AdminEmail)
	authHandler := auth.NewHandler(authService)

	inquiryService := inquiry.NewService(inquiryRepo, notify.NewInquiryEvents(hub))
	inquiryHandler := inquiry.NewHandler(inquiryService)

	adminService := admin.NewService(inquiryRepo)
	adminHandler := admin.NewHandler(adminService)

	feedHandler := notify.NewWSHandler(hub, j, cfg.AdminEmail)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public: booking form submissions and auth
		authHandler.RegisterPublicRoutes(v1)
		inquiryHandler.RegisterRoutes(v1)

		// authenticated
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
		}

		// admin dashboard; token rides the query string on the feed
		v1.GET("/admin/inquiries/feed", feedHandler.HandleFeed)

		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(j), middleware.AdminGate(cfg.AdminEmail))
		{
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
