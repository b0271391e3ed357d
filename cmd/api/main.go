// Package main is the entry point for the contact management service.
package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/mrifkiw/contact-management/internal/config"
	"github.com/mrifkiw/contact-management/internal/database"
	"github.com/mrifkiw/contact-management/internal/handlers"
	"github.com/mrifkiw/contact-management/internal/middleware"
	"github.com/mrifkiw/contact-management/internal/repository"
	"github.com/mrifkiw/contact-management/internal/routes"
	"github.com/mrifkiw/contact-management/internal/service"
	"github.com/mrifkiw/contact-management/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.Connect(cfg)
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		zlog.Fatalw("failed to migrate database", "error", err)
	}

	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	addressRepo := repository.NewAddressRepository(db)

	userService := service.NewUserService(userRepo, zlog)
	contactService := service.NewContactService(contactRepo, zlog)
	addressService := service.NewAddressService(contactRepo, addressRepo, zlog)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	routes.Setup(router, routes.Handlers{
		User:    handlers.NewUserHandler(userService, zlog),
		Contact: handlers.NewContactHandler(contactService, zlog),
		Address: handlers.NewAddressHandler(addressService, zlog),
		Health:  handlers.NewHealthHandler(),
	}, middleware.NewAuthMiddleware(userService, zlog), cfg, zlog)

	zlog.Infow("starting contact management service", "port", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		zlog.Fatalw("server stopped", "error", err)
	}
}
