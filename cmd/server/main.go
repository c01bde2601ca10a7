package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "saasland/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"saasland/internal/cache"
	"saasland/internal/config"
	"saasland/internal/handler"
	"saasland/internal/router"
	"saasland/internal/service"
	"saasland/internal/store"
)

// @title SaaS Landing API
// @version 1.0
// @description Backend for the marketing site: pricing, blog feed, demo auth, and contact intake.
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	// The store handle lives for the whole process. A failed connection is
	// not fatal: data endpoints report it per request and /test shows the
	// degraded state.
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	documentStore, err := store.NewMongo(connectCtx, cfg.DatabaseURL, cfg.DatabaseName)
	cancel()
	if err != nil {
		log.Printf("document store init: %v (continuing without database)", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize services
	authService := service.NewAuthService(documentStore)
	blogService := service.NewBlogService(documentStore, cacheClient)
	contactService := service.NewContactService(documentStore)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(documentStore, cfg)
	pricingHandler := handler.NewPricingHandler()
	authHandler := handler.NewAuthHandler(authService)
	blogHandler := handler.NewBlogHandler(blogService)
	contactHandler := handler.NewContactHandler(contactService)

	// Register routes
	router.Register(
		e,
		healthHandler,
		pricingHandler,
		authHandler,
		blogHandler,
		contactHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
