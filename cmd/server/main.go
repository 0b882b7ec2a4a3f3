package main

import (
	"context"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	_ "poppys/docs" // swagger docs

	"poppys/internal/auth"
	"poppys/internal/cache"
	"poppys/internal/config"
	"poppys/internal/db"
	"poppys/internal/handler"
	"poppys/internal/repository"
	"poppys/internal/router"
	"poppys/internal/service"
)

// @title Poppy's Premium API
// @version 1.0
// @description E-commerce backend with users, products, orders and reporting, secured by JWT bearer authentication.
// @host localhost:5000
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	client, database, err := db.NewMongo(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	logger.Info().Str("database", cfg.MongoDB).Msg("connected to mongo")

	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		logger.Fatal().Err(err).Msg("token service init")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	ctx := context.Background()
	userRepo := repository.NewUserRepository(ctx, &logger, database)
	productRepo := repository.NewProductRepository(database)
	orderRepo := repository.NewOrderRepository(database)

	userService := service.NewUserService(userRepo, tokens)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo)
	reportService := service.NewReportService(orderRepo, userRepo, cacheClient)

	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	reportHandler := handler.NewReportHandler(reportService)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, userHandler, productHandler, orderHandler, reportHandler)

	addr := ":" + cfg.ServerPort
	logger.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server start")
	}
}
