package main

import (
	"context"
	"log"
	"time"

	"github.com/JosephOluOlofinte/sleat-backend/config"
	"github.com/JosephOluOlofinte/sleat-backend/db"
	"github.com/JosephOluOlofinte/sleat-backend/internal/auth/handler"
	repo "github.com/JosephOluOlofinte/sleat-backend/internal/auth/repository/postgres"
	"github.com/JosephOluOlofinte/sleat-backend/internal/auth/service"
	"github.com/JosephOluOlofinte/sleat-backend/internal/mailer"
	"github.com/JosephOluOlofinte/sleat-backend/pkg/datetime"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to create database pool: %v", err)
	}
	defer dbPool.Close()

	userRepo := repo.NewUserRepository(dbPool)
	sessionRepo := repo.NewSessionRepository(dbPool)
	codeRepo := repo.NewVerificationCodeRepository(dbPool)

	tokenService := service.NewTokenService(
		cfg.AccessTokenSecret,
		cfg.RefreshTokenSecret,
		time.Duration(cfg.AccessExpiryMin)*time.Minute,
		time.Duration(cfg.RefreshExpiryDays)*datetime.OneDay,
	)

	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.EmailSender)

	authService := service.NewAuthService(userRepo, sessionRepo, codeRepo, tokenService, smtpMailer, cfg)
	authHandler := handler.NewAuthHandler(authService, tokenService, cfg)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	log.Printf("listening on port %s in the %s environment", cfg.Port, cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
