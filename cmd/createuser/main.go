package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"go-recruitment-tracker/config"
	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/internal/repository/postgres"
	"go-recruitment-tracker/internal/usecase"
	"go-recruitment-tracker/pkg/apperror"
	"go-recruitment-tracker/pkg/auth"
	"go-recruitment-tracker/pkg/database"
	"go-recruitment-tracker/pkg/logger"
	"go-recruitment-tracker/pkg/security"
	"go-recruitment-tracker/pkg/validation"
)

// Usage: createuser -email ana@example.com -name "Ana" [-password secret]
// The password falls back to CREATEUSER_PASSWORD so it stays out of shell history.
func main() {
	email := flag.String("email", "", "user email")
	name := flag.String("name", "", "display name")
	password := flag.String("password", os.Getenv("CREATEUSER_PASSWORD"), "password (min 8 characters)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.DefaultPoolOptions())
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	authUC := usecase.NewAuthUsecase(
		postgres.NewUserRepository(pool),
		auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute),
		security.NewLoginTracker(security.DefaultLoginTrackerConfig(), nil),
		security.DefaultLogger(),
		validation.New(),
	)

	result, err := authUC.Register(ctx, map[string]any{
		"nombre":                *name,
		"email":                 *email,
		"password":              *password,
		"password_confirmation": *password,
	}, domain.ClientInfo{IP: "cli"})
	if err != nil {
		appErr := apperror.As(err)
		for field, messages := range appErr.Fields {
			log.Printf("%s: %s", field, strings.Join(messages, " "))
		}
		log.Fatalf("create user: %s", appErr.Message)
	}

	log.Printf("User %s created (%s)", result.User.Email, result.User.ID)
}
