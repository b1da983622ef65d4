package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/glinthive/site-backend/internal/config"
	"github.com/glinthive/site-backend/internal/database"
	"github.com/glinthive/site-backend/internal/logger"
	"github.com/glinthive/site-backend/internal/model"
	"github.com/glinthive/site-backend/internal/repository"
	"github.com/glinthive/site-backend/internal/service"
	"github.com/glinthive/site-backend/internal/validator"
	"golang.org/x/term"
)

func main() {
	var username, email string
	flag.StringVar(&username, "username", "", "Admin username")
	flag.StringVar(&email, "email", "", "Admin email")
	flag.Parse()

	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	adminRepo := repository.NewAdminRepository(pool)

	count, err := adminRepo.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count admins")
	}
	if count > 0 {
		fmt.Println("An admin already exists. Nothing to do.")
		return
	}

	// ─── Initialize Service ────────────────────────────────────────────
	authService, err := service.NewAuthService(adminRepo, service.NewBcryptHasher(cfg.BcryptCost), service.NewTokenIssuer(cfg.JWTSecret), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize auth service")
	}

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create Initial Admin ===")

	if username == "" {
		username = prompt(reader, "Enter Username: ")
	}
	if email == "" {
		email = prompt(reader, "Enter Email: ")
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		fmt.Print("Enter Password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println() // Newline after password input
		if err != nil {
			fmt.Println("Error reading password")
			os.Exit(1)
		}
		password = string(bytePassword)
	}

	req := model.CreateAdminRequest{Username: username, Email: email, Password: password}
	if fields := validator.Struct(req); fields != nil {
		for field, msg := range fields {
			fmt.Printf("Error: %s: %s\n", field, msg)
		}
		os.Exit(1)
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	admin, err := authService.CreateAdmin(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrAdminExists) {
			fmt.Println("An admin with that username or email already exists.")
			return
		}
		log.Fatal().Err(err).Msg("Failed to create admin")
	}

	fmt.Printf("\nSuccess! Admin '%s' (%s) created with ID: %s\n", admin.Username, admin.Email, admin.ID)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
