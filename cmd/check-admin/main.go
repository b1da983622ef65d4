package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/glinthive/site-backend/internal/config"
	"github.com/glinthive/site-backend/internal/database"
	"github.com/glinthive/site-backend/internal/logger"
	"github.com/glinthive/site-backend/internal/repository"
)

func main() {
	var username string
	flag.StringVar(&username, "username", "", "Admin username to inspect (default: report the count only)")
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

	fmt.Println("=== Admin Check ===")

	count, err := adminRepo.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count admins")
	}
	fmt.Printf("Admins in database: %d\n", count)
	if count == 0 {
		fmt.Println("No admin found. Run setup-admin to create one.")
		os.Exit(1)
	}
	if username == "" {
		return
	}

	admin, err := adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			fmt.Printf("Admin '%s' not found.\n", username)
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("Failed to load admin")
	}

	pub := admin.Public()
	fmt.Printf("ID:       %s\n", pub.ID)
	fmt.Printf("Username: %s\n", pub.Username)
	fmt.Printf("Email:    %s\n", pub.Email)
	fmt.Printf("Role:     %s\n", pub.Role)
	fmt.Printf("Created:  %s\n", admin.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Password hash stored: %t\n", admin.PasswordHash != "")
}
