package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/strikbal/rating-backend/internal/config"
	"github.com/strikbal/rating-backend/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Registration never grants the admin flag, so the first admin has to be
// promoted directly in the database. Usage:
//
//	go run scripts/promote-admin.go you@example.com
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: promote-admin <email>")
		os.Exit(1)
	}
	email := strings.ToLower(strings.TrimSpace(os.Args[1]))

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}

	res := db.Model(&domain.User{}).Where("email = ?", email).Update("is_admin", true)
	if res.Error != nil {
		fmt.Fprintf(os.Stderr, "Failed to promote user: %v\n", res.Error)
		os.Exit(1)
	}
	if res.RowsAffected == 0 {
		fmt.Fprintf(os.Stderr, "No user found with email %s\n", email)
		os.Exit(1)
	}

	fmt.Printf("✓ %s is now an admin\n", email)
}
