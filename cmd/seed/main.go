// Command seed bootstraps a fresh installation: it creates the admin
// account, the default business settings and the default page skeletons.
// Running it again is safe, existing rows are left alone except for the
// admin password which is reset to the provided value.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/aea-eng/aea-backend/config"
	"github.com/aea-eng/aea-backend/internal/database"
	"github.com/aea-eng/aea-backend/internal/domain"
	"github.com/aea-eng/aea-backend/internal/repository"
)

func main() {
	email := flag.String("email", os.Getenv("SEED_ADMIN_EMAIL"), "admin email address")
	password := flag.String("password", os.Getenv("SEED_ADMIN_PASSWORD"), "admin password")
	name := flag.String("name", envOr("SEED_ADMIN_NAME", "Administrator"), "admin display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("an admin email and password are required (flags or SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.EnsureDatabaseExists(&cfg.Database); err != nil {
		log.Fatalf("Failed to ensure database exists: %v", err)
	}
	db, err := database.Connect(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.InitializeDatabase(db); err != nil {
		log.Fatalf("Failed to initialize database schema: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seedAdmin(ctx, repository.NewAdminRepository(db), *email, *password, *name); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	if err := seedSettings(ctx, repository.NewSettingsRepository(db)); err != nil {
		log.Fatalf("Failed to seed settings: %v", err)
	}
	if err := seedPages(ctx, repository.NewPageContentRepository(db)); err != nil {
		log.Fatalf("Failed to seed pages: %v", err)
	}

	fmt.Println("Seed complete")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// seedAdmin creates the admin account, or resets its password when the
// account already exists.
func seedAdmin(ctx context.Context, repo domain.AdminRepository, email, password, name string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	existing, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if !domain.IsNotFound(err) {
			return err
		}
		admin := &domain.Admin{
			Email:        email,
			PasswordHash: string(hash),
			Name:         name,
		}
		if err := repo.Create(ctx, admin); err != nil {
			return err
		}
		fmt.Printf("Created admin %s\n", admin.Email)
		return nil
	}

	if _, err := repo.Update(ctx, existing.ID, domain.Fields{"passwordHash": string(hash)}); err != nil {
		return err
	}
	fmt.Printf("Reset password for admin %s\n", existing.Email)
	return nil
}

// seedSettings inserts the default business settings when no row exists yet.
func seedSettings(ctx context.Context, repo domain.SettingsRepository) error {
	if _, err := repo.Get(ctx); err == nil {
		return nil
	} else if !domain.IsNotFound(err) {
		return err
	}

	_, err := repo.Update(ctx, domain.Fields{
		"businessName": "Agricultural Engineering Associates",
		"address":      "812 Central Ave, Suite 4",
		"city":         "Uhrichsville",
		"state":        "KS",
		"zip":          "67576",
		"phone":        "1-800-499-5893",
		"email":        "info@aea-eng.com",
		"website":      "https://www.aea-eng.com",
	})
	if err != nil {
		return err
	}
	fmt.Println("Created default settings")
	return nil
}

// seedPages creates an empty skeleton for each public page that does not
// exist yet, so the admin UI has rows to edit.
func seedPages(ctx context.Context, repo domain.PageContentRepository) error {
	pageNames := []string{"home", "about", "services", "projects", "contact"}

	for _, pageName := range pageNames {
		if _, err := repo.GetByPageName(ctx, pageName); err == nil {
			continue
		} else if !domain.IsNotFound(err) {
			return err
		}

		page := &domain.PageContent{
			PageName: pageName,
			Sections: domain.SectionList{},
		}
		if err := repo.Create(ctx, page); err != nil {
			return err
		}
		fmt.Printf("Created page %s\n", pageName)
	}
	return nil
}
