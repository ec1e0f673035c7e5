// Command seed creates or promotes the admin account. Configure with
// ADMIN_EMAIL, ADMIN_PASSWORD and ADMIN_NAME.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/campusconnect/backend/internal/config"
	"github.com/campusconnect/backend/internal/models"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/campusconnect/backend/internal/service"
	"github.com/campusconnect/backend/pkg/bcrypt"
	"github.com/campusconnect/backend/pkg/database"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongodb connection failed: %v", err)
	}

	users := repository.NewUserRepository(db)
	email := service.NormalizeEmail(cfg.AdminEmail)

	existing, err := users.GetByEmail(ctx, email)
	if err != nil {
		log.Fatalf("lookup failed: %v", err)
	}

	if existing != nil {
		existing.Role = models.RoleAdmin
		if err := users.Update(ctx, existing); err != nil {
			log.Fatalf("promote failed: %v", err)
		}
		log.Printf("updated existing user to admin: %s", email)
		return
	}

	hashed, err := bcrypt.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("hash failed: %v", err)
	}
	admin := &models.User{
		Name:     cfg.AdminName,
		Email:    email,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("create failed: %v", err)
	}
	log.Printf("created admin user: %s", email)
}
