package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"planetary/internal/config"
	"planetary/internal/db"
	"planetary/internal/model"
	"planetary/internal/repository"
)

var seedPlanets = []model.Planet{
	{Name: "Earth", Mass: 5.972e24, Radius: 6371, Distance: 149.6e6},
	{Name: "Mars", Mass: 6.39e23, Radius: 3389.5, Distance: 227.9e6},
	{Name: "Saturn", Mass: 5.683e26, Radius: 58232, Distance: 1.434e9},
}

var seedUser = model.User{
	FirstName: "Fardeen",
	LastName:  "Hossain",
	Email:     "fardeen@email.com",
}

const seedUserPassword = "password"

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.Planet{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	planetRepo := repository.NewPlanetRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	created, updated, err := seedPlanetRecords(ctx, planetRepo)
	if err != nil {
		log.Fatalf("Failed to seed planets: %v", err)
	}

	if err := seedTestUser(ctx, userRepo); err != nil {
		log.Fatalf("Failed to seed test user: %v", err)
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - New planets created: %d", created)
	log.Printf("  - Existing planets updated: %d", updated)
	log.Printf("  - Test user: %s", seedUser.Email)
}

// seedPlanetRecords creates or updates the reference planets, keyed by name.
func seedPlanetRecords(ctx context.Context, repo repository.PlanetRepository) (created int, updated int, err error) {
	for _, planet := range seedPlanets {
		existing, err := repo.FindByName(ctx, planet.Name)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, updated, fmt.Errorf("error checking planet %s: %w", planet.Name, err)
		}

		if existing != nil {
			existing.Mass = planet.Mass
			existing.Radius = planet.Radius
			existing.Distance = planet.Distance
			if err := repo.Update(ctx, existing); err != nil {
				return created, updated, fmt.Errorf("error updating planet %s: %w", planet.Name, err)
			}
			updated++
		} else {
			planet := planet
			if err := repo.Create(ctx, &planet); err != nil {
				return created, updated, fmt.Errorf("error creating planet %s: %w", planet.Name, err)
			}
			created++
		}
	}

	return created, updated, nil
}

// seedTestUser creates the test user if it does not exist yet.
func seedTestUser(ctx context.Context, repo repository.UserRepository) error {
	existing, err := repo.FindByEmail(ctx, seedUser.Email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("error checking user %s: %w", seedUser.Email, err)
	}
	if existing != nil {
		log.Printf("Test user %s already exists, skipping", seedUser.Email)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := seedUser
	user.PasswordHash = string(hashed)
	if err := repo.Create(ctx, &user); err != nil {
		return fmt.Errorf("error creating user %s: %w", user.Email, err)
	}
	return nil
}
