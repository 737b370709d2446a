package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"contacts-http-service/config"
	"contacts-http-service/internal/infrastructure/database"
	"contacts-http-service/models"
	"contacts-http-service/routes"
)

func main() {
	// Initialize logging
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	// Load the .env file; missing is fine, the environment may already be set
	if err := godotenv.Load(); err != nil {
		config.Warning("no .env file loaded: %v", err)
	} else {
		config.Info("loaded .env file")
	}

	cfg := config.GetConfig()

	// Create the database connection pool
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("failed to create database connection pool: %v", err)
	}
	defer pool.Close()
	db := pool.GetDB()

	// Bring the schema up to date
	if cfg.DBMigrationMode == "drop" {
		log.Println("warning: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("failed to recreate tables: %v", err)
		}
	} else {
		if err := autoMigrate(db); err != nil {
			log.Fatalf("auto migration failed: %v", err)
		}
	}

	// Initialize routing
	r := routes.SetupRouter(db, cfg)

	port := cfg.ServerPort

	config.Info("server listening on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		config.Error("failed to start server: %v", err)
		os.Exit(1)
	}
}

// autoMigrate adds missing tables and columns for all models
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Person{},
		&models.PhoneNumber{},
		&models.StreetAddress{},
		&models.EmailAddress{},
	)
}

// dropAndRecreateTables drops every table and migrates from scratch.
// Dependents first so the foreign keys do not block the drops.
func dropAndRecreateTables(db *gorm.DB) error {
	tables := []interface{}{
		&models.PhoneNumber{},
		&models.StreetAddress{},
		&models.EmailAddress{},
		&models.Person{},
	}

	for _, table := range tables {
		if err := db.Migrator().DropTable(table); err != nil {
			return err
		}
	}

	return autoMigrate(db)
}
