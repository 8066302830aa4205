package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"github.com/sandaruh/EduSense/internal/api"
	"github.com/sandaruh/EduSense/internal/db"
	"github.com/sandaruh/EduSense/internal/middleware"
	"github.com/sandaruh/EduSense/internal/utils"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("no .env file loaded (fine in production): %v", err)
		}
	}

	addr := utils.SafeEnv("EDUSENSE_ADDR", ":8080")
	dbPath := utils.SafeEnv("EDUSENSE_DB", "app.db")
	migrationsDir := os.Getenv("EDUSENSE_MIGRATIONS_DIR")

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatalf("open database %s: %v", dbPath, err)
	}
	defer conn.Close()

	if err := db.RunMigrations(conn, migrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	store, err := db.NewSQLiteStore(conn)
	if err != nil {
		log.Fatalf("init store: %v", err)
	}

	mux := http.NewServeMux()
	api.NewRouter(store).Register(mux)

	handler := middleware.CORS(middleware.RequestLog(mux))

	log.Printf("EduSense server listening on %s (db=%s)", addr, dbPath)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
