package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/diluwara/Developer-Exam/internal/database"
	"github.com/diluwara/Developer-Exam/internal/handlers"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded configuration from .env")
	}

	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite3"
	}

	var dsn string
	switch driver {
	case "sqlite3":
		dsn = os.Getenv("DB_PATH")
		if dsn == "" {
			dsn = "users.db"
		}
	case "postgres", "pgx":
		driver = "pgx"
		dsn = os.Getenv("DATABASE_URL")
		if dsn == "" {
			log.Fatal("DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		log.Fatalf("unsupported DB_DRIVER: %s", driver)
	}

	db, err := database.InitDB(driver, dsn)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer db.Close()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", handlers.Health)
	mux.HandleFunc("GET /api/users", handlers.ListUsers(db))
	mux.HandleFunc("POST /api/users", handlers.CreateUser(db))
	mux.HandleFunc("GET /api/users/{id}", handlers.GetUser(db))

	handler := handlers.RequestLogger(handlers.CORS(mux))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	slog.Info("server starting", "port", port, "driver", driver)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
