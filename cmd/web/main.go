package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/diluwara/Developer-Exam/internal/apiclient"
	"github.com/diluwara/Developer-Exam/internal/web"
)

func main() {
	godotenv.Load()

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:3001"
	}
	client := apiclient.New(apiURL)

	if err := web.LoadTemplates("web/templates"); err != nil {
		log.Fatalf("Error loading templates: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", web.IndexPage(client))
	mux.HandleFunc("POST /users", web.SubmitUser(client))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	slog.Info("web UI starting", "port", port, "api_url", apiURL)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
