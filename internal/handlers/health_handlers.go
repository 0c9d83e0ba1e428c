package handlers

import "net/http"

// Health reports service liveness. It never touches the store, so it stays
// green even when the database is down.
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Server is running",
	})
}
