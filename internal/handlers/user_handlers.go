package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/diluwara/Developer-Exam/internal/database"
)

// createUserRequest is the POST /api/users body.
type createUserRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department *string `json:"department"`
}

// ListUsers handles GET /api/users: every user, newest first, each with its
// posts populated.
func ListUsers(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := database.GetAllUsersWithPosts(db)
		if err != nil {
			slog.Error("error fetching users", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch users")
			return
		}

		respondJSON(w, http.StatusOK, users)
	}
}

// GetUser handles GET /api/users/{id}.
func GetUser(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := r.PathValue("id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid user ID")
			return
		}

		user, err := database.GetUserWithPosts(db, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respondError(w, http.StatusNotFound, "User not found")
				return
			}
			slog.Error("error fetching user", "id", id, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch user")
			return
		}

		respondJSON(w, http.StatusOK, user)
	}
}

// CreateUser handles POST /api/users. Only presence of name and email is
// validated here; trimming is the caller's concern. A duplicate email maps
// to 400 with a conflict-specific message.
func CreateUser(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Name == "" || req.Email == "" {
			respondError(w, http.StatusBadRequest, "Name and email are required")
			return
		}

		// Normalize an explicit empty department to absent.
		department := req.Department
		if department != nil && *department == "" {
			department = nil
		}

		user, err := database.CreateUser(db, req.Name, req.Email, department)
		if err != nil {
			if errors.Is(err, database.ErrDuplicateEmail) {
				respondError(w, http.StatusBadRequest, "Email already exists")
				return
			}
			slog.Error("error creating user", "email", req.Email, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to create user")
			return
		}

		respondJSON(w, http.StatusCreated, user)
	}
}
