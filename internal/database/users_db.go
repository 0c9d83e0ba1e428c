package database

import (
	"database/sql"

	"github.com/diluwara/Developer-Exam/internal/models"
)

// Queries use $N placeholders throughout: Postgres requires them and sqlite
// binds them positionally as well, so both drivers share one set of SQL.

// CreateUser inserts a new user and returns it fully populated.
// A nil department is stored as NULL. Returns ErrDuplicateEmail when the
// email is already taken.
func CreateUser(db *sql.DB, name, email string, department *string) (*models.User, error) {
	var id int64
	// RETURNING works on both drivers, unlike Result.LastInsertId which the
	// pgx adapter does not support.
	err := db.QueryRow(
		"INSERT INTO users(name, email, department) VALUES($1, $2, $3) RETURNING id",
		name, email, department,
	).Scan(&id)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	// Retrieve the user again so DB defaults like created_at are populated.
	return GetUserByID(db, id)
}

// GetUserByID retrieves a user by its ID.
func GetUserByID(db *sql.DB, id int64) (*models.User, error) {
	user := &models.User{}
	row := db.QueryRow("SELECT id, name, email, department, created_at FROM users WHERE id = $1", id)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Department, &user.CreatedAt)
	if err != nil {
		return nil, err // This will include sql.ErrNoRows if not found
	}
	return user, nil
}

// GetAllUsers retrieves all users, newest first.
func GetAllUsers(db *sql.DB) ([]*models.User, error) {
	rows, err := db.Query("SELECT id, name, email, department, created_at FROM users ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Department, &user.CreatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// GetAllUsersWithPosts returns all users, newest first, each with its posts
// attached. Posts for every user are fetched in a single batched query and
// grouped in memory, avoiding a per-user query.
func GetAllUsersWithPosts(db *sql.DB) ([]*models.User, error) {
	users, err := GetAllUsers(db)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return []*models.User{}, nil
	}

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	posts, err := GetPostsByUserIDs(db, ids)
	if err != nil {
		return nil, err
	}

	byUser := GroupPostsByUser(posts)
	for _, u := range users {
		if grouped, ok := byUser[u.ID]; ok {
			u.Posts = grouped
		} else {
			u.Posts = []models.Post{}
		}
	}

	return users, nil
}

// GetUserWithPosts returns a single user with its posts attached, or
// sql.ErrNoRows if the user does not exist.
func GetUserWithPosts(db *sql.DB, id int64) (*models.User, error) {
	user, err := GetUserByID(db, id)
	if err != nil {
		return nil, err
	}

	posts, err := GetPostsByUserID(db, id)
	if err != nil {
		return nil, err
	}
	user.Posts = posts

	return user, nil
}
