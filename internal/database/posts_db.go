package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/diluwara/Developer-Exam/internal/models"
)

// GetPostsByUserID retrieves one user's posts, newest first.
func GetPostsByUserID(db *sql.DB, userID int64) ([]models.Post, error) {
	rows, err := db.Query(
		"SELECT id, user_id, title, content, created_at FROM posts WHERE user_id = $1 ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

// GetPostsByUserIDs retrieves the posts of every user in ids with a single
// query, newest first. An empty id set returns immediately without touching
// the store.
func GetPostsByUserIDs(db *sql.DB, ids []int64) ([]models.Post, error) {
	if len(ids) == 0 {
		return []models.Post{}, nil
	}

	// sqlite has no "= ANY($1)", so the IN list is expanded to one
	// placeholder per id. The id set is the user table's own ids, never
	// caller input, so the list stays small.
	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(
		"SELECT id, user_id, title, content, created_at FROM posts WHERE user_id IN (%s) ORDER BY created_at DESC",
		strings.Join(placeholders, ", "),
	)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

// GroupPostsByUser builds a user_id -> posts mapping. Input order is
// preserved within each group, so posts stay newest first.
func GroupPostsByUser(posts []models.Post) map[int64][]models.Post {
	byUser := make(map[int64][]models.Post)
	for _, p := range posts {
		byUser[p.UserID] = append(byUser[p.UserID], p)
	}
	return byUser
}

// CreatePost inserts a post for an existing user. Primarily used to seed
// data; there is no create-post API endpoint.
func CreatePost(db *sql.DB, userID int64, title, content string) (*models.Post, error) {
	var id int64
	err := db.QueryRow(
		"INSERT INTO posts(user_id, title, content) VALUES($1, $2, $3) RETURNING id",
		userID, title, content,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	post := &models.Post{}
	row := db.QueryRow("SELECT id, user_id, title, content, created_at FROM posts WHERE id = $1", id)
	err = row.Scan(&post.ID, &post.UserID, &post.Title, &post.Content, &post.CreatedAt)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func scanPosts(rows *sql.Rows) ([]models.Post, error) {
	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		err := rows.Scan(&post.ID, &post.UserID, &post.Title, &post.Content, &post.CreatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
