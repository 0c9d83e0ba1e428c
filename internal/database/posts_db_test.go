package database

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// insertPostAt inserts a post with an explicit created_at for ordering tests.
func insertPostAt(t *testing.T, db *sql.DB, userID int64, title, content string, createdAt time.Time) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(
		"INSERT INTO posts(user_id, title, content, created_at) VALUES($1, $2, $3, $4) RETURNING id",
		userID, title, content, createdAt.UTC(),
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to insert post %s: %v", title, err)
	}
	return id
}

func TestCreatePost(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	user := createTestUser(t, db, "Author", "author@example.com")

	post, err := CreatePost(db, user.ID, "A Title", "Some content")
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}
	if post.ID == 0 {
		t.Errorf("CreatePost() returned post with ID 0")
	}
	if post.UserID != user.ID {
		t.Errorf("CreatePost() user_id = %d, want %d", post.UserID, user.ID)
	}
	if post.CreatedAt.IsZero() {
		t.Errorf("CreatePost() CreatedAt is zero")
	}

	t.Run("Post for Missing User Fails", func(t *testing.T) {
		_, err := CreatePost(db, 99999, "Orphan", "no owner")
		if err == nil {
			t.Errorf("CreatePost() for missing user expected FK error, got nil")
		}
	})
}

func TestGetPostsByUserID(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	user := createTestUser(t, db, "Author", "author@example.com")
	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	insertPostAt(t, db, user.ID, "Oldest", "c", base)
	insertPostAt(t, db, user.ID, "Middle", "c", base.Add(time.Minute))
	insertPostAt(t, db, user.ID, "Newest", "c", base.Add(2*time.Minute))

	posts, err := GetPostsByUserID(db, user.ID)
	if err != nil {
		t.Fatalf("GetPostsByUserID() error = %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("GetPostsByUserID() returned %d posts, want 3", len(posts))
	}

	wantOrder := []string{"Newest", "Middle", "Oldest"}
	for i, want := range wantOrder {
		if posts[i].Title != want {
			t.Errorf("GetPostsByUserID()[%d].Title = %v, want %v", i, posts[i].Title, want)
		}
	}

	t.Run("User Without Posts", func(t *testing.T) {
		other := createTestUser(t, db, "Quiet", "quiet@example.com")
		posts, err := GetPostsByUserID(db, other.ID)
		if err != nil {
			t.Fatalf("GetPostsByUserID() error = %v", err)
		}
		if posts == nil {
			t.Errorf("GetPostsByUserID() returned nil, want empty slice")
		}
		if len(posts) != 0 {
			t.Errorf("GetPostsByUserID() returned %d posts, want 0", len(posts))
		}
	})
}

func TestGetPostsByUserIDs(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	t.Run("Empty ID Set Short-circuits", func(t *testing.T) {
		posts, err := GetPostsByUserIDs(db, nil)
		if err != nil {
			t.Fatalf("GetPostsByUserIDs(nil) error = %v", err)
		}
		if posts == nil || len(posts) != 0 {
			t.Errorf("GetPostsByUserIDs(nil) = %v, want empty slice", posts)
		}
	})

	t.Run("Batched Fetch Across Users", func(t *testing.T) {
		ann := createTestUser(t, db, "Ann", "ann@example.com")
		bob := createTestUser(t, db, "Bob", "bob@example.com")
		eve := createTestUser(t, db, "Eve", "eve@example.com")

		base := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)
		insertPostAt(t, db, ann.ID, "Ann 1", "c", base)
		insertPostAt(t, db, bob.ID, "Bob 1", "c", base.Add(time.Minute))
		insertPostAt(t, db, ann.ID, "Ann 2", "c", base.Add(2*time.Minute))
		insertPostAt(t, db, eve.ID, "Eve 1", "c", base.Add(3*time.Minute))

		// Eve is excluded from the id set, so her post must not appear.
		posts, err := GetPostsByUserIDs(db, []int64{ann.ID, bob.ID})
		if err != nil {
			t.Fatalf("GetPostsByUserIDs() error = %v", err)
		}
		if len(posts) != 3 {
			t.Fatalf("GetPostsByUserIDs() returned %d posts, want 3", len(posts))
		}

		// Newest first across the whole batch.
		wantOrder := []string{"Ann 2", "Bob 1", "Ann 1"}
		for i, want := range wantOrder {
			if posts[i].Title != want {
				t.Errorf("GetPostsByUserIDs()[%d].Title = %v, want %v", i, posts[i].Title, want)
			}
		}

		grouped := GroupPostsByUser(posts)
		if len(grouped) != 2 {
			t.Errorf("GroupPostsByUser() produced %d groups, want 2", len(grouped))
		}
		if len(grouped[ann.ID]) != 2 {
			t.Errorf("Ann's group has %d posts, want 2", len(grouped[ann.ID]))
		}
		if grouped[ann.ID][0].Title != "Ann 2" {
			t.Errorf("Ann's group head = %v, want Ann 2 (newest first preserved)", grouped[ann.ID][0].Title)
		}
		if len(grouped[bob.ID]) != 1 {
			t.Errorf("Bob's group has %d posts, want 1", len(grouped[bob.ID]))
		}
	})
}
