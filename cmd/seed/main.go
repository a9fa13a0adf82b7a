package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/Subh211/weave-backend/config"
	"github.com/Subh211/weave-backend/internal/domain/entity"
	"github.com/Subh211/weave-backend/pkg/helpers"
)

// Seeds two demo users where alice follows bob, bob has a couple of posts,
// and one of them already carries alice's like. Enough data to exercise the
// feed end to end against a fresh database.

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	aliceID := seedUser(db, "alice@weave.dev", hash, "Alice")
	bobID := seedUser(db, "bob@weave.dev", hash, "Bob")
	fmt.Printf("seeded users: alice=%s bob=%s password=%s\n", aliceID, bobID, password)

	now := time.Now().UnixMilli()
	aliceGraph := entity.FriendGraph{
		Following: []entity.FriendEdge{{FriendID: bobID, FriendName: "Bob", Date: now}},
		Followers: []entity.FriendEdge{},
	}
	bobGraph := entity.FriendGraph{
		Following: []entity.FriendEdge{},
		Followers: []entity.FriendEdge{{FriendID: aliceID, FriendName: "Alice", Date: now}},
	}
	seedDoc(db, "friend_graphs", aliceID, aliceGraph)
	seedDoc(db, "friend_graphs", bobID, bobGraph)

	bobPosts := entity.PostCollection{
		Posts: []entity.Post{
			{
				ID:        uuid.NewString(),
				Caption:   "first post",
				Likes:     []entity.Like{},
				Comments:  []entity.Comment{},
				CreatedAt: time.Now().UTC(),
			},
			{
				ID:      uuid.NewString(),
				Caption: "already liked by alice",
				Likes:   []entity.Like{{UserID: aliceID, UserName: "Alice", IsLiked: true}},
				Comments: []entity.Comment{
					{Comment: "nice one", UserID: aliceID, UserName: "Alice"},
				},
				CreatedAt: time.Now().UTC(),
			},
		},
	}
	seedDoc(db, "post_collections", bobID, bobPosts)

	fmt.Println("seeded friend graphs and posts")
}

func seedUser(db *sql.DB, email, hash, name string) string {
	var id string
	err := db.QueryRow(`
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, name).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", email, err)
	}
	return id
}

func seedDoc(db *sql.DB, table, userID string, doc any) {
	raw, err := json.Marshal(doc)
	if err != nil {
		log.Fatalf("failed to marshal %s doc: %v", table, err)
	}
	_, err = db.Exec(fmt.Sprintf(`
		INSERT INTO %s (user_id, doc)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
	`, table), userID, raw)
	if err != nil {
		log.Fatalf("failed to seed %s for %s: %v", table, userID, err)
	}
}
