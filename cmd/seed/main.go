package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/devaldi/portfolio-api/config"
	"github.com/devaldi/portfolio-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "admin"
	email := "admin@example.com"
	password := "changeme123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, username, email, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	if _, err := db.Exec(`
		INSERT INTO projects (title, description, repo_url)
		SELECT 'Portfolio API', 'This site''s backend.', 'https://github.com/devaldi/portfolio-api'
		WHERE NOT EXISTS (SELECT 1 FROM projects)
	`); err != nil {
		log.Fatalf("failed to seed project: %v", err)
	}

	var postID string
	err = db.QueryRow(`
		INSERT INTO posts (title, content, author_id)
		SELECT 'Hello, world', 'First post.', $1
		WHERE NOT EXISTS (SELECT 1 FROM posts)
		RETURNING id
	`, userID).Scan(&postID)
	if err == nil {
		fmt.Printf("seeded post: id=%s\n", postID)
	} else if err != sql.ErrNoRows {
		log.Fatalf("failed to seed post: %v", err)
	}

	fmt.Println("seed complete")
}
