package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blogfeed/config"
	"github.com/oksasatya/go-blogfeed/pkg/helpers"
)

// Seeds a demo author, a couple of groups and a handful of posts for
// local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		fail(logger, "open db", err)
	}
	defer func() { _ = db.Close() }()

	username := "demo"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		fail(logger, "hash password", err)
	}

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING id
	`, username, hash).Scan(&userID)
	if err != nil {
		fail(logger, "seed user", err)
	}
	helpers.LogInfo(logger, "seeded user", logrus.Fields{"id": userID, "username": username, "password": password})

	groups := []struct{ slug, title, description string }{
		{"general", "General", "Anything goes"},
		{"golang", "Go", "Posts about Go"},
	}
	for _, g := range groups {
		var groupID int64
		if err := db.QueryRow(`
			INSERT INTO groups (slug, title, description)
			VALUES ($1, $2, $3)
			ON CONFLICT (slug) DO UPDATE SET title = EXCLUDED.title, description = EXCLUDED.description
			RETURNING id
		`, g.slug, g.title, g.description).Scan(&groupID); err != nil {
			fail(logger, "seed group "+g.slug, err)
		}
		helpers.LogInfo(logger, "seeded group", logrus.Fields{"id": groupID, "slug": g.slug})
	}

	for i := 1; i <= 3; i++ {
		if _, err := db.Exec(`
			INSERT INTO posts (text, author_id, group_id)
			VALUES ($1, $2, (SELECT id FROM groups WHERE slug = 'general'))
		`, fmt.Sprintf("seed post %d", i), userID); err != nil {
			fail(logger, "seed post", err)
		}
	}
	helpers.LogInfo(logger, "seeded posts", nil)
}

func fail(logger *logrus.Logger, step string, err error) {
	helpers.LogError(logger, step+" failed", err, nil)
	os.Exit(1)
}
