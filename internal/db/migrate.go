package db

import (
	"context"
	"fmt"
	"strings"
)

// {{pk}} подменяется на автоинкрементный ключ нужного диалекта.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id {{pk}},
		username VARCHAR(80) NOT NULL UNIQUE,
		hashed_password VARCHAR(255) NOT NULL,
		is_super BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS site_settings (
		id {{pk}},
		contact_email VARCHAR(255) NOT NULL DEFAULT '',
		whatsapp_number VARCHAR(30) NOT NULL DEFAULT '',
		phone_number VARCHAR(30) NOT NULL DEFAULT '',
		address_text VARCHAR(255) NOT NULL DEFAULT '',
		social_facebook VARCHAR(255) NOT NULL DEFAULT '',
		social_instagram VARCHAR(255) NOT NULL DEFAULT '',
		social_x VARCHAR(255) NOT NULL DEFAULT '',
		social_linkedin VARCHAR(255) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS index_content (
		id {{pk}},
		hero_title VARCHAR(150) NOT NULL DEFAULT '',
		hero_subtitle VARCHAR(255) NOT NULL DEFAULT '',
		mission_title VARCHAR(80) NOT NULL DEFAULT '',
		mission_text TEXT NOT NULL DEFAULT '',
		values_title VARCHAR(80) NOT NULL DEFAULT '',
		values_text TEXT NOT NULL DEFAULT '',
		services_title VARCHAR(80) NOT NULL DEFAULT '',
		contact_title VARCHAR(80) NOT NULL DEFAULT '',
		contact_text TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS about_content (
		id {{pk}},
		title VARCHAR(120) NOT NULL DEFAULT '',
		story_text TEXT NOT NULL DEFAULT '',
		team_title VARCHAR(80) NOT NULL DEFAULT '',
		location_title VARCHAR(80) NOT NULL DEFAULT '',
		location_map_url VARCHAR(500) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS learn_more_content (
		id {{pk}},
		title VARCHAR(120) NOT NULL DEFAULT '',
		intro_text TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id {{pk}},
		title VARCHAR(120) NOT NULL,
		description TEXT NOT NULL,
		key_points TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS team_members (
		id {{pk}},
		name VARCHAR(120) NOT NULL,
		role VARCHAR(120) NOT NULL,
		bio TEXT NOT NULL,
		image_url VARCHAR(500) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id {{pk}},
		title VARCHAR(150) NOT NULL,
		description TEXT NOT NULL,
		content_type VARCHAR(30) NOT NULL DEFAULT 'none',
		content_url VARCHAR(500) NOT NULL DEFAULT '',
		is_published BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id {{pk}},
		name VARCHAR(120) NOT NULL,
		email VARCHAR(120) NOT NULL,
		message TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS ui_copy (
		id {{pk}},
		data TEXT NOT NULL DEFAULT '{}'
	)`,
}

// Migrate создаёт недостающие таблицы. Повторный вызов безопасен.
func (s *Store) Migrate(ctx context.Context) error {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if s.driver == DriverPostgres {
		pk = "SERIAL PRIMARY KEY"
	}
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, strings.ReplaceAll(stmt, "{{pk}}", pk)); err != nil {
			return fmt.Errorf("db: migrate: %w", err)
		}
	}
	return nil
}
