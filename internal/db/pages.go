package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"AgenciaContable/internal/models"
)

// Однострочные таблицы: читаем первую строку, пишем upsert'ом в строку id = 1.
// Пустая таблица при чтении даёт значения по умолчанию и ничего не пишет.

func (s *Store) getSingleton(ctx context.Context, dest any, table, columns string) (bool, error) {
	err := s.db.GetContext(ctx, dest, `SELECT `+columns+` FROM `+table+` ORDER BY id LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("get %s: %w", table, err)
	}
	return true, nil
}

func (s *Store) upsertSingleton(ctx context.Context, table string, columns []string, arg any) error {
	named := make([]string, len(columns))
	updates := make([]string, len(columns))
	for i, c := range columns {
		named[i] = ":" + c
		updates[i] = c + " = excluded." + c
	}
	query := `INSERT INTO ` + table + ` (id, ` + strings.Join(columns, ", ") + `)
		VALUES (1, ` + strings.Join(named, ", ") + `)
		ON CONFLICT (id) DO UPDATE SET ` + strings.Join(updates, ", ")
	if _, err := s.db.NamedExecContext(ctx, query, arg); err != nil {
		return fmt.Errorf("save %s: %w", table, err)
	}
	return nil
}

// HasSingleton — есть ли строка в однострочной таблице (для seed).
func (s *Store) HasSingleton(ctx context.Context, table string) (bool, error) {
	switch table {
	case "site_settings", "index_content", "about_content", "learn_more_content", "ui_copy":
	default:
		return false, fmt.Errorf("db: %q is not a singleton table", table)
	}
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM `+table); err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return n > 0, nil
}

var siteSettingsColumns = []string{
	"contact_email", "whatsapp_number", "phone_number", "address_text",
	"social_facebook", "social_instagram", "social_x", "social_linkedin",
}

func (s *Store) SiteSettings(ctx context.Context) (models.SiteSettings, error) {
	v := models.DefaultSiteSettings()
	_, err := s.getSingleton(ctx, &v, "site_settings", "id, "+strings.Join(siteSettingsColumns, ", "))
	return v, err
}

func (s *Store) SaveSiteSettings(ctx context.Context, v models.SiteSettings) error {
	return s.upsertSingleton(ctx, "site_settings", siteSettingsColumns, v)
}

var indexColumns = []string{
	"hero_title", "hero_subtitle", "mission_title", "mission_text", "values_title",
	"values_text", "services_title", "contact_title", "contact_text",
}

func (s *Store) IndexContent(ctx context.Context) (models.IndexContent, error) {
	v := models.DefaultIndexContent()
	_, err := s.getSingleton(ctx, &v, "index_content", "id, "+strings.Join(indexColumns, ", "))
	return v, err
}

func (s *Store) SaveIndexContent(ctx context.Context, v models.IndexContent) error {
	return s.upsertSingleton(ctx, "index_content", indexColumns, v)
}

var aboutColumns = []string{"title", "story_text", "team_title", "location_title", "location_map_url"}

func (s *Store) AboutContent(ctx context.Context) (models.AboutContent, error) {
	v := models.DefaultAboutContent()
	_, err := s.getSingleton(ctx, &v, "about_content", "id, "+strings.Join(aboutColumns, ", "))
	return v, err
}

func (s *Store) SaveAboutContent(ctx context.Context, v models.AboutContent) error {
	return s.upsertSingleton(ctx, "about_content", aboutColumns, v)
}

var learnMoreColumns = []string{"title", "intro_text"}

func (s *Store) LearnMoreContent(ctx context.Context) (models.LearnMoreContent, error) {
	v := models.DefaultLearnMoreContent()
	_, err := s.getSingleton(ctx, &v, "learn_more_content", "id, "+strings.Join(learnMoreColumns, ", "))
	return v, err
}

func (s *Store) SaveLearnMoreContent(ctx context.Context, v models.LearnMoreContent) error {
	return s.upsertSingleton(ctx, "learn_more_content", learnMoreColumns, v)
}
