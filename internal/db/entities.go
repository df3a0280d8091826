package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"AgenciaContable/internal/models"
)

/* ========= Services ========= */

func (s *Store) ListServices(ctx context.Context) ([]models.Service, error) {
	list := make([]models.Service, 0, 8)
	if err := s.db.SelectContext(ctx, &list, `SELECT id, title, description, key_points FROM services ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return list, nil
}

func (s *Store) CreateService(ctx context.Context, v *models.Service) error {
	err := s.db.QueryRowxContext(ctx,
		s.q(`INSERT INTO services (title, description, key_points) VALUES (?, ?, ?) RETURNING id`),
		v.Title, v.Description, v.KeyPoints,
	).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

func (s *Store) UpdateService(ctx context.Context, v models.Service) error {
	res, err := s.db.ExecContext(ctx,
		s.q(`UPDATE services SET title = ?, description = ?, key_points = ? WHERE id = ?`),
		v.Title, v.Description, v.KeyPoints, v.ID)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return expectRow(res)
}

func (s *Store) DeleteService(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "services", id)
}

/* ========= Team ========= */

const teamColumns = `id, name, role, bio, image_url`

func (s *Store) ListTeam(ctx context.Context) ([]models.TeamMember, error) {
	list := make([]models.TeamMember, 0, 8)
	if err := s.db.SelectContext(ctx, &list, `SELECT `+teamColumns+` FROM team_members ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}
	return list, nil
}

func (s *Store) TeamMember(ctx context.Context, id int64) (*models.TeamMember, error) {
	var m models.TeamMember
	err := s.db.GetContext(ctx, &m, s.q(`SELECT `+teamColumns+` FROM team_members WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get team member: %w", err)
	}
	return &m, nil
}

func (s *Store) CreateTeamMember(ctx context.Context, m *models.TeamMember) error {
	err := s.db.QueryRowxContext(ctx,
		s.q(`INSERT INTO team_members (name, role, bio, image_url) VALUES (?, ?, ?, ?) RETURNING id`),
		m.Name, m.Role, m.Bio, m.ImageURL,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert team member: %w", err)
	}
	return nil
}

func (s *Store) UpdateTeamMember(ctx context.Context, m models.TeamMember) error {
	res, err := s.db.ExecContext(ctx,
		s.q(`UPDATE team_members SET name = ?, role = ?, bio = ?, image_url = ? WHERE id = ?`),
		m.Name, m.Role, m.Bio, m.ImageURL, m.ID)
	if err != nil {
		return fmt.Errorf("update team member: %w", err)
	}
	return expectRow(res)
}

// DeleteTeamMember удаляет строку; загруженное фото остаётся в хранилище.
func (s *Store) DeleteTeamMember(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "team_members", id)
}

/* ========= Posts ========= */

const postColumns = `id, title, description, content_type, content_url, is_published, created_at, updated_at`

// ListPosts — от новых к старым; publishedOnly для публичной страницы.
func (s *Store) ListPosts(ctx context.Context, publishedOnly bool) ([]models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts`
	var args []any
	if publishedOnly {
		query += ` WHERE is_published = ?`
		args = append(args, true)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	list := make([]models.Post, 0, 16)
	if err := s.db.SelectContext(ctx, &list, s.q(query), args...); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return list, nil
}

func (s *Store) Post(ctx context.Context, id int64) (*models.Post, error) {
	var p models.Post
	err := s.db.GetContext(ctx, &p, s.q(`SELECT `+postColumns+` FROM posts WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &p, nil
}

func (s *Store) CreatePost(ctx context.Context, p *models.Post) error {
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	err := s.db.QueryRowxContext(ctx,
		s.q(`INSERT INTO posts (title, description, content_type, content_url, is_published, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`),
		p.Title, p.Description, p.ContentType, p.ContentURL, p.IsPublished, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (s *Store) UpdatePost(ctx context.Context, p *models.Post) error {
	p.UpdatedAt = time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		s.q(`UPDATE posts SET title = ?, description = ?, content_type = ?, content_url = ?, is_published = ?, updated_at = ?
			WHERE id = ?`),
		p.Title, p.Description, p.ContentType, p.ContentURL, p.IsPublished, p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return expectRow(res)
}

func (s *Store) DeletePost(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "posts", id)
}

/* ========= Contact ========= */

func (s *Store) CreateContactMessage(ctx context.Context, m *models.ContactMessage) error {
	m.CreatedAt = time.Now().UTC()
	err := s.db.QueryRowxContext(ctx,
		s.q(`INSERT INTO contact_messages (name, email, message, created_at) VALUES (?, ?, ?, ?) RETURNING id`),
		m.Name, m.Email, m.Message, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// RecentContactMessages — последние сообщения для панели.
func (s *Store) RecentContactMessages(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	list := make([]models.ContactMessage, 0, limit)
	err := s.db.SelectContext(ctx, &list,
		s.q(`SELECT id, name, email, message, created_at FROM contact_messages ORDER BY created_at DESC, id DESC LIMIT ?`), limit)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return list, nil
}

func (s *Store) deleteByID(ctx context.Context, table string, id int64) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM `+table+` WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	return expectRow(res)
}
