package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"AgenciaContable/internal/models"
)

const adminColumns = `id, username, hashed_password, is_super, created_at`

// AdminByID — точечный поиск для резолвера сессии.
func (s *Store) AdminByID(ctx context.Context, id int64) (*models.Admin, error) {
	var a models.Admin
	err := s.db.GetContext(ctx, &a, s.q(`SELECT `+adminColumns+` FROM admins WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get admin %d: %w", id, err)
	}
	return &a, nil
}

// AdminByUsername — для логина.
func (s *Store) AdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var a models.Admin
	err := s.db.GetContext(ctx, &a, s.q(`SELECT `+adminColumns+` FROM admins WHERE username = ?`), username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get admin by username: %w", err)
	}
	return &a, nil
}

func (s *Store) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	list := make([]models.Admin, 0, 8)
	if err := s.db.SelectContext(ctx, &list, `SELECT `+adminColumns+` FROM admins ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return list, nil
}

func (s *Store) CountAdmins(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM admins`); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}

// CreateAdmin вставляет админа и заполняет ID/CreatedAt. Занятый логин — ErrDuplicate.
func (s *Store) CreateAdmin(ctx context.Context, a *models.Admin) error {
	a.CreatedAt = time.Now().UTC()
	err := s.db.QueryRowxContext(ctx,
		s.q(`INSERT INTO admins (username, hashed_password, is_super, created_at) VALUES (?, ?, ?, ?) RETURNING id`),
		a.Username, a.HashedPassword, a.IsSuper, a.CreatedAt,
	).Scan(&a.ID)
	if isUniqueViolation(err) {
		return ErrDuplicate
	} else if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// SetAdminPassword заменяет хэш пароля.
func (s *Store) SetAdminPassword(ctx context.Context, id int64, hash string) error {
	res, err := s.db.ExecContext(ctx, s.q(`UPDATE admins SET hashed_password = ? WHERE id = ?`), hash, id)
	if err != nil {
		return fmt.Errorf("update admin password: %w", err)
	}
	return expectRow(res)
}

// DeleteAdmin удаляет только обычного админа; супер-админ неудаляем.
// Возвращает false, если удалять было нечего.
func (s *Store) DeleteAdmin(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM admins WHERE id = ? AND is_super = ?`), id, false)
	if err != nil {
		return false, fmt.Errorf("delete admin: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete admin: %w", err)
	}
	return n > 0, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// modernc sqlite: "constraint failed: UNIQUE constraint failed: admins.username"
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func expectRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
