package auth

import (
	"context"
	"errors"
	"sync"

	"AgenciaContable/internal/db"
	"AgenciaContable/internal/models"
)

// AdminLookup — всё, что резолверу нужно от хранилища.
type AdminLookup interface {
	AdminByID(ctx context.Context, id int64) (*models.Admin, error)
}

// Resolver превращает id из сессии в админа.
type Resolver struct {
	admins AdminLookup
}

func NewResolver(admins AdminLookup) *Resolver {
	return &Resolver{admins: admins}
}

// Resolve: id <= 0 — аноним, в базу не ходим; id удалённого админа — тоже аноним.
// Ошибка возвращается только при сбое хранилища.
func (r *Resolver) Resolve(ctx context.Context, adminID int64) (*models.Admin, error) {
	if adminID <= 0 {
		return nil, nil
	}
	a, err := r.admins.AdminByID(ctx, adminID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CredentialLookup — поиск админа по логину.
type CredentialLookup interface {
	AdminByUsername(ctx context.Context, username string) (*models.Admin, error)
}

var (
	dummyOnce sync.Once
	dummyHash string
)

// Authenticate проверяет логин/пароль. Неизвестный логин и неверный пароль
// неразличимы для вызывающего: оба дают nil, nil.
func Authenticate(ctx context.Context, users CredentialLookup, username, password string) (*models.Admin, error) {
	a, err := users.AdminByUsername(ctx, username)
	if errors.Is(err, db.ErrNotFound) {
		// неизвестный логин стоит столько же, сколько неверный пароль
		dummyOnce.Do(func() {
			dummyHash, _ = HashPassword("agencia-dummy")
		})
		_ = VerifyPassword(password, dummyHash)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !VerifyPassword(password, a.HashedPassword) {
		return nil, nil
	}
	return a, nil
}
