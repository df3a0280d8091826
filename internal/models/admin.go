package models

import "time"

// Admin — запись из таблицы admins.
// Пароль хранится только хэшем (bcrypt; старые записи — pbkdf2-sha256 из passlib).
type Admin struct {
	ID             int64     `db:"id"`
	Username       string    `db:"username"`
	HashedPassword string    `db:"hashed_password"`
	IsSuper        bool      `db:"is_super"`
	CreatedAt      time.Time `db:"created_at"`
}
