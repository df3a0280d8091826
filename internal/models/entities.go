package models

import (
	"strings"
	"time"
)

// Service — услуга на главной. KeyPoints — по одному пункту на строку.
type Service struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	KeyPoints   string `db:"key_points"`
}

// Points разбивает KeyPoints на непустые строки (для шаблона).
func (s Service) Points() []string {
	var out []string
	for _, line := range strings.Split(s.KeyPoints, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// TeamMember — сотрудник на странице «Nosotros». ImageURL — результат загрузки (локальный путь или URL бакета).
type TeamMember struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Role     string `db:"role"`
	Bio      string `db:"bio"`
	ImageURL string `db:"image_url"`
}

// Типы вложений публикации.
const (
	PostContentNone    = "none"
	PostContentImage   = "image"
	PostContentVideo   = "video"
	PostContentYouTube = "youtube"
	PostContentSocial  = "social"
)

// ValidPostContentType — известный ли тип вложения.
func ValidPostContentType(t string) bool {
	switch t {
	case PostContentNone, PostContentImage, PostContentVideo, PostContentYouTube, PostContentSocial:
		return true
	}
	return false
}

// Post — публикация в разделе «Aprende más».
type Post struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	ContentType string    `db:"content_type"`
	ContentURL  string    `db:"content_url"`
	IsPublished bool      `db:"is_published"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ContactMessage — сообщение из публичной формы.
type ContactMessage struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
