package handlers

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"time"

	"AgenciaContable/internal/auth"
	"AgenciaContable/internal/db"
	"AgenciaContable/internal/middleware"
	"AgenciaContable/internal/sessions"
	"AgenciaContable/internal/storage"
	"AgenciaContable/internal/uicopy"
	"AgenciaContable/web"
)

// ContactMailer — отправка письма с контактной формы (internal/mailer).
type ContactMailer interface {
	SendContact(ctx context.Context, to, name, email, message string) error
}

// Deps — всё, что нужно обработчикам. Собирается в cmd.
type Deps struct {
	Store    *db.Store
	Copy     *uicopy.Store
	Uploads  *storage.Router
	Mailer   ContactMailer
	Sessions *sessions.Manager
	Logger   *slog.Logger

	// пусто -> встроенные web.Templates() / web.Static()
	Templates fs.FS
	Static    fs.FS
}

type Handler struct {
	store    *db.Store
	copy     *uicopy.Store
	uploads  *storage.Router
	mail     ContactMailer
	sessions *sessions.Manager
	gate     *middleware.Gate
	views    map[string]*template.Template
	static   fs.FS
	logger   *slog.Logger
	now      func() time.Time
}

func New(d Deps) (*Handler, error) {
	if d.Store == nil || d.Copy == nil || d.Uploads == nil || d.Mailer == nil || d.Sessions == nil {
		return nil, errors.New("handlers: missing dependency")
	}
	if d.Templates == nil {
		d.Templates = web.Templates()
	}
	if d.Static == nil {
		d.Static = web.Static()
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.DiscardHandler)
	}
	views, err := parseViews(d.Templates)
	if err != nil {
		return nil, err
	}
	return &Handler{
		store:    d.Store,
		copy:     d.Copy,
		uploads:  d.Uploads,
		mail:     d.Mailer,
		sessions: d.Sessions,
		gate:     middleware.NewGate(d.Sessions, auth.NewResolver(d.Store), d.Logger),
		views:    views,
		static:   d.Static,
		logger:   d.Logger,
		now:      time.Now,
	}, nil
}

// страница -> layout + файл страницы
var pages = map[string][2]string{
	"index":           {"layouts/public.html", "pages/index.html"},
	"about":           {"layouts/public.html", "pages/about.html"},
	"learn_more":      {"layouts/public.html", "pages/learn_more.html"},
	"login":           {"layouts/admin.html", "admin/login.html"},
	"dashboard":       {"layouts/admin.html", "admin/dashboard.html"},
	"edit_index":      {"layouts/admin.html", "admin/edit_index.html"},
	"edit_about":      {"layouts/admin.html", "admin/edit_about.html"},
	"edit_learn_more": {"layouts/admin.html", "admin/edit_learn_more.html"},
	"manage_admins":   {"layouts/admin.html", "admin/manage_admins.html"},
	"site_copy":       {"layouts/admin.html", "admin/site_copy.html"},
}

// parseViews разбирает шаблоны один раз при старте; битый шаблон — ошибка запуска.
func parseViews(fsys fs.FS) (map[string]*template.Template, error) {
	views := make(map[string]*template.Template, len(pages))
	for name, files := range pages {
		t, err := template.New(name).ParseFS(fsys, files[0], files[1])
		if err != nil {
			return nil, fmt.Errorf("handlers: parse %s: %w", name, err)
		}
		views[name] = t
	}
	return views, nil
}
