package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/afero"

	mw "AgenciaContable/internal/middleware"
	"AgenciaContable/internal/storage"
)

// Routes собирает весь сайт: мидлвари, статику, публичные страницы и панель.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	// базовые middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(h.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second)) // с запасом на загрузку в бакет
	r.Use(chimw.RedirectSlashes)           // /path/ -> /path

	// статика: встроенные css/js и локальные загрузки
	r.Handle("/static/uploads/*", http.StripPrefix(storage.LocalURLPrefix,
		noDirListing(http.FileServer(afero.NewHttpFs(h.uploads.Files())))))
	r.Handle("/static/*", http.StripPrefix("/static/", noDirListing(http.FileServerFS(h.static))))

	// ---------- Публичные страницы ----------
	r.Get("/", h.ShowIndexPage)
	r.Get("/about", h.ShowAboutPage)
	r.Get("/learn-more", h.ShowLearnMorePage)
	r.Post("/contact", h.HandleContact)

	// ---------- Аутентификация администратора ----------
	r.Get("/admin/login", h.ShowLoginPage)
	r.Post("/admin/login", h.HandleLogin)
	r.Post("/admin/logout", h.HandleLogout)

	// ---------- Админ-панель ----------
	r.Group(func(g chi.Router) {
		g.Use(h.gate.RequireAdmin) // доступ только с валидной сессией

		g.Get("/admin", h.AdminDashboard)

		g.Get("/admin/index", h.AdminIndexPage)
		g.Post("/admin/index", h.SaveIndex)
		g.Post("/admin/services/create", h.CreateService)
		g.Post("/admin/services/{id}/update", h.UpdateService)
		g.Post("/admin/services/{id}/delete", h.DeleteService)

		g.Get("/admin/about", h.AdminAboutPage)
		g.Post("/admin/about", h.SaveAbout)
		g.Post("/admin/team/create", h.CreateTeamMember)
		g.Post("/admin/team/{id}/update", h.UpdateTeamMember)
		g.Post("/admin/team/{id}/delete", h.DeleteTeamMember)

		g.Get("/admin/learn-more", h.AdminLearnMorePage)
		g.Post("/admin/learn-more", h.SaveLearnMore)
		g.Post("/admin/posts/create", h.CreatePost)
		g.Post("/admin/posts/{id}/update", h.UpdatePost)
		g.Post("/admin/posts/{id}/delete", h.DeletePost)

		g.Get("/admin/site-copy", h.SiteCopyPage)
		g.Post("/admin/site-copy", h.SaveSiteCopy)

		g.Get("/admin/admins", h.AdminsPage)

		// только супер-админ
		g.Group(func(s chi.Router) {
			s.Use(h.gate.RequireSuper)
			s.Post("/admin/admins/create", h.CreateAdmin)
			s.Post("/admin/admins/{id}/update", h.UpdateAdmin)
			s.Post("/admin/admins/{id}/delete", h.DeleteAdmin)
		})
	})

	return r
}

// noDirListing: каталоги не показываем.
func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
