package handlers

import (
	"net/http"
	"strings"

	"AgenciaContable/internal/auth"
)

// ShowLoginPage отображает страницу входа администратора
func (h *Handler) ShowLoginPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{}
	if r.URL.Query().Get("error") != "" {
		// одна формулировка на любой отказ: не подсказываем, что было не так
		data["LoginError"] = "Credenciales incorrectas."
	}
	h.render(w, r, "login", data)
}

// HandleLogin обрабатывает POST-запрос входа администратора.
// Любой исход сначала очищает прежнюю сессию.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if err := h.sessions.Clear(w, r); err != nil {
		h.logger.Warn("login: clear session", "err", err)
	}
	if username == "" || password == "" {
		h.logger.Info("login: rejected", "username", username, "remote", r.RemoteAddr)
		redirect(w, r, "/admin/login?error=credentials")
		return
	}

	admin, err := auth.Authenticate(r.Context(), h.store, username, password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if admin == nil {
		h.logger.Info("login: rejected", "username", username, "remote", r.RemoteAddr)
		redirect(w, r, "/admin/login?error=credentials")
		return
	}

	// старый хеш из прежней версии сайта -> перехешируем в bcrypt
	if auth.NeedsRehash(admin.HashedPassword) {
		if hash, err := auth.HashPassword(password); err == nil {
			if err := h.store.SetAdminPassword(r.Context(), admin.ID, hash); err != nil {
				h.logger.Warn("login: rehash legacy password", "admin_id", admin.ID, "err", err)
			}
		}
	}

	if err := h.sessions.SetAdminID(w, r, admin.ID); err != nil {
		h.fail(w, r, err)
		return
	}
	h.logger.Info("login: ok", "admin_id", admin.ID)
	redirect(w, r, "/admin")
}

// HandleLogout удаляет сессию и возвращает на логин
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		h.fail(w, r, err)
		return
	}
	redirect(w, r, "/admin/login")
}
