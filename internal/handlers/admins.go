package handlers

import (
	"errors"
	"net/http"
	"strings"

	"AgenciaContable/internal/auth"
	"AgenciaContable/internal/db"
	"AgenciaContable/internal/models"
)

/* ========= ПАНЕЛЬ: АДМИНИСТРАТОРЫ ========= */

// AdminsPage видят все админы; менять что-то может только супер-админ.
func (h *Handler) AdminsPage(w http.ResponseWriter, r *http.Request) {
	admins, err := h.store.ListAdmins(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	data := adminData(r)
	data["Admins"] = admins
	h.render(w, r, "manage_admins", data)
}

func (h *Handler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	if username == "" || password == "" {
		redirect(w, r, "/admin/admins?error=invalid")
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	a := &models.Admin{Username: username, HashedPassword: hash}
	err = h.store.CreateAdmin(r.Context(), a)
	if errors.Is(err, db.ErrDuplicate) {
		redirect(w, r, "/admin/admins?error=exists")
		return
	} else if err != nil {
		h.fail(w, r, err)
		return
	}
	h.logger.Info("admins: created", "username", a.Username, "by", actorID(r))
	redirect(w, r, "/admin/admins?created=1")
}

// UpdateAdmin — сброс пароля.
func (h *Handler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	password := r.FormValue("password")
	if password == "" {
		redirect(w, r, "/admin/admins?error=invalid")
		return
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := ignoreNotFound(h.store.SetAdminPassword(r.Context(), id, hash)); err != nil {
		h.fail(w, r, err)
		return
	}
	h.logger.Info("admins: password reset", "admin_id", id, "by", actorID(r))
	redirect(w, r, "/admin/admins?updated=1")
}

// DeleteAdmin удаляет только обычных админов; супер-админ остаётся всегда.
func (h *Handler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	deleted, err := h.store.DeleteAdmin(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if deleted {
		h.logger.Info("admins: deleted", "admin_id", id, "by", actorID(r))
	}
	redirect(w, r, "/admin/admins?deleted=1")
}
