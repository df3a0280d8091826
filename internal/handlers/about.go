package handlers

import (
	"net/http"

	"AgenciaContable/internal/models"
)

/* ========= ПАНЕЛЬ: «О НАС» И КОМАНДА ========= */

const teamFolder = "team"

func (h *Handler) AdminAboutPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	content, err := h.store.AboutContent(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	team, err := h.store.ListTeam(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	data := adminData(r)
	data["Content"] = content
	data["Team"] = team
	h.render(w, r, "edit_about", data)
}

func (h *Handler) SaveAbout(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	content := models.AboutContent{
		Title:          r.FormValue("title"),
		StoryText:      r.FormValue("story_text"),
		TeamTitle:      r.FormValue("team_title"),
		LocationTitle:  r.FormValue("location_title"),
		LocationMapURL: r.FormValue("location_map_url"),
	}
	if err := h.store.SaveAboutContent(r.Context(), content); err != nil {
		h.fail(w, r, err)
		return
	}
	redirect(w, r, "/admin/about?updated=1")
}

// CreateTeamMember: фото необязательно, без него image_url пустой.
func (h *Handler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	m := models.TeamMember{
		Name: r.FormValue("name"),
		Role: r.FormValue("role"),
		Bio:  r.FormValue("bio"),
	}
	if m.Name == "" {
		redirect(w, r, "/admin/about?error=invalid")
		return
	}
	url, err := h.upload(r, "image", teamFolder)
	if err != nil {
		h.logger.Error("team: upload failed", "err", err)
		redirect(w, r, "/admin/about?error=upload")
		return
	}
	m.ImageURL = url

	if err := h.store.CreateTeamMember(r.Context(), &m); err != nil {
		h.fail(w, r, err)
		return
	}
	redirect(w, r, "/admin/about?team=1")
}

// UpdateTeamMember: новое фото заменяет ссылку, старый файл остаётся на месте.
func (h *Handler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	ctx := r.Context()
	m, err := h.store.TeamMember(ctx, id)
	if err := ignoreNotFound(err); err != nil {
		h.fail(w, r, err)
		return
	}
	if m == nil {
		redirect(w, r, "/admin/about?team=1")
		return
	}

	m.Name = r.FormValue("name")
	m.Role = r.FormValue("role")
	m.Bio = r.FormValue("bio")
	url, err := h.upload(r, "image", teamFolder)
	if err != nil {
		h.logger.Error("team: upload failed", "err", err, "member_id", id)
		redirect(w, r, "/admin/about?error=upload")
		return
	}
	if url != "" {
		m.ImageURL = url
	}

	if err := ignoreNotFound(h.store.UpdateTeamMember(ctx, *m)); err != nil {
		h.fail(w, r, err)
		return
	}
	redirect(w, r, "/admin/about?team=1")
}

func (h *Handler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := ignoreNotFound(h.store.DeleteTeamMember(r.Context(), id)); err != nil {
		h.fail(w, r, err)
		return
	}
	redirect(w, r, "/admin/about?team=1")
}
