package handlers

import (
	"net/http"

	"AgenciaContable/internal/models"
)

/* ========= ПАНЕЛЬ: ГЛАВНАЯ, ПОРТАДА, УСЛУГИ ========= */

const recentMessages = 20

func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	messages, err := h.store.RecentContactMessages(r.Context(), recentMessages)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	data := adminData(r)
	data["Messages"] = messages
	h.render(w, r, "dashboard", data)
}

func (h *Handler) AdminIndexPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	content, err := h.store.IndexContent(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	services, err := h.store.ListServices(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	data := adminData(r)
	data["Content"] = content
	data["Services"] = services
	h.render(w, r, "edit_index", data)
}

// SaveIndex — тексты главной и контакты сайта одной формой.
func (h *Handler) SaveIndex(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	content := models.IndexContent{
		HeroTitle:     r.FormValue("hero_title"),
		HeroSubtitle:  r.FormValue("hero_subtitle"),
		MissionTitle:  r.FormValue("mission_title"),
		MissionText:   r.FormValue("mission_text"),
		ValuesTitle:   r.FormValue("values_title"),
		ValuesText:    r.FormValue("values_text"),
		ServicesTitle: r.FormValue("services_title"),
		ContactTitle:  r.FormValue("contact_title"),
		ContactText:   r.FormValue("contact_text"),
	}
	settings := models.SiteSettings{
		ContactEmail:    r.FormValue("contact_email"),
		WhatsAppNumber:  r.FormValue("whatsapp_number"),
		PhoneNumber:     r.FormValue("phone_number"),
		AddressText:     r.FormValue("address_text"),
		SocialFacebook:  r.FormValue("social_facebook"),
		SocialInstagram: r.FormValue("social_instagram"),
		SocialX:         r.FormValue("social_x"),
		SocialLinkedIn:  r.FormValue("social_linkedin"),
	}

	ctx := r.Context()
	if err := h.store.SaveIndexContent(ctx, content); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.store.SaveSiteSettings(ctx, settings); err != nil {
		h.fail(w, r, err)
		return
	}
	redirect(w, r, "/admin/index?updated=1")
}

func serviceFromForm(r *http.Request) models.Service {
	return models.Service{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		KeyPoints:   r.FormValue("key_points"),
	}
}

func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	s := serviceFromForm(r)
	if s.Title == "" {
		redirect(w, r, "/admin/index?error=invalid")
		return
	}
	if err := h.store.CreateService(r.Context(), &s); err != nil {
		h.fail(w, r, err)
		return
	}
	redirect(w, r, "/admin/index?services=1")
}

func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	s := serviceFromForm(r)
	s.ID = id
	if err := ignoreNotFound(h.store.UpdateService(r.Context(), s)); err != nil {
		h.fail(w, r, err)
		return
	}
	redirect(w, r, "/admin/index?services=1")
}

func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := ignoreNotFound(h.store.DeleteService(r.Context(), id)); err != nil {
		h.fail(w, r, err)
		return
	}
	redirect(w, r, "/admin/index?services=1")
}
