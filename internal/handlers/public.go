package handlers

import (
	"errors"
	"net/http"
	"strings"

	"AgenciaContable/internal/links"
	"AgenciaContable/internal/mailer"
	"AgenciaContable/internal/models"
)

/* ========= ПУБЛИЧНЫЕ СТРАНИЦЫ ========= */

func (h *Handler) ShowIndexPage(w http.ResponseWriter, r *http.Request) {
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
	settings, err := h.store.SiteSettings(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, r, "index", map[string]any{
		"Content":       content,
		"Services":      services,
		"WhatsAppLink":  links.WhatsApp(settings.WhatsAppNumber),
		"ContactStatus": r.URL.Query().Get("contact"),
	})
}

func (h *Handler) ShowAboutPage(w http.ResponseWriter, r *http.Request) {
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

	h.render(w, r, "about", map[string]any{
		"Content": content,
		"Team":    team,
		"MapURL":  links.MapsEmbed(content.LocationMapURL, links.DefaultMapsQuery),
	})
}

func (h *Handler) ShowLearnMorePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	content, err := h.store.LearnMoreContent(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	posts, err := h.store.ListPosts(ctx, true)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, r, "learn_more", map[string]any{
		"Content": content,
		"Posts":   posts,
	})
}

// HandleContact сохраняет сообщение и пробует отправить его на почту фирмы.
// Письмо не ушло — сообщение всё равно в базе, посетитель видит «pending».
func (h *Handler) HandleContact(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	msg := models.ContactMessage{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Email:   strings.TrimSpace(r.FormValue("email")),
		Message: strings.TrimSpace(r.FormValue("message")),
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		redirect(w, r, "/?contact=invalid#contact")
		return
	}

	ctx := r.Context()
	if err := h.store.CreateContactMessage(ctx, &msg); err != nil {
		h.fail(w, r, err)
		return
	}
	settings, err := h.store.SiteSettings(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	status := "sent"
	if err := h.mail.SendContact(ctx, settings.ContactEmail, msg.Name, msg.Email, msg.Message); err != nil {
		status = "pending"
		if !errors.Is(err, mailer.ErrNotConfigured) {
			h.logger.Warn("contact: email not sent", "err", err, "message_id", msg.ID)
		}
	}
	redirect(w, r, "/?contact="+status+"#contact")
}
