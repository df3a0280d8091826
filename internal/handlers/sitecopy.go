package handlers

import "net/http"

/* ========= ПАНЕЛЬ: ТЕКСТЫ САЙТА ========= */

func (h *Handler) SiteCopyPage(w http.ResponseWriter, r *http.Request) {
	ui, err := h.copy.Effective(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	data := adminData(r)
	data["Entries"] = ui.Entries()
	h.render(w, r, "site_copy", data)
}

// SaveSiteCopy отдаёт форму целиком: незаполненные поля станут пустыми,
// лишние поля отбросит uicopy.Store.
func (h *Handler) SaveSiteCopy(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	payload := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		payload[k] = r.PostForm.Get(k)
	}
	if err := h.copy.Save(r.Context(), payload); err != nil {
		h.fail(w, r, err)
		return
	}
	redirect(w, r, "/admin/site-copy?updated=1")
}
