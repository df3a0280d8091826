package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"AgenciaContable/internal/db"
	"AgenciaContable/internal/middleware"
)

/* ========= ВСПОМОГАТЕЛЬНОЕ ========= */

const (
	maxUploadSize int64 = 25 << 20 // 25 MB на всё тело запроса
	maxFormMemory int64 = 8 << 20
)

// Единый рендер: сам прокидывает UI, Settings, Admin, IsAdmin и Year во все шаблоны.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	ctx := r.Context()

	ui, err := h.copy.Effective(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	settings, err := h.store.SiteSettings(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	admin, err := h.gate.Current(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	data["UI"] = ui
	data["Settings"] = settings
	data["Admin"] = admin
	data["IsAdmin"] = admin != nil
	data["Year"] = h.now().Year()

	tmpl, ok := h.views[page]
	if !ok {
		h.fail(w, r, errors.New("unknown page "+page))
		return
	}
	// сначала в буфер: ошибка шаблона не должна оставить полстраницы
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// fail — 500 без подробностей наружу, подробности в лог.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
}

// redirect — все мутации отвечают 303.
func redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// parseForm ограничивает тело и разбирает urlencoded или multipart.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(maxFormMemory)
	} else {
		err = r.ParseForm()
	}
	if err == nil {
		return true
	}
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		http.Error(w, "Archivo demasiado grande (límite 25 MB)", http.StatusRequestEntityTooLarge)
		return false
	}
	http.Error(w, "Formulario inválido", http.StatusBadRequest)
	return false
}

// formFile — загруженный файл или ok=false, если поле пустое.
func formFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, bool, error) {
	if r.MultipartForm == nil {
		return nil, nil, false, nil
	}
	f, hdr, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, false, nil
	} else if err != nil {
		return nil, nil, false, err
	}
	if hdr.Filename == "" {
		f.Close()
		return nil, nil, false, nil
	}
	return f, hdr, true, nil
}

// upload сохраняет файл из поля field в папку folder; "" — файла не было.
func (h *Handler) upload(r *http.Request, field, folder string) (string, error) {
	f, hdr, ok, err := formFile(r, field)
	if err != nil || !ok {
		return "", err
	}
	defer f.Close()

	up, err := h.uploads.Store(r.Context(), f, hdr.Filename, hdr.Header.Get("Content-Type"), folder)
	if err != nil {
		return "", err
	}
	h.logger.Info("upload stored", "folder", folder, "kind", up.Kind, "url", up.URL)
	return up.URL, nil
}

// idParam — {id} из пути; false -> уже ответили 404.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return 0, false
	}
	return id, true
}

// ignoreNotFound: правка/удаление исчезнувшей записи — не ошибка, просто ничего не делаем.
func ignoreNotFound(err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return nil
	}
	return err
}

var noticeParams = []struct{ param, text string }{
	{"updated", "Cambios guardados."},
	{"services", "Servicios actualizados."},
	{"team", "Equipo actualizado."},
	{"posts", "Publicaciones actualizadas."},
	{"created", "Administrador creado."},
	{"deleted", "Administrador eliminado."},
}

var errorTexts = map[string]string{
	"exists":  "Ese usuario ya existe.",
	"invalid": "Completa todos los campos.",
	"upload":  "No se pudo guardar el archivo.",
}

// adminData — уведомления панели из query (?updated=1, ?error=exists).
func adminData(r *http.Request) map[string]any {
	q := r.URL.Query()
	data := map[string]any{}
	for _, n := range noticeParams {
		if q.Get(n.param) != "" {
			data["Notice"] = n.text
			break
		}
	}
	if msg, ok := errorTexts[q.Get("error")]; ok {
		data["Error"] = msg
	}
	return data
}

// actorID — id админа, сделавшего запрос (для логов).
func actorID(r *http.Request) int64 {
	if a := middleware.AdminFrom(r.Context()); a != nil {
		return a.ID
	}
	return 0
}
