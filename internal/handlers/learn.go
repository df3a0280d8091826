package handlers

import (
	"net/http"

	"AgenciaContable/internal/links"
	"AgenciaContable/internal/models"
)

/* ========= ПАНЕЛЬ: «APRENDE MÁS» И ПОСТЫ ========= */

const postsFolder = "posts"

var postContentTypes = []string{
	models.PostContentNone,
	models.PostContentImage,
	models.PostContentVideo,
	models.PostContentYouTube,
	models.PostContentSocial,
}

func (h *Handler) AdminLearnMorePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	content, err := h.store.LearnMoreContent(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	posts, err := h.store.ListPosts(ctx, false)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	data := adminData(r)
	data["Content"] = content
	data["Posts"] = posts
	data["ContentTypes"] = postContentTypes
	h.render(w, r, "edit_learn_more", data)
}

func (h *Handler) SaveLearnMore(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	content := models.LearnMoreContent{
		Title:     r.FormValue("title"),
		IntroText: r.FormValue("intro_text"),
	}
	if err := h.store.SaveLearnMoreContent(r.Context(), content); err != nil {
		h.fail(w, r, err)
		return
	}
	redirect(w, r, "/admin/learn-more?updated=1")
}

// postContent решает, что кладётся в content_url для данного типа.
// set=false — ссылку не трогаем (image/video без нового файла).
func (h *Handler) postContent(r *http.Request, contentType string) (url string, set bool, err error) {
	switch contentType {
	case models.PostContentImage, models.PostContentVideo:
		url, err = h.upload(r, "content_file", postsFolder)
		return url, url != "", err
	case models.PostContentYouTube:
		return links.YouTubeEmbed(r.FormValue("content_url")), true, nil
	case models.PostContentSocial:
		return r.FormValue("content_url"), true, nil
	default:
		return "", true, nil
	}
}

func postContentType(r *http.Request) string {
	ct := r.FormValue("content_type")
	if !models.ValidPostContentType(ct) {
		return models.PostContentNone
	}
	return ct
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	p := models.Post{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		ContentType: postContentType(r),
		IsPublished: r.FormValue("is_published") == "on",
	}
	if p.Title == "" {
		redirect(w, r, "/admin/learn-more?error=invalid")
		return
	}
	url, _, err := h.postContent(r, p.ContentType)
	if err != nil {
		h.logger.Error("posts: upload failed", "err", err)
		redirect(w, r, "/admin/learn-more?error=upload")
		return
	}
	p.ContentURL = url

	if err := h.store.CreatePost(r.Context(), &p); err != nil {
		h.fail(w, r, err)
		return
	}
	redirect(w, r, "/admin/learn-more?posts=1")
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	ctx := r.Context()
	p, err := h.store.Post(ctx, id)
	if err := ignoreNotFound(err); err != nil {
		h.fail(w, r, err)
		return
	}
	if p == nil {
		redirect(w, r, "/admin/learn-more?posts=1")
		return
	}

	p.Title = r.FormValue("title")
	p.Description = r.FormValue("description")
	p.ContentType = postContentType(r)
	p.IsPublished = r.FormValue("is_published") == "on"

	url, set, err := h.postContent(r, p.ContentType)
	if err != nil {
		h.logger.Error("posts: upload failed", "err", err, "post_id", id)
		redirect(w, r, "/admin/learn-more?error=upload")
		return
	}
	if set {
		p.ContentURL = url
	}

	if err := ignoreNotFound(h.store.UpdatePost(ctx, p)); err != nil {
		h.fail(w, r, err)
		return
	}
	redirect(w, r, "/admin/learn-more?posts=1")
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := ignoreNotFound(h.store.DeletePost(r.Context(), id)); err != nil {
		h.fail(w, r, err)
		return
	}
	redirect(w, r, "/admin/learn-more?posts=1")
}
