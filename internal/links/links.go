// Package links приводит ссылки из админки к виду, пригодному для страниц:
// wa.me для WhatsApp, embed-адреса YouTube и Google Maps.
package links

import (
	"net/url"
	"strings"
)

// DefaultMapsQuery — что показывать на карте, если адрес не задан.
const DefaultMapsQuery = "Ciudad de Mexico, Mexico"

// WhatsApp: "+52 55 1234-5678" -> "https://wa.me/525512345678".
func WhatsApp(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return "https://wa.me/" + b.String()
}

// YouTubeEmbed переводит youtu.be / watch?v= / embed / shorts в адрес для iframe.
// Всё остальное возвращается как есть.
func YouTubeEmbed(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	host := strings.ToLower(u.Host)

	var id string
	switch {
	case strings.Contains(host, "youtu.be"):
		id = strings.TrimPrefix(u.Path, "/")
	case strings.Contains(host, "youtube.com"):
		switch {
		case u.Path == "/watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/embed/"):
			id = u.Path[strings.LastIndex(u.Path, "/embed/")+len("/embed/"):]
		case strings.HasPrefix(u.Path, "/shorts/"):
			id = u.Path[strings.LastIndex(u.Path, "/shorts/")+len("/shorts/"):]
		}
	}
	if id == "" {
		return raw
	}
	return "https://www.youtube.com/embed/" + id
}

// MapsEmbed готовит src для iframe карты.
//   - пусто -> поиск fallback;
//   - уже /maps/embed на google.com -> без изменений;
//   - другие адреса Google Maps -> добавляем output=embed (и q=fallback, если пути нет);
//   - любой другой текст считается адресом и ищется.
func MapsEmbed(raw, fallback string) string {
	if raw == "" {
		return searchEmbed(fallback)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return searchEmbed(raw)
	}
	host := strings.ToLower(u.Host)
	if !strings.Contains(host, "google.com") {
		return searchEmbed(raw)
	}
	if strings.Contains(u.Path, "/maps/embed") {
		return raw
	}

	q := u.Query()
	if !q.Has("output") {
		q.Set("output", "embed")
	}
	if (u.Path == "" || u.Path == "/") && !q.Has("q") {
		q.Set("q", fallback)
	}
	// как и в исходной версии: из повторяющихся параметров остаётся первый
	for k, vs := range q {
		if len(vs) > 1 {
			q[k] = vs[:1]
		}
	}
	if u.Scheme == "" {
		u.Scheme = "https"
	}
	if u.Path == "" {
		u.Path = "/maps"
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func searchEmbed(query string) string {
	return "https://www.google.com/maps?q=" + strings.ReplaceAll(url.QueryEscape(query), "+", "%20") + "&output=embed"
}
