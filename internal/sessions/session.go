package sessions

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/sessions"
)

const adminIDKey = "admin_id"

// Manager — подписанная и зашифрованная кука с id админа. На сервере ничего не храним.
type Manager struct {
	store *sessions.CookieStore
	name  string
}

// New собирает CookieStore из секрета: 2 ключа, подпись + шифрование.
// secure=true — кука только по HTTPS (за прокси с TLS).
func New(secret, name string, secure bool) *Manager {
	h := sha256.Sum256([]byte("auth:" + secret))
	e := sha256.Sum256([]byte("enc:" + secret))

	store := sessions.NewCookieStore(h[:], e[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60, // 7 дней
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
	return &Manager{store: store, name: name}
}

func (m *Manager) session(r *http.Request) (*sessions.Session, error) {
	// при битой/чужой куке gorilla отдаёт новую пустую сессию вместе с ошибкой
	s, err := m.store.Get(r, m.name)
	if s == nil {
		return nil, err
	}
	return s, nil
}

// SetAdminID начинает сессию с чистого листа и кладёт туда id.
func (m *Manager) SetAdminID(w http.ResponseWriter, r *http.Request, adminID int64) error {
	s, err := m.session(r)
	if err != nil {
		return err
	}
	clear(s.Values)
	s.Values[adminIDKey] = adminID
	return s.Save(r, w) // выставит Set-Cookie
}

// AdminID — id из сессии; false, если сессии нет или она не читается.
func (m *Manager) AdminID(r *http.Request) (int64, bool) {
	s, err := m.session(r)
	if err != nil {
		return 0, false
	}
	if v, ok := s.Values[adminIDKey].(int64); ok && v > 0 {
		return v, true
	}
	return 0, false
}

// Clear стирает всё содержимое сессии (выход и неудачный вход).
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s, err := m.session(r)
	if err != nil {
		return err
	}
	clear(s.Values)
	s.Options.MaxAge = -1
	err = s.Save(r, w)
	s.Options.MaxAge = m.store.Options.MaxAge
	return err
}
