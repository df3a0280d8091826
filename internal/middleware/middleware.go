package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"AgenciaContable/internal/auth"
	"AgenciaContable/internal/models"
	"AgenciaContable/internal/sessions"
)

type ctxKey struct{}

// Gate проверяет сессию админа перед защищёнными маршрутами.
type Gate struct {
	sessions *sessions.Manager
	resolver *auth.Resolver
	logger   *slog.Logger
}

func NewGate(sm *sessions.Manager, resolver *auth.Resolver, logger *slog.Logger) *Gate {
	return &Gate{sessions: sm, resolver: resolver, logger: logger}
}

// Current — админ текущего запроса или nil (нет сессии / админ удалён).
func (g *Gate) Current(r *http.Request) (*models.Admin, error) {
	if a := AdminFrom(r.Context()); a != nil {
		return a, nil
	}
	id, _ := g.sessions.AdminID(r) // нет id -> 0 -> Resolve не ходит в базу
	return g.resolver.Resolve(r.Context(), id)
}

// RequireAdmin — chi-мидлварь: без админа -> 303 на /admin/login.
// Позволяет писать: g.Use(gate.RequireAdmin)
func (g *Gate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, ok := g.resolve(w, r)
		if !ok {
			return
		}
		if admin == nil {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), admin)))
	})
}

// RequireSuper: без админа -> /admin/login, админ без is_super -> /admin.
func (g *Gate) RequireSuper(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, ok := g.resolve(w, r)
		if !ok {
			return
		}
		switch {
		case admin == nil:
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		case !admin.IsSuper:
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
		default:
			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), admin)))
		}
	})
}

// resolve: ok=false — ответ уже записан (ошибка базы).
func (g *Gate) resolve(w http.ResponseWriter, r *http.Request) (*models.Admin, bool) {
	admin, err := g.Current(r)
	if err != nil {
		g.logger.Error("auth: resolve admin", "err", err, "path", r.URL.Path)
		http.Error(w, "Error interno", http.StatusInternalServerError)
		return nil, false
	}
	return admin, true
}

// WithAdmin кладёт админа в контекст запроса.
func WithAdmin(ctx context.Context, a *models.Admin) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// AdminFrom достаёт админа, положенного RequireAdmin/RequireSuper.
func AdminFrom(ctx context.Context) *models.Admin {
	a, _ := ctx.Value(ctxKey{}).(*models.Admin)
	return a
}
