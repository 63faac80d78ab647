package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pribylovaa/civic-engagement-service/internal/auth"
	"github.com/pribylovaa/civic-engagement-service/internal/http/handlers"
	"github.com/pribylovaa/civic-engagement-service/internal/http/middleware"
	"github.com/pribylovaa/civic-engagement-service/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
	Metrics  prometheus.Registerer
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, verifier *auth.Verifier, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),              // безопасно ловим паники
		middleware.RequestID(),            // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger),   // кладём request-scoped логгер в контекст и логируем
		middleware.AuthBearer(verifier),   // проверяем Bearer токен и кладём личность в контекст
	)
	if opts.Metrics != nil {
		root.Use(middleware.Metrics(opts.Metrics))
	}
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// ideas
	r.Post("/ideas", h.CreateIdea)
	r.Get("/ideas", h.ListIdeas)
	r.Get("/ideas/{id}", h.GetIdeaByID)
	r.Patch("/ideas/{id}/status", h.UpdateIdeaStatus)
	r.Post("/ideas/{id}/vote", h.VoteIdea)
	r.Post("/ideas/{id}/attachments/presign", h.PresignAttachment)
	r.Post("/ideas/{id}/attachments/confirm", h.ConfirmAttachment)

	// comments
	r.Post("/comments", h.CreateComment)
	r.Get("/ideas/{id}/comments", h.ListComments)

	// polls
	r.Post("/polls", h.CreatePoll)
	r.Get("/polls", h.ListPolls)
	r.Get("/polls/{id}", h.GetPollByID)
	r.Post("/polls/{id}/vote", h.CastPollVote)

	// reports
	r.Post("/reports", h.FileReport)
	r.Get("/reports", h.ListReports)
	r.Put("/reports/{id}", h.ResolveReport)

	// notifications
	r.Get("/notifications", h.ListNotifications)
	r.Get("/notifications/unread-count", h.UnreadCount)
	r.Put("/notifications/{id}/read", h.MarkNotificationRead)
	r.Put("/notifications/read-all", h.MarkAllNotificationsRead)

	// users
	r.Get("/me", h.Me)
	r.Get("/users/{id}/badges", h.UserBadges)
	r.Get("/stats", h.PlatformStats)

	// admin
	r.Get("/admin/stats", h.AdminStats)
	r.Get("/admin/users", h.AdminUsers)
	r.Put("/admin/users/{id}/role", h.ChangeUserRole)
	r.Put("/admin/users/{id}/ban", h.SetUserBan)
}
