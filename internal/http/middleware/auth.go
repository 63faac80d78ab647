package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pribylovaa/civic-engagement-service/internal/auth"
	apierrors "github.com/pribylovaa/civic-engagement-service/internal/errors"
	logctx "github.com/pribylovaa/civic-engagement-service/internal/pkg/log"
	"github.com/pribylovaa/civic-engagement-service/internal/service"
)

// IdentityFrom возвращает подтверждённую личность носителя токена
// из контекста. ok == false — анонимный запрос.
func IdentityFrom(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(ctxIdentity).(auth.Identity)
	return id, ok
}

// AuthBearer проверяет Bearer-токен из Authorization и кладёт
// подтверждённую личность в контекст.
//
// Отсутствие заголовка — не ошибка: запрос идёт дальше анонимным,
// а решение "нужен ли актор" принимает сервисный слой. Предъявленный,
// но невалидный/просроченный токен — сразу 401, молча притворяться
// анонимом в этом случае нельзя.
func AuthBearer(verifier *auth.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				apierrors.WriteError(w, r, fmt.Errorf("auth bearer: %w", service.ErrUnauthenticated))
				return
			}

			token := strings.TrimSpace(header[len(prefix):])
			if token == "" {
				apierrors.WriteError(w, r, fmt.Errorf("auth bearer: %w", service.ErrUnauthenticated))
				return
			}

			identity, err := verifier.ParseToken(token)
			if err != nil {
				logctx.From(r.Context()).Warn("token rejected", "err", err)
				apierrors.WriteError(w, r, fmt.Errorf("auth bearer: %w", service.ErrUnauthenticated))
				return
			}

			ctx := context.WithValue(r.Context(), ctxIdentity, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
