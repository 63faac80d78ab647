// Пакет log передаёт *slog.Logger через context.Context, чтобы обработчики
// и слои сервиса писали логи с атрибутами запроса (request_id и т. п.)
// без явного прокидывания логгера через сигнатуры.
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into возвращает контекст с привязанным логгером.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From извлекает логгер, положенный через Into. Если в контексте логгера
// нет (или лежит мусор), возвращается slog.Default() — вызывающему коду
// не нужно проверять nil.
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}
