package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/civic-engagement-service/internal/auth"
	"github.com/pribylovaa/civic-engagement-service/internal/http/middleware"
	"github.com/pribylovaa/civic-engagement-service/internal/service"
)

// Handlers агрегирует зависимости (сервисный слой).
type Handlers struct {
	svc *service.Service
}

func New(svc *service.Service) *Handlers {
	return &Handlers{svc: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — локальная ошибка парсинга -> 400.
func errInvalidArgument() error {
	return fmt.Errorf("handlers: %w", service.ErrInvalidArgument)
}

// errUnauthenticated — запрос без личности там, где она обязательна.
func errUnauthenticated() error {
	return fmt.Errorf("handlers: %w", service.ErrUnauthenticated)
}

// identity возвращает личность носителя токена (ok == false — аноним).
func identity(r *http.Request) (auth.Identity, bool) {
	return middleware.IdentityFrom(r.Context())
}

// actorID возвращает id актора; uuid.Nil — анонимный запрос.
func actorID(r *http.Request) uuid.UUID {
	id, ok := identity(r)
	if !ok {
		return uuid.Nil
	}
	return id.UserID
}

// uuidParam разбирает UUID из path-параметра chi.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, errInvalidArgument()
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errInvalidArgument()
	}

	return id, nil
}
