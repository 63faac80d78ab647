// errors стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает ошибку сервисного слоя, а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: сентинелы пакета service.
package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/civic-engagement-service/internal/service"
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервисного слоя в HTTP-статус и
// унифицированный ответ для фронта.
//
// Поведение:
//   - err == nil - это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - неизвестная ошибка - 500/internal (без утечки деталей).
//
// Таблица учитывает реальные сентинелы сервисного слоя:
//   - ErrInvalidArgument (битые входные/UUID/неизвестные enum) -> 400
//   - ErrUnauthenticated -> 401
//   - ErrPermissionDenied (роль/бан/чужая сущность) -> 403
//   - ErrNotFound (в т.ч. мягко удалённый контент) -> 404
//   - ErrAlreadyExists -> 409
//   - ErrAlreadyVoted (одноразовый голос в опросе) -> 409
//   - ErrPollClosed -> 409
//   - ErrInvalidOption (вариант не объявлен в опросе) -> 409
//   - ErrAlreadyResolved (жалоба уже терминальна) -> 409
//   - прочее -> 500/internal
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := base(err)
	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func base(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated", "unauthenticated"
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden, "permission_denied", "permission denied"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, service.ErrAlreadyExists):
		return http.StatusConflict, "already_exists", "already exists"
	case errors.Is(err, service.ErrAlreadyVoted):
		return http.StatusConflict, "already_voted", "already voted in this poll"
	case errors.Is(err, service.ErrPollClosed):
		return http.StatusConflict, "poll_closed", "poll is closed"
	case errors.Is(err, service.ErrInvalidOption):
		return http.StatusConflict, "invalid_option", "option is not declared in the poll"
	case errors.Is(err, service.ErrAlreadyResolved):
		return http.StatusConflict, "already_resolved", "report is already resolved"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
