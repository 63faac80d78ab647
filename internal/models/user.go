// Package models содержит доменные сущности engagement-сервиса.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role — роль аккаунта. Хранится в БД как SMALLINT.
type Role int16

const (
	RoleUser Role = iota
	RoleModerator
	RoleAdmin
)

// CanModerate сообщает, разрешены ли роли операции модерации
// (резолюция жалоб, смена статуса идей, создание опросов).
func (r Role) CanModerate() bool {
	return r == RoleModerator || r == RoleAdmin
}

// IsAdmin сообщает, разрешены ли роли административные операции
// (смена ролей, бан, админская статистика).
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Valid проверяет, что значение входит в допустимый диапазон.
func (r Role) Valid() bool {
	return r >= RoleUser && r <= RoleAdmin
}

// String возвращает каноническое строковое представление роли
// (используется в HTTP-ответах и админских операциях).
func (r Role) String() string {
	switch r {
	case RoleModerator:
		return "moderator"
	case RoleAdmin:
		return "admin"
	default:
		return "user"
	}
}

// ParseRole разбирает строковое представление роли.
// Неизвестная строка -> (RoleUser, false).
func ParseRole(s string) (Role, bool) {
	switch s {
	case "user":
		return RoleUser, true
	case "moderator":
		return RoleModerator, true
	case "admin":
		return RoleAdmin, true
	default:
		return RoleUser, false
	}
}

// User — внутренняя доменная модель аккаунта.
// Роль и бан меняются только администраторами; бейджи не хранятся,
// а выводятся из счётчиков активности (см. ActivityStats/EvaluateBadges).
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Role      Role
	IsBanned  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
