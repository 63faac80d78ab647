// auth проверяет access-токены внешнего auth-сервиса.
// Сервис не выпускает токены и не хранит пароли: он только
// аутентифицирует носителя. Роль актора читается из БД, а не из
// клейма, чтобы смена роли и бан действовали немедленно.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/config"
)

var (
	// ErrInvalidToken — токен не прошёл проверку подписи/клеймов.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired — срок действия токена истёк.
	ErrTokenExpired = errors.New("token expired")
)

// Identity — подтверждённая личность носителя токена.
// Username/Email — клеймы auth-сервиса; используются для ленивого
// заведения профиля при первом обращении.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Email    string
}

type accessClaims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Verifier валидирует access-токены по секрету/issuer/audience из конфига.
type Verifier struct {
	cfg config.AuthConfig
}

// NewVerifier создает новый Verifier.
func NewVerifier(cfg config.AuthConfig) *Verifier {
	return &Verifier{cfg: cfg}
}

// ParseToken валидирует access-токен и возвращает личность носителя.
func (v *Verifier) ParseToken(tokenStr string) (Identity, error) {
	const op = "auth/ParseToken"

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5 * time.Second),
		jwt.WithIssuer(v.cfg.Issuer),
	}
	if len(v.cfg.Audience) > 0 {
		opts = append(opts, jwt.WithAudience(v.cfg.Audience...))
	}

	token, err := jwt.ParseWithClaims(tokenStr, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return []byte(v.cfg.JWTSecret), nil
		},
		opts...,
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return Identity{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Identity{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return Identity{
		UserID:   uid,
		Username: claims.Username,
		Email:    claims.Email,
	}, nil
}
