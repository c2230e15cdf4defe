package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthCookieName — имя cookie с JWT администратора.
const AuthCookieName = "auth_token"

type contextKey string

const userIDKey contextKey = "user_id"

// claims — полезная нагрузка токена: только id пользователя.
type claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// BuildToken выписывает JWT для userID, подписанный secret.
func BuildToken(userID int64, secret string) (string, error) {
	c := claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString([]byte(secret))
}

// SetLoginCookie выписывает токен и ставит auth cookie в ответ.
func SetLoginCookie(w http.ResponseWriter, userID int64, secret string) error {
	tokenStr, err := BuildToken(userID, secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    tokenStr,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int((24 * time.Hour).Seconds()),
	})
	return nil
}

// ClearLoginCookie сбрасывает auth cookie (logout).
func ClearLoginCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// WithAuth проверяет auth cookie и кладёт user_id в контекст запроса.
// Запрос без валидного токена проходит дальше анонимным: решение
// "пускать или нет" принимает хендлер.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(AuthCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			var c claims
			token, err := jwt.ParseWithClaims(cookie.Value, &c, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, c.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext возвращает id пользователя, если запрос авторизован.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
