// file: radixmap/authmw/authmw.go
package authmw

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrUnauthorized is returned by Authenticate on a missing or invalid
// credential, and written by Middleware as a 401.
var ErrUnauthorized = errors.New("authmw: unauthorized")

type claims struct {
	Operator string `json:"sub"`
	jwt.RegisteredClaims
}

type contextKey string

const claimsKey = contextKey("authmw_claims")

// HashPassword hashes an operator password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken mints a bearer token for operator, valid for ttl, signed
// with secret.
func IssueToken(secret []byte, operator string, ttl time.Duration) (string, error) {
	c := claims{
		Operator: operator,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(secret)
}

// Authenticate validates a bearer token and returns the operator it was
// issued to.
func Authenticate(secret []byte, tokenStr string) (string, error) {
	c := &claims{}
	_, err := jwt.ParseWithClaims(tokenStr, c, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return "", ErrUnauthorized
	}
	if c.ExpiresAt != nil && c.ExpiresAt.Time.Before(time.Now()) {
		return "", ErrUnauthorized
	}
	return c.Operator, nil
}

// Middleware gates a handler behind a valid bearer token, stashing the
// authenticated operator name in the request context.
func Middleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			operator, err := Authenticate(secret, bearerToken(r))
			if err != nil {
				http.Error(w, ErrUnauthorized.Error(), http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), claimsKey, operator)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OperatorFromContext returns the operator name a Middleware-wrapped
// handler authenticated the request as.
func OperatorFromContext(ctx context.Context) (string, bool) {
	operator, ok := ctx.Value(claimsKey).(string)
	return operator, ok
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}
