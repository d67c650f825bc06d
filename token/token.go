// Package token resolves the client identity used as the rate-limit key.
package token

import (
	"net"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
)

const ANONYMOUS_CLIENT_KEY = "anonymous"

// ClientKey extracts the rate-limit identity for a request: the `sub`
// claim of a valid HS256 bearer token when one is presented, otherwise the
// first X-Forwarded-For hop, otherwise the remote address host.
func ClientKey(r *http.Request, signingKey []byte) string {
	if sub := subjectFromBearer(r, signingKey); sub != "" {
		return sub
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return ANONYMOUS_CLIENT_KEY
}

func subjectFromBearer(r *http.Request, signingKey []byte) string {
	if len(signingKey) == 0 {
		return ""
	}
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return ""
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}
