package token

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var testSigningKey = []byte("test-signing-key")

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString(testSigningKey)
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return s
}

func TestClientKey_ValidBearerUsesSubject(t *testing.T) {
	r := httptest.NewRequest("POST", "/v1/places/search", nil)
	r.Header.Set("Authorization", "Bearer "+signedToken(t, jwt.MapClaims{
		"sub": "client-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	}))
	r.RemoteAddr = "203.0.113.9:51000"

	if got := ClientKey(r, testSigningKey); got != "client-42" {
		t.Errorf("Expected client-42, got %s", got)
	}
}

func TestClientKey_InvalidBearerFallsBackToIP(t *testing.T) {
	r := httptest.NewRequest("POST", "/v1/places/search", nil)
	r.Header.Set("Authorization", "Bearer not-a-token")
	r.RemoteAddr = "203.0.113.9:51000"

	if got := ClientKey(r, testSigningKey); got != "203.0.113.9" {
		t.Errorf("Expected the remote host, got %s", got)
	}
}

func TestClientKey_WrongSigningKeyFallsBackToIP(t *testing.T) {
	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "spoofed"})
	s, _ := other.SignedString([]byte("some-other-key"))

	r := httptest.NewRequest("POST", "/v1/places/search", nil)
	r.Header.Set("Authorization", "Bearer "+s)
	r.RemoteAddr = "203.0.113.9:51000"

	if got := ClientKey(r, testSigningKey); got == "spoofed" {
		t.Error("A token signed with the wrong key must not set the identity")
	}
}

func TestClientKey_XForwardedForTakesFirstHop(t *testing.T) {
	r := httptest.NewRequest("POST", "/v1/places/search", nil)
	r.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	r.RemoteAddr = "203.0.113.9:51000"

	if got := ClientKey(r, testSigningKey); got != "198.51.100.7" {
		t.Errorf("Expected the first forwarded hop, got %s", got)
	}
}

func TestClientKey_RemoteAddrFallback(t *testing.T) {
	r := httptest.NewRequest("POST", "/v1/places/search", nil)
	r.RemoteAddr = "203.0.113.9:51000"

	if got := ClientKey(r, nil); got != "203.0.113.9" {
		t.Errorf("Expected the remote host, got %s", got)
	}
}
