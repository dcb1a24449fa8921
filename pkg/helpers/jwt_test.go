package helpers

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	token, exp, err := m.GenerateAccessToken("42", "sess-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Error("expiry not in the future")
	}

	claims, err := m.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.UserID != "42" || claims.SessionID != "sess-1" {
		t.Errorf("claims = %s/%s", claims.UserID, claims.SessionID)
	}
}

func TestJWTSecretsAreSeparate(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	access, _, err := m.GenerateAccessToken("42", "sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.ParseRefreshToken(access); err == nil {
		t.Error("access token accepted as refresh token")
	}

	refresh, _, err := m.GenerateRefreshToken("42", "sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.ParseAccessToken(refresh); err == nil {
		t.Error("refresh token accepted as access token")
	}
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", -time.Minute, -time.Minute)
	token, _, err := m.GenerateAccessToken("42", "sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.ParseAccessToken(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestJWTTampered(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, time.Hour)
	other := NewJWTManager("other-secret", "other-refresh", time.Hour, time.Hour)

	token, _, err := other.GenerateAccessToken("42", "sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.ParseAccessToken(token); err == nil {
		t.Error("token signed with wrong secret accepted")
	}
}
