package jwtPkg

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSignAndParse(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	accessToken, exp, err := Sign(map[string]interface{}{
		"id":       "user-1",
		"email":    "user@example.com",
		"username": "user",
	}, time.Hour)
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}
	if exp <= time.Now().Unix() {
		t.Errorf("exp = %d, want a future timestamp", exp)
	}

	parsed, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("token does not parse back: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}
	if claims["id"] != "user-1" || claims["email"] != "user@example.com" || claims["username"] != "user" {
		t.Errorf("claims = %v, missing identity fields", claims)
	}
}

func TestSignWithoutSecret(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "")

	if _, _, err := Sign(map[string]interface{}{"id": "x"}, time.Hour); err == nil {
		t.Error("Sign succeeded without a configured secret")
	}
}
