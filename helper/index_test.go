package helper

import (
	"testing"

	"academy_manager/model"

	"github.com/golang-jwt/jwt/v5"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret-pass" {
		t.Fatal("password stored in cleartext")
	}
	if !CheckPasswordHash("secret-pass", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-jwt-secret")

	claim := model.TokenClaim{AccountId: 7, Username: "admin"}
	token, err := GenerateAccessToken(claim)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ParseToken(token)
	if err != nil || !parsed.Valid {
		t.Fatalf("parse: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["username"] != "admin" {
		t.Errorf("username claim = %v", claims["username"])
	}
	if claims["accountId"].(float64) != 7 {
		t.Errorf("accountId claim = %v", claims["accountId"])
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := GenerateAccessToken(model.TokenClaim{AccountId: 1, Username: "admin"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-b")
	parsed, err := ParseToken(token)
	if err == nil && parsed.Valid {
		t.Error("token signed with a different secret was accepted")
	}
}
