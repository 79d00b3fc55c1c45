package auth

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	// The config singleton reads the environment once; pin the secrets
	// before anything triggers it.
	os.Setenv("JWT_SECRET", "test-jwt-secret")
	os.Setenv("API_MASTER_SECRET", "test-master-secret")
	os.Exit(m.Run())
}

func TestHMACKeyRoundTrip(t *testing.T) {
	key := GenerateHMACKey("ops-team")

	userID, err := VerifyHMACKey(key)
	if err != nil {
		t.Fatalf("Expected generated key to verify, got %v", err)
	}
	if userID != "ops-team" {
		t.Errorf("Expected user ID ops-team, got %s", userID)
	}
}

func TestVerifyHMACKey_RejectsTampering(t *testing.T) {
	key := GenerateHMACKey("ops-team")
	tampered := "other-team." + key[len("ops-team."):]

	if _, err := VerifyHMACKey(tampered); err == nil {
		t.Error("Expected a tampered key to be rejected")
	}
	if _, err := VerifyHMACKey("not-a-key"); err == nil {
		t.Error("Expected a malformed key to be rejected")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateToken("admin")
	if err != nil {
		t.Fatalf("CreateToken failed: %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("Expected token to verify, got %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("Expected username admin, got %s", claims.Username)
	}

	if _, err := VerifyToken(token + "x"); err == nil {
		t.Error("Expected a corrupted token to be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !CheckPasswordHash("s3cret", hash) {
		t.Error("Expected the right password to match")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("Expected a wrong password to fail")
	}
}
