package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/DiyaJain6/Task-Bridge/constants"
	"github.com/DiyaJain6/Task-Bridge/models"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "password" {
		t.Fatal("password stored in the clear")
	}
	if !CheckPassword("password", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestGenerateJWTClaims(t *testing.T) {
	user := models.User{ID: 42, Email: "alice@test.com", Role: constants.RoleWorker}
	signed, err := GenerateJWT(user)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return JwtSecret(), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse: valid=%v err=%v", parsed != nil && parsed.Valid, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("claims type %T", parsed.Claims)
	}
	if claims["email"] != "alice@test.com" || claims["role"] != constants.RoleWorker {
		t.Fatalf("claims = %v", claims)
	}
	if uid, ok := claims["user_id"].(float64); !ok || uint(uid) != 42 {
		t.Fatalf("user_id claim = %v", claims["user_id"])
	}
	if _, ok := claims["exp"].(float64); !ok {
		t.Fatalf("exp claim = %v", claims["exp"])
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Alice@Test.COM", "alice@test.com"},
		{"  bob@test.com  ", "bob@test.com"},
		{"\tCAROL@TEST.COM\n", "carol@test.com"},
		{"plain@test.com", "plain@test.com"},
	}
	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateOTPFormat(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp, err := GenerateOTP()
		if err != nil {
			t.Fatalf("otp: %v", err)
		}
		if len(otp) != 6 {
			t.Fatalf("otp %q length %d, want 6", otp, len(otp))
		}
		for _, r := range otp {
			if r < '0' || r > '9' {
				t.Fatalf("otp %q contains non-digit %q", otp, r)
			}
		}
	}
}
