package pass

import "testing"

func TestPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret" {
		t.Fatalf("password stored in clear")
	}
	if !VerifyPassword(hash, "secret") {
		t.Fatalf("valid password rejected")
	}
	if VerifyPassword(hash, "Secret") {
		t.Fatalf("wrong password accepted")
	}
}
