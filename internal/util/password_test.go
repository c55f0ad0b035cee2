package util

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("adminpass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "adminpass" {
		t.Error("hash should not equal plaintext")
	}

	if !CheckPassword("adminpass", hash) {
		t.Error("correct password should verify")
	}
	if CheckPassword("wrongpass", hash) {
		t.Error("wrong password should not verify")
	}
}

func TestHashPasswordEmpty(t *testing.T) {
	if _, err := HashPassword("", bcrypt.MinCost); err == nil {
		t.Error("empty password should return error")
	}
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	h1, _ := HashPassword("samepass", bcrypt.MinCost)
	h2, _ := HashPassword("samepass", bcrypt.MinCost)
	if h1 == h2 {
		t.Error("same password should hash differently (random salt)")
	}
}

func TestHashPasswordClampsCost(t *testing.T) {
	// out-of-range cost falls back to the bcrypt default
	hash, err := HashPassword("pass", 99)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword("pass", hash) {
		t.Error("clamped-cost hash should still verify")
	}
}

func TestCheckPasswordEmptyInputs(t *testing.T) {
	hash, _ := HashPassword("pass", bcrypt.MinCost)
	if CheckPassword("", hash) {
		t.Error("empty password should not verify")
	}
	if CheckPassword("pass", "") {
		t.Error("empty hash should not verify")
	}
	if CheckPassword("pass", "not-a-bcrypt-hash") {
		t.Error("malformed hash should not verify")
	}
}
