package hashing_test

import (
	"testing"

	"chat-server/internal/infrastructure/hashing"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	h := hashing.NewBcrypt(4)

	hash, err := h.Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "hunter2" || hash == "" {
		t.Fatalf("Hash() = %q, want a bcrypt hash", hash)
	}

	if !h.Verify("hunter2", hash) {
		t.Error("Verify() rejected the correct password")
	}
	if h.Verify("hunter3", hash) {
		t.Error("Verify() accepted a wrong password")
	}
	if h.Verify("hunter2", "not-a-hash") {
		t.Error("Verify() accepted a malformed hash")
	}
}

func TestBcrypt_HashesAreSalted(t *testing.T) {
	h := hashing.NewBcrypt(4)

	first, err := h.Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := h.Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password are identical")
	}
}

func TestNewBcrypt_NonPositiveCostFallsBack(t *testing.T) {
	h := hashing.NewBcrypt(0)
	hash, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !h.Verify("pw", hash) {
		t.Error("fallback-cost hasher cannot verify its own hash")
	}
}
