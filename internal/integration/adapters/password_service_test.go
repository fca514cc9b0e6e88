// Package adapters implements adapter interfaces from the application layer.
package adapters

import "testing"

func TestPasswordService(t *testing.T) {
	service := NewPasswordService()

	t.Run("hash and verify round-trip", func(t *testing.T) {
		hash, err := service.HashPassword("SecurePass123!")
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		if hash == "SecurePass123!" {
			t.Fatal("hash must not equal the plain password")
		}

		if err := service.VerifyPassword(hash, "SecurePass123!"); err != nil {
			t.Errorf("expected password to verify: %v", err)
		}
	})

	t.Run("wrong password fails verification", func(t *testing.T) {
		hash, err := service.HashPassword("SecurePass123!")
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}

		if err := service.VerifyPassword(hash, "WrongPass123!"); err == nil {
			t.Error("expected wrong password to fail verification")
		}
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		first, err := service.HashPassword("SecurePass123!")
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		second, err := service.HashPassword("SecurePass123!")
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}

		if first == second {
			t.Error("expected bcrypt to salt hashes")
		}
	})

	t.Run("short password fails strength check", func(t *testing.T) {
		if err := service.ValidatePasswordStrength("short"); err == nil {
			t.Error("expected short password to be rejected")
		}
	})

	t.Run("eight character password passes strength check", func(t *testing.T) {
		if err := service.ValidatePasswordStrength("12345678"); err != nil {
			t.Errorf("expected password to pass: %v", err)
		}
	})
}
