package security

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(42, "admin@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	adminID, err := issuer.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if adminID != 42 {
		t.Errorf("Validate() adminID = %d, want 42", adminID)
	}
}

func TestTokenRejection(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("different-secret", time.Hour)
	expired := NewTokenIssuer("test-secret", -time.Minute)

	goodToken, err := issuer.Issue(1, "a@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	wrongKeyToken, err := other.Issue(1, "a@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	expiredToken, err := expired.Issue(1, "a@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"empty", ""},
		{"wrong signing key", wrongKeyToken},
		{"expired", expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := issuer.Validate(tt.token); err == nil {
				t.Error("Validate() accepted bad token")
			}
		})
	}

	// Sanity check the good token still validates
	if _, err := issuer.Validate(goodToken); err != nil {
		t.Errorf("Validate() rejected good token: %v", err)
	}
}
