package utils

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "fakevault", 0, "key"},
		{"empty key", "fakevault", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateSessionToken(tt.issuer, 1, "vanessa", "en", tt.duration, tt.signKey); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestGenerateAndValidateSessionToken(t *testing.T) {
	token, err := GenerateSessionToken("fakevault", 42, "vanessa", "en", time.Hour, "secret")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	claims, err := ValidateSessionToken(token, "secret", "fakevault")
	if err != nil {
		t.Fatalf("expected valid token, got: %v", err)
	}

	userID, err := claims.UserID()
	if err != nil || userID != 42 {
		t.Errorf("expected user ID 42, got %d (%v)", userID, err)
	}
	if claims.Username != "vanessa" || claims.Culture != "en" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Error("expected a token ID")
	}
}

func TestValidateSessionToken_Rejects(t *testing.T) {
	token, _ := GenerateSessionToken("fakevault", 1, "u", "en", time.Hour, "secret")
	expired, _ := GenerateSessionToken("fakevault", 1, "u", "en", time.Nanosecond, "secret")
	time.Sleep(2 * time.Millisecond)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", token, "other", "fakevault"},
		{"wrong issuer", token, "secret", "other"},
		{"expired", expired, "secret", "fakevault"},
		{"garbage", "not-a-token", "secret", "fakevault"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateSessionToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestParseSessionAuthorization(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Session abc.def.ghi", "abc.def.ghi", false},
		{"session  abc", "abc", false},
		{"Bearer abc", "", true},
		{"Session", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSessionAuthorization(tt.header)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error, got nil", tt.header)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("%q: expected %q, got %q (%v)", tt.header, tt.want, got, err)
		}
	}
}

func TestParseSessionExpiry(t *testing.T) {
	token, _ := GenerateSessionToken("fakevault", 1, "u", "en", time.Hour, "secret")

	exp, ok := ParseSessionExpiry(token)
	if !ok {
		t.Fatal("expected expiry to be found")
	}
	if d := time.Until(exp); d <= 59*time.Minute || d > time.Hour+time.Second {
		t.Errorf("unexpected expiry distance %v", d)
	}

	if _, ok := ParseSessionExpiry("opaque-session-id"); ok {
		t.Error("expected opaque token to have no expiry")
	}
	if _, ok := ParseSessionExpiry(strings.Repeat("a", 10) + ".b.c"); ok {
		t.Error("expected malformed token to have no expiry")
	}
}
