package utils

import (
	"context"
	"testing"
)

func TestContextKey_String(t *testing.T) {
	if SessionCtxKey.String() != "session" {
		t.Errorf("expected 'session', got '%s'", SessionCtxKey.String())
	}
}

func TestGetSessionFromContext(t *testing.T) {
	claims := &SessionClaims{Username: "vanessa"}
	ctx := context.WithValue(context.Background(), SessionCtxKey, claims)

	got, ok := GetSessionFromContext(ctx)
	if !ok || got != claims {
		t.Fatalf("expected claims from context, got %v (%v)", got, ok)
	}
}

func TestGetSessionFromContext_Missing(t *testing.T) {
	if _, ok := GetSessionFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}

	ctx := context.WithValue(context.Background(), SessionCtxKey, "wrong type")
	if _, ok := GetSessionFromContext(ctx); ok {
		t.Error("expected ok=false for wrong value type")
	}
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a, b := g.Generate(), g.Generate()
	if a == b {
		t.Error("expected distinct identifiers")
	}
	if v := g.New().Version(); v != 7 {
		t.Errorf("expected version 7, got %d", v)
	}
}
