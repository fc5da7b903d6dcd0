package model

import (
	"testing"
	"time"
)

func TestUserFields(t *testing.T) {
	now := time.Now()
	u := User{ID: 7, Name: "Alice", Email: "a@x.com", PasswordHash: "$2a$10$stub", CreatedAt: now}

	if u.ID != 7 {
		t.Fatalf("unexpected id: %d", u.ID)
	}
	if u.Name != "Alice" || u.Email != "a@x.com" {
		t.Fatalf("unexpected identity fields: %q %q", u.Name, u.Email)
	}
	if u.PasswordHash == "" {
		t.Fatal("expected password hash to be carried")
	}
	if !u.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created at: %v", u.CreatedAt)
	}
}
