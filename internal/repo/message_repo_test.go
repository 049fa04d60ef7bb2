package repo

import (
	"context"
	"testing"
	"time"
)

func TestCreateMessage(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	m, err := CreateMessage(ctx, db, "Ana", "ana@example.com", "Hola", "Ventas, Soporte")
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	if m.ID == 0 {
		t.Fatalf("expected auto-assigned id")
	}
	if m.Topics != "Ventas, Soporte" {
		t.Fatalf("topics = %q", m.Topics)
	}
	if m.CreatedAt.IsZero() || time.Since(m.CreatedAt) > time.Minute {
		t.Fatalf("unexpected CreatedAt: %v", m.CreatedAt)
	}

	total, err := CountMessages(ctx, db)
	if err != nil {
		t.Fatalf("CountMessages: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 message, got %d", total)
	}
}

func TestCreateMessage_MonotonicCreatedAt(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first, err := CreateMessage(ctx, db, "a", "a@x", "1", "")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := CreateMessage(ctx, db, "b", "b@x", "2", "")
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if second.CreatedAt.Before(first.CreatedAt) {
		t.Fatalf("created_at not monotonic: %v then %v", first.CreatedAt, second.CreatedAt)
	}
}
