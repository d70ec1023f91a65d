// ABOUTME: Tests for the notification queue
// ABOUTME: Validates insertion order, timed expiry, and expiry independence
package notify

import (
	"testing"
	"time"
)

func TestPushPreservesInsertionOrder(t *testing.T) {
	q := NewQueueWithTTL(time.Minute)
	q.Success("premier")
	q.Error("deuxième")
	q.Info("troisième")

	active := q.Active()
	if len(active) != 3 {
		t.Fatalf("expected 3 active notifications, got %d", len(active))
	}
	if active[0].Message != "premier" || active[2].Message != "troisième" {
		t.Error("notifications out of insertion order")
	}
	if active[1].Level != LevelError {
		t.Errorf("expected error level, got %s", active[1].Level)
	}
}

func TestNotificationExpires(t *testing.T) {
	q := NewQueueWithTTL(50 * time.Millisecond)
	q.Info("éphémère")

	if len(q.Active()) != 1 {
		t.Fatal("notification should be active right after push")
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(q.Active()) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("notification never expired")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestExpiryDoesNotAffectOtherNotifications(t *testing.T) {
	q := NewQueueWithTTL(80 * time.Millisecond)
	q.Info("early")
	time.Sleep(50 * time.Millisecond)
	later := q.Push("late", LevelSuccess)

	// Wait for the first to expire.
	deadline := time.Now().Add(2 * time.Second)
	for {
		active := q.Active()
		if len(active) <= 1 {
			if len(active) == 1 && active[0].ID != later.ID {
				t.Fatal("wrong notification expired first")
			}
			if len(active) == 1 {
				return // early expired, late still pending
			}
		}
		if time.Now().After(deadline) {
			t.Fatal("first notification never expired")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestDistinctIDs(t *testing.T) {
	q := NewQueueWithTTL(time.Minute)
	a := q.Info("a")
	b := q.Info("b")
	if a.ID == b.ID {
		t.Error("notifications must have distinct IDs")
	}
}
