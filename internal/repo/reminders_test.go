package repo

import (
	"testing"
	"time"
)

func TestAddListRoundTrip(t *testing.T) {
	r := NewReminders()
	due := time.Date(2026, 2, 18, 9, 0, 0, 0, time.UTC)

	id := r.Add(7, 7, "Buy milk", due)
	if id != 1 {
		t.Fatalf("first id = %d, want 1", id)
	}

	items := r.List(7)
	if len(items) != 1 {
		t.Fatalf("list len = %d, want 1", len(items))
	}
	got := items[0]
	if got.ID != 1 || got.Text != "Buy milk" || !got.DueAt.Equal(due) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestIDsMonotonicAcrossDeletes(t *testing.T) {
	r := NewReminders()
	due := time.Now().Add(time.Hour)

	id1 := r.Add(7, 7, "a", due)
	id2 := r.Add(7, 7, "b", due)
	if !r.Remove(7, id1) {
		t.Fatalf("remove #%d failed", id1)
	}
	id3 := r.Add(7, 7, "c", due)

	if id1 != 1 || id2 != 2 || id3 != 3 {
		t.Fatalf("ids = %d,%d,%d, want 1,2,3", id1, id2, id3)
	}
}

func TestIDsIndependentPerOwner(t *testing.T) {
	r := NewReminders()
	due := time.Now().Add(time.Hour)

	if id := r.Add(7, 7, "a", due); id != 1 {
		t.Fatalf("owner 7 first id = %d, want 1", id)
	}
	if id := r.Add(8, 8, "b", due); id != 1 {
		t.Fatalf("owner 8 first id = %d, want 1", id)
	}
}

func TestRemoveIdempotent(t *testing.T) {
	r := NewReminders()
	id := r.Add(7, 7, "a", time.Now().Add(time.Hour))

	if !r.Remove(7, id) {
		t.Fatalf("first remove: want true")
	}
	if r.Remove(7, id) {
		t.Fatalf("second remove: want false")
	}
	if r.Remove(7, 99) {
		t.Fatalf("remove of unknown id: want false")
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	r := NewReminders()
	late := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	early := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	// нарочно добавляем сначала позднее напоминание
	r.Add(7, 7, "late", late)
	r.Add(7, 7, "early", early)

	items := r.List(7)
	if len(items) != 2 || items[0].Text != "late" || items[1].Text != "early" {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestTakeDuePartitionsAndDrains(t *testing.T) {
	r := NewReminders()
	now := time.Date(2026, 2, 17, 10, 0, 0, 0, time.UTC)

	r.Add(7, 7, "past", now.Add(-time.Minute))
	r.Add(7, 7, "exact", now)
	r.Add(7, 7, "future", now.Add(time.Minute))
	r.Add(8, 8, "other future", now.Add(time.Hour))

	due := r.TakeDue(now)
	if len(due) != 1 {
		t.Fatalf("due owners = %d, want 1", len(due))
	}
	got := due[7]
	if len(got) != 2 || got[0].Text != "past" || got[1].Text != "exact" {
		t.Fatalf("due set mismatch: %+v", got)
	}

	// повторный вызов без новых созревших ничего не возвращает
	if again := r.TakeDue(now); len(again) != 0 {
		t.Fatalf("second TakeDue returned %+v, want empty", again)
	}

	left := r.List(7)
	if len(left) != 1 || left[0].Text != "future" {
		t.Fatalf("retained mismatch: %+v", left)
	}
	if other := r.List(8); len(other) != 1 {
		t.Fatalf("other owner touched: %+v", other)
	}
}
