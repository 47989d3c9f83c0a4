package bolt

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/chikhaoui-amine/Pomodoro/internal/core/model"
	"github.com/chikhaoui-amine/Pomodoro/internal/storage"
)

func TestKeyValueRoundTrip(t *testing.T) {
	store := openTestStore(t)
	defer func() { _ = store.Close() }()

	if err := store.Put(storage.KeyTheme, "dark"); err != nil {
		t.Fatalf("put: %v", err)
	}

	value, err := store.Get(storage.KeyTheme)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != "dark" {
		t.Fatalf("value = %q, want %q", value, "dark")
	}
}

func TestGetMissingKey(t *testing.T) {
	store := openTestStore(t)
	defer func() { _ = store.Close() }()

	if _, err := store.Get("absent"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pomodoro.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Put(storage.KeyTimerData, `{"workDuration":1500}`); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	value, err := reopened.Get(storage.KeyTimerData)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if value != `{"workDuration":1500}` {
		t.Fatalf("value = %q, want stored document", value)
	}
}

func TestSessionLog(t *testing.T) {
	store := openTestStore(t)
	defer func() { _ = store.Close() }()

	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	records := []model.SessionRecord{
		{Mode: model.ModeWork, DurationSeconds: 1500, CompletedAt: base, Date: "2026-08-30"},
		{Mode: model.ModeWork, DurationSeconds: 1500, CompletedAt: base.Add(30 * time.Minute), Date: "2026-08-30"},
		{Mode: model.ModeWork, DurationSeconds: 1500, CompletedAt: base.AddDate(0, 0, -1), Date: "2026-08-29"},
	}
	for _, record := range records {
		if err := store.RecordSession(record); err != nil {
			t.Fatalf("record session: %v", err)
		}
	}

	todays, err := store.SessionsOn("2026-08-30")
	if err != nil {
		t.Fatalf("sessions on: %v", err)
	}
	if len(todays) != 2 {
		t.Fatalf("sessions = %d, want 2", len(todays))
	}
	if !todays[0].CompletedAt.Before(todays[1].CompletedAt) {
		t.Error("sessions should come back oldest first")
	}
	for _, record := range todays {
		if record.ID == "" {
			t.Error("record should have an assigned ID")
		}
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pomodoro.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}
