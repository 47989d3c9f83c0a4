package platform

import (
	"errors"
	"testing"
)

func TestSingleInstanceLock(t *testing.T) {
	guard, err := AcquireSingleInstance("pomodoro-test")
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}

	if _, err := AcquireSingleInstance("pomodoro-test"); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second acquire err = %v, want ErrAlreadyRunning", err)
	}

	if err := guard.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}

	again, err := AcquireSingleInstance("pomodoro-test")
	if err != nil {
		t.Fatalf("reacquire after release: %v", err)
	}
	_ = again.Release()
}

func TestPortFromNameIsStable(t *testing.T) {
	first := portFromName("Pomodoro")
	second := portFromName("Pomodoro")
	if first != second {
		t.Fatalf("port not deterministic: %d vs %d", first, second)
	}
	if first < 20000 || first > 39999 {
		t.Fatalf("port %d outside expected range", first)
	}
}
