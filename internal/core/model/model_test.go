package model

import "testing"

func TestNewTimerConfigClamps(t *testing.T) {
	tests := []struct {
		name         string
		workMinutes  int
		breakMinutes int
		wantWork     int
		wantBreak    int
	}{
		{"defaults", 25, 5, 1500, 300},
		{"zero input", 0, 200, 60, 3600},
		{"above max", 121, 61, 7200, 3600},
		{"negative", -10, -10, 60, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewTimerConfig(tt.workMinutes, tt.breakMinutes)
			if config.WorkDuration != tt.wantWork {
				t.Errorf("work = %d, want %d", config.WorkDuration, tt.wantWork)
			}
			if config.BreakDuration != tt.wantBreak {
				t.Errorf("break = %d, want %d", config.BreakDuration, tt.wantBreak)
			}
		})
	}
}

func TestTimerConfigClampSeconds(t *testing.T) {
	config := TimerConfig{WorkDuration: 10, BreakDuration: 100_000}
	config.Clamp()
	if config.WorkDuration != 60 {
		t.Errorf("work = %d, want 60", config.WorkDuration)
	}
	if config.BreakDuration != 3600 {
		t.Errorf("break = %d, want 3600", config.BreakDuration)
	}
}

func TestWorkMinutesRounds(t *testing.T) {
	tests := []struct {
		seconds int
		want    int
	}{
		{1500, 25},
		{60, 1},
		{90, 2},
		{89, 1},
	}

	for _, tt := range tests {
		config := TimerConfig{WorkDuration: tt.seconds}
		if got := config.WorkMinutes(); got != tt.want {
			t.Errorf("WorkMinutes(%d) = %d, want %d", tt.seconds, got, tt.want)
		}
	}
}

func TestModeOpposite(t *testing.T) {
	if ModeWork.Opposite() != ModeBreak || ModeBreak.Opposite() != ModeWork {
		t.Fatal("opposite modes are wrong")
	}
}

func TestRollover(t *testing.T) {
	stats := SessionStats{SessionCount: 4, TodayFocusMinutes: 100, CurrentStreak: 4, LastDate: "2026-08-29"}

	same := stats
	same.Rollover("2026-08-29")
	if same != stats {
		t.Fatalf("same-day rollover changed stats: %+v", same)
	}

	next := stats
	next.Rollover("2026-08-30")
	want := SessionStats{LastDate: "2026-08-30"}
	if next != want {
		t.Fatalf("rollover = %+v, want %+v", next, want)
	}
}

func TestDecodeTimerDataCorrupted(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", "not json"},
		{"wrong types", `{"workDuration":"abc"}`},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, stats := DecodeTimerData([]byte(tt.raw)).Split()
			if config != DefaultTimerConfig() {
				t.Errorf("config = %+v, want defaults", config)
			}
			if stats.SessionCount != 0 || stats.CurrentStreak != 0 || stats.TodayFocusMinutes != 0 {
				t.Errorf("stats = %+v, want zeroed", stats)
			}
		})
	}
}

func TestSplitNegativeValues(t *testing.T) {
	data := TimerData{WorkDuration: -60, BreakDuration: 300, SessionCount: -2, CurrentStreak: -1, TodayFocusMinutes: -9}
	config, stats := data.Split()
	if config.WorkDuration != DefaultWorkSeconds {
		t.Errorf("work = %d, want default %d", config.WorkDuration, DefaultWorkSeconds)
	}
	if config.BreakDuration != 300 {
		t.Errorf("break = %d, want 300", config.BreakDuration)
	}
	if stats.SessionCount != 0 || stats.CurrentStreak != 0 || stats.TodayFocusMinutes != 0 {
		t.Errorf("stats = %+v, want zeroed", stats)
	}
}

func TestTimerDataRoundTrip(t *testing.T) {
	config := TimerConfig{WorkDuration: 1800, BreakDuration: 600}
	stats := SessionStats{SessionCount: 2, TodayFocusMinutes: 60, CurrentStreak: 2, LastDate: "2026-08-30"}

	gotConfig, gotStats := NewTimerData(config, stats).Split()
	if gotConfig != config {
		t.Errorf("config = %+v, want %+v", gotConfig, config)
	}
	if gotStats != stats {
		t.Errorf("stats = %+v, want %+v", gotStats, stats)
	}
}
