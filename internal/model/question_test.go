package model

import (
	"testing"
	"time"
)

func TestQuestion_WasPublishedRecently(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		want      bool
	}{
		{"future", now.Add(30 * 24 * time.Hour), false},
		{"just now", now, true},
		{"almost a day old", now.Add(-(23*time.Hour + 59*time.Minute + 59*time.Second)), true},
		{"exactly a day old", now.Add(-24 * time.Hour), true},
		{"older than a day", now.Add(-(24*time.Hour + time.Second)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{CreatedAt: tt.createdAt}
			if got := q.WasPublishedRecently(now); got != tt.want {
				t.Errorf("WasPublishedRecently() = %v, want %v", got, tt.want)
			}
		})
	}
}
