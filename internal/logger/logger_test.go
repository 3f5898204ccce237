package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_Levels(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		Init(tt.in)
		if got := zerolog.GlobalLevel(); got != tt.want {
			t.Errorf("Init(%q): level = %v, want %v", tt.in, got, tt.want)
		}
	}
}
