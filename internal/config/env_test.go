package config

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SKYQUIZ_TEST_STR", "value")
	t.Setenv("SKYQUIZ_TEST_INT", "42")
	t.Setenv("SKYQUIZ_TEST_BAD", "nope")
	t.Setenv("SKYQUIZ_TEST_DUR", "1500ms")
	t.Setenv("SKYQUIZ_TEST_BOOL", "false")

	if got := GetEnv("SKYQUIZ_TEST_STR", "x"); got != "value" {
		t.Errorf("GetEnv = %q", got)
	}
	if got := GetEnv("SKYQUIZ_TEST_UNSET", "x"); got != "x" {
		t.Errorf("GetEnv fallback = %q", got)
	}
	if got := GetEnvInt("SKYQUIZ_TEST_INT", 1); got != 42 {
		t.Errorf("GetEnvInt = %d", got)
	}
	if got := GetEnvInt("SKYQUIZ_TEST_BAD", 7); got != 7 {
		t.Errorf("GetEnvInt bad value = %d", got)
	}
	if got := GetEnvDuration("SKYQUIZ_TEST_DUR", time.Second); got != 1500*time.Millisecond {
		t.Errorf("GetEnvDuration = %v", got)
	}
	if got := GetEnvDuration("SKYQUIZ_TEST_BAD", time.Second); got != time.Second {
		t.Errorf("GetEnvDuration bad value = %v", got)
	}
	if got := GetEnvBool("SKYQUIZ_TEST_BOOL", true); got {
		t.Error("GetEnvBool = true")
	}
	if got := GetEnvBool("SKYQUIZ_TEST_BAD", true); !got {
		t.Error("GetEnvBool bad value should fall back")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		env  string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"bogus", log.InfoLevel},
	}
	for _, tt := range tests {
		t.Setenv("LOG_LEVEL", tt.env)
		if got := NewLogger(io.Discard, "test").GetLevel(); got != tt.want {
			t.Errorf("LOG_LEVEL=%s: level = %v, want %v", tt.env, got, tt.want)
		}
	}
}
