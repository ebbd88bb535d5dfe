package charonlog

import (
	"fmt"
	"testing"
)

func TestLoggerHook(t *testing.T) {
	var got []string
	SetLogger(func(level Level, format string, args ...interface{}) {
		got = append(got, fmt.Sprintf("%s %s", level, fmt.Sprintf(format, args...)))
	})
	defer SetLogger(nil)

	Debugf("hello %s", "world")
	Warnf("watch out")

	if len(got) != 2 {
		t.Fatalf("got %d messages", len(got))
	}
	if got[0] != "DEBUG hello world" {
		t.Errorf("got %q", got[0])
	}
	if got[1] != "WARN watch out" {
		t.Errorf("got %q", got[1])
	}
}

func TestFatalExits(t *testing.T) {
	var code = -1
	var oldExit = exit
	exit = func(c int) { code = c }
	defer func() { exit = oldExit }()

	var fatals = 0
	SetLogger(func(level Level, format string, args ...interface{}) {
		if level == LevelFatal {
			fatals++
		}
	})
	defer SetLogger(nil)

	Fatalf("boom")
	if fatals != 1 {
		t.Errorf("got %d fatal messages", fatals)
	}
	if code != 1 {
		t.Errorf("exit code %d, want 1", code)
	}
}

func TestLevelString(t *testing.T) {
	var tests = []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelWarn, "WARN"},
		{LevelFatal, "FATAL"},
		{Level(99), "(unknown)"},
	}
	for _, test := range tests {
		if got := test.level.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}
