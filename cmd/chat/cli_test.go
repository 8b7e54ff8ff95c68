package main

import (
	"bytes"
	"os"
	"testing"
	"time"
)

func TestParseArgs_Defaults(t *testing.T) {
	for _, key := range []string{"MENTOR_URL", "MENTOR_TIMEOUT", "MENTOR_LOG_FILE", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cli, err := parseArgs(nil, &bytes.Buffer{}, &bytes.Buffer{}, func(int) {})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cli.URL != "http://localhost:8080" {
		t.Errorf("unexpected default url %q", cli.URL)
	}
	if cli.Timeout != 60*time.Second {
		t.Errorf("unexpected default timeout %v", cli.Timeout)
	}
	if cli.LogLevel != "info" {
		t.Errorf("unexpected default log level %q", cli.LogLevel)
	}
}

func TestParseArgs_Flags(t *testing.T) {
	args := []string{"--url", "http://mentor.test:9000", "--timeout", "5s", "--log-level", "debug"}

	cli, err := parseArgs(args, &bytes.Buffer{}, &bytes.Buffer{}, func(int) {})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cli.URL != "http://mentor.test:9000" {
		t.Errorf("unexpected url %q", cli.URL)
	}
	if cli.Timeout != 5*time.Second {
		t.Errorf("unexpected timeout %v", cli.Timeout)
	}
	if cli.LogLevel != "debug" {
		t.Errorf("unexpected log level %q", cli.LogLevel)
	}
}

func TestParseArgs_RejectsUnknownLevel(t *testing.T) {
	_, err := parseArgs([]string{"--log-level", "loud"}, &bytes.Buffer{}, &bytes.Buffer{}, func(int) {})
	if err == nil {
		t.Fatalf("expected error for unknown log level")
	}
}
