package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestBootRejectsUnknownLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "loud"
	if _, err := Boot(cfg, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for unknown log level")
	}
}

func TestBootLogsRejectionsWithSession(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	cfg.LogJSON = true
	var logs, out bytes.Buffer
	sh, err := Boot(cfg, &logs)
	if err != nil {
		t.Fatalf("boot: %v", err)
	}
	if err := sh.Run(strings.NewReader("play 9\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := logs.String()
	for _, want := range []string{`"session":"`, `"component":"rules"`, "move rejected"} {
		if !strings.Contains(got, want) {
			t.Fatalf("logs missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(out.String(), "move rejected") {
		t.Fatalf("diagnostics leaked into shell output")
	}
}
