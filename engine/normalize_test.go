package engine

import (
	"strings"
	"testing"

	"github.com/ftahirops/logradar/model"
)

func TestDetectSeverity(t *testing.T) {
	tests := []struct {
		name string
		line string
		want model.Severity
	}{
		{"error bracket", "[ERROR] something failed", model.Error},
		{"error lower", "error: bad thing", model.Error},
		{"warn bracket", "[WARN] disk almost full", model.Warn},
		{"warning word", "Warning: low memory", model.Warn},
		{"info bracket", "[INFO] server started", model.Info},
		{"debug bracket", "[DEBUG] entering function", model.Debug},
		{"trace bracket", "[TRACE] packet received", model.Trace},
		{"unrecognized", "just a random line", model.Unknown},
		{"case insensitive error", "ErRoR in module", model.Error},
		{"postgres log", "2026-02-20 15:03:24 UTC [123] LOG:  checkpoint starting", model.Info},
		{"postgres statement", "2026-02-20 15:03:24 UTC [123] STATEMENT:  SELECT * FROM users", model.Debug},
		{"postgres detail", "2026-02-20 15:03:24 UTC [123] DETAIL:  Key already exists", model.Debug},
		{"postgres notice", "2026-02-20 15:03:24 UTC [123] NOTICE:  table created", model.Info},
		{"postgres hint", "HINT:  Consider using CREATE INDEX", model.Info},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectSeverity(tt.line); got != tt.want {
				t.Errorf("DetectSeverity(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantIn  []string
		wantOut []string
	}{
		{"iso timestamp", "2025-01-15T10:30:00Z request ok", []string{"<TS>"}, []string{"2025"}},
		{"iso timestamp with offset", "2025-01-15T10:30:00.123+05:30 hello", []string{"<TS>"}, nil},
		{"uuid", "id=550e8400-e29b-41d4-a716-446655440000 done", []string{"<UUID>"}, []string{"550e8400"}},
		{"ip", "from 192.168.1.100 port 8080", []string{"<IP>"}, []string{"192.168"}},
		{"hex", "addr 0xDEADBEEF offset 0x1a2b", []string{"<HEX>"}, []string{"DEADBEEF"}},
		{"duration", "took 350ms to respond", []string{"<DUR>"}, []string{"350ms"}},
		{"syslog timestamp", "Feb 20 15:03:24 myhost sshd[12345]: Accepted", []string{"<TS>"}, []string{"Feb", "15:03"}},
		{"redis timestamp", "12345:M 20 Feb 2026 15:03:24.123 * Background saving", []string{"<TS>"}, []string{"Feb", "15:03"}},
		{"clf timestamp", `127.0.0.1 - - [20/Feb/2026:15:03:24 +0000] "GET /"`, []string{"<TS>"}, []string{"Feb"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.line)
			for _, want := range tt.wantIn {
				if !strings.Contains(got, want) {
					t.Errorf("Normalize(%q) = %q, want substring %q", tt.line, got, want)
				}
			}
			for _, absent := range tt.wantOut {
				if strings.Contains(got, absent) {
					t.Errorf("Normalize(%q) = %q, want no substring %q", tt.line, got, absent)
				}
			}
		})
	}
}

func TestNormalizeNumbers(t *testing.T) {
	out := Normalize("processed 42 items in batch 7")
	if strings.Contains(out, "42") || strings.Contains(out, "7") {
		t.Errorf("Normalize left a bare number: %q", out)
	}
	if strings.Count(out, "<NUM>") != 2 {
		t.Errorf("Normalize(%q) = %q, want two <NUM> tokens", "processed 42 items in batch 7", out)
	}
}

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"sgr code", "\x1b[31mred text\x1b[0m", "red text"},
		{"no ansi", "plain text", "plain text"},
		{"empty", "", ""},
		{"json escaped", "\\u001b[31mred\\u001b[0m", "red"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.in); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLineIntegrates(t *testing.T) {
	ev := ParseLine("test/src", "2025-01-01T00:00:00Z [ERROR] failed at 192.168.0.1")
	if ev.Level != model.Error {
		t.Errorf("Level = %v, want Error", ev.Level)
	}
	if ev.Source != "test/src" {
		t.Errorf("Source = %q, want test/src", ev.Source)
	}
	if !strings.Contains(ev.Normalized, "<TS>") || !strings.Contains(ev.Normalized, "<IP>") {
		t.Errorf("Normalized = %q, want <TS> and <IP>", ev.Normalized)
	}
}
