package engine

import (
	"regexp"
	"strings"
	"time"

	"github.com/ftahirops/logradar/model"
)

// ansiRE strips terminal escape sequences (SGR, OSC, and bare CSI forms).
var ansiRE = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]|\x1b\\][^\x07]*(?:\x07|\x1b\\\\)|\x1b[^\x5b\x5d]")

// jsonANSIRE matches ANSI escapes that survived JSON string-encoding, where
// the ESC byte became a literal backslash-u-0-0-1-b sequence.
var jsonANSIRE = regexp.MustCompile(`\\u001[bB]\[[0-9;]*[A-Za-z]`)

// StripANSI removes terminal color/cursor escape codes from a line,
// including the JSON-escaped form produced when a line has passed through
// a JSON encoder (as Docker's multiplexed log frames sometimes do).
func StripANSI(s string) string {
	s = jsonANSIRE.ReplaceAllString(s, "")
	return ansiRE.ReplaceAllString(s, "")
}

var (
	isoTSRE = regexp.MustCompile(`\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:?\d{2}| ?UTC)?`)

	// syslogTSRE covers three timestamp shapes not anchored to ISO-8601:
	// Redis-style RFC2822 ("20 Feb 2026 15:03:24.123"), classic syslog
	// ("Feb 20 15:03:24.123"), and Apache Common Log Format
	// ("20/Feb/2026:15:03:24").
	syslogTSRE = regexp.MustCompile(`\b\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{4}\s+\d{2}:\d{2}:\d{2}(?:\.\d+)?` +
		`|\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{1,2}\s+\d{2}:\d{2}:\d{2}(?:\.\d+)?` +
		`|\b\d{2}/(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)/\d{4}:\d{2}:\d{2}:\d{2}`)

	uuidRE = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
	ipRE   = regexp.MustCompile(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`)
	hexRE  = regexp.MustCompile(`\b0x[0-9a-fA-F]+\b`)
	durRE  = regexp.MustCompile(`\b\d+(\.\d+)?\s?(ms|s|us|µs|ns)\b`)
	numRE  = regexp.MustCompile(`\b\d+(\.\d+)?\b`)
)

// Normalize reduces a log line to a structural signature by redacting the
// volatile parts of it, in a fixed pass order: timestamps, UUIDs, IPs, hex
// addresses, durations, then any remaining bare numbers. Passes run in this
// order so that, e.g., a duration ("350ms") is replaced with <DUR> before
// the bare-number pass would otherwise eat the "350".
func Normalize(line string) string {
	s := isoTSRE.ReplaceAllString(line, "<TS>")
	s = syslogTSRE.ReplaceAllString(s, "<TS>")
	s = uuidRE.ReplaceAllString(s, "<UUID>")
	s = ipRE.ReplaceAllString(s, "<IP>")
	s = hexRE.ReplaceAllString(s, "<HEX>")
	s = durRE.ReplaceAllString(s, "<DUR>")
	s = numRE.ReplaceAllString(s, "<NUM>")
	return s
}

// DetectSeverity infers a Severity from keyword scanning, case-insensitive,
// in descending-severity priority order. PostgreSQL's LOG:/STATEMENT:/
// DETAIL:/NOTICE:/HINT: prefixes are mapped the way postgres itself ranks
// them (LOG and NOTICE are informational; STATEMENT and DETAIL are
// debug-level elaboration of a preceding message).
func DetectSeverity(line string) model.Severity {
	upper := strings.ToUpper(line)
	switch {
	case strings.Contains(upper, "FATAL"), strings.Contains(upper, "PANIC"), strings.Contains(upper, "ERROR"):
		return model.Error
	case strings.Contains(upper, "WARN"):
		return model.Warn
	case strings.Contains(upper, "INFO"), strings.Contains(upper, " LOG:"), strings.Contains(upper, "NOTICE:"), strings.Contains(upper, "HINT:"):
		return model.Info
	case strings.Contains(upper, "DEBUG"), strings.Contains(upper, "STATEMENT:"), strings.Contains(upper, "DETAIL:"):
		return model.Debug
	case strings.Contains(upper, "TRACE"):
		return model.Trace
	default:
		return model.Unknown
	}
}

// ParseLine turns a raw line from source into a LogEvent: ANSI is stripped
// first so color codes never leak into severity detection or the
// signature, then severity and the redacted signature are derived from the
// cleaned text.
func ParseLine(source, line string) model.LogEvent {
	clean := StripANSI(line)
	return model.LogEvent{
		Level:      DetectSeverity(clean),
		Source:     source,
		Raw:        clean,
		Normalized: Normalize(clean),
		Time:       time.Now(),
	}
}
