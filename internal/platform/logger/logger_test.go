package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestStdLogger_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatText, App: "pet-explorer", Output: &buf})

	l.Debug("hidden", nil)
	l.With(map[string]any{"session_id": "u1"}).Info("pet adopted", map[string]any{"pet_id": "dog1"})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered: %q", out)
	}
	for _, want := range []string{"app=pet-explorer", "msg=pet adopted", "pet_id=dog1", "session_id=u1", "level=info"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestStdLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Level: Debug, Format: FormatJSON, Output: &buf}).Warn("slow", map[string]any{"ms": 12})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json line: %v (%q)", err, buf.String())
	}
	if entry["level"] != "warn" || entry["msg"] != "slow" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestParse(t *testing.T) {
	if ParseLevel("WARNING") != Warn || ParseLevel("nope") != Info {
		t.Fatalf("unexpected level parsing")
	}
	if ParseFormat("JSON") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("unexpected format parsing")
	}
}
