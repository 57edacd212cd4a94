package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf})

	logger.Info("substitution complete", "replaced", 3, "missing", 1)

	out := buf.String()
	if !strings.Contains(out, "substitution complete") {
		t.Errorf("missing message in %q", out)
	}
	if !strings.Contains(out, "replaced=3") || !strings.Contains(out, "missing=1") {
		t.Errorf("missing attrs in %q", out)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Format: FormatText, Output: &buf})

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info record should be filtered, got %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn record should pass, got %q", out)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("parse failed", "path", "note.md")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["msg"] != "parse failed" {
		t.Errorf("msg = %v", record["msg"])
	}
	if record["path"] != "note.md" {
		t.Errorf("path = %v", record["path"])
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf})

	logger.With("file", "doc.md").Info("scanned")

	if !strings.Contains(buf.String(), "file=doc.md") {
		t.Errorf("attached attr missing in %q", buf.String())
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	// Must not panic and must accept all levels.
	logger.Debug("quiet")
	logger.Error("still quiet")
}
