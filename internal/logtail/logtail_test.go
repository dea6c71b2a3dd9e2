package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "flip.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 5)
	if err != nil {
		t.Fatalf("Read() error = %v, want nil", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestParse(t *testing.T) {
	line := `{"time":"2026-10-16T09:30:00.5Z","level":"WARN","msg":"item poll failed","error":"connection refused","failures":3}`
	e, ok := Parse(line)
	if !ok {
		t.Fatalf("Parse ok = false, want true")
	}
	want := time.Date(2026, 10, 16, 9, 30, 0, 500_000_000, time.UTC)
	if !e.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", e.Time, want)
	}
	if e.Level != "WARN" || e.Message != "item poll failed" {
		t.Fatalf("Level/Message = %q/%q, want WARN/item poll failed", e.Level, e.Message)
	}
	wantAttrs := []Attr{{Key: "error", Value: "connection refused"}, {Key: "failures", Value: "3"}}
	if !reflect.DeepEqual(e.Attrs, wantAttrs) {
		t.Fatalf("Attrs = %v, want %v", e.Attrs, wantAttrs)
	}
}

func TestParse_NotJSON(t *testing.T) {
	e, ok := Parse("plain text line")
	if ok {
		t.Fatalf("Parse ok = true, want false")
	}
	if e.Raw != "plain text line" {
		t.Fatalf("Raw = %q, want the line", e.Raw)
	}
}

func TestParseLines_SkipsBlank(t *testing.T) {
	entries := ParseLines([]string{`{"level":"INFO","msg":"a"}`, "  ", "raw"})
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Message != "a" || entries[1].Raw != "raw" {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestEntryAtLeast(t *testing.T) {
	tests := []struct {
		level string
		min   string
		want  bool
	}{
		{"DEBUG", "INFO", false},
		{"INFO", "INFO", true},
		{"ERROR", "warn", true},
		{"", "ERROR", true},
		{"WARN", "bogus", true},
	}
	for _, tt := range tests {
		e := Entry{Level: tt.level}
		if got := e.AtLeast(tt.min); got != tt.want {
			t.Fatalf("Entry{%q}.AtLeast(%q) = %v, want %v", tt.level, tt.min, got, tt.want)
		}
	}
}
