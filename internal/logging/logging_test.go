package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input  string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"DEBUG", slog.LevelDebug, true},
		{"info", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"  Error  ", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestInitToJSON(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	InitTo(&buf, "info", "json")
	For("post").Info("post created", "id", "abc")
	For("post").Debug("hidden")

	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec); err != nil {
		t.Fatalf("expected exactly one JSON record, got %q: %v", buf.String(), err)
	}
	if rec["component"] != "post" || rec["id"] != "abc" || rec["msg"] != "post created" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestInitToText(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	InitTo(&buf, "debug", "text")
	For("shell").Debug("dispatch", "cmd", "/list")
	out := buf.String()
	for _, want := range []string{"component=shell", "cmd=/list", "level=DEBUG"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
	SetLevel(slog.LevelInfo)
}

func TestComponentHandlerEnabled(t *testing.T) {
	SetLevel(slog.LevelWarn)
	defer SetLevel(slog.LevelInfo)

	h := &componentHandler{component: "test"}
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should not be enabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestWithAttrsCarried(t *testing.T) {
	c := CaptureForTest()
	defer c.Restore()

	For("store").With("slot", "scribe/posts").Info("saved")

	v, ok := c.Attr("saved", "slot")
	if !ok || v.String() != "scribe/posts" {
		t.Fatalf("slot attr: got (%v, %v)", v, ok)
	}
	if v, ok := c.Attr("saved", "component"); !ok || v.String() != "store" {
		t.Fatalf("component attr: got (%v, %v)", v, ok)
	}
}

func TestCaptureForTest(t *testing.T) {
	c := CaptureForTest()
	defer c.Restore()

	logger := For("capture-test")
	logger.Debug("debug msg")
	logger.Warn("something odd", "n", 1)
	logger.Error("broken")

	if !c.Has(slog.LevelWarn, "odd") {
		t.Error("expected warn record")
	}
	if c.Has(slog.LevelInfo, "odd") {
		t.Error("warn record should not match info level")
	}
	if c.Count(slog.LevelDebug) != 1 || c.Count(slog.LevelError) != 1 {
		t.Errorf("counts: debug=%d error=%d", c.Count(slog.LevelDebug), c.Count(slog.LevelError))
	}
}

func TestCaptureRestore(t *testing.T) {
	before := slog.Default()
	c := CaptureForTest()
	c.Restore()
	if slog.Default() != before {
		t.Error("Restore should reinstate the previous default logger")
	}
}
