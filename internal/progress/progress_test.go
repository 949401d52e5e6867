package progress

import (
	"strings"
	"testing"
)

func TestFunc_EmitNilSafe(t *testing.T) {
	var fn Func
	// Must not panic.
	fn.Emit(LevelInfo, "hello %s", "world")
}

func TestPrinter_FiltersVerbose(t *testing.T) {
	var quiet, chatty strings.Builder

	Printer(&quiet, false)(Event{Message: "detail", Level: LevelVerbose})
	Printer(&chatty, true)(Event{Message: "detail", Level: LevelVerbose})

	if quiet.Len() != 0 {
		t.Errorf("non-verbose printer wrote %q", quiet.String())
	}
	if !strings.Contains(chatty.String(), "detail") {
		t.Errorf("verbose printer output = %q, want to contain %q", chatty.String(), "detail")
	}
}

func TestPrinter_Prefixes(t *testing.T) {
	tests := []struct {
		level  Level
		prefix string
	}{
		{LevelError, "✗"},
		{LevelWarning, "!"},
		{LevelSuccess, "✓"},
	}

	for _, tt := range tests {
		var out strings.Builder
		Printer(&out, false)(Event{Message: "msg", Level: tt.level})
		if !strings.HasPrefix(out.String(), tt.prefix) {
			t.Errorf("level %d output = %q, want prefix %q", tt.level, out.String(), tt.prefix)
		}
	}
}

func TestFunc_EmitFormats(t *testing.T) {
	var got Event
	fn := Func(func(e Event) { got = e })

	fn.Emit(LevelSuccess, "[%d/%d] done", 2, 4)

	if got.Message != "[2/4] done" {
		t.Errorf("Message = %q", got.Message)
	}
	if got.Level != LevelSuccess {
		t.Errorf("Level = %d, want LevelSuccess", got.Level)
	}
	if got.Kind != KindMessage {
		t.Errorf("Kind = %d, want KindMessage", got.Kind)
	}
}

func TestFunc_EmitKind(t *testing.T) {
	var got Event
	fn := Func(func(e Event) { got = e })

	fn.EmitKind(KindDatasetDone, LevelError, "%s failed", "a/one")

	if got.Kind != KindDatasetDone {
		t.Errorf("Kind = %d, want KindDatasetDone", got.Kind)
	}
	if got.Message != "a/one failed" {
		t.Errorf("Message = %q", got.Message)
	}

	var nilFn Func
	// Must not panic.
	nilFn.EmitKind(KindDatasetDone, LevelSuccess, "done")
}
