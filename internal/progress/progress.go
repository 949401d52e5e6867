package progress

import (
	"fmt"
	"io"
)

// Level indicates the severity/type of a progress message.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// Kind classifies an event beyond its severity. Most events are plain
// messages; KindDatasetDone marks the final conversion outcome of one
// dataset, so consumers can count datasets without parsing messages.
type Kind int

const (
	KindMessage Kind = iota
	KindDatasetDone
)

// Event represents a progress update from the download manager or the
// conversion orchestrator.
type Event struct {
	Message string
	Level   Level
	Kind    Kind
}

// Func receives progress events. A nil Func is always safe to call through
// Emit.
type Func func(Event)

// Emit sends a plain message event through fn, tolerating a nil callback.
func (fn Func) Emit(level Level, format string, args ...any) {
	fn.EmitKind(KindMessage, level, format, args...)
}

// EmitKind sends a classified event through fn, tolerating a nil callback.
func (fn Func) EmitKind(kind Kind, level Level, format string, args ...any) {
	if fn == nil {
		return
	}
	fn(Event{Message: fmt.Sprintf(format, args...), Level: level, Kind: kind})
}

// Printer returns a Func that writes events to w with a level prefix,
// dropping verbose events unless verbose is set.
func Printer(w io.Writer, verbose bool) Func {
	return func(event Event) {
		if event.Level == LevelVerbose && !verbose {
			return
		}

		prefix := "   "
		switch event.Level {
		case LevelError:
			prefix = "✗ "
		case LevelWarning:
			prefix = "! "
		case LevelSuccess:
			prefix = "✓ "
		case LevelInfo:
			prefix = ""
		}

		fmt.Fprintln(w, prefix+event.Message)
	}
}
