package callprobe

import (
	"runtime"
)

const initialPCBufferSize = 64

// StackTrace is a captured call stack, most recent call first.
type StackTrace struct {
	Frames []StackFrame
}

// StackFrame is a single call site; unknown parts are left empty.
type StackFrame struct {
	Function string
	File     string
	Line     int
}

// Callers captures the stack of the calling goroutine. A skip of 0 starts at the caller of Callers.
func Callers(skip int) *StackTrace {
	pc := make([]uintptr, initialPCBufferSize)

	for {
		n := runtime.Callers(skip+2, pc) // skip runtime.Callers and Callers
		if n < len(pc) {
			pc = pc[:n]

			break
		}

		pc = make([]uintptr, 2*len(pc))
	}

	result := &StackTrace{Frames: make([]StackFrame, 0, len(pc))}
	frames := runtime.CallersFrames(pc)

	for more := len(pc) > 0; more; {
		var frame runtime.Frame

		frame, more = frames.Next()

		result.Frames = append(result.Frames, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
	}

	return result
}
