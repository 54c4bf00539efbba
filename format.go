package callprobe

import (
	"strconv"
	"strings"
)

const tracebackHeader = "Traceback (most recent call last):\n"

// FormatError renders an error the way a top-level error report does: the traceback, oldest call first,
// followed by the "kind: message" summary line. Every line ends with a newline.
// An empty kind is derived from value; a nil value, typed nil pointers included, is rejected.
// One trailing newline of the message is dropped so the summary ends with exactly one.
func FormatError(kind string, value error, trace *StackTrace) (string, error) {
	if isNil(value) {
		return "", newError("callprobe: invalid argument: nil error value")
	}

	if kind == "" {
		kind = KindOf(value)
	}

	var sb strings.Builder

	if trace != nil && len(trace.Frames) > 0 {
		sb.WriteString(tracebackHeader)

		for i := len(trace.Frames) - 1; i >= 0; i-- {
			writeFrame(&sb, trace.Frames[i])
		}
	}

	writeSummary(&sb, kind, value.Error())

	return sb.String(), nil
}

func writeFrame(sb *strings.Builder, frame StackFrame) {
	sb.WriteString(`  File "`)

	if frame.File == "" {
		sb.WriteString("<unknown file>")
	} else {
		sb.WriteString(frame.File)
	}

	sb.WriteByte('"')

	if frame.Line != 0 {
		sb.WriteString(", line ")
		sb.WriteString(strconv.Itoa(frame.Line))
	}

	sb.WriteString(", in ")

	if frame.Function == "" {
		sb.WriteString("<unknown function>")
	} else {
		sb.WriteString(frame.Function)
	}

	sb.WriteByte('\n')
}

func writeSummary(sb *strings.Builder, kind, message string) {
	sb.WriteString(kind)

	message = strings.TrimSuffix(message, "\n")
	if message != "" {
		sb.WriteString(": ")
		sb.WriteString(message)
	}

	sb.WriteByte('\n')
}
