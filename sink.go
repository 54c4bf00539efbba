package callprobe

import (
	"fmt"
	"io"
	"log"
)

//go:generate mockery --name Sink --inpackage --testonly --with-expecter

// Sink receives the diagnostic labels emitted by probes. Emission is best effort.
type Sink interface {
	Emit(label string)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(label string)

func (f SinkFunc) Emit(label string) {
	f(label)
}

// Discard drops every label.
var Discard Sink = SinkFunc(func(string) {}) //nolint:gochecknoglobals

// WriterSink writes each label on its own line.
func WriterSink(w io.Writer) Sink {
	return SinkFunc(func(label string) {
		_, _ = fmt.Fprintln(w, label)
	})
}

// LoggerSink prints each label through logger.
func LoggerSink(logger *log.Logger) Sink {
	return SinkFunc(func(label string) {
		logger.Println(label)
	})
}
