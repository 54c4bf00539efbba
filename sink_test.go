package callprobe

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer

	probes := NewProbes(WriterSink(&buf))

	probes.Test()
	probes.ThreadID(7)

	assert.Equal(t, "test\n7\n", buf.String())
}

func TestLoggerSink(t *testing.T) {
	var buf bytes.Buffer

	sink := LoggerSink(log.New(&buf, "probe: ", 0))

	sink.Emit("test_arg_int")

	assert.Equal(t, "probe: test_arg_int\n", buf.String())
}

func TestSinkFunc(t *testing.T) {
	var labels []string

	sink := SinkFunc(func(label string) {
		labels = append(labels, label)
	})

	sink.Emit("a")
	sink.Emit("b")
	Discard.Emit("c")

	assert.Equal(t, []string{"a", "b"}, labels)
}
