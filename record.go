package callprobe

import (
	"errors"
	"reflect"
)

// Record is a captured error: its kind, its value and where it happened.
type Record struct {
	Kind  string
	Value error
	Trace *StackTrace
}

type stackTracer interface {
	StackTrace() *StackTrace
}

// Capture records err. The trace is the one carried by err, if any, else the stack of the caller.
func Capture(err error) Record {
	result := Record{
		Kind:  KindOf(err),
		Value: err,
	}

	var tracer stackTracer
	if errors.As(err, &tracer) && !isNil(tracer) && tracer.StackTrace() != nil {
		result.Trace = tracer.StackTrace()
	} else {
		result.Trace = Callers(1)
	}

	return result
}

// isNil reports whether a is nil or holds a nil pointer, map, slice, func or chan.
func isNil(a any) bool {
	if a == nil {
		return true
	}

	v := reflect.ValueOf(a)

	switch v.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// KindOf returns the name of the dynamic type of err, without pointer indirections.
func KindOf(err error) string {
	if err == nil {
		return ""
	}

	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t.String()
}

func (r Record) Format() (string, error) {
	return FormatError(r.Kind, r.Value, r.Trace)
}
