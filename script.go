package callprobe

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/kr/pretty"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem() //nolint:gochecknoglobals

// Script is a named set of attributes, some of which are operations that can be called by name.
// A Script is safe for concurrent use.
type Script struct {
	name string
	doc  string

	mu         sync.RWMutex
	attributes map[string]any
}

func NewScript(name, doc string) *Script {
	return &Script{
		name:       name,
		doc:        doc,
		attributes: make(map[string]any),
	}
}

func (s *Script) Name() string {
	return s.name
}

func (s *Script) Doc() string {
	return s.doc
}

// Set stores a plain attribute, replacing any previous attribute with that name.
func (s *Script) Set(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attributes[name] = value
}

// Define stores an operation. fn must be a non nil, non variadic func returning nothing or a single error.
func (s *Script) Define(name string, fn any) error {
	t := reflect.TypeOf(fn)

	if t == nil || t.Kind() != reflect.Func {
		return newError("callprobe: %q: expected a function, got %T", name, fn)
	}

	if isNil(fn) {
		return newError("callprobe: %q: nil function", name)
	}

	if t.IsVariadic() {
		return newError("callprobe: %q: variadic function %v not supported", name, t)
	}

	if t.NumOut() > 1 || t.NumOut() == 1 && t.Out(0) != errorType {
		return newError("callprobe: %q: function %v must return nothing or an error", name, t)
	}

	s.Set(name, fn)

	return nil
}

func (s *Script) HasAttribute(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, found := s.attributes[name]

	return found
}

func (s *Script) HasFunction(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return isFunction(s.attributes[name])
}

// Functions returns the sorted names of the defined operations.
func (s *Script) Functions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, 0, len(s.attributes))

	for _, name := range maps.Keys(s.attributes) {
		if isFunction(s.attributes[name]) {
			result = append(result, name)
		}
	}

	slices.Sort(result)

	return result
}

// Attribute returns the attribute called name if it holds a T.
func Attribute[T any](s *Script, name string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.attributes[name].(T)

	return value, ok
}

// Call invokes the operation called name with args.
// An error returned by the operation comes back as a *CallError holding its Record.
// A typed nil error, such as a nil *RuntimeError, counts as success.
func (s *Script) Call(name string, args ...any) error {
	s.mu.RLock()
	attribute, found := s.attributes[name]
	s.mu.RUnlock()

	if !found {
		return &NameError{Name: name}
	}

	if !isFunction(attribute) {
		return &TypeError{
			Function: name,
			Message:  fmt.Sprintf("'%T' object is not callable", attribute),
		}
	}

	fn := reflect.ValueOf(attribute)

	in, err := callArgs(name, fn.Type(), args)
	if err != nil {
		return err
	}

	out := fn.Call(in)
	if len(out) == 0 || isNil(out[0].Interface()) {
		return nil
	}

	return &CallError{
		Function: name,
		Record:   Capture(out[0].Interface().(error)), //nolint:forcetypeassert
	}
}

func callArgs(name string, t reflect.Type, args []any) ([]reflect.Value, error) {
	if len(args) != t.NumIn() {
		return nil, &TypeError{
			Function: name,
			Message:  fmt.Sprintf("%s() takes %d arguments (%d given)", name, t.NumIn(), len(args)),
		}
	}

	result := make([]reflect.Value, len(args))

	for i, arg := range args {
		param := t.In(i)

		if arg == nil {
			if !nillable(param) {
				return nil, argumentError(name, i, param, arg)
			}

			result[i] = reflect.Zero(param)

			continue
		}

		value := reflect.ValueOf(arg)
		if !value.Type().AssignableTo(param) {
			return nil, argumentError(name, i, param, arg)
		}

		result[i] = value
	}

	return result, nil
}

func argumentError(name string, i int, param reflect.Type, arg any) *TypeError {
	return &TypeError{
		Function: name,
		Message:  fmt.Sprintf("argument %d: expected %v, got %s", i+1, param, pretty.Sprintf("%# v", arg)),
	}
}

func isFunction(a any) bool {
	return a != nil && reflect.TypeOf(a).Kind() == reflect.Func && !isNil(a)
}

func nillable(t reflect.Type) bool {
	switch t.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return true
	default:
		return false
	}
}
