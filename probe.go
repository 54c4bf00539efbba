package callprobe

import "fmt"

const (
	ExpectedInt = 1234
	ExpectedStr = "ARDVARK"

	IntCheckFailed  = "int argument check failed"
	StrCheckFailed  = "str argument check failed"
	AlwaysFailsText = "this function always returns with an exception"

	// UndefinedOperation is never defined; BrokenFunction calls it.
	UndefinedOperation = "undefined_function"
)

// Caller invokes an operation by name.
type Caller interface {
	Call(name string, args ...any) error
}

// Probes are leaf operations that check a harness passes the expected arguments through, or fail on purpose.
type Probes struct {
	sink   Sink
	caller Caller
}

func NewProbes(sink Sink) *Probes {
	if sink == nil {
		sink = Discard
	}

	return &Probes{
		sink:   sink,
		caller: NewScript("", ""),
	}
}

// Register defines every probe on script under its operation name.
// BrokenFunction then resolves names through script, so script must not define UndefinedOperation.
func (p *Probes) Register(script *Script) error {
	if script.HasAttribute(UndefinedOperation) {
		return newError("callprobe: %q is reserved and must stay undefined", UndefinedOperation)
	}

	operations := map[string]any{
		"test":             p.Test,
		"test_arg_int":     p.ArgInt,
		"test_arg_str":     p.ArgStr,
		"test_arg_str_int": p.ArgIntStr,
		"thread_id":        p.ThreadID,
		"raise_exception":  p.RaiseException,
		"broken_function":  p.BrokenFunction,
	}

	for name, fn := range operations {
		if err := script.Define(name, fn); err != nil {
			return err
		}
	}

	p.caller = script

	return nil
}

func (p *Probes) Test() {
	p.sink.Emit("test")
}

func (p *Probes) ArgInt(value int) error {
	p.sink.Emit("test_arg_int")

	return checkInt(value)
}

func (p *Probes) ArgStr(value string) error {
	p.sink.Emit("test_arg_str")

	return checkStr(value)
}

// ArgIntStr checks the integer before the string.
func (p *Probes) ArgIntStr(i int, s string) error {
	p.sink.Emit("test_arg_str_int")

	if err := checkInt(i); err != nil {
		return err
	}

	return checkStr(s)
}

// ThreadID emits the string form of id.
func (p *Probes) ThreadID(id any) {
	p.sink.Emit(fmt.Sprint(id))
}

func (p *Probes) RaiseException() error {
	p.sink.Emit("raise_exception")

	return newRuntimeError(AlwaysFailsText)
}

// BrokenFunction calls UndefinedOperation. It fails with a *NameError as long as
// the script probes are registered on does not define that name afterwards.
func (p *Probes) BrokenFunction() error {
	p.sink.Emit("broken_function")

	return p.caller.Call(UndefinedOperation)
}

func checkInt(value int) error {
	if value != ExpectedInt {
		return newUnitTestError(IntCheckFailed)
	}

	return nil
}

func checkStr(value string) error {
	if value != ExpectedStr {
		return newUnitTestError(StrCheckFailed)
	}

	return nil
}
