package vm

import "fmt"

// Exception is the engine's error channel; host callables return it and the
// dispatcher wraps everything host-side into it
type Exception struct {
	kind    string
	message string
	pos     Position
}

// Position is where a call site sits in the source; the zero value means
// "position unknown"
type Position struct {
	Line int
	Col  int
}

func (p Position) known() bool {
	return p.Line != 0
}

func (p Position) String() string {
	return fmt.Sprintf("%v:%v", p.Line, p.Col)
}

func (e *Exception) Error() string {
	if e.pos.known() {
		return fmt.Sprintf("%v: %v (at %v)", e.kind, e.message, e.pos)
	}
	return e.kind + ": " + e.message
}

func (e *Exception) Kind() string {
	return e.kind
}

// Pos reports where the failing call site was, if the caller provided it
func (e *Exception) Pos() Position {
	return e.pos
}

// At returns a copy of e carrying the call position
func (e *Exception) At(pos Position) *Exception {
	return &Exception{kind: e.kind, message: e.message, pos: pos}
}

// exception kinds; registration time errors are fatal to assembly,
// call time errors flow through the evaluator's error channel
const (
	KindDuplicateRegistration = "DuplicateRegistration"
	KindFlattenConflict       = "FlattenConflict"
	KindAmbiguousOverload     = "AmbiguousOverload"
	KindFunctionNotFound      = "FunctionNotFound"
	KindNamespaceNotFound     = "NamespaceNotFound"
	KindConstantReceiver      = "ConstantReceiverModified"
	KindHostCallFailure       = "HostCallFailure"
	KindTypeError             = "TypeError"
	KindRuntimeError          = "RuntimeError"
	KindCompileError          = "CompileError"
)

func CustomError(msg string, a ...any) *Exception {
	return &Exception{kind: KindRuntimeError, message: fmt.Sprintf(msg, a...)}
}

func TypeErrorF(format string, a ...any) *Exception {
	return &Exception{kind: KindTypeError, message: fmt.Sprintf(format, a...)}
}

var ErrTypes = &Exception{kind: KindTypeError, message: "wrong type of arguments given to function"}

func duplicateRegistration(key Key) *Exception {
	return &Exception{kind: KindDuplicateRegistration, message: fmt.Sprintf("'%v' is already registered", key)}
}

func flattenConflict(key Key) *Exception {
	return &Exception{kind: KindFlattenConflict, message: fmt.Sprintf("flattening would merge two definitions of '%v'", key)}
}

func ambiguousOverload(name string, args []Value) *Exception {
	return &Exception{kind: KindAmbiguousOverload, message: fmt.Sprintf("call to '%v' with (%v) matches more than one overload equally well", name, describeArgs(args))}
}

func functionNotFound(name string, args []Value) *Exception {
	return &Exception{kind: KindFunctionNotFound, message: fmt.Sprintf("no function '%v' matching (%v)", name, describeArgs(args))}
}

func namespaceNotFound(name string) *Exception {
	return &Exception{kind: KindNamespaceNotFound, message: fmt.Sprintf("namespace '%v' does not exist", name)}
}

func constantReceiver(name string) *Exception {
	return &Exception{kind: KindConstantReceiver, message: fmt.Sprintf("'%v' mutates its receiver but the receiver is a constant", name)}
}

func hostCallFailure(name string, cause any) *Exception {
	return &Exception{kind: KindHostCallFailure, message: fmt.Sprintf("host function '%v' failed: %v", name, cause)}
}

func describeArgs(args []Value) string {
	msg := ""
	for i, arg := range args {
		if i != 0 {
			msg += ", "
		}
		msg += arg.TypeOf()
	}
	return msg
}
