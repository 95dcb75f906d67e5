package vm

import "fmt"

// hooks are the two text sinks plus the variable definition filter. They hang
// off the Instance, not off package state, so independent engines never step
// on each other.
type hooks struct {
	print  func(text string)
	debug  func(text string, source string, pos Position)
	varDef func(def VarDef) (bool, *Exception)
}

func defaultPrintSink(text string) {
	fmt.Print(text)
}

func defaultDebugSink(text string, source string, pos Position) {
	if source != "" {
		fmt.Printf("%v @ %v: %v\n", source, pos, text)
		return
	}
	fmt.Println(text)
}

// SetPrintSink replaces the print sink; the default writes to stdout.
// Replacement is total, the previous sink is not chained.
func (vm *Instance) SetPrintSink(sink func(text string)) {
	if sink == nil {
		vm.hooks.print = defaultPrintSink
		return
	}
	vm.hooks.print = sink
}

// SetDebugSink replaces the debug sink; same policy as SetPrintSink
func (vm *Instance) SetDebugSink(sink func(text string, source string, pos Position)) {
	if sink == nil {
		vm.hooks.debug = defaultDebugSink
		return
	}
	vm.hooks.debug = sink
}

// Print routes text through the print sink; std/io and any host package that
// wants to respect output capture should go through here
func (vm *Instance) Print(text string) {
	vm.hooks.print(text)
}

// Debug routes text plus an optional source tag and position through the
// debug sink
func (vm *Instance) Debug(text string, source string, pos Position) {
	vm.hooks.debug(text, source, pos)
}

// VarDef describes one variable or constant declaration about to happen in
// the surrounding engine
type VarDef struct {
	CompileTime bool   // true during parsing, false during evaluation
	Name        string
	IsConst     bool
	Nesting     int  // block nesting level of the declaration
	Shadows     bool // whether it would shadow an existing binding
}

// SetVarDefFilter replaces the declaration filter; nil removes it
func (vm *Instance) SetVarDefFilter(filter func(def VarDef) (bool, *Exception)) {
	vm.hooks.varDef = filter
}

// FilterVarDef is consulted by the parser/evaluator at every declaration. A
// false verdict becomes a compile time error during parsing and a runtime
// error otherwise; with no filter installed every declaration is allowed.
func (vm *Instance) FilterVarDef(def VarDef) *Exception {
	if vm.hooks.varDef == nil {
		return nil
	}

	allow, exc := vm.hooks.varDef(def)
	if exc != nil {
		return exc
	}
	if allow {
		return nil
	}

	if def.CompileTime {
		return &Exception{kind: KindCompileError, message: fmt.Sprintf("declaration of '%v' is not allowed here", def.Name)}
	}
	return CustomError("declaration of '%v' is not allowed here", def.Name)
}
