package vm

import (
	"strings"
	"sync"
)

// Instance is one engine's interop core: the assembled function registry, the
// bound type table and the output hooks. Registration happens during a setup
// phase; once a script evaluation begins the registry is effectively
// immutable and an Instance can be shared across read-only concurrent
// evaluations. New top level modules may still be registered additively
// between runs; that path is guarded by mu.
type Instance struct {
	global *Namespace
	types  map[Tag]*typeInfo
	mu     sync.Mutex // guards additive registration between runs
	hooks  hooks
	log    logger
}

// typeInfo is the engine side metadata of one bound host type; owned by the
// instance's type table, never duplicated per value
type typeInfo struct {
	name     string
	tag      Tag
	printFn  func(Value) string
	debugFn  func(Value) string
	iterable bool
}

func (ti *typeInfo) print(v Value) string {
	if ti.printFn != nil {
		return ti.printFn(v)
	}
	return "<" + ti.name + ">"
}

func (ti *typeInfo) debug(v Value) string {
	if ti.debugFn != nil {
		return ti.debugFn(v)
	}
	return ti.print(v)
}

type Options struct {
	PrintSink    func(text string)                       // replaces the default stdout print sink
	DebugSink    func(text string, source string, pos Position) // replaces the default stdout debug sink
	VarDefFilter func(def VarDef) (bool, *Exception)     // consulted at every variable declaration

	LogRegistration bool // log registrations (debugging aid)
	LogDispatch     bool // log call resolution (noisy, affects performance)
}

func New(opts Options) (vm *Instance) {
	vm = &Instance{
		global: newNamespace("global"),
		types:  make(map[Tag]*typeInfo),
		log:    newLogger(opts.LogRegistration, opts.LogDispatch),
	}

	vm.hooks.print = defaultPrintSink
	vm.hooks.debug = defaultDebugSink
	if opts.PrintSink != nil {
		vm.hooks.print = opts.PrintSink
	}
	if opts.DebugSink != nil {
		vm.hooks.debug = opts.DebugSink
	}
	vm.hooks.varDef = opts.VarDefFilter

	return vm
}

// Global exposes the root namespace
func (vm *Instance) Global() *Namespace {
	return vm.global
}

// RegisterGlobal merges every top level entry of ns into the global
// namespace. An entry whose key already exists globally is a
// DuplicateRegistration error and nothing is merged.
func (vm *Instance) RegisterGlobal(ns *Namespace) *Exception {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if exc := vm.global.merge(ns); exc != nil {
		return exc
	}
	vm.log.registeredf("merged namespace '%v' into global", ns.name)
	return nil
}

// RegisterUnder mounts ns as a static namespace at path; dotted segments
// create intermediate namespaces as needed. The mount point itself must be
// free, but the same subtree may be registered again under a different name.
func (vm *Instance) RegisterUnder(path string, ns *Namespace) *Exception {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	parent := vm.global
	if path != "" {
		for _, segment := range strings.Split(path, ".") {
			child, exists := parent.Child(segment)
			if !exists {
				child = newNamespace(segment)
				if exc := parent.mount(child); exc != nil {
					return exc
				}
			}
			parent = child
		}
	}

	if exc := parent.mount(ns); exc != nil {
		return exc
	}
	vm.log.registeredf("mounted namespace '%v' under '%v'", ns.name, path)
	return nil
}

// Namespace walks a dotted path from the root; the empty path is the root
func (vm *Instance) Namespace(path string) (ns *Namespace, exists bool) {
	ns = vm.global
	if path == "" {
		return ns, true
	}
	for _, segment := range strings.Split(path, ".") {
		if ns, exists = ns.Child(segment); !exists {
			return nil, false
		}
	}
	return ns, true
}

// TypeName reports the friendly name of a bound host type's tag
func (vm *Instance) TypeName(tag Tag) (name string, bound bool) {
	info, bound := vm.types[tag]
	if !bound {
		return "", false
	}
	return info.name, true
}
