package vm

import (
	"iter"
	"slices"
)

// registry-internal names for the non-function roles; the public surface is
// the binder on one side and the typed entry points below on the other
const (
	getterPrefix = "get$"
	setterPrefix = "set$"
	indexGetName = "idx$get"
	indexSetName = "idx$set"
	iterName     = "iter$"
)

// Call resolves and invokes a free function call. A non empty ns restricts
// resolution to that namespace; otherwise the global namespace is consulted.
func (vm *Instance) Call(ns string, name string, args ...Value) (result Value, exc *Exception) {
	return vm.CallAt(Position{}, ns, name, args...)
}

// CallAt is Call with the call site position attached to anything that goes
// wrong past resolution
func (vm *Instance) CallAt(pos Position, ns string, name string, args ...Value) (result Value, exc *Exception) {
	scope := vm.global
	if ns != "" {
		found, exists := vm.Namespace(ns)
		if !exists {
			return Value{}, namespaceNotFound(ns)
		}
		scope = found
	}

	d, exc := scope.resolve(name, args)
	if exc != nil {
		return Value{}, exc
	}
	return vm.dispatch(pos, d, args)
}

// CallMethod is the method call sugar: recv.name(args) resolved as
// name(recv, args...) against the global namespace
func (vm *Instance) CallMethod(recv Value, name string, args ...Value) (result Value, exc *Exception) {
	full := make([]Value, 0, len(args)+1)
	full = append(full, recv)
	full = append(full, args...)

	d, exc := vm.global.resolve(name, full)
	if exc != nil {
		return Value{}, exc
	}
	return vm.dispatch(Position{}, d, full)
}

// dispatch runs the receiver guard, widens the arguments and invokes the
// callable with host panics contained
func (vm *Instance) dispatch(pos Position, d *Descriptor, args []Value) (result Value, exc *Exception) {
	// a non pure call may not run on a constant receiver, no matter the type;
	// this check happens before any host code does
	if d.receiver == ReceiverByMutableRef && !d.pure && len(args) > 0 && args[0].Frozen() {
		return Value{}, constantReceiver(d.name).At(pos)
	}

	if needsWidening(d.params, args) {
		args = slices.Clone(args)
		widen(d.params, args)
	}

	vm.log.dispatchf("dispatching '%v' with %v argument(s)", d.name, len(args))

	defer func() {
		// a host failure must never make it past the dispatcher
		if r := recover(); r != nil {
			result, exc = Value{}, hostCallFailure(d.name, r).At(pos)
		}
	}()

	result, exc = d.invoke(args)
	if exc != nil {
		if d.rawError {
			// already the engine's fallible shape; pass through unchanged
			return Value{}, exc
		}
		return Value{}, exc.At(pos)
	}
	return result, nil
}

func needsWidening(params []Tag, args []Value) bool {
	for i, want := range params {
		if want == TagFloat {
			if _, ok := args[i].AsInt(); ok {
				return true
			}
		}
	}
	return false
}

// GetProperty reads a registered property off a receiver
func (vm *Instance) GetProperty(recv Value, name string) (result Value, exc *Exception) {
	d, exc := vm.global.resolve(getterPrefix+name, []Value{recv})
	if exc != nil {
		return Value{}, TypeErrorF("type '%v' has no readable property '%v'", recv.TypeOf(), name)
	}
	return vm.dispatch(Position{}, d, []Value{recv})
}

// SetProperty writes a registered property of a receiver
func (vm *Instance) SetProperty(recv Value, name string, v Value) (exc *Exception) {
	d, exc := vm.global.resolve(setterPrefix+name, []Value{recv, v})
	if exc != nil {
		return TypeErrorF("type '%v' has no writable property '%v'", recv.TypeOf(), name)
	}
	_, exc = vm.dispatch(Position{}, d, []Value{recv, v})
	return exc
}

// GetIndex reads recv[index] through the type's registered index getter
func (vm *Instance) GetIndex(recv Value, index Value) (result Value, exc *Exception) {
	d, exc := vm.global.resolve(indexGetName, []Value{recv, index})
	if exc != nil {
		return Value{}, TypeErrorF("type '%v' is not indexable by '%v'", recv.TypeOf(), index.TypeOf())
	}
	return vm.dispatch(Position{}, d, []Value{recv, index})
}

// SetIndex writes recv[index] through the type's registered index setter
func (vm *Instance) SetIndex(recv Value, index Value, v Value) (exc *Exception) {
	d, exc := vm.global.resolve(indexSetName, []Value{recv, index, v})
	if exc != nil {
		return TypeErrorF("type '%v' is not index assignable by '%v'", recv.TypeOf(), index.TypeOf())
	}
	_, exc = vm.dispatch(Position{}, d, []Value{recv, index, v})
	return exc
}

// Iterate produces the element sequence of an iterable receiver, in the host
// type's native order. Arrays iterate natively; bound types go through their
// registered iterator factory.
func (vm *Instance) Iterate(recv Value) (seq iter.Seq[Value], exc *Exception) {
	if array, ok := recv.AsArray(); ok {
		return slices.Values(array), nil
	}

	d, exc := vm.global.resolve(iterName, []Value{recv})
	if exc != nil {
		return nil, TypeErrorF("type '%v' is not iterable", recv.TypeOf())
	}

	elements, exc := vm.dispatch(Position{}, d, []Value{recv})
	if exc != nil {
		return nil, exc
	}

	array, ok := elements.AsArray()
	if !ok {
		return nil, TypeErrorF("iterator factory of '%v' produced '%v', not a sequence", recv.TypeOf(), elements.TypeOf())
	}
	return slices.Values(array), nil
}
