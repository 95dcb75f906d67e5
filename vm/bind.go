package vm

import (
	"iter"
	"reflect"
)

// Elements is the native iteration capability a host type must expose before
// default iteration can be enabled for it: an ordered, finite sequence of its
// elements.
type Elements interface {
	Elements() iter.Seq[Value]
}

// TypeBinder builds the registry entries for one host type T: its friendly
// name, formatters, methods, property accessors, indexers and iteration.
// Nothing lands in the instance until Install; the first registration error
// aborts the whole bind and is returned there.
type TypeBinder[T any] struct {
	vm   *Instance
	info *typeInfo
	b    *NamespaceBuilder
	err  *Exception
}

// Bind starts binding the host type T under the given friendly name. All
// entries produced by the binder are globally visible once installed.
func Bind[T any](vm *Instance, name string) *TypeBinder[T] {
	tag := tagOfType(reflect.TypeFor[T]())
	return &TypeBinder[T]{
		vm:   vm,
		info: &typeInfo{name: name, tag: tag},
		b:    NewNamespace(name),
	}
}

// Box wraps a host value of a bound type; the zero Value and false come back
// for types never installed on this instance
func Box[T any](vm *Instance, t *T) (v Value, ok bool) {
	tag := tagOfType(reflect.TypeFor[T]())
	info, bound := vm.types[tag]
	if !bound {
		return Value{}, false
	}
	return boxObject(&object{meta: info, value: t}), true
}

// As unboxes a host value of type T
func As[T any](v Value) (t *T, ok bool) {
	obj, ok := v.asObject()
	if !ok {
		return nil, false
	}
	t, ok = obj.value.(*T)
	return t, ok
}

func (tb *TypeBinder[T]) fail(exc *Exception) {
	if tb.err == nil {
		tb.err = exc
	}
}

func (tb *TypeBinder[T]) self(v Value) (t *T, exc *Exception) {
	t, ok := As[T](v)
	if !ok {
		return nil, TypeErrorF("expected receiver of type '%v', got '%v'", tb.info.name, v.TypeOf())
	}
	return t, nil
}

// Print registers the formatter used when a value of T is printed
func (tb *TypeBinder[T]) Print(fn func(t *T) string) *TypeBinder[T] {
	tb.info.printFn = func(v Value) string {
		if t, ok := As[T](v); ok {
			return fn(t)
		}
		return "<" + tb.info.name + ">"
	}
	return tb
}

// Debug registers the formatter used when a value of T is debug printed
func (tb *TypeBinder[T]) Debug(fn func(t *T) string) *TypeBinder[T] {
	tb.info.debugFn = func(v Value) string {
		if t, ok := As[T](v); ok {
			return fn(t)
		}
		return "<" + tb.info.name + ">"
	}
	return tb
}

// Getter registers a named property read. Getters are classified pure: they
// may run on constant receivers.
func (tb *TypeBinder[T]) Getter(name string, fn func(t *T) Value) *TypeBinder[T] {
	DefFn(tb.b, FnDecl{
		Name:     getterPrefix + name,
		Role:     RoleGetter,
		Receiver: ReceiverByMutableRef,
		Params:   []Tag{tb.info.tag},
		Pure:     true,
	}, func(recv Value) (Value, *Exception) {
		t, exc := tb.self(recv)
		if exc != nil {
			return Value{}, exc
		}
		return fn(t), nil
	})
	return tb
}

// Setter registers a named property write; setters mutate their receiver and
// are therefore rejected on constant receivers before fn runs
func (tb *TypeBinder[T]) Setter(name string, fn func(t *T, v Value) *Exception) *TypeBinder[T] {
	DefFn(tb.b, FnDecl{
		Name:     setterPrefix + name,
		Role:     RoleSetter,
		Receiver: ReceiverByMutableRef,
		Params:   []Tag{tb.info.tag, TagAny},
	}, func(recv Value, v Value) (Value, *Exception) {
		t, exc := tb.self(recv)
		if exc != nil {
			return Value{}, exc
		}
		return Value{}, fn(t, v)
	})
	return tb
}

// GetSet registers a getter/setter pair for one property
func (tb *TypeBinder[T]) GetSet(name string, getter func(t *T) Value, setter func(t *T, v Value) *Exception) *TypeBinder[T] {
	return tb.Getter(name, getter).Setter(name, setter)
}

// IndexGetter registers recv[index] reads. Only the fallible shape exists:
// an out of range index must surface as a script level error, never as a
// host level abort, so there is deliberately no panicking shortcut.
func (tb *TypeBinder[T]) IndexGetter(fn func(t *T, index Value) (Value, *Exception)) *TypeBinder[T] {
	DefFn(tb.b, FnDecl{
		Name:     indexGetName,
		Role:     RoleIndexGet,
		Receiver: ReceiverByMutableRef,
		Params:   []Tag{tb.info.tag, TagAny},
		Pure:     true,
	}, func(recv Value, index Value) (Value, *Exception) {
		t, exc := tb.self(recv)
		if exc != nil {
			return Value{}, exc
		}
		return fn(t, index)
	})
	return tb
}

// IndexSetter registers recv[index] writes; fallible only, same policy as
// IndexGetter
func (tb *TypeBinder[T]) IndexSetter(fn func(t *T, index Value, v Value) *Exception) *TypeBinder[T] {
	DefFn(tb.b, FnDecl{
		Name:     indexSetName,
		Role:     RoleIndexSet,
		Receiver: ReceiverByMutableRef,
		Params:   []Tag{tb.info.tag, TagAny, TagAny},
	}, func(recv Value, index Value, v Value) (Value, *Exception) {
		t, exc := tb.self(recv)
		if exc != nil {
			return Value{}, exc
		}
		return Value{}, fn(t, index, v)
	})
	return tb
}

// Iterator registers an explicit iterator factory producing the elements of
// t in order
func (tb *TypeBinder[T]) Iterator(fn func(t *T) []Value) *TypeBinder[T] {
	tb.info.iterable = true
	DefFn(tb.b, FnDecl{
		Name:     iterName,
		Role:     RoleIteratorFactory,
		Receiver: ReceiverByMutableRef,
		Params:   []Tag{tb.info.tag},
		Pure:     true,
	}, func(recv Value) (Value, *Exception) {
		t, exc := tb.self(recv)
		if exc != nil {
			return Value{}, exc
		}
		return BoxArray(fn(t)), nil
	})
	return tb
}

// DefaultIteration derives the iterator factory from T's native Elements
// capability; a T without one is a binder construction error, reported by
// Install
func (tb *TypeBinder[T]) DefaultIteration() *TypeBinder[T] {
	if _, ok := any(new(T)).(Elements); !ok {
		tb.fail(TypeErrorF("type '%v' has no native element sequence to iterate", tb.info.name))
		return tb
	}

	return tb.Iterator(func(t *T) []Value {
		var elements []Value
		for v := range any(t).(Elements).Elements() {
			elements = append(elements, v)
		}
		return elements
	})
}

// Method declares a method of the bound type: the first parameter is the
// receiver, its tag is filled in by the binder. A free function because
// methods cannot carry their own type parameters.
func Method[T any, F HostFn](tb *TypeBinder[T], decl FnDecl, fn F) *TypeBinder[T] {
	nargs := arityOf(fn)
	if nargs == 0 {
		tb.fail(TypeErrorF("method '%v' of '%v' takes no receiver", decl.Name, tb.info.name))
		return tb
	}

	if decl.Params == nil {
		decl.Params = make([]Tag, nargs)
	}
	if len(decl.Params) > 0 {
		decl.Params[0] = tb.info.tag
	}
	if decl.Receiver == ReceiverNone {
		decl.Receiver = ReceiverByMutableRef
	}

	DefFn(tb.b, decl, fn)
	return tb
}

// Constructor declares a factory function registered under the type's
// friendly name
func Constructor[T any, F HostFn](tb *TypeBinder[T], fn F) *TypeBinder[T] {
	DefFn(tb.b, FnDecl{Name: tb.info.name, Role: RoleConstructor, Pure: true}, fn)
	return tb
}

// Install commits the type to the instance: the metadata into the type table
// and every entry into the global namespace. The first error aborts and
// nothing of the failed bind should be relied upon.
func (tb *TypeBinder[T]) Install() *Exception {
	if tb.err != nil {
		return tb.err
	}

	ns, exc := tb.b.AssembleFlat()
	if exc != nil {
		return exc
	}
	if exc := tb.vm.RegisterGlobal(ns); exc != nil {
		return exc
	}

	tb.vm.mu.Lock()
	tb.vm.types[tb.info.tag] = tb.info
	tb.vm.mu.Unlock()
	setHostTagName(tb.info.tag, tb.info.name)

	tb.vm.log.registeredf("bound host type '%v'", tb.info.name)
	return nil
}
