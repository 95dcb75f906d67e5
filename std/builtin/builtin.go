// Package builtin holds the functions every script sees without importing
// anything; the whole set is flattened into the global namespace.
package builtin

import "github.com/hxkhan/vesper/vm"

func Export(ip *vm.Instance) *vm.Exception {
	b := vm.NewNamespace("builtin")

	vm.DefFn(b, vm.FnDecl{Name: "str", Pure: true}, str)
	vm.DefFn(b, vm.FnDecl{Name: "typeof", Pure: true}, typeOf)
	vm.DefFn(b, vm.FnDecl{Name: "len", Pure: true}, length)
	vm.DefFn(b, vm.FnDecl{Name: "freeze", Pure: true}, freeze)

	ns, exc := b.AssembleFlat()
	if exc != nil {
		return exc
	}
	return ip.RegisterGlobal(ns)
}

func str(a vm.Value) (vm.Value, *vm.Exception) {
	return vm.BoxString(a.String()), nil
}

func typeOf(a vm.Value) (vm.Value, *vm.Exception) {
	return vm.BoxString(a.TypeOf()), nil
}

func length(a vm.Value) (vm.Value, *vm.Exception) {
	if str, ok := a.AsString(); ok {
		return vm.BoxInt(int64(len(str))), nil
	}
	if array, ok := a.AsArray(); ok {
		return vm.BoxInt(int64(len(array))), nil
	}
	return vm.Value{}, vm.TypeErrorF("'%v' has no length", a.TypeOf())
}

func freeze(a vm.Value) (vm.Value, *vm.Exception) {
	return a.Freeze(), nil
}
