// Package io is the "io" module. Output goes through the instance's sinks so
// embedders that install their own capture everything.
package io

import "github.com/hxkhan/vesper/vm"

func Export(ip *vm.Instance) *vm.Exception {
	b := vm.NewNamespace("io")

	vm.DefFn(b, vm.FnDecl{Name: "print", Volatile: true}, func(v vm.Value) (vm.Value, *vm.Exception) {
		ip.Print(v.String())
		return vm.Value{}, nil
	})

	vm.DefFn(b, vm.FnDecl{Name: "println", Volatile: true}, func(v vm.Value) (vm.Value, *vm.Exception) {
		ip.Print(v.String() + "\n")
		return vm.Value{}, nil
	})

	vm.DefFn(b, vm.FnDecl{Name: "debug", Volatile: true}, func(v vm.Value) (vm.Value, *vm.Exception) {
		ip.Debug(v.Debug(), "", vm.Position{})
		return vm.Value{}, nil
	})

	ns, exc := b.Assemble()
	if exc != nil {
		return exc
	}
	return ip.RegisterUnder("", ns)
}
