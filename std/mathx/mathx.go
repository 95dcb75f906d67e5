// Package mathx is the "math" module: a hierarchical namespace with typed
// overloads, constants and a nested trig namespace.
package mathx

import (
	"math"

	"github.com/hxkhan/vesper/vm"
)

func Export(ip *vm.Instance) *vm.Exception {
	b := vm.NewNamespace("math")
	b.Const("pi", vm.BoxFloat64(math.Pi))
	b.Const("e", vm.BoxFloat64(math.E))

	// abs keeps ints as ints; the float overload also catches widened calls
	vm.DefFn(b, vm.FnDecl{Name: "abs", Params: []vm.Tag{vm.TagInt}, Pure: true}, absInt)
	vm.DefFn(b, vm.FnDecl{Name: "abs", Params: []vm.Tag{vm.TagFloat}, Pure: true}, absFloat)

	vm.DefFn(b, vm.FnDecl{Name: "sqrt", Params: []vm.Tag{vm.TagFloat}, Pure: true}, sqrt)
	vm.DefFn(b, vm.FnDecl{Name: "floor", Params: []vm.Tag{vm.TagFloat}, Pure: true}, floor)
	vm.DefFn(b, vm.FnDecl{Name: "max", Params: []vm.Tag{vm.TagFloat, vm.TagFloat}, Pure: true, Aliases: []string{"largest"}}, maxOf)

	trig := b.Sub("trig")
	vm.DefFn(trig, vm.FnDecl{Name: "sin", Params: []vm.Tag{vm.TagFloat}, Pure: true}, sin)
	vm.DefFn(trig, vm.FnDecl{Name: "cos", Params: []vm.Tag{vm.TagFloat}, Pure: true}, cos)

	ns, exc := b.Assemble()
	if exc != nil {
		return exc
	}
	return ip.RegisterUnder("", ns)
}

func absInt(a vm.Value) (vm.Value, *vm.Exception) {
	n, ok := a.AsInt()
	if !ok {
		return vm.Value{}, vm.ErrTypes
	}
	if n < 0 {
		return vm.BoxInt(-n), nil
	}
	return vm.BoxInt(n), nil
}

func absFloat(a vm.Value) (vm.Value, *vm.Exception) {
	f, ok := a.AsFloat64()
	if !ok {
		return vm.Value{}, vm.ErrTypes
	}
	return vm.BoxFloat64(math.Abs(f)), nil
}

func sqrt(a vm.Value) (vm.Value, *vm.Exception) {
	f, ok := a.AsFloat64()
	if !ok {
		return vm.Value{}, vm.ErrTypes
	}
	if f < 0 {
		return vm.Value{}, vm.CustomError("sqrt of negative number %v", f)
	}
	return vm.BoxFloat64(math.Sqrt(f)), nil
}

func floor(a vm.Value) (vm.Value, *vm.Exception) {
	f, ok := a.AsFloat64()
	if !ok {
		return vm.Value{}, vm.ErrTypes
	}
	return vm.BoxInt(int64(math.Floor(f))), nil
}

func maxOf(a, b vm.Value) (vm.Value, *vm.Exception) {
	x, ok := a.AsFloat64()
	if !ok {
		return vm.Value{}, vm.ErrTypes
	}
	y, ok := b.AsFloat64()
	if !ok {
		return vm.Value{}, vm.ErrTypes
	}
	return vm.BoxFloat64(math.Max(x, y)), nil
}

func sin(a vm.Value) (vm.Value, *vm.Exception) {
	f, ok := a.AsFloat64()
	if !ok {
		return vm.Value{}, vm.ErrTypes
	}
	return vm.BoxFloat64(math.Sin(f)), nil
}

func cos(a vm.Value) (vm.Value, *vm.Exception) {
	f, ok := a.AsFloat64()
	if !ok {
		return vm.Value{}, vm.ErrTypes
	}
	return vm.BoxFloat64(math.Cos(f)), nil
}
