// Package strings is the "strings" module.
package strings

import (
	"strings"

	"github.com/hxkhan/vesper/vm"
)

func Export(ip *vm.Instance) *vm.Exception {
	b := vm.NewNamespace("strings")

	vm.DefFn(b, vm.FnDecl{Name: "upper", Params: []vm.Tag{vm.TagString}, Pure: true}, upper)
	vm.DefFn(b, vm.FnDecl{Name: "lower", Params: []vm.Tag{vm.TagString}, Pure: true}, lower)
	vm.DefFn(b, vm.FnDecl{Name: "trim", Params: []vm.Tag{vm.TagString}, Pure: true}, trim)
	vm.DefFn(b, vm.FnDecl{Name: "contains", Params: []vm.Tag{vm.TagString, vm.TagString}, Pure: true}, contains)
	vm.DefFn(b, vm.FnDecl{Name: "split", Params: []vm.Tag{vm.TagString, vm.TagString}, Pure: true}, split)
	vm.DefFn(b, vm.FnDecl{Name: "join", Params: []vm.Tag{vm.TagArray, vm.TagString}, Pure: true}, join)

	ns, exc := b.Assemble()
	if exc != nil {
		return exc
	}
	return ip.RegisterUnder("", ns)
}

func upper(v vm.Value) (vm.Value, *vm.Exception) {
	str, ok := v.AsString()
	if !ok {
		return vm.Value{}, vm.ErrTypes
	}
	return vm.BoxString(strings.ToUpper(str)), nil
}

func lower(v vm.Value) (vm.Value, *vm.Exception) {
	str, ok := v.AsString()
	if !ok {
		return vm.Value{}, vm.ErrTypes
	}
	return vm.BoxString(strings.ToLower(str)), nil
}

func trim(v vm.Value) (vm.Value, *vm.Exception) {
	str, ok := v.AsString()
	if !ok {
		return vm.Value{}, vm.ErrTypes
	}
	return vm.BoxString(strings.TrimSpace(str)), nil
}

func contains(v, sub vm.Value) (vm.Value, *vm.Exception) {
	if str, ok := v.AsString(); ok {
		if sub, ok := sub.AsString(); ok {
			return vm.BoxBool(strings.Contains(str, sub)), nil
		}
	}
	return vm.Value{}, vm.ErrTypes
}

func split(v, sep vm.Value) (vm.Value, *vm.Exception) {
	if str, ok := v.AsString(); ok {
		if sep, ok := sep.AsString(); ok {

			parts := strings.Split(str, sep)
			result := make([]vm.Value, len(parts))
			for i, part := range parts {
				result[i] = vm.BoxString(part)
			}
			return vm.BoxArray(result), nil
		}
	}
	return vm.Value{}, vm.ErrTypes
}

func join(parts, sep vm.Value) (vm.Value, *vm.Exception) {
	if parts, ok := parts.AsArray(); ok {
		if sep, ok := sep.AsString(); ok {

			strs := make([]string, len(parts))
			for i, part := range parts {
				str, ok := part.AsString()
				if !ok {
					return vm.Value{}, vm.ErrTypes
				}
				strs[i] = str
			}

			return vm.BoxString(strings.Join(strs, sep)), nil
		}
	}
	return vm.Value{}, vm.ErrTypes
}
