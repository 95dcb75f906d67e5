package main

import (
	"fmt"
	"strconv"

	"github.com/hxkhan/vesper"
	"github.com/hxkhan/vesper/vm"
)

// Vec3 is the host type we hand over to the scripting world
type Vec3 struct {
	X, Y, Z float64
}

func main() {
	ip, err := vesper.New(vesper.Defaults)
	if err != nil {
		panic(err)
	}

	// expose Vec3 with a constructor, paired accessors and an indexer
	binder := vm.Bind[Vec3](ip, "vec3")
	binder.Print(func(v *Vec3) string {
		return fmt.Sprintf("vec3(%v, %v, %v)", v.X, v.Y, v.Z)
	})
	binder.GetSet("x",
		func(v *Vec3) vm.Value { return vm.BoxFloat64(v.X) },
		func(v *Vec3, val vm.Value) *vm.Exception {
			f, ok := val.AsFloat64()
			if !ok {
				return vm.ErrTypes
			}
			v.X = f
			return nil
		})
	binder.IndexGetter(func(v *Vec3, index vm.Value) (vm.Value, *vm.Exception) {
		i, ok := index.AsInt()
		if !ok {
			return vm.Value{}, vm.ErrTypes
		}
		switch i {
		case 0:
			return vm.BoxFloat64(v.X), nil
		case 1:
			return vm.BoxFloat64(v.Y), nil
		case 2:
			return vm.BoxFloat64(v.Z), nil
		}
		return vm.Value{}, vm.CustomError("index %v out of range", i)
	})
	vm.Constructor(binder, func(x, y, z vm.Value) (vm.Value, *vm.Exception) {
		fx, okx := x.AsFloat64()
		fy, oky := y.AsFloat64()
		fz, okz := z.AsFloat64()
		if !okx || !oky || !okz {
			return vm.Value{}, vm.ErrTypes
		}
		v, _ := vm.Box(ip, &Vec3{X: fx, Y: fy, Z: fz})
		return v, nil
	})

	if exc := binder.Install(); exc != nil {
		panic(exc)
	}

	// what the evaluator would do at a call site
	v, exc := ip.Call("", "vec3", vm.BoxFloat64(1), vm.BoxFloat64(2), vm.BoxFloat64(3))
	if exc != nil {
		panic(exc)
	}

	x, exc := ip.GetProperty(v, "x")
	if exc != nil {
		panic(exc)
	}
	fmt.Println("v.x =", x)

	if exc = ip.SetProperty(v, "x", vm.BoxFloat64(5)); exc != nil {
		panic(exc)
	}
	fmt.Println("after v.x = 5:", v)

	// the constant folder asks before evaluating math.abs(-4) eagerly
	mathNS, _ := ip.Namespace("math")
	for key, d := range mathNS.Descriptors() {
		fmt.Println(key, "foldable:", d.MayFold(true), "pure:", strconv.FormatBool(d.Pure()))
	}
}
