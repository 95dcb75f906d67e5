// Package time is the "time" module. Everything that reads the clock is
// declared volatile so the constant folder leaves it alone.
package time

import (
	"time"

	"github.com/hxkhan/vesper/vm"
)

func Export(ip *vm.Instance) *vm.Exception {
	b := vm.NewNamespace("time")

	vm.DefFn(b, vm.FnDecl{Name: "now", Volatile: true, Pure: true}, now)
	vm.DefFn(b, vm.FnDecl{Name: "unix", Volatile: true, Pure: true}, unix)
	vm.DefFn(b, vm.FnDecl{Name: "sleep", Params: []vm.Tag{vm.TagInt}, Volatile: true}, sleep)

	ns, exc := b.Assemble()
	if exc != nil {
		return exc
	}
	return ip.RegisterUnder("", ns)
}

// milliseconds since the unix epoch
func now() (vm.Value, *vm.Exception) {
	return vm.BoxInt(time.Now().UnixMilli()), nil
}

func unix() (vm.Value, *vm.Exception) {
	return vm.BoxInt(time.Now().Unix()), nil
}

// sleep blocks the calling script thread; host calls run to completion
func sleep(duration vm.Value) (vm.Value, *vm.Exception) {
	ms, ok := duration.AsInt()
	if !ok {
		return vm.Value{}, vm.ErrTypes
	}
	time.Sleep(time.Millisecond * time.Duration(ms))
	return vm.Value{}, nil
}
