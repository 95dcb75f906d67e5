// Package std wires the standard modules into an instance.
package std

import (
	"github.com/hxkhan/vesper/std/builtin"
	"github.com/hxkhan/vesper/std/io"
	"github.com/hxkhan/vesper/std/mathx"
	"github.com/hxkhan/vesper/std/strings"
	"github.com/hxkhan/vesper/std/time"
	"github.com/hxkhan/vesper/vm"
)

// Export registers the whole standard library: the builtin set flattened into
// the global namespace, the rest as static modules
func Export(ip *vm.Instance) *vm.Exception {
	for _, export := range []func(*vm.Instance) *vm.Exception{
		builtin.Export,
		mathx.Export,
		strings.Export,
		time.Export,
		io.Export,
	} {
		if exc := export(ip); exc != nil {
			return exc
		}
	}
	return nil
}
