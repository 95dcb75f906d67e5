// Package vesper is the embedding surface of the runtime's interop core: it
// creates engine instances and optionally preloads the standard modules.
// Each instance owns its registry; independent instances never share mutable
// state, so separate engines can run concurrently.
package vesper

import (
	"github.com/hxkhan/vesper/std"
	"github.com/hxkhan/vesper/vm"
)

type Options struct {
	Stdlib bool       // preload the standard modules
	VM     vm.Options // passed through to the instance
}

var Defaults = Options{Stdlib: true}

// New creates an engine instance; with Stdlib set the standard modules are
// registered before it is handed out
func New(opts Options) (*vm.Instance, error) {
	ip := vm.New(opts.VM)
	if opts.Stdlib {
		if exc := std.Export(ip); exc != nil {
			return nil, exc
		}
	}
	return ip, nil
}
