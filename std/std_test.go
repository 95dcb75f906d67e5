package std_test

import (
	"strings"
	"testing"

	"github.com/hxkhan/vesper"
	"github.com/hxkhan/vesper/vm"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsAreGlobal(t *testing.T) {
	ip, err := vesper.New(vesper.Defaults)
	require.NoError(t, err)

	v, exc := ip.Call("", "str", vm.BoxInt(42))
	require.Nil(t, exc)
	s, _ := v.AsString()
	require.Equal(t, "42", s)

	v, exc = ip.Call("", "typeof", vm.BoxFloat64(1))
	require.Nil(t, exc)
	s, _ = v.AsString()
	require.Equal(t, "float", s)

	v, exc = ip.Call("", "len", vm.BoxString("héllo"))
	require.Nil(t, exc)
	n, _ := v.AsInt()
	require.EqualValues(t, 6, n) // bytes, not runes

	_, exc = ip.Call("", "len", vm.BoxInt(5))
	require.NotNil(t, exc)
}

func TestStringsModule(t *testing.T) {
	ip, err := vesper.New(vesper.Defaults)
	require.NoError(t, err)

	v, exc := ip.Call("strings", "split", vm.BoxString("a,b,c"), vm.BoxString(","))
	require.Nil(t, exc)
	parts, ok := v.AsArray()
	require.True(t, ok)
	require.Len(t, parts, 3)

	v, exc = ip.Call("strings", "join", v, vm.BoxString("-"))
	require.Nil(t, exc)
	s, _ := v.AsString()
	require.Equal(t, "a-b-c", s)

	v, exc = ip.Call("strings", "upper", vm.BoxString("shout"))
	require.Nil(t, exc)
	s, _ = v.AsString()
	require.Equal(t, "SHOUT", s)
}

func TestTimeIsVolatile(t *testing.T) {
	ip, err := vesper.New(vesper.Defaults)
	require.NoError(t, err)

	// the clock must never be folded into the syntax tree
	ns, exists := ip.Namespace("time")
	require.True(t, exists)
	for key, d := range ns.Descriptors() {
		require.True(t, d.Volatile(), "%v must be volatile", key)
		require.False(t, d.MayFold(true), "%v must not fold", key)
	}

	v, exc := ip.Call("time", "now")
	require.Nil(t, exc)
	n, ok := v.AsInt()
	require.True(t, ok)
	require.Positive(t, n)
}

func TestIoGoesThroughSinks(t *testing.T) {
	var out strings.Builder
	ip, err := vesper.New(vesper.Options{
		Stdlib: true,
		VM:     vm.Options{PrintSink: func(text string) { out.WriteString(text) }},
	})
	require.NoError(t, err)

	_, exc := ip.Call("io", "println", vm.BoxString("captured"))
	require.Nil(t, exc)
	require.Equal(t, "captured\n", out.String())
}

func TestFreezeBuiltin(t *testing.T) {
	ip, err := vesper.New(vesper.Defaults)
	require.NoError(t, err)

	type box struct{ n int64 }
	binder := vm.Bind[box](ip, "box")
	vm.Method(binder, vm.FnDecl{Name: "set"}, func(recv, v vm.Value) (vm.Value, *vm.Exception) {
		b, _ := vm.As[box](recv)
		b.n, _ = v.AsInt()
		return vm.Value{}, nil
	})
	require.Nil(t, binder.Install())

	b, _ := vm.Box(ip, &box{})
	frozen, exc := ip.Call("", "freeze", b)
	require.Nil(t, exc)

	_, exc = ip.CallMethod(frozen, "set", vm.BoxInt(1))
	require.NotNil(t, exc)
	require.Equal(t, vm.KindConstantReceiver, exc.Kind())

	_, exc = ip.CallMethod(b, "set", vm.BoxInt(1))
	require.Nil(t, exc)
}
