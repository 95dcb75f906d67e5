package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMayFold(t *testing.T) {
	cases := []struct {
		volatile  bool
		argsConst bool
		want      bool
	}{
		{volatile: false, argsConst: true, want: true},
		{volatile: false, argsConst: false, want: false},
		{volatile: true, argsConst: true, want: false},
		{volatile: true, argsConst: false, want: false},
	}

	for _, c := range cases {
		d := &Descriptor{volatile: c.volatile}
		require.Equal(t, c.want, d.MayFold(c.argsConst), "volatile=%v argsConst=%v", c.volatile, c.argsConst)
	}
}

func TestVolatileNeverFolds(t *testing.T) {
	// may_fold == true implies volatility == false, over a whole namespace
	b := NewNamespace("m")
	DefFn(b, FnDecl{Name: "stable", Pure: true}, retNil)
	DefFn(b, FnDecl{Name: "clock", Volatile: true}, retNil)
	DefFn(b, FnDecl{Name: "rand", Volatile: true, Pure: true}, retNil)

	ns, exc := b.Assemble()
	require.Nil(t, exc)

	for key, d := range ns.Descriptors() {
		for _, argsConst := range []bool{true, false} {
			if d.MayFold(argsConst) {
				require.False(t, d.Volatile(), "%v folded while volatile", key)
				require.True(t, argsConst, "%v folded with non constant arguments", key)
			}
		}
	}
}

func TestPurityDoesNotAffectFolding(t *testing.T) {
	// purity is about receiver mutation, volatility about referential
	// transparency; only the latter gates folding
	pure := &Descriptor{pure: true}
	impure := &Descriptor{}
	require.True(t, pure.MayFold(true))
	require.True(t, impure.MayFold(true))
}
