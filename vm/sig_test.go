package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyIdentity(t *testing.T) {
	a := KeyOf("add", TagInt, TagInt)
	b := KeyOf("add", TagInt, TagInt)
	require.Equal(t, a, b)

	// name, arity and every positional tag all participate
	require.NotEqual(t, a, KeyOf("sub", TagInt, TagInt))
	require.NotEqual(t, a, KeyOf("add", TagInt))
	require.NotEqual(t, a, KeyOf("add", TagInt, TagFloat))
	require.NotEqual(t, a, KeyOf("add", TagFloat, TagInt))
}

func TestKeyRoundTrip(t *testing.T) {
	key := KeyOf("f", TagString, TagAny, TagFloat)
	require.Equal(t, "f", key.Name())
	require.Equal(t, 3, key.Arity())
	require.Equal(t, []Tag{TagString, TagAny, TagFloat}, key.Params())
	require.Equal(t, "f(string, any, float)", key.String())
}

func TestKeyZeroArity(t *testing.T) {
	key := KeyOf("now")
	require.Equal(t, 0, key.Arity())
	require.Empty(t, key.Params())
	require.Equal(t, "now()", key.String())
}

func TestKeyHostTags(t *testing.T) {
	// host tags are wider than a byte eventually; the packed form must keep
	// high bits
	big := firstHostTag + 3000
	key := KeyOf("f", big)
	require.Equal(t, []Tag{big}, key.Params())
}

func TestMatchCost(t *testing.T) {
	cases := []struct {
		want, have Tag
		cost       int
	}{
		{TagInt, TagInt, costExact},
		{TagFloat, TagFloat, costExact},
		{TagFloat, TagInt, costWidening},
		{TagInt, TagFloat, costNone}, // no narrowing
		{TagAny, TagString, costAny},
		{TagString, TagInt, costNone},
	}
	for _, c := range cases {
		require.Equal(t, c.cost, matchCost(c.want, c.have), "want=%v have=%v", c.want, c.have)
	}
}
