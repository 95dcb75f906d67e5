package vm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func tagged(tag Tag) func(Value) (Value, *Exception) {
	return func(Value) (Value, *Exception) {
		return BoxString(tag.String()), nil
	}
}

func TestResolveExactBeatsWidened(t *testing.T) {
	b := NewNamespace("m")
	DefFn(b, FnDecl{Name: "f", Params: []Tag{TagInt}}, tagged(TagInt))
	DefFn(b, FnDecl{Name: "f", Params: []Tag{TagFloat}}, tagged(TagFloat))

	ns, exc := b.Assemble()
	require.Nil(t, exc)

	d, exc := ns.resolve("f", []Value{BoxInt(3)})
	require.Nil(t, exc)
	require.Equal(t, []Tag{TagInt}, d.Params())

	d, exc = ns.resolve("f", []Value{BoxFloat64(3)})
	require.Nil(t, exc)
	require.Equal(t, []Tag{TagFloat}, d.Params())
}

func TestResolveWidening(t *testing.T) {
	b := NewNamespace("m")
	DefFn(b, FnDecl{Name: "f", Params: []Tag{TagFloat}}, tagged(TagFloat))

	ns, exc := b.Assemble()
	require.Nil(t, exc)

	// an int argument reaches the float overload
	d, exc := ns.resolve("f", []Value{BoxInt(3)})
	require.Nil(t, exc)
	require.Equal(t, []Tag{TagFloat}, d.Params())

	// a string argument does not
	_, exc = ns.resolve("f", []Value{BoxString("x")})
	require.NotNil(t, exc)
	require.Equal(t, KindFunctionNotFound, exc.Kind())
}

func TestResolveAmbiguity(t *testing.T) {
	// f(float, int) and f(int, float) are equally good for (int, int):
	// one widening each; the engine refuses to pick
	b := NewNamespace("m")
	DefFn(b, FnDecl{Name: "f", Params: []Tag{TagFloat, TagInt}}, tagged(TagFloat))
	DefFn(b, FnDecl{Name: "f", Params: []Tag{TagInt, TagFloat}}, tagged(TagInt))

	ns, exc := b.Assemble()
	require.Nil(t, exc)

	_, exc = ns.resolve("f", []Value{BoxInt(1), BoxInt(2)})
	require.NotNil(t, exc)
	require.Equal(t, KindAmbiguousOverload, exc.Kind())

	// exact arguments still resolve fine
	_, exc = ns.resolve("f", []Value{BoxFloat64(1), BoxInt(2)})
	require.Nil(t, exc)
}

func TestResolveAliasIsNotAmbiguity(t *testing.T) {
	// one descriptor reachable through two keys of the same cost must not be
	// reported as an ambiguity with itself
	b := NewNamespace("m")
	DefFn(b, FnDecl{Name: "f", Aliases: []string{"g"}, Params: []Tag{TagFloat}}, tagged(TagFloat))

	ns, exc := b.Assemble()
	require.Nil(t, exc)

	_, exc = ns.resolve("f", []Value{BoxInt(1)})
	require.Nil(t, exc)
}

func TestResolveAnyCostsMoreThanWidening(t *testing.T) {
	b := NewNamespace("m")
	DefFn(b, FnDecl{Name: "f", Params: []Tag{TagAny}}, tagged(TagAny))
	DefFn(b, FnDecl{Name: "f", Params: []Tag{TagFloat}}, tagged(TagFloat))

	ns, exc := b.Assemble()
	require.Nil(t, exc)

	d, exc := ns.resolve("f", []Value{BoxInt(1)})
	require.Nil(t, exc)
	require.Equal(t, []Tag{TagFloat}, d.Params())

	d, exc = ns.resolve("f", []Value{BoxString("x")})
	require.Nil(t, exc)
	require.Equal(t, []Tag{TagAny}, d.Params())
}

// snapshot reduces a namespace to a comparable shape: every key mapped to the
// identity of its descriptor
func snapshot(ns *Namespace) map[string]*Descriptor {
	m := make(map[string]*Descriptor)
	for key, d := range ns.Descriptors() {
		m[key.String()] = d
	}
	return m
}

var sameDescriptor = cmp.Comparer(func(a, b *Descriptor) bool { return a == b })

func TestFlattenIdempotent(t *testing.T) {
	b := NewNamespace("outer")
	b.Const("c", BoxInt(1))
	DefFn(b, FnDecl{Name: "f", Params: []Tag{TagInt}}, retNil)
	inner := b.Sub("inner")
	DefFn(inner, FnDecl{Name: "g", Params: []Tag{TagInt}}, retNil)
	DefFn(inner.Sub("deeper"), FnDecl{Name: "h", Params: []Tag{TagInt}}, retNil)

	tree, exc := b.Assemble()
	require.Nil(t, exc)

	once, exc := tree.Flatten()
	require.Nil(t, exc)
	twice, exc := once.Flatten()
	require.Nil(t, exc)

	require.Equal(t, once.Name(), twice.Name())
	if diff := cmp.Diff(snapshot(once), snapshot(twice), sameDescriptor); diff != "" {
		t.Fatalf("flattening a flat namespace changed it:\n%v", diff)
	}

	// keys are never rewritten by flattening
	want := []string{"f(int)", "g(int)", "h(int)"}
	for _, name := range want {
		_, exists := snapshot(once)[name]
		require.True(t, exists, "missing %v", name)
	}
}

func TestMergeRejectsDuplicates(t *testing.T) {
	build := func() *Namespace {
		b := NewNamespace("m")
		DefFn(b, FnDecl{Name: "f", Params: []Tag{TagInt}}, retNil)
		ns, exc := b.Assemble()
		require.Nil(t, exc)
		return ns
	}

	root := newNamespace("global")
	require.Nil(t, root.merge(build()))

	exc := root.merge(build())
	require.NotNil(t, exc)
	require.Equal(t, KindDuplicateRegistration, exc.Kind())

	// the failed merge must not have half landed
	require.Len(t, snapshot(root), 1)
}

func TestMergeKeepsDistinctOverloads(t *testing.T) {
	root := newNamespace("global")

	a := NewNamespace("a")
	DefFn(a, FnDecl{Name: "f", Params: []Tag{TagInt}}, retNil)
	nsA, exc := a.Assemble()
	require.Nil(t, exc)

	b := NewNamespace("b")
	DefFn(b, FnDecl{Name: "f", Params: []Tag{TagString}}, retNil)
	nsB, exc := b.Assemble()
	require.Nil(t, exc)

	require.Nil(t, root.merge(nsA))
	require.Nil(t, root.merge(nsB))
	require.Len(t, snapshot(root), 2)
}
