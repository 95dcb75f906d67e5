package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func retNil(Value) (Value, *Exception) {
	return Value{}, nil
}

func TestAssembleHierarchical(t *testing.T) {
	b := NewNamespace("outer")
	b.Const("answer", BoxInt(42))
	DefFn(b, FnDecl{Name: "f", Params: []Tag{TagInt}}, retNil)

	inner := b.Sub("inner")
	DefFn(inner, FnDecl{Name: "g", Params: []Tag{TagInt}}, retNil)

	ns, exc := b.Assemble()
	require.Nil(t, exc)

	v, exists := ns.Constant("answer")
	require.True(t, exists)
	n, _ := v.AsInt()
	require.EqualValues(t, 42, n)

	child, exists := ns.Child("inner")
	require.True(t, exists)
	_, exc = child.resolve("g", []Value{BoxInt(1)})
	require.Nil(t, exc)

	// g is not visible at the outer level
	_, exc = ns.resolve("g", []Value{BoxInt(1)})
	require.NotNil(t, exc)
	require.Equal(t, KindFunctionNotFound, exc.Kind())
}

func TestAssembleFlatPromotes(t *testing.T) {
	b := NewNamespace("outer")
	b.Const("dropped", BoxInt(1))
	DefFn(b, FnDecl{Name: "f", Params: []Tag{TagInt}}, retNil)
	DefFn(b.Sub("inner"), FnDecl{Name: "g", Params: []Tag{TagInt}}, retNil)

	flat, exc := b.AssembleFlat()
	require.Nil(t, exc)

	// functions promoted, constants and sub namespaces gone
	_, exc = flat.resolve("g", []Value{BoxInt(1)})
	require.Nil(t, exc)
	_, exists := flat.Constant("dropped")
	require.False(t, exists)
	_, exists = flat.Child("inner")
	require.False(t, exists)
}

func TestAssembleFlatConflict(t *testing.T) {
	b := NewNamespace("outer")
	DefFn(b, FnDecl{Name: "f", Params: []Tag{TagInt}}, retNil)
	DefFn(b.Sub("inner"), FnDecl{Name: "f", Params: []Tag{TagInt}}, retNil)

	// hierarchical assembly is fine, flattening is not; there is no winner
	_, exc := b.Assemble()
	require.Nil(t, exc)
	_, exc = b.AssembleFlat()
	require.NotNil(t, exc)
	require.Equal(t, KindFlattenConflict, exc.Kind())
}

func TestDuplicateRegistration(t *testing.T) {
	// same name, same parameter sequence, regardless of declaration order
	for range 2 {
		b := NewNamespace("m")
		DefFn(b, FnDecl{Name: "f", Params: []Tag{TagInt}}, retNil)
		DefFn(b, FnDecl{Name: "f", Params: []Tag{TagInt}}, retNil)

		_, exc := b.Assemble()
		require.NotNil(t, exc)
		require.Equal(t, KindDuplicateRegistration, exc.Kind())
	}

	// different parameter sequences are overloads, not duplicates
	b := NewNamespace("m")
	DefFn(b, FnDecl{Name: "f", Params: []Tag{TagInt}}, retNil)
	DefFn(b, FnDecl{Name: "f", Params: []Tag{TagFloat}}, retNil)
	_, exc := b.Assemble()
	require.Nil(t, exc)
}

func TestAliasesShareDescriptor(t *testing.T) {
	b := NewNamespace("m")
	DefFn(b, FnDecl{Name: "push", Aliases: []string{"append"}, Operator: "+=", Volatile: true}, retNil)

	ns, exc := b.Assemble()
	require.Nil(t, exc)

	args := []Value{BoxInt(1)}
	byName, exc := ns.resolve("push", args)
	require.Nil(t, exc)
	byAlias, exc := ns.resolve("append", args)
	require.Nil(t, exc)
	byOp, exc := ns.resolve("+=", args)
	require.Nil(t, exc)

	// views of one descriptor, not copies; classification is shared
	require.Same(t, byName, byAlias)
	require.Same(t, byName, byOp)
	require.True(t, byAlias.Volatile())
}

func TestDeclArityMismatch(t *testing.T) {
	b := NewNamespace("m")
	DefFn(b, FnDecl{Name: "f", Params: []Tag{TagInt, TagInt}}, retNil) // arity 1 callable

	_, exc := b.Assemble()
	require.NotNil(t, exc)
}

func TestDeclNeedsName(t *testing.T) {
	b := NewNamespace("m")
	DefFn(b, FnDecl{}, retNil)

	_, exc := b.Assemble()
	require.NotNil(t, exc)
}

func TestOperatorOnlyDecl(t *testing.T) {
	b := NewNamespace("m")
	DefFn(b, FnDecl{Operator: "~"}, retNil)

	ns, exc := b.Assemble()
	require.Nil(t, exc)

	d, exc := ns.resolve("~", []Value{BoxInt(1)})
	require.Nil(t, exc)
	require.Equal(t, RoleOperator, d.Role())
}
