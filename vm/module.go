package vm

import "fmt"

// FnDecl is the declarative side of one function registration. Name, every
// alias and the operator symbol each become their own registry entry, all
// pointing at the same descriptor, so the classification is shared between
// them. Empty Params means any of the callable's arity.
type FnDecl struct {
	Name     string
	Aliases  []string
	Operator string
	Role     Role // zero value is RoleFunction
	Receiver ReceiverKind
	Params   []Tag
	Pure     bool
	Volatile bool
	RawError bool
}

// NamespaceBuilder assembles a declarative group of functions, constants and
// sub namespaces into a Namespace. Errors are collected and reported by
// Assemble; the first one fails the whole assembly.
type NamespaceBuilder struct {
	name   string
	consts []constDecl
	fns    []fnDef
	subs   []*NamespaceBuilder
	err    *Exception
}

type constDecl struct {
	name  string
	value Value
}

type fnDef struct {
	decl FnDecl
	d    *Descriptor
}

func NewNamespace(name string) *NamespaceBuilder {
	return &NamespaceBuilder{name: name}
}

// Const declares a constant; constants survive hierarchical assembly and are
// dropped by flattening
func (b *NamespaceBuilder) Const(name string, v Value) *NamespaceBuilder {
	b.consts = append(b.consts, constDecl{name: name, value: v})
	return b
}

// Sub opens a nested namespace builder
func (b *NamespaceBuilder) Sub(name string) *NamespaceBuilder {
	sub := NewNamespace(name)
	b.subs = append(b.subs, sub)
	return sub
}

func (b *NamespaceBuilder) fail(exc *Exception) {
	if b.err == nil {
		b.err = exc
	}
}

// DefFn declares one callable under b. A free function rather than a method
// because methods cannot carry their own type parameters.
func DefFn[T HostFn](b *NamespaceBuilder, decl FnDecl, fn T) *NamespaceBuilder {
	nargs := arityOf(fn)

	if decl.Name == "" && decl.Operator == "" {
		b.fail(CustomError("a function needs at least one name"))
		return b
	}

	params := decl.Params
	switch {
	case params == nil:
		params = make([]Tag, nargs) // all TagAny
	case len(params) != nargs:
		b.fail(TypeErrorF("'%v' takes %v argument(s) but declares %v parameter type(s)", decl.Name, nargs, len(params)))
		return b
	}

	role := decl.Role
	if role == RoleFunction && decl.Name == "" {
		role = RoleOperator
	}

	b.fns = append(b.fns, fnDef{decl: decl, d: &Descriptor{
		name:     primaryName(decl),
		role:     role,
		receiver: decl.Receiver,
		params:   params,
		pure:     decl.Pure,
		volatile: decl.Volatile,
		rawError: decl.RawError,
		fn:       fn,
		nargs:    nargs,
	}})
	return b
}

func primaryName(decl FnDecl) string {
	if decl.Name != "" {
		return decl.Name
	}
	return decl.Operator
}

// names every registry entry this declaration produces
func (decl FnDecl) names() []string {
	names := make([]string, 0, 2+len(decl.Aliases))
	if decl.Name != "" {
		names = append(names, decl.Name)
	}
	names = append(names, decl.Aliases...)
	if decl.Operator != "" {
		names = append(names, decl.Operator)
	}
	return names
}

// Assemble produces the hierarchical namespace: constants and sub namespaces
// preserved. Any conflict fails the whole assembly.
func (b *NamespaceBuilder) Assemble() (ns *Namespace, exc *Exception) {
	if b.err != nil {
		return nil, b.err
	}

	ns = newNamespace(b.name)

	for _, c := range b.consts {
		if exc := ns.defineConst(c.name, c.value); exc != nil {
			return nil, exc
		}
	}

	for _, def := range b.fns {
		for _, name := range def.decl.names() {
			if exc := ns.insert(KeyOf(name, def.d.params...), def.d); exc != nil {
				return nil, exc
			}
		}
	}

	for _, sub := range b.subs {
		child, exc := sub.Assemble()
		if exc != nil {
			return nil, exc
		}
		if exc := ns.mount(child); exc != nil {
			return nil, exc
		}
	}

	return ns, nil
}

// AssembleFlat produces the flattened namespace: sub namespaces recursively
// erased, every contained function promoted to the top level, constants
// dropped. Identical keys meeting at the top fail the whole assembly; the
// engine does not pick a winner.
func (b *NamespaceBuilder) AssembleFlat() (ns *Namespace, exc *Exception) {
	tree, exc := b.Assemble()
	if exc != nil {
		return nil, exc
	}
	return tree.Flatten()
}

func (b *NamespaceBuilder) String() string {
	return fmt.Sprintf("<namespace builder '%v'>", b.name)
}
