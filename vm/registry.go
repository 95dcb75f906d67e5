package vm

import (
	"iter"
	"slices"

	"github.com/hxkhan/vesper/ds"
	"github.com/hxkhan/vesper/vm/fields"
)

// Namespace is one node of the function registry: a named scope mapping local
// names to overload sets, constants, nested namespaces or bound type
// metadata. It holds no references to live script state.
type Namespace struct {
	name    string
	entries map[fields.ID]*symbol
}

// a symbol is exactly one of the three entry kinds; bound type metadata
// lives in the instance's type table, not in the tree
type symbol struct {
	overloads map[Key]*Descriptor
	constant  *Value
	child     *Namespace
}

func (sym *symbol) isFuncs() bool {
	return sym.overloads != nil
}

func newNamespace(name string) *Namespace {
	return &Namespace{name: name, entries: make(map[fields.ID]*symbol)}
}

func (ns *Namespace) Name() string {
	return ns.name
}

// insert adds one key -> descriptor entry; an identical key already present
// anywhere in this namespace is a registration error, never a replacement
func (ns *Namespace) insert(key Key, d *Descriptor) *Exception {
	id := fields.Get(key.name)
	sym, exists := ns.entries[id]
	if !exists {
		sym = &symbol{overloads: make(map[Key]*Descriptor)}
		ns.entries[id] = sym
	} else if !sym.isFuncs() {
		return duplicateRegistration(key)
	}

	if _, taken := sym.overloads[key]; taken {
		return duplicateRegistration(key)
	}
	sym.overloads[key] = d
	return nil
}

func (ns *Namespace) defineConst(name string, v Value) *Exception {
	id := fields.Get(name)
	if _, taken := ns.entries[id]; taken {
		return duplicateRegistration(KeyOf(name))
	}
	ns.entries[id] = &symbol{constant: v.Allocate()}
	return nil
}

func (ns *Namespace) mount(child *Namespace) *Exception {
	id := fields.Get(child.name)
	if _, taken := ns.entries[id]; taken {
		return duplicateRegistration(KeyOf(child.name))
	}
	ns.entries[id] = &symbol{child: child}
	return nil
}

// Child retrieves a nested namespace, if there is one under that name
func (ns *Namespace) Child(name string) (child *Namespace, exists bool) {
	sym, exists := ns.entries[fields.Get(name)]
	if !exists || sym.child == nil {
		return nil, false
	}
	return sym.child, true
}

// Constant retrieves a registered constant
func (ns *Namespace) Constant(name string) (v Value, exists bool) {
	sym, exists := ns.entries[fields.Get(name)]
	if !exists || sym.constant == nil {
		return Value{}, false
	}
	return *sym.constant, true
}

// Descriptors iterates every descriptor registered directly in this
// namespace; aliases make the same descriptor show up once per key
func (ns *Namespace) Descriptors() iter.Seq2[Key, *Descriptor] {
	return func(yield func(Key, *Descriptor) bool) {
		for _, sym := range ns.entries {
			for key, d := range sym.overloads {
				if !yield(key, d) {
					return
				}
			}
		}
	}
}

// resolve performs overload resolution for a call in this namespace. Exact
// arity+type matches win outright; otherwise the cheapest compatible
// candidate under the widening rules is taken and a tie is an ambiguity
// error, not a silent pick.
func (ns *Namespace) resolve(name string, args []Value) (d *Descriptor, exc *Exception) {
	sym, exists := ns.entries[fields.Get(name)]
	if !exists || !sym.isFuncs() {
		return nil, functionNotFound(name, args)
	}

	tags := make([]Tag, len(args))
	for i, arg := range args {
		tags[i] = TagOf(arg)
	}

	// fast path: exact hit
	if d, exists := sym.overloads[KeyOf(name, tags...)]; exists {
		return d, nil
	}

	best := costNone
	var candidates ds.Slice[*Descriptor]
	for key, d := range sym.overloads {
		if key.Arity() != len(args) {
			continue
		}

		total := 0
		for i, want := range d.params {
			cost := matchCost(want, tags[i])
			if cost == costNone {
				total = costNone
				break
			}
			total += cost
		}
		if total == costNone {
			continue
		}

		switch {
		case best == costNone || total < best:
			best = total
			candidates = candidates[:0]
			candidates.Push(d)
		case total == best && !slices.Contains(candidates, d):
			// the same descriptor can be reachable through several alias
			// keys; that is one candidate, not a conflict
			candidates.Push(d)
		}
	}

	switch candidates.Len() {
	case 0:
		return nil, functionNotFound(name, args)
	case 1:
		return candidates.Last(), nil
	}
	return nil, ambiguousOverload(name, args)
}

// Flatten recursively erases the namespace hierarchy: every contained
// function is promoted to the top level under its unchanged key, constants
// and nested namespaces are dropped entirely. Two identical keys meeting at
// the destination level fail the whole operation. Flattening an already flat
// namespace yields an identical node.
func (ns *Namespace) Flatten() (flat *Namespace, exc *Exception) {
	flat = newNamespace(ns.name)
	seen := make(ds.Set[Key])

	var walk func(node *Namespace) *Exception
	walk = func(node *Namespace) *Exception {
		for key, d := range node.Descriptors() {
			if seen.Has(key) {
				return flattenConflict(key)
			}
			seen.Add(key)
			if exc := flat.insert(key, d); exc != nil {
				return exc
			}
		}
		for _, sym := range node.entries {
			if sym.child != nil {
				if exc := walk(sym.child); exc != nil {
					return exc
				}
			}
		}
		return nil
	}

	if exc := walk(ns); exc != nil {
		return nil, exc
	}
	return flat, nil
}

// merge moves every top level entry of other into ns; duplicates are errors.
// Partial merges don't happen: conflicts are detected up front.
func (ns *Namespace) merge(other *Namespace) *Exception {
	for id, sym := range other.entries {
		existing, taken := ns.entries[id]
		if !taken {
			continue
		}
		if !(sym.isFuncs() && existing.isFuncs()) {
			return duplicateRegistration(KeyOf(fields.Name(id)))
		}
		for key := range sym.overloads {
			if _, dup := existing.overloads[key]; dup {
				return duplicateRegistration(key)
			}
		}
	}

	for id, sym := range other.entries {
		existing, taken := ns.entries[id]
		if !taken {
			ns.entries[id] = sym
			continue
		}
		for key, d := range sym.overloads {
			existing.overloads[key] = d
		}
	}
	return nil
}
