package vm

// MayFold answers the constant folder's only question: can a call to this
// descriptor be evaluated at compile time, given whether every argument at
// the call site is a known constant. Volatile callables are never folded, no
// matter the arguments; that is the single governing rule. Total, stateless.
func (d *Descriptor) MayFold(argsAreConst bool) bool {
	return !d.volatile && argsAreConst
}
