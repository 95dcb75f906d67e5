package vm

// Role says what a registered callable is to the language
type Role uint8

const (
	RoleFunction Role = iota
	RoleConstructor
	RoleGetter
	RoleSetter
	RoleIndexGet
	RoleIndexSet
	RoleOperator
	RoleIteratorFactory
)

func (r Role) String() string {
	switch r {
	case RoleFunction:
		return "function"
	case RoleConstructor:
		return "constructor"
	case RoleGetter:
		return "getter"
	case RoleSetter:
		return "setter"
	case RoleIndexGet:
		return "index getter"
	case RoleIndexSet:
		return "index setter"
	case RoleOperator:
		return "operator"
	case RoleIteratorFactory:
		return "iterator factory"
	}
	return "<unknown>"
}

// ReceiverKind says how a callable takes its first argument
type ReceiverKind uint8

const (
	ReceiverNone ReceiverKind = iota
	ReceiverByValue
	ReceiverByMutableRef
)

// HostFn is a compile time safety interface so uncallable functions don't get
// into the system
type HostFn interface {
	func() (Value, *Exception) |
		func(Value) (Value, *Exception) |
		func(Value, Value) (Value, *Exception) |
		func(Value, Value, Value) (Value, *Exception) |
		func(Value, Value, Value, Value) (Value, *Exception) |
		func(Value, Value, Value, Value, Value) (Value, *Exception) |
		func(Value, Value, Value, Value, Value, Value) (Value, *Exception)
}

// Descriptor wraps one host callable together with its classification. Every
// name registered for the callable (aliases, an operator symbol, a getter
// name) points at the same descriptor, so the classification is shared.
// Descriptors are immutable once assembly completes.
type Descriptor struct {
	name     string // primary name, used in error messages
	role     Role
	receiver ReceiverKind
	params   []Tag
	pure     bool // does not mutate its receiver
	volatile bool // result may differ across calls with identical arguments
	rawError bool // already returns the engine's fallible shape; don't rewrap
	fn       any  // one of the HostFn shapes
	nargs    int
}

func (d *Descriptor) Name() string           { return d.name }
func (d *Descriptor) Role() Role             { return d.role }
func (d *Descriptor) Receiver() ReceiverKind { return d.receiver }
func (d *Descriptor) Pure() bool             { return d.pure }
func (d *Descriptor) Volatile() bool         { return d.volatile }
func (d *Descriptor) RawError() bool         { return d.rawError }
func (d *Descriptor) Arity() int             { return d.nargs }

// Params returns the declared parameter tags; the slice is shared, don't
// write to it
func (d *Descriptor) Params() []Tag {
	return d.params
}

func arityOf[T HostFn](fn T) int {
	switch any(fn).(type) {
	case func() (Value, *Exception):
		return 0
	case func(Value) (Value, *Exception):
		return 1
	case func(Value, Value) (Value, *Exception):
		return 2
	case func(Value, Value, Value) (Value, *Exception):
		return 3
	case func(Value, Value, Value, Value) (Value, *Exception):
		return 4
	case func(Value, Value, Value, Value, Value) (Value, *Exception):
		return 5
	case func(Value, Value, Value, Value, Value, Value) (Value, *Exception):
		return 6
	}
	panic("unsupported function shape")
}

// invoke runs the callable; the caller has already arity checked, widened and
// receiver guarded
func (d *Descriptor) invoke(args []Value) (result Value, exc *Exception) {
	switch fn := d.fn.(type) {
	case func() (Value, *Exception):
		return fn()
	case func(Value) (Value, *Exception):
		return fn(args[0])
	case func(Value, Value) (Value, *Exception):
		return fn(args[0], args[1])
	case func(Value, Value, Value) (Value, *Exception):
		return fn(args[0], args[1], args[2])
	case func(Value, Value, Value, Value) (Value, *Exception):
		return fn(args[0], args[1], args[2], args[3])
	case func(Value, Value, Value, Value, Value) (Value, *Exception):
		return fn(args[0], args[1], args[2], args[3], args[4])
	case func(Value, Value, Value, Value, Value, Value) (Value, *Exception):
		return fn(args[0], args[1], args[2], args[3], args[4], args[5])
	}
	panic("unsupported call")
}
