package vm

import (
	"math"
	"strconv"
	"strings"
	"unsafe"
)

/*
NOTE: Theres 2 parts to a Value
	1. The scalar can store int64, float64, bool
	2. The pointer can store any reference value like strings, arrays, host functions or host objects

When we are storing a scalar, the pointer tells us the type of the scalar.
When we are storing a reference, the scalar tells us the type of the reference.
So how do we know what it is? We follow some basic rules.

RULES:
	1. nil:     the pointer has to be equal to nil; the scalar is irrelevant
	2. bool:    the pointer has to be equal to boolType; the scalar is 0 for false else true
	3. int64:   the pointer has to be equal to i64Type; the scalar then stores the value
	4. float64: the pointer has to be equal to f64Type; the scalar then stores the value
	5. string:  the pointer has to be none of (boolType, i64Type, f64Type); the scalar has to be stringType
	6. array:   the pointer has to be none of (boolType, i64Type, f64Type); the scalar has to be arrayType
	7. hostFn:  the pointer has to be none of (boolType, i64Type, f64Type); the scalar has to be hostFnType
	8. object:  the pointer has to be none of (boolType, i64Type, f64Type); the scalar has to be objectType
*/

// Value represents a boxed value
type Value struct {
	scalar  uint64
	pointer unsafe.Pointer
}

const (
	stringType = iota
	arrayType
	hostFnType
	objectType
)

// scalar types
var boolType = unsafe.Pointer(new(byte))
var i64Type = unsafe.Pointer(new(byte))
var f64Type = unsafe.Pointer(new(byte))

// object is a host value bound through an Instance's type table.
// frozen is a property of this particular view, not of the underlying value;
// Freeze returns a new view that shares the value but has frozen set.
type object struct {
	meta   *typeInfo
	value  any // pointer to the host value
	frozen bool
}

// BoxInt boxes an int64
func BoxInt(i int64) Value {
	return Value{scalar: uint64(i), pointer: i64Type}
}

// BoxFloat64 boxes a float64
func BoxFloat64(f float64) Value {
	return Value{scalar: math.Float64bits(f), pointer: f64Type}
}

// BoxBool boxes a boolean
func BoxBool(b bool) Value {
	if b {
		return Value{scalar: 1, pointer: boolType}
	}
	return Value{scalar: 0, pointer: boolType}
}

// BoxString boxes a string
func BoxString(str string) Value {
	return Value{scalar: stringType, pointer: unsafe.Pointer(&str)}
}

// BoxArray boxes an array
func BoxArray(array []Value) Value {
	return Value{scalar: arrayType, pointer: unsafe.Pointer(&array)}
}

func boxDescriptor(d *Descriptor) Value {
	return Value{scalar: hostFnType, pointer: unsafe.Pointer(d)}
}

func boxObject(obj *object) Value {
	return Value{scalar: objectType, pointer: unsafe.Pointer(obj)}
}

func (x Value) IsNil() bool {
	return x.pointer == nil
}

func (x Value) AsInt() (i int64, ok bool) {
	return int64(x.scalar), x.pointer == i64Type
}

func (x Value) AsFloat64() (f float64, ok bool) {
	return math.Float64frombits(x.scalar), x.pointer == f64Type
}

func (x Value) AsBool() (b bool, ok bool) {
	return x.scalar != 0, x.pointer == boolType
}

func (x Value) AsString() (s string, ok bool) {
	if isKnown(x.pointer) || x.scalar != stringType {
		return "", false
	}
	return *(*string)(x.pointer), true
}

func (x Value) AsArray() (array []Value, ok bool) {
	if isKnown(x.pointer) || x.scalar != arrayType {
		return nil, false
	}
	return *(*[]Value)(x.pointer), true
}

// AsDescriptor unboxes a host function into its descriptor
func (x Value) AsDescriptor() (d *Descriptor, ok bool) {
	if isKnown(x.pointer) || x.scalar != hostFnType {
		return nil, false
	}
	return (*Descriptor)(x.pointer), true
}

func (x Value) asObject() (obj *object, ok bool) {
	if isKnown(x.pointer) || x.scalar != objectType {
		return nil, false
	}
	return (*object)(x.pointer), true
}

// Freeze returns an immutable view of x; the underlying value is shared.
// Only host objects carry the marker; everything else is returned as is
// because scalars and strings cannot be mutated through a call anyway.
func (x Value) Freeze() Value {
	if obj, ok := x.asObject(); ok {
		return boxObject(&object{meta: obj.meta, value: obj.value, frozen: true})
	}
	return x
}

// Frozen reports whether x is an immutable view of a host object
func (x Value) Frozen() bool {
	obj, ok := x.asObject()
	return ok && obj.frozen
}

// Allocate will copy the current value to the heap and return a pointer to it
func (x Value) Allocate() *Value {
	return &x
}

func isKnown(p unsafe.Pointer) bool {
	switch p {
	case nil, boolType, i64Type, f64Type:
		return true
	}
	return false
}

func (x Value) IsTruthy() bool {
	switch x.pointer {
	case nil:
		return false
	case boolType:
		return x.scalar != 0
	case i64Type:
		return int64(x.scalar) != 0
	case f64Type:
		return math.Float64frombits(x.scalar) != 0
	}

	switch x.scalar {
	case stringType:
		return *(*string)(x.pointer) != ""
	case arrayType:
		array := *(*[]Value)(x.pointer)
		return len(array) != 0
	case hostFnType:
		// In both JavaScript and Python, functions are inherently truthy
		return true
	case objectType:
		return true
	}

	return false
}

func (x Value) Equals(y Value) bool {
	switch x.pointer {
	case nil:
		return y.pointer == nil
	case boolType:
		return y.pointer == boolType && x.scalar == y.scalar
	case i64Type:
		return y.pointer == i64Type && int64(x.scalar) == int64(y.scalar)
	case f64Type:
		return y.pointer == f64Type && math.Float64frombits(x.scalar) == math.Float64frombits(y.scalar)
	}

	if isKnown(y.pointer) {
		return false
	}

	// guarantees that their types are the same beyond this point
	if x.scalar != y.scalar {
		return false
	}

	switch x.scalar {
	case stringType:
		return *(*string)(x.pointer) == *(*string)(y.pointer)
	case objectType:
		lhs := (*object)(x.pointer)
		rhs := (*object)(y.pointer)
		return lhs.value == rhs.value
	}

	// default comparison
	return x.pointer == y.pointer
}

func (x Value) String() string {
	switch x.pointer {
	case nil:
		return "nil"
	case boolType:
		if x.scalar == 0 {
			return "false"
		}
		return "true"
	case i64Type:
		return strconv.FormatInt(int64(x.scalar), 10)
	case f64Type:
		return strconv.FormatFloat(math.Float64frombits(x.scalar), 'f', -1, 64)
	}

	switch x.scalar {
	case stringType:
		return *(*string)(x.pointer)
	case hostFnType:
		return "<function>"
	case arrayType:
		array := *(*[]Value)(x.pointer)

		builder := strings.Builder{}
		builder.WriteByte('[')

		for i, v := range array {
			if str, ok := v.AsString(); ok {
				builder.WriteByte('"')
				builder.WriteString(str)
				builder.WriteByte('"')
			} else {
				builder.WriteString(v.String())
			}

			if i != len(array)-1 {
				builder.WriteString(", ")
			}
		}

		builder.WriteByte(']')
		return builder.String()

	case objectType:
		obj := (*object)(x.pointer)
		return obj.meta.print(x)
	}

	return "<unknown>"
}

// Debug is like String but prefers the bound type's debug formatter
// and quotes strings
func (x Value) Debug() string {
	if obj, ok := x.asObject(); ok {
		return obj.meta.debug(x)
	}
	if str, ok := x.AsString(); ok {
		return strconv.Quote(str)
	}
	return x.String()
}

func (x Value) TypeOf() string {
	switch x.pointer {
	case nil:
		return "nil"
	case boolType:
		return "bool"
	case i64Type:
		return "int"
	case f64Type:
		return "float"
	}

	switch x.scalar {
	case stringType:
		return "string"
	case arrayType:
		return "array"
	case hostFnType:
		return "function"
	case objectType:
		obj := (*object)(x.pointer)
		return obj.meta.name
	}

	return "<unknown>"
}
