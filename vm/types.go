package vm

// Tag identifies a value type for overload resolution. The low tags are the
// built in value kinds; every host type bound through an Instance gets its
// own tag above firstHostTag.
type Tag uint32

const (
	TagAny Tag = iota // matches every argument, at a cost
	TagNil
	TagBool
	TagInt
	TagFloat
	TagString
	TagArray
	TagFunc

	firstHostTag
)

// TagOf reports the tag of a boxed value
func TagOf(v Value) Tag {
	switch v.pointer {
	case nil:
		return TagNil
	case boolType:
		return TagBool
	case i64Type:
		return TagInt
	case f64Type:
		return TagFloat
	}

	switch v.scalar {
	case stringType:
		return TagString
	case arrayType:
		return TagArray
	case hostFnType:
		return TagFunc
	case objectType:
		return (*object)(v.pointer).meta.tag
	}

	return TagAny
}

func (t Tag) String() string {
	switch t {
	case TagAny:
		return "any"
	case TagNil:
		return "nil"
	case TagBool:
		return "bool"
	case TagInt:
		return "int"
	case TagFloat:
		return "float"
	case TagString:
		return "string"
	case TagArray:
		return "array"
	case TagFunc:
		return "function"
	}
	return hostTagName(t)
}

// match costs; exact is always preferred, ties on anything else are reported
// as ambiguous by the resolver
const (
	costExact    = 0
	costWidening = 1
	costAny      = 2
	costNone     = -1
)

// matchCost reports how well an argument of tag have fits a parameter of tag
// want. The only widening rule is int to float.
func matchCost(want, have Tag) int {
	switch {
	case want == have:
		return costExact
	case want == TagAny:
		return costAny
	case want == TagFloat && have == TagInt:
		return costWidening
	}
	return costNone
}

// widen converts args in place to fit the declared parameters of d;
// only call this after matchCost approved every position
func widen(params []Tag, args []Value) {
	for i, want := range params {
		if want == TagFloat {
			if n, ok := args[i].AsInt(); ok {
				args[i] = BoxFloat64(float64(n))
			}
		}
	}
}
