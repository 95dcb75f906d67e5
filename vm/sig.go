package vm

import "strings"

// Key is the sole identity of a registered callable: its name plus the
// ordered parameter tags packed into a string so the whole thing is
// comparable and usable as a map key. Arity is the length of the packed
// sequence; it needs no field of its own.
type Key struct {
	name string
	sig  string
}

// KeyOf builds the signature key for name with the given parameter tags
func KeyOf(name string, params ...Tag) Key {
	if len(params) == 0 {
		return Key{name: name}
	}

	var sb strings.Builder
	sb.Grow(len(params) * 4)
	for _, t := range params {
		sb.WriteByte(byte(t))
		sb.WriteByte(byte(t >> 8))
		sb.WriteByte(byte(t >> 16))
		sb.WriteByte(byte(t >> 24))
	}
	return Key{name: name, sig: sb.String()}
}

func (k Key) Name() string {
	return k.name
}

func (k Key) Arity() int {
	return len(k.sig) / 4
}

// Params unpacks the parameter tags
func (k Key) Params() []Tag {
	params := make([]Tag, 0, k.Arity())
	for i := 0; i < len(k.sig); i += 4 {
		params = append(params, Tag(k.sig[i])|Tag(k.sig[i+1])<<8|Tag(k.sig[i+2])<<16|Tag(k.sig[i+3])<<24)
	}
	return params
}

func (k Key) String() string {
	var sb strings.Builder
	sb.WriteString(k.name)
	sb.WriteByte('(')
	for i, t := range k.Params() {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
