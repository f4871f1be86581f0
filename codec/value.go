package codec

import "fmt"

// ValueType discriminates a Value.
type ValueType int

const (
	TypeObjectBegin ValueType = iota
	TypeObjectEnd
	TypeArrayBegin
	TypeArrayEnd
	TypeString
	TypeNumber
	TypeBool
	TypeNull
)

func (t ValueType) String() string {
	switch t {
	case TypeObjectBegin:
		return "object-begin"
	case TypeObjectEnd:
		return "object-end"
	case TypeArrayBegin:
		return "array-begin"
	case TypeArrayEnd:
		return "array-end"
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeBool:
		return "bool"
	case TypeNull:
		return "null"
	default:
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
}

// Value is a tagged scalar or container marker for generic emission with
// Codec.Any. Only the field matching Type is read.
type Value struct {
	Type   ValueType
	String string
	Number float64
	Bool   bool
	Cursor *Cursor
}

func StringValue(s string) Value {
	return Value{Type: TypeString, String: s}
}

func NumberValue(f float64) Value {
	return Value{Type: TypeNumber, Number: f}
}

func BoolValue(b bool) Value {
	return Value{Type: TypeBool, Bool: b}
}

func NullValue() Value {
	return Value{Type: TypeNull}
}

func ObjectBeginValue() Value {
	return Value{Type: TypeObjectBegin}
}

func ObjectEndValue() Value {
	return Value{Type: TypeObjectEnd}
}

func ArrayBeginValue() Value {
	return Value{Type: TypeArrayBegin}
}

// ArrayEndValue closes an array using the counter form with c, which may
// be nil.
func ArrayEndValue(c *Cursor) Value {
	return Value{Type: TypeArrayEnd, Cursor: c}
}
