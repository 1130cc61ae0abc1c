package primitive

// Type enumerates the primitive encodings a Token's `primitive_type`
// attribute can carry (§3 Token).
type Type uint8

const (
	TypeNone Type = iota
	TypeChar
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeFloat32
	TypeFloat64
)

func (t Type) String() string {
	switch t {
	case TypeChar:
		return "char"
	case TypeInt8:
		return "int8"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeUint8:
		return "uint8"
	case TypeUint16:
		return "uint16"
	case TypeUint32:
		return "uint32"
	case TypeUint64:
		return "uint64"
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	default:
		return "none"
	}
}

// Size returns the wire size in bytes of a single value of this type, or 0
// for TypeNone (composites, groups, var-data carry their own length).
func (t Type) Size() int {
	switch t {
	case TypeChar, TypeInt8, TypeUint8:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32, TypeFloat32:
		return 4
	case TypeInt64, TypeUint64, TypeFloat64:
		return 8
	default:
		return 0
	}
}

// Unsigned reports whether t is one of the unsigned integer types. Unsigned
// types are the only ones permitted for blockLength, numInGroup, and
// var-data length prefixes (§4.3, §6).
func (t Type) Unsigned() bool {
	switch t {
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64:
		return true
	default:
		return false
	}
}
