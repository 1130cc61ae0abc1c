package primitive

import "math"

// NullValue returns the bit pattern of t's NULL_VALUE sentinel (§4.5):
// the type's minimum for signed integers, its maximum for unsigned
// integers, NaN for floating point, and 0 for char (SBE reserves the NUL
// byte as char's absent marker).
//
// The result is the type's raw bit pattern widened into a uint64; callers
// narrow it back to the field's actual width.
func NullValue(t Type) uint64 {
	switch t {
	case TypeInt8:
		return uint64(uint8(math.MinInt8))
	case TypeInt16:
		return uint64(uint16(math.MinInt16))
	case TypeInt32:
		return uint64(uint32(math.MinInt32))
	case TypeInt64:
		return uint64(math.MinInt64)
	case TypeUint8:
		return uint64(math.MaxUint8)
	case TypeUint16:
		return uint64(math.MaxUint16)
	case TypeUint32:
		return uint64(math.MaxUint32)
	case TypeUint64:
		return math.MaxUint64
	case TypeFloat32:
		return uint64(math.Float32bits(float32(math.NaN())))
	case TypeFloat64:
		return math.Float64bits(math.NaN())
	case TypeChar:
		return 0
	default:
		return 0
	}
}

// MinValue returns the bit pattern of t's MIN_VALUE (one above the type's
// true minimum for signed integers, zero for unsigned integers — both
// reserve their extreme value for NULL_VALUE).
func MinValue(t Type) uint64 {
	switch t {
	case TypeInt8:
		return uint64(uint8(math.MinInt8 + 1))
	case TypeInt16:
		return uint64(uint16(math.MinInt16 + 1))
	case TypeInt32:
		return uint64(uint32(math.MinInt32 + 1))
	case TypeInt64:
		return uint64(math.MinInt64 + 1)
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64:
		return 0
	case TypeFloat32:
		return uint64(math.Float32bits(-math.MaxFloat32))
	case TypeFloat64:
		return math.Float64bits(-math.MaxFloat64)
	case TypeChar:
		return 1
	default:
		return 0
	}
}

// MaxValue returns the bit pattern of t's MAX_VALUE (the type's true
// maximum for signed integers, one below the type's true maximum for
// unsigned integers — again reserving the extreme for NULL_VALUE).
func MaxValue(t Type) uint64 {
	switch t {
	case TypeInt8:
		return uint64(uint8(math.MaxInt8))
	case TypeInt16:
		return uint64(uint16(math.MaxInt16))
	case TypeInt32:
		return uint64(uint32(math.MaxInt32))
	case TypeInt64:
		return uint64(math.MaxInt64)
	case TypeUint8:
		return uint64(math.MaxUint8 - 1)
	case TypeUint16:
		return uint64(math.MaxUint16 - 1)
	case TypeUint32:
		return uint64(math.MaxUint32 - 1)
	case TypeUint64:
		return math.MaxUint64 - 1
	case TypeFloat32:
		return uint64(math.Float32bits(math.MaxFloat32))
	case TypeFloat64:
		return math.Float64bits(math.MaxFloat64)
	case TypeChar:
		return 0x7e
	default:
		return 0
	}
}

// IsNull reports whether raw (the type's bit pattern, widened into a
// uint64 the same way NullValue is) represents that type's NULL_VALUE.
// Floating-point types treat every NaN bit pattern as null, per §4.5
// ("the decoder treats any NaN as null"), not just the canonical one.
func IsNull(t Type, raw uint64) bool {
	switch t {
	case TypeFloat32:
		return math.IsNaN(float64(math.Float32frombits(uint32(raw))))
	case TypeFloat64:
		return math.IsNaN(math.Float64frombits(raw))
	default:
		return raw == NullValue(t)
	}
}
