package primitive

import "fmt"

// Read decodes the raw bit pattern of a single value of type t from the
// front of b, using the given byte order. The result is widened to a
// uint64 the same way NullValue/MinValue/MaxValue are, so it can be
// compared against them directly or narrowed by the caller.
func Read(t Type, order ByteOrder, b []byte) (uint64, error) {
	n := t.Size()
	if n == 0 {
		return 0, fmt.Errorf("primitive: type %s has no fixed wire size", t)
	}
	if len(b) < n {
		return 0, fmt.Errorf("primitive: need %d bytes to read %s, have %d", n, t, len(b))
	}

	engine := order.Engine()

	switch t {
	case TypeChar, TypeInt8, TypeUint8:
		return uint64(b[0]), nil
	case TypeInt16, TypeUint16:
		return uint64(engine.Uint16(b)), nil
	case TypeInt32, TypeUint32, TypeFloat32:
		return uint64(engine.Uint32(b)), nil
	case TypeInt64, TypeUint64, TypeFloat64:
		return engine.Uint64(b), nil
	default:
		return 0, fmt.Errorf("primitive: unsupported type %s", t)
	}
}

// Write encodes raw (a widened bit pattern, as returned by Read or the
// Null/Min/MaxValue helpers) as a value of type t at the front of b, using
// the given byte order. len(b) must be at least t.Size().
func Write(t Type, order ByteOrder, b []byte, raw uint64) error {
	n := t.Size()
	if n == 0 {
		return fmt.Errorf("primitive: type %s has no fixed wire size", t)
	}
	if len(b) < n {
		return fmt.Errorf("primitive: need %d bytes to write %s, have %d", n, t, len(b))
	}

	engine := order.Engine()

	switch t {
	case TypeChar, TypeInt8, TypeUint8:
		b[0] = byte(raw)
	case TypeInt16, TypeUint16:
		engine.PutUint16(b, uint16(raw))
	case TypeInt32, TypeUint32, TypeFloat32:
		engine.PutUint32(b, uint32(raw))
	case TypeInt64, TypeUint64, TypeFloat64:
		engine.PutUint64(b, raw)
	default:
		return fmt.Errorf("primitive: unsupported type %s", t)
	}

	return nil
}

// ReadUint reads an unsigned integer field (blockLength, templateId,
// numInGroup, var-data length prefixes, and similar) and returns it as a
// plain uint64, rather than a widened bit pattern. t must be one of the
// unsigned integer types.
func ReadUint(t Type, order ByteOrder, b []byte) (uint64, error) {
	if !t.Unsigned() {
		return 0, fmt.Errorf("primitive: %s is not an unsigned integer type", t)
	}

	return Read(t, order, b)
}
