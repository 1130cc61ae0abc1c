// Package errs defines the sentinel error values used throughout the codec
// runtime. Callers should compare against these with errors.Is, since most
// call sites wrap them with additional context via fmt.Errorf("...: %w").
package errs

import "errors"

var (
	// ErrBufferTooShort is returned when a read or write would cross the
	// buffer's declared length.
	ErrBufferTooShort = errors.New("sbe: buffer too short")

	// ErrValueOutOfRange names a value outside [MIN_VALUE, MAX_VALUE] for
	// a field's declared primitive type. No setter in this module returns
	// it: setters store values without a range check.
	ErrValueOutOfRange = errors.New("sbe: value out of range")

	// ErrGroupCountOverflow is returned when SetCount(n) is called with n
	// exceeding the dimensions header's numInGroup type maximum.
	ErrGroupCountOverflow = errors.New("sbe: group count overflow")

	// ErrUnknownEnumValue names an enum wire value that matches no
	// ValidValue. Nothing in this module returns it: such values decode to
	// NULL_VAL rather than fail (Invariant 7).
	ErrUnknownEnumValue = errors.New("sbe: unknown enum value")

	// ErrMalformedIR is returned when a token list fails well-formedness
	// validation (mismatched Begin/End, inconsistent component token
	// count).
	ErrMalformedIR = errors.New("sbe: malformed IR token list")

	// ErrTemplateNotFound is returned when an OTF header decode yields a
	// (templateId, version) absent from the loaded IR collection.
	ErrTemplateNotFound = errors.New("sbe: template not found")

	// ErrStaleEntry is returned by an Entry/Group whose parent has since
	// advanced past it. Retaining a child flyweight past its parent's
	// advance is forbidden; a fresh child must be obtained instead.
	ErrStaleEntry = errors.New("sbe: stale group entry")

	// ErrNoActiveChild is returned when a var-data or group accessor is
	// invoked on a message that has not wrapped a buffer.
	ErrNoActiveChild = errors.New("sbe: no active buffer wrap")

	// ErrGroupExhausted is returned by Group.Next when index+1 >= count.
	ErrGroupExhausted = errors.New("sbe: group iteration exhausted")

	// ErrSchemaCollision is returned when two distinct token lists hash to
	// the same schema fingerprint — a cache lookup can't tell them apart.
	ErrSchemaCollision = errors.New("sbe: schema fingerprint collision")
)
