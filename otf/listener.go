package otf

import "github.com/sbeio/gosbe/ir"

// Listener receives callbacks as Decode walks a message's token list
// against an encoded buffer (grounded on OtfMessageDecoder.h's
// BasicTokenListener, translated from C++ virtual methods with empty
// default bodies to a Go interface plus NopListener for embedding).
//
// Every method returns an error so a listener can abort a decode in
// progress (e.g. on an unexpected enum value) without panicking partway
// through someone else's buffer.
type Listener interface {
	OnBeginMessage(token ir.Token) error
	OnEndMessage(token ir.Token) error

	// OnEncoding fires for one primitive field: fieldToken names the field,
	// data is the buffer slice at the field's offset, typeToken carries the
	// primitive encoding (they're the same token for a bare scalar field,
	// distinct for one nested in a composite).
	OnEncoding(fieldToken ir.Token, data []byte, typeToken ir.Token, actingVersion uint16) error

	// OnEnum fires for an enum-typed field. tokens[fromIndex:toIndex] are
	// the BeginEnum..ValidValue* span (exclusive of EndEnum) the listener
	// can scan to resolve data's raw value to a symbolic one.
	OnEnum(fieldToken ir.Token, data []byte, tokens []ir.Token, fromIndex, toIndex int, actingVersion uint16) error

	// OnBitSet fires for a set-typed field, analogous to OnEnum but for
	// Choice tokens instead of ValidValue tokens.
	OnBitSet(fieldToken ir.Token, data []byte, tokens []ir.Token, fromIndex, toIndex int, actingVersion uint16) error

	OnBeginComposite(fieldToken ir.Token, tokens []ir.Token, fromIndex, toIndex int) error
	OnEndComposite(fieldToken ir.Token, tokens []ir.Token, fromIndex, toIndex int) error

	OnGroupHeader(token ir.Token, numInGroup uint32) error
	OnBeginGroup(token ir.Token, groupIndex, numInGroup uint32) error
	OnEndGroup(token ir.Token, groupIndex, numInGroup uint32) error

	// OnVarData fires once per variable-data field with its payload
	// already sliced out (length already resolved from the length token).
	OnVarData(fieldToken ir.Token, data []byte, typeToken ir.Token) error
}

// NopListener implements Listener with no-op bodies. Embed it in a
// concrete listener and override only the callbacks of interest, the same
// pattern BasicTokenListener's empty virtual methods give C++ callers.
type NopListener struct{}

var _ Listener = NopListener{}

func (NopListener) OnBeginMessage(ir.Token) error { return nil }
func (NopListener) OnEndMessage(ir.Token) error   { return nil }

func (NopListener) OnEncoding(ir.Token, []byte, ir.Token, uint16) error { return nil }
func (NopListener) OnEnum(ir.Token, []byte, []ir.Token, int, int, uint16) error {
	return nil
}
func (NopListener) OnBitSet(ir.Token, []byte, []ir.Token, int, int, uint16) error {
	return nil
}

func (NopListener) OnBeginComposite(ir.Token, []ir.Token, int, int) error { return nil }
func (NopListener) OnEndComposite(ir.Token, []ir.Token, int, int) error   { return nil }

func (NopListener) OnGroupHeader(ir.Token, uint32) error          { return nil }
func (NopListener) OnBeginGroup(ir.Token, uint32, uint32) error    { return nil }
func (NopListener) OnEndGroup(ir.Token, uint32, uint32) error      { return nil }

func (NopListener) OnVarData(ir.Token, []byte, ir.Token) error { return nil }
