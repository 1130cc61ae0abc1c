package otf

import (
	"fmt"

	"github.com/sbeio/gosbe/errs"
	"github.com/sbeio/gosbe/ir"
	"github.com/sbeio/gosbe/primitive"
)

// Decode walks msgTokens against buf and drives listener — the C10 core:
// decoding a message without any schema-specific generated code, purely
// from its linearized token list (grounded on OtfMessageDecoder.h's
// decode/decodeFields/decodeGroups/decodeData, reproduced here as Go
// control flow with explicit error returns instead of C++ exceptions).
//
// blockLength is the acting (wire-advertised) fixed-block length, not the
// schema's compiled one (Invariant 5: schema evolution reads the sender's
// stated length).
func Decode(buf []byte, actingVersion uint16, blockLength int, msgTokens []ir.Token, listener Listener) (int, error) {
	if len(msgTokens) == 0 {
		return 0, fmt.Errorf("otf: empty message token list: %w", errs.ErrMalformedIR)
	}

	numTokens := len(msgTokens)

	if err := listener.OnBeginMessage(msgTokens[0]); err != nil {
		return 0, err
	}

	tokenIndex, err := decodeFields(buf, 0, actingVersion, blockLength, msgTokens, 1, numTokens, listener)
	if err != nil {
		return 0, err
	}

	bufferIndex := blockLength

	bufferIndex, tokenIndex, err = decodeGroups(buf, bufferIndex, actingVersion, msgTokens, tokenIndex, numTokens, listener)
	if err != nil {
		return 0, err
	}

	bufferIndex, _, err = decodeData(buf, bufferIndex, msgTokens, tokenIndex, numTokens, listener)
	if err != nil {
		return 0, err
	}

	if err := listener.OnEndMessage(msgTokens[numTokens-1]); err != nil {
		return 0, err
	}

	return bufferIndex, nil
}

func sliceAt(buf []byte, offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > len(buf) {
		return nil, fmt.Errorf("otf: slice [%d:%d] out of range (len %d): %w", offset, offset+length, len(buf), errs.ErrBufferTooShort)
	}

	return buf[offset : offset+length], nil
}

func readUintAt(buf []byte, offset int, tok ir.Token) (uint64, error) {
	data, err := sliceAt(buf, offset, tok.PrimitiveType.Size())
	if err != nil {
		return 0, err
	}

	return primitive.ReadUint(tok.PrimitiveType, tok.ByteOrder, data)
}

// decodeFields walks a run of BeginField..EndField spans starting at
// tokenIndex, dispatching one listener callback per field depending on its
// type token's signal, and returns the index of the first non-field token.
//
// A field added in a schema version later than actingVersion, or one
// whose offset falls outside the sender's actingBlockLength, was never
// written by the sender: Invariant 5 says such a field must be skipped
// rather than read, so its bytes (if any are even present in the buffer)
// are left untouched and the listener sees nothing for it — the caller
// reports NULL_VALUE on its own terms instead of reading group/var-data
// bytes as if they were the field.
func decodeFields(
	buf []byte,
	bufferIndex int,
	actingVersion uint16,
	actingBlockLength int,
	tokens []ir.Token,
	tokenIndex, numTokens int,
	listener Listener,
) (int, error) {
	for tokenIndex < numTokens && tokens[tokenIndex].Signal == ir.SignalBeginField {
		fieldToken := tokens[tokenIndex]
		nextFieldIndex := tokenIndex + fieldToken.ComponentTokenCount
		tokenIndex++

		typeToken := tokens[tokenIndex]

		if fieldToken.TokenVersion <= actingVersion && typeToken.Offset < actingBlockLength {
			offset := bufferIndex + typeToken.Offset

			switch typeToken.Signal {
			case ir.SignalBeginComposite:
				if err := decodeComposite(fieldToken, buf, offset, tokens, tokenIndex, nextFieldIndex-2, actingVersion, listener); err != nil {
					return 0, err
				}
			case ir.SignalBeginEnum:
				data, err := sliceAt(buf, offset, typeToken.PrimitiveType.Size())
				if err != nil {
					return 0, err
				}
				if err := listener.OnEnum(fieldToken, data, tokens, tokenIndex, nextFieldIndex-2, actingVersion); err != nil {
					return 0, err
				}
			case ir.SignalBeginSet:
				data, err := sliceAt(buf, offset, typeToken.PrimitiveType.Size())
				if err != nil {
					return 0, err
				}
				if err := listener.OnBitSet(fieldToken, data, tokens, tokenIndex, nextFieldIndex-2, actingVersion); err != nil {
					return 0, err
				}
			case ir.SignalEncoding:
				data, err := sliceAt(buf, offset, typeToken.EncodedLength)
				if err != nil {
					return 0, err
				}
				if err := listener.OnEncoding(fieldToken, data, typeToken, actingVersion); err != nil {
					return 0, err
				}
			default:
				return 0, fmt.Errorf("otf: unexpected signal %s in decodeFields: %w", typeToken.Signal, errs.ErrMalformedIR)
			}
		}

		tokenIndex = nextFieldIndex
	}

	return tokenIndex, nil
}

// decodeComposite dispatches OnEncoding once per member token of a
// composite's [tokenIndex+1, toIndex) span, bracketed by OnBeginComposite/
// OnEndComposite.
func decodeComposite(
	fieldToken ir.Token,
	buf []byte,
	bufferIndex int,
	tokens []ir.Token,
	tokenIndex, toIndex int,
	actingVersion uint16,
	listener Listener,
) error {
	if err := listener.OnBeginComposite(fieldToken, tokens, tokenIndex, toIndex); err != nil {
		return err
	}

	for i := tokenIndex + 1; i < toIndex; i++ {
		tok := tokens[i]
		data, err := sliceAt(buf, bufferIndex+tok.Offset, tok.EncodedLength)
		if err != nil {
			return err
		}
		if err := listener.OnEncoding(tok, data, tok, actingVersion); err != nil {
			return err
		}
	}

	return listener.OnEndComposite(fieldToken, tokens, tokenIndex, toIndex)
}

// decodeGroups walks a run of BeginGroup spans at tokenIndex, recursing
// into each entry's nested fields/groups/var-data in turn, and returns the
// buffer and token positions just past the last group.
func decodeGroups(
	buf []byte,
	bufferIndex int,
	actingVersion uint16,
	tokens []ir.Token,
	tokenIndex, numTokens int,
	listener Listener,
) (int, int, error) {
	for tokenIndex < numTokens && tokens[tokenIndex].Signal == ir.SignalBeginGroup {
		groupToken := tokens[tokenIndex]

		if tokenIndex+3 >= numTokens {
			return 0, 0, fmt.Errorf("otf: truncated group dimensions header at token %d: %w", tokenIndex, errs.ErrMalformedIR)
		}

		dimensionsComposite := tokens[tokenIndex+1]
		blockLengthToken := tokens[tokenIndex+2]
		numInGroupToken := tokens[tokenIndex+3]

		blockLength, err := readUintAt(buf, bufferIndex+blockLengthToken.Offset, blockLengthToken)
		if err != nil {
			return 0, 0, err
		}
		numInGroup, err := readUintAt(buf, bufferIndex+numInGroupToken.Offset, numInGroupToken)
		if err != nil {
			return 0, 0, err
		}

		bufferIndex += dimensionsComposite.EncodedLength
		beginFieldsIndex := tokenIndex + dimensionsComposite.ComponentTokenCount + 1

		if err := listener.OnGroupHeader(groupToken, uint32(numInGroup)); err != nil {
			return 0, 0, err
		}

		var afterFieldsIndex int
		for i := uint64(0); i < numInGroup; i++ {
			if err := listener.OnBeginGroup(groupToken, uint32(i), uint32(numInGroup)); err != nil {
				return 0, 0, err
			}

			afterFieldsIndex, err = decodeFields(buf, bufferIndex, actingVersion, int(blockLength), tokens, beginFieldsIndex, numTokens, listener)
			if err != nil {
				return 0, 0, err
			}
			bufferIndex += int(blockLength)

			var nestedTokenIndex int
			bufferIndex, nestedTokenIndex, err = decodeGroups(buf, bufferIndex, actingVersion, tokens, afterFieldsIndex, numTokens, listener)
			if err != nil {
				return 0, 0, err
			}

			bufferIndex, _, err = decodeData(buf, bufferIndex, tokens, nestedTokenIndex, numTokens, listener)
			if err != nil {
				return 0, 0, err
			}

			if err := listener.OnEndGroup(groupToken, uint32(i), uint32(numInGroup)); err != nil {
				return 0, 0, err
			}
		}

		tokenIndex += groupToken.ComponentTokenCount
	}

	return bufferIndex, tokenIndex, nil
}

// decodeData walks a run of BeginVarData spans at tokenIndex, resolving
// each field's length prefix then handing the listener a zero-copy slice
// over its payload.
func decodeData(
	buf []byte,
	bufferIndex int,
	tokens []ir.Token,
	tokenIndex, numTokens int,
	listener Listener,
) (int, int, error) {
	for tokenIndex < numTokens && tokens[tokenIndex].Signal == ir.SignalBeginVarData {
		varDataToken := tokens[tokenIndex]

		if tokenIndex+3 >= numTokens {
			return 0, 0, fmt.Errorf("otf: truncated var-data header at token %d: %w", tokenIndex, errs.ErrMalformedIR)
		}

		lengthToken := tokens[tokenIndex+2]
		dataToken := tokens[tokenIndex+3]

		dataLength, err := readUintAt(buf, bufferIndex+lengthToken.Offset, lengthToken)
		if err != nil {
			return 0, 0, err
		}

		bufferIndex += dataToken.Offset

		data, err := sliceAt(buf, bufferIndex, int(dataLength))
		if err != nil {
			return 0, 0, err
		}
		if err := listener.OnVarData(varDataToken, data, dataToken); err != nil {
			return 0, 0, err
		}

		bufferIndex += int(dataLength)
		tokenIndex += varDataToken.ComponentTokenCount
	}

	return bufferIndex, tokenIndex, nil
}
