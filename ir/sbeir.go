package ir

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/sbeio/gosbe/errs"
	"github.com/sbeio/gosbe/irfile"
)

// sbeirMagic identifies a .sbeir file. Version 1 of the container format.
var sbeirMagic = [8]byte{'S', 'B', 'E', 'I', 'R', 0, 0, 1}

const sbeirHeaderLength = 8 + 1 + 4 // magic + compression type + uncompressed length

// WriteCollection serializes col as a .sbeir file to w, self-hosting the
// IR's own Frame/Token SBE messages as the payload and wrapping them with
// one of the pluggable irfile compression codecs (§4 "irfile").
func WriteCollection(w io.Writer, col *Collection, compression irfile.CompressionType) error {
	codec, err := irfile.GetCodec(compression)
	if err != nil {
		return err
	}

	payload, err := marshalCollection(col)
	if err != nil {
		return err
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return fmt.Errorf("ir: compress .sbeir payload: %w", err)
	}

	var header [sbeirHeaderLength]byte
	copy(header[:8], sbeirMagic[:])
	header[8] = byte(compression)
	binary.LittleEndian.PutUint32(header[9:13], uint32(len(payload)))

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err = w.Write(compressed)

	return err
}

// LoadCollection reads a .sbeir file from r and reconstructs its Collection.
func LoadCollection(r io.Reader) (*Collection, error) {
	var header [sbeirHeaderLength]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("ir: read .sbeir header: %w", err)
	}
	if !bytes.Equal(header[:8], sbeirMagic[:]) {
		return nil, fmt.Errorf("ir: not a .sbeir file: %w", errs.ErrMalformedIR)
	}

	compression := irfile.CompressionType(header[8])
	uncompressedLen := binary.LittleEndian.Uint32(header[9:13])

	codec, err := irfile.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("ir: decompress .sbeir payload: %w", err)
	}
	if uint32(len(payload)) != uncompressedLen {
		return nil, fmt.Errorf("ir: .sbeir payload length %d, header declared %d: %w", len(payload), uncompressedLen, errs.ErrMalformedIR)
	}

	return unmarshalCollection(payload)
}

// marshalCollection lays out, in order: the Frame message, the header
// token list, then each (templateId, version, token list) entry — each
// token list prefixed with a uint32 count, mirroring a repeating group's
// dimensions header in spirit though this is file framing rather than a
// schema-defined group.
func marshalCollection(col *Collection) ([]byte, error) {
	buf := make([]byte, 4096)

	n, err := encodeFrame(buf, col)
	if err != nil {
		return nil, err
	}
	buf = buf[:n]

	buf, err = appendTokenList(buf, col.Header)
	if err != nil {
		return nil, err
	}

	keys := make([]TemplateKey, 0, len(col.messages))
	for key := range col.messages {
		keys = append(keys, key)
	}

	buf = appendUint32(buf, uint32(len(keys)))
	for _, key := range keys {
		buf = appendUint16(buf, key.TemplateID)
		buf = appendUint16(buf, key.Version)
		buf, err = appendTokenList(buf, col.messages[key])
		if err != nil {
			return nil, err
		}
	}

	return buf, nil
}

func encodeFrame(buf []byte, col *Collection) (int, error) {
	fc := NewFrameCodec()
	if err := fc.WrapForEncode(buf, 0); err != nil {
		return 0, err
	}
	if err := fc.PutIrID(1); err != nil {
		return 0, err
	}
	if err := fc.PutIrVersion(1); err != nil {
		return 0, err
	}
	if err := fc.PutSchemaVersion(int32(highestMessageVersion(col))); err != nil {
		return 0, err
	}
	if err := fc.PutPackageName(col.Meta.Package); err != nil {
		return 0, err
	}
	if err := fc.PutNamespaceName(col.Meta.Namespace); err != nil {
		return 0, err
	}
	if err := fc.PutSemanticVersion(col.Meta.SemanticVersion); err != nil {
		return 0, err
	}

	return fc.Cursor().Position(), nil
}

// highestMessageVersion returns the highest schema version among the
// collection's registered messages, recorded in the Frame purely as
// informational metadata: a reader resolves evolution per-field via each
// Token's TokenVersion, not from this summary value.
func highestMessageVersion(col *Collection) uint16 {
	var max uint16
	for key := range col.messages {
		if key.Version > max {
			max = key.Version
		}
	}

	return max
}

func appendTokenList(buf []byte, tokens []Token) ([]byte, error) {
	buf = appendUint32(buf, uint32(len(tokens)))

	for _, tok := range tokens {
		scratch := make([]byte, 4096)
		n, err := PutToken(scratch, 0, tok)
		if err != nil {
			return nil, err
		}
		buf = appendUint32(buf, uint32(n))
		buf = append(buf, scratch[:n]...)
	}

	return buf, nil
}

func unmarshalCollection(payload []byte) (*Collection, error) {
	fc := NewFrameCodec()
	actingBlockLength := FrameBlockLength
	if err := fc.WrapForDecode(payload, 0, actingBlockLength, 0); err != nil {
		return nil, err
	}

	pkg, err := fc.PackageName()
	if err != nil {
		return nil, err
	}
	ns, err := fc.NamespaceName()
	if err != nil {
		return nil, err
	}
	semVer, err := fc.SemanticVersion()
	if err != nil {
		return nil, err
	}

	pos := fc.Cursor().Position()

	header, pos, err := readTokenList(payload, pos)
	if err != nil {
		return nil, err
	}

	col, err := NewCollection(header, SchemaMeta{Package: pkg, Namespace: ns, SemanticVersion: semVer})
	if err != nil {
		return nil, err
	}

	messageCount := binary.LittleEndian.Uint32(payload[pos : pos+4])
	pos += 4

	for i := uint32(0); i < messageCount; i++ {
		templateID := binary.LittleEndian.Uint16(payload[pos : pos+2])
		pos += 2
		version := binary.LittleEndian.Uint16(payload[pos : pos+2])
		pos += 2

		var tokens []Token
		tokens, pos, err = readTokenList(payload, pos)
		if err != nil {
			return nil, err
		}

		if err := col.AddMessage(templateID, version, tokens); err != nil {
			return nil, err
		}
	}

	return col, nil
}

func readTokenList(payload []byte, pos int) ([]Token, int, error) {
	if pos+4 > len(payload) {
		return nil, 0, fmt.Errorf("ir: truncated token list count: %w", errs.ErrMalformedIR)
	}
	count := binary.LittleEndian.Uint32(payload[pos : pos+4])
	pos += 4

	tokens := make([]Token, 0, count)
	for i := uint32(0); i < count; i++ {
		if pos+4 > len(payload) {
			return nil, 0, fmt.Errorf("ir: truncated token length prefix: %w", errs.ErrMalformedIR)
		}
		length := int(binary.LittleEndian.Uint32(payload[pos : pos+4]))
		pos += 4

		if pos+length > len(payload) {
			return nil, 0, fmt.Errorf("ir: truncated token body: %w", errs.ErrMalformedIR)
		}

		tok, _, err := GetToken(payload, pos, TokenBlockLength, 0)
		if err != nil {
			return nil, 0, err
		}

		tokens = append(tokens, tok)
		pos += length
	}

	return tokens, pos, nil
}

func appendUint32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendUint16(buf []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}
