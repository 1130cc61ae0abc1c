package ir

import (
	"fmt"

	"github.com/blang/semver"

	"github.com/sbeio/gosbe/errs"
)

// TemplateKey identifies one message template's token list by the
// (templateId, schemaVersion) pair the IR collection indexes by (§3 "IR
// collection"). In practice a schema usually carries exactly one compiled
// token list per templateId — individual fields carry their own
// TokenVersion for evolution — but the collection supports more than one
// entry per templateId for schemas that shipped a breaking redesign under
// the same templateId at a new version.
type TemplateKey struct {
	TemplateID uint16
	Version    uint16
}

// SchemaMeta carries the package/namespace/semantic-version metadata that
// travels alongside the token lists in a Frame message (§4.4).
type SchemaMeta struct {
	Package         string
	Namespace       string
	SemanticVersion string
}

// Collection is an immutable, loaded IR: the envelope's own token list,
// every message template's token list, and schema metadata. Once loaded it
// is read concurrently by any number of decoders (§5 Concurrency model).
type Collection struct {
	Header   []Token
	Meta     SchemaMeta
	messages map[TemplateKey][]Token
}

// NewCollection validates the header token list and constructs an empty
// Collection ready to receive message token lists via AddMessage.
func NewCollection(header []Token, meta SchemaMeta) (*Collection, error) {
	if err := Validate(header); err != nil {
		return nil, fmt.Errorf("ir: header token list: %w", err)
	}

	return &Collection{
		Header:   header,
		Meta:     meta,
		messages: make(map[TemplateKey][]Token),
	}, nil
}

// AddMessage validates tokens (Invariant 8) and registers them under
// (templateID, version).
func (c *Collection) AddMessage(templateID, version uint16, tokens []Token) error {
	if err := Validate(tokens); err != nil {
		return fmt.Errorf("ir: message %d v%d: %w", templateID, version, err)
	}
	if tokens[0].Signal != SignalBeginMessage {
		return fmt.Errorf("ir: message %d v%d does not start with BeginMessage: %w", templateID, version, errs.ErrMalformedIR)
	}

	c.messages[TemplateKey{TemplateID: templateID, Version: version}] = tokens

	return nil
}

// Lookup returns the exact token list registered for (templateID,
// version), or ErrTemplateNotFound.
func (c *Collection) Lookup(templateID, version uint16) ([]Token, error) {
	tokens, ok := c.messages[TemplateKey{TemplateID: templateID, Version: version}]
	if !ok {
		return nil, fmt.Errorf("ir: template %d v%d: %w", templateID, version, errs.ErrTemplateNotFound)
	}

	return tokens, nil
}

// LookupCompiled returns the highest-version token list registered for
// templateID — the common case where an IR collection carries one
// compiled schema per template and per-field TokenVersion, rather than a
// distinct token list per historical version.
func (c *Collection) LookupCompiled(templateID uint16) ([]Token, uint16, error) {
	var (
		best     []Token
		bestVer  uint16
		found    bool
	)

	for key, tokens := range c.messages {
		if key.TemplateID != templateID {
			continue
		}
		if !found || key.Version > bestVer {
			best, bestVer, found = tokens, key.Version, true
		}
	}

	if !found {
		return nil, 0, fmt.Errorf("ir: template %d: %w", templateID, errs.ErrTemplateNotFound)
	}

	return best, bestVer, nil
}

// TemplateIDs returns every distinct templateId registered in the
// collection, in no particular order.
func (c *Collection) TemplateIDs() []uint16 {
	seen := make(map[uint16]bool)
	ids := make([]uint16, 0, len(c.messages))
	for key := range c.messages {
		if !seen[key.TemplateID] {
			seen[key.TemplateID] = true
			ids = append(ids, key.TemplateID)
		}
	}

	return ids
}

// IsCompatible applies semantic-version compatibility between an acting
// (wire-advertised) schema version and the compiled schema version this
// collection targets: compatible when neither the major component differs
// (a major bump signals a breaking redesign) and the acting version does
// not exceed the compiled one's minor/patch (a reader can't safely assume
// fields from a schema newer than the one it compiled against, beyond what
// TokenVersion-gated evolution already handles field-by-field).
//
// This is strictly richer than the XML schema's bare integer `version`
// attribute, which spec.md's acting-version rules operate on directly; IR
// collections that also carry a semanticVersion string (§4.4 Frame) get
// this additional check for free.
func IsCompatible(acting, compiled semver.Version) bool {
	if acting.Major != compiled.Major {
		return false
	}

	return !acting.GT(compiled)
}
