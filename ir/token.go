// Package ir implements C7 (the IR token model) and C12 (schema evolution
// metadata): the linearized token list describing one message template,
// and the Collection mapping (templateId, version) to such a list.
package ir

import "github.com/sbeio/gosbe/primitive"

// Signal tags one node in the linearized token list (§3 "Token"). It forms
// a closed, exhaustively-matched union — preferred here over an interface
// hierarchy so that token skipping (by ComponentTokenCount) stays a single
// branch-predictable switch (§9 design notes).
type Signal uint8

const (
	SignalBeginMessage Signal = iota
	SignalEndMessage
	SignalBeginComposite
	SignalEndComposite
	SignalBeginField
	SignalEndField
	SignalBeginGroup
	SignalEndGroup
	SignalBeginEnum
	SignalValidValue
	SignalEndEnum
	SignalBeginSet
	SignalChoice
	SignalEndSet
	SignalBeginVarData
	SignalEndVarData
	SignalEncoding
)

func (s Signal) String() string {
	switch s {
	case SignalBeginMessage:
		return "BeginMessage"
	case SignalEndMessage:
		return "EndMessage"
	case SignalBeginComposite:
		return "BeginComposite"
	case SignalEndComposite:
		return "EndComposite"
	case SignalBeginField:
		return "BeginField"
	case SignalEndField:
		return "EndField"
	case SignalBeginGroup:
		return "BeginGroup"
	case SignalEndGroup:
		return "EndGroup"
	case SignalBeginEnum:
		return "BeginEnum"
	case SignalValidValue:
		return "ValidValue"
	case SignalEndEnum:
		return "EndEnum"
	case SignalBeginSet:
		return "BeginSet"
	case SignalChoice:
		return "Choice"
	case SignalEndSet:
		return "EndSet"
	case SignalBeginVarData:
		return "BeginVarData"
	case SignalEndVarData:
		return "EndVarData"
	case SignalEncoding:
		return "Encoding"
	default:
		return "Unknown"
	}
}

// Presence is a Token's `presence` attribute.
type Presence uint8

const (
	PresenceRequired Presence = iota
	PresenceOptional
	PresenceConstant
)

func (p Presence) String() string {
	switch p {
	case PresenceOptional:
		return "optional"
	case PresenceConstant:
		return "constant"
	default:
		return "required"
	}
}

// VarLengthSentinel marks a Token's EncodedLength as not statically known
// (composites/groups/var-data whose size is discovered at decode time).
const VarLengthSentinel = -1

// Token is one node of the linearized schema (§3 "Token"). A BeginX token
// carries ComponentTokenCount spanning itself and its entire subtree up to
// and including the matching EndX, so a reader that doesn't care about a
// field/group/var-data region can skip it in O(1) (§3 Invariant 8).
type Token struct {
	Signal              Signal
	PrimitiveType       primitive.Type
	ByteOrder           primitive.ByteOrder
	Presence            Presence
	Offset              int
	EncodedLength       int
	FieldID             int
	TokenVersion        uint16
	ComponentTokenCount int

	Name              string
	ConstValue        string
	MinValue          string
	MaxValue          string
	NullValue         string
	CharacterEncoding string
	Epoch             string
	TimeUnit          string
	SemanticType      string
	Description       string
}
